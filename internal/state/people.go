package state

import "github.com/five82/shelf/internal/entity"

// PersonStore holds the person roster.
type PersonStore struct {
	store *Store[entity.Person, string]
}

// NewPersonStore seeds a person store.
func NewPersonStore(seed []entity.Person) *PersonStore {
	return &PersonStore{store: NewStore(entity.Person.UUID, seed)}
}

// Snapshot returns the current roster in insertion order.
func (ps *PersonStore) Snapshot() Snapshot[entity.Person] {
	return ps.store.Snapshot()
}

// Subscribe registers fn for every published roster snapshot.
func (ps *PersonStore) Subscribe(fn Listener[entity.Person]) *Subscription {
	return ps.store.Subscribe(fn)
}

// Get looks up a person by uuid.
func (ps *PersonStore) Get(uuid string) (entity.Person, bool) {
	return ps.store.Get(uuid)
}

// Add appends p to the roster.
func (ps *PersonStore) Add(p entity.Person) {
	ps.store.Add(p)
}

// Remove drops the person with the given uuid, reporting whether it existed.
func (ps *PersonStore) Remove(uuid string) bool {
	return ps.store.Remove(uuid)
}

// Update applies changes to the person with the given uuid. It reports false
// when the changes leave every field as it was.
func (ps *PersonStore) Update(uuid string, changes entity.PersonChanges) (bool, error) {
	return ps.store.Update(uuid, func(p entity.Person) entity.Person {
		return p.Updated(changes)
	})
}
