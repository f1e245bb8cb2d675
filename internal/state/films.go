package state

import "github.com/five82/shelf/internal/entity"

// FilmStore holds the film favorites list. Films are never removed.
type FilmStore struct {
	store *Store[entity.Film, string]
}

// NewFilmStore seeds a film store.
func NewFilmStore(seed []entity.Film) *FilmStore {
	return &FilmStore{store: NewStore(entity.Film.ID, seed)}
}

// Snapshot returns the current films in order.
func (fs *FilmStore) Snapshot() Snapshot[entity.Film] {
	return fs.store.Snapshot()
}

// Subscribe registers fn for every published film snapshot.
func (fs *FilmStore) Subscribe(fn Listener[entity.Film]) *Subscription {
	return fs.store.Subscribe(fn)
}

// Get looks up a film by id.
func (fs *FilmStore) Get(id string) (entity.Film, bool) {
	return fs.store.Get(id)
}

// ToggleFavorite flips the favorite flag of the film with the given id.
func (fs *FilmStore) ToggleFavorite(id string) error {
	_, err := fs.store.Update(id, entity.Film.Toggled)
	return err
}

// SetFavorite sets the favorite flag. Setting the current value publishes nothing.
func (fs *FilmStore) SetFavorite(id string, favorite bool) (bool, error) {
	return fs.store.Update(id, func(f entity.Film) entity.Film {
		return f.WithFavorite(favorite)
	})
}
