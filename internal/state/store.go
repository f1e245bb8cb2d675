package state

import (
	"errors"
	"iter"
	"slices"
	"sync"
	"time"
)

var (
	// ErrNotFound is returned when no element carries the requested identity.
	ErrNotFound = errors.New("identity not found")
	// ErrIdentityChanged is returned when an update tries to replace the identity.
	ErrIdentityChanged = errors.New("update changed identity")
)

// Snapshot is a read-only view of the store contents at one version.
type Snapshot[T any] struct {
	items     []T
	Version   uint64
	UpdatedAt time.Time
}

// Len returns the number of elements.
func (s Snapshot[T]) Len() int { return len(s.items) }

// At returns the element at index i.
func (s Snapshot[T]) At(i int) T { return s.items[i] }

// All iterates the elements in order.
func (s Snapshot[T]) All() iter.Seq[T] { return slices.Values(s.items) }

// Items returns a copy of the elements.
func (s Snapshot[T]) Items() []T { return slices.Clone(s.items) }

// Listener receives the snapshot produced by a successful mutation.
type Listener[T any] func(Snapshot[T])

type subscriber[T any] struct {
	id uint64
	fn Listener[T]
}

// Store owns an ordered collection of comparable values keyed by identity.
// Every successful mutation publishes a new snapshot to the subscribers,
// synchronously and in registration order, after the lock is released.
type Store[T comparable, K comparable] struct {
	mu      sync.RWMutex
	key     func(T) K
	items   []T
	version uint64
	updated time.Time

	subMu  sync.Mutex
	subs   []subscriber[T]
	nextID uint64
}

// NewStore builds a store holding a copy of seed.
func NewStore[T comparable, K comparable](key func(T) K, seed []T) *Store[T, K] {
	return &Store[T, K]{
		key:     key,
		items:   slices.Clone(seed),
		updated: time.Now(),
	}
}

// Snapshot returns the current contents.
func (s *Store[T, K]) Snapshot() Snapshot[T] {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Get returns the element carrying id.
func (s *Store[T, K]) Get(id K) (T, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if i := s.indexLocked(id); i >= 0 {
		return s.items[i], true
	}
	var zero T
	return zero, false
}

// Add appends item. Duplicate identities are not checked.
func (s *Store[T, K]) Add(item T) {
	s.mu.Lock()
	s.items = append(slices.Clip(s.items), item)
	snap := s.commitLocked()
	s.mu.Unlock()

	s.publish(snap)
}

// Remove drops the first element carrying id and reports whether one was found.
// Nothing is published when id is absent.
func (s *Store[T, K]) Remove(id K) bool {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return false
	}
	s.items = slices.Delete(slices.Clone(s.items), i, i+1)
	snap := s.commitLocked()
	s.mu.Unlock()

	s.publish(snap)
	return true
}

// Update replaces the element carrying id with change(current), keeping its
// position. When the replacement equals the current value nothing is
// published and the returned changed flag is false.
func (s *Store[T, K]) Update(id K, change func(T) T) (changed bool, err error) {
	s.mu.Lock()
	i := s.indexLocked(id)
	if i < 0 {
		s.mu.Unlock()
		return false, ErrNotFound
	}
	current := s.items[i]
	next := change(current)
	if s.key(next) != id {
		s.mu.Unlock()
		return false, ErrIdentityChanged
	}
	if next == current {
		s.mu.Unlock()
		return false, nil
	}
	items := slices.Clone(s.items)
	items[i] = next
	s.items = items
	snap := s.commitLocked()
	s.mu.Unlock()

	s.publish(snap)
	return true, nil
}

// Subscribe registers fn for every future publication.
func (s *Store[T, K]) Subscribe(fn Listener[T]) *Subscription {
	s.subMu.Lock()
	defer s.subMu.Unlock()

	s.nextID++
	id := s.nextID
	s.subs = append(s.subs, subscriber[T]{id: id, fn: fn})
	return &Subscription{cancel: func() { s.unsubscribe(id) }}
}

func (s *Store[T, K]) unsubscribe(id uint64) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	s.subs = slices.DeleteFunc(s.subs, func(sub subscriber[T]) bool { return sub.id == id })
}

func (s *Store[T, K]) publish(snap Snapshot[T]) {
	s.subMu.Lock()
	subs := slices.Clone(s.subs)
	s.subMu.Unlock()

	for _, sub := range subs {
		sub.fn(snap)
	}
}

func (s *Store[T, K]) indexLocked(id K) int {
	return slices.IndexFunc(s.items, func(item T) bool { return s.key(item) == id })
}

// commitLocked bumps the version. Callers must have replaced s.items with a
// fresh slice so earlier snapshots stay untouched.
func (s *Store[T, K]) commitLocked() Snapshot[T] {
	s.version++
	s.updated = time.Now()
	return s.snapshotLocked()
}

func (s *Store[T, K]) snapshotLocked() Snapshot[T] {
	return Snapshot[T]{items: s.items, Version: s.version, UpdatedAt: s.updated}
}

// Subscription cancels a registered listener.
type Subscription struct {
	once   sync.Once
	cancel func()
}

// Unsubscribe removes the listener. Calling it more than once is harmless.
func (sub *Subscription) Unsubscribe() {
	if sub == nil {
		return
	}
	sub.once.Do(sub.cancel)
}
