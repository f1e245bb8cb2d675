// Package state provides the stores that own the shelf lists.
//
// # Overview
//
// A Store holds an ordered collection of immutable values keyed by an identity
// function. It is the only place the collection changes; the UI reads
// snapshots and forwards user intents as Store calls.
//
//	user gesture ──> ui.Model ──> Store.Add/Remove/Update
//	                                  │
//	                                  ├─> new Snapshot (version n+1)
//	                                  └─> listeners, in registration order
//
// # Core Types
//
// Store[T, K]:
//   - Generic container; T must be comparable so updates can detect no-ops
//   - Add appends, Remove drops the first match, Update replaces in place
//   - Subscribe returns a Subscription whose Unsubscribe is idempotent
//
// Snapshot[T]:
//   - Read-only view; Len, At, All and Items (a fresh copy)
//   - Version counts successful mutations, UpdatedAt records the last one
//
// FilmStore and PersonStore wrap Store with the operations each app needs.
//
// # Update Semantics
//
//	store.Update(id, change)
//	→ id absent                   : ErrNotFound, nothing published
//	→ change(cur) has another id  : ErrIdentityChanged, nothing published
//	→ change(cur) == cur          : (false, nil), nothing published
//	→ otherwise                   : replaced at the same index, published
//
//	store.Remove(id)
//	→ id absent : false, nothing published
//
// Callers treat ErrNotFound as a no-op: the UI only passes identities it read
// from the latest snapshot.
//
// # Copy-on-write
//
// Every mutation swaps in a freshly allocated slice. A Snapshot can therefore
// share the backing array with the store without ever observing a later
// mutation, and handing one snapshot to several listeners is safe.
//
// # Concurrency Model
//
// All mutations come from the Bubble Tea update loop, so there is a single
// writer. The store still guards its state with a sync.RWMutex so snapshots
// can be read from commands running on other goroutines. Listeners run on the
// mutating goroutine after the lock is released, which lets a listener call
// Snapshot or even mutate the store again without deadlocking.
package state
