// Package entity defines the immutable values held by the shelf stores.
//
// # Overview
//
// Two entity kinds exist, one per app:
//
//   - Film: keyed by a caller-supplied id, with a favorite flag that is the only
//     field ever replaced.
//   - Person: keyed by a uuid generated at construction (or supplied by the
//     caller), with a name and an age that can be replaced.
//
// # Immutability
//
// Fields are unexported and every method has a value receiver. A "change" is
// always a new value built by WithFavorite, Toggled or Updated:
//
//	f := entity.NewFilm("2", "Heat", "LA crime saga")
//	fav := f.WithFavorite(true) // f is untouched
//
//	p := entity.NewPerson("Ada", 30)
//	older := p.Updated(entity.ChangeAge(31)) // same uuid, same name
//
// The identity field is copied along unchanged by every such operation.
//
// # Equality
//
// Film.Equal compares id and favorite flag; title and description are not part
// of it. Person.Equal compares uuid only. Both types are also comparable with
// ==, which compares every field; the stores rely on == to decide whether an
// update actually changed anything.
//
// # Identity generation
//
// NewPerson calls an IDFunc when no uuid is supplied. DefaultIDFunc wraps
// github.com/google/uuid; tests pass WithIDFunc to get deterministic ids.
package entity
