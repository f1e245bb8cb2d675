// Package views computes filtered projections of store snapshots.
package views

import (
	"fmt"
	"iter"
	"strings"

	"github.com/five82/shelf/internal/state"
)

// Flagged is implemented by entities carrying a favorite flag.
type Flagged interface {
	Favorite() bool
}

// Favorites yields the favorite entries of snap in their original order.
func Favorites[T Flagged](snap state.Snapshot[T]) iter.Seq[T] {
	return where(snap, func(v T) bool { return v.Favorite() })
}

// NonFavorites yields the entries of snap not marked as favorite.
func NonFavorites[T Flagged](snap state.Snapshot[T]) iter.Seq[T] {
	return where(snap, func(v T) bool { return !v.Favorite() })
}

// Select yields the entries of snap visible under mode.
func Select[T Flagged](mode Mode, snap state.Snapshot[T]) iter.Seq[T] {
	switch mode {
	case FavoritesOnly:
		return Favorites(snap)
	case NonFavoritesOnly:
		return NonFavorites(snap)
	default:
		return snap.All()
	}
}

// Count consumes seq and returns the number of values.
func Count[T any](seq iter.Seq[T]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

func where[T any](snap state.Snapshot[T], keep func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range snap.All() {
			if keep(v) && !yield(v) {
				return
			}
		}
	}
}

// Mode selects which projection the film list renders.
type Mode int

const (
	All Mode = iota
	FavoritesOnly
	NonFavoritesOnly
)

// String returns the persisted name of m.
func (m Mode) String() string {
	switch m {
	case FavoritesOnly:
		return "favorites"
	case NonFavoritesOnly:
		return "others"
	default:
		return "all"
	}
}

// Label returns the short display label of m.
func (m Mode) Label() string {
	switch m {
	case FavoritesOnly:
		return "Favorites"
	case NonFavoritesOnly:
		return "Others"
	default:
		return "All"
	}
}

// Next returns the mode after m in the cycle All → FavoritesOnly → NonFavoritesOnly.
func (m Mode) Next() Mode {
	switch m {
	case All:
		return FavoritesOnly
	case FavoritesOnly:
		return NonFavoritesOnly
	default:
		return All
	}
}

// ParseMode parses a name produced by Mode.String. Blank input yields All.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return All, nil
	case "favorites", "favourites":
		return FavoritesOnly, nil
	case "others", "non-favorites":
		return NonFavoritesOnly, nil
	default:
		return All, fmt.Errorf("unknown filter mode %q", s)
	}
}

// Filter holds the current mode. It never touches a store.
type Filter struct {
	mode Mode
}

// NewFilter returns a filter starting at mode.
func NewFilter(mode Mode) *Filter {
	return &Filter{mode: mode}
}

// Mode returns the current mode.
func (f *Filter) Mode() Mode { return f.mode }

// SetMode replaces the current mode.
func (f *Filter) SetMode(m Mode) { f.mode = m }

// Cycle advances to the next mode and returns it.
func (f *Filter) Cycle() Mode {
	f.mode = f.mode.Next()
	return f.mode
}
