package views

import (
	"iter"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/shelf/internal/entity"
	"github.com/five82/shelf/internal/state"
)

func filmIDs(seq iter.Seq[entity.Film]) []string {
	out := []string{}
	for f := range seq {
		out = append(out, f.ID())
	}
	return out
}

func newFilmStore() *state.FilmStore {
	return state.NewFilmStore([]entity.Film{
		entity.NewFilm("1", "One", ""),
		entity.NewFilm("2", "Two", ""),
		entity.NewFilm("3", "Three", ""),
		entity.NewFilm("4", "Four", ""),
	})
}

func TestFavorites_BeforeAndAfterToggle(t *testing.T) {
	fs := newFilmStore()

	if got := filmIDs(Favorites(fs.Snapshot())); len(got) != 0 {
		t.Fatalf("Favorites before toggle = %v, want empty", got)
	}

	if err := fs.ToggleFavorite("2"); err != nil {
		t.Fatalf("ToggleFavorite: %v", err)
	}
	if diff := cmp.Diff([]string{"2"}, filmIDs(Favorites(fs.Snapshot()))); diff != "" {
		t.Fatalf("Favorites mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"1", "3", "4"}, filmIDs(NonFavorites(fs.Snapshot()))); diff != "" {
		t.Fatalf("NonFavorites mismatch (-want +got):\n%s", diff)
	}
}

func TestFavorites_PreservesOrder(t *testing.T) {
	fs := newFilmStore()
	for _, id := range []string{"4", "1", "3"} {
		if err := fs.ToggleFavorite(id); err != nil {
			t.Fatalf("ToggleFavorite(%s): %v", id, err)
		}
	}
	if diff := cmp.Diff([]string{"1", "3", "4"}, filmIDs(Favorites(fs.Snapshot()))); diff != "" {
		t.Fatalf("Favorites mismatch (-want +got):\n%s", diff)
	}
}

func TestFavorites_EarlyStop(t *testing.T) {
	fs := newFilmStore()
	for _, id := range []string{"1", "2", "3"} {
		_ = fs.ToggleFavorite(id)
	}
	var first string
	for f := range Favorites(fs.Snapshot()) {
		first = f.ID()
		break
	}
	if first != "1" {
		t.Fatalf("first favorite = %q, want 1", first)
	}
}

func TestSelect(t *testing.T) {
	fs := newFilmStore()
	_ = fs.ToggleFavorite("3")
	snap := fs.Snapshot()

	tests := []struct {
		mode Mode
		want []string
	}{
		{All, []string{"1", "2", "3", "4"}},
		{FavoritesOnly, []string{"3"}},
		{NonFavoritesOnly, []string{"1", "2", "4"}},
	}
	for _, tt := range tests {
		t.Run(tt.mode.String(), func(t *testing.T) {
			if diff := cmp.Diff(tt.want, filmIDs(Select(tt.mode, snap))); diff != "" {
				t.Fatalf("Select mismatch (-want +got):\n%s", diff)
			}
			if got := Count(Select(tt.mode, snap)); got != len(tt.want) {
				t.Fatalf("Count = %d, want %d", got, len(tt.want))
			}
		})
	}
}

func TestModeCycleAndParse(t *testing.T) {
	if got := All.Next().Next().Next(); got != All {
		t.Fatalf("three Next() calls = %v, want All", got)
	}
	for _, m := range []Mode{All, FavoritesOnly, NonFavoritesOnly} {
		parsed, err := ParseMode(m.String())
		if err != nil || parsed != m {
			t.Fatalf("ParseMode(%q) = (%v, %v), want %v", m.String(), parsed, err, m)
		}
	}
	if m, err := ParseMode("  "); err != nil || m != All {
		t.Fatalf("ParseMode(blank) = (%v, %v), want All", m, err)
	}
	if _, err := ParseMode("bogus"); err == nil {
		t.Fatalf("ParseMode(bogus) err = nil, want error")
	}
}

func TestFilter_DoesNotTouchStore(t *testing.T) {
	fs := newFilmStore()
	notified := 0
	fs.Subscribe(func(state.Snapshot[entity.Film]) { notified++ })

	f := NewFilter(All)
	if got := f.Cycle(); got != FavoritesOnly {
		t.Fatalf("Cycle = %v, want FavoritesOnly", got)
	}
	f.SetMode(NonFavoritesOnly)
	if f.Mode() != NonFavoritesOnly {
		t.Fatalf("Mode = %v, want NonFavoritesOnly", f.Mode())
	}
	if notified != 0 {
		t.Fatalf("filter changes notified store subscribers %d times", notified)
	}
}
