package entity

import (
	"fmt"
	"testing"
)

func TestFilm_WithFavoriteKeepsIdentity(t *testing.T) {
	f := NewFilm("2", "Heat", "LA crime saga")
	if f.Favorite() {
		t.Fatalf("NewFilm Favorite() = true, want false")
	}

	fav := f.WithFavorite(true)
	if !fav.Favorite() {
		t.Fatalf("WithFavorite(true).Favorite() = false, want true")
	}
	if fav.ID() != "2" || fav.Title() != "Heat" || fav.Description() != "LA crime saga" {
		t.Fatalf("WithFavorite changed other fields: %#v", fav)
	}
	if f.Favorite() {
		t.Fatalf("original film was mutated")
	}

	back := fav.Toggled().Toggled().Toggled()
	if back.ID() != f.ID() || back.Favorite() {
		t.Fatalf("Toggled x3 = %#v, want id %q favorite=false", back, f.ID())
	}
}

func TestFilm_Equal(t *testing.T) {
	tests := []struct {
		name string
		a, b Film
		want bool
	}{
		{"same", NewFilm("1", "A", "a"), NewFilm("1", "A", "a"), true},
		{"title ignored", NewFilm("1", "A", "a"), NewFilm("1", "B", "b"), true},
		{"favorite differs", NewFilm("1", "A", "a"), NewFilm("1", "A", "a").WithFavorite(true), false},
		{"id differs", NewFilm("1", "A", "a"), NewFilm("2", "A", "a"), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Fatalf("Equal = %v, want %v", got, tt.want)
			}
			if got := tt.b.Equal(tt.a); got != tt.want {
				t.Fatalf("Equal (reversed) = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNewPerson_GeneratesUUID(t *testing.T) {
	p := NewPerson("Ada", 30)
	if p.UUID() == "" {
		t.Fatalf("UUID() is empty, want generated value")
	}
	q := NewPerson("Ada", 30)
	if p.UUID() == q.UUID() {
		t.Fatalf("two generated uuids are equal: %q", p.UUID())
	}
}

func TestNewPerson_IDOptions(t *testing.T) {
	n := 0
	gen := func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}

	p := NewPerson("Ada", 30, WithIDFunc(gen))
	if p.UUID() != "id-1" {
		t.Fatalf("UUID() = %q, want id-1", p.UUID())
	}

	q := NewPerson("Grace", 40, WithIDFunc(gen), WithUUID("fixed"))
	if q.UUID() != "fixed" {
		t.Fatalf("UUID() = %q, want fixed", q.UUID())
	}
	if n != 1 {
		t.Fatalf("generator called %d times, want 1", n)
	}
}

func TestPerson_UpdatedKeepsIdentity(t *testing.T) {
	p := NewPerson("Ada", 30, WithUUID("u1"))

	steps := []PersonChanges{
		ChangeAge(31),
		ChangeName("Ada L."),
		{},
		Changes("Ada", 36),
	}
	cur := p
	for _, c := range steps {
		cur = cur.Updated(c)
		if cur.UUID() != "u1" {
			t.Fatalf("UUID() = %q after %+v, want u1", cur.UUID(), c)
		}
	}
	if cur.Name() != "Ada" || cur.Age() != 36 {
		t.Fatalf("final person = %q/%d, want Ada/36", cur.Name(), cur.Age())
	}
	if p.Age() != 30 || p.Name() != "Ada" {
		t.Fatalf("original person was mutated: %q/%d", p.Name(), p.Age())
	}

	older := p.Updated(ChangeAge(31))
	if older.Name() != "Ada" {
		t.Fatalf("ChangeAge altered name: %q", older.Name())
	}
}

func TestPerson_Equal(t *testing.T) {
	a := NewPerson("Ada", 30, WithUUID("u1"))
	b := NewPerson("Grace", 85, WithUUID("u1"))
	c := NewPerson("Ada", 30, WithUUID("u2"))

	if !a.Equal(b) {
		t.Fatalf("Equal with same uuid = false, want true")
	}
	if a.Equal(c) {
		t.Fatalf("Equal with different uuid = true, want false")
	}
}

func TestPersonChanges_IsEmpty(t *testing.T) {
	if !(PersonChanges{}).IsEmpty() {
		t.Fatalf("zero PersonChanges IsEmpty() = false")
	}
	if ChangeName("x").IsEmpty() {
		t.Fatalf("ChangeName IsEmpty() = true")
	}
}
