package seed

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/five82/shelf/internal/entity"
)

func counter() entity.IDFunc {
	n := 0
	return func() string {
		n++
		return "gen-" + string(rune('0'+n))
	}
}

func TestDefaultFilms(t *testing.T) {
	films := DefaultFilms()
	var ids []string
	for _, f := range films {
		ids = append(ids, f.ID())
		if f.Favorite() {
			t.Fatalf("film %s starts as favorite", f.ID())
		}
	}
	if diff := cmp.Diff([]string{"1", "2", "3", "4"}, ids); diff != "" {
		t.Fatalf("ids mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_EmptyOrMissingUsesDefault(t *testing.T) {
	for _, path := range []string{"", filepath.Join(t.TempDir(), "nope.yaml")} {
		data, err := Load(path, nil)
		if err != nil {
			t.Fatalf("Load(%q) returned error: %v", path, err)
		}
		if len(data.Films) != 4 || len(data.People) != 0 {
			t.Fatalf("Load(%q) = %d films %d people, want 4/0", path, len(data.Films), len(data.People))
		}
	}
}

func TestLoad_ParsesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	if err := os.WriteFile(path, []byte(`
films:
  - id: a
    title: Alpha
    favorite: true
  - id: b
    title: Beta
people:
  - name: Ada
    age: 30
    uuid: fixed
  - name: Grace
    age: 85
`), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := Load(path, counter())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if len(data.Films) != 2 || !data.Films[0].Favorite() || data.Films[1].Favorite() {
		t.Fatalf("films = %#v", data.Films)
	}
	if len(data.People) != 2 {
		t.Fatalf("people = %d, want 2", len(data.People))
	}
	if data.People[0].UUID() != "fixed" {
		t.Fatalf("people[0].UUID = %q, want fixed", data.People[0].UUID())
	}
	if data.People[1].UUID() != "gen-1" || data.People[1].Age() != 85 {
		t.Fatalf("people[1] = %q/%d, want gen-1/85", data.People[1].UUID(), data.People[1].Age())
	}
}

func TestParse_KeepsDefaultFilmsWhenOnlyPeopleGiven(t *testing.T) {
	data, err := Parse([]byte("people:\n  - name: Ada\n    age: 0\n"), counter())
	if err != nil {
		t.Fatalf("Parse returned error: %v", err)
	}
	if len(data.Films) != 4 {
		t.Fatalf("films = %d, want 4", len(data.Films))
	}
	if data.People[0].Age() != 0 {
		t.Fatalf("age = %d, want 0", data.People[0].Age())
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"invalid yaml", "films: [", "parse seed"},
		{"missing id", "films:\n  - title: x\n", "missing id"},
		{"duplicate id", "films:\n  - id: a\n  - id: a\n", "duplicate id"},
		{"missing age", "people:\n  - name: Ada\n", "name and age are required"},
		{"missing name", "people:\n  - age: 3\n", "name and age are required"},
		{"duplicate uuid", "people:\n  - {name: A, age: 1, uuid: u}\n  - {name: B, age: 2, uuid: u}\n", "duplicate uuid"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml), counter())
			if err == nil {
				t.Fatalf("Parse returned nil error, want %q", tt.want)
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("Parse error = %q, want it to mention %q", err.Error(), tt.want)
			}
		})
	}
}
