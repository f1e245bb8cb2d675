// Package seed provides the starting contents of the shelf stores.
// A YAML seed file can replace the built-in film list and pre-fill the roster.
package seed

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/five82/shelf/internal/entity"
)

// Data is the initial contents of both stores.
type Data struct {
	Films  []entity.Film
	People []entity.Person
}

// DefaultFilms returns the built-in film list. None starts as a favorite.
func DefaultFilms() []entity.Film {
	return []entity.Film{
		entity.NewFilm("1", "Stalker", "A guide leads two men through the Zone toward a room that grants wishes."),
		entity.NewFilm("2", "Heat", "A thief and a detective circle each other across Los Angeles."),
		entity.NewFilm("3", "Spirited Away", "A girl works in a bathhouse for spirits to free her parents."),
		entity.NewFilm("4", "Paris, Texas", "A drifter tries to reunite his family after four years gone."),
	}
}

// Default returns the built-in seed. The roster starts empty.
func Default() Data {
	return Data{Films: DefaultFilms()}
}

type fileFormat struct {
	Films  []filmRecord   `yaml:"films"`
	People []personRecord `yaml:"people"`
}

type filmRecord struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Favorite    bool   `yaml:"favorite"`
}

type personRecord struct {
	Name string `yaml:"name"`
	Age  *int   `yaml:"age"`
	UUID string `yaml:"uuid"`
}

// Load reads a seed file. An empty path or a missing file yields Default.
// When the file lists no films the built-in list is kept. People without a
// uuid get one from newID.
func Load(path string, newID entity.IDFunc) (Data, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Data{}, fmt.Errorf("read seed: %w", err)
	}
	return Parse(raw, newID)
}

// Parse decodes seed YAML.
func Parse(raw []byte, newID entity.IDFunc) (Data, error) {
	var f fileFormat
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return Data{}, fmt.Errorf("parse seed: %w", err)
	}

	data := Default()
	if len(f.Films) > 0 {
		films, err := buildFilms(f.Films)
		if err != nil {
			return Data{}, err
		}
		data.Films = films
	}
	people, err := buildPeople(f.People, newID)
	if err != nil {
		return Data{}, err
	}
	data.People = people
	return data, nil
}

func buildFilms(records []filmRecord) ([]entity.Film, error) {
	seen := make(map[string]bool, len(records))
	films := make([]entity.Film, 0, len(records))
	for i, r := range records {
		id := strings.TrimSpace(r.ID)
		if id == "" {
			return nil, fmt.Errorf("film %d: missing id", i+1)
		}
		if seen[id] {
			return nil, fmt.Errorf("film %d: duplicate id %q", i+1, id)
		}
		seen[id] = true
		films = append(films, entity.NewFilm(id, r.Title, r.Description).WithFavorite(r.Favorite))
	}
	return films, nil
}

func buildPeople(records []personRecord, newID entity.IDFunc) ([]entity.Person, error) {
	if len(records) == 0 {
		return nil, nil
	}
	seen := make(map[string]bool, len(records))
	people := make([]entity.Person, 0, len(records))
	for i, r := range records {
		name := strings.TrimSpace(r.Name)
		if name == "" || r.Age == nil {
			return nil, fmt.Errorf("person %d: name and age are required", i+1)
		}
		opts := []entity.PersonOption{entity.WithUUID(strings.TrimSpace(r.UUID))}
		if newID != nil {
			opts = append(opts, entity.WithIDFunc(newID))
		}
		p := entity.NewPerson(name, *r.Age, opts...)
		if seen[p.UUID()] {
			return nil, fmt.Errorf("person %d: duplicate uuid %q", i+1, p.UUID())
		}
		seen[p.UUID()] = true
		people = append(people, p)
	}
	return people, nil
}
