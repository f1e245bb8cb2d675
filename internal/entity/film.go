package entity

// Film is an immutable film entry keyed by a caller-supplied id.
type Film struct {
	id          string
	title       string
	description string
	favorite    bool
}

// NewFilm builds a film that is not yet marked as a favorite.
func NewFilm(id, title, description string) Film {
	return Film{id: id, title: title, description: description}
}

// Accessors for the immutable fields.
func (f Film) ID() string          { return f.id }
func (f Film) Title() string       { return f.title }
func (f Film) Description() string { return f.description }
func (f Film) Favorite() bool      { return f.favorite }

// WithFavorite returns a copy of f with the favorite flag replaced.
func (f Film) WithFavorite(favorite bool) Film {
	f.favorite = favorite
	return f
}

// Toggled returns a copy of f with the favorite flag flipped.
func (f Film) Toggled() Film {
	return f.WithFavorite(!f.favorite)
}

// Equal reports whether two films share an id and favorite flag.
// Title and description do not take part in the comparison.
func (f Film) Equal(other Film) bool {
	return f.id == other.id && f.favorite == other.favorite
}
