package ui

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/shelf/internal/entity"
	"github.com/five82/shelf/internal/state"
	"github.com/five82/shelf/internal/views"
)

// visibleFilms returns the films shown under the current filter mode.
func (m Model) visibleFilms() []entity.Film {
	return slices.Collect(views.Select(m.filter.Mode(), m.filmSnap))
}

func (m *Model) clampFilmCursor() {
	n := views.Count(views.Select(m.filter.Mode(), m.filmSnap))
	m.filmCursor = clamp(m.filmCursor, n)
}

// selectedFilm returns the film under the cursor.
func (m Model) selectedFilm() (entity.Film, bool) {
	films := m.visibleFilms()
	if m.filmCursor < 0 || m.filmCursor >= len(films) {
		return entity.Film{}, false
	}
	return films[m.filmCursor], true
}

// handleFilmsKey processes keyboard input for the film list.
func (m Model) handleFilmsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.CycleFilter):
		mode := m.filter.Cycle()
		m.clampFilmCursor()
		m.flash = "Showing " + strings.ToLower(mode.Label())
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.ToggleFavorite):
		film, ok := m.selectedFilm()
		if !ok {
			return m, nil
		}
		m.toggleFavorite(film)
		return m, nil
	}

	if cursor, ok := m.moveCursor(msg, m.filmCursor, len(m.visibleFilms())); ok {
		m.filmCursor = cursor
	}
	return m, nil
}

func (m *Model) toggleFavorite(film entity.Film) {
	err := m.films.ToggleFavorite(film.ID())
	switch {
	case errors.Is(err, state.ErrNotFound):
		m.logger.Warn("toggle favorite on unknown film", zap.String("id", film.ID()))
		return
	case err != nil:
		m.logger.Error("toggle favorite failed", zap.String("id", film.ID()), zap.Error(err))
		return
	}
	m.logger.Debug("film favorite toggled",
		zap.String("id", film.ID()),
		zap.Bool("favorite", !film.Favorite()))
	if film.Favorite() {
		m.flash = fmt.Sprintf("Removed %q from favorites", film.Title())
	} else {
		m.flash = fmt.Sprintf("Added %q to favorites", film.Title())
	}
}

func (m Model) filmSummary() string {
	favorites := views.Count(views.Favorites(m.filmSnap))
	return fmt.Sprintf("%d films · %d favorites · filter: %s", m.filmSnap.Len(), favorites, m.filter.Mode().Label())
}

// renderFilms renders the film list under the current filter.
func (m Model) renderFilms() string {
	styles := m.theme.Styles()
	films := m.visibleFilms()
	if len(films) == 0 {
		msg := "No films"
		if m.filter.Mode() == views.FavoritesOnly {
			msg = "No favorites yet. Press space on a film to add one."
		}
		return styles.FaintText.Render("  " + msg)
	}

	width := m.width
	if width <= 0 {
		width = 80
	}

	var b strings.Builder
	for i, f := range films {
		star := styles.FaintText.Render("☆")
		if f.Favorite() {
			star = styles.Star.Render("★")
		}
		title := f.Title()
		desc := truncate(f.Description(), max(0, width-len(title)-10))
		line := fmt.Sprintf(" %s %s  %s", star, styles.Text.Render(title), styles.MutedText.Render(desc))
		if i == m.filmCursor {
			line = styles.Selected.Render(fmt.Sprintf(" %s %s  %s", markFor(f), title, desc))
		}
		b.WriteString(line)
		b.WriteString("\n")
	}
	return b.String()
}

func markFor(f entity.Film) string {
	if f.Favorite() {
		return "★"
	}
	return "☆"
}

func clamp(cursor, n int) int {
	if n == 0 || cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}

func truncate(s string, limit int) string {
	r := []rune(s)
	if limit <= 0 {
		return ""
	}
	if len(r) <= limit {
		return s
	}
	if limit == 1 {
		return "…"
	}
	return string(r[:limit-1]) + "…"
}
