package ui

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/five82/shelf/internal/entity"
	"github.com/five82/shelf/internal/state"
)

func (m *Model) clampPersonCursor() {
	m.personCursor = clamp(m.personCursor, m.peopleSnap.Len())
}

func (m Model) selectedPerson() (entity.Person, bool) {
	if m.personCursor < 0 || m.personCursor >= m.peopleSnap.Len() {
		return entity.Person{}, false
	}
	return m.peopleSnap.At(m.personCursor), true
}

// handlePeopleKey processes keyboard input for the roster.
func (m Model) handlePeopleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Add):
		m.form = newPersonForm(nil)
		m.flash = ""
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Edit):
		p, ok := m.selectedPerson()
		if !ok {
			return m, nil
		}
		m.form = newPersonForm(&p)
		m.flash = ""
		return m, textinput.Blink

	case key.Matches(msg, m.keys.Delete):
		p, ok := m.selectedPerson()
		if !ok {
			return m, nil
		}
		if m.people.Remove(p.UUID()) {
			m.logger.Info("person removed", zap.String("uuid", p.UUID()))
			m.flash = fmt.Sprintf("Removed %s", p.Name())
		} else {
			m.logger.Warn("remove on unknown person", zap.String("uuid", p.UUID()))
		}
		return m, nil
	}

	if cursor, ok := m.moveCursor(msg, m.personCursor, m.peopleSnap.Len()); ok {
		m.personCursor = cursor
	}
	return m, nil
}

// handleFormKey routes keys to the open person form.
func (m Model) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Cancel):
		m.form = nil
		m.flash = "Cancelled"
		return m, nil

	case key.Matches(msg, m.keys.Confirm):
		return m.submitForm()

	case key.Matches(msg, m.keys.NextField):
		return m, m.form.setFocus(m.form.focus + 1)

	case key.Matches(msg, m.keys.PrevField):
		return m, m.form.setFocus(m.form.focus - 1)

	case msg.String() == "ctrl+c":
		m.bridge.close()
		return m, tea.Quit
	}
	m.form.problem = ""
	return m, m.form.update(msg)
}

// submitForm turns the form into a store call. Nothing reaches the store
// unless both name and age are present.
func (m Model) submitForm() (tea.Model, tea.Cmd) {
	name, age, ok := m.form.values()
	if !ok {
		m.form.problem = "Name and age are both required"
		return m, nil
	}

	if m.form.editing == "" {
		p := entity.NewPerson(name, age, entity.WithIDFunc(m.newID))
		m.people.Add(p)
		m.personCursor = m.people.Snapshot().Len() - 1
		m.logger.Info("person added", zap.String("uuid", p.UUID()), zap.String("name", name), zap.Int("age", age))
		m.flash = fmt.Sprintf("Added %s", name)
		m.form = nil
		return m, nil
	}

	id := m.form.editing
	m.form = nil
	changed, err := m.people.Update(id, entity.Changes(name, age))
	switch {
	case errors.Is(err, state.ErrNotFound):
		m.logger.Warn("update on unknown person", zap.String("uuid", id))
	case err != nil:
		m.logger.Error("update person failed", zap.String("uuid", id), zap.Error(err))
	case !changed:
		m.flash = "No changes"
	default:
		m.logger.Info("person updated", zap.String("uuid", id), zap.String("name", name), zap.Int("age", age))
		m.flash = fmt.Sprintf("Updated %s", name)
	}
	return m, nil
}

func (m Model) peopleSummary() string {
	n := m.peopleSnap.Len()
	if n == 1 {
		return "1 person"
	}
	return fmt.Sprintf("%d people", n)
}

// renderPeople renders the roster.
func (m Model) renderPeople() string {
	styles := m.theme.Styles()
	if m.peopleSnap.Len() == 0 {
		return styles.FaintText.Render("  Nobody here yet. Press a to add a person.")
	}

	var b strings.Builder
	i := 0
	for p := range m.peopleSnap.All() {
		id := p.UUID()
		if len(id) > 8 {
			id = id[:8]
		}
		if i == m.personCursor {
			b.WriteString(styles.Selected.Render(fmt.Sprintf(" %-24s %3d  %s", p.Name(), p.Age(), id)))
		} else {
			b.WriteString(fmt.Sprintf(" %s %s  %s",
				styles.Text.Render(fmt.Sprintf("%-24s", p.Name())),
				styles.AccentText.Render(fmt.Sprintf("%3d", p.Age())),
				styles.FaintText.Render(id)))
		}
		b.WriteString("\n")
		i++
	}
	return b.String()
}

// renderForm renders the person dialog centered on screen.
func (m Model) renderForm() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render(m.form.title()))
	b.WriteString("\n\n")
	for _, in := range m.form.inputs {
		b.WriteString(in.View())
		b.WriteString("\n")
	}
	if m.form.problem != "" {
		b.WriteString("\n")
		b.WriteString(styles.DangerText.Render(m.form.problem))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys.formKeys()))

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		styles.Modal.Width(44).Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
	)
}
