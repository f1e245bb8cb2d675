package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/five82/shelf/internal/entity"
)

const (
	fieldName = iota
	fieldAge
	fieldCount
)

// personForm is the state of one create or edit interaction. A new form is
// built every time the dialog opens and dropped when it closes.
type personForm struct {
	editing string // uuid of the person being edited; empty when creating
	inputs  [fieldCount]textinput.Model
	focus   int
	problem string
}

func newPersonForm(existing *entity.Person) *personForm {
	name := textinput.New()
	name.Placeholder = "Name"
	name.Prompt = "Name: "
	name.CharLimit = 64
	name.Width = 32

	age := textinput.New()
	age.Placeholder = "Age"
	age.Prompt = "Age:  "
	age.CharLimit = 3
	age.Width = 32

	f := &personForm{inputs: [fieldCount]textinput.Model{name, age}}
	if existing != nil {
		f.editing = existing.UUID()
		f.inputs[fieldName].SetValue(existing.Name())
		f.inputs[fieldAge].SetValue(strconv.Itoa(existing.Age()))
	}
	f.inputs[fieldName].Focus()
	return f
}

func (f *personForm) title() string {
	if f.editing != "" {
		return "Edit person"
	}
	return "New person"
}

func (f *personForm) setFocus(i int) tea.Cmd {
	f.focus = (i + fieldCount) % fieldCount
	var cmd tea.Cmd
	for idx := range f.inputs {
		if idx == f.focus {
			cmd = f.inputs[idx].Focus()
			continue
		}
		f.inputs[idx].Blur()
	}
	return cmd
}

func (f *personForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

// values reports the parsed fields and whether both are present.
func (f *personForm) values() (string, int, bool) {
	name, age, ok := parsePersonInput(f.inputs[fieldName].Value(), f.inputs[fieldAge].Value())
	return name, age, ok
}

// parsePersonInput trims the name and parses the age. A blank name or an
// age that is not an integer counts as absent.
func parsePersonInput(nameText, ageText string) (name string, age int, ok bool) {
	name = strings.TrimSpace(nameText)
	age, err := strconv.Atoi(strings.TrimSpace(ageText))
	if err != nil {
		return name, 0, false
	}
	return name, age, name != ""
}
