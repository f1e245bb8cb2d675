package ui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/five82/shelf/internal/config"
)

// keyMap defines all keyboard bindings for the application.
type keyMap struct {
	// Global
	Quit       key.Binding
	Help       key.Binding
	CycleTheme key.Binding
	SwitchApp  key.Binding
	Activity   key.Binding

	// Navigation
	Up     key.Binding
	Down   key.Binding
	Top    key.Binding
	Bottom key.Binding

	// Films
	ToggleFavorite key.Binding
	CycleFilter    key.Binding

	// People
	Add    key.Binding
	Edit   key.Binding
	Delete key.Binding

	// Person form
	NextField key.Binding
	PrevField key.Binding
	Confirm   key.Binding
	Cancel    key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() keyMap {
	return keyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c", "q"),
			key.WithHelp("q", "Quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("h", "?"),
			key.WithHelp("h/?", "Toggle help"),
		),
		CycleTheme: key.NewBinding(
			key.WithKeys("T"),
			key.WithHelp("T", "Cycle theme"),
		),
		SwitchApp: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Films/People"),
		),
		Activity: key.NewBinding(
			key.WithKeys("L"),
			key.WithHelp("L", "Recent activity"),
		),

		Up: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("k/up", "Move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("j/down", "Move down"),
		),
		Top: key.NewBinding(
			key.WithKeys("g", "home"),
			key.WithHelp("g", "Go to top"),
		),
		Bottom: key.NewBinding(
			key.WithKeys("G", "end"),
			key.WithHelp("G", "Go to bottom"),
		),

		ToggleFavorite: key.NewBinding(
			key.WithKeys(" ", "space", "enter"),
			key.WithHelp("space", "Toggle favorite"),
		),
		CycleFilter: key.NewBinding(
			key.WithKeys("f"),
			key.WithHelp("f", "Cycle filter"),
		),

		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "Add person"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e", "enter"),
			key.WithHelp("e", "Edit person"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "x"),
			key.WithHelp("d", "Delete person"),
		),

		NextField: key.NewBinding(
			key.WithKeys("tab", "down"),
			key.WithHelp("tab", "Next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab", "up"),
			key.WithHelp("shift+tab", "Previous field"),
		),
		Confirm: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "Save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "Cancel"),
		),
	}
}

// bindingSet adapts a fixed list of bindings to help.KeyMap.
type bindingSet struct {
	short []key.Binding
	full  [][]key.Binding
}

func (b bindingSet) ShortHelp() []key.Binding  { return b.short }
func (b bindingSet) FullHelp() [][]key.Binding { return b.full }

// forApp returns the footer bindings for the given list.
func (k keyMap) forApp(app config.App) help.KeyMap {
	if app == config.AppPeople {
		return bindingSet{
			short: []key.Binding{k.Add, k.Edit, k.Delete, k.SwitchApp, k.Help, k.Quit},
			full: [][]key.Binding{
				{k.Up, k.Down, k.Top, k.Bottom},
				{k.Add, k.Edit, k.Delete},
				{k.SwitchApp, k.Activity, k.CycleTheme, k.Help, k.Quit},
			},
		}
	}
	return bindingSet{
		short: []key.Binding{k.ToggleFavorite, k.CycleFilter, k.SwitchApp, k.Help, k.Quit},
		full: [][]key.Binding{
			{k.Up, k.Down, k.Top, k.Bottom},
			{k.ToggleFavorite, k.CycleFilter},
			{k.SwitchApp, k.Activity, k.CycleTheme, k.Help, k.Quit},
		},
	}
}

// formKeys returns the footer bindings while the person form is open.
func (k keyMap) formKeys() help.KeyMap {
	return bindingSet{
		short: []key.Binding{k.NextField, k.Confirm, k.Cancel},
		full:  [][]key.Binding{{k.NextField, k.PrevField, k.Confirm, k.Cancel}},
	}
}
