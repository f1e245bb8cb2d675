package ui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/five82/shelf/internal/config"
	"github.com/five82/shelf/internal/entity"
	"github.com/five82/shelf/internal/prefs"
	"github.com/five82/shelf/internal/state"
	"github.com/five82/shelf/internal/views"
)

// Options configures the UI.
type Options struct {
	Context    context.Context
	Films      *state.FilmStore
	People     *state.PersonStore
	Logger     *zap.Logger
	StartApp   config.App
	ThemeName  string
	FilmFilter views.Mode
	PrefsPath  string
	LogPath    string        // shown by the activity overlay; empty disables it
	NewID      entity.IDFunc // nil uses entity.DefaultIDFunc
}

// Model is the root application state for Bubble Tea.
type Model struct {
	// Configuration
	ctx       context.Context
	films     *state.FilmStore
	people    *state.PersonStore
	logger    *zap.Logger
	prefsPath string
	logPath   string
	newID     entity.IDFunc
	bridge    *bridge

	// UI state
	theme    Theme
	keys     keyMap
	help     help.Model
	current  config.App
	width    int
	height   int
	ready    bool
	showHelp bool
	flash    string

	// Activity overlay
	showActivity bool
	activity     activityState

	// Films state
	filmSnap   state.Snapshot[entity.Film]
	filter     *views.Filter
	filmCursor int

	// People state
	peopleSnap   state.Snapshot[entity.Person]
	personCursor int
	form         *personForm
}

// New creates a new Bubble Tea model.
func New(opts Options) Model {
	ctx := opts.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	films := opts.Films
	if films == nil {
		films = state.NewFilmStore(nil)
	}
	people := opts.People
	if people == nil {
		people = state.NewPersonStore(nil)
	}

	themeName := opts.ThemeName
	if themeName == "" {
		themeName = themeOrder[0]
	}

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	newID := opts.NewID
	if newID == nil {
		newID = entity.DefaultIDFunc
	}

	current := opts.StartApp
	if current != config.AppPeople {
		current = config.AppFilms
	}

	return Model{
		ctx:        ctx,
		films:      films,
		people:     people,
		logger:     logger,
		prefsPath:  prefsPath,
		logPath:    opts.LogPath,
		newID:      newID,
		bridge:     newBridge(films, people),
		theme:      GetTheme(themeName),
		keys:       DefaultKeyMap(),
		help:       help.New(),
		current:    current,
		filmSnap:   films.Snapshot(),
		filter:     views.NewFilter(opts.FilmFilter),
		peopleSnap: people.Snapshot(),
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		tea.EnterAltScreen,
		m.bridge.waitFilms(),
		m.bridge.waitPeople(),
	)
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.ready = true
		return m, nil

	case filmsMsg:
		if msg.snap.Version >= m.filmSnap.Version {
			m.filmSnap = msg.snap
			m.clampFilmCursor()
		}
		return m, m.bridge.waitFilms()

	case peopleMsg:
		if msg.snap.Version >= m.peopleSnap.Version {
			m.peopleSnap = msg.snap
			m.clampPersonCursor()
		}
		return m, m.bridge.waitPeople()

	case activityMsg:
		m.activity = activityState{entries: msg.entries, err: msg.err, loaded: true}
		return m, nil
	}

	if m.form != nil {
		return m, m.form.update(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.showHelp {
		return m.renderHelp()
	}
	if m.showActivity {
		return m.renderActivity()
	}
	if m.form != nil {
		return m.renderForm()
	}
	return m.renderMain()
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.form != nil {
		return m.handleFormKey(msg)
	}

	if m.showHelp {
		// Any key closes help
		m.showHelp = false
		return m, nil
	}

	if m.showActivity {
		m.showActivity = false
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.bridge.close()
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.showHelp = true
		return m, nil

	case key.Matches(msg, m.keys.Activity):
		m.showActivity = true
		m.activity = activityState{}
		return m, loadActivityCmd(m.logPath)

	case key.Matches(msg, m.keys.CycleTheme):
		m.theme = GetTheme(NextTheme(m.theme.Name))
		m.savePrefs()
		return m, nil

	case key.Matches(msg, m.keys.SwitchApp):
		if m.current == config.AppFilms {
			m.current = config.AppPeople
		} else {
			m.current = config.AppFilms
		}
		m.flash = ""
		return m, nil
	}

	switch m.current {
	case config.AppPeople:
		return m.handlePeopleKey(msg)
	default:
		return m.handleFilmsKey(msg)
	}
}

func (m Model) savePrefs() {
	p := prefs.Prefs{Theme: m.theme.Name, FilmFilter: m.filter.Mode().String()}
	if err := prefs.Save(m.prefsPath, p); err != nil {
		m.logger.Warn("save prefs failed", zap.String("path", m.prefsPath), zap.Error(err))
	}
}

// moveCursor applies a navigation key to cursor over n rows.
func (m Model) moveCursor(msg tea.KeyMsg, cursor, n int) (int, bool) {
	if n == 0 {
		return 0, false
	}
	switch {
	case key.Matches(msg, m.keys.Down):
		if cursor < n-1 {
			cursor++
		}
	case key.Matches(msg, m.keys.Up):
		if cursor > 0 {
			cursor--
		}
	case key.Matches(msg, m.keys.Top):
		cursor = 0
	case key.Matches(msg, m.keys.Bottom):
		cursor = n - 1
	default:
		return cursor, false
	}
	return cursor, true
}

// renderMain renders header, the active list and the footer.
func (m Model) renderMain() string {
	var b strings.Builder
	b.WriteString(m.renderHeader())
	b.WriteString("\n\n")

	switch m.current {
	case config.AppPeople:
		b.WriteString(m.renderPeople())
	default:
		b.WriteString(m.renderFilms())
	}

	b.WriteString("\n")
	if m.flash != "" {
		b.WriteString(m.theme.Styles().MutedText.Render(" " + m.flash))
		b.WriteString("\n")
	}
	b.WriteString(m.theme.Styles().Footer.Render(m.help.View(m.keys.forApp(m.current))))
	return b.String()
}

func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	tab := func(label string, app config.App) string {
		if m.current == app {
			return styles.TabOn.Render(label)
		}
		return styles.TabOff.Render(label)
	}

	parts := []string{
		styles.Logo.Render("SHELF"),
		tab("Films", config.AppFilms),
		tab("People", config.AppPeople),
	}
	switch m.current {
	case config.AppPeople:
		parts = append(parts, styles.MutedText.Render(m.peopleSummary()))
	default:
		parts = append(parts, styles.MutedText.Render(m.filmSummary()))
	}
	return styles.Header.Render(strings.Join(parts, " "))
}

// Run starts the Bubble Tea program and stops it when ctx is cancelled.
func Run(opts Options) error {
	m := New(opts)
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(m.ctx))
	_, err := p.Run()
	m.bridge.close()
	if err != nil && m.ctx.Err() != nil {
		return nil
	}
	return err
}
