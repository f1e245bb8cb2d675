package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/five82/shelf/internal/activity"
)

const activityLimit = 20

type activityState struct {
	entries []activity.Entry
	err     error
	loaded  bool
}

type activityMsg struct {
	entries []activity.Entry
	err     error
}

func loadActivityCmd(path string) tea.Cmd {
	return func() tea.Msg {
		entries, err := activity.Recent(path, activityLimit)
		return activityMsg{entries: entries, err: err}
	}
}

// renderActivity renders the recent log entries overlay.
func (m Model) renderActivity() string {
	styles := m.theme.Styles()

	var b strings.Builder
	b.WriteString(styles.Text.Bold(true).Render("Recent activity"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	switch {
	case m.logPath == "":
		b.WriteString(styles.MutedText.Render("Logging is disabled (set log_path in config.toml)."))
	case !m.activity.loaded:
		b.WriteString(styles.MutedText.Render("Loading..."))
	case m.activity.err != nil:
		b.WriteString(styles.DangerText.Render(fmt.Sprintf("Could not read log: %v", m.activity.err)))
	case len(m.activity.entries) == 0:
		b.WriteString(styles.MutedText.Render("Nothing logged yet."))
	default:
		for _, e := range m.activity.entries {
			stamp := "--:--:--"
			if !e.Time.IsZero() {
				stamp = e.Time.Local().Format("15:04:05")
			}
			b.WriteString(styles.FaintText.Render(stamp))
			b.WriteString(" ")
			b.WriteString(m.levelStyle(e.Level).Render(fmt.Sprintf("%-5s", e.Level)))
			b.WriteString(" ")
			b.WriteString(styles.Text.Render(e.Message))
			if s := e.Summary(); s != "" {
				b.WriteString(" ")
				b.WriteString(styles.MutedText.Render(truncate(s, 48)))
			}
			b.WriteString("\n")
		}
	}

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		styles.Modal.Render(b.String()),
		lipgloss.WithWhitespaceChars(" "),
	)
}

func (m Model) levelStyle(level string) lipgloss.Style {
	styles := m.theme.Styles()
	switch level {
	case "warn":
		return styles.WarningText
	case "error", "dpanic", "panic", "fatal":
		return styles.DangerText
	case "debug":
		return styles.FaintText
	default:
		return styles.AccentText
	}
}
