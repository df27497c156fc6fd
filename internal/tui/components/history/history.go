package history

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/heainKang/daily-me-app/internal/models"
)

var (
	dateStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(12)

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("62"))
)

const barWidth = 20

type Model struct {
	viewport viewport.Model
	history  models.History
	labels   func(models.Mood) string
}

// New builds the history view. labels renders a mood for display.
func New(width, height int, labels func(models.Mood) string) Model {
	return Model{viewport: viewport.New(width, height), labels: labels}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.history.Entries) == 0 {
		return "최근 7일 동안 기록된 기분이 없어요."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.render()
}

func (m *Model) SetHistory(h models.History) {
	m.history = h
	m.render()
}

func (m *Model) render() {
	var b strings.Builder
	for _, e := range m.history.Entries {
		line := fmt.Sprintf("%s %s", dateStyle.Render(e.Date), m.labels(e.Mood))
		if e.Note != "" {
			line += "  " + e.Note
		}
		b.WriteString(line + "\n")
	}

	b.WriteString("\n")
	for _, mood := range models.Moods {
		pct := m.history.Percentage(mood)
		bar := strings.Repeat("█", pct*barWidth/100)
		fmt.Fprintf(&b, "%-16s %s %3d%% (%d)\n", m.labels(mood), barStyle.Render(bar), pct, m.history.Counts[mood])
	}
	m.viewport.SetContent(b.String())
}
