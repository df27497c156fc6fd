package settings

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/heainKang/daily-me-app/internal/models"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205")).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			Width(25)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255")).
			Bold(true)

	sectionStyle = lipgloss.NewStyle().
			MarginTop(1).
			MarginBottom(1)
)

// Model shows the profile and settings read-only. Editing stays on the CLI.
type Model struct {
	settings models.Settings
	profile  models.UserProfile
	width    int
	height   int
}

func New(settings models.Settings, profile models.UserProfile, width, height int) Model {
	return Model{settings: settings, profile: profile, width: width, height: height}
}

func (m *Model) Set(settings models.Settings, profile models.UserProfile) {
	m.settings = settings
	m.profile = profile
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(tea.Msg) (Model, tea.Cmd) {
	return m, nil
}

func row(label, value string) string {
	return fmt.Sprintf("%s %s", labelStyle.Render(label), valueStyle.Render(value))
}

func (m Model) View() string {
	if m.width == 0 {
		return ""
	}

	baseType := "설정 안 됨"
	if m.profile.HasBaseline() {
		baseType = string(m.profile.BaseType)
	} else if m.profile.IsBaseSet {
		baseType = "건너뜀"
	}

	profile := lipgloss.JoinVertical(lipgloss.Left,
		row("Base type:", baseType),
		row("Total responses:", fmt.Sprintf("%d", m.profile.TotalResponses)),
	)
	notifications := lipgloss.JoinVertical(lipgloss.Left,
		row("Timezone:", m.settings.Timezone),
		row("Enabled:", fmt.Sprintf("%t", m.settings.NotificationsEnabled)),
		row("Morning:", fmt.Sprintf("%02d:00", m.settings.NotifyHour(models.SlotMorning))),
		row("Afternoon:", fmt.Sprintf("%02d:00", m.settings.NotifyHour(models.SlotAfternoon))),
		row("Evening:", fmt.Sprintf("%02d:00", m.settings.NotifyHour(models.SlotEvening))),
	)

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("240")).
		Italic(true).
		MarginTop(2).
		Render("Change settings with 'dailyme settings'")

	content := lipgloss.JoinVertical(lipgloss.Left,
		sectionStyle.Render(titleStyle.Render("Profile")+"\n"+profile),
		sectionStyle.Render(titleStyle.Render("Notifications")+"\n"+notifications),
		hint,
	)
	return lipgloss.Place(m.width, m.height, lipgloss.Left, lipgloss.Top,
		lipgloss.NewStyle().Padding(1, 2).Render(content))
}

func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}
