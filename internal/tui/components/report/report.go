package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/heainKang/daily-me-app/internal/models"
)

var (
	typeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("205")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Width(12)

	feedbackStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252")).
			Padding(1, 0)
)

// Model renders one day's analysis in a scrollable viewport.
type Model struct {
	viewport viewport.Model
	Record   *models.AnalysisRecord
}

func New(width, height int) Model {
	return Model{viewport: viewport.New(width, height)}
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
	if m.Record == nil {
		return "아직 오늘의 기록이 없어요. 명언이나 질문에 답해 보세요."
	}
	return m.viewport.View()
}

func (m *Model) SetSize(width, height int) {
	m.viewport.Width = width
	m.viewport.Height = height
	m.render()
}

// SetRecord shows rec, or the empty state when rec is nil.
func (m *Model) SetRecord(rec *models.AnalysisRecord) {
	m.Record = rec
	m.render()
}

func (m *Model) render() {
	if m.Record == nil {
		m.viewport.SetContent("")
		return
	}
	rec := m.Record

	var b strings.Builder
	fmt.Fprintf(&b, "%s  %s\n", rec.Date, typeStyle.Render(string(rec.DominantType)))
	b.WriteString(feedbackStyle.Render(rec.Feedback))
	b.WriteString("\n")

	if len(rec.Recommendations) > 0 {
		b.WriteString("추천 활동\n")
		for _, r := range rec.Recommendations {
			fmt.Fprintf(&b, "  • %s\n", r)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "%s %d\n", labelStyle.Render("응답"), len(rec.Responses))
	fmt.Fprintf(&b, "%s %+.2f\n", labelStyle.Render("감정 점수"), rec.Sentiment.Score)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("점수"), rec.Scores)
	m.viewport.SetContent(b.String())
}
