package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string
	switch m.state {
	case StateToday:
		content = docStyle.Render(m.todayModel.View())
	case StateReport:
		content = docStyle.Render(m.reportModel.View())
	case StateHistory:
		content = docStyle.Render(m.historyModel.View())
	case StateSettings:
		content = m.settingsModel.View()
	case StateOnboarding, StateAnswer, StateMood:
		content = docStyle.Render(m.form.View())
	case StateConfirmClear:
		content = m.viewConfirmClear()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.viewStatus(),
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	tabs := make([]string, 0, len(tabTitles))
	for i, title := range tabTitles {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewStatus() string {
	if m.errMsg != "" {
		return dangerStyle.Render("✗ " + m.errMsg)
	}
	if m.status != "" {
		return statusStyle.Render(m.status)
	}
	return ""
}

func (m Model) viewConfirmClear() string {
	return lipgloss.Place(m.width, m.height-chrome,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("모든 기록을 지울까요?"),
			"프로필, 응답, 분석이 모두 삭제돼요. 설정은 유지돼요.",
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
