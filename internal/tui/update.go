package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/heainKang/daily-me-app/internal/tui/components/today"
)

// chrome is the height taken by the tabs, status line and help.
const chrome = 6

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		w, h := msg.Width-4, msg.Height-chrome
		m.todayModel.SetSize(w, h)
		m.reportModel.SetSize(w, h)
		m.historyModel.SetSize(w, h)
		m.settingsModel.SetSize(w, h)
		if m.form != nil {
			m.form = m.form.WithWidth(w)
		}
		return m, nil
	}

	switch m.state {
	case StateOnboarding, StateAnswer, StateMood:
		return m.updateForm(msg)
	case StateConfirmClear:
		return m.updateConfirmClear(msg)
	}

	switch msg := msg.(type) {
	case today.AnswerItemMsg:
		return m, m.startAnswer(msg.Item)
	case today.RecordMoodMsg:
		return m, m.startMood()
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, m.keys.Tab):
			m.state = SessionState((int(m.state) + 1) % tabCount)
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = SessionState((int(m.state) + tabCount - 1) % tabCount)
			return m, nil
		case key.Matches(msg, m.keys.Refresh):
			m.refresh()
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			m.state = StateConfirmClear
			return m, nil
		case key.Matches(msg, m.keys.Mood) && m.state == StateToday && m.todayModel.MoodRecorded():
			m.setStatus("오늘의 기분은 이미 기록했어요")
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.state {
	case StateToday:
		m.todayModel, cmd = m.todayModel.Update(msg)
	case StateReport:
		m.reportModel, cmd = m.reportModel.Update(msg)
	case StateHistory:
		m.historyModel, cmd = m.historyModel.Update(msg)
	case StateSettings:
		m.settingsModel, cmd = m.settingsModel.Update(msg)
	}
	return m, cmd
}

func (m Model) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyCtrlC {
		m.quitting = true
		return m, tea.Quit
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		switch m.state {
		case StateOnboarding:
			m.completeOnboarding(m.onboarding.Answers())
		case StateAnswer:
			m.applyAnswer(m.answerForm.Item.ID, m.answerForm.Selected, m.answerForm.Note)
		case StateMood:
			m.applyMood(m.moodForm.Mood, m.moodForm.Note)
		}
		m.closeForm()
		return m, nil
	case huh.StateAborted:
		// Leaving the questionnaire is the same as skipping it.
		if m.state == StateOnboarding {
			m.skipOnboarding()
		}
		m.closeForm()
		return m, nil
	}
	return m, cmd
}

func (m *Model) closeForm() {
	m.form = nil
	m.onboarding = nil
	m.answerForm = nil
	m.moodForm = nil
	m.state = StateToday
}

func (m Model) updateConfirmClear(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}
	switch keyMsg.String() {
	case "y", "Y":
		m.clearAll()
		if m.form != nil {
			return m, m.form.Init()
		}
		m.state = StateToday
	case "n", "N", "esc", "q":
		m.state = StateToday
	}
	return m, nil
}
