// Package tui is the interactive journal: today's items, the daily report,
// the mood history and the current settings.
package tui

import (
	"errors"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/heainKang/daily-me-app/internal/constants"
	apperrors "github.com/heainKang/daily-me-app/internal/errors"
	"github.com/heainKang/daily-me-app/internal/journal"
	"github.com/heainKang/daily-me-app/internal/logger"
	"github.com/heainKang/daily-me-app/internal/models"
	"github.com/heainKang/daily-me-app/internal/tui/components/history"
	"github.com/heainKang/daily-me-app/internal/tui/components/report"
	"github.com/heainKang/daily-me-app/internal/tui/components/settings"
	"github.com/heainKang/daily-me-app/internal/tui/components/today"
	"github.com/heainKang/daily-me-app/internal/tui/forms"
)

type SessionState int

// Tab states come first, in tab order.
const (
	StateToday SessionState = iota
	StateReport
	StateHistory
	StateSettings
	StateOnboarding
	StateAnswer
	StateMood
	StateConfirmClear
)

const tabCount = int(StateSettings) + 1

var tabTitles = []string{"Today", "Report", "History", "Settings"}

type Model struct {
	journal       *journal.Service
	state         SessionState
	keys          KeyMap
	help          help.Model
	todayModel    today.Model
	reportModel   report.Model
	historyModel  history.Model
	settingsModel settings.Model
	form          *huh.Form
	onboarding    *forms.OnboardingModel
	answerForm    *forms.AnswerModel
	moodForm      *forms.MoodModel
	status        string
	errMsg        string
	quitting      bool
	width         int
	height        int
}

// NewModel loads today's state. A journal that still needs onboarding
// starts on the questionnaire.
func NewModel(svc *journal.Service) Model {
	m := Model{
		journal:       svc,
		state:         StateToday,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		todayModel:    today.New(0, 0),
		reportModel:   report.New(0, 0),
		historyModel:  history.New(0, 0, forms.MoodLabel),
		settingsModel: settings.New(models.Settings{}, models.UserProfile{}, 0, 0),
	}
	m.refresh()

	if svc.NeedsOnboarding() {
		m.startOnboarding()
	}
	return m
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateToday {
		keys = append(keys, m.keys.Enter, m.keys.Mood)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help},
		{m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Mood},
		{m.keys.Refresh, m.keys.Clear},
	}
}

func (m Model) Init() tea.Cmd {
	if m.form != nil {
		return m.form.Init()
	}
	return nil
}

// refresh reloads every tab from the journal.
func (m *Model) refresh() {
	svc := m.journal
	day := svc.Today()

	view, err := svc.Day(day)
	if err != nil {
		m.setError(err)
	} else {
		m.todayModel.SetDay(view, svc.Greeting())
	}

	rec, err := svc.Report(day)
	switch {
	case err == nil:
		m.reportModel.SetRecord(&rec)
	case errors.Is(err, journal.ErrNoAnalysis):
		m.reportModel.SetRecord(nil)
	default:
		m.setError(err)
	}

	h, err := svc.History(constants.DefaultHistoryDays)
	if err != nil {
		m.setError(err)
	} else {
		m.historyModel.SetHistory(h)
	}

	st, err := svc.Store().GetSettings()
	if err != nil {
		m.setError(apperrors.Internal(err))
	}
	m.settingsModel.Set(st, svc.Profile())
}

func (m *Model) setError(err error) {
	if apperrors.IsInternal(err) {
		logger.Error("TUI operation failed", "error", err)
	}
	m.errMsg = apperrors.UserMessage(err)
	m.status = ""
}

func (m *Model) setStatus(s string) {
	m.status = s
	m.errMsg = ""
}

func (m *Model) startOnboarding() {
	m.onboarding = forms.NewOnboardingModel()
	m.form = forms.NewOnboardingForm(m.onboarding)
	m.state = StateOnboarding
}

func (m *Model) startAnswer(item models.CatalogItem) tea.Cmd {
	m.answerForm = &forms.AnswerModel{Item: item}
	m.form = forms.NewAnswerForm(m.answerForm)
	m.state = StateAnswer
	return m.form.Init()
}

func (m *Model) startMood() tea.Cmd {
	m.moodForm = &forms.MoodModel{}
	m.form = forms.NewMoodForm(m.moodForm)
	m.state = StateMood
	return m.form.Init()
}

// completeOnboarding stores the questionnaire result.
func (m *Model) completeOnboarding(answers []journal.Answer) {
	res, err := m.journal.CompleteOnboarding(answers)
	if err != nil {
		m.setError(err)
		return
	}
	m.setStatus("기본 성향이 " + string(res.Type) + "(으)로 설정되었어요")
	m.refresh()
}

func (m *Model) skipOnboarding() {
	if err := m.journal.SkipOnboarding(); err != nil {
		m.setError(err)
		return
	}
	m.setStatus("온보딩을 건너뛰었어요")
	m.refresh()
}

func (m *Model) applyAnswer(itemID string, opt models.Option, note string) {
	if _, _, err := m.journal.Answer(itemID, opt, note); err != nil {
		m.setError(err)
		return
	}
	m.setStatus("✓ 응답을 저장했어요")
	m.refresh()
}

func (m *Model) applyMood(mood models.Mood, note string) {
	if _, _, err := m.journal.RecordMood(mood, note); err != nil {
		m.setError(err)
		return
	}
	m.setStatus("✓ 오늘의 기분을 기록했어요")
	m.refresh()
}

func (m *Model) clearAll() {
	if err := m.journal.ClearAll(); err != nil {
		m.setError(err)
		return
	}
	m.setStatus("모든 기록을 지웠어요")
	m.refresh()
	m.startOnboarding()
}
