package tui

import (
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/heainKang/daily-me-app/internal/catalog"
	"github.com/heainKang/daily-me-app/internal/journal"
	"github.com/heainKang/daily-me-app/internal/models"
	"github.com/heainKang/daily-me-app/internal/storage"
	"github.com/heainKang/daily-me-app/internal/tui/components/today"
)

func newJournal(t *testing.T) *journal.Service {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "dailyme.json"))
	if err := store.Init(); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { _ = store.Close() })
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	return journal.New(store, time.UTC, journal.WithClock(func() time.Time { return now }))
}

// onboarded returns a model past the questionnaire.
func onboarded(t *testing.T) Model {
	t.Helper()
	m := NewModel(newJournal(t))
	m.skipOnboarding()
	m.closeForm()
	return m
}

func press(t *testing.T, m Model, k tea.KeyMsg) Model {
	t.Helper()
	next, _ := m.Update(k)
	return next.(Model)
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModelStartsOnboarding(t *testing.T) {
	m := NewModel(newJournal(t))
	if m.state != StateOnboarding || m.form == nil {
		t.Fatalf("state = %v, want onboarding form", m.state)
	}
	if m.Init() == nil {
		t.Error("Init should start the onboarding form")
	}

	m.skipOnboarding()
	m.closeForm()
	if m.state != StateToday {
		t.Errorf("state after skip = %v", m.state)
	}
	if p := m.journal.Profile(); !p.IsBaseSet || p.HasBaseline() {
		t.Errorf("profile after skip = %+v", p)
	}
}

func TestTabNavigation(t *testing.T) {
	m := onboarded(t)

	tests := []struct {
		key  tea.KeyMsg
		want SessionState
	}{
		{tea.KeyMsg{Type: tea.KeyTab}, StateReport},
		{tea.KeyMsg{Type: tea.KeyTab}, StateHistory},
		{tea.KeyMsg{Type: tea.KeyTab}, StateSettings},
		{tea.KeyMsg{Type: tea.KeyTab}, StateToday},
		{tea.KeyMsg{Type: tea.KeyShiftTab}, StateSettings},
	}
	for _, tt := range tests {
		m = press(t, m, tt.key)
		if m.state != tt.want {
			t.Fatalf("after %s state = %v, want %v", tt.key, m.state, tt.want)
		}
	}
}

func TestAnswerAndMood(t *testing.T) {
	m := onboarded(t)
	item := catalog.QuoteOfDay(m.journal.Now(), models.SlotMorning)

	next, _ := m.Update(today.AnswerItemMsg{Item: item})
	m = next.(Model)
	if m.state != StateAnswer || m.answerForm.Item.ID != item.ID {
		t.Fatalf("state = %v, want answer form for %s", m.state, item.ID)
	}
	m.closeForm()

	m.applyAnswer(item.ID, models.OptionA, "")
	if m.errMsg != "" {
		t.Fatalf("answer error: %s", m.errMsg)
	}
	if m.reportModel.Record == nil || len(m.reportModel.Record.Responses) != 1 {
		t.Errorf("report not refreshed: %+v", m.reportModel.Record)
	}

	m.applyMood(models.MoodGood, "산책")
	if !m.todayModel.MoodRecorded() {
		t.Error("mood not shown on the today tab")
	}
	m.applyMood(models.MoodSad, "")
	if m.errMsg == "" {
		t.Error("second mood should report an error")
	}

	m = press(t, m, runes("m"))
	if m.state != StateToday || !strings.Contains(m.status, "이미") {
		t.Errorf("mood key after recording: state %v status %q", m.state, m.status)
	}
}

func TestConfirmClear(t *testing.T) {
	m := onboarded(t)
	m.applyMood(models.MoodGreat, "")

	m = press(t, m, runes("X"))
	if m.state != StateConfirmClear {
		t.Fatalf("state = %v, want confirm", m.state)
	}
	m = press(t, m, runes("n"))
	if m.state != StateToday {
		t.Fatalf("state after n = %v", m.state)
	}
	if rs, _ := m.journal.AllResponses(); len(rs) != 1 {
		t.Fatalf("responses cleared on cancel")
	}

	m = press(t, m, runes("X"))
	m = press(t, m, runes("y"))
	if rs, _ := m.journal.AllResponses(); len(rs) != 0 {
		t.Errorf("responses after clear = %d", len(rs))
	}
	if m.state != StateOnboarding {
		t.Errorf("state after clear = %v, want onboarding", m.state)
	}
}

func TestView(t *testing.T) {
	m := onboarded(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m = next.(Model)

	out := m.View()
	for _, want := range []string{"Today", "Report", "History", "Settings", "좋은 아침이에요"} {
		if !strings.Contains(out, want) {
			t.Errorf("view missing %q", want)
		}
	}

	m = press(t, m, runes("q"))
	if !m.quitting || m.View() != "" {
		t.Error("q should quit")
	}
}
