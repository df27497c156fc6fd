package journal_test

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"

	apperrors "github.com/heainKang/daily-me-app/internal/errors"
	"github.com/heainKang/daily-me-app/internal/journal"
	"github.com/heainKang/daily-me-app/internal/models"
	"github.com/heainKang/daily-me-app/internal/storage"
)

type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

func newService(t *testing.T, start time.Time) (*journal.Service, *clock, storage.Provider) {
	t.Helper()
	store := storage.NewJSONStore(filepath.Join(t.TempDir(), "dailyme.json"))
	if err := store.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })

	c := &clock{t: start}
	n := 0
	svc := journal.New(store, time.UTC,
		journal.WithClock(c.Now),
		journal.WithIDGenerator(func() string { n++; return fmt.Sprintf("r%d", n) }),
	)
	return svc, c, store
}

func at(day, hour int) time.Time {
	return time.Date(2024, 5, day, hour, 0, 0, 0, time.UTC)
}

func allA() []journal.Answer {
	ids := []string{
		"initial_energy_1", "initial_info_1", "initial_decision_1", "initial_lifestyle_1",
		"initial_energy_2", "initial_info_2", "initial_decision_2", "initial_lifestyle_2",
	}
	answers := make([]journal.Answer, len(ids))
	for i, id := range ids {
		answers[i] = journal.Answer{ItemID: id, Selected: models.OptionA}
	}
	return answers
}

func TestCompleteOnboarding(t *testing.T) {
	svc, _, store := newService(t, at(1, 9))

	if !svc.NeedsOnboarding() {
		t.Fatal("fresh journal should need onboarding")
	}
	res, err := svc.CompleteOnboarding(allA())
	if err != nil {
		t.Fatalf("CompleteOnboarding() error = %v", err)
	}
	if res.Type != "ENTJ" {
		t.Errorf("type = %s, want ENTJ", res.Type)
	}
	if res.Scores.Get(models.AxisE) != 2 || res.Scores.Get(models.AxisI) != 0 {
		t.Errorf("scores = %s", res.Scores)
	}

	p := svc.Profile()
	if !p.IsBaseSet || p.BaseType != "ENTJ" {
		t.Errorf("profile = %+v", p)
	}
	rs, _ := store.GetResponses()
	if len(rs) != 0 {
		t.Errorf("onboarding answers should not be logged, got %d responses", len(rs))
	}
}

func TestCompleteOnboarding_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		answers []journal.Answer
		wantErr error
	}{
		{name: "empty", answers: nil, wantErr: journal.ErrNoAnswers},
		{name: "quote id", answers: []journal.Answer{{ItemID: "morning_1", Selected: models.OptionA}}, wantErr: journal.ErrUnknownItem},
		{name: "unknown id", answers: []journal.Answer{{ItemID: "nope", Selected: models.OptionA}}, wantErr: journal.ErrUnknownItem},
		{name: "bad option", answers: []journal.Answer{{ItemID: "initial_energy_1", Selected: "C"}}},
		{name: "duplicate", answers: []journal.Answer{
			{ItemID: "initial_energy_1", Selected: models.OptionA},
			{ItemID: "initial_energy_1", Selected: models.OptionB},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _, _ := newService(t, at(1, 9))
			_, err := svc.CompleteOnboarding(tt.answers)
			if err == nil {
				t.Fatal("expected error")
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
			if !svc.NeedsOnboarding() {
				t.Error("failed onboarding must not set the baseline")
			}
		})
	}
}

func TestSkipOnboarding(t *testing.T) {
	svc, _, _ := newService(t, at(1, 9))
	if err := svc.SkipOnboarding(); err != nil {
		t.Fatalf("SkipOnboarding() error = %v", err)
	}
	p := svc.Profile()
	if !p.IsBaseSet || p.BaseType != models.PersonalityUnset {
		t.Errorf("profile = %+v", p)
	}
	if p.HasBaseline() {
		t.Error("skipped onboarding should have no baseline")
	}

	_, rec, err := svc.Answer("morning_1", models.OptionA, "")
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if rec.DominantType != models.PersonalityUnset {
		t.Errorf("dominant = %s, want %s", rec.DominantType, models.PersonalityUnset)
	}
}

func TestAnswer(t *testing.T) {
	svc, c, store := newService(t, at(1, 8))
	if _, err := svc.CompleteOnboarding(allA()); err != nil {
		t.Fatal(err)
	}

	r, rec, err := svc.Answer("morning_1", models.OptionA, "좋은 시작")
	if err != nil {
		t.Fatalf("Answer() error = %v", err)
	}
	if r.ID != "r9" || r.Day != "2024-05-01" || r.Slot != models.SlotMorning || r.Note != "좋은 시작" {
		t.Errorf("response = %+v", r)
	}
	if rec.Date != "2024-05-01" || rec.DominantType != "ENTJ" || rec.Sentiment.Score != 1 {
		t.Errorf("record = %+v", rec)
	}

	c.t = at(1, 13)
	r2, rec, err := svc.Answer("afternoon_2", models.OptionB, "")
	if err != nil {
		t.Fatalf("second Answer() error = %v", err)
	}
	if r2.Slot != models.SlotAfternoon {
		t.Errorf("slot = %s, want afternoon", r2.Slot)
	}
	if len(rec.Responses) != 2 || rec.Sentiment.Score != 0 {
		t.Errorf("analysis should cover both answers: %+v", rec)
	}

	stored, err := store.GetAnalysis("2024-05-01")
	if err != nil {
		t.Fatalf("GetAnalysis() error = %v", err)
	}
	if stored.Feedback != rec.Feedback {
		t.Error("stored analysis differs from returned one")
	}
	if p := svc.Profile(); p.TotalResponses != 2 {
		t.Errorf("TotalResponses = %d, want 2", p.TotalResponses)
	}
}

func TestAnswer_Errors(t *testing.T) {
	svc, _, _ := newService(t, at(1, 8))

	if _, _, err := svc.Answer("unknown_1", models.OptionA, ""); !errors.Is(err, journal.ErrUnknownItem) {
		t.Errorf("unknown item error = %v", err)
	}
	if _, _, err := svc.Answer("morning_1", "C", ""); err == nil {
		t.Error("expected invalid option error")
	}
	if _, _, err := svc.Answer("morning_1", models.OptionA, strings.Repeat("가", 501)); !errors.Is(err, models.ErrNoteTooLong) {
		t.Errorf("long note error = %v", err)
	}
	if _, _, err := svc.Answer("morning_1", models.OptionA, ""); err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.Answer("morning_1", models.OptionB, ""); !errors.Is(err, journal.ErrAlreadyAnswered) {
		t.Errorf("repeat answer error = %v", err)
	}
}

func TestRecordMood(t *testing.T) {
	svc, _, _ := newService(t, at(2, 21))

	r, rec, err := svc.RecordMood(models.MoodTired, "긴 하루")
	if err != nil {
		t.Fatalf("RecordMood() error = %v", err)
	}
	if r.ItemID != "emotion_2024-05-02" || r.Selected != models.OptionB || r.Mood != models.MoodTired {
		t.Errorf("response = %+v", r)
	}
	if rec.Sentiment.Score != -1 {
		t.Errorf("sentiment = %v, want -1", rec.Sentiment.Score)
	}

	if _, _, err := svc.RecordMood(models.MoodGreat, ""); !errors.Is(err, journal.ErrMoodAlreadyRecorded) {
		t.Errorf("second mood error = %v", err)
	}
	if _, _, err := svc.RecordMood("angry", ""); err == nil {
		t.Error("expected invalid mood error")
	}
}

func TestReport(t *testing.T) {
	svc, _, _ := newService(t, at(3, 10))

	if _, err := svc.Report("2024-05-03"); !errors.Is(err, journal.ErrNoAnalysis) {
		t.Errorf("Report() error = %v, want ErrNoAnalysis", err)
	}
	if _, err := svc.Report("03/05/2024"); err == nil {
		t.Error("expected date format error")
	}

	if _, _, err := svc.Answer("morning_3", models.OptionB, ""); err != nil {
		t.Fatal(err)
	}
	rec, err := svc.Report("2024-05-03")
	if err != nil {
		t.Fatalf("Report() error = %v", err)
	}
	if len(rec.Recommendations) == 0 || rec.Feedback == "" {
		t.Errorf("report missing feedback: %+v", rec)
	}
}

func TestHistory(t *testing.T) {
	svc, c, _ := newService(t, at(1, 20))

	moods := map[int]models.Mood{1: models.MoodGreat, 2: models.MoodGood, 4: models.MoodGreat}
	for day := 1; day <= 4; day++ {
		c.t = at(day, 20)
		if mood, ok := moods[day]; ok {
			if _, _, err := svc.RecordMood(mood, fmt.Sprintf("day %d", day)); err != nil {
				t.Fatal(err)
			}
		}
		// a later answer must not hide the recorded mood
		if _, _, err := svc.Answer("evening_1", models.OptionA, ""); err != nil {
			t.Fatal(err)
		}
	}

	h, err := svc.History(7)
	if err != nil {
		t.Fatalf("History() error = %v", err)
	}
	if len(h.Entries) != 3 {
		t.Fatalf("entries = %+v", h.Entries)
	}
	if h.Entries[0].Date != "2024-05-04" || h.Entries[2].Date != "2024-05-01" {
		t.Errorf("entries not newest first: %+v", h.Entries)
	}
	if h.Counts[models.MoodGreat] != 2 || h.Counts[models.MoodGood] != 1 {
		t.Errorf("counts = %v", h.Counts)
	}
	if h.Entries[0].Note != "day 4" {
		t.Errorf("note = %q", h.Entries[0].Note)
	}

	short, err := svc.History(2)
	if err != nil {
		t.Fatal(err)
	}
	if len(short.Entries) != 1 {
		t.Errorf("2-day window entries = %+v", short.Entries)
	}
	if _, err := svc.History(0); err == nil {
		t.Error("expected error for zero days")
	}
}

func TestDay(t *testing.T) {
	svc, _, _ := newService(t, at(1, 13))

	if _, _, err := svc.Answer("afternoon_1", models.OptionA, ""); err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.RecordMood(models.MoodNormal, ""); err != nil {
		t.Fatal(err)
	}

	view, err := svc.Day(svc.Today())
	if err != nil {
		t.Fatalf("Day() error = %v", err)
	}
	if view.Slot != models.SlotAfternoon {
		t.Errorf("slot = %s", view.Slot)
	}
	if len(view.Quotes) != 3 || len(view.Questions) != 3 {
		t.Errorf("quotes = %d questions = %d", len(view.Quotes), len(view.Questions))
	}
	if view.Answered["afternoon_1"] != models.OptionA {
		t.Errorf("answered = %v", view.Answered)
	}
	if view.Mood == nil || view.Mood.Mood != models.MoodNormal {
		t.Errorf("mood = %+v", view.Mood)
	}
}

func TestClearAll(t *testing.T) {
	svc, _, store := newService(t, at(1, 9))
	if _, err := svc.CompleteOnboarding(allA()); err != nil {
		t.Fatal(err)
	}
	if _, _, err := svc.Answer("morning_2", models.OptionA, ""); err != nil {
		t.Fatal(err)
	}
	if err := svc.ClearAll(); err != nil {
		t.Fatalf("ClearAll() error = %v", err)
	}
	if !svc.NeedsOnboarding() {
		t.Error("profile should be reset")
	}
	if rs, _ := store.GetResponses(); len(rs) != 0 {
		t.Errorf("responses = %d after clear", len(rs))
	}
	if _, err := svc.Report("2024-05-01"); !errors.Is(err, journal.ErrNoAnalysis) {
		t.Errorf("Report() after clear error = %v", err)
	}
}

type brokenStore struct{ storage.Provider }

func (brokenStore) GetProfile() (models.UserProfile, error) {
	return models.UserProfile{}, errors.New("disk I/O error")
}

func (brokenStore) GetResponsesForDay(string) ([]models.Response, error) {
	return nil, errors.New("disk I/O error")
}

func TestGatewayFailuresAreInternal(t *testing.T) {
	c := &clock{t: at(1, 9)}
	svc := journal.New(brokenStore{}, time.UTC, journal.WithClock(c.Now))

	p := svc.Profile()
	if p.IsBaseSet || !p.CreatedAt.Equal(c.t) {
		t.Errorf("expected default profile, got %+v", p)
	}

	_, _, err := svc.Answer("morning_1", models.OptionA, "")
	if !apperrors.IsInternal(err) {
		t.Errorf("Answer() error = %v, want internal", err)
	}
	if apperrors.UserMessage(err) != apperrors.GenericMessage {
		t.Errorf("user message = %q", apperrors.UserMessage(err))
	}
}

func TestGreetingFor(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{7, "좋은 아침이에요! ☀️"},
		{12, "좋은 오후예요! 🌤️"},
		{23, "편안한 저녁이에요! 🌙"},
		{3, "편안한 저녁이에요! 🌙"},
	}
	for _, tt := range tests {
		if got := journal.GreetingFor(at(1, tt.hour)); got != tt.want {
			t.Errorf("GreetingFor(%d) = %q, want %q", tt.hour, got, tt.want)
		}
	}
}
