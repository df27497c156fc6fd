// Package storagetest holds the behavior every storage.Provider must share.
package storagetest

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/heainKang/daily-me-app/internal/models"
	"github.com/heainKang/daily-me-app/internal/storage"
)

// Factory returns a freshly initialized provider. It should register its own cleanup.
type Factory func(t *testing.T) storage.Provider

// Response builds a valid response for tests.
func Response(id, itemID string, opt models.Option, day string) models.Response {
	ts, _ := time.Parse(time.RFC3339, day+"T10:00:00Z")
	return models.Response{
		ID:        id,
		ItemID:    itemID,
		Selected:  opt,
		Timestamp: ts,
		Day:       day,
		Slot:      models.SlotMorning,
	}
}

// Run exercises the full Provider contract against new providers from factory.
func Run(t *testing.T, factory Factory) {
	t.Run("Settings", func(t *testing.T) { testSettings(t, factory(t)) })
	t.Run("DefaultProfile", func(t *testing.T) { testDefaultProfile(t, factory(t)) })
	t.Run("ProfileRoundTrip", func(t *testing.T) { testProfileRoundTrip(t, factory(t)) })
	t.Run("AppendResponse", func(t *testing.T) { testAppendResponse(t, factory(t)) })
	t.Run("ResponsesForDay", func(t *testing.T) { testResponsesForDay(t, factory(t)) })
	t.Run("DuplicateResponse", func(t *testing.T) { testDuplicateResponse(t, factory(t)) })
	t.Run("AnalysisUpsert", func(t *testing.T) { testAnalysisUpsert(t, factory(t)) })
	t.Run("AnalysisNotFound", func(t *testing.T) { testAnalysisNotFound(t, factory(t)) })
	t.Run("AllAnalysesSorted", func(t *testing.T) { testAllAnalyses(t, factory(t)) })
	t.Run("ClearAll", func(t *testing.T) { testClearAll(t, factory(t)) })
}

func testSettings(t *testing.T, p storage.Provider) {
	got, err := p.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if got != models.DefaultSettings() {
		t.Errorf("initial settings = %+v, want defaults", got)
	}

	want := models.Settings{Timezone: "Asia/Seoul", NotificationsEnabled: false, MorningNotifyHour: 8, AfternoonNotifyHour: 13, EveningNotifyHour: 20}
	if err := p.SaveSettings(want); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}
	got, err = p.GetSettings()
	if err != nil {
		t.Fatalf("GetSettings() error = %v", err)
	}
	if got != want {
		t.Errorf("GetSettings() = %+v, want %+v", got, want)
	}
}

func testDefaultProfile(t *testing.T, p storage.Provider) {
	profile, err := p.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if profile.IsBaseSet || profile.BaseType != "" || profile.TotalResponses != 0 {
		t.Errorf("expected default profile, got %+v", profile)
	}
	if profile.CreatedAt.IsZero() {
		t.Error("default profile should carry a creation time")
	}
}

func testProfileRoundTrip(t *testing.T, p storage.Provider) {
	created := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	want := models.UserProfile{BaseType: "INFJ", IsBaseSet: true, CreatedAt: created}
	if err := p.SaveProfile(want); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}
	got, err := p.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if got.BaseType != want.BaseType || !got.IsBaseSet || !got.CreatedAt.Equal(created) {
		t.Errorf("GetProfile() = %+v, want %+v", got, want)
	}

	skipped := models.UserProfile{BaseType: models.PersonalityUnset, IsBaseSet: true, CreatedAt: created}
	if err := p.SaveProfile(skipped); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}
	got, _ = p.GetProfile()
	if got.BaseType != models.PersonalityUnset || got.HasBaseline() {
		t.Errorf("skipped profile = %+v", got)
	}
}

func testAppendResponse(t *testing.T, p storage.Provider) {
	for i := 0; i < 3; i++ {
		r := Response(fmt.Sprintf("r%d", i), fmt.Sprintf("morning_%d", i+1), models.OptionA, "2024-01-01")
		if i == 2 {
			r.Mood = models.MoodTired
			r.Note = "긴 하루"
			r.Selected = models.OptionB
		}
		if err := p.AppendResponse(r); err != nil {
			t.Fatalf("AppendResponse(%d) error = %v", i, err)
		}
	}

	got, err := p.GetResponses()
	if err != nil {
		t.Fatalf("GetResponses() error = %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("GetResponses() returned %d, want 3", len(got))
	}
	for i, r := range got {
		if r.ID != fmt.Sprintf("r%d", i) {
			t.Errorf("response %d id = %s, insertion order not kept", i, r.ID)
		}
	}
	last := got[2]
	if last.Mood != models.MoodTired || last.Note != "긴 하루" || last.Selected != models.OptionB {
		t.Errorf("last response fields not kept: %+v", last)
	}
	if !last.Timestamp.Equal(Response("", "", "", "2024-01-01").Timestamp) {
		t.Errorf("timestamp not kept: %v", last.Timestamp)
	}

	profile, err := p.GetProfile()
	if err != nil {
		t.Fatalf("GetProfile() error = %v", err)
	}
	if profile.TotalResponses != 3 {
		t.Errorf("TotalResponses = %d, want 3", profile.TotalResponses)
	}
}

func testDuplicateResponse(t *testing.T, p storage.Provider) {
	mood := func(id, item, day string) models.Response {
		r := Response(id, item, models.OptionA, day)
		r.Mood = models.MoodGreat
		return r
	}
	seed := []models.Response{
		Response("r1", "morning_1", models.OptionA, "2024-01-01"),
		mood("r2", "emotion_2024-01-01", "2024-01-01"),
	}
	for _, r := range seed {
		if err := p.AppendResponse(r); err != nil {
			t.Fatalf("AppendResponse(%s) error = %v", r.ID, err)
		}
	}

	tests := []struct {
		name    string
		r       models.Response
		wantErr error
	}{
		{"same item same day", Response("r3", "morning_1", models.OptionB, "2024-01-01"), storage.ErrDuplicateResponse},
		{"second mood same day", mood("r4", "emotion_2024-01-01_b", "2024-01-01"), storage.ErrDuplicateResponse},
		{"same item next day", Response("r5", "morning_1", models.OptionB, "2024-01-02"), nil},
		{"mood next day", mood("r6", "emotion_2024-01-02", "2024-01-02"), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := p.AppendResponse(tt.r)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("AppendResponse() error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	all, err := p.GetResponses()
	if err != nil {
		t.Fatalf("GetResponses() error = %v", err)
	}
	if len(all) != 4 {
		t.Errorf("stored %d responses, want 4", len(all))
	}
	profile, _ := p.GetProfile()
	if profile.TotalResponses != 4 {
		t.Errorf("TotalResponses = %d, want 4", profile.TotalResponses)
	}
}

func testResponsesForDay(t *testing.T, p storage.Provider) {
	days := []string{"2024-01-01", "2024-01-02", "2024-01-01"}
	for i, d := range days {
		if err := p.AppendResponse(Response(fmt.Sprintf("r%d", i), fmt.Sprintf("evening_%d", i+1), models.OptionA, d)); err != nil {
			t.Fatalf("AppendResponse() error = %v", err)
		}
	}

	got, err := p.GetResponsesForDay("2024-01-01")
	if err != nil {
		t.Fatalf("GetResponsesForDay() error = %v", err)
	}
	if len(got) != 2 || got[0].ID != "r0" || got[1].ID != "r2" {
		t.Errorf("GetResponsesForDay() = %+v", got)
	}

	none, err := p.GetResponsesForDay("2023-12-31")
	if err != nil {
		t.Fatalf("GetResponsesForDay() error = %v", err)
	}
	if len(none) != 0 {
		t.Errorf("expected no responses, got %d", len(none))
	}
}

func analysis(date, feedback string) models.AnalysisRecord {
	return models.AnalysisRecord{
		Date:            date,
		DominantType:    "ENFP",
		Sentiment:       models.Sentiment{Score: 0.5, Comparative: 0.5},
		Responses:       []models.Response{Response("a1", "morning_1", models.OptionA, date)},
		Feedback:        feedback,
		Recommendations: []string{"one", "two", "three", "four"},
	}
}

func testAnalysisUpsert(t *testing.T, p storage.Provider) {
	if err := p.SaveAnalysis(analysis("2024-01-01", "first")); err != nil {
		t.Fatalf("SaveAnalysis() error = %v", err)
	}
	second := analysis("2024-01-01", "second")
	second.Scores = models.Weights(models.AxisI)
	if err := p.SaveAnalysis(second); err != nil {
		t.Fatalf("SaveAnalysis() error = %v", err)
	}

	got, err := p.GetAnalysis("2024-01-01")
	if err != nil {
		t.Fatalf("GetAnalysis() error = %v", err)
	}
	if got.Feedback != "second" {
		t.Errorf("Feedback = %q, want second", got.Feedback)
	}
	if got.Scores != second.Scores || got.Sentiment != second.Sentiment || len(got.Recommendations) != 4 || len(got.Responses) != 1 {
		t.Errorf("record not kept: %+v", got)
	}

	all, err := p.GetAllAnalyses()
	if err != nil {
		t.Fatalf("GetAllAnalyses() error = %v", err)
	}
	if len(all) != 1 {
		t.Errorf("expected exactly one record for the date, got %d", len(all))
	}
}

func testAnalysisNotFound(t *testing.T, p storage.Provider) {
	_, err := p.GetAnalysis("1999-01-01")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("GetAnalysis() error = %v, want ErrNotFound", err)
	}
}

func testAllAnalyses(t *testing.T, p storage.Provider) {
	for _, d := range []string{"2024-01-03", "2024-01-01", "2024-01-02"} {
		if err := p.SaveAnalysis(analysis(d, d)); err != nil {
			t.Fatalf("SaveAnalysis() error = %v", err)
		}
	}
	all, err := p.GetAllAnalyses()
	if err != nil {
		t.Fatalf("GetAllAnalyses() error = %v", err)
	}
	if len(all) != 3 || all[0].Date != "2024-01-01" || all[2].Date != "2024-01-03" {
		t.Errorf("GetAllAnalyses() not sorted by date: %+v", all)
	}
}

func testClearAll(t *testing.T, p storage.Provider) {
	settings := models.DefaultSettings()
	settings.Timezone = "UTC"
	if err := p.SaveSettings(settings); err != nil {
		t.Fatalf("SaveSettings() error = %v", err)
	}
	if err := p.SaveProfile(models.UserProfile{BaseType: "ESTP", IsBaseSet: true, CreatedAt: time.Now()}); err != nil {
		t.Fatalf("SaveProfile() error = %v", err)
	}
	if err := p.AppendResponse(Response("r1", "morning_2", models.OptionB, "2024-01-01")); err != nil {
		t.Fatalf("AppendResponse() error = %v", err)
	}
	if err := p.SaveAnalysis(analysis("2024-01-01", "x")); err != nil {
		t.Fatalf("SaveAnalysis() error = %v", err)
	}

	if err := p.ClearAll(); err != nil {
		t.Fatalf("ClearAll() error = %v", err)
	}

	responses, _ := p.GetResponses()
	if len(responses) != 0 {
		t.Errorf("responses left after ClearAll: %d", len(responses))
	}
	profile, _ := p.GetProfile()
	if profile.IsBaseSet || profile.TotalResponses != 0 {
		t.Errorf("profile not reset: %+v", profile)
	}
	if _, err := p.GetAnalysis("2024-01-01"); !errors.Is(err, storage.ErrNotFound) {
		t.Errorf("analysis left after ClearAll: %v", err)
	}
	got, _ := p.GetSettings()
	if got.Timezone != "UTC" {
		t.Errorf("settings should survive ClearAll, got %+v", got)
	}
}
