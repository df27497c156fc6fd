package notifier

import (
	"testing"
	"time"

	"github.com/heainKang/daily-me-app/internal/models"
)

func TestSchedule(t *testing.T) {
	date := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	got := Schedule(date, models.DefaultSettings())

	want := []struct {
		slot  models.TimeSlot
		hour  int
		title string
		quote string
	}{
		{models.SlotMorning, 9, "🌅 아침 명언", "morning_4"},
		{models.SlotAfternoon, 12, "☀️ 점심 명언", "afternoon_4"},
		{models.SlotEvening, 18, "🌙 저녁 명언", "evening_4"},
	}
	if len(got) != len(want) {
		t.Fatalf("Schedule() returned %d notifications, want %d", len(got), len(want))
	}
	for i, w := range want {
		n := got[i]
		if n.Slot != w.slot || n.Hour != w.hour || n.Title != w.title || n.QuoteID != w.quote {
			t.Errorf("notification %d = %+v, want %+v", i, n, w)
		}
		if n.Body == "" {
			t.Errorf("notification %d has empty body", i)
		}
	}
}

func TestScheduleCustomHours(t *testing.T) {
	s := models.DefaultSettings()
	s.MorningNotifyHour = 7
	s.EveningNotifyHour = 21

	got := Schedule(time.Now(), s)
	if got[0].Hour != 7 || got[1].Hour != 12 || got[2].Hour != 21 {
		t.Errorf("hours = %d/%d/%d", got[0].Hour, got[1].Hour, got[2].Hour)
	}
}

func TestDue(t *testing.T) {
	enabled := models.DefaultSettings()
	disabled := models.DefaultSettings()
	disabled.NotificationsEnabled = false

	tests := []struct {
		name     string
		now      time.Time
		settings models.Settings
		wantSlot models.TimeSlot
	}{
		{name: "morning on the hour", now: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), settings: enabled, wantSlot: models.SlotMorning},
		{name: "evening on the hour", now: time.Date(2024, 1, 1, 18, 0, 30, 0, time.UTC), settings: enabled, wantSlot: models.SlotEvening},
		{name: "past the hour", now: time.Date(2024, 1, 1, 9, 1, 0, 0, time.UTC), settings: enabled},
		{name: "off hour", now: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC), settings: enabled},
		{name: "disabled", now: time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC), settings: disabled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			due := Due(tt.now, tt.settings)
			if tt.wantSlot == "" {
				if len(due) != 0 {
					t.Errorf("Due() = %+v, want none", due)
				}
				return
			}
			if len(due) != 1 || due[0].Slot != tt.wantSlot {
				t.Errorf("Due() = %+v, want %s", due, tt.wantSlot)
			}
		})
	}
}
