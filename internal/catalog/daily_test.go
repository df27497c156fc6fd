package catalog

import (
	"testing"
	"time"

	"github.com/heainKang/daily-me-app/internal/models"
)

func TestDayIndex(t *testing.T) {
	utc := time.Date(1970, 1, 2, 15, 0, 0, 0, time.UTC)
	if got := DayIndex(utc); got != 1 {
		t.Errorf("DayIndex(1970-01-02 UTC) = %d, want 1", got)
	}

	// Local midnight in UTC+9 is the previous UTC day, 15:00.
	seoul := time.FixedZone("KST", 9*60*60)
	kst := time.Date(1970, 1, 2, 8, 0, 0, 0, seoul)
	if got := DayIndex(kst); got != 0 {
		t.Errorf("DayIndex(1970-01-02 KST) = %d, want 0", got)
	}

	before := time.Date(1969, 12, 31, 12, 0, 0, 0, time.UTC)
	if got := DayIndex(before); got != -1 {
		t.Errorf("DayIndex(1969-12-31 UTC) = %d, want -1", got)
	}
}

func TestQuoteOfDayStable(t *testing.T) {
	loc := time.FixedZone("KST", 9*60*60)
	morning := time.Date(2024, 5, 10, 7, 0, 0, 0, loc)
	night := time.Date(2024, 5, 10, 23, 59, 0, 0, loc)

	for _, slot := range models.TimeSlots {
		a := QuoteOfDay(morning, slot)
		b := QuoteOfDay(night, slot)
		if a.ID != b.ID {
			t.Errorf("%s: quote changed within a day: %s vs %s", slot, a.ID, b.ID)
		}
		if a.Slot != slot {
			t.Errorf("%s: picked quote from slot %s", slot, a.Slot)
		}
	}
}

func TestQuoteOfDayRotates(t *testing.T) {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	seen := make(map[string]bool)
	for i := 0; i < 5; i++ {
		seen[QuoteOfDay(start.AddDate(0, 0, i), models.SlotMorning).ID] = true
	}
	if len(seen) != 5 {
		t.Errorf("expected 5 distinct morning quotes over 5 days, got %d", len(seen))
	}
}

func TestQuoteOfDayKnownValue(t *testing.T) {
	// 2024-01-01 UTC is day 19723; 19723 mod 5 = 3.
	d := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	if got := QuoteOfDay(d, models.SlotMorning).ID; got != "morning_4" {
		t.Errorf("QuoteOfDay(2024-01-01, morning) = %s, want morning_4", got)
	}
	if got := QuoteByDayOfMonth(d, models.SlotMorning).ID; got != "morning_2" {
		t.Errorf("QuoteByDayOfMonth(2024-01-01, morning) = %s, want morning_2", got)
	}
}

func TestTodayQuotes(t *testing.T) {
	got := TodayQuotes(time.Date(2024, 2, 29, 12, 0, 0, 0, time.UTC))
	if len(got) != 3 {
		t.Fatalf("TodayQuotes returned %d quotes, want 3", len(got))
	}
	for i, slot := range models.TimeSlots {
		if got[i].Slot != slot {
			t.Errorf("quote %d slot = %s, want %s", i, got[i].Slot, slot)
		}
	}
}

func TestQuestionOfDay(t *testing.T) {
	d := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	for _, slot := range models.TimeSlots {
		q := QuestionOfDay(d, slot)
		if q.ID == "" || q.Slot != slot {
			t.Errorf("QuestionOfDay(%s) = %+v", slot, q)
		}
	}
}
