package notifier

import (
	"time"

	"github.com/heainKang/daily-me-app/internal/catalog"
	"github.com/heainKang/daily-me-app/internal/models"
)

// Notification is one daily reminder carrying the slot's quote of the day.
type Notification struct {
	Slot    models.TimeSlot `json:"slot"`
	Hour    int             `json:"hour"`
	Title   string          `json:"title"`
	QuoteID string          `json:"quote_id"`
	Body    string          `json:"body"`
}

var titles = map[models.TimeSlot]string{
	models.SlotMorning:   "🌅 아침 명언",
	models.SlotAfternoon: "☀️ 점심 명언",
	models.SlotEvening:   "🌙 저녁 명언",
}

// Schedule returns the morning, afternoon and evening reminders for date.
func Schedule(date time.Time, settings models.Settings) []Notification {
	out := make([]Notification, 0, len(models.TimeSlots))
	for _, slot := range models.TimeSlots {
		q := catalog.QuoteOfDay(date, slot)
		out = append(out, Notification{
			Slot:    slot,
			Hour:    settings.NotifyHour(slot),
			Title:   titles[slot],
			QuoteID: q.ID,
			Body:    q.Text,
		})
	}
	return out
}

// Due returns the reminders whose hour starts at now. Nothing is due when
// notifications are disabled.
func Due(now time.Time, settings models.Settings) []Notification {
	if !settings.NotificationsEnabled || now.Minute() != 0 {
		return nil
	}
	var due []Notification
	for _, n := range Schedule(now, settings) {
		if n.Hour == now.Hour() {
			due = append(due, n)
		}
	}
	return due
}
