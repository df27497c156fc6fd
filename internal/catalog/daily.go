package catalog

import (
	"time"

	"github.com/heainKang/daily-me-app/internal/models"
)

const millisPerDay = 86_400_000

// DayIndex returns floor(epoch ms of local midnight / 86400000) for the
// calendar day of t in t's location.
func DayIndex(t time.Time) int64 {
	y, m, d := t.Date()
	midnight := time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	ms := midnight.UnixMilli()
	idx := ms / millisPerDay
	if ms%millisPerDay < 0 {
		idx--
	}
	return idx
}

func pick(items []models.CatalogItem, idx int64) (models.CatalogItem, bool) {
	n := int64(len(items))
	if n == 0 {
		return models.CatalogItem{}, false
	}
	i := idx % n
	if i < 0 {
		i += n
	}
	return items[i], true
}

// QuoteOfDay selects the quote shown for slot on the day of t. The same day
// always yields the same quote.
func QuoteOfDay(t time.Time, slot models.TimeSlot) models.CatalogItem {
	item, _ := pick(QuotesForSlot(slot), DayIndex(t))
	return item
}

// QuestionOfDay selects the daily question for slot on the day of t.
func QuestionOfDay(t time.Time, slot models.TimeSlot) models.CatalogItem {
	item, _ := pick(DailyQuestionsForSlot(slot), DayIndex(t))
	return item
}

// TodayQuotes returns the three quotes of the day in slot order.
func TodayQuotes(t time.Time) []models.CatalogItem {
	out := make([]models.CatalogItem, 0, len(models.TimeSlots))
	for _, slot := range models.TimeSlots {
		out = append(out, QuoteOfDay(t, slot))
	}
	return out
}

// QuoteByDayOfMonth indexes by day of month instead of day number. It
// disagrees with QuoteOfDay across month boundaries and is not used to pick
// the displayed quote.
func QuoteByDayOfMonth(t time.Time, slot models.TimeSlot) models.CatalogItem {
	item, _ := pick(QuotesForSlot(slot), int64(t.Day()))
	return item
}
