// Package catalog holds the immutable question and quote tables and resolves
// item identifiers against them.
package catalog

import (
	"github.com/heainKang/daily-me-app/internal/constants"
	"github.com/heainKang/daily-me-app/internal/models"
)

// Source tags which table an identifier resolved against.
type Source int

const (
	SourceNone Source = iota
	SourceQuestion
	SourceQuote
)

func (s Source) String() string {
	switch s {
	case SourceQuestion:
		return "question"
	case SourceQuote:
		return "quote"
	default:
		return "none"
	}
}

// Entry is the result of Lookup. Item is only meaningful when Found.
type Entry struct {
	Source Source
	Item   models.CatalogItem
}

func (e Entry) Found() bool {
	return e.Source != SourceNone
}

// Weights returns the weight table of the chosen option, or the zero vector on a miss.
func (e Entry) Weights(o models.Option) models.ScoreVector {
	if !e.Found() {
		return models.ScoreVector{}
	}
	return e.Item.Weights(o)
}

// Questions returns the onboarding questionnaire in presentation order.
func Questions() []models.CatalogItem {
	return clone(onboarding)
}

// Quotes returns all quotes, five per slot.
func Quotes() []models.CatalogItem {
	return clone(quotes)
}

// DailyQuestions returns the recurring question pool.
func DailyQuestions() []models.CatalogItem {
	return clone(daily)
}

// QuotesForSlot returns the quotes tagged with slot, in table order.
func QuotesForSlot(slot models.TimeSlot) []models.CatalogItem {
	return filterSlot(quotes, slot)
}

// DailyQuestionsForSlot returns the daily questions tagged with slot.
func DailyQuestionsForSlot(slot models.TimeSlot) []models.CatalogItem {
	return filterSlot(daily, slot)
}

// Lookup resolves id for scoring: onboarding questions first, then quotes.
// Daily questions are not scored and never resolve here.
func Lookup(id string) Entry {
	for _, q := range onboarding {
		if q.ID == id {
			return Entry{Source: SourceQuestion, Item: q}
		}
	}
	for _, q := range quotes {
		if q.ID == id {
			return Entry{Source: SourceQuote, Item: q}
		}
	}
	return Entry{Source: SourceNone}
}

// Find searches every table, including the daily question pool.
func Find(id string) (models.CatalogItem, bool) {
	if e := Lookup(id); e.Found() {
		return e.Item, true
	}
	for _, q := range daily {
		if q.ID == id {
			return q, true
		}
	}
	return models.CatalogItem{}, false
}

// IsOnboardingQuestion reports whether id belongs to the onboarding set.
func IsOnboardingQuestion(id string) bool {
	return Lookup(id).Source == SourceQuestion
}

// EmotionItemID is the item id recorded for the mood entry of day.
func EmotionItemID(day string) string {
	return constants.EmotionItemPrefix + day
}

func clone(items []models.CatalogItem) []models.CatalogItem {
	out := make([]models.CatalogItem, len(items))
	copy(out, items)
	return out
}

func filterSlot(items []models.CatalogItem, slot models.TimeSlot) []models.CatalogItem {
	var out []models.CatalogItem
	for _, item := range items {
		if item.Slot == slot {
			out = append(out, item)
		}
	}
	return out
}
