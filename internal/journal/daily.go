package journal

import (
	"errors"
	"fmt"
	"time"

	"github.com/heainKang/daily-me-app/internal/catalog"
	apperrors "github.com/heainKang/daily-me-app/internal/errors"
	"github.com/heainKang/daily-me-app/internal/logger"
	"github.com/heainKang/daily-me-app/internal/models"
	"github.com/heainKang/daily-me-app/internal/storage"
	"github.com/heainKang/daily-me-app/internal/utils"
)

// DayView is what the user sees for a date: the quotes and questions of the
// day, which of them were answered and the recorded mood.
type DayView struct {
	Date      string                   `json:"date"`
	Slot      models.TimeSlot          `json:"current_slot"`
	Quotes    []models.CatalogItem     `json:"quotes"`
	Questions []models.CatalogItem     `json:"questions"`
	Answered  map[string]models.Option `json:"answered"`
	Mood      *models.Response         `json:"mood,omitempty"`
}

// Day builds the view for date (YYYY-MM-DD). The current slot is only
// meaningful for today.
func (s *Service) Day(date string) (DayView, error) {
	t, err := utils.ParseDateInLocation(date, s.loc)
	if err != nil {
		return DayView{}, err
	}
	responses, err := s.ResponsesForDay(date)
	if err != nil {
		return DayView{}, err
	}

	view := DayView{
		Date:     date,
		Slot:     models.SlotForHour(s.Now().Hour()),
		Quotes:   catalog.TodayQuotes(t),
		Answered: make(map[string]models.Option),
	}
	for _, slot := range models.TimeSlots {
		view.Questions = append(view.Questions, catalog.QuestionOfDay(t, slot))
	}
	for i, r := range responses {
		view.Answered[r.ItemID] = r.Selected
		if r.Mood != "" {
			view.Mood = &responses[i]
		}
	}
	return view, nil
}

// Answer records a choice on a quote or question and refreshes today's analysis.
func (s *Service) Answer(itemID string, opt models.Option, note string) (models.Response, models.AnalysisRecord, error) {
	if _, err := lookupAnswerable(itemID); err != nil {
		return models.Response{}, models.AnalysisRecord{}, err
	}

	r := s.newResponse(itemID, opt)
	r.Note = note
	if err := r.Validate(); err != nil {
		return models.Response{}, models.AnalysisRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	today, err := s.ResponsesForDay(r.Day)
	if err != nil {
		return models.Response{}, models.AnalysisRecord{}, err
	}
	for _, prev := range today {
		if prev.ItemID == itemID {
			return models.Response{}, models.AnalysisRecord{}, ErrAlreadyAnswered
		}
	}

	return s.record(r, ErrAlreadyAnswered)
}

// RecordMood stores the day's mood. Great and good count as a positive answer.
func (s *Service) RecordMood(mood models.Mood, note string) (models.Response, models.AnalysisRecord, error) {
	if !mood.Valid() {
		return models.Response{}, models.AnalysisRecord{}, fmt.Errorf("invalid mood: %q", mood)
	}

	day := s.Today()
	r := s.newResponse(catalog.EmotionItemID(day), mood.Option())
	r.Mood = mood
	r.Note = note
	if err := r.Validate(); err != nil {
		return models.Response{}, models.AnalysisRecord{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	today, err := s.ResponsesForDay(day)
	if err != nil {
		return models.Response{}, models.AnalysisRecord{}, err
	}
	for _, prev := range today {
		if prev.Mood != "" || prev.ItemID == r.ItemID {
			return models.Response{}, models.AnalysisRecord{}, ErrMoodAlreadyRecorded
		}
	}

	return s.record(r, ErrMoodAlreadyRecorded)
}

// record appends r and refreshes its day. Callers hold s.mu. A duplicate
// rejected by the store, e.g. written by another process, surfaces as dup.
func (s *Service) record(r models.Response, dup error) (models.Response, models.AnalysisRecord, error) {
	err := s.store.AppendResponse(r)
	if errors.Is(err, storage.ErrDuplicateResponse) {
		return models.Response{}, models.AnalysisRecord{}, dup
	}
	if err != nil {
		return models.Response{}, models.AnalysisRecord{}, apperrors.Internal(fmt.Errorf("saving response: %w", err))
	}
	logger.Debug("Response recorded", "item_id", r.ItemID, "option", r.Selected, "day", r.Day)

	rec, err := s.refresh(r.Day)
	if err != nil {
		return r, models.AnalysisRecord{}, err
	}
	return r, rec, nil
}

// History collects the recorded moods of the last days days, newest first.
func (s *Service) History(days int) (models.History, error) {
	if days <= 0 {
		return models.History{}, fmt.Errorf("days must be positive, got %d", days)
	}

	h := models.History{Counts: make(map[models.Mood]int)}
	dates := utils.LastNDays(s.Now(), days)
	for i := len(dates) - 1; i >= 0; i-- {
		rec, err := s.store.GetAnalysis(dates[i])
		if errors.Is(err, storage.ErrNotFound) {
			continue
		}
		if err != nil {
			return models.History{}, apperrors.Internal(fmt.Errorf("reading analysis for %s: %w", dates[i], err))
		}
		if r, ok := rec.LastMood(); ok {
			h.Entries = append(h.Entries, models.HistoryEntry{Date: dates[i], Mood: r.Mood, Note: r.Note})
			h.Counts[r.Mood]++
		}
	}
	return h, nil
}

// Greeting returns the slot-specific greeting for the current time.
func (s *Service) Greeting() string {
	return GreetingFor(s.Now())
}

// GreetingFor returns the greeting shown at t.
func GreetingFor(t time.Time) string {
	switch models.SlotForHour(t.Hour()) {
	case models.SlotMorning:
		return "좋은 아침이에요! ☀️"
	case models.SlotAfternoon:
		return "좋은 오후예요! 🌤️"
	default:
		return "편안한 저녁이에요! 🌙"
	}
}
