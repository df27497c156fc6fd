// Package journal runs the user-facing operations: onboarding, answering
// quotes and questions, recording the daily mood and reading reports.
package journal

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/heainKang/daily-me-app/internal/analysis"
	"github.com/heainKang/daily-me-app/internal/catalog"
	apperrors "github.com/heainKang/daily-me-app/internal/errors"
	"github.com/heainKang/daily-me-app/internal/logger"
	"github.com/heainKang/daily-me-app/internal/models"
	"github.com/heainKang/daily-me-app/internal/storage"
	"github.com/heainKang/daily-me-app/internal/utils"
)

var (
	ErrNoAnalysis          = errors.New("no analysis recorded for this date")
	ErrMoodAlreadyRecorded = errors.New("today's mood has already been recorded")
	ErrAlreadyAnswered     = errors.New("this item was already answered today")
	ErrUnknownItem         = errors.New("unknown question or quote")
	ErrNoAnswers           = errors.New("no onboarding answers given")
)

// Service ties the storage gateway to the analysis pipeline. Writes are
// serialized so a duplicate check, its append and the analysis refresh
// happen as one step.
type Service struct {
	mu    sync.Mutex
	store storage.Provider
	gen   *analysis.Generator
	loc   *time.Location
	now   func() time.Time
	newID func() string
}

type Option func(*Service)

// WithClock replaces the wall clock, for tests and for replaying a given day.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator replaces the response id source.
func WithIDGenerator(fn func() string) Option {
	return func(s *Service) { s.newID = fn }
}

// New builds a Service whose "today" is computed in loc.
func New(store storage.Provider, loc *time.Location, opts ...Option) *Service {
	if loc == nil {
		loc = time.Local
	}
	s := &Service{
		store: store,
		loc:   loc,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.gen = &analysis.Generator{Now: s.Now}
	return s
}

// NewFromSettings reads the configured timezone from store.
func NewFromSettings(store storage.Provider, opts ...Option) (*Service, error) {
	settings, err := store.GetSettings()
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("reading settings: %w", err))
	}
	loc, err := utils.LoadLocation(settings.Timezone)
	if err != nil {
		return nil, err
	}
	return New(store, loc, opts...), nil
}

// Now returns the current time in the journal's timezone.
func (s *Service) Now() time.Time {
	return s.now().In(s.loc)
}

// Today returns the current date as YYYY-MM-DD.
func (s *Service) Today() string {
	return utils.FormatDate(s.Now())
}

func (s *Service) Location() *time.Location {
	return s.loc
}

// Store exposes the underlying gateway.
func (s *Service) Store() storage.Provider {
	return s.store
}

// Profile returns the stored profile, or a default one if it cannot be read.
func (s *Service) Profile() models.UserProfile {
	p, err := s.store.GetProfile()
	if err != nil {
		logger.Error("Failed to read profile", "error", err)
		return models.DefaultProfile(s.Now())
	}
	return p
}

func (s *Service) newResponse(itemID string, opt models.Option) models.Response {
	now := s.Now()
	return models.Response{
		ID:        s.newID(),
		ItemID:    itemID,
		Selected:  opt,
		Timestamp: now,
		Day:       utils.FormatDate(now),
		Slot:      models.SlotForHour(now.Hour()),
	}
}

// refresh recomputes and stores the analysis for day from all of its
// responses. Callers hold s.mu.
func (s *Service) refresh(day string) (models.AnalysisRecord, error) {
	responses, err := s.store.GetResponsesForDay(day)
	if err != nil {
		return models.AnalysisRecord{}, apperrors.Internal(fmt.Errorf("reading responses for %s: %w", day, err))
	}
	profile, err := s.store.GetProfile()
	if err != nil {
		return models.AnalysisRecord{}, apperrors.Internal(fmt.Errorf("reading profile: %w", err))
	}

	rec := s.gen.Daily(day, responses, profile.Baseline())
	if err := s.store.SaveAnalysis(rec); err != nil {
		return models.AnalysisRecord{}, apperrors.Internal(fmt.Errorf("saving analysis: %w", err))
	}
	logger.Debug("Analysis updated", "date", day, "responses", len(responses), "sentiment", rec.Sentiment.Score)
	return rec, nil
}

// TodayResponses returns the responses recorded today in insertion order.
func (s *Service) TodayResponses() ([]models.Response, error) {
	return s.ResponsesForDay(s.Today())
}

func (s *Service) ResponsesForDay(day string) ([]models.Response, error) {
	rs, err := s.store.GetResponsesForDay(day)
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("reading responses for %s: %w", day, err))
	}
	return rs, nil
}

// AllResponses returns the whole response log.
func (s *Service) AllResponses() ([]models.Response, error) {
	rs, err := s.store.GetResponses()
	if err != nil {
		return nil, apperrors.Internal(fmt.Errorf("reading responses: %w", err))
	}
	return rs, nil
}

// Report returns the analysis for date, or ErrNoAnalysis when none exists.
func (s *Service) Report(date string) (models.AnalysisRecord, error) {
	if err := utils.ValidateDate(date); err != nil {
		return models.AnalysisRecord{}, err
	}
	rec, err := s.store.GetAnalysis(date)
	if errors.Is(err, storage.ErrNotFound) {
		return models.AnalysisRecord{}, ErrNoAnalysis
	}
	if err != nil {
		return models.AnalysisRecord{}, apperrors.Internal(fmt.Errorf("reading analysis for %s: %w", date, err))
	}
	return rec, nil
}

// ClearAll wipes the profile, responses and analyses.
func (s *Service) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.ClearAll(); err != nil {
		return apperrors.Internal(fmt.Errorf("clearing journal: %w", err))
	}
	logger.Info("Journal cleared")
	return nil
}

// lookupAnswerable resolves id against every catalog table.
func lookupAnswerable(id string) (models.CatalogItem, error) {
	item, ok := catalog.Find(id)
	if !ok {
		return models.CatalogItem{}, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}
	return item, nil
}
