package storage

import (
	"errors"

	"github.com/heainKang/daily-me-app/internal/models"
)

var (
	// ErrNotFound is returned when a requested record does not exist.
	ErrNotFound = errors.New("not found")
	// ErrDuplicateResponse is returned by AppendResponse when the day already
	// holds a response for the item, or already holds a mood.
	ErrDuplicateResponse = errors.New("response already recorded for this day")
)

// Conflicts reports whether r collides with an existing response of its day.
func Conflicts(existing []models.Response, r models.Response) bool {
	for _, prev := range existing {
		if prev.Day != r.Day {
			continue
		}
		if prev.ItemID == r.ItemID || (prev.Mood != "" && r.Mood != "") {
			return true
		}
	}
	return false
}

// Provider is the persistence gateway shared by the SQLite, PostgreSQL and
// JSON backends.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Settings
	GetSettings() (models.Settings, error)
	SaveSettings(models.Settings) error

	// Profile. GetProfile returns a default profile when none is stored.
	GetProfile() (models.UserProfile, error)
	SaveProfile(models.UserProfile) error

	// Responses are append-only and returned in insertion order.
	// AppendResponse also sets the profile's TotalResponses to the log length.
	// It fails with ErrDuplicateResponse when Conflicts would report true.
	AppendResponse(models.Response) error
	GetResponses() ([]models.Response, error)
	GetResponsesForDay(day string) ([]models.Response, error)

	// Analyses are keyed by date. SaveAnalysis overwrites an existing record.
	GetAnalysis(date string) (models.AnalysisRecord, error)
	SaveAnalysis(models.AnalysisRecord) error
	GetAllAnalyses() ([]models.AnalysisRecord, error)

	// ClearAll removes the profile, responses and analyses. Settings are kept.
	ClearAll() error

	// Utils
	GetConfigPath() string
}
