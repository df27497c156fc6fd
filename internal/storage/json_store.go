package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/heainKang/daily-me-app/internal/constants"
	"github.com/heainKang/daily-me-app/internal/models"
)

const jsonStoreVersion = 1

// document is the on-disk layout of a JSONStore.
type document struct {
	Version   int                              `json:"version"`
	Settings  models.Settings                  `json:"settings"`
	Profile   *models.UserProfile              `json:"profile,omitempty"`
	Responses []models.Response                `json:"responses"`
	Analyses  map[string]models.AnalysisRecord `json:"analyses"`
}

// JSONStore keeps the whole journal in a single JSON file. Every write
// rewrites the file through a temp file and rename under a mutex.
type JSONStore struct {
	path string

	mu  sync.Mutex
	doc *document
}

func NewJSONStore(configPath string) *JSONStore {
	return &JSONStore{
		path: configPath,
	}
}

func (s *JSONStore) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		if err := s.read(); err != nil {
			return err
		}
		models.ApplyDefaultSettings(&s.doc.Settings)
		return s.save()
	}

	s.doc = &document{
		Version:  jsonStoreVersion,
		Settings: models.DefaultSettings(),
		Analyses: make(map[string]models.AnalysisRecord),
	}
	return s.save()
}

func (s *JSONStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.doc != nil {
		return nil
	}
	return s.read()
}

func (s *JSONStore) read() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("storage not initialized, run '%s init' first", constants.AppName)
		}
		return fmt.Errorf("failed to read storage: %w", err)
	}

	doc := &document{}
	if err := json.Unmarshal(data, doc); err != nil {
		return fmt.Errorf("failed to parse storage: %w", err)
	}
	if doc.Version > jsonStoreVersion {
		return fmt.Errorf("storage version (%d) is newer than supported version (%d) - please upgrade %s", doc.Version, jsonStoreVersion, constants.AppName)
	}
	if doc.Analyses == nil {
		doc.Analyses = make(map[string]models.AnalysisRecord)
	}
	s.doc = doc
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

// save must be called with mu held.
func (s *JSONStore) save() error {
	data, err := json.MarshalIndent(s.doc, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize storage: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := tmp.Chmod(0600); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return fmt.Errorf("failed to write storage: %w", err)
	}
	return nil
}

func (s *JSONStore) loaded() error {
	if s.doc == nil {
		return fmt.Errorf("storage not loaded")
	}
	return nil
}

func (s *JSONStore) GetSettings() (models.Settings, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return models.Settings{}, err
	}
	return s.doc.Settings, nil
}

func (s *JSONStore) SaveSettings(settings models.Settings) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Settings = settings
	return s.save()
}

func (s *JSONStore) GetProfile() (models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return models.UserProfile{}, err
	}
	if s.doc.Profile == nil {
		return models.DefaultProfile(time.Now()), nil
	}
	return *s.doc.Profile, nil
}

func (s *JSONStore) SaveProfile(profile models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Profile = &profile
	return s.save()
}

func (s *JSONStore) AppendResponse(r models.Response) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}
	if Conflicts(s.doc.Responses, r) {
		return ErrDuplicateResponse
	}

	s.doc.Responses = append(s.doc.Responses, r)
	if s.doc.Profile == nil {
		p := models.DefaultProfile(time.Now())
		s.doc.Profile = &p
	}
	s.doc.Profile.TotalResponses = len(s.doc.Responses)

	if err := s.save(); err != nil {
		// keep memory consistent with disk
		s.doc.Responses = s.doc.Responses[:len(s.doc.Responses)-1]
		s.doc.Profile.TotalResponses = len(s.doc.Responses)
		return err
	}
	return nil
}

func (s *JSONStore) GetResponses() ([]models.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return nil, err
	}
	out := make([]models.Response, len(s.doc.Responses))
	copy(out, s.doc.Responses)
	return out, nil
}

func (s *JSONStore) GetResponsesForDay(day string) ([]models.Response, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return nil, err
	}
	var out []models.Response
	for _, r := range s.doc.Responses {
		if r.Day == day {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *JSONStore) GetAnalysis(date string) (models.AnalysisRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return models.AnalysisRecord{}, err
	}
	rec, ok := s.doc.Analyses[date]
	if !ok {
		return models.AnalysisRecord{}, fmt.Errorf("analysis for %s: %w", date, ErrNotFound)
	}
	return rec, nil
}

func (s *JSONStore) SaveAnalysis(rec models.AnalysisRecord) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}
	prev, had := s.doc.Analyses[rec.Date]
	s.doc.Analyses[rec.Date] = rec
	if err := s.save(); err != nil {
		if had {
			s.doc.Analyses[rec.Date] = prev
		} else {
			delete(s.doc.Analyses, rec.Date)
		}
		return err
	}
	return nil
}

func (s *JSONStore) GetAllAnalyses() ([]models.AnalysisRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return nil, err
	}
	out := make([]models.AnalysisRecord, 0, len(s.doc.Analyses))
	for _, rec := range s.doc.Analyses {
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date < out[j].Date })
	return out, nil
}

func (s *JSONStore) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.loaded(); err != nil {
		return err
	}
	s.doc.Profile = nil
	s.doc.Responses = nil
	s.doc.Analyses = make(map[string]models.AnalysisRecord)
	return s.save()
}

func (s *JSONStore) GetConfigPath() string {
	return s.path
}
