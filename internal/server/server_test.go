package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/heainKang/daily-me-app/internal/journal"
	"github.com/heainKang/daily-me-app/internal/models"
	"github.com/heainKang/daily-me-app/internal/storage"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestServer(t *testing.T, store storage.Provider) *Server {
	t.Helper()
	if store == nil {
		js := storage.NewJSONStore(filepath.Join(t.TempDir(), "dailyme.json"))
		if err := js.Init(); err != nil {
			t.Fatalf("Init() error = %v", err)
		}
		t.Cleanup(func() { _ = js.Close() })
		store = js
	}
	now := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	svc := journal.New(store, time.UTC, journal.WithClock(func() time.Time { return now }))
	return New(svc)
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var r *http.Request
	if body != "" {
		r = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		r.Header.Set("Content-Type", "application/json")
	} else {
		r = httptest.NewRequest(method, path, nil)
	}
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, r)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), v); err != nil {
		t.Fatalf("decoding %q: %v", w.Body.String(), err)
	}
}

func TestHealthz(t *testing.T) {
	s := newTestServer(t, nil)
	w := do(t, s, http.MethodGet, "/healthz", "")
	if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "ok") {
		t.Errorf("healthz = %d %s", w.Code, w.Body.String())
	}
}

func TestOnboardingFlow(t *testing.T) {
	s := newTestServer(t, nil)

	var answers []string
	for _, id := range []string{
		"initial_energy_1", "initial_info_1", "initial_decision_1", "initial_lifestyle_1",
		"initial_energy_2", "initial_info_2", "initial_decision_2", "initial_lifestyle_2",
	} {
		answers = append(answers, `{"item_id":"`+id+`","selected_option":"B"}`)
	}
	body := `{"answers":[` + strings.Join(answers, ",") + `]}`

	w := do(t, s, http.MethodPost, "/api/onboarding", body)
	if w.Code != http.StatusOK {
		t.Fatalf("onboarding = %d %s", w.Code, w.Body.String())
	}
	var res journal.OnboardingResult
	decode(t, w, &res)
	if res.Type != "ISFP" {
		t.Errorf("type = %s, want ISFP", res.Type)
	}

	w = do(t, s, http.MethodGet, "/api/profile", "")
	var p models.UserProfile
	decode(t, w, &p)
	if p.BaseType != "ISFP" || !p.IsBaseSet {
		t.Errorf("profile = %+v", p)
	}
}

func TestOnboardingValidation(t *testing.T) {
	s := newTestServer(t, nil)
	tests := []struct {
		name string
		body string
	}{
		{"malformed", `{"answers":`},
		{"empty", `{"answers":[]}`},
		{"unknown item", `{"answers":[{"item_id":"morning_1","selected_option":"A"}]}`},
		{"bad option", `{"answers":[{"item_id":"initial_energy_1","selected_option":"C"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(t, s, http.MethodPost, "/api/onboarding", tt.body)
			if w.Code != http.StatusBadRequest {
				t.Errorf("status = %d, want 400 (%s)", w.Code, w.Body.String())
			}
		})
	}
}

func TestAnswerAndAnalysis(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(t, s, http.MethodGet, "/api/analysis/2024-01-01", "")
	if w.Code != http.StatusNotFound {
		t.Fatalf("analysis before answers = %d, want 404", w.Code)
	}

	w = do(t, s, http.MethodPost, "/api/responses", `{"item_id":"morning_energy_1","selected_option":"A","note":"fresh"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("answer = %d %s", w.Code, w.Body.String())
	}
	var rec recordedResponse
	decode(t, w, &rec)
	if rec.Response.Day != "2024-01-01" || rec.Response.Note != "fresh" {
		t.Errorf("response = %+v", rec.Response)
	}
	if rec.Analysis.Date != "2024-01-01" || len(rec.Analysis.Responses) != 1 {
		t.Errorf("analysis = %+v", rec.Analysis)
	}

	w = do(t, s, http.MethodPost, "/api/responses", `{"item_id":"morning_energy_1","selected_option":"B"}`)
	if w.Code != http.StatusConflict {
		t.Errorf("second answer = %d, want 409", w.Code)
	}

	w = do(t, s, http.MethodGet, "/api/analysis/2024-01-01", "")
	if w.Code != http.StatusOK {
		t.Errorf("analysis = %d", w.Code)
	}
	w = do(t, s, http.MethodGet, "/api/analysis/2024-13-01", "")
	if w.Code != http.StatusBadRequest {
		t.Errorf("bad date = %d, want 400", w.Code)
	}

	w = do(t, s, http.MethodGet, "/api/responses?today=true", "")
	var rs []models.Response
	decode(t, w, &rs)
	if len(rs) != 1 {
		t.Errorf("today responses = %d, want 1", len(rs))
	}
}

func TestMood(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(t, s, http.MethodPost, "/api/mood", `{"mood":"angry"}`)
	if w.Code != http.StatusBadRequest {
		t.Errorf("invalid mood = %d, want 400", w.Code)
	}
	w = do(t, s, http.MethodPost, "/api/mood", `{"mood":"great","note":"sunny"}`)
	if w.Code != http.StatusCreated {
		t.Fatalf("mood = %d %s", w.Code, w.Body.String())
	}
	w = do(t, s, http.MethodPost, "/api/mood", `{"mood":"sad"}`)
	if w.Code != http.StatusConflict {
		t.Errorf("second mood = %d, want 409", w.Code)
	}

	w = do(t, s, http.MethodGet, "/api/history?days=3", "")
	var h models.History
	decode(t, w, &h)
	if len(h.Entries) != 1 || h.Entries[0].Mood != models.MoodGreat {
		t.Errorf("history = %+v", h)
	}
	if w := do(t, s, http.MethodGet, "/api/history?days=x", ""); w.Code != http.StatusBadRequest {
		t.Errorf("bad days = %d", w.Code)
	}
}

func TestTodayAndCatalog(t *testing.T) {
	s := newTestServer(t, nil)

	w := do(t, s, http.MethodGet, "/api/today", "")
	var view journal.DayView
	decode(t, w, &view)
	if view.Date != "2024-01-01" || len(view.Quotes) != 3 {
		t.Errorf("today = %+v", view)
	}

	w = do(t, s, http.MethodGet, "/api/catalog/questions", "")
	var qs []models.CatalogItem
	decode(t, w, &qs)
	if len(qs) == 0 {
		t.Error("catalog returned no questions")
	}
	if w := do(t, s, http.MethodGet, "/api/catalog/quotes?slot=night", ""); w.Code != http.StatusBadRequest {
		t.Errorf("bad slot = %d", w.Code)
	}
}

func TestClearData(t *testing.T) {
	s := newTestServer(t, nil)
	do(t, s, http.MethodPost, "/api/mood", `{"mood":"good"}`)

	w := do(t, s, http.MethodDelete, "/api/data", "")
	if w.Code != http.StatusNoContent {
		t.Fatalf("clear = %d", w.Code)
	}
	w = do(t, s, http.MethodGet, "/api/responses", "")
	if strings.TrimSpace(w.Body.String()) != "[]" {
		t.Errorf("responses after clear = %s", w.Body.String())
	}
}

type failingStore struct {
	storage.Provider
}

func (failingStore) GetResponsesForDay(string) ([]models.Response, error) {
	return nil, errors.New("disk I/O error")
}

func TestInternalErrorsAreHidden(t *testing.T) {
	js := storage.NewJSONStore(filepath.Join(t.TempDir(), "dailyme.json"))
	if err := js.Init(); err != nil {
		t.Fatal(err)
	}
	s := newTestServer(t, failingStore{js})

	w := do(t, s, http.MethodGet, "/api/responses?today=true", "")
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	if strings.Contains(w.Body.String(), "disk") {
		t.Errorf("internal detail leaked: %s", w.Body.String())
	}
}

func TestMetrics(t *testing.T) {
	s := newTestServer(t, nil)
	do(t, s, http.MethodPost, "/api/mood", `{"mood":"good"}`)
	do(t, s, http.MethodGet, "/healthz", "")

	w := do(t, s, http.MethodGet, "/metrics", "")
	body := w.Body.String()
	for _, want := range []string{
		`dailyme_http_requests_total{method="GET",route="/healthz",status="200"} 1`,
		`dailyme_responses_recorded_total{kind="mood"} 1`,
		"dailyme_http_request_duration_seconds",
	} {
		if !strings.Contains(body, want) {
			t.Errorf("metrics missing %q", want)
		}
	}
}
