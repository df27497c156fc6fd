package sqlite

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/heainKang/daily-me-app/internal/models"
	"github.com/heainKang/daily-me-app/internal/storage"
)

const analysisColumns = `date, scores, dominant_type, sentiment_score, sentiment_comparative, responses, feedback, recommendations`

func (s *Store) GetAnalysis(date string) (models.AnalysisRecord, error) {
	row := s.db.QueryRow(`SELECT `+analysisColumns+` FROM analyses WHERE date = ?`, date)
	rec, err := scanAnalysis(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AnalysisRecord{}, fmt.Errorf("analysis for %s: %w", date, storage.ErrNotFound)
	}
	return rec, err
}

// SaveAnalysis upserts the record for its date in a single statement.
func (s *Store) SaveAnalysis(rec models.AnalysisRecord) error {
	scores, responses, recs, err := encodeAnalysis(rec)
	if err != nil {
		return err
	}

	_, err = s.db.Exec(`
		INSERT INTO analyses (`+analysisColumns+`, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (date) DO UPDATE SET
			scores = excluded.scores,
			dominant_type = excluded.dominant_type,
			sentiment_score = excluded.sentiment_score,
			sentiment_comparative = excluded.sentiment_comparative,
			responses = excluded.responses,
			feedback = excluded.feedback,
			recommendations = excluded.recommendations,
			updated_at = excluded.updated_at`,
		rec.Date, scores, string(rec.DominantType), rec.Sentiment.Score, rec.Sentiment.Comparative,
		responses, rec.Feedback, recs, time.Now().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("saving analysis for %s: %w", rec.Date, err)
	}
	return nil
}

func (s *Store) GetAllAnalyses() ([]models.AnalysisRecord, error) {
	rows, err := s.db.Query(`SELECT ` + analysisColumns + ` FROM analyses ORDER BY date`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.AnalysisRecord
	for rows.Next() {
		rec, err := scanAnalysis(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// ClearAll wipes the journal but keeps settings and the schema version.
func (s *Store) ClearAll() error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, table := range []string{"responses", "analyses", "profile"} {
		if _, err := tx.Exec("DELETE FROM " + table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}
	return tx.Commit()
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row scanner) (models.AnalysisRecord, error) {
	var (
		rec                     models.AnalysisRecord
		dominant                string
		scores, responses, recs string
	)
	if err := row.Scan(&rec.Date, &scores, &dominant, &rec.Sentiment.Score, &rec.Sentiment.Comparative,
		&responses, &rec.Feedback, &recs); err != nil {
		return models.AnalysisRecord{}, err
	}
	rec.DominantType = models.Personality(dominant)

	if err := json.Unmarshal([]byte(scores), &rec.Scores); err != nil {
		return models.AnalysisRecord{}, fmt.Errorf("decoding scores for %s: %w", rec.Date, err)
	}
	if err := json.Unmarshal([]byte(responses), &rec.Responses); err != nil {
		return models.AnalysisRecord{}, fmt.Errorf("decoding responses for %s: %w", rec.Date, err)
	}
	if err := json.Unmarshal([]byte(recs), &rec.Recommendations); err != nil {
		return models.AnalysisRecord{}, fmt.Errorf("decoding recommendations for %s: %w", rec.Date, err)
	}
	return rec, nil
}

func encodeAnalysis(rec models.AnalysisRecord) (scores, responses, recs string, err error) {
	b, err := json.Marshal(rec.Scores)
	if err != nil {
		return "", "", "", fmt.Errorf("encoding scores: %w", err)
	}
	scores = string(b)

	list := rec.Responses
	if list == nil {
		list = []models.Response{}
	}
	if b, err = json.Marshal(list); err != nil {
		return "", "", "", fmt.Errorf("encoding responses: %w", err)
	}
	responses = string(b)

	r := rec.Recommendations
	if r == nil {
		r = []string{}
	}
	if b, err = json.Marshal(r); err != nil {
		return "", "", "", fmt.Errorf("encoding recommendations: %w", err)
	}
	recs = string(b)
	return scores, responses, recs, nil
}
