package postgres

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
	row := s.db.QueryRow(`SELECT `+analysisColumns+` FROM analyses WHERE date = $1`, date)
	rec, err := scanAnalysis(row)
	if errors.Is(err, sql.ErrNoRows) {
		return models.AnalysisRecord{}, fmt.Errorf("analysis for %s: %w", date, storage.ErrNotFound)
	}
	return rec, err
}

func (s *Store) SaveAnalysis(rec models.AnalysisRecord) error {
	scores, err := json.Marshal(rec.Scores)
	if err != nil {
		return fmt.Errorf("encoding scores: %w", err)
	}
	responses := rec.Responses
	if responses == nil {
		responses = []models.Response{}
	}
	responsesJSON, err := json.Marshal(responses)
	if err != nil {
		return fmt.Errorf("encoding responses: %w", err)
	}
	recs := rec.Recommendations
	if recs == nil {
		recs = []string{}
	}
	recsJSON, err := json.Marshal(recs)
	if err != nil {
		return fmt.Errorf("encoding recommendations: %w", err)
	}

	_, err = s.db.Exec(`
		INSERT INTO analyses (`+analysisColumns+`, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		ON CONFLICT (date) DO UPDATE SET
			scores = EXCLUDED.scores,
			dominant_type = EXCLUDED.dominant_type,
			sentiment_score = EXCLUDED.sentiment_score,
			sentiment_comparative = EXCLUDED.sentiment_comparative,
			responses = EXCLUDED.responses,
			feedback = EXCLUDED.feedback,
			recommendations = EXCLUDED.recommendations,
			updated_at = EXCLUDED.updated_at`,
		rec.Date, string(scores), string(rec.DominantType), rec.Sentiment.Score, rec.Sentiment.Comparative,
		string(responsesJSON), rec.Feedback, string(recsJSON), time.Now())
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

func (s *Store) ClearAll() error {
	_, err := s.db.Exec(`TRUNCATE responses, analyses, profile`)
	if err != nil {
		return fmt.Errorf("clearing journal: %w", err)
	}
	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanAnalysis(row scanner) (models.AnalysisRecord, error) {
	var (
		rec                     models.AnalysisRecord
		dominant                string
		scores, responses, recs []byte
	)
	if err := row.Scan(&rec.Date, &scores, &dominant, &rec.Sentiment.Score, &rec.Sentiment.Comparative,
		&responses, &rec.Feedback, &recs); err != nil {
		return models.AnalysisRecord{}, err
	}
	rec.DominantType = models.Personality(dominant)

	if err := json.Unmarshal(scores, &rec.Scores); err != nil {
		return models.AnalysisRecord{}, fmt.Errorf("decoding scores for %s: %w", rec.Date, err)
	}
	if err := json.Unmarshal(responses, &rec.Responses); err != nil {
		return models.AnalysisRecord{}, fmt.Errorf("decoding responses for %s: %w", rec.Date, err)
	}
	if err := json.Unmarshal(recs, &rec.Recommendations); err != nil {
		return models.AnalysisRecord{}, fmt.Errorf("decoding recommendations for %s: %w", rec.Date, err)
	}
	return rec, nil
}
