package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/heainKang/daily-me-app/internal/models"
	"github.com/heainKang/daily-me-app/internal/storage"
)

const (
	uniqueViolation = "23505"
	// responses_id_key is the implicit constraint behind "id TEXT NOT NULL UNIQUE".
	responseIDKey = "responses_id_key"
)

const responseColumns = `id, item_id, selected_option, timestamp, day, time_slot, mood, note`

// AppendResponse inserts r and refreshes the profile count in one transaction.
// The profile row is locked first so concurrent appends serialize on it.
func (s *Store) AppendResponse(r models.Response) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`
		INSERT INTO profile (id, created_at) VALUES (1, $1)
		ON CONFLICT (id) DO NOTHING`, time.Now()); err != nil {
		return fmt.Errorf("ensuring profile: %w", err)
	}
	if _, err := tx.Exec(`SELECT 1 FROM profile WHERE id = 1 FOR UPDATE`); err != nil {
		return fmt.Errorf("locking profile: %w", err)
	}

	_, err = tx.Exec(`INSERT INTO responses (`+responseColumns+`) VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		r.ID, r.ItemID, string(r.Selected), r.Timestamp, r.Day, string(r.Slot), string(r.Mood), r.Note)
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation && pqErr.Constraint != responseIDKey {
		return storage.ErrDuplicateResponse
	}
	if err != nil {
		return fmt.Errorf("inserting response: %w", err)
	}

	if _, err := tx.Exec(`UPDATE profile SET total_responses = (SELECT COUNT(*) FROM responses) WHERE id = 1`); err != nil {
		return fmt.Errorf("updating response count: %w", err)
	}

	return tx.Commit()
}

func (s *Store) GetResponses() ([]models.Response, error) {
	rows, err := s.db.Query(`SELECT ` + responseColumns + ` FROM responses ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	return scanResponses(rows)
}

func (s *Store) GetResponsesForDay(day string) ([]models.Response, error) {
	rows, err := s.db.Query(`SELECT `+responseColumns+` FROM responses WHERE day = $1 ORDER BY seq`, day)
	if err != nil {
		return nil, err
	}
	return scanResponses(rows)
}

func scanResponses(rows *sql.Rows) ([]models.Response, error) {
	defer rows.Close()

	var out []models.Response
	for rows.Next() {
		var (
			r                  models.Response
			selected, slot, md string
		)
		if err := rows.Scan(&r.ID, &r.ItemID, &selected, &r.Timestamp, &r.Day, &slot, &md, &r.Note); err != nil {
			return nil, err
		}
		r.Selected = models.Option(selected)
		r.Slot = models.TimeSlot(slot)
		r.Mood = models.Mood(md)
		out = append(out, r)
	}
	return out, rows.Err()
}
