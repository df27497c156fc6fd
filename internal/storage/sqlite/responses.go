package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	moderncsqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"

	"github.com/heainKang/daily-me-app/internal/models"
	"github.com/heainKang/daily-me-app/internal/storage"
)

const responseColumns = `id, item_id, selected_option, timestamp, day, time_slot, mood, note`

// AppendResponse inserts r and refreshes the profile count in one transaction.
func (s *Store) AppendResponse(r models.Response) error {
	tx, err := s.db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	_, err = tx.Exec(`INSERT INTO responses (`+responseColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ID, r.ItemID, string(r.Selected), r.Timestamp.Format(time.RFC3339Nano),
		r.Day, string(r.Slot), string(r.Mood), r.Note)
	if isUniqueViolation(err) {
		return storage.ErrDuplicateResponse
	}
	if err != nil {
		return fmt.Errorf("inserting response: %w", err)
	}

	_, err = tx.Exec(`
		INSERT INTO profile (id, created_at, total_responses)
		VALUES (1, ?, (SELECT COUNT(*) FROM responses))
		ON CONFLICT (id) DO UPDATE SET total_responses = (SELECT COUNT(*) FROM responses)`,
		time.Now().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("updating response count: %w", err)
	}

	return tx.Commit()
}

// isUniqueViolation matches the day/item and day/mood indexes, not a
// collision on the response id.
func isUniqueViolation(err error) bool {
	var se *moderncsqlite.Error
	if !errors.As(err, &se) {
		return false
	}
	msg := se.Error()
	if se.Code() != sqlite3.SQLITE_CONSTRAINT_UNIQUE && !strings.Contains(msg, "UNIQUE constraint failed") {
		return false
	}
	return !strings.Contains(msg, "responses.id")
}

func (s *Store) GetResponses() ([]models.Response, error) {
	rows, err := s.db.Query(`SELECT ` + responseColumns + ` FROM responses ORDER BY seq`)
	if err != nil {
		return nil, err
	}
	return scanResponses(rows)
}

func (s *Store) GetResponsesForDay(day string) ([]models.Response, error) {
	rows, err := s.db.Query(`SELECT `+responseColumns+` FROM responses WHERE day = ? ORDER BY seq`, day)
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
			r                      models.Response
			selected, ts, slot, md string
		)
		if err := rows.Scan(&r.ID, &r.ItemID, &selected, &ts, &r.Day, &slot, &md, &r.Note); err != nil {
			return nil, err
		}
		t, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			return nil, fmt.Errorf("parsing response timestamp: %w", err)
		}
		r.Timestamp = t
		r.Selected = models.Option(selected)
		r.Slot = models.TimeSlot(slot)
		r.Mood = models.Mood(md)
		out = append(out, r)
	}
	return out, rows.Err()
}
