package sqlite

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/heainKang/daily-me-app/internal/models"
)

func (s *Store) GetProfile() (models.UserProfile, error) {
	var (
		p         models.UserProfile
		baseType  string
		isBaseSet int
		createdAt string
	)
	err := s.db.QueryRow(`
		SELECT base_type, is_base_set, created_at, total_responses
		FROM profile WHERE id = 1`).Scan(&baseType, &isBaseSet, &createdAt, &p.TotalResponses)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultProfile(time.Now()), nil
	}
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("reading profile: %w", err)
	}

	p.BaseType = models.Personality(baseType)
	p.IsBaseSet = isBaseSet == 1
	p.CreatedAt, err = time.Parse(time.RFC3339Nano, createdAt)
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("parsing profile created_at: %w", err)
	}
	return p, nil
}

func (s *Store) SaveProfile(p models.UserProfile) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	_, err := s.db.Exec(`
		INSERT INTO profile (id, base_type, is_base_set, created_at, total_responses)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			base_type = excluded.base_type,
			is_base_set = excluded.is_base_set,
			created_at = excluded.created_at,
			total_responses = excluded.total_responses`,
		string(p.BaseType), boolToInt(p.IsBaseSet), p.CreatedAt.Format(time.RFC3339Nano), p.TotalResponses)
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
