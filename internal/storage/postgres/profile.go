package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/heainKang/daily-me-app/internal/models"
)

func (s *Store) GetProfile() (models.UserProfile, error) {
	var (
		p        models.UserProfile
		baseType string
	)
	err := s.db.QueryRow(`
		SELECT base_type, is_base_set, created_at, total_responses
		FROM profile WHERE id = 1`).Scan(&baseType, &p.IsBaseSet, &p.CreatedAt, &p.TotalResponses)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DefaultProfile(time.Now()), nil
	}
	if err != nil {
		return models.UserProfile{}, fmt.Errorf("reading profile: %w", err)
	}
	p.BaseType = models.Personality(baseType)
	return p, nil
}

func (s *Store) SaveProfile(p models.UserProfile) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	_, err := s.db.Exec(`
		INSERT INTO profile (id, base_type, is_base_set, created_at, total_responses)
		VALUES (1, $1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE SET
			base_type = EXCLUDED.base_type,
			is_base_set = EXCLUDED.is_base_set,
			created_at = EXCLUDED.created_at,
			total_responses = EXCLUDED.total_responses`,
		string(p.BaseType), p.IsBaseSet, p.CreatedAt, p.TotalResponses)
	if err != nil {
		return fmt.Errorf("saving profile: %w", err)
	}
	return nil
}
