package journal

import (
	"fmt"

	"github.com/heainKang/daily-me-app/internal/analysis"
	"github.com/heainKang/daily-me-app/internal/catalog"
	apperrors "github.com/heainKang/daily-me-app/internal/errors"
	"github.com/heainKang/daily-me-app/internal/logger"
	"github.com/heainKang/daily-me-app/internal/models"
)

// Answer is one onboarding choice.
type Answer struct {
	ItemID   string        `json:"item_id"`
	Selected models.Option `json:"selected_option"`
}

// OnboardingResult is the outcome of a completed questionnaire.
type OnboardingResult struct {
	Type   models.Personality `json:"type"`
	Scores models.ScoreVector `json:"scores"`
}

// CompleteOnboarding classifies the answers and stores the result as the
// baseline. The answers themselves are not added to the response log.
func (s *Service) CompleteOnboarding(answers []Answer) (OnboardingResult, error) {
	if len(answers) == 0 {
		return OnboardingResult{}, ErrNoAnswers
	}

	seen := make(map[string]bool, len(answers))
	responses := make([]models.Response, 0, len(answers))
	for _, a := range answers {
		if !catalog.IsOnboardingQuestion(a.ItemID) {
			return OnboardingResult{}, fmt.Errorf("%w: %q is not an onboarding question", ErrUnknownItem, a.ItemID)
		}
		if !a.Selected.Valid() {
			return OnboardingResult{}, fmt.Errorf("invalid option %q for %s", a.Selected, a.ItemID)
		}
		if seen[a.ItemID] {
			return OnboardingResult{}, fmt.Errorf("question %s answered more than once", a.ItemID)
		}
		seen[a.ItemID] = true
		responses = append(responses, s.newResponse(a.ItemID, a.Selected))
	}

	scores, personality := analysis.Onboard(responses)

	s.mu.Lock()
	defer s.mu.Unlock()
	profile, err := s.store.GetProfile()
	if err != nil {
		return OnboardingResult{}, apperrors.Internal(fmt.Errorf("reading profile: %w", err))
	}
	profile.BaseType = personality
	profile.IsBaseSet = true
	if err := s.store.SaveProfile(profile); err != nil {
		return OnboardingResult{}, apperrors.Internal(fmt.Errorf("saving profile: %w", err))
	}

	logger.Info("Onboarding completed", "type", personality, "scores", scores.String())
	return OnboardingResult{Type: personality, Scores: scores}, nil
}

// SkipOnboarding marks onboarding as done without a baseline type.
func (s *Service) SkipOnboarding() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	profile, err := s.store.GetProfile()
	if err != nil {
		return apperrors.Internal(fmt.Errorf("reading profile: %w", err))
	}
	profile.BaseType = models.PersonalityUnset
	profile.IsBaseSet = true
	if err := s.store.SaveProfile(profile); err != nil {
		return apperrors.Internal(fmt.Errorf("saving profile: %w", err))
	}
	logger.Info("Onboarding skipped")
	return nil
}

// NeedsOnboarding reports whether neither onboarding nor a skip happened yet.
func (s *Service) NeedsOnboarding() bool {
	return !s.Profile().IsBaseSet
}
