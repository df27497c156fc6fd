package models

import "time"

// UserProfile holds the baseline type established during onboarding.
type UserProfile struct {
	BaseType       Personality `json:"base_type,omitempty"` // empty until onboarding, UNSET after a skip
	IsBaseSet      bool        `json:"is_base_set"`
	CreatedAt      time.Time   `json:"created_at"`
	TotalResponses int         `json:"total_responses"`
}

// DefaultProfile is returned when no profile has been stored yet.
func DefaultProfile(now time.Time) UserProfile {
	return UserProfile{CreatedAt: now}
}

// HasBaseline reports whether a real type was established. A skipped onboarding does not count.
func (p UserProfile) HasBaseline() bool {
	return p.IsBaseSet && p.BaseType.Valid()
}

// Baseline returns the stored type once onboarding is done or skipped,
// which may be UNSET, and "" before that.
func (p UserProfile) Baseline() Personality {
	if p.IsBaseSet {
		return p.BaseType
	}
	return ""
}
