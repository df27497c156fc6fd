// Package analysis turns recorded responses into scores, a personality type,
// a sentiment ratio and canned feedback.
package analysis

import (
	"github.com/heainKang/daily-me-app/internal/catalog"
	"github.com/heainKang/daily-me-app/internal/logger"
	"github.com/heainKang/daily-me-app/internal/models"
)

// Score sums the catalog weights of every selected option. Responses that
// reference an unknown item contribute nothing.
func Score(responses []models.Response) models.ScoreVector {
	var v models.ScoreVector
	for _, r := range responses {
		entry := catalog.Lookup(r.ItemID)
		if !entry.Found() {
			logger.Warn("catalog item not found", "item_id", r.ItemID)
			continue
		}
		v = v.Add(entry.Weights(r.Selected))
	}
	return v
}

// Onboard scores the onboarding answers and classifies the result.
func Onboard(responses []models.Response) (models.ScoreVector, models.Personality) {
	scores := Score(responses)
	return scores, Classify(scores)
}
