package analysis

import (
	"strings"

	"github.com/heainKang/daily-me-app/internal/models"
)

// Classify resolves each axis pair independently, ties going to E, N, T and J.
// An all-zero vector is ENFP.
func Classify(scores models.ScoreVector) models.Personality {
	if scores.IsZero() {
		return models.DefaultPersonality
	}

	var b strings.Builder
	for pos := 0; pos < 4; pos++ {
		first, second := models.AxisPair(pos)
		if scores.Get(first) >= scores.Get(second) {
			b.WriteString(first.String())
		} else {
			b.WriteString(second.String())
		}
	}
	return models.Personality(b.String())
}
