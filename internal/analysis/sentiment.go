package analysis

import "github.com/heainKang/daily-me-app/internal/models"

// Sentiment maps the share of A answers onto [-1, 1]. No responses is 0.
func Sentiment(responses []models.Response) float64 {
	total := len(responses)
	if total == 0 {
		return 0
	}
	positive := 0
	for _, r := range responses {
		if r.Selected.Positive() {
			positive++
		}
	}
	return float64(positive)/float64(total)*2 - 1
}

// SentimentOf returns the persisted form of Sentiment.
func SentimentOf(responses []models.Response) models.Sentiment {
	s := Sentiment(responses)
	return models.Sentiment{Score: s, Comparative: s}
}
