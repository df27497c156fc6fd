package models

// Sentiment carries the ratio score. Score and Comparative are equal.
type Sentiment struct {
	Score       float64 `json:"score"`
	Comparative float64 `json:"comparative"`
}

// AnalysisRecord is the daily report. Date is the natural key.
type AnalysisRecord struct {
	Date            string      `json:"date"` // YYYY-MM-DD
	Scores          ScoreVector `json:"scores"`
	DominantType    Personality `json:"dominant_type"`
	Sentiment       Sentiment   `json:"sentiment"`
	Responses       []Response  `json:"responses"`
	Feedback        string      `json:"feedback"`
	Recommendations []string    `json:"recommendations"`
}

// LastMood returns the latest response in the record that carries a mood.
func (a AnalysisRecord) LastMood() (Response, bool) {
	for i := len(a.Responses) - 1; i >= 0; i-- {
		if a.Responses[i].Mood != "" {
			return a.Responses[i], true
		}
	}
	return Response{}, false
}

// HistoryEntry is one day of the mood history view.
type HistoryEntry struct {
	Date string `json:"date"`
	Mood Mood   `json:"mood"`
	Note string `json:"note,omitempty"`
}

// History is a window of mood entries with per-mood counts.
type History struct {
	Entries []HistoryEntry `json:"entries"`
	Counts  map[Mood]int   `json:"counts"`
}

// Percentage returns the rounded share of entries with mood m.
func (h History) Percentage(m Mood) int {
	if len(h.Entries) == 0 {
		return 0
	}
	return int(float64(h.Counts[m])/float64(len(h.Entries))*100 + 0.5)
}
