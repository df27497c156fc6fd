package analysis

import (
	"bytes"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/heainKang/daily-me-app/internal/logger"
	"github.com/heainKang/daily-me-app/internal/models"
)

func resp(itemID string, opt models.Option) models.Response {
	return models.Response{ItemID: itemID, Selected: opt, Day: "2024-01-01", Slot: models.SlotMorning}
}

func fixedGenerator(hour int) *Generator {
	return &Generator{Now: func() time.Time {
		return time.Date(2024, 1, 1, hour, 30, 0, 0, time.UTC)
	}}
}

func TestScore(t *testing.T) {
	scores := Score([]models.Response{
		resp("initial_energy_1", models.OptionA),
		resp("initial_energy_2", models.OptionA),
		resp("morning_1", models.OptionB),
	})
	want := models.Weights(models.AxisE, models.AxisE, models.AxisI, models.AxisS)
	if scores != want {
		t.Errorf("Score() = %v, want %v", scores, want)
	}
}

func TestScoreUnknownItemIsZeroAndWarns(t *testing.T) {
	var buf bytes.Buffer
	prev := logger.Logger
	logger.Logger = logger.New(&buf, log.WarnLevel, false)
	t.Cleanup(func() { logger.Logger = prev })

	scores := Score([]models.Response{resp("nonexistent", models.OptionA)})
	if !scores.IsZero() {
		t.Errorf("Score(unknown) = %v, want zero vector", scores)
	}
	if !strings.Contains(buf.String(), "catalog item not found") {
		t.Errorf("expected a warning, log was %q", buf.String())
	}
}

func TestScoreIgnoresDailyQuestionsAndMood(t *testing.T) {
	scores := Score([]models.Response{
		resp("morning_energy_1", models.OptionA),
		resp("emotion_2024-01-01", models.OptionA),
	})
	if !scores.IsZero() {
		t.Errorf("expected zero vector, got %v", scores)
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name   string
		scores models.ScoreVector
		want   models.Personality
	}{
		{"zero vector", models.ScoreVector{}, "ENFP"},
		{"all ties non-zero", models.Weights(models.AxisE, models.AxisI), "ENTJ"},
		{"strict winners", models.Weights(models.AxisI, models.AxisS, models.AxisF, models.AxisP), "ISFP"},
		{"mixed", models.Weights(models.AxisE, models.AxisE, models.AxisI, models.AxisS, models.AxisT, models.AxisJ, models.AxisP), "ESTJ"},
		{"one axis only", models.Weights(models.AxisI), "INTJ"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.scores); got != tt.want {
				t.Errorf("Classify(%v) = %s, want %s", tt.scores, got, tt.want)
			}
		})
	}
}

func TestClassifyZeroWeightSequences(t *testing.T) {
	var many []models.Response
	for i := 0; i < 10; i++ {
		many = append(many, resp("unknown", models.OptionB))
	}
	if got := Classify(Score(many)); got != "ENFP" {
		t.Errorf("zero-weight sequence classified as %s", got)
	}
}

func TestSentiment(t *testing.T) {
	tests := []struct {
		name string
		opts []models.Option
		want float64
	}{
		{"empty", nil, 0},
		{"all A", []models.Option{models.OptionA, models.OptionA}, 1},
		{"all B", []models.Option{models.OptionB, models.OptionB, models.OptionB}, -1},
		{"one each", []models.Option{models.OptionA, models.OptionB}, 0},
		{"two of three", []models.Option{models.OptionA, models.OptionA, models.OptionB}, 1.0 / 3.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var rs []models.Response
			for _, o := range tt.opts {
				rs = append(rs, resp("morning_1", o))
			}
			if got := Sentiment(rs); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Sentiment() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFeedback(t *testing.T) {
	g := fixedGenerator(9)

	tests := []struct {
		name      string
		dominant  models.Personality
		baseline  models.Personality
		sentiment float64
		want      []string
	}{
		{
			name:      "upbeat ENFP with momentum",
			dominant:  "ENFP",
			sentiment: 1,
			want:      []string{openerUpbeat, insights["ENFP"].positive, closingMomentum},
		},
		{
			name:      "upbeat without third paragraph",
			dominant:  "ENFP",
			sentiment: 0.35,
			want:      []string{openerUpbeat, insights["ENFP"].positive},
		},
		{
			name:      "neutral opener positive insight",
			dominant:  "ENTJ",
			sentiment: 0.25,
			want:      []string{openerNeutral, insights["ENTJ"].positive},
		},
		{
			name:      "neutral band generic",
			dominant:  "ISTJ",
			sentiment: 0,
			want:      []string{openerNeutral, genericInsight.neutral},
		},
		{
			name:      "baseline overrides dominant",
			dominant:  "ENFP",
			baseline:  "INFP",
			sentiment: -0.15,
			want:      []string{openerSupportive, insights["INFP"].neutral},
		},
		{
			name:      "unset baseline uses generic insight",
			dominant:  "ENTJ",
			baseline:  models.PersonalityUnset,
			sentiment: -1,
			want:      []string{openerSupportive, genericInsight.negative, closingReachOut},
		},
		{
			name:      "opener at 0.3 stays neutral",
			dominant:  "ENFP",
			sentiment: 0.3,
			want:      []string{openerNeutral, insights["ENFP"].positive},
		},
		{
			name:      "opener at -0.1 is supportive",
			dominant:  "INFP",
			sentiment: -0.1,
			want:      []string{openerSupportive, insights["INFP"].neutral},
		},
		{
			name:      "insight at 0.2 stays neutral",
			dominant:  "ENTJ",
			sentiment: 0.2,
			want:      []string{openerNeutral, insights["ENTJ"].neutral},
		},
		{
			name:      "no momentum paragraph at 0.4",
			dominant:  "ENFP",
			sentiment: 0.4,
			want:      []string{openerUpbeat, insights["ENFP"].positive},
		},
		{
			name:      "boundary at -0.2 stays negative without reach out",
			dominant:  "ESFJ",
			sentiment: -0.2,
			want:      []string{openerSupportive, genericInsight.negative},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.Feedback(tt.dominant, tt.baseline, tt.sentiment, nil)
			want := strings.Join(tt.want, "\n\n")
			if got != want {
				t.Errorf("Feedback() =\n%s\nwant\n%s", got, want)
			}
		})
	}
}

func TestRecommendations(t *testing.T) {
	tests := []struct {
		name      string
		dominant  models.Personality
		sentiment float64
		hour      int
		want      []string
	}{
		{
			name:      "rest list",
			dominant:  "ENFP",
			sentiment: -0.5,
			hour:      20,
			want:      append(append([]string{}, restRecommendations...), RecommendationEvening),
		},
		{
			name:      "celebrate list",
			dominant:  "ISTJ",
			sentiment: 0.5,
			hour:      12,
			want:      append(append([]string{}, celebrateRecommendations...), RecommendationAfternoon),
		},
		{
			name:      "type picks ENFP",
			dominant:  "ENFP",
			sentiment: 0,
			hour:      7,
			want: []string{
				axisRecommendations[models.AxisE],
				axisRecommendations[models.AxisN],
				axisRecommendations[models.AxisF],
				RecommendationMorning,
			},
		},
		{
			name:      "type picks at -0.3",
			dominant:  "INTJ",
			sentiment: -0.3,
			hour:      13,
			want: []string{
				axisRecommendations[models.AxisI],
				axisRecommendations[models.AxisN],
				axisRecommendations[models.AxisT],
				RecommendationAfternoon,
			},
		},
		{
			name:      "type picks UNSET",
			dominant:  models.PersonalityUnset,
			sentiment: 0,
			hour:      9,
			want: []string{
				axisRecommendations[models.AxisE],
				axisRecommendations[models.AxisN],
				axisRecommendations[models.AxisT],
				RecommendationMorning,
			},
		},
		{
			name:      "type picks ISTP",
			dominant:  "ISTP",
			sentiment: 0.4,
			hour:      18,
			want: []string{
				axisRecommendations[models.AxisI],
				axisRecommendations[models.AxisS],
				axisRecommendations[models.AxisT],
				RecommendationEvening,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := fixedGenerator(tt.hour).Recommendations(tt.dominant, tt.sentiment)
			if len(got) != 4 {
				t.Fatalf("len = %d, want 4", len(got))
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("rec[%d] = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestTimeOfDayRecommendation(t *testing.T) {
	for hour := 0; hour < 24; hour++ {
		got := TimeOfDayRecommendation(hour)
		var want string
		switch {
		case hour >= 18:
			want = RecommendationEvening
		case hour >= 12:
			want = RecommendationAfternoon
		default:
			want = RecommendationMorning
		}
		if got != want {
			t.Errorf("hour %d: got %q, want %q", hour, got, want)
		}
	}
}

func TestOnboardScenario(t *testing.T) {
	var answers []models.Response
	for _, id := range []string{
		"initial_energy_1", "initial_info_1", "initial_decision_1", "initial_lifestyle_1",
		"initial_energy_2", "initial_info_2", "initial_decision_2", "initial_lifestyle_2",
	} {
		opt := models.OptionB
		if id == "initial_energy_1" || id == "initial_info_1" {
			opt = models.OptionA
		}
		answers = append(answers, resp(id, opt))
	}

	scores, personality := Onboard(answers)
	want := models.ScoreVector{1, 1, 1, 1, 0, 2, 0, 2}
	if scores != want {
		t.Errorf("scores = %v, want %v", scores, want)
	}
	if personality != "ENFP" {
		t.Errorf("personality = %s, want ENFP", personality)
	}
}

func TestDailyScenario(t *testing.T) {
	g := fixedGenerator(15)
	responses := []models.Response{
		resp("morning_1", models.OptionA),
		resp("afternoon_2", models.OptionA),
		resp("evening_3", models.OptionB),
	}

	rec := g.Daily("2024-01-01", responses, "")

	if rec.Date != "2024-01-01" {
		t.Errorf("date = %s", rec.Date)
	}
	if rec.DominantType != "ENFP" {
		t.Errorf("dominant = %s, want ENFP", rec.DominantType)
	}
	if !rec.Scores.IsZero() {
		t.Errorf("daily scores should stay zero, got %v", rec.Scores)
	}
	if math.Abs(rec.Sentiment.Score-1.0/3.0) > 1e-9 || rec.Sentiment.Score != rec.Sentiment.Comparative {
		t.Errorf("sentiment = %+v", rec.Sentiment)
	}
	if !strings.HasPrefix(rec.Feedback, openerUpbeat) {
		t.Errorf("feedback should open upbeat: %q", rec.Feedback)
	}
	if len(rec.Recommendations) != 4 || rec.Recommendations[3] != RecommendationAfternoon {
		t.Errorf("recommendations = %v", rec.Recommendations)
	}
	if len(rec.Responses) != 3 {
		t.Errorf("responses = %d, want 3", len(rec.Responses))
	}
}

func TestDailyUsesBaseline(t *testing.T) {
	rec := fixedGenerator(8).Daily("2024-01-02", nil, "INFP")
	if rec.DominantType != "INFP" {
		t.Errorf("dominant = %s, want INFP", rec.DominantType)
	}
	if !strings.Contains(rec.Feedback, insights["INFP"].neutral) {
		t.Errorf("expected INFP neutral insight, got %q", rec.Feedback)
	}

}

func TestDailySkippedBaseline(t *testing.T) {
	responses := []models.Response{
		resp("morning_1", models.OptionA),
		resp("afternoon_1", models.OptionB),
	}
	rec := fixedGenerator(8).Daily("2024-01-02", responses, models.PersonalityUnset)

	if rec.DominantType != models.PersonalityUnset {
		t.Errorf("dominant = %s, want UNSET", rec.DominantType)
	}
	want := strings.Join([]string{openerNeutral, genericInsight.neutral}, "\n\n")
	if rec.Feedback != want {
		t.Errorf("feedback =\n%s\nwant\n%s", rec.Feedback, want)
	}
	wantRecs := []string{
		axisRecommendations[models.AxisE],
		axisRecommendations[models.AxisN],
		axisRecommendations[models.AxisT],
		RecommendationMorning,
	}
	for i := range wantRecs {
		if rec.Recommendations[i] != wantRecs[i] {
			t.Errorf("rec[%d] = %q, want %q", i, rec.Recommendations[i], wantRecs[i])
		}
	}

	never := fixedGenerator(8).Daily("2024-01-02", responses, "")
	if never.DominantType != "ENFP" || !strings.Contains(never.Feedback, insights["ENFP"].neutral) {
		t.Errorf("no baseline should fall back to ENFP, got %s: %q", never.DominantType, never.Feedback)
	}
}
