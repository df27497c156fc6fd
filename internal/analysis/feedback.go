package analysis

import (
	"strings"
	"time"

	"github.com/heainKang/daily-me-app/internal/models"
)

const (
	openerUpbeat     = "오늘 하루 정말 좋은 에너지가 느껴져요! ✨"
	openerNeutral    = "오늘 하루 수고하셨어요. 🌸"
	openerSupportive = "오늘은 조금 힘든 하루였나요? 괜찮아요, 그런 날이 있어요. 💙"

	closingReachOut = "힘들 때는 혼자 견디려 하지 마세요. 잠시 쉬어가도 괜찮습니다. 🫂"
	closingMomentum = "이 좋은 기분이 계속 이어지길 바라요. 당신의 긍정 에너지가 주변도 밝게 만들어요! 🌟"
)

type insight struct {
	positive, neutral, negative string
}

var insights = map[models.Personality]insight{
	"ENTJ": {
		positive: "오늘은 리더십이 돋보이는 하루였어요. 목표를 향해 당당히 나아가는 모습이 멋져요!",
		neutral:  "체계적이고 효율적인 하루를 보내셨네요. 계획한 일들을 차근차근 해나가는 당신이 대단해요.",
		negative: "오늘은 조금 부담스러운 일들이 많았나요? 완벽하려 하지 마세요. 당신은 이미 충분히 잘하고 있어요.",
	},
	"ENFP": {
		positive: "오늘은 창의적인 아이디어가 샘솟는 하루였을 것 같아요! 당신의 열정이 정말 빛나네요 ✨",
		neutral:  "새로운 가능성들을 탐색하며 보낸 하루 같아요. 당신의 호기심과 열린 마음이 소중해요.",
		negative: "평소보다 조용한 하루였나요? 때로는 내면을 돌아보는 시간도 필요해요. 충분히 쉬어가세요.",
	},
	"INFP": {
		positive: "오늘은 마음이 따뜻한 하루였나봐요. 당신의 따뜻한 마음이 세상을 더 아름답게 만들어요 💕",
		neutral:  "자신만의 가치와 신념을 지키며 보낸 조용한 하루였을 것 같아요. 그런 당신이 멋져요.",
		negative: "마음이 복잡한 하루였나요? 감정이 풍부한 만큼 때로는 힘들 수도 있어요. 스스로를 다독여주세요.",
	},
}

var genericInsight = insight{
	positive: "오늘 하루 정말 잘 보내신 것 같아요! 당신의 긍정적인 에너지가 느껴져요 😊",
	neutral:  "차분하고 안정된 하루를 보내셨군요. 때로는 이런 평온함도 소중해요.",
	negative: "오늘은 조금 힘든 하루였나요? 그런 날도 있어요. 스스로에게 너그러워지세요.",
}

var (
	restRecommendations = []string{
		"🛁 따뜻한 차 한잔과 함께 휴식을 취해보세요",
		"🎵 좋아하는 음악을 들으며 마음을 달래보세요",
		"📱 신뢰하는 사람에게 마음을 털어놓아보세요",
	}
	celebrateRecommendations = []string{
		"📝 오늘의 좋은 순간을 일기에 기록해보세요",
		"💌 소중한 사람에게 안부 인사를 보내보세요",
		"🌟 이 기분을 오래 간직할 수 있는 작은 일을 해보세요",
	}
	// axisRecommendations is keyed by the letters checked for in the type code.
	axisRecommendations = map[models.Axis]string{
		models.AxisE: "☕ 가까운 사람과 커피 한잔 하며 대화해보세요",
		models.AxisI: "🕯️ 혼자만의 조용한 시간을 가져보세요",
		models.AxisN: "✍️ 새로운 아이디어를 노트에 적어보세요",
		models.AxisS: "📋 오늘 해야 할 일들을 정리해보세요",
		models.AxisT: "🎯 오늘의 목표를 점검해보세요",
		models.AxisF: "💝 감사한 마음을 표현해보세요",
	}
)

const (
	RecommendationEvening   = "🌙 오늘 하루를 되돌아보며 감사한 점 3가지를 생각해보세요"
	RecommendationAfternoon = "🚶‍♀️ 잠깐 산책을 하며 오후 에너지를 충전해보세요"
	RecommendationMorning   = "🌅 오늘 하루 목표를 세우고 긍정적인 마음으로 시작해보세요"
)

// Generator produces feedback text and recommendations. Now supplies the
// hour used for the time-of-day recommendation.
type Generator struct {
	Now func() time.Time
}

// NewGenerator returns a Generator reading the wall clock in loc.
func NewGenerator(loc *time.Location) *Generator {
	if loc == nil {
		loc = time.Local
	}
	return &Generator{Now: func() time.Time { return time.Now().In(loc) }}
}

func (g *Generator) now() time.Time {
	if g == nil || g.Now == nil {
		return time.Now()
	}
	return g.Now()
}

// Feedback builds the two or three paragraph message for a day. The insight
// paragraph follows baseline when one is set, dominant otherwise. Types
// without a dedicated table, UNSET included, get the generic insight.
func (g *Generator) Feedback(dominant, baseline models.Personality, sentiment float64, responses []models.Response) string {
	var opener string
	switch {
	case sentiment > 0.3:
		opener = openerUpbeat
	case sentiment > -0.1:
		opener = openerNeutral
	default:
		opener = openerSupportive
	}

	target := dominant
	if baseline != "" {
		target = baseline
	}
	table, ok := insights[target]
	if !ok {
		table = genericInsight
	}

	var middle string
	switch {
	case sentiment > 0.2:
		middle = table.positive
	case sentiment > -0.2:
		middle = table.neutral
	default:
		middle = table.negative
	}

	paragraphs := []string{opener, middle}
	if sentiment < -0.2 {
		paragraphs = append(paragraphs, closingReachOut)
	} else if sentiment > 0.4 {
		paragraphs = append(paragraphs, closingMomentum)
	}
	return strings.Join(paragraphs, "\n\n")
}

// Recommendations always returns four entries, the last chosen by hour of day.
func (g *Generator) Recommendations(dominant models.Personality, sentiment float64) []string {
	recs := make([]string, 0, 4)
	switch {
	case sentiment < -0.3:
		recs = append(recs, restRecommendations...)
	case sentiment > 0.4:
		recs = append(recs, celebrateRecommendations...)
	default:
		if dominant == "" {
			dominant = models.DefaultPersonality
		}
		recs = append(recs,
			pick(dominant, models.AxisE, models.AxisI),
			pick(dominant, models.AxisN, models.AxisS),
			pick(dominant, models.AxisF, models.AxisT),
		)
	}
	return append(recs, TimeOfDayRecommendation(g.now().Hour()))
}

// pick chooses by whether the code contains letter anywhere, so UNSET
// resolves to E, N and T.
func pick(p models.Personality, letter, otherwise models.Axis) string {
	if strings.Contains(string(p), letter.String()) {
		return axisRecommendations[letter]
	}
	return axisRecommendations[otherwise]
}

// TimeOfDayRecommendation returns the closing recommendation for hour.
func TimeOfDayRecommendation(hour int) string {
	switch {
	case hour >= 18:
		return RecommendationEvening
	case hour >= 12:
		return RecommendationAfternoon
	default:
		return RecommendationMorning
	}
}

// Daily builds the record for date from that day's responses. The type is
// never recomputed here: it is the baseline, or ENFP when onboarding never
// happened. A skipped onboarding keeps UNSET as the day's type.
func (g *Generator) Daily(date string, responses []models.Response, baseline models.Personality) models.AnalysisRecord {
	dominant := models.DefaultPersonality
	if baseline != "" {
		dominant = baseline
	}
	sentiment := SentimentOf(responses)

	stored := make([]models.Response, len(responses))
	copy(stored, responses)

	return models.AnalysisRecord{
		Date:            date,
		Scores:          models.ScoreVector{},
		DominantType:    dominant,
		Sentiment:       sentiment,
		Responses:       stored,
		Feedback:        g.Feedback(dominant, baseline, sentiment.Score, responses),
		Recommendations: g.Recommendations(dominant, sentiment.Score),
	}
}
