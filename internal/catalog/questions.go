package catalog

import "github.com/heainKang/daily-me-app/internal/models"

// question builds an item whose option A weights first and option B weights second.
func question(id, text string, slot models.TimeSlot, labelA string, first models.Axis, labelB string, second models.Axis) models.CatalogItem {
	return models.CatalogItem{
		ID:      id,
		Text:    text,
		Slot:    slot,
		OptionA: models.ItemOption{Label: labelA, Weights: models.Weights(first)},
		OptionB: models.ItemOption{Label: labelB, Weights: models.Weights(second)},
	}
}

// onboarding is the one-time questionnaire that establishes the baseline type.
var onboarding = []models.CatalogItem{
	question("initial_energy_1", "새로운 환경에서 에너지를 얻는 방법은?", models.SlotMorning,
		"사람들과 대화하며 적응하기", models.AxisE, "혼자 조용히 환경 파악하기", models.AxisI),
	question("initial_info_1", "정보를 받아들일 때 중요하게 생각하는 것은?", models.SlotMorning,
		"전체적인 맥락과 가능성", models.AxisN, "구체적인 사실과 세부사항", models.AxisS),
	question("initial_decision_1", "중요한 결정을 내릴 때 우선시하는 것은?", models.SlotMorning,
		"논리적 분석과 객관성", models.AxisT, "감정과 가치관, 사람들에게 미치는 영향", models.AxisF),
	question("initial_lifestyle_1", "일상생활에서 선호하는 스타일은?", models.SlotMorning,
		"계획적이고 체계적으로", models.AxisJ, "유연하고 자유롭게", models.AxisP),
	question("initial_energy_2", "스트레스 받을 때 회복 방법은?", models.SlotAfternoon,
		"친구들과 함께 이야기하기", models.AxisE, "혼자 조용한 곳에서 휴식", models.AxisI),
	question("initial_info_2", "새로운 것을 배울 때 흥미로운 것은?", models.SlotAfternoon,
		"이론적 개념과 창의적 아이디어", models.AxisN, "실용적 기술과 구체적 방법", models.AxisS),
	question("initial_decision_2", "갈등 상황에서 해결 방식은?", models.SlotEvening,
		"객관적 기준으로 공정하게", models.AxisT, "모두가 만족할 수 있는 방향으로", models.AxisF),
	question("initial_lifestyle_2", "여행 계획을 세울 때 선호하는 방식은?", models.SlotEvening,
		"미리 상세한 일정과 예약", models.AxisJ, "대략적 방향만 정하고 즉흥적으로", models.AxisP),
}

// daily is the pool of recurring questions, three per slot.
var daily = []models.CatalogItem{
	question("morning_energy_1", "오늘 하루를 시작하는 기분은?", models.SlotMorning,
		"사람들을 만나고 싶은 기분", models.AxisE, "조용히 혼자 시작하고 싶은 기분", models.AxisI),
	question("morning_lifestyle_1", "오늘 하루 일정을 생각하면?", models.SlotMorning,
		"계획대로 차근차근 진행하고 싶어", models.AxisJ, "상황에 따라 유연하게 하고 싶어", models.AxisP),
	question("morning_info_1", "오늘 하고 싶은 일은?", models.SlotMorning,
		"새로운 아이디어나 영감을 찾는 일", models.AxisN, "구체적이고 실용적인 일", models.AxisS),
	question("afternoon_decision_1", "오늘 중요했던 순간은?", models.SlotAfternoon,
		"논리적으로 문제를 해결한 순간", models.AxisT, "누군가와 공감하고 소통한 순간", models.AxisF),
	question("afternoon_energy_1", "지금 가장 하고 싶은 것은?", models.SlotAfternoon,
		"누군가와 대화하거나 함께 시간 보내기", models.AxisE, "혼자만의 시간으로 재충전하기", models.AxisI),
	question("afternoon_lifestyle_1", "오후 시간을 어떻게 보내고 싶어?", models.SlotAfternoon,
		"미리 정한 계획에 따라 체계적으로", models.AxisJ, "그때그때 떠오르는 대로 자유롭게", models.AxisP),
	question("evening_reflection_1", "오늘 하루를 돌아보면?", models.SlotEvening,
		"계획한 것들을 완료해서 만족스러워", models.AxisJ, "예상치 못한 재미있는 일들이 있었어", models.AxisP),
	question("evening_decision_1", "오늘 가장 의미있었던 일은?", models.SlotEvening,
		"효율적으로 목표를 달성한 것", models.AxisT, "누군가에게 도움이 된 것", models.AxisF),
	question("evening_energy_1", "내일을 위한 에너지 충전 방법은?", models.SlotEvening,
		"사람들과 함께하는 시간", models.AxisE, "혼자만의 조용한 시간", models.AxisI),
}
