package catalog

import "github.com/heainKang/daily-me-app/internal/models"

const (
	QuoteLabelPositive = "공감돼요"
	QuoteLabelNegative = "별로예요"
)

func quote(id, text string, slot models.TimeSlot, positive, negative []models.Axis) models.CatalogItem {
	return models.CatalogItem{
		ID:      id,
		Text:    text,
		Slot:    slot,
		OptionA: models.ItemOption{Label: QuoteLabelPositive, Weights: models.Weights(positive...)},
		OptionB: models.ItemOption{Label: QuoteLabelNegative, Weights: models.Weights(negative...)},
	}
}

func axes(a ...models.Axis) []models.Axis { return a }

var quotes = []models.CatalogItem{
	quote("morning_1", "새로운 하루, 새로운 기회가 시작됩니다", models.SlotMorning,
		axes(models.AxisE, models.AxisN), axes(models.AxisI, models.AxisS)),
	quote("morning_2", "오늘도 계획한 일들을 차근차근 해나가봅시다", models.SlotMorning,
		axes(models.AxisJ, models.AxisS), axes(models.AxisP, models.AxisN)),
	quote("morning_3", "혼자만의 시간으로 하루를 조용히 시작해보세요", models.SlotMorning,
		axes(models.AxisI, models.AxisF), axes(models.AxisE, models.AxisT)),
	quote("morning_4", "오늘은 무엇을 배우고 발견할까요?", models.SlotMorning,
		axes(models.AxisN, models.AxisP), axes(models.AxisS, models.AxisJ)),
	quote("morning_5", "논리적으로 생각하고 효율적으로 행동하는 하루가 되길", models.SlotMorning,
		axes(models.AxisT, models.AxisJ), axes(models.AxisF, models.AxisP)),

	quote("afternoon_1", "지금까지 잘 해왔어요. 오후도 화이팅!", models.SlotAfternoon,
		axes(models.AxisF, models.AxisE), axes(models.AxisT, models.AxisI)),
	quote("afternoon_2", "완벽하지 않아도 괜찮습니다. 진전이 중요해요", models.SlotAfternoon,
		axes(models.AxisF, models.AxisP), axes(models.AxisT, models.AxisJ)),
	quote("afternoon_3", "오늘의 목표를 점검해보는 시간입니다", models.SlotAfternoon,
		axes(models.AxisJ, models.AxisT), axes(models.AxisP, models.AxisF)),
	quote("afternoon_4", "동료들과 함께 나누는 점심시간이 소중해요", models.SlotAfternoon,
		axes(models.AxisE, models.AxisF), axes(models.AxisI, models.AxisT)),
	quote("afternoon_5", "조용히 나만의 시간을 가져보세요", models.SlotAfternoon,
		axes(models.AxisI, models.AxisS), axes(models.AxisE, models.AxisN)),

	quote("evening_1", "오늘 하루도 수고했어요. 스스로를 격려해주세요", models.SlotEvening,
		axes(models.AxisF, models.AxisI), axes(models.AxisT, models.AxisE)),
	quote("evening_2", "오늘의 성과를 객관적으로 평가해보세요", models.SlotEvening,
		axes(models.AxisT, models.AxisJ), axes(models.AxisF, models.AxisP)),
	quote("evening_3", "내일은 또 다른 가능성이 기다리고 있어요", models.SlotEvening,
		axes(models.AxisN, models.AxisP), axes(models.AxisS, models.AxisJ)),
	quote("evening_4", "사랑하는 사람들과 시간을 보내는 저녁이 되길", models.SlotEvening,
		axes(models.AxisF, models.AxisE), axes(models.AxisT, models.AxisI)),
	quote("evening_5", "규칙적인 저녁 루틴으로 하루를 마무리해보세요", models.SlotEvening,
		axes(models.AxisJ, models.AxisS), axes(models.AxisP, models.AxisN)),
}
