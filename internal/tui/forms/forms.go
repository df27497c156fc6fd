// Package forms holds the huh forms shared by the TUI and the CLI prompts.
package forms

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/huh"

	"github.com/heainKang/daily-me-app/internal/catalog"
	"github.com/heainKang/daily-me-app/internal/constants"
	"github.com/heainKang/daily-me-app/internal/journal"
	"github.com/heainKang/daily-me-app/internal/models"
)

var moodLabels = map[models.Mood]string{
	models.MoodGreat:  "😄 최고예요",
	models.MoodGood:   "🙂 좋아요",
	models.MoodNormal: "😐 보통이에요",
	models.MoodSad:    "😢 슬퍼요",
	models.MoodTired:  "😴 피곤해요",
}

// MoodLabel returns the display label for m.
func MoodLabel(m models.Mood) string {
	if l, ok := moodLabels[m]; ok {
		return l
	}
	return string(m)
}

// OnboardingModel collects one choice per onboarding question.
type OnboardingModel struct {
	Questions []models.CatalogItem
	Choices   []models.Option
}

func NewOnboardingModel() *OnboardingModel {
	qs := catalog.Questions()
	return &OnboardingModel{Questions: qs, Choices: make([]models.Option, len(qs))}
}

// Answers pairs each question with the chosen option.
func (m *OnboardingModel) Answers() []journal.Answer {
	out := make([]journal.Answer, len(m.Questions))
	for i, q := range m.Questions {
		out[i] = journal.Answer{ItemID: q.ID, Selected: m.Choices[i]}
	}
	return out
}

// NewOnboardingForm asks the questionnaire one question per page.
func NewOnboardingForm(m *OnboardingModel) *huh.Form {
	groups := make([]*huh.Group, 0, len(m.Questions))
	for i, q := range m.Questions {
		groups = append(groups, huh.NewGroup(
			huh.NewSelect[models.Option]().
				Title(fmt.Sprintf("%d/%d  %s", i+1, len(m.Questions), q.Text)).
				Options(
					huh.NewOption(q.OptionA.Label, models.OptionA),
					huh.NewOption(q.OptionB.Label, models.OptionB),
				).
				Value(&m.Choices[i]),
		))
	}
	return huh.NewForm(groups...).WithTheme(huh.ThemeDracula())
}

// MoodModel backs the daily mood form.
type MoodModel struct {
	Mood models.Mood
	Note string
}

func NewMoodForm(m *MoodModel) *huh.Form {
	options := make([]huh.Option[models.Mood], 0, len(models.Moods))
	for _, mood := range models.Moods {
		options = append(options, huh.NewOption(MoodLabel(mood), mood))
	}
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.Mood]().
				Title("오늘 기분은 어떤가요?").
				Options(options...).
				Value(&m.Mood),
			huh.NewText().
				Title("메모 (선택)").
				CharLimit(constants.MaxNoteLength).
				Value(&m.Note).
				Validate(validateNote),
		),
	).WithTheme(huh.ThemeDracula())
}

// AnswerModel backs the form for one quote or question.
type AnswerModel struct {
	Item     models.CatalogItem
	Selected models.Option
	Note     string
}

func NewAnswerForm(m *AnswerModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[models.Option]().
				Title(m.Item.Text).
				Options(
					huh.NewOption(m.Item.OptionA.Label, models.OptionA),
					huh.NewOption(m.Item.OptionB.Label, models.OptionB),
				).
				Value(&m.Selected),
			huh.NewInput().
				Title("메모 (선택)").
				CharLimit(constants.MaxNoteLength).
				Value(&m.Note).
				Validate(validateNote),
		),
	).WithTheme(huh.ThemeDracula())
}

// NewConfirmForm asks a yes/no question.
func NewConfirmForm(title, description string, confirmed *bool) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewConfirm().
				Title(title).
				Description(description).
				Affirmative("Yes").
				Negative("No").
				Value(confirmed),
		),
	).WithTheme(huh.ThemeDracula())
}

func validateNote(s string) error {
	if utf8.RuneCountInString(strings.TrimSpace(s)) > constants.MaxNoteLength {
		return models.ErrNoteTooLong
	}
	return nil
}
