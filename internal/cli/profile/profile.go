package profile

import (
	"bufio"
	"errors"
	"fmt"
	"strings"

	"github.com/heainKang/daily-me-app/internal/catalog"
	"github.com/heainKang/daily-me-app/internal/cli"
	"github.com/heainKang/daily-me-app/internal/journal"
	"github.com/heainKang/daily-me-app/internal/models"
	"github.com/heainKang/daily-me-app/internal/tui/forms"
)

// runForm is replaced in tests.
var runForm = func(m *forms.OnboardingModel) error {
	return forms.NewOnboardingForm(m).Run()
}

type OnboardCmd struct {
	Answers string `help:"Answer every onboarding question at once as a string of A/B letters (e.g. ABABABAB). Prompts interactively when omitted."`
}

func (c *OnboardCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Journal()
	if err != nil {
		return err
	}

	var answers []journal.Answer
	if c.Answers != "" {
		answers, err = ParseAnswers(c.Answers)
		if err != nil {
			return err
		}
	} else {
		m := forms.NewOnboardingModel()
		if err := runForm(m); err != nil {
			return fmt.Errorf("onboarding cancelled: %w", err)
		}
		answers = m.Answers()
	}

	res, err := svc.CompleteOnboarding(answers)
	if err != nil {
		return err
	}
	ctx.Printf("✓ 당신의 기본 성향은 %s 입니다\n", res.Type)
	ctx.Printf("  %s\n", res.Scores)
	return nil
}

// ParseAnswers maps a string of A/B letters onto the onboarding questions
// in order. Spaces, commas and dashes are ignored.
func ParseAnswers(s string) ([]journal.Answer, error) {
	letters := strings.Map(func(r rune) rune {
		switch r {
		case ' ', ',', '-':
			return -1
		}
		return r
	}, strings.ToUpper(s))

	questions := catalog.Questions()
	if len(letters) != len(questions) {
		return nil, fmt.Errorf("expected %d answers, got %d", len(questions), len(letters))
	}

	answers := make([]journal.Answer, len(questions))
	for i, q := range questions {
		opt, err := models.ParseOption(string(letters[i]))
		if err != nil {
			return nil, fmt.Errorf("answer %d: %w", i+1, err)
		}
		answers[i] = journal.Answer{ItemID: q.ID, Selected: opt}
	}
	return answers, nil
}

type SkipCmd struct{}

func (c *SkipCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Journal()
	if err != nil {
		return err
	}
	if err := svc.SkipOnboarding(); err != nil {
		return err
	}
	ctx.Println("✓ 온보딩을 건너뛰었어요. 언제든 'dailyme onboard'로 다시 할 수 있어요.")
	return nil
}

type ShowCmd struct {
	JSON bool `help:"Print the profile as JSON."`
}

func (c *ShowCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Journal()
	if err != nil {
		return err
	}
	p := svc.Profile()
	if c.JSON {
		return ctx.PrintJSON(p)
	}

	baseline := "없음"
	switch {
	case p.HasBaseline():
		baseline = string(p.BaseType)
	case p.IsBaseSet:
		baseline = "건너뜀"
	}
	ctx.Printf("Base type:       %s\n", baseline)
	ctx.Printf("Onboarded:       %v\n", p.IsBaseSet)
	ctx.Printf("Total responses: %d\n", p.TotalResponses)
	if !p.CreatedAt.IsZero() {
		ctx.Printf("Created:         %s\n", p.CreatedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

type ClearCmd struct {
	Yes bool `help:"Do not ask for confirmation."`
}

func (c *ClearCmd) Run(ctx *cli.Context) error {
	if !c.Yes {
		ctx.Println("⚠️  This deletes your profile, every response and every report. Settings are kept.")
		ctx.Printf("Continue? [y/N]: ")
		line, err := bufio.NewReader(ctx.Stdin()).ReadString('\n')
		if err != nil && line == "" {
			return errors.New("no confirmation given")
		}
		answer := strings.TrimSpace(strings.ToLower(line))
		if answer != "y" && answer != "yes" {
			ctx.Println("Cancelled.")
			return nil
		}
	}

	ctx.PerformAutomaticBackup()

	svc, err := ctx.Journal()
	if err != nil {
		return err
	}
	if err := svc.ClearAll(); err != nil {
		return err
	}
	ctx.Println("✓ All journal data cleared.")
	return nil
}
