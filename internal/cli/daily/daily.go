package daily

import (
	"errors"
	"fmt"

	"github.com/heainKang/daily-me-app/internal/cli"
	"github.com/heainKang/daily-me-app/internal/constants"
	"github.com/heainKang/daily-me-app/internal/journal"
	"github.com/heainKang/daily-me-app/internal/models"
	"github.com/heainKang/daily-me-app/internal/tui/forms"
)

type TodayCmd struct {
	Date string `help:"Show another day (YYYY-MM-DD)."`
	JSON bool   `help:"Print as JSON."`
}

func (c *TodayCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Journal()
	if err != nil {
		return err
	}
	date := c.Date
	if date == "" {
		date = svc.Today()
	}
	view, err := svc.Day(date)
	if err != nil {
		return err
	}
	if c.JSON {
		return ctx.PrintJSON(view)
	}

	if date == svc.Today() {
		ctx.Println(svc.Greeting())
	}
	ctx.Printf("📅 %s\n\n오늘의 명언\n", view.Date)
	for _, q := range view.Quotes {
		ctx.PrintItem(q, view.Answered[q.ID])
	}
	ctx.Println("\n오늘의 질문")
	for _, q := range view.Questions {
		ctx.PrintItem(q, view.Answered[q.ID])
	}
	if view.Mood != nil {
		ctx.Printf("\n오늘의 기분: %s\n", forms.MoodLabel(view.Mood.Mood))
	} else {
		ctx.Println("\n오늘의 기분을 아직 기록하지 않았어요: dailyme mood <great|good|normal|sad|tired>")
	}
	return nil
}

type AnswerCmd struct {
	ItemID string `arg:"" help:"Quote or question id (see 'dailyme today')."`
	Option string `arg:"" help:"A or B."`
	Note   string `help:"Optional note."`
}

func (c *AnswerCmd) Run(ctx *cli.Context) error {
	opt, err := models.ParseOption(c.Option)
	if err != nil {
		return err
	}
	svc, err := ctx.Journal()
	if err != nil {
		return err
	}
	_, rec, err := svc.Answer(c.ItemID, opt, c.Note)
	if err != nil {
		return err
	}
	ctx.Printf("✓ %s 응답을 저장했어요\n\n", c.ItemID)
	ctx.PrintReport(rec)
	return nil
}

type MoodCmd struct {
	Mood string `arg:"" help:"great, good, normal, sad or tired."`
	Note string `help:"Optional note."`
}

func (c *MoodCmd) Run(ctx *cli.Context) error {
	mood, err := models.ParseMood(c.Mood)
	if err != nil {
		return err
	}
	svc, err := ctx.Journal()
	if err != nil {
		return err
	}
	_, rec, err := svc.RecordMood(mood, c.Note)
	if errors.Is(err, journal.ErrMoodAlreadyRecorded) {
		return fmt.Errorf("%w; view it with 'dailyme report'", err)
	}
	if err != nil {
		return err
	}
	ctx.Printf("✓ 오늘의 기분: %s\n\n", forms.MoodLabel(mood))
	ctx.PrintReport(rec)
	return nil
}

type ReportCmd struct {
	Date string `help:"Date of the report (YYYY-MM-DD). Defaults to today."`
	JSON bool   `help:"Print as JSON."`
}

func (c *ReportCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Journal()
	if err != nil {
		return err
	}
	date := c.Date
	if date == "" {
		date = svc.Today()
	}
	rec, err := svc.Report(date)
	if errors.Is(err, journal.ErrNoAnalysis) {
		ctx.Printf("%s 에는 아직 기록이 없어요. 명언이나 질문에 답해보세요.\n", date)
		return nil
	}
	if err != nil {
		return err
	}
	if c.JSON {
		return ctx.PrintJSON(rec)
	}
	ctx.PrintReport(rec)
	return nil
}

type HistoryCmd struct {
	Days int  `help:"Number of days to include." default:"7"`
	JSON bool `help:"Print as JSON."`
}

func (c *HistoryCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Journal()
	if err != nil {
		return err
	}
	days := c.Days
	if days == 0 {
		days = constants.DefaultHistoryDays
	}
	h, err := svc.History(days)
	if err != nil {
		return err
	}
	if c.JSON {
		return ctx.PrintJSON(h)
	}

	if len(h.Entries) == 0 {
		ctx.Printf("최근 %d일 동안 기록된 기분이 없어요.\n", days)
		return nil
	}
	ctx.Printf("최근 %d일 기분 기록\n\n", days)
	for _, e := range h.Entries {
		line := fmt.Sprintf("  %s  %s", e.Date, forms.MoodLabel(e.Mood))
		if e.Note != "" {
			line += "  " + e.Note
		}
		ctx.Println(line)
	}
	ctx.Println()
	for _, m := range models.Moods {
		if n := h.Counts[m]; n > 0 {
			ctx.Printf("  %-12s %d일 (%d%%)\n", forms.MoodLabel(m), n, h.Percentage(m))
		}
	}
	return nil
}

type ResponsesCmd struct {
	Today bool `help:"Only today's responses."`
	JSON  bool `help:"Print as JSON."`
}

func (c *ResponsesCmd) Run(ctx *cli.Context) error {
	svc, err := ctx.Journal()
	if err != nil {
		return err
	}
	var rs []models.Response
	if c.Today {
		rs, err = svc.TodayResponses()
	} else {
		rs, err = svc.AllResponses()
	}
	if err != nil {
		return err
	}
	if c.JSON {
		return ctx.PrintJSON(rs)
	}
	if len(rs) == 0 {
		ctx.Println("No responses recorded.")
		return nil
	}
	day := ""
	for _, r := range rs {
		if r.Day != day {
			day = r.Day
			ctx.Printf("\n%s\n", day)
		}
		ctx.PrintResponse(r)
	}
	return nil
}
