package system

import (
	"errors"
	"fmt"

	"github.com/heainKang/daily-me-app/internal/cli"
	"github.com/heainKang/daily-me-app/internal/storage"
	"github.com/heainKang/daily-me-app/internal/utils"
)

type DebugCmd struct {
	DBPath       DebugDBPathCmd       `cmd:"" help:"Show database path."`
	DumpAnalysis DebugDumpAnalysisCmd `cmd:"" help:"Dump a day's analysis as JSON."`
	DumpSettings DebugDumpSettingsCmd `cmd:"" help:"Dump settings as JSON."`
}

type DebugDBPathCmd struct{}

func (cmd *DebugDBPathCmd) Run(ctx *cli.Context) error {
	return ctx.PrintJSON(map[string]string{"path": ctx.Store.GetConfigPath()})
}

type DebugDumpAnalysisCmd struct {
	Date string `arg:"" help:"Date to dump (YYYY-MM-DD or 'today')."`
}

func (cmd *DebugDumpAnalysisCmd) Run(ctx *cli.Context) error {
	date := cmd.Date
	if date == "today" {
		svc, err := ctx.Journal()
		if err != nil {
			return err
		}
		date = svc.Today()
	}
	if err := utils.ValidateDate(date); err != nil {
		return fmt.Errorf("invalid date format: %s (expected YYYY-MM-DD or 'today')", date)
	}

	rec, err := ctx.Store.GetAnalysis(date)
	if errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("no analysis found for date: %s", date)
	}
	if err != nil {
		return fmt.Errorf("failed to get analysis: %w", err)
	}
	return ctx.PrintJSON(rec)
}

type DebugDumpSettingsCmd struct{}

func (cmd *DebugDumpSettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	return ctx.PrintJSON(settings)
}
