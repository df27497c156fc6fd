package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/heainKang/daily-me-app/internal/cli"
	"github.com/heainKang/daily-me-app/internal/cli/backups"
	"github.com/heainKang/daily-me-app/internal/cli/daily"
	"github.com/heainKang/daily-me-app/internal/cli/profile"
	"github.com/heainKang/daily-me-app/internal/cli/settings"
	"github.com/heainKang/daily-me-app/internal/cli/system"
	"github.com/heainKang/daily-me-app/internal/constants"
	apperrors "github.com/heainKang/daily-me-app/internal/errors"
	"github.com/heainKang/daily-me-app/internal/logger"
)

type CLI struct {
	Version kong.VersionFlag
	Config  string `help:"SQLite path, .json path or PostgreSQL connection string. Falls back to the OS keyring, then DAILYME_DB_CONNECTION, then ~/.config/dailyme/dailyme.db. Passwords are not accepted here." type:"string"`
	Debug   bool   `help:"Enable debug logging to stderr."`

	Init    system.InitCmd    `cmd:"" help:"Initialize dailyme storage."`
	Migrate system.MigrateCmd `cmd:"" help:"Run database migrations."`
	Doctor  system.DoctorCmd  `cmd:"" help:"Run health checks and diagnostics."`
	Tui     system.TuiCmd     `cmd:"" help:"Launch the interactive TUI." default:"1"`

	Onboard   profile.OnboardCmd `cmd:"" help:"Answer the personality questionnaire."`
	Skip      profile.SkipCmd    `cmd:"" help:"Skip the questionnaire."`
	Today     daily.TodayCmd     `cmd:"" help:"Show today's quotes and questions."`
	Answer    daily.AnswerCmd    `cmd:"" help:"Answer a quote or question."`
	Mood      daily.MoodCmd      `cmd:"" help:"Record today's mood."`
	Report    daily.ReportCmd    `cmd:"" help:"Show a day's analysis."`
	History   daily.HistoryCmd   `cmd:"" help:"Show the mood history."`
	Responses daily.ResponsesCmd `cmd:"" help:"List recorded responses."`
	Profile   profile.ShowCmd    `cmd:"" help:"Show the personality profile."`
	Clear     profile.ClearCmd   `cmd:"" help:"Delete the profile, responses and analyses."`

	Settings settings.SettingsCmd `cmd:"" help:"Manage application settings."`
	Backup   struct {
		Create  backups.BackupCreateCmd  `cmd:"" help:"Create a manual backup." default:"1"`
		List    backups.BackupListCmd    `cmd:"" help:"List available backups."`
		Restore backups.BackupRestoreCmd `cmd:"" help:"Restore from a backup."`
	} `cmd:"" help:"Manage database backups."`
	Keyring   system.KeyringCmd `cmd:"" help:"Manage the PostgreSQL connection string in the OS keyring."`
	Serve     system.ServeCmd   `cmd:"" help:"Serve the HTTP API."`
	DebugCmds system.DebugCmd   `cmd:"" name:"debug" help:"Debug commands for troubleshooting."`
	Notify    system.NotifyCmd  `cmd:"" hidden:"" help:"Send the due quote notification (run every minute by cron)."`
}

func newParser(c *CLI) (*kong.Kong, error) {
	return kong.New(c,
		kong.Name(constants.AppName),
		kong.Description("Daily quotes, questions and mood journal with personality feedback"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact:             true,
			NoExpandSubcommands: true,
		}),
		kong.Vars{
			"version":    constants.Version,
			"serve_addr": constants.DefaultServeAddr,
		},
	)
}

// commandName is the top-level command of a parsed invocation.
func commandName(kctx *kong.Context) string {
	fields := strings.Fields(kctx.Command())
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Commands that open the store themselves or never touch it.
var skipLoad = map[string]bool{
	"init":    true,
	"doctor":  true,
	"keyring": true,
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	var c CLI
	parser, err := newParser(&c)
	if err != nil {
		fmt.Fprintln(os.Stderr, apperrors.Format(err))
		return 1
	}
	kctx, err := parser.Parse(args)
	parser.FatalIfErrorf(err)

	config, source := cli.ResolveConfig(c.Config)
	if err := logger.Init(logger.Config{Debug: c.Debug, ConfigDir: cli.LogDir(config)}); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to initialize logger: %v\n", err)
	}
	logger.Debug("Resolved storage", "source", source, "command", kctx.Command())

	command := commandName(kctx)
	appCtx := &cli.Context{}
	if command != "keyring" {
		store, err := cli.OpenStore(config, source)
		if err != nil {
			fmt.Fprintln(os.Stderr, apperrors.Format(err))
			return 1
		}
		defer store.Close()
		appCtx.Store = store

		if !skipLoad[command] {
			if err := store.Load(); err != nil {
				logger.Error("Failed to load storage", "error", err)
				fmt.Fprintln(os.Stderr, apperrors.Format(err))
				return 1
			}
		}
	}

	if err := kctx.Run(appCtx); err != nil {
		logger.Error("Command failed", "command", kctx.Command(), "error", err)
		fmt.Fprintln(os.Stderr, apperrors.Format(err))
		return 1
	}
	return 0
}
