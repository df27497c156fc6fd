// Package system holds the commands that manage storage and the process
// itself rather than the journal's content.
package system

import (
	"errors"
	"fmt"
	"os"

	"github.com/heainKang/daily-me-app/internal/backup"
	"github.com/heainKang/daily-me-app/internal/cli"
	"github.com/heainKang/daily-me-app/internal/constants"
	"github.com/heainKang/daily-me-app/internal/logger"
	"github.com/heainKang/daily-me-app/internal/storage"
	"github.com/heainKang/daily-me-app/internal/storage/postgres"
)

type InitCmd struct {
	Force  bool   `help:"Back up and delete an existing file store first."`
	Source string `help:"Copy settings, profile, responses and analyses from another store (path or connection string)."`
}

func (c *InitCmd) Run(ctx *cli.Context) error {
	if c.Force {
		if err := resetStore(ctx); err != nil {
			return err
		}
	}

	if err := ctx.Store.Init(); err != nil {
		return err
	}

	if c.Source != "" {
		n, err := importFrom(ctx.Store, c.Source)
		if err != nil {
			return err
		}
		ctx.Printf("Imported %d response(s) from %s\n", n, c.Source)
	}

	ctx.Printf("Initialized %s storage at: %s\n", constants.AppName, ctx.Store.GetConfigPath())
	return nil
}

func resetStore(ctx *cli.Context) error {
	if _, ok := ctx.Store.(*postgres.Store); ok {
		return fmt.Errorf("--force only applies to file stores; use '%s clear' for PostgreSQL", constants.AppName)
	}

	path := ctx.Store.GetConfigPath()
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil
	}

	saved, err := backup.NewManager(path).CreateBackup()
	if err != nil {
		return fmt.Errorf("failed to back up existing store: %w", err)
	}
	ctx.Printf("Backed up existing store to: %s\n", saved)

	if err := ctx.Store.Close(); err != nil {
		logger.Debug("Closing store before reset", "error", err)
	}
	for _, p := range []string{path, path + "-wal", path + "-shm"} {
		if err := os.Remove(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("failed to remove %s: %w", p, err)
		}
	}
	return nil
}

// importFrom copies everything from the store at source into dst, which
// must hold no responses yet.
func importFrom(dst storage.Provider, source string) (int, error) {
	existing, err := dst.GetResponses()
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, fmt.Errorf("target store already has %d response(s); use --force to start over", len(existing))
	}

	src, err := cli.OpenStore(source, cli.SourceFlag)
	if err != nil {
		return 0, err
	}
	if err := src.Load(); err != nil {
		return 0, fmt.Errorf("failed to open source store: %w", err)
	}
	defer src.Close()

	settings, err := src.GetSettings()
	if err != nil {
		return 0, fmt.Errorf("reading source settings: %w", err)
	}
	if err := dst.SaveSettings(settings); err != nil {
		return 0, err
	}

	profile, err := src.GetProfile()
	if err != nil {
		return 0, fmt.Errorf("reading source profile: %w", err)
	}
	if err := dst.SaveProfile(profile); err != nil {
		return 0, err
	}

	responses, err := src.GetResponses()
	if err != nil {
		return 0, fmt.Errorf("reading source responses: %w", err)
	}
	for _, r := range responses {
		if err := dst.AppendResponse(r); err != nil {
			return 0, fmt.Errorf("copying response %s: %w", r.ID, err)
		}
	}

	analyses, err := src.GetAllAnalyses()
	if err != nil {
		return 0, fmt.Errorf("reading source analyses: %w", err)
	}
	for _, rec := range analyses {
		if err := dst.SaveAnalysis(rec); err != nil {
			return 0, fmt.Errorf("copying analysis %s: %w", rec.Date, err)
		}
	}

	logger.Info("Imported store", "source", source, "responses", len(responses), "analyses", len(analyses))
	return len(responses), nil
}
