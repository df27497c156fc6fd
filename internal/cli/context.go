package cli

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/heainKang/daily-me-app/internal/backup"
	"github.com/heainKang/daily-me-app/internal/journal"
	"github.com/heainKang/daily-me-app/internal/logger"
	"github.com/heainKang/daily-me-app/internal/storage"
	"github.com/heainKang/daily-me-app/internal/storage/postgres"
)

// Context is handed to every command's Run method.
type Context struct {
	Store storage.Provider

	// Out and In default to the process streams.
	Out io.Writer
	In  io.Reader

	// Clock overrides the wall clock used by the journal.
	Clock func() time.Time
}

func (c *Context) Stdout() io.Writer {
	if c.Out == nil {
		return os.Stdout
	}
	return c.Out
}

func (c *Context) Stdin() io.Reader {
	if c.In == nil {
		return os.Stdin
	}
	return c.In
}

func (c *Context) Printf(format string, args ...any) {
	fmt.Fprintf(c.Stdout(), format, args...)
}

func (c *Context) Println(args ...any) {
	fmt.Fprintln(c.Stdout(), args...)
}

// Journal builds the journal service using the stored timezone.
func (c *Context) Journal() (*journal.Service, error) {
	var opts []journal.Option
	if c.Clock != nil {
		opts = append(opts, journal.WithClock(c.Clock))
	}
	return journal.NewFromSettings(c.Store, opts...)
}

// PerformAutomaticBackup backs up file-based stores and only logs failures.
func (c *Context) PerformAutomaticBackup() {
	if _, ok := c.Store.(*postgres.Store); ok {
		return
	}
	mgr := backup.NewManager(c.Store.GetConfigPath())
	if _, err := mgr.CreateBackup(); err != nil {
		logger.Warn("Automatic backup failed", "error", err)
	}
}
