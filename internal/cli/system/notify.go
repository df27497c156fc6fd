package system

import (
	"errors"

	"github.com/heainKang/daily-me-app/internal/cli"
	"github.com/heainKang/daily-me-app/internal/logger"
	"github.com/heainKang/daily-me-app/internal/notifier"
)

// NotifyCmd is run every minute by cron or launchd and sends whichever
// quote reminder starts at the current minute.
type NotifyCmd struct {
	DryRun bool `help:"Print today's schedule instead of sending."`
}

var sendNotification = func(n notifier.Notification) error {
	return notifier.New().Send(n)
}

func (c *NotifyCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return err
	}
	svc, err := ctx.Journal()
	if err != nil {
		return err
	}
	now := svc.Now()

	if c.DryRun {
		if !settings.NotificationsEnabled {
			ctx.Println("Notifications are disabled.")
		}
		for _, n := range notifier.Schedule(now, settings) {
			ctx.Printf("%02d:00  %s  [%s] %s\n", n.Hour, n.Title, n.QuoteID, n.Body)
		}
		return nil
	}

	var errs []error
	for _, n := range notifier.Due(now, settings) {
		if err := sendNotification(n); err != nil {
			logger.Warn("Failed to send notification", "slot", n.Slot, "error", err)
			errs = append(errs, err)
			continue
		}
		logger.Debug("Notification sent", "slot", n.Slot, "quote", n.QuoteID)
	}
	return errors.Join(errs...)
}
