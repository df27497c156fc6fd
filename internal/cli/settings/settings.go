package settings

import (
	"fmt"

	"github.com/heainKang/daily-me-app/internal/cli"
	"github.com/heainKang/daily-me-app/internal/models"
	"github.com/heainKang/daily-me-app/internal/utils"
)

type SettingsCmd struct {
	List bool `help:"List current settings."`

	Timezone             *string `help:"IANA timezone used to decide what 'today' is (or 'Local')."`
	NotificationsEnabled *bool   `help:"Enable or disable the daily quote notifications."`
	MorningHour          *int    `help:"Hour (0-23) of the morning notification."`
	AfternoonHour        *int    `help:"Hour (0-23) of the afternoon notification."`
	EveningHour          *int    `help:"Hour (0-23) of the evening notification."`
}

func (c *SettingsCmd) Run(ctx *cli.Context) error {
	settings, err := ctx.Store.GetSettings()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	if c.List {
		ctx.Println("Current Settings:")
		ctx.Printf("  Timezone:              %s\n", settings.Timezone)
		ctx.Println("\nNotification Settings:")
		ctx.Printf("  Notifications Enabled: %v\n", settings.NotificationsEnabled)
		ctx.Printf("  Morning:               %02d:00\n", settings.MorningNotifyHour)
		ctx.Printf("  Afternoon:             %02d:00\n", settings.AfternoonNotifyHour)
		ctx.Printf("  Evening:               %02d:00\n", settings.EveningNotifyHour)
		return nil
	}

	updated := false
	if c.Timezone != nil {
		if !utils.ValidateTimezone(*c.Timezone) {
			return fmt.Errorf("invalid timezone: %s", *c.Timezone)
		}
		settings.Timezone = *c.Timezone
		updated = true
	}
	if c.NotificationsEnabled != nil {
		settings.NotificationsEnabled = *c.NotificationsEnabled
		updated = true
	}
	for _, h := range []struct {
		flag *int
		dst  *int
	}{
		{c.MorningHour, &settings.MorningNotifyHour},
		{c.AfternoonHour, &settings.AfternoonNotifyHour},
		{c.EveningHour, &settings.EveningNotifyHour},
	} {
		if h.flag == nil {
			continue
		}
		if err := models.ValidateNotifyHour(*h.flag); err != nil {
			return err
		}
		*h.dst = *h.flag
		updated = true
	}

	if !updated {
		ctx.Println("No changes specified. Use --list to view settings or flags to update them.")
		return nil
	}
	if err := ctx.Store.SaveSettings(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	ctx.Println("Settings updated successfully.")
	return nil
}
