package models

import (
	"fmt"

	"github.com/heainKang/daily-me-app/internal/constants"
)

// DefaultSettings returns the settings written on first init.
func DefaultSettings() Settings {
	return Settings{
		Timezone:             constants.DefaultTimezone,
		NotificationsEnabled: constants.DefaultNotificationsEnabled,
		MorningNotifyHour:    constants.DefaultMorningNotifyHour,
		AfternoonNotifyHour:  constants.DefaultAfternoonNotifyHour,
		EveningNotifyHour:    constants.DefaultEveningNotifyHour,
	}
}

// MapToSettings converts a map of key-value pairs to a Settings struct.
func MapToSettings(data map[string]string) (Settings, error) {
	settings := Settings{}

	for key, value := range data {
		switch key {
		case constants.SettingTimezone:
			settings.Timezone = value
		case constants.SettingNotificationsEnabled:
			settings.NotificationsEnabled = value == "true"
		case constants.SettingMorningNotifyHour:
			if _, err := fmt.Sscanf(value, "%d", &settings.MorningNotifyHour); err != nil {
				return Settings{}, fmt.Errorf("parsing morning_notify_hour: %w", err)
			}
		case constants.SettingAfternoonNotifyHour:
			if _, err := fmt.Sscanf(value, "%d", &settings.AfternoonNotifyHour); err != nil {
				return Settings{}, fmt.Errorf("parsing afternoon_notify_hour: %w", err)
			}
		case constants.SettingEveningNotifyHour:
			if _, err := fmt.Sscanf(value, "%d", &settings.EveningNotifyHour); err != nil {
				return Settings{}, fmt.Errorf("parsing evening_notify_hour: %w", err)
			}
		}
	}
	return settings, nil
}

// SettingsToMap converts a Settings struct to a map of key-value pairs.
func SettingsToMap(settings Settings) map[string]string {
	return map[string]string{
		constants.SettingTimezone:             settings.Timezone,
		constants.SettingNotificationsEnabled: fmt.Sprintf("%v", settings.NotificationsEnabled),
		constants.SettingMorningNotifyHour:    fmt.Sprintf("%d", settings.MorningNotifyHour),
		constants.SettingAfternoonNotifyHour:  fmt.Sprintf("%d", settings.AfternoonNotifyHour),
		constants.SettingEveningNotifyHour:    fmt.Sprintf("%d", settings.EveningNotifyHour),
	}
}

// ApplyDefaultSettings applies default values to missing settings.
func ApplyDefaultSettings(settings *Settings) {
	if settings.Timezone == "" {
		settings.Timezone = constants.DefaultTimezone
	}
	if settings.MorningNotifyHour == 0 {
		settings.MorningNotifyHour = constants.DefaultMorningNotifyHour
	}
	if settings.AfternoonNotifyHour == 0 {
		settings.AfternoonNotifyHour = constants.DefaultAfternoonNotifyHour
	}
	if settings.EveningNotifyHour == 0 {
		settings.EveningNotifyHour = constants.DefaultEveningNotifyHour
	}
}

// ValidateNotifyHour checks an hour-of-day value.
func ValidateNotifyHour(hour int) error {
	if hour < 0 || hour > 23 {
		return fmt.Errorf("notification hour must be between 0 and 23, got %d", hour)
	}
	return nil
}
