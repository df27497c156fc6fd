package constants

const (
	// General Settings
	SettingTimezone             = "timezone"
	SettingNotificationsEnabled = "notifications_enabled"
	SettingMorningNotifyHour    = "morning_notify_hour"
	SettingAfternoonNotifyHour  = "afternoon_notify_hour"
	SettingEveningNotifyHour    = "evening_notify_hour"

	// Default Settings Values
	DefaultTimezone             = "Local" // Use system local timezone by default
	DefaultNotificationsEnabled = true
	DefaultMorningNotifyHour    = 9
	DefaultAfternoonNotifyHour  = 12
	DefaultEveningNotifyHour    = 18
)
