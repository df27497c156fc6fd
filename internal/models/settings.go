package models

// Settings represents application-wide settings
type Settings struct {
	Timezone             string `json:"timezone"`              // IANA timezone name (e.g. "Asia/Seoul", or "Local" for system timezone)
	NotificationsEnabled bool   `json:"notifications_enabled"` // whether quote notifications are sent
	MorningNotifyHour    int    `json:"morning_notify_hour"`   // hour of the morning quote notification
	AfternoonNotifyHour  int    `json:"afternoon_notify_hour"` // hour of the afternoon quote notification
	EveningNotifyHour    int    `json:"evening_notify_hour"`   // hour of the evening quote notification
}

// NotifyHour returns the configured notification hour for a slot.
func (s Settings) NotifyHour(slot TimeSlot) int {
	switch slot {
	case SlotMorning:
		return s.MorningNotifyHour
	case SlotAfternoon:
		return s.AfternoonNotifyHour
	default:
		return s.EveningNotifyHour
	}
}
