package constants

import "time"

const (
	AppName            = "dailyme"
	DefaultKeyringUser = "database-connection"
	DefaultConfigPath  = "~/.config/dailyme/dailyme.db"
	Version            = "v0.3.0"

	// DateFormat is the standard date format used throughout the application (YYYY-MM-DD)
	DateFormat = "2006-01-02"

	// TimeFormat is the standard time format used throughout the application (HH:MM)
	TimeFormat = "15:04"

	// DBConnectionEnv holds a PostgreSQL connection string when neither --config nor the keyring provide one
	DBConnectionEnv = "DAILYME_DB_CONNECTION"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "dailyme-"
	BackupFileSuffix = ".db"

	// Notify constants
	NotifierLockfileName   = "dailyme-notifier.lock"
	NotificationDurationMs = 6000
	TrayAppIdentifier      = "com.heainkang.dailyme"
	TrayExecutablePrefix   = "dailyme-tray"
	NotifyRequestTimeout   = 5 * time.Second

	// Journal constants
	MaxNoteLength      = 500 // runes
	DefaultHistoryDays = 7
	EmotionItemPrefix  = "emotion_"

	// Personality used when no baseline has been established
	DefaultPersonality = "ENFP"

	// PersonalityUnset marks a profile whose owner skipped onboarding
	PersonalityUnset = "UNSET"

	// HTTP server defaults
	DefaultServeAddr = "127.0.0.1:8787"
)
