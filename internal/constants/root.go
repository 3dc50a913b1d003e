package constants

import "time"

const (
	AppName             = "petgarden"
	DefaultKeyringUser  = "storage-url"
	PasswordKeyringUser = "db-password"
	DefaultConfigPath   = "~/.config/petgarden/petgarden.db"
	Version             = "v0.1.0"

	// KeyringConfigValue selects the storage URL saved in the OS keyring.
	KeyringConfigValue = "keyring"

	// DisplayTimeFormat is how growth record times are shown (HH:MM)
	DisplayTimeFormat = "15:04"
	// ExportTimeFormat is the timestamp layout used in CSV exports
	ExportTimeFormat = "2006-01-02 15:04:05"

	// Backup constants
	MaxBackups       = 14
	BackupDirName    = "backups"
	BackupFilePrefix = "petgarden-"
	BackupFileSuffix = ".db"

	// Lock constants
	LockfileName = "petgarden.lock"

	// Activation
	ActivationFetchTimeout = 10 * time.Second

	// Display configuration defaults
	DefaultSystemName   = "Class Pet Garden"
	DefaultClassName    = "Grade 5 Class 3"
	DefaultSoundEnabled = true
)
