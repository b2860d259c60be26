package config

import (
	"os"
	"path/filepath"
	"time"
)

// Default values used when no source sets a field.
const (
	DefaultPinLength               = 6
	DefaultMaxAttempts             = 5
	DefaultLockoutDuration         = 10 * time.Minute
	DefaultAutoLock                = 5 * time.Minute
	DefaultAutoLockWarning         = 4 * time.Minute
	DefaultInactivity              = 90 * time.Second
	DefaultBackupReminder          = 30 * 24 * time.Hour
	DefaultArgon2Time              = 4
	DefaultArgon2MemoryKiB         = 64 * 1024
	DefaultArgon2Threads           = 4
	DefaultExportIterations        = 100_000
	DefaultExportMinPasswordLength = 8
	DefaultGeneratorLength         = 16
	DefaultGeneratorMinLength      = 8
	DefaultGeneratorMaxLength      = 128
	DefaultLogLevel                = "info"
)

// Defaults returns the configuration used when nothing else is set. Files
// live under the user's configuration directory.
func Defaults() *StructuredConfig {
	dir := dataDir()

	return &StructuredConfig{
		App: App{
			LogFile:  filepath.Join(dir, "mempass.log"),
			LogLevel: DefaultLogLevel,
		},
		Storage: Storage{
			DSN:             filepath.Join(dir, "vault.db"),
			AttachmentsPath: filepath.Join(dir, "attachments.bolt"),
		},
		Vault: Vault{
			PinLength:               DefaultPinLength,
			MaxAttempts:             DefaultMaxAttempts,
			LockoutDuration:         DefaultLockoutDuration,
			AutoLock:                DefaultAutoLock,
			AutoLockWarning:         DefaultAutoLockWarning,
			Inactivity:              DefaultInactivity,
			BackupReminder:          DefaultBackupReminder,
			Argon2Time:              DefaultArgon2Time,
			Argon2MemoryKiB:         DefaultArgon2MemoryKiB,
			Argon2Threads:           DefaultArgon2Threads,
			ExportIterations:        DefaultExportIterations,
			ExportMinPasswordLength: DefaultExportMinPasswordLength,
		},
		Generator: Generator{
			DefaultLength: DefaultGeneratorLength,
			MinLength:     DefaultGeneratorMinLength,
			MaxLength:     DefaultGeneratorMaxLength,
		},
	}
}

func dataDir() string {
	base, err := os.UserConfigDir()
	if err != nil || base == "" {
		return ".mempass"
	}
	return filepath.Join(base, "mempass")
}

// Enabled converts a configured timer duration into the session form, where
// zero means disabled.
func Enabled(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}
