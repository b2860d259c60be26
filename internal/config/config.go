// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "MEMPASS_"

// StructuredConfig is the top-level configuration container for mempass. It
// aggregates all sub-configurations and is populated by merging values from
// command-line flags, environment variables, an optional JSON file and the
// built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-level settings such as logging.
	App App `envPrefix:"APP_"`

	// Storage holds the locations of the vault database, the attachment
	// store and the process lock file.
	Storage Storage `envPrefix:"STORAGE_"`

	// Vault holds the PIN, lockout, session timer and key derivation
	// settings.
	Vault Vault `envPrefix:"VAULT_"`

	// Generator holds the deterministic password generator limits.
	Generator Generator `envPrefix:"GENERATOR_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Env: MEMPASS_CONFIG, flags: -c / -config.
	JSONFilePath string `env:"CONFIG"`

	// EnvFilePath is an optional dotenv file loaded before the environment
	// is read. Variables already set in the environment win.
	// Env: MEMPASS_ENV_FILE, flag: -env-file.
	EnvFilePath string `env:"ENV_FILE"`
}

// App holds process-level settings.
type App struct {
	// LogFile is where the interactive front-end writes its JSON log.
	// Env: MEMPASS_APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`

	// LogLevel is the minimum zerolog level ("debug", "info", ...).
	// Env: MEMPASS_APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`
}

// Storage holds persistence locations.
type Storage struct {
	// DSN selects the vault backend: ":memory:" keeps everything in
	// memory, a path ending in ".json" uses a JSON file and anything else is
	// opened as a SQLite database.
	// Env: MEMPASS_STORAGE_DSN
	DSN string `env:"DSN"`

	// AttachmentsPath is the bbolt file that holds encrypted attachments.
	// Empty keeps attachments in memory.
	// Env: MEMPASS_STORAGE_ATTACHMENTS_PATH
	AttachmentsPath string `env:"ATTACHMENTS_PATH"`

	// LockFile guards the vault against a second process. Empty derives it
	// from DSN.
	// Env: MEMPASS_STORAGE_LOCK_FILE
	LockFile string `env:"LOCK_FILE"`
}

// Vault holds security parameters of the local vault.
type Vault struct {
	// PinLength is the exact number of digits a PIN must have.
	PinLength int `env:"PIN_LENGTH"`

	// MaxAttempts is the number of consecutive wrong PINs that triggers a
	// cooldown.
	MaxAttempts int `env:"MAX_ATTEMPTS"`

	// LockoutDuration is how long the cooldown lasts.
	LockoutDuration time.Duration `env:"LOCKOUT_DURATION"`

	// AutoLock is the absolute lifetime of an unlocked session. A negative
	// value disables the timer.
	AutoLock time.Duration `env:"AUTO_LOCK"`

	// AutoLockWarning is when, after unlock, the auto-lock warning fires.
	AutoLockWarning time.Duration `env:"AUTO_LOCK_WARNING"`

	// Inactivity locks the session after this long without activity. A
	// negative value disables the timer.
	Inactivity time.Duration `env:"INACTIVITY"`

	// BackupReminder is the export age after which a backup is suggested.
	BackupReminder time.Duration `env:"BACKUP_REMINDER"`

	// Argon2Time, Argon2MemoryKiB and Argon2Threads tune the PIN KDF.
	Argon2Time      uint32 `env:"ARGON2_TIME"`
	Argon2MemoryKiB uint32 `env:"ARGON2_MEMORY_KIB"`
	Argon2Threads   uint8  `env:"ARGON2_THREADS"`

	// ExportIterations is the PBKDF2 iteration count for new exports.
	ExportIterations int `env:"EXPORT_ITERATIONS"`

	// ExportMinPasswordLength is the shortest accepted export password.
	ExportMinPasswordLength int `env:"EXPORT_MIN_PASSWORD_LENGTH"`
}

// Generator holds password length limits.
type Generator struct {
	DefaultLength int `env:"DEFAULT_LENGTH"`
	MinLength     int `env:"MIN_LENGTH"`
	MaxLength     int `env:"MAX_LENGTH"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first source wins for non-zero fields):
//  1. Command-line flags parsed from args
//  2. Environment variables (after loading the optional dotenv file)
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
//
// The arguments left after the global flags (the subcommand and its own
// flags) are returned alongside the config.
func GetStructuredConfig(args []string) (*StructuredConfig, []string, error) {
	b := newConfigBuilder().
		withFlags(args).
		withEnv().
		withJSON().
		withDefaults()

	cfg, err := b.build()
	return cfg, b.rest, err
}
