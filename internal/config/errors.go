package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when a
// configuration group is incomplete or out of range.
var (
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidVaultConfigs indicates invalid vault security settings
	// (for example, too few export iterations).
	ErrInvalidVaultConfigs = errors.New("invalid vault configuration")
	// ErrInvalidGeneratorConfigs indicates inconsistent generator lengths.
	ErrInvalidGeneratorConfigs = errors.New("invalid generator configuration")
)
