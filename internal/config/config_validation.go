// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
)

// Hard limits enforced regardless of configuration.
const (
	MinExportIterations        = 100_000
	MinExportPasswordLength    = 8
	MinGeneratorLength         = 4
	MaxGeneratorLength         = 1024
	minPinLength, maxPinLength = 4, 12
)

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup. Every violated group
// is reported; the groups are joined with errors.Join.
func (cfg *StructuredConfig) validate() error {
	var errs []error

	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(cfg.App.LogLevel); err != nil {
			errs = append(errs, fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel))
		}
	}

	if cfg.Storage.DSN == "" {
		errs = append(errs, fmt.Errorf("%w: empty dsn", ErrInvalidStorageConfigs))
	}

	v := cfg.Vault
	switch {
	case v.PinLength < minPinLength || v.PinLength > maxPinLength:
		errs = append(errs, fmt.Errorf("%w: pin length %d", ErrInvalidVaultConfigs, v.PinLength))
	case v.MaxAttempts < 1:
		errs = append(errs, fmt.Errorf("%w: max attempts %d", ErrInvalidVaultConfigs, v.MaxAttempts))
	case v.LockoutDuration <= 0:
		errs = append(errs, fmt.Errorf("%w: lockout duration %s", ErrInvalidVaultConfigs, v.LockoutDuration))
	case v.AutoLock > 0 && v.AutoLockWarning >= v.AutoLock:
		errs = append(errs, fmt.Errorf("%w: auto-lock warning %s not before auto-lock %s", ErrInvalidVaultConfigs, v.AutoLockWarning, v.AutoLock))
	case v.Argon2Time == 0 || v.Argon2MemoryKiB == 0 || v.Argon2Threads == 0:
		errs = append(errs, fmt.Errorf("%w: argon2 parameters must be positive", ErrInvalidVaultConfigs))
	case v.ExportIterations < MinExportIterations:
		errs = append(errs, fmt.Errorf("%w: export iterations %d below %d", ErrInvalidVaultConfigs, v.ExportIterations, MinExportIterations))
	case v.ExportMinPasswordLength < MinExportPasswordLength:
		errs = append(errs, fmt.Errorf("%w: export password length %d below %d", ErrInvalidVaultConfigs, v.ExportMinPasswordLength, MinExportPasswordLength))
	}

	g := cfg.Generator
	if g.MinLength < MinGeneratorLength || g.MaxLength > MaxGeneratorLength ||
		g.MinLength > g.MaxLength || g.DefaultLength < g.MinLength || g.DefaultLength > g.MaxLength {
		errs = append(errs, fmt.Errorf("%w: lengths min=%d default=%d max=%d",
			ErrInvalidGeneratorConfigs, g.MinLength, g.DefaultLength, g.MaxLength))
	}

	return errors.Join(errs...)
}
