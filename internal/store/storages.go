// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-mempass/internal/config"
	"github.com/MKhiriev/go-mempass/internal/logger"
)

// Storages groups the storage backends of one vault into a single value that
// can be passed to the service layer.
type Storages struct {
	// Vault holds settings, entries, lockout state and the export record.
	Vault VaultStorage

	// Attachments holds encrypted files linked to entries.
	Attachments AttachmentStorage

	lock *FileLock
}

// NewStorages initialises the storage layer from cfg. It performs the
// following steps:
//  1. For file-backed vaults, takes the process lock file (cfg.LockFile, or
//     the DSN with a ".lock" suffix), failing with [ErrVaultInUse] if another
//     process has the vault open.
//  2. Opens the vault backend selected by the DSN: ":memory:" for an
//     in-memory vault, a ".json" path for a JSON file, anything else as a
//     SQLite database, which is migrated.
//  3. Opens the bbolt attachment store at cfg.AttachmentsPath, or keeps
//     attachments in memory when the path is empty.
//
// Everything opened so far is closed again if a later step fails.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (_ *Storages, err error) {
	log.Info().Str("func", "NewStorages").Msg("creating new storages...")

	s := &Storages{}
	defer func() {
		if err != nil {
			_ = s.Close()
		}
	}()

	if lockPath := lockFilePath(cfg); lockPath != "" {
		if s.lock, err = AcquireFileLock(lockPath); err != nil {
			return nil, err
		}
	}

	switch {
	case isMemoryDSN(cfg.DSN) || strings.HasSuffix(strings.ToLower(cfg.DSN), ".json"):
		s.Vault, err = NewMemoryStorage(cfg.DSN)
		if err != nil {
			return nil, fmt.Errorf("open vault file: %w", err)
		}
	default:
		db, connErr := NewConnectSQLite(ctx, cfg.DSN, log)
		if connErr != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", connErr)
		}
		if err = db.Migrate(); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		if s.Vault, err = NewSQLVaultStorage(db); err != nil {
			return nil, err
		}
	}

	if cfg.AttachmentsPath == "" {
		s.Attachments = NewMemoryAttachmentStorage()
	} else if s.Attachments, err = NewBoltAttachmentStorage(cfg.AttachmentsPath); err != nil {
		return nil, err
	}

	return s, nil
}

// Close closes every backend and releases the lock file.
func (s *Storages) Close() error {
	var errs []error
	if s.Attachments != nil {
		errs = append(errs, s.Attachments.Close())
	}
	if s.Vault != nil {
		errs = append(errs, s.Vault.Close())
	}
	errs = append(errs, s.lock.Release())
	return errors.Join(errs...)
}

func isMemoryDSN(dsn string) bool {
	return dsn == "" || dsn == MemoryDSN || dsn == "memory"
}

func lockFilePath(cfg config.Storage) string {
	if cfg.LockFile != "" {
		return cfg.LockFile
	}
	if isMemoryDSN(cfg.DSN) {
		return ""
	}
	return cfg.DSN + ".lock"
}
