// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-mempass/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SettingsRepository persists the per-vault key material metadata.
type SettingsRepository interface {
	// GetSettings returns nil, nil when no PIN was ever set.
	GetSettings(ctx context.Context) (*models.VaultSettings, error)
	SaveSettings(ctx context.Context, settings models.VaultSettings) error
}

// EntryRepository persists encrypted vault entries. Identifiers are compared
// after [models.NormalizeEntryID].
type EntryRepository interface {
	// ListEntries returns every entry ordered by creation time.
	ListEntries(ctx context.Context) ([]models.VaultEntry, error)
	GetEntry(ctx context.Context, id models.EntryID) (models.VaultEntry, error)
	// SaveEntry inserts the entry or replaces the stored one with the same ID.
	SaveEntry(ctx context.Context, entry models.VaultEntry) error
	DeleteEntry(ctx context.Context, id models.EntryID) error
}

// LockoutRepository persists the brute-force counter.
type LockoutRepository interface {
	GetLockout(ctx context.Context) (models.LockoutState, error)
	SaveLockout(ctx context.Context, state models.LockoutState) error
}

// ExportLog remembers when the vault was last exported.
type ExportLog interface {
	// LastExport returns nil when the vault was never exported.
	LastExport(ctx context.Context) (*time.Time, error)
	RecordExport(ctx context.Context, at time.Time) error
}

// VaultStorage is the full persistence capability a vault needs.
type VaultStorage interface {
	SettingsRepository
	EntryRepository
	LockoutRepository
	ExportLog

	// ReplaceVault atomically replaces every entry with entries and, when
	// settings is non-nil, the settings too. Either all of it is stored or
	// none of it.
	ReplaceVault(ctx context.Context, settings *models.VaultSettings, entries []models.VaultEntry) error

	// Wipe removes settings, entries, lockout state and the export record.
	Wipe(ctx context.Context) error

	Close() error
}

// AttachmentStorage persists encrypted file attachments.
type AttachmentStorage interface {
	PutAttachment(ctx context.Context, att models.Attachment) error
	GetAttachment(ctx context.Context, id string) (models.Attachment, error)
	// ListAttachments returns the attachments of one entry ordered by
	// creation time.
	ListAttachments(ctx context.Context, entryID models.EntryID) ([]models.Attachment, error)
	DeleteAttachment(ctx context.Context, id string) error
	DeleteEntryAttachments(ctx context.Context, entryID models.EntryID) error
	Wipe(ctx context.Context) error
	Close() error
}
