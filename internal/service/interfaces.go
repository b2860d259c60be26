// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-mempass/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// GeneratorService derives deterministic per-service passwords. It keeps no
// state: the same request always yields the same password.
type GeneratorService interface {
	// Generate validates req and derives the password. The derivation runs on
	// its own goroutine; Generate returns ctx.Err() if ctx ends first.
	Generate(ctx context.Context, req models.GenerateRequest) (string, error)

	// EstimateStrength scores a password. The score is advisory only.
	EstimateStrength(password string) models.Strength
}

// VaultService is the PIN-protected vault: key lifecycle, lockout and the
// decrypted working set of entries.
//
// Every entry operation requires an unlocked vault and fails with
// session.ErrVaultLocked otherwise.
type VaultService interface {
	// HasPin reports whether SetPin has ever succeeded for this vault.
	HasPin(ctx context.Context) (bool, error)

	// SetPin creates or changes the PIN. Changing it requires an unlocked
	// vault; every readable field is re-encrypted under the new key. On
	// success the vault is unlocked.
	SetPin(ctx context.Context, pin string) error

	// VerifyPin tries pin against the stored canary. On success the vault is
	// unlocked and its entries decrypted. A wrong PIN counts towards the
	// lockout; a malformed one does not.
	VerifyPin(ctx context.Context, pin string) (bool, error)

	// Lock discards the key and the decrypted entries. It returns false when
	// the lock was deferred behind an in-flight operation.
	Lock() bool

	// IsUnlocked reports whether the vault currently holds a key.
	IsUnlocked() bool

	// ResetPin destroys the vault: settings, entries, attachments and the
	// lockout state. It does not require the PIN. The session is locked
	// first, waiting for in-flight operations; if ctx ends before that,
	// nothing is wiped.
	ResetPin(ctx context.Context) error

	AddEntry(ctx context.Context, in models.NewEntry) (models.PlainEntry, error)
	UpdateEntry(ctx context.Context, id models.EntryID, upd models.EntryUpdate) (models.PlainEntry, error)
	DeleteEntry(ctx context.Context, id models.EntryID) error

	// GetEntry returns one entry and records the access.
	GetEntry(ctx context.Context, id models.EntryID) (models.PlainEntry, error)

	// ListEntries returns every entry, oldest first.
	ListEntries(ctx context.Context) ([]models.PlainEntry, error)

	Search(ctx context.Context, query string) ([]models.PlainEntry, error)
	Sort(ctx context.Context, order models.SortOrder) ([]models.PlainEntry, error)
	Suggestions(ctx context.Context, query string, limit int) ([]models.PlainEntry, error)
	Stats(ctx context.Context) (models.VaultStats, error)

	// NeedsBackup reports whether the vault was never exported or the last
	// export is older than the backup reminder interval.
	NeedsBackup(ctx context.Context) (bool, error)

	// Export seals every readable entry into a password-protected bundle.
	Export(ctx context.Context, password string) (*models.ExportBundle, error)

	// Import replaces every entry with the bundle's contents, re-encrypted
	// under the current key, and returns how many entries were imported.
	Import(ctx context.Context, bundle models.ExportBundle, password string) (int, error)
}

// AttachmentService seals files under the vault key and links them to
// entries.
type AttachmentService interface {
	Attach(ctx context.Context, entryID models.EntryID, name string, data []byte) (models.Attachment, error)
	Open(ctx context.Context, id string) ([]byte, error)
	List(ctx context.Context, entryID models.EntryID) ([]models.Attachment, error)
	Remove(ctx context.Context, id string) error
}
