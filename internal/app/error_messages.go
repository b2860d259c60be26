// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the user-facing wording shared by the mempass command
// line and the terminal UI.
//
// All Msg* constants are short human-readable strings shown in place of the
// wrapped error chain. [UserMessage] picks the right one for an error.
package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-mempass/internal/crypto"
	"github.com/MKhiriev/go-mempass/internal/service"
	"github.com/MKhiriev/go-mempass/internal/session"
	"github.com/MKhiriev/go-mempass/internal/store"
)

const (
	// MsgInvalidPinFormat is shown when a PIN is not all digits or has the
	// wrong length.
	MsgInvalidPinFormat = "PIN must be digits only, of the configured length"

	// MsgWrongPin is shown when the PIN does not open the vault.
	MsgWrongPin = "wrong PIN"

	// MsgLockedOut is shown while the brute-force cooldown is active.
	MsgLockedOut = "too many failed attempts"

	// MsgNoPinSet is shown when unlocking a vault that was never set up.
	MsgNoPinSet = "no PIN has been set yet"

	// MsgVaultLocked is shown when an operation needs an unlocked vault.
	MsgVaultLocked = "vault is locked, enter your PIN"

	// MsgUnlockInProgress is shown when a second unlock races the first.
	MsgUnlockInProgress = "unlock already in progress"

	MsgEntryNotFound      = "entry not found"
	MsgAttachmentNotFound = "attachment not found"
	MsgInvalidEntry       = "service and password are required"
	MsgInvalidAttachment  = "attachment rejected"
	MsgInvalidSortOrder   = "unknown sort order"

	// MsgUnreadableData is shown when stored data fails authentication.
	MsgUnreadableData = "data could not be decrypted, it may be corrupted"

	// MsgWrongExportPassword is shown when an export file does not open.
	MsgWrongExportPassword = "wrong password or corrupted export file"

	// MsgExportFormat is shown for a file that is not a mempass export.
	MsgExportFormat = "not a valid mempass export"

	MsgExportPasswordTooShort = "export password is too short"

	// MsgVaultInUse is shown when another mempass process holds the vault.
	MsgVaultInUse = "vault is open in another mempass process"

	MsgCancelled = "cancelled"

	// MsgInternalError is shown for anything not listed above.
	MsgInternalError = "something went wrong, see the log for details"
)

// UserMessage maps err to the text shown to the user. It returns "" for a
// nil error.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var lockout *service.LockoutError
	if errors.As(err, &lockout) {
		return fmt.Sprintf("%s, try again in %s", MsgLockedOut, lockout.Remaining.Round(time.Second))
	}
	var wrong *service.WrongPinError
	if errors.As(err, &wrong) {
		return fmt.Sprintf("%s, %d attempts left", MsgWrongPin, wrong.AttemptsLeft)
	}

	switch {
	case errors.Is(err, service.ErrInvalidPinFormat):
		return MsgInvalidPinFormat
	case errors.Is(err, service.ErrWrongPin):
		return MsgWrongPin
	case errors.Is(err, service.ErrNoPinSet):
		return MsgNoPinSet
	case errors.Is(err, session.ErrVaultLocked):
		return MsgVaultLocked
	case errors.Is(err, session.ErrUnlockInProgress):
		return MsgUnlockInProgress
	case errors.Is(err, service.ErrEntryNotFound), errors.Is(err, store.ErrEntryNotFound):
		return MsgEntryNotFound
	case errors.Is(err, service.ErrAttachmentNotFound), errors.Is(err, store.ErrAttachmentNotFound):
		return MsgAttachmentNotFound
	case errors.Is(err, service.ErrInvalidEntry):
		return MsgInvalidEntry
	case errors.Is(err, service.ErrInvalidAttachment):
		return MsgInvalidAttachment
	case errors.Is(err, service.ErrInvalidSortOrder):
		return MsgInvalidSortOrder
	case errors.Is(err, service.ErrWrongExportPassword):
		return MsgWrongExportPassword
	case errors.Is(err, service.ErrExportFormat):
		return MsgExportFormat
	case errors.Is(err, service.ErrExportPasswordTooShort):
		return MsgExportPasswordTooShort
	case errors.Is(err, crypto.ErrCrypto):
		return MsgUnreadableData
	case errors.Is(err, store.ErrVaultInUse):
		return MsgVaultInUse
	case errors.Is(err, context.Canceled), errors.Is(err, session.ErrUnlockAborted):
		return MsgCancelled
	case errors.Is(err, service.ErrInvalidGenerateRequest):
		return err.Error()
	}
	return MsgInternalError
}
