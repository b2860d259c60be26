// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidPinFormat is returned for a PIN that is not exactly the
	// configured number of ASCII digits. It never counts as a failed attempt.
	ErrInvalidPinFormat = errors.New("invalid pin format")

	// ErrWrongPin is returned when a well-formed PIN does not open the vault.
	ErrWrongPin = errors.New("wrong pin")

	// ErrLockedOut is matched by every *LockoutError.
	ErrLockedOut = errors.New("too many failed attempts")

	// ErrNoPinSet is returned by VerifyPin before the first SetPin.
	ErrNoPinSet = errors.New("no pin has been set")

	ErrEntryNotFound      = errors.New("entry not found")
	ErrInvalidEntry       = errors.New("invalid entry")
	ErrInvalidSortOrder   = errors.New("invalid sort order")
	ErrAttachmentNotFound = errors.New("attachment not found")
	ErrInvalidAttachment  = errors.New("invalid attachment")

	// ErrExportFormat is returned for a bundle that cannot be imported.
	ErrExportFormat = errors.New("invalid export format")

	// ErrWrongExportPassword is returned when a bundle does not decrypt under
	// the given password. It wraps ErrExportFormat because a corrupted bundle
	// and a wrong password are indistinguishable.
	ErrWrongExportPassword = fmt.Errorf("%w: wrong password or corrupted file", ErrExportFormat)

	ErrExportPasswordTooShort = errors.New("export password is too short")

	ErrInvalidGenerateRequest = errors.New("invalid generate request")
)

// LockoutError reports an active brute-force cooldown.
type LockoutError struct {
	Remaining time.Duration
}

func (e *LockoutError) Error() string {
	return fmt.Sprintf("%s: try again in %s", ErrLockedOut, e.Remaining.Round(time.Second))
}

// Is makes errors.Is(err, ErrLockedOut) hold for every *LockoutError.
func (e *LockoutError) Is(target error) bool {
	return target == ErrLockedOut
}

// WrongPinError reports a rejected PIN and how many attempts remain before
// the cooldown starts.
type WrongPinError struct {
	AttemptsLeft int
}

func (e *WrongPinError) Error() string {
	return fmt.Sprintf("%s: %d attempts left", ErrWrongPin, e.AttemptsLeft)
}

func (e *WrongPinError) Is(target error) bool {
	return target == ErrWrongPin
}
