// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"context"
	"crypto/rand"
	"fmt"
	"io"

	"golang.org/x/crypto/argon2"

	"github.com/MKhiriev/go-mempass/models"
)

// SaltSize is the length of every random salt, in bytes.
const SaltSize = 16

// Argon2Params tunes the PIN key derivation.
type Argon2Params struct {
	Time      uint32
	MemoryKiB uint32
	Threads   uint8
	KeyLen    uint32
}

// DefaultArgon2Params are the production parameters:
//   - time cost:   4 iterations
//   - memory cost: 64 MiB
//   - parallelism: 4 threads
//   - key length:  32 bytes (AES-256)
//
// A 6-digit PIN carries about 20 bits of entropy, so the memory cost is what
// makes an offline search over all PINs expensive.
func DefaultArgon2Params() Argon2Params {
	return Argon2Params{
		Time:      4,
		MemoryKiB: 64 * 1024,
		Threads:   4,
		KeyLen:    32,
	}
}

// argon2Deriver is the private implementation of [KeyDeriver].
type argon2Deriver struct {
	params Argon2Params
}

// NewArgon2Deriver returns a [KeyDeriver] running Argon2id with params.
// Parameter floors are enforced by configuration validation, not here.
func NewArgon2Deriver(params Argon2Params) KeyDeriver {
	return &argon2Deriver{params: params}
}

// DeriveKey implements [KeyDeriver].
func (d *argon2Deriver) DeriveKey(ctx context.Context, pin string, salt []byte) (*Key, error) {
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSalt, len(salt), SaltSize)
	}

	done := make(chan *Key, 1)
	go func() {
		pinBytes := []byte(pin)
		raw := argon2.IDKey(pinBytes, salt, d.params.Time, d.params.MemoryKiB, d.params.Threads, d.params.KeyLen)
		WipeBytes(pinBytes)
		done <- NewKey(raw)
	}()

	select {
	case <-ctx.Done():
		// the goroutine finishes on its own; its key is dropped unused
		return nil, ctx.Err()
	case key := <-done:
		return key, nil
	}
}

// Version implements [KeyDeriver].
func (d *argon2Deriver) Version() string {
	return models.KDFArgon2idV1
}

// CheckKDFVersion rejects settings written by an unknown KDF.
func CheckKDFVersion(version string) error {
	if version != models.KDFArgon2idV1 {
		return fmt.Errorf("%w: %q", ErrUnsupportedKDF, version)
	}
	return nil
}

// GenerateSalt reads [SaltSize] random bytes from the OS CSPRNG.
func GenerateSalt() ([]byte, error) {
	salt := make([]byte, SaltSize)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, fmt.Errorf("generate salt: %w", err)
	}
	return salt, nil
}
