// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"sync"

	"github.com/awnumar/memguard"
)

// Key is symmetric key material sealed in a memguard enclave. The plaintext
// bytes only exist inside [Key.Use] callbacks, in a locked buffer that is
// destroyed as soon as the callback returns.
type Key struct {
	mu      sync.RWMutex
	enclave *memguard.Enclave
}

// NewKey seals raw into an enclave. raw is wiped before NewKey returns.
func NewKey(raw []byte) *Key {
	return &Key{enclave: memguard.NewEnclave(raw)}
}

// Use opens the key and passes the plaintext bytes to fn. fn must not retain
// the slice.
func (k *Key) Use(fn func(raw []byte) error) error {
	if k == nil {
		return ErrKeyDestroyed
	}

	k.mu.RLock()
	defer k.mu.RUnlock()

	if k.enclave == nil {
		return ErrKeyDestroyed
	}

	buf, err := k.enclave.Open()
	if err != nil {
		return err
	}
	defer buf.Destroy()

	return fn(buf.Bytes())
}

// Destroy drops the enclave. Any later Use fails with [ErrKeyDestroyed].
func (k *Key) Destroy() {
	if k == nil {
		return
	}

	k.mu.Lock()
	k.enclave = nil
	k.mu.Unlock()
}

// Alive reports whether the key can still be used.
func (k *Key) Alive() bool {
	if k == nil {
		return false
	}

	k.mu.RLock()
	defer k.mu.RUnlock()
	return k.enclave != nil
}

// WipeBytes zeroes b in place.
func WipeBytes(b []byte) {
	memguard.WipeBytes(b)
}
