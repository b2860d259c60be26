// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"io"

	"github.com/MKhiriev/go-mempass/models"
)

const (
	// IVSize is the GCM nonce length (96 bits).
	IVSize = 12
	// TagSize is the GCM authentication tag length (128 bits).
	TagSize = 16
)

// aesGCMCipher is the private implementation of [FieldCipher].
type aesGCMCipher struct{}

// NewFieldCipher returns the AES-256-GCM [FieldCipher].
func NewFieldCipher() FieldCipher {
	return aesGCMCipher{}
}

// EncryptField implements [FieldCipher].
func (c aesGCMCipher) EncryptField(key *Key, text string) (models.EncryptedField, error) {
	return c.EncryptBytes(key, []byte(text))
}

// DecryptField implements [FieldCipher].
func (c aesGCMCipher) DecryptField(key *Key, field *models.EncryptedField) (string, error) {
	plaintext, err := c.DecryptBytes(key, field)
	if err != nil {
		return "", err
	}
	s := string(plaintext)
	WipeBytes(plaintext)
	return s, nil
}

// EncryptBytes implements [FieldCipher]. The GCM output is split into
// ciphertext and tag so the stored record keeps the three-part shape.
func (aesGCMCipher) EncryptBytes(key *Key, data []byte) (models.EncryptedField, error) {
	var field models.EncryptedField

	err := key.Use(func(raw []byte) error {
		iv, sealed, err := seal(raw, data)
		if err != nil {
			return err
		}

		split := len(sealed) - TagSize
		field = models.EncryptedField{
			IV:  base64.StdEncoding.EncodeToString(iv),
			CT:  base64.StdEncoding.EncodeToString(sealed[:split]),
			Tag: base64.StdEncoding.EncodeToString(sealed[split:]),
		}
		return nil
	})
	if err != nil {
		return models.EncryptedField{}, err
	}

	return field, nil
}

// DecryptBytes implements [FieldCipher].
func (aesGCMCipher) DecryptBytes(key *Key, field *models.EncryptedField) ([]byte, error) {
	if !field.Complete() {
		return nil, fmt.Errorf("%w: missing iv or tag", ErrMalformedField)
	}

	iv, err := decodePart("iv", field.IV, IVSize)
	if err != nil {
		return nil, err
	}
	tag, err := decodePart("tag", field.Tag, TagSize)
	if err != nil {
		return nil, err
	}
	ct, err := decodePart("ct", field.CT, -1)
	if err != nil {
		return nil, err
	}

	var plaintext []byte
	err = key.Use(func(raw []byte) error {
		plaintext, err = open(raw, iv, append(ct, tag...))
		return err
	})
	if err != nil {
		return nil, err
	}

	return plaintext, nil
}

func decodePart(name, value string, wantLen int) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(value)
	if err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", ErrMalformedField, name, err)
	}
	if wantLen >= 0 && len(b) != wantLen {
		return nil, fmt.Errorf("%w: %s is %d bytes, want %d", ErrMalformedField, name, len(b), wantLen)
	}
	return b, nil
}

// seal encrypts plaintext under a fresh random IV and returns the IV and the
// GCM output (ciphertext ‖ tag).
func seal(rawKey, plaintext []byte) (iv, sealed []byte, err error) {
	gcm, err := newGCM(rawKey)
	if err != nil {
		return nil, nil, err
	}

	iv = make([]byte, IVSize)
	if _, err = io.ReadFull(rand.Reader, iv); err != nil {
		return nil, nil, fmt.Errorf("generate iv: %w", err)
	}

	return iv, gcm.Seal(nil, iv, plaintext, nil), nil
}

// open authenticates and decrypts ciphertext ‖ tag.
func open(rawKey, iv, sealed []byte) ([]byte, error) {
	gcm, err := newGCM(rawKey)
	if err != nil {
		return nil, err
	}
	if len(iv) != IVSize || len(sealed) < TagSize {
		return nil, fmt.Errorf("%w: sealed data too short", ErrMalformedField)
	}

	plaintext, err := gcm.Open(nil, iv, sealed, nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

func newGCM(rawKey []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(rawKey)
	if err != nil {
		return nil, fmt.Errorf("create cipher: %w", err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("create gcm: %w", err)
	}
	return gcm, nil
}
