package crypto

import (
	"context"

	"github.com/MKhiriev/go-mempass/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// KeyDeriver stretches a PIN and salt into a vault session key.
type KeyDeriver interface {
	// DeriveKey runs the memory-hard KDF. It is a suspension point: the
	// derivation runs on its own goroutine and DeriveKey returns ctx.Err() if
	// ctx is cancelled first.
	DeriveKey(ctx context.Context, pin string, salt []byte) (*Key, error)

	// Version is the KDF version string persisted alongside the salt.
	Version() string
}

// FieldCipher seals individual vault fields under a session key.
type FieldCipher interface {
	// EncryptField encrypts text under a fresh random IV.
	EncryptField(key *Key, text string) (models.EncryptedField, error)

	// DecryptField authenticates and decrypts field. It never returns
	// partial plaintext: any failure yields an error wrapping [ErrCrypto].
	DecryptField(key *Key, field *models.EncryptedField) (string, error)

	// EncryptBytes is EncryptField for binary payloads.
	EncryptBytes(key *Key, data []byte) (models.EncryptedField, error)

	// DecryptBytes is DecryptField for binary payloads.
	DecryptBytes(key *Key, field *models.EncryptedField) ([]byte, error)
}
