package crypto

import (
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

// MinExportIterations is the lowest PBKDF2 iteration count accepted for
// export keys.
const MinExportIterations = 100_000

// DeriveExportKey derives a backup key from a user password with
// PBKDF2-HMAC-SHA256. This key path is independent of the PIN key and favours
// interoperability over memory hardness.
func DeriveExportKey(password string, salt []byte, iterations int) (*Key, error) {
	if iterations < MinExportIterations {
		return nil, fmt.Errorf("pbkdf2 iterations %d below minimum %d", iterations, MinExportIterations)
	}
	if len(salt) != SaltSize {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", ErrInvalidSalt, len(salt), SaltSize)
	}

	pw := []byte(password)
	raw := pbkdf2.Key(pw, salt, iterations, 32, sha256.New)
	WipeBytes(pw)
	return NewKey(raw), nil
}

// SealBlob encrypts a whole document under key and returns the IV and
// ciphertext ‖ tag.
func SealBlob(key *Key, plaintext []byte) (iv, sealed []byte, err error) {
	err = key.Use(func(raw []byte) error {
		iv, sealed, err = seal(raw, plaintext)
		return err
	})
	return iv, sealed, err
}

// OpenBlob reverses [SealBlob].
func OpenBlob(key *Key, iv, sealed []byte) ([]byte, error) {
	var plaintext []byte
	err := key.Use(func(raw []byte) error {
		var err error
		plaintext, err = open(raw, iv, sealed)
		return err
	})
	return plaintext, err
}
