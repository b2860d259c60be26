package crypto

import (
	"errors"
	"fmt"
)

// ErrCrypto is the root of every failure to open sealed data. Callers that
// only care whether a value could be decrypted match against it with
// [errors.Is].
var ErrCrypto = errors.New("crypto error")

var (
	// ErrDecryptionFailed is returned when GCM authentication fails: the key
	// is wrong or the IV, ciphertext or tag was altered.
	ErrDecryptionFailed = fmt.Errorf("%w: decryption failed", ErrCrypto)

	// ErrMalformedField is returned when a sealed value is structurally
	// invalid (missing part, bad base64, wrong IV or tag size).
	ErrMalformedField = fmt.Errorf("%w: malformed encrypted field", ErrCrypto)
)

var (
	// ErrKeyDestroyed is returned when a [Key] is used after Destroy.
	ErrKeyDestroyed = errors.New("key has been destroyed")

	// ErrUnsupportedKDF is returned for a KDF version string this build does
	// not know how to derive.
	ErrUnsupportedKDF = errors.New("unsupported key derivation version")

	// ErrInvalidSalt is returned when a salt has the wrong length.
	ErrInvalidSalt = errors.New("invalid salt")
)
