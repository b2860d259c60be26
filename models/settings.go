package models

import "time"

// KDFArgon2idV1 names the only key derivation scheme the vault writes.
const KDFArgon2idV1 = "argon2id-v1"

// VaultSettings is the per-vault key material metadata. It is created on the
// first PIN set, replaced on every PIN change and removed by a reset.
//
// Canary is a known plaintext encrypted under the session key; a candidate
// key that authenticates it is the right key.
type VaultSettings struct {
	SaltB64    string          `json:"saltB64"`
	KDFVersion string          `json:"kdfVersion"`
	Canary     *EncryptedField `json:"canary,omitempty"`
}

// HasPin reports whether a PIN has been set for the vault.
func (s *VaultSettings) HasPin() bool {
	return s != nil && s.SaltB64 != ""
}

// LockoutState is the persisted brute-force counter.
type LockoutState struct {
	FailedAttempts int        `json:"failedAttempts"`
	LockUntil      *time.Time `json:"lockUntil,omitempty"`
}
