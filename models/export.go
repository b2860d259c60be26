package models

import (
	"encoding/json"
	"time"
)

// Export format versions.
const (
	ExportVersionCurrent = "2.2"
	ExportVersion21      = "2.1"
	ExportVersion20      = "2.0"
)

// ExportBundle is the portable, password-protected backup file.
//
// Encrypted bundles carry the PBKDF2 salt, the GCM IV and the ciphertext
// (ciphertext and tag concatenated), all standard base64. Iterations is the
// PBKDF2 count and is omitted when it is the 100 000 default. Legacy 2.0/2.1
// bundles may be unencrypted, in which case Vault holds the plaintext entries.
type ExportBundle struct {
	Encrypted  bool            `json:"encrypted"`
	Salt       string          `json:"salt,omitempty"`
	IV         string          `json:"iv,omitempty"`
	Ciphertext string          `json:"ciphertext,omitempty"`
	Iterations int             `json:"iterations,omitempty"`
	Version    string          `json:"version"`
	Vault      []ExportedEntry `json:"vault,omitempty"`
}

// UnmarshalJSON also understands the saltB64/ivB64/dataB64 field names used
// by early exports.
func (b *ExportBundle) UnmarshalJSON(data []byte) error {
	type plain ExportBundle
	var raw struct {
		plain
		SaltB64 string `json:"saltB64"`
		IVB64   string `json:"ivB64"`
		DataB64 string `json:"dataB64"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	*b = ExportBundle(raw.plain)
	if b.Salt == "" {
		b.Salt = raw.SaltB64
	}
	if b.IV == "" {
		b.IV = raw.IVB64
	}
	if b.Ciphertext == "" {
		b.Ciphertext = raw.DataB64
	}
	return nil
}

// ExportPayload is the plaintext document sealed inside an encrypted bundle.
type ExportPayload struct {
	Vault      []ExportedEntry `json:"vault"`
	ExportDate time.Time       `json:"exportDate"`
	Version    string          `json:"version"`
}

// ExportedEntry is a decrypted entry as written to an export.
type ExportedEntry struct {
	ID           EntryID    `json:"id"`
	Service      string     `json:"service"`
	Username     string     `json:"username"`
	Password     string     `json:"password"`
	Notes        string     `json:"notes"`
	Created      time.Time  `json:"created"`
	Updated      time.Time  `json:"updated"`
	Version      int        `json:"version"`
	Favorite     bool       `json:"favorite"`
	AccessCount  int        `json:"accessCount"`
	LastAccessed *time.Time `json:"lastAccessed"`
}
