// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// EntryID identifies a vault entry.
//
// Older exports carry auto-increment numeric identifiers while entries created
// by this program use UUID strings. EntryID decodes both forms into the same
// string representation so that lookups, updates and deletes compare
// identifiers identically no matter where they came from.
type EntryID string

// NormalizeEntryID returns the canonical form of a raw identifier.
func NormalizeEntryID(raw string) EntryID {
	return EntryID(strings.TrimSpace(raw))
}

// String implements fmt.Stringer.
func (id EntryID) String() string {
	return string(id)
}

// IsZero reports whether the identifier is empty.
func (id EntryID) IsZero() bool {
	return strings.TrimSpace(string(id)) == ""
}

// UnmarshalJSON accepts a JSON string or a JSON number.
func (id *EntryID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = NormalizeEntryID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("entry id must be a string or a number: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		*id = EntryID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = EntryID(n.String())
	return nil
}

// EncryptedField is the persisted form of one encrypted value: a fresh
// 96-bit IV, the ciphertext and the 128-bit GCM authentication tag, each
// encoded as standard base64. A field without an IV or a tag is corrupt; CT
// is empty only for an empty plaintext.
type EncryptedField struct {
	IV  string `json:"iv"`
	CT  string `json:"ct"`
	Tag string `json:"tag"`
}

// Complete reports whether the field carries an IV and a tag.
func (f *EncryptedField) Complete() bool {
	return f != nil && f.IV != "" && f.Tag != ""
}

func (f *EncryptedField) clone() *EncryptedField {
	if f == nil {
		return nil
	}
	c := *f
	return &c
}

// VaultEntry is a stored secret record. Username, Password and Notes are
// encrypted under the session key; Service stays in the clear so the vault can
// be listed without unlocking it.
type VaultEntry struct {
	ID           EntryID         `json:"id" db:"id"`
	Service      string          `json:"service" db:"service"`
	Username     *EncryptedField `json:"username,omitempty" db:"-"`
	Password     *EncryptedField `json:"password,omitempty" db:"-"`
	Notes        *EncryptedField `json:"notes,omitempty" db:"-"`
	Created      time.Time       `json:"created" db:"created"`
	Updated      time.Time       `json:"updated" db:"updated"`
	LastAccessed *time.Time      `json:"lastAccessed" db:"last_accessed"`
	Version      int             `json:"version" db:"version"`
	Favorite     bool            `json:"favorite" db:"favorite"`
	AccessCount  int             `json:"accessCount" db:"access_count"`
}

// Clone returns a deep copy of the entry.
func (e VaultEntry) Clone() VaultEntry {
	e.Username = e.Username.clone()
	e.Password = e.Password.clone()
	e.Notes = e.Notes.clone()
	if e.LastAccessed != nil {
		t := *e.LastAccessed
		e.LastAccessed = &t
	}
	return e
}

// PlainEntry is the decrypted view of a [VaultEntry] handed out while the
// vault is unlocked. Unreadable is set for entries whose ciphertext failed
// authentication; their secret fields are empty.
type PlainEntry struct {
	ID           EntryID    `json:"id"`
	Service      string     `json:"service"`
	Username     string     `json:"username"`
	Password     string     `json:"password"`
	Notes        string     `json:"notes"`
	Created      time.Time  `json:"created"`
	Updated      time.Time  `json:"updated"`
	LastAccessed *time.Time `json:"lastAccessed"`
	Version      int        `json:"version"`
	Favorite     bool       `json:"favorite"`
	AccessCount  int        `json:"accessCount"`
	Unreadable   bool       `json:"-"`
}

// NewEntry carries the caller-supplied values for a new vault entry.
type NewEntry struct {
	Service  string
	Username string
	Password string
	Notes    string
	Version  int
	Favorite bool
}

// EntryUpdate describes a partial update. Nil fields are left untouched.
type EntryUpdate struct {
	Service  *string
	Username *string
	Password *string
	Notes    *string
	Version  *int
	Favorite *bool
}

// SortOrder names an ordering for [PlainEntry] listings.
type SortOrder string

// Supported orderings.
const (
	SortNewest   SortOrder = "newest"
	SortOldest   SortOrder = "oldest"
	SortService  SortOrder = "service"
	SortFrequent SortOrder = "frequent"
)

// VaultStats summarises the vault contents.
type VaultStats struct {
	Total      int `json:"total"`
	Recent     int `json:"recent"`
	Duplicates int `json:"duplicates"`
	Favorites  int `json:"favorites"`
}
