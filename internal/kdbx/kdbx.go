// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package kdbx writes vault entries to a KeePass KDBX4 database so they can
// be opened by KeePass-compatible password managers.
package kdbx

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tobischo/gokeepasslib/v3"
	w "github.com/tobischo/gokeepasslib/v3/wrappers"

	"github.com/MKhiriev/go-mempass/models"
)

// Value keys of a KeePass entry.
const (
	KeyTitle    = "Title"
	KeyUserName = "UserName"
	KeyPassword = "Password"
	KeyNotes    = "Notes"

	// KeyVersion holds the generator version when it is not 1.
	KeyVersion = "mempass.version"

	// TagFavorite marks favorite entries.
	TagFavorite = "favorite"

	rootGroupName = "mempass"
)

// ErrEmptyPassword is returned when the database password is empty.
var ErrEmptyPassword = errors.New("kdbx password must not be empty")

// Write encodes entries as a KDBX4 database protected by password. Entries
// marked unreadable are skipped. Passwords are stored as protected values;
// KeePass timestamps are those of the export. It returns the number of
// entries written.
func Write(out io.Writer, entries []models.PlainEntry, password string) (int, error) {
	if password == "" {
		return 0, ErrEmptyPassword
	}

	db := gokeepasslib.NewDatabase(gokeepasslib.WithDatabaseKDBXVersion4())
	db.Credentials = gokeepasslib.NewPasswordCredentials(password)

	root := gokeepasslib.NewGroup()
	root.Name = rootGroupName

	for _, e := range entries {
		if e.Unreadable {
			continue
		}
		root.Entries = append(root.Entries, toKeePass(e))
	}
	if db.Content == nil {
		db.Content = gokeepasslib.NewContent()
	}
	db.Content.Root = &gokeepasslib.RootData{Groups: []gokeepasslib.Group{root}}

	if err := db.LockProtectedEntries(); err != nil {
		return 0, fmt.Errorf("lock protected values: %w", err)
	}
	if err := gokeepasslib.NewEncoder(out).Encode(db); err != nil {
		return 0, fmt.Errorf("encode kdbx: %w", err)
	}
	return len(root.Entries), nil
}

// WriteFile is Write into a new file at path, created with owner-only
// permissions. The file is removed again if encoding fails.
func WriteFile(path string, entries []models.PlainEntry, password string) (n int, err error) {
	if password == "" {
		return 0, ErrEmptyPassword
	}

	f, err := os.OpenFile(filepath.Clean(path), os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o600)
	if err != nil {
		return 0, fmt.Errorf("create kdbx file: %w", err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close kdbx file: %w", cerr)
		}
		if err != nil {
			_ = os.Remove(path)
		}
	}()

	return Write(f, entries, password)
}

func toKeePass(e models.PlainEntry) gokeepasslib.Entry {
	entry := gokeepasslib.NewEntry()
	entry.Values = append(entry.Values,
		textValue(KeyTitle, e.Service),
		textValue(KeyUserName, e.Username),
		protectedValue(KeyPassword, e.Password),
	)
	if e.Notes != "" {
		entry.Values = append(entry.Values, textValue(KeyNotes, e.Notes))
	}
	if e.Version > 1 {
		entry.Values = append(entry.Values, textValue(KeyVersion, strconv.Itoa(e.Version)))
	}
	if e.Favorite {
		entry.Tags = TagFavorite
	}

	return entry
}

func textValue(key, content string) gokeepasslib.ValueData {
	return gokeepasslib.ValueData{Key: key, Value: gokeepasslib.V{Content: content}}
}

func protectedValue(key, content string) gokeepasslib.ValueData {
	return gokeepasslib.ValueData{
		Key:   key,
		Value: gokeepasslib.V{Content: content, Protected: w.NewBoolWrapper(true)},
	}
}
