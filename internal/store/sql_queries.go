// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-mempass/models"
)

const (
	entriesTable  = "entries"
	settingsTable = "settings"
	lockoutTable  = "lockout"
	metaTable     = "meta"

	// singletonID is the primary key of the one-row settings and lockout
	// tables.
	singletonID = 1

	metaLastExport = "last_export"
)

var sqlBuilder = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var entryColumns = []string{
	"id",
	"service",
	"username",
	"password",
	"notes",
	"created",
	"updated",
	"last_accessed",
	"version",
	"favorite",
	"access_count",
}

const upsertEntrySuffix = `ON CONFLICT(id) DO UPDATE SET
	service       = excluded.service,
	username      = excluded.username,
	password      = excluded.password,
	notes         = excluded.notes,
	created       = excluded.created,
	updated       = excluded.updated,
	last_accessed = excluded.last_accessed,
	version       = excluded.version,
	favorite      = excluded.favorite,
	access_count  = excluded.access_count`

// entryRow is the database shape of a [models.VaultEntry]. Encrypted fields
// are stored as JSON {iv, ct, tag} objects.
type entryRow struct {
	ID           string         `db:"id"`
	Service      string         `db:"service"`
	Username     sql.NullString `db:"username"`
	Password     sql.NullString `db:"password"`
	Notes        sql.NullString `db:"notes"`
	Created      time.Time      `db:"created"`
	Updated      time.Time      `db:"updated"`
	LastAccessed sql.NullTime   `db:"last_accessed"`
	Version      int            `db:"version"`
	Favorite     bool           `db:"favorite"`
	AccessCount  int            `db:"access_count"`
}

type settingsRow struct {
	SaltB64    string         `db:"salt_b64"`
	KDFVersion string         `db:"kdf_version"`
	Canary     sql.NullString `db:"canary"`
}

type lockoutRow struct {
	FailedAttempts int          `db:"failed_attempts"`
	LockUntil      sql.NullTime `db:"lock_until"`
}

func toEntryRow(e models.VaultEntry) (entryRow, error) {
	row := entryRow{
		ID:          models.NormalizeEntryID(e.ID.String()).String(),
		Service:     e.Service,
		Created:     e.Created.UTC(),
		Updated:     e.Updated.UTC(),
		Version:     e.Version,
		Favorite:    e.Favorite,
		AccessCount: e.AccessCount,
	}
	if e.LastAccessed != nil {
		row.LastAccessed = sql.NullTime{Time: e.LastAccessed.UTC(), Valid: true}
	}

	var err error
	if row.Username, err = encodeField(e.Username); err != nil {
		return entryRow{}, err
	}
	if row.Password, err = encodeField(e.Password); err != nil {
		return entryRow{}, err
	}
	if row.Notes, err = encodeField(e.Notes); err != nil {
		return entryRow{}, err
	}
	return row, nil
}

func (r entryRow) toModel() (models.VaultEntry, error) {
	e := models.VaultEntry{
		ID:          models.NormalizeEntryID(r.ID),
		Service:     r.Service,
		Created:     r.Created,
		Updated:     r.Updated,
		Version:     r.Version,
		Favorite:    r.Favorite,
		AccessCount: r.AccessCount,
	}
	if r.LastAccessed.Valid {
		t := r.LastAccessed.Time
		e.LastAccessed = &t
	}

	var err error
	if e.Username, err = decodeField(r.Username); err != nil {
		return models.VaultEntry{}, err
	}
	if e.Password, err = decodeField(r.Password); err != nil {
		return models.VaultEntry{}, err
	}
	if e.Notes, err = decodeField(r.Notes); err != nil {
		return models.VaultEntry{}, err
	}
	return e, nil
}

func encodeField(f *models.EncryptedField) (sql.NullString, error) {
	if f == nil {
		return sql.NullString{}, nil
	}
	b, err := json.Marshal(f)
	if err != nil {
		return sql.NullString{}, fmt.Errorf("encode encrypted field: %w", err)
	}
	return sql.NullString{String: string(b), Valid: true}, nil
}

func decodeField(s sql.NullString) (*models.EncryptedField, error) {
	if !s.Valid || s.String == "" {
		return nil, nil
	}
	var f models.EncryptedField
	if err := json.Unmarshal([]byte(s.String), &f); err != nil {
		return nil, fmt.Errorf("%w: encrypted field: %w", ErrCorruptState, err)
	}
	return &f, nil
}

func buildListEntriesQuery() (string, []any, error) {
	return sqlBuilder.
		Select(entryColumns...).
		From(entriesTable).
		OrderBy("created ASC", "id ASC").
		ToSql()
}

func buildGetEntryQuery(id models.EntryID) (string, []any, error) {
	return sqlBuilder.
		Select(entryColumns...).
		From(entriesTable).
		Where(sq.Eq{"id": models.NormalizeEntryID(id.String()).String()}).
		ToSql()
}

func buildUpsertEntryQuery(row entryRow) (string, []any, error) {
	return sqlBuilder.
		Insert(entriesTable).
		Columns(entryColumns...).
		Values(
			row.ID,
			row.Service,
			row.Username,
			row.Password,
			row.Notes,
			row.Created,
			row.Updated,
			row.LastAccessed,
			row.Version,
			row.Favorite,
			row.AccessCount,
		).
		Suffix(upsertEntrySuffix).
		ToSql()
}

func buildDeleteEntryQuery(id models.EntryID) (string, []any, error) {
	return sqlBuilder.
		Delete(entriesTable).
		Where(sq.Eq{"id": models.NormalizeEntryID(id.String()).String()}).
		ToSql()
}

func buildGetSettingsQuery() (string, []any, error) {
	return sqlBuilder.
		Select("salt_b64", "kdf_version", "canary").
		From(settingsTable).
		Where(sq.Eq{"id": singletonID}).
		ToSql()
}

func buildUpsertSettingsQuery(settings models.VaultSettings) (string, []any, error) {
	canary, err := encodeField(settings.Canary)
	if err != nil {
		return "", nil, err
	}
	return sqlBuilder.
		Insert(settingsTable).
		Columns("id", "salt_b64", "kdf_version", "canary").
		Values(singletonID, settings.SaltB64, settings.KDFVersion, canary).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			salt_b64    = excluded.salt_b64,
			kdf_version = excluded.kdf_version,
			canary      = excluded.canary`).
		ToSql()
}

func buildGetLockoutQuery() (string, []any, error) {
	return sqlBuilder.
		Select("failed_attempts", "lock_until").
		From(lockoutTable).
		Where(sq.Eq{"id": singletonID}).
		ToSql()
}

func buildUpsertLockoutQuery(state models.LockoutState) (string, []any, error) {
	var until sql.NullTime
	if state.LockUntil != nil {
		until = sql.NullTime{Time: state.LockUntil.UTC(), Valid: true}
	}
	return sqlBuilder.
		Insert(lockoutTable).
		Columns("id", "failed_attempts", "lock_until").
		Values(singletonID, state.FailedAttempts, until).
		Suffix(`ON CONFLICT(id) DO UPDATE SET
			failed_attempts = excluded.failed_attempts,
			lock_until      = excluded.lock_until`).
		ToSql()
}

func buildGetMetaQuery(key string) (string, []any, error) {
	return sqlBuilder.
		Select("value").
		From(metaTable).
		Where(sq.Eq{"key": key}).
		ToSql()
}

func buildSetMetaQuery(key, value string) (string, []any, error) {
	return sqlBuilder.
		Insert(metaTable).
		Columns("key", "value").
		Values(key, value).
		Suffix(`ON CONFLICT(key) DO UPDATE SET value = excluded.value`).
		ToSql()
}

func buildWipeQueries() ([]string, error) {
	tables := []string{entriesTable, settingsTable, lockoutTable, metaTable}
	out := make([]string, 0, len(tables))
	for _, table := range tables {
		query, _, err := sqlBuilder.Delete(table).ToSql()
		if err != nil {
			return nil, err
		}
		out = append(out, query)
	}
	return out, nil
}
