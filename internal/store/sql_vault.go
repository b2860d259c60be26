package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/MKhiriev/go-mempass/internal/logger"
	"github.com/MKhiriev/go-mempass/models"
)

// sqlVaultStorage is the SQLite-backed implementation of [VaultStorage].
//
// Every public method obtains a context-scoped logger via
// [logger.FromContext] so that database failures are traced with the
// calling function and entry identifier.
type sqlVaultStorage struct {
	*DB
}

// NewSQLVaultStorage constructs a [VaultStorage] backed by db. The schema
// must already be migrated.
func NewSQLVaultStorage(db *DB) (VaultStorage, error) {
	if db == nil || db.DB == nil {
		return nil, ErrNilDB
	}
	return &sqlVaultStorage{DB: db}, nil
}

func (s *sqlVaultStorage) GetSettings(ctx context.Context) (*models.VaultSettings, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetSettingsQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row settingsRow
	if err = s.DB.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Err(err).Str("func", "sqlVaultStorage.GetSettings").Msg("failed to read settings")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	canary, err := decodeField(row.Canary)
	if err != nil {
		return nil, err
	}
	return &models.VaultSettings{
		SaltB64:    row.SaltB64,
		KDFVersion: row.KDFVersion,
		Canary:     canary,
	}, nil
}

func (s *sqlVaultStorage) SaveSettings(ctx context.Context, settings models.VaultSettings) error {
	query, args, err := buildUpsertSettingsQuery(settings)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return s.exec(ctx, "sqlVaultStorage.SaveSettings", s.DB, query, args...)
}

func (s *sqlVaultStorage) ListEntries(ctx context.Context) ([]models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntriesQuery()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var rows []entryRow
	if err = s.DB.SelectContext(ctx, &rows, query, args...); err != nil {
		log.Err(err).Str("func", "sqlVaultStorage.ListEntries").Msg("failed to list entries")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	entries := make([]models.VaultEntry, 0, len(rows))
	for _, row := range rows {
		e, err := row.toModel()
		if err != nil {
			log.Err(err).Str("func", "sqlVaultStorage.ListEntries").Str("entry_id", row.ID).Msg("failed to decode entry")
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, nil
}

func (s *sqlVaultStorage) GetEntry(ctx context.Context, id models.EntryID) (models.VaultEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetEntryQuery(id)
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row entryRow
	if err = s.DB.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.VaultEntry{}, ErrEntryNotFound
		}
		log.Err(err).Str("func", "sqlVaultStorage.GetEntry").Str("entry_id", id.String()).Msg("failed to read entry")
		return models.VaultEntry{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	return row.toModel()
}

func (s *sqlVaultStorage) SaveEntry(ctx context.Context, entry models.VaultEntry) error {
	row, err := toEntryRow(entry)
	if err != nil {
		return err
	}
	query, args, err := buildUpsertEntryQuery(row)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return s.exec(ctx, "sqlVaultStorage.SaveEntry", s.DB, query, args...)
}

func (s *sqlVaultStorage) DeleteEntry(ctx context.Context, id models.EntryID) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteEntryQuery(id)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := s.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "sqlVaultStorage.DeleteEntry").Str("entry_id", id.String()).Msg("failed to delete entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if n == 0 {
		return ErrEntryNotFound
	}
	return nil
}

func (s *sqlVaultStorage) ReplaceVault(ctx context.Context, settings *models.VaultSettings, entries []models.VaultEntry) error {
	return s.inTx(ctx, "sqlVaultStorage.ReplaceVault", func(tx *sqlx.Tx) error {
		if settings != nil {
			query, args, err := buildUpsertSettingsQuery(*settings)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if err = s.exec(ctx, "sqlVaultStorage.ReplaceVault", tx, query, args...); err != nil {
				return err
			}
		}

		query, args, err := sqlBuilder.Delete(entriesTable).ToSql()
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if err = s.exec(ctx, "sqlVaultStorage.ReplaceVault", tx, query, args...); err != nil {
			return err
		}

		for _, e := range entries {
			row, err := toEntryRow(e)
			if err != nil {
				return err
			}
			query, args, err := buildUpsertEntryQuery(row)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if err = s.exec(ctx, "sqlVaultStorage.ReplaceVault", tx, query, args...); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *sqlVaultStorage) GetLockout(ctx context.Context) (models.LockoutState, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetLockoutQuery()
	if err != nil {
		return models.LockoutState{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var row lockoutRow
	if err = s.DB.GetContext(ctx, &row, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.LockoutState{}, nil
		}
		log.Err(err).Str("func", "sqlVaultStorage.GetLockout").Msg("failed to read lockout state")
		return models.LockoutState{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	state := models.LockoutState{FailedAttempts: row.FailedAttempts}
	if row.LockUntil.Valid {
		t := row.LockUntil.Time
		state.LockUntil = &t
	}
	return state, nil
}

func (s *sqlVaultStorage) SaveLockout(ctx context.Context, state models.LockoutState) error {
	query, args, err := buildUpsertLockoutQuery(state)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return s.exec(ctx, "sqlVaultStorage.SaveLockout", s.DB, query, args...)
}

func (s *sqlVaultStorage) LastExport(ctx context.Context) (*time.Time, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetMetaQuery(metaLastExport)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var value string
	if err = s.DB.GetContext(ctx, &value, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		log.Err(err).Str("func", "sqlVaultStorage.LastExport").Msg("failed to read last export")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	at, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return nil, fmt.Errorf("%w: last export time: %w", ErrCorruptState, err)
	}
	return &at, nil
}

func (s *sqlVaultStorage) RecordExport(ctx context.Context, at time.Time) error {
	query, args, err := buildSetMetaQuery(metaLastExport, at.UTC().Format(time.RFC3339Nano))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return s.exec(ctx, "sqlVaultStorage.RecordExport", s.DB, query, args...)
}

func (s *sqlVaultStorage) Wipe(ctx context.Context) error {
	queries, err := buildWipeQueries()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return s.inTx(ctx, "sqlVaultStorage.Wipe", func(tx *sqlx.Tx) error {
		for _, query := range queries {
			if err := s.exec(ctx, "sqlVaultStorage.Wipe", tx, query); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *sqlVaultStorage) Close() error {
	return s.DB.Close()
}

func (s *sqlVaultStorage) exec(ctx context.Context, fn string, ex sqlx.ExecerContext, query string, args ...any) error {
	if _, err := ex.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to execute statement")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

// inTx runs fn in a transaction, committing if fn succeeds and rolling back
// otherwise.
func (s *sqlVaultStorage) inTx(ctx context.Context, fn string, body func(tx *sqlx.Tx) error) error {
	log := logger.FromContext(ctx)

	tx, err := s.DB.BeginTxx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}

	if err = body(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			log.Err(rbErr).Str("func", fn).Msg("failed to roll back transaction")
		}
		return err
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", fn).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}
