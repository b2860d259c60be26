// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/MKhiriev/go-mempass/internal/crypto"
	"github.com/MKhiriev/go-mempass/internal/logger"
	"github.com/MKhiriev/go-mempass/internal/session"
	"github.com/MKhiriev/go-mempass/internal/store"
	"github.com/MKhiriev/go-mempass/models"
)

const (
	defaultSuggestionLimit = 5
	recentWindow           = 30 * 24 * time.Hour
)

// normalizeService lower-cases and trims a service name.
func normalizeService(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// AddEntry implements VaultService.
func (v *vaultService) AddEntry(ctx context.Context, in models.NewEntry) (models.PlainEntry, error) {
	if err := v.validator.Validate(ctx, in); err != nil {
		return models.PlainEntry{}, fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}
	svc := normalizeService(in.Service)
	version := in.Version
	if version <= 0 {
		version = 1
	}

	v.opMu.RLock()
	defer v.opMu.RUnlock()

	var out models.PlainEntry
	err := v.withEntries(ctx, func(key *crypto.Key, cache map[models.EntryID]models.PlainEntry) error {
		now := v.now()
		plain := models.PlainEntry{
			ID:       v.ids.NewEntryID(),
			Service:  svc,
			Username: in.Username,
			Password: in.Password,
			Notes:    in.Notes,
			Created:  now,
			Updated:  now,
			Version:  version,
			Favorite: in.Favorite,
		}

		entry, err := v.sealEntry(key, toStored(plain), plain)
		if err != nil {
			return err
		}
		if err = v.storage.SaveEntry(ctx, entry); err != nil {
			return fmt.Errorf("save entry: %w", err)
		}

		cache[plain.ID] = plain
		out = plain
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "vaultService.AddEntry").Msg("add entry failed")
		return models.PlainEntry{}, err
	}
	return out, nil
}

// UpdateEntry implements VaultService. Only the fields set in upd are
// re-encrypted; the others keep their stored ciphertext.
func (v *vaultService) UpdateEntry(ctx context.Context, id models.EntryID, upd models.EntryUpdate) (models.PlainEntry, error) {
	id = models.NormalizeEntryID(id.String())
	if err := v.validator.Validate(ctx, upd); err != nil {
		return models.PlainEntry{}, fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}

	v.opMu.RLock()
	defer v.opMu.RUnlock()

	var out models.PlainEntry
	err := v.withEntries(ctx, func(key *crypto.Key, cache map[models.EntryID]models.PlainEntry) error {
		plain, ok := cache[id]
		if !ok {
			return ErrEntryNotFound
		}
		stored, err := v.getStored(ctx, id)
		if err != nil {
			return err
		}

		if upd.Service != nil {
			plain.Service = normalizeService(*upd.Service)
			stored.Service = plain.Service
		}
		if upd.Username != nil {
			plain.Username = *upd.Username
			if stored.Username, err = v.sealOptional(key, plain.Username); err != nil {
				return err
			}
		}
		if upd.Password != nil {
			plain.Password = *upd.Password
			if stored.Password, err = v.seal(key, plain.Password); err != nil {
				return err
			}
		}
		if upd.Notes != nil {
			plain.Notes = *upd.Notes
			if stored.Notes, err = v.sealOptional(key, plain.Notes); err != nil {
				return err
			}
		}
		if upd.Version != nil {
			plain.Version = *upd.Version
			stored.Version = plain.Version
		}
		if upd.Favorite != nil {
			plain.Favorite = *upd.Favorite
			stored.Favorite = plain.Favorite
		}
		plain.Updated = v.now()
		stored.Updated = plain.Updated

		if err = v.storage.SaveEntry(ctx, stored); err != nil {
			return fmt.Errorf("save entry: %w", err)
		}
		cache[id] = plain
		out = plain
		return nil
	})
	if err != nil {
		return models.PlainEntry{}, err
	}
	return out, nil
}

// DeleteEntry implements VaultService. The entry's attachments go with it.
func (v *vaultService) DeleteEntry(ctx context.Context, id models.EntryID) error {
	id = models.NormalizeEntryID(id.String())

	v.opMu.RLock()
	defer v.opMu.RUnlock()

	return v.withEntries(ctx, func(_ *crypto.Key, cache map[models.EntryID]models.PlainEntry) error {
		if err := v.storage.DeleteEntry(ctx, id); err != nil {
			if errors.Is(err, store.ErrEntryNotFound) {
				return ErrEntryNotFound
			}
			return fmt.Errorf("delete entry: %w", err)
		}
		delete(cache, id)

		if v.attachments != nil {
			if err := v.attachments.DeleteEntryAttachments(ctx, id); err != nil {
				logger.FromContext(ctx).Err(err).Str("func", "vaultService.DeleteEntry").Msg("removing entry attachments failed")
			}
		}
		return nil
	})
}

// GetEntry implements VaultService.
func (v *vaultService) GetEntry(ctx context.Context, id models.EntryID) (models.PlainEntry, error) {
	id = models.NormalizeEntryID(id.String())

	v.opMu.RLock()
	defer v.opMu.RUnlock()

	var out models.PlainEntry
	err := v.withEntries(ctx, func(_ *crypto.Key, cache map[models.EntryID]models.PlainEntry) error {
		plain, ok := cache[id]
		if !ok {
			return ErrEntryNotFound
		}
		stored, err := v.getStored(ctx, id)
		if err != nil {
			return err
		}

		now := v.now()
		stored.AccessCount++
		stored.LastAccessed = &now
		if err = v.storage.SaveEntry(ctx, stored); err != nil {
			return fmt.Errorf("save entry: %w", err)
		}

		plain.AccessCount = stored.AccessCount
		plain.LastAccessed = &now
		cache[id] = plain
		out = plain
		return nil
	})
	if err != nil {
		return models.PlainEntry{}, err
	}
	return out, nil
}

func (v *vaultService) getStored(ctx context.Context, id models.EntryID) (models.VaultEntry, error) {
	stored, err := v.storage.GetEntry(ctx, id)
	if errors.Is(err, store.ErrEntryNotFound) {
		return models.VaultEntry{}, ErrEntryNotFound
	}
	if err != nil {
		return models.VaultEntry{}, fmt.Errorf("get entry: %w", err)
	}
	return stored, nil
}

// ListEntries implements VaultService.
func (v *vaultService) ListEntries(ctx context.Context) ([]models.PlainEntry, error) {
	v.opMu.RLock()
	defer v.opMu.RUnlock()
	return v.snapshot(ctx)
}

// Search implements VaultService. The query matches service, username and
// notes case-insensitively; an empty query matches everything.
func (v *vaultService) Search(ctx context.Context, query string) ([]models.PlainEntry, error) {
	all, err := v.ListEntries(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return all, nil
	}

	out := make([]models.PlainEntry, 0, len(all))
	for _, e := range all {
		if containsFold(e.Service, q) || containsFold(e.Username, q) || containsFold(e.Notes, q) {
			out = append(out, e)
		}
	}
	return out, nil
}

// Sort implements VaultService.
func (v *vaultService) Sort(ctx context.Context, order models.SortOrder) ([]models.PlainEntry, error) {
	var less func(a, b models.PlainEntry) bool
	switch order {
	case models.SortNewest, "":
		less = func(a, b models.PlainEntry) bool { return a.Created.After(b.Created) }
	case models.SortOldest:
		less = func(a, b models.PlainEntry) bool { return a.Created.Before(b.Created) }
	case models.SortService:
		less = func(a, b models.PlainEntry) bool { return a.Service < b.Service }
	case models.SortFrequent:
		less = func(a, b models.PlainEntry) bool { return a.AccessCount > b.AccessCount }
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortOrder, order)
	}

	all, err := v.ListEntries(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(all, func(i, j int) bool { return less(all[i], all[j]) })
	return all, nil
}

// Suggestions implements VaultService. Entries whose service or username
// contains query are returned once per service and username pair, at most
// limit of them. An empty query suggests nothing.
func (v *vaultService) Suggestions(ctx context.Context, query string, limit int) ([]models.PlainEntry, error) {
	if limit <= 0 {
		limit = defaultSuggestionLimit
	}

	all, err := v.ListEntries(ctx)
	if err != nil {
		return nil, err
	}

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return []models.PlainEntry{}, nil
	}

	seen := make(map[string]struct{})
	out := make([]models.PlainEntry, 0, limit)
	for _, e := range all {
		if !containsFold(e.Service, q) && !containsFold(e.Username, q) {
			continue
		}
		k := e.Service + ":" + e.Username
		if _, dup := seen[k]; dup {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, e)
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

// Stats implements VaultService. Duplicates counts entries repeating a
// service and username pair seen earlier.
func (v *vaultService) Stats(ctx context.Context) (models.VaultStats, error) {
	all, err := v.ListEntries(ctx)
	if err != nil {
		return models.VaultStats{}, err
	}

	cutoff := v.now().Add(-recentWindow)
	stats := models.VaultStats{Total: len(all)}
	seen := make(map[string]struct{}, len(all))
	for _, e := range all {
		if !e.Created.Before(cutoff) {
			stats.Recent++
		}
		if e.Favorite {
			stats.Favorites++
		}
		k := e.Service + ":" + e.Username
		if _, dup := seen[k]; dup {
			stats.Duplicates++
			continue
		}
		seen[k] = struct{}{}
	}
	return stats, nil
}

// NeedsBackup implements VaultService.
func (v *vaultService) NeedsBackup(ctx context.Context) (bool, error) {
	if !v.session.IsUnlocked() {
		return false, session.ErrVaultLocked
	}

	last, err := v.storage.LastExport(ctx)
	if err != nil {
		return false, fmt.Errorf("get last export: %w", err)
	}
	if last == nil {
		return true, nil
	}

	reminder := v.cfg.BackupReminder
	if reminder <= 0 {
		reminder = recentWindow
	}
	return v.now().Sub(*last) > reminder, nil
}

func containsFold(s, lowerQuery string) bool {
	return s != "" && strings.Contains(strings.ToLower(s), lowerQuery)
}

// toStored copies the metadata of p into a VaultEntry without secrets.
func toStored(p models.PlainEntry) models.VaultEntry {
	e := models.VaultEntry{
		ID:          p.ID,
		Service:     p.Service,
		Created:     p.Created,
		Updated:     p.Updated,
		Version:     p.Version,
		Favorite:    p.Favorite,
		AccessCount: p.AccessCount,
	}
	if p.LastAccessed != nil {
		t := *p.LastAccessed
		e.LastAccessed = &t
	}
	return e
}
