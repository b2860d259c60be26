package service

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-mempass/internal/crypto"
	"github.com/MKhiriev/go-mempass/internal/logger"
	"github.com/MKhiriev/go-mempass/models"
)

// withEntries runs fn with the session key and the decrypted working set.
// The set is rebuilt from storage if a lock hook dropped it. The session is
// touched, so every entry operation counts as activity.
func (v *vaultService) withEntries(ctx context.Context, fn func(key *crypto.Key, cache map[models.EntryID]models.PlainEntry) error) error {
	return v.session.WithKey(func(key *crypto.Key) error {
		v.session.Touch()

		v.cacheMu.Lock()
		defer v.cacheMu.Unlock()

		if v.cache == nil {
			stored, err := v.storage.ListEntries(ctx)
			if err != nil {
				return fmt.Errorf("list entries: %w", err)
			}
			plain, err := v.decryptAll(ctx, key, stored)
			if err != nil {
				return err
			}
			v.cache = indexEntries(plain)
		}
		return fn(key, v.cache)
	})
}

// snapshot returns the working set ordered oldest first.
func (v *vaultService) snapshot(ctx context.Context) ([]models.PlainEntry, error) {
	var out []models.PlainEntry
	err := v.withEntries(ctx, func(_ *crypto.Key, cache map[models.EntryID]models.PlainEntry) error {
		out = make([]models.PlainEntry, 0, len(cache))
		for _, e := range cache {
			out = append(out, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Created.Equal(out[j].Created) {
			return out[i].ID < out[j].ID
		}
		return out[i].Created.Before(out[j].Created)
	})
	return out, nil
}

func (v *vaultService) setCache(plain []models.PlainEntry) {
	v.cacheMu.Lock()
	defer v.cacheMu.Unlock()
	v.cache = indexEntries(plain)
}

// dropCache forgets every decrypted entry. It is the session's OnLock hook.
func (v *vaultService) dropCache() {
	v.cacheMu.Lock()
	defer v.cacheMu.Unlock()
	clear(v.cache)
	v.cache = nil
}

func indexEntries(plain []models.PlainEntry) map[models.EntryID]models.PlainEntry {
	m := make(map[models.EntryID]models.PlainEntry, len(plain))
	for _, e := range plain {
		m[e.ID] = e
	}
	return m
}

// decryptAll opens every entry concurrently. An entry that fails
// authentication is returned marked Unreadable; any other failure aborts.
func (v *vaultService) decryptAll(ctx context.Context, key *crypto.Key, entries []models.VaultEntry) ([]models.PlainEntry, error) {
	log := logger.FromContext(ctx)

	out := make([]models.PlainEntry, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, e := range entries {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			plain, err := v.decryptEntry(key, e)
			if errors.Is(err, crypto.ErrCrypto) {
				log.Warn().Err(err).Str("func", "vaultService.decryptAll").Str("id", e.ID.String()).Msg("entry is unreadable")
				out[i] = unreadableEntry(e)
				return nil
			}
			if err != nil {
				return fmt.Errorf("decrypt entry %s: %w", e.ID, err)
			}
			out[i] = plain
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (v *vaultService) decryptEntry(key *crypto.Key, e models.VaultEntry) (models.PlainEntry, error) {
	p := plainMeta(e)

	var err error
	if p.Username, err = v.openOptional(key, e.Username); err != nil {
		return models.PlainEntry{}, fmt.Errorf("username: %w", err)
	}
	if p.Password, err = v.openOptional(key, e.Password); err != nil {
		return models.PlainEntry{}, fmt.Errorf("password: %w", err)
	}
	if p.Notes, err = v.openOptional(key, e.Notes); err != nil {
		return models.PlainEntry{}, fmt.Errorf("notes: %w", err)
	}
	return p, nil
}

func (v *vaultService) openOptional(key *crypto.Key, f *models.EncryptedField) (string, error) {
	if f == nil {
		return "", nil
	}
	return v.cipher.DecryptField(key, f)
}

// sealEntry returns e with its secret fields replaced by fresh ciphertexts of
// p. Empty username and notes are stored without ciphertext.
func (v *vaultService) sealEntry(key *crypto.Key, e models.VaultEntry, p models.PlainEntry) (models.VaultEntry, error) {
	var err error
	if e.Username, err = v.sealOptional(key, p.Username); err != nil {
		return models.VaultEntry{}, err
	}
	if e.Password, err = v.seal(key, p.Password); err != nil {
		return models.VaultEntry{}, err
	}
	if e.Notes, err = v.sealOptional(key, p.Notes); err != nil {
		return models.VaultEntry{}, err
	}
	return e, nil
}

func (v *vaultService) seal(key *crypto.Key, text string) (*models.EncryptedField, error) {
	f, err := v.cipher.EncryptField(key, text)
	if err != nil {
		return nil, fmt.Errorf("encrypt field: %w", err)
	}
	return &f, nil
}

func (v *vaultService) sealOptional(key *crypto.Key, text string) (*models.EncryptedField, error) {
	if text == "" {
		return nil, nil
	}
	return v.seal(key, text)
}

func plainMeta(e models.VaultEntry) models.PlainEntry {
	p := models.PlainEntry{
		ID:          e.ID,
		Service:     e.Service,
		Created:     e.Created,
		Updated:     e.Updated,
		Version:     e.Version,
		Favorite:    e.Favorite,
		AccessCount: e.AccessCount,
	}
	if e.LastAccessed != nil {
		t := *e.LastAccessed
		p.LastAccessed = &t
	}
	return p
}

func unreadableEntry(e models.VaultEntry) models.PlainEntry {
	p := plainMeta(e)
	p.Unreadable = true
	return p
}
