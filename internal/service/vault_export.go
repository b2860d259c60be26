package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"slices"

	"github.com/MKhiriev/go-mempass/internal/config"
	"github.com/MKhiriev/go-mempass/internal/crypto"
	"github.com/MKhiriev/go-mempass/internal/logger"
	"github.com/MKhiriev/go-mempass/internal/session"
	"github.com/MKhiriev/go-mempass/models"
)

// maxImportIterations bounds the work a crafted bundle can demand.
const maxImportIterations = 10_000_000

var (
	importableVersions = []string{models.ExportVersion20, models.ExportVersion21, models.ExportVersionCurrent}
	legacyVersions     = []string{models.ExportVersion20, models.ExportVersion21}
)

// Export implements VaultService. Unreadable entries are left out. The
// bundle is sealed under a PBKDF2 key from password and a fresh salt; the
// export time is recorded for NeedsBackup.
func (v *vaultService) Export(ctx context.Context, password string) (*models.ExportBundle, error) {
	log := logger.FromContext(ctx)

	minLen := v.cfg.ExportMinPasswordLength
	if minLen < config.MinExportPasswordLength {
		minLen = config.MinExportPasswordLength
	}
	if len([]rune(password)) < minLen {
		return nil, fmt.Errorf("%w: need at least %d characters", ErrExportPasswordTooShort, minLen)
	}

	v.opMu.Lock()
	defer v.opMu.Unlock()

	all, err := v.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	now := v.now()
	payload := models.ExportPayload{
		Vault:      make([]models.ExportedEntry, 0, len(all)),
		ExportDate: now,
		Version:    models.ExportVersionCurrent,
	}
	for _, e := range all {
		if e.Unreadable {
			continue
		}
		payload.Vault = append(payload.Vault, toExported(e))
	}

	plaintext, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal export payload: %w", err)
	}
	defer crypto.WipeBytes(plaintext)

	salt, err := crypto.GenerateSalt()
	if err != nil {
		return nil, err
	}
	iterations := v.exportIterations()
	key, err := crypto.DeriveExportKey(password, salt, iterations)
	if err != nil {
		return nil, fmt.Errorf("derive export key: %w", err)
	}
	defer key.Destroy()

	iv, sealed, err := crypto.SealBlob(key, plaintext)
	if err != nil {
		return nil, fmt.Errorf("seal export: %w", err)
	}

	if err = v.storage.RecordExport(ctx, now); err != nil {
		log.Err(err).Str("func", "vaultService.Export").Msg("recording export time failed")
	}

	log.Info().Str("func", "vaultService.Export").Int("entries", len(payload.Vault)).Msg("vault exported")
	bundle := &models.ExportBundle{
		Encrypted:  true,
		Salt:       base64.StdEncoding.EncodeToString(salt),
		IV:         base64.StdEncoding.EncodeToString(iv),
		Ciphertext: base64.StdEncoding.EncodeToString(sealed),
		Version:    models.ExportVersionCurrent,
	}
	if iterations != crypto.MinExportIterations {
		bundle.Iterations = iterations
	}
	return bundle, nil
}

// Import implements VaultService. Settings are never taken from the bundle:
// every field is re-encrypted under the current session key and the entries
// replace the stored ones in one write.
func (v *vaultService) Import(ctx context.Context, bundle models.ExportBundle, password string) (int, error) {
	log := logger.FromContext(ctx)

	v.opMu.Lock()
	defer v.opMu.Unlock()

	if !v.session.IsUnlocked() {
		return 0, session.ErrVaultLocked
	}

	payload, err := v.openBundle(bundle, password)
	if err != nil {
		return 0, err
	}

	var imported int
	err = v.withEntries(ctx, func(key *crypto.Key, cache map[models.EntryID]models.PlainEntry) error {
		now := v.now()
		plain := make([]models.PlainEntry, 0, len(payload.Vault))
		entries := make([]models.VaultEntry, 0, len(payload.Vault))
		seen := make(map[models.EntryID]struct{}, len(payload.Vault))

		for _, x := range payload.Vault {
			p := fromExported(x)
			if p.ID.IsZero() {
				p.ID = v.ids.NewEntryID()
			}
			if _, dup := seen[p.ID]; dup {
				p.ID = v.ids.NewEntryID()
			}
			seen[p.ID] = struct{}{}
			if p.Created.IsZero() {
				p.Created = now
			}
			if p.Updated.IsZero() {
				p.Updated = p.Created
			}
			if p.Version <= 0 {
				p.Version = 1
			}

			e, err := v.sealEntry(key, toStored(p), p)
			if err != nil {
				return err
			}
			plain = append(plain, p)
			entries = append(entries, e)
		}

		if err := v.storage.ReplaceVault(ctx, nil, entries); err != nil {
			return fmt.Errorf("replace entries: %w", err)
		}

		if v.attachments != nil {
			for id := range cache {
				if _, kept := seen[id]; kept {
					continue
				}
				if err := v.attachments.DeleteEntryAttachments(ctx, id); err != nil {
					log.Err(err).Str("func", "vaultService.Import").Str("id", id.String()).Msg("removing orphaned attachments failed")
				}
			}
		}

		clear(cache)
		for _, p := range plain {
			cache[p.ID] = p
		}
		imported = len(plain)
		return nil
	})
	if err != nil {
		log.Err(err).Str("func", "vaultService.Import").Msg("import failed")
		return 0, err
	}

	log.Info().Str("func", "vaultService.Import").Int("entries", imported).Msg("vault imported")
	return imported, nil
}

// openBundle returns the payload of an encrypted bundle, or the inline
// entries of a legacy unencrypted one.
func (v *vaultService) openBundle(bundle models.ExportBundle, password string) (models.ExportPayload, error) {
	if !bundle.Encrypted {
		if !slices.Contains(legacyVersions, bundle.Version) {
			return models.ExportPayload{}, fmt.Errorf("%w: unencrypted bundle version %q", ErrExportFormat, bundle.Version)
		}
		return models.ExportPayload{Vault: bundle.Vault, Version: bundle.Version}, nil
	}

	salt, err := base64.StdEncoding.DecodeString(bundle.Salt)
	if err != nil || len(salt) != crypto.SaltSize {
		return models.ExportPayload{}, fmt.Errorf("%w: bad salt", ErrExportFormat)
	}
	iv, err := base64.StdEncoding.DecodeString(bundle.IV)
	if err != nil {
		return models.ExportPayload{}, fmt.Errorf("%w: bad iv", ErrExportFormat)
	}
	sealed, err := base64.StdEncoding.DecodeString(bundle.Ciphertext)
	if err != nil {
		return models.ExportPayload{}, fmt.Errorf("%w: bad ciphertext", ErrExportFormat)
	}

	iterations := bundle.Iterations
	if iterations == 0 {
		iterations = crypto.MinExportIterations
	}
	if iterations < crypto.MinExportIterations || iterations > maxImportIterations {
		return models.ExportPayload{}, fmt.Errorf("%w: %d pbkdf2 iterations", ErrExportFormat, iterations)
	}

	key, err := crypto.DeriveExportKey(password, salt, iterations)
	if err != nil {
		return models.ExportPayload{}, fmt.Errorf("derive export key: %w", err)
	}
	defer key.Destroy()

	plaintext, err := crypto.OpenBlob(key, iv, sealed)
	if errors.Is(err, crypto.ErrCrypto) {
		return models.ExportPayload{}, ErrWrongExportPassword
	}
	if err != nil {
		return models.ExportPayload{}, err
	}
	defer crypto.WipeBytes(plaintext)

	var payload models.ExportPayload
	if err = json.Unmarshal(plaintext, &payload); err != nil {
		return models.ExportPayload{}, fmt.Errorf("%w: %v", ErrExportFormat, err)
	}
	if !slices.Contains(importableVersions, payload.Version) {
		return models.ExportPayload{}, fmt.Errorf("%w: version %q", ErrExportFormat, payload.Version)
	}
	return payload, nil
}

func (v *vaultService) exportIterations() int {
	if v.cfg.ExportIterations < crypto.MinExportIterations {
		return crypto.MinExportIterations
	}
	return v.cfg.ExportIterations
}

func toExported(p models.PlainEntry) models.ExportedEntry {
	return models.ExportedEntry{
		ID:           p.ID,
		Service:      p.Service,
		Username:     p.Username,
		Password:     p.Password,
		Notes:        p.Notes,
		Created:      p.Created,
		Updated:      p.Updated,
		Version:      p.Version,
		Favorite:     p.Favorite,
		AccessCount:  p.AccessCount,
		LastAccessed: p.LastAccessed,
	}
}

func fromExported(x models.ExportedEntry) models.PlainEntry {
	return models.PlainEntry{
		ID:           models.NormalizeEntryID(x.ID.String()),
		Service:      normalizeService(x.Service),
		Username:     x.Username,
		Password:     x.Password,
		Notes:        x.Notes,
		Created:      x.Created,
		Updated:      x.Updated,
		Version:      x.Version,
		Favorite:     x.Favorite,
		AccessCount:  x.AccessCount,
		LastAccessed: x.LastAccessed,
	}
}
