// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-mempass/internal/config"
	"github.com/MKhiriev/go-mempass/internal/crypto"
	"github.com/MKhiriev/go-mempass/internal/lockout"
	"github.com/MKhiriev/go-mempass/internal/logger"
	"github.com/MKhiriev/go-mempass/internal/session"
	"github.com/MKhiriev/go-mempass/internal/store"
	"github.com/MKhiriev/go-mempass/internal/utils"
	"github.com/MKhiriev/go-mempass/internal/validators"
	"github.com/MKhiriev/go-mempass/models"
)

// canaryPlaintext is sealed under the session key at SetPin. A candidate key
// that opens it is the right key.
const canaryPlaintext = "mempass-canary-v1"

// vaultService is the concrete implementation of VaultService.
type vaultService struct {
	// storage persists settings, encrypted entries and the lockout state.
	storage store.VaultStorage

	// attachments is wiped together with the vault and pruned when entries
	// go away.
	attachments store.AttachmentStorage

	// session owns the key. The service never keeps a key of its own.
	session *session.Session

	deriver crypto.KeyDeriver
	cipher  crypto.FieldCipher
	policy    lockout.Policy
	validator validators.Validator
	ids       *utils.UUIDGenerator
	cfg       config.Vault

	// opMu serialises export, import and PIN changes against every other
	// operation: they take the write side, everything else the read side.
	opMu sync.RWMutex

	// cacheMu guards cache. It is always released before the session hold,
	// because releasing the hold may run a deferred lock whose hook takes
	// cacheMu again.
	cacheMu sync.Mutex
	cache   map[models.EntryID]models.PlainEntry

	now    func() time.Time
	logger *logger.Logger
}

// NewVaultService wires the vault to its storage and session. The session's
// OnLock hook drops the decrypted entries.
func NewVaultService(storages *store.Storages, sess *session.Session, deriver crypto.KeyDeriver, cipher crypto.FieldCipher, cfg config.Vault, log *logger.Logger) VaultService {
	if log == nil {
		log = logger.Nop()
	}

	v := &vaultService{
		storage:     storages.Vault,
		attachments: storages.Attachments,
		session:     sess,
		deriver:     deriver,
		cipher:      cipher,
		policy:      lockout.NewPolicy(cfg.MaxAttempts, cfg.LockoutDuration),
		validator:   validators.NewEntryValidator(MaxAttachmentSize),
		ids:         utils.NewUUIDGenerator(),
		cfg:         cfg,
		now:         func() time.Time { return time.Now().UTC() },
		logger:      log,
	}
	sess.OnLock(v.dropCache)
	return v
}

// HasPin implements VaultService.
func (v *vaultService) HasPin(ctx context.Context) (bool, error) {
	settings, err := v.storage.GetSettings(ctx)
	if err != nil {
		return false, fmt.Errorf("get settings: %w", err)
	}
	return settings.HasPin(), nil
}

// IsUnlocked implements VaultService.
func (v *vaultService) IsUnlocked() bool {
	return v.session.IsUnlocked()
}

// Lock implements VaultService.
func (v *vaultService) Lock() bool {
	return v.session.Lock()
}

// SetPin implements VaultService.
func (v *vaultService) SetPin(ctx context.Context, pin string) error {
	log := logger.FromContext(ctx)

	if err := v.validatePin(pin); err != nil {
		return err
	}

	v.opMu.Lock()
	defer v.opMu.Unlock()

	current, err := v.storage.GetSettings(ctx)
	if err != nil {
		return fmt.Errorf("get settings: %w", err)
	}

	changing := current.HasPin()
	var oldKey *crypto.Key
	if changing {
		// re-encryption needs the old key, so changing a PIN needs an
		// unlocked vault
		release, err := v.session.Hold()
		if err != nil {
			return err
		}
		defer release()

		if err = v.session.WithKey(func(key *crypto.Key) error {
			oldKey = key
			return nil
		}); err != nil {
			return err
		}
	}

	salt, err := crypto.GenerateSalt()
	if err != nil {
		return err
	}
	newKey, err := v.deriver.DeriveKey(ctx, pin, salt)
	if err != nil {
		return fmt.Errorf("derive key: %w", err)
	}

	settings, entries, err := v.rekeyVault(ctx, oldKey, newKey, salt)
	if err != nil {
		newKey.Destroy()
		return err
	}

	if err = v.storage.ReplaceVault(ctx, &settings, entries); err != nil {
		newKey.Destroy()
		log.Err(err).Str("func", "vaultService.SetPin").Msg("persisting re-keyed vault failed")
		return fmt.Errorf("persist vault: %w", err)
	}
	if err = v.storage.SaveLockout(ctx, v.policy.RecordSuccess()); err != nil {
		log.Err(err).Str("func", "vaultService.SetPin").Msg("clearing lockout state failed")
	}

	if changing {
		v.rekeyAttachments(ctx, oldKey, newKey, entries)
		if err = v.session.Rekey(newKey); err != nil {
			newKey.Destroy()
			return err
		}
		log.Info().Str("func", "vaultService.SetPin").Int("entries", len(entries)).Msg("pin changed")
		return nil
	}

	plain, err := v.decryptAll(ctx, newKey, entries)
	if err != nil {
		newKey.Destroy()
		return err
	}
	if err = v.unlock(newKey, plain); err != nil {
		return err
	}
	log.Info().Str("func", "vaultService.SetPin").Msg("pin set")
	return nil
}

// rekeyVault builds the settings for a new key and re-encrypts every
// readable entry from oldKey to newKey. Entries oldKey cannot open are kept
// as they are. With a nil oldKey the stored entries are kept unchanged.
func (v *vaultService) rekeyVault(ctx context.Context, oldKey, newKey *crypto.Key, salt []byte) (models.VaultSettings, []models.VaultEntry, error) {
	canary, err := v.cipher.EncryptField(newKey, canaryPlaintext)
	if err != nil {
		return models.VaultSettings{}, nil, fmt.Errorf("seal canary: %w", err)
	}
	settings := models.VaultSettings{
		SaltB64:    base64.StdEncoding.EncodeToString(salt),
		KDFVersion: v.deriver.Version(),
		Canary:     &canary,
	}

	stored, err := v.storage.ListEntries(ctx)
	if err != nil {
		return models.VaultSettings{}, nil, fmt.Errorf("list entries: %w", err)
	}
	if oldKey == nil {
		return settings, stored, nil
	}

	entries := make([]models.VaultEntry, 0, len(stored))
	for _, e := range stored {
		plain, err := v.decryptEntry(oldKey, e)
		if errors.Is(err, crypto.ErrCrypto) {
			entries = append(entries, e)
			continue
		}
		if err != nil {
			return models.VaultSettings{}, nil, err
		}

		resealed, err := v.sealEntry(newKey, e, plain)
		if err != nil {
			return models.VaultSettings{}, nil, err
		}
		entries = append(entries, resealed)
	}
	return settings, entries, nil
}

// rekeyAttachments re-seals the attachments of entries under newKey. An
// attachment that fails is left as it is and logged.
func (v *vaultService) rekeyAttachments(ctx context.Context, oldKey, newKey *crypto.Key, entries []models.VaultEntry) {
	if v.attachments == nil {
		return
	}
	log := logger.FromContext(ctx)

	for _, e := range entries {
		list, err := v.attachments.ListAttachments(ctx, e.ID)
		if err != nil {
			log.Err(err).Str("func", "vaultService.rekeyAttachments").Str("entry", e.ID.String()).Msg("listing attachments failed")
			continue
		}
		for _, att := range list {
			data, err := v.cipher.DecryptBytes(oldKey, &att.Blob)
			if err == nil {
				att.Blob, err = v.cipher.EncryptBytes(newKey, data)
				crypto.WipeBytes(data)
			}
			if err == nil {
				err = v.attachments.PutAttachment(ctx, att)
			}
			if err != nil {
				log.Err(err).Str("func", "vaultService.rekeyAttachments").Str("attachment", att.ID).Msg("attachment kept under the old key")
			}
		}
	}
}

// VerifyPin implements VaultService.
func (v *vaultService) VerifyPin(ctx context.Context, pin string) (bool, error) {
	log := logger.FromContext(ctx)

	v.opMu.Lock()
	defer v.opMu.Unlock()

	settings, err := v.storage.GetSettings(ctx)
	if err != nil {
		return false, fmt.Errorf("get settings: %w", err)
	}
	if !settings.HasPin() {
		return false, ErrNoPinSet
	}
	if err = v.validatePin(pin); err != nil {
		return false, err
	}

	now := v.now()
	state, err := v.storage.GetLockout(ctx)
	if err != nil {
		return false, fmt.Errorf("get lockout state: %w", err)
	}
	decision := v.policy.Check(state, now)
	if !decision.Allowed {
		return false, &LockoutError{Remaining: decision.Remaining}
	}

	if err = crypto.CheckKDFVersion(settings.KDFVersion); err != nil {
		return false, err
	}
	salt, err := base64.StdEncoding.DecodeString(settings.SaltB64)
	if err != nil {
		return false, fmt.Errorf("%w: salt is not base64", crypto.ErrInvalidSalt)
	}

	if v.session.IsUnlocked() {
		return v.recheckPin(ctx, pin, salt, settings, decision.State, now)
	}

	attempt, err := v.session.BeginUnlock()
	if err != nil {
		return false, err
	}
	defer attempt.Abort()

	key, err := v.deriver.DeriveKey(ctx, pin, salt)
	if err != nil {
		return false, fmt.Errorf("derive key: %w", err)
	}

	entries, err := v.storage.ListEntries(ctx)
	if err != nil {
		key.Destroy()
		return false, fmt.Errorf("list entries: %w", err)
	}

	ok, err := v.checkKey(ctx, key, settings, entries)
	if err != nil {
		key.Destroy()
		return false, err
	}
	if !ok {
		key.Destroy()
		log.Warn().Str("func", "vaultService.VerifyPin").Msg("wrong pin")
		return false, v.recordFailure(ctx, decision.State, now)
	}

	if err = v.storage.SaveLockout(ctx, v.policy.RecordSuccess()); err != nil {
		key.Destroy()
		return false, fmt.Errorf("save lockout state: %w", err)
	}

	plain, err := v.decryptAll(ctx, key, entries)
	if err != nil {
		key.Destroy()
		return false, err
	}

	if err = v.commit(attempt, key, plain); err != nil {
		return false, err
	}
	return true, nil
}

// recheckPin verifies pin against an already unlocked vault. The lockout
// counts as usual; the session is left alone.
func (v *vaultService) recheckPin(ctx context.Context, pin string, salt []byte, settings *models.VaultSettings, state models.LockoutState, now time.Time) (bool, error) {
	key, err := v.deriver.DeriveKey(ctx, pin, salt)
	if err != nil {
		return false, fmt.Errorf("derive key: %w", err)
	}
	defer key.Destroy()

	entries, err := v.storage.ListEntries(ctx)
	if err != nil {
		return false, fmt.Errorf("list entries: %w", err)
	}
	ok, err := v.checkKey(ctx, key, settings, entries)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, v.recordFailure(ctx, state, now)
	}
	if err = v.storage.SaveLockout(ctx, v.policy.RecordSuccess()); err != nil {
		return false, fmt.Errorf("save lockout state: %w", err)
	}
	return true, nil
}

// checkKey reports whether key opens the vault. The settings canary decides;
// vaults written without one fall back to the first entry whose password
// field is well formed. Only a failed authentication counts as a wrong key.
// A vault with neither accepts the key and gets a canary.
func (v *vaultService) checkKey(ctx context.Context, key *crypto.Key, settings *models.VaultSettings, entries []models.VaultEntry) (bool, error) {
	if settings.Canary != nil {
		text, err := v.cipher.DecryptField(key, settings.Canary)
		if errors.Is(err, crypto.ErrCrypto) {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		return text == canaryPlaintext, nil
	}

	for _, e := range entries {
		if !e.Password.Complete() {
			continue
		}
		_, err := v.cipher.DecryptField(key, e.Password)
		switch {
		case errors.Is(err, crypto.ErrMalformedField):
			logger.FromContext(ctx).Warn().Err(err).Str("func", "vaultService.checkKey").Str("id", e.ID.String()).Msg("skipping malformed entry")
			continue
		case errors.Is(err, crypto.ErrDecryptionFailed):
			return false, nil
		case err != nil:
			return false, err
		}
		return true, v.addCanary(ctx, key, *settings)
	}

	return true, v.addCanary(ctx, key, *settings)
}

func (v *vaultService) addCanary(ctx context.Context, key *crypto.Key, settings models.VaultSettings) error {
	canary, err := v.cipher.EncryptField(key, canaryPlaintext)
	if err != nil {
		return fmt.Errorf("seal canary: %w", err)
	}
	settings.Canary = &canary
	if err = v.storage.SaveSettings(ctx, settings); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	logger.FromContext(ctx).Info().Str("func", "vaultService.addCanary").Msg("canary added to legacy vault")
	return nil
}

func (v *vaultService) recordFailure(ctx context.Context, state models.LockoutState, now time.Time) error {
	next, locked := v.policy.RecordFailure(state, now)
	if err := v.storage.SaveLockout(ctx, next); err != nil {
		return fmt.Errorf("save lockout state: %w", err)
	}
	if locked {
		return &LockoutError{Remaining: v.policy.Cooldown}
	}
	return &WrongPinError{AttemptsLeft: v.policy.AttemptsLeft(next)}
}

// ResetPin implements VaultService.
func (v *vaultService) ResetPin(ctx context.Context) error {
	log := logger.FromContext(ctx)

	v.opMu.Lock()
	defer v.opMu.Unlock()

	// nothing may encrypt under the old key once the wipe starts
	if err := v.session.LockWait(ctx); err != nil {
		log.Err(err).Str("func", "vaultService.ResetPin").Msg("waiting for in-flight operations failed")
		return fmt.Errorf("lock session: %w", err)
	}
	v.dropCache()

	var errs []error
	if err := v.storage.Wipe(ctx); err != nil {
		errs = append(errs, fmt.Errorf("wipe vault: %w", err))
	}
	if v.attachments != nil {
		if err := v.attachments.Wipe(ctx); err != nil {
			errs = append(errs, fmt.Errorf("wipe attachments: %w", err))
		}
	}
	if err := errors.Join(errs...); err != nil {
		log.Err(err).Str("func", "vaultService.ResetPin").Msg("vault reset incomplete")
		return err
	}

	log.Warn().Str("func", "vaultService.ResetPin").Msg("vault reset")
	return nil
}

// unlock moves a Locked session to Unlocked with key and the decrypted
// entries.
func (v *vaultService) unlock(key *crypto.Key, plain []models.PlainEntry) error {
	attempt, err := v.session.BeginUnlock()
	if err != nil {
		key.Destroy()
		return err
	}
	defer attempt.Abort()
	return v.commit(attempt, key, plain)
}

// commit installs the working set before the session turns Unlocked so that
// no entry operation ever sees an unlocked vault without it.
func (v *vaultService) commit(attempt *session.Attempt, key *crypto.Key, plain []models.PlainEntry) error {
	v.setCache(plain)
	if err := attempt.Commit(key); err != nil {
		v.dropCache()
		return err
	}
	return nil
}

func (v *vaultService) validatePin(pin string) error {
	want := v.cfg.PinLength
	if want <= 0 {
		want = config.DefaultPinLength
	}
	if len(pin) != want {
		return fmt.Errorf("%w: want %d digits", ErrInvalidPinFormat, want)
	}
	for i := 0; i < len(pin); i++ {
		if pin[i] < '0' || pin[i] > '9' {
			return fmt.Errorf("%w: want %d digits", ErrInvalidPinFormat, want)
		}
	}
	return nil
}
