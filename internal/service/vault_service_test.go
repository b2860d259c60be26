// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/base64"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-mempass/internal/config"
	"github.com/MKhiriev/go-mempass/internal/crypto"
	"github.com/MKhiriev/go-mempass/internal/logger"
	"github.com/MKhiriev/go-mempass/internal/session"
	"github.com/MKhiriev/go-mempass/internal/store"
	"github.com/MKhiriev/go-mempass/models"
)

const (
	testPin  = "123456"
	otherPin = "654321"
)

var testStart = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

// cheapParams keeps Argon2 fast enough for unit tests.
func cheapParams() crypto.Argon2Params {
	return crypto.Argon2Params{Time: 1, MemoryKiB: 64, Threads: 1, KeyLen: 32}
}

func testVaultConfig() config.Vault {
	cfg := config.Defaults().Vault
	cfg.ExportIterations = crypto.MinExportIterations
	return cfg
}

// testClock is a settable clock shared with the service under test.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type vaultFixture struct {
	svc      *vaultService
	sess     *session.Session
	storages *store.Storages
	clock    *testClock
}

func newVaultFixture(t *testing.T) *vaultFixture {
	t.Helper()

	vault, err := store.NewMemoryStorage(store.MemoryDSN)
	require.NoError(t, err)
	storages := &store.Storages{Vault: vault, Attachments: store.NewMemoryAttachmentStorage()}

	sess := session.New(session.Options{}, logger.Nop())
	svc := NewVaultService(storages, sess, crypto.NewArgon2Deriver(cheapParams()), crypto.NewFieldCipher(), testVaultConfig(), logger.Nop()).(*vaultService)

	clock := &testClock{now: testStart}
	svc.now = clock.Now

	t.Cleanup(func() { sess.Lock() })
	return &vaultFixture{svc: svc, sess: sess, storages: storages, clock: clock}
}

// unlockedFixture returns a vault with testPin set, hence unlocked.
func unlockedFixture(t *testing.T) *vaultFixture {
	t.Helper()
	f := newVaultFixture(t)
	require.NoError(t, f.svc.SetPin(testContext(), testPin))
	require.True(t, f.svc.IsUnlocked())
	return f
}

func testContext() context.Context {
	return logger.Nop().WithContext(context.Background())
}

func (f *vaultFixture) add(t *testing.T, service, username, password string) models.PlainEntry {
	t.Helper()
	e, err := f.svc.AddEntry(testContext(), models.NewEntry{Service: service, Username: username, Password: password})
	require.NoError(t, err)
	f.clock.Advance(time.Second)
	return e
}

func (f *vaultFixture) relock(t *testing.T, pin string) {
	t.Helper()
	require.True(t, f.svc.Lock())
	ok, err := f.svc.VerifyPin(testContext(), pin)
	require.NoError(t, err)
	require.True(t, ok)
}

// ── HasPin / SetPin ──────────────────────────────────────────────────────────

func TestVaultService_HasPin(t *testing.T) {
	f := newVaultFixture(t)
	ctx := testContext()

	has, err := f.svc.HasPin(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	require.NoError(t, f.svc.SetPin(ctx, testPin))

	has, err = f.svc.HasPin(ctx)
	require.NoError(t, err)
	assert.True(t, has)
}

func TestVaultService_SetPin_InvalidFormat(t *testing.T) {
	f := newVaultFixture(t)

	for _, pin := range []string{"", "12345", "1234567", "12a456", "12 456", "١٢٣٤٥٦", "123.56"} {
		t.Run(pin, func(t *testing.T) {
			err := f.svc.SetPin(testContext(), pin)
			assert.ErrorIs(t, err, ErrInvalidPinFormat)
		})
	}

	has, err := f.svc.HasPin(testContext())
	require.NoError(t, err)
	assert.False(t, has)
}

func TestVaultService_SetPin_FirstTimeUnlocksAndWritesCanary(t *testing.T) {
	f := newVaultFixture(t)
	ctx := testContext()

	require.NoError(t, f.svc.SetPin(ctx, testPin))

	assert.True(t, f.svc.IsUnlocked())
	settings, err := f.storages.Vault.GetSettings(ctx)
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, models.KDFArgon2idV1, settings.KDFVersion)
	assert.True(t, settings.Canary.Complete())

	salt, err := base64.StdEncoding.DecodeString(settings.SaltB64)
	require.NoError(t, err)
	assert.Len(t, salt, crypto.SaltSize)
}

func TestVaultService_SetPin_ChangeRequiresUnlock(t *testing.T) {
	f := unlockedFixture(t)
	f.svc.Lock()

	err := f.svc.SetPin(testContext(), otherPin)
	assert.ErrorIs(t, err, session.ErrVaultLocked)
}

func TestVaultService_SetPin_ChangeReencryptsEntries(t *testing.T) {
	f := unlockedFixture(t)
	ctx := testContext()
	f.add(t, "github", "octocat", "hunter2")
	f.add(t, "mail", "", "s3cret")

	before, err := f.storages.Vault.GetSettings(ctx)
	require.NoError(t, err)

	require.NoError(t, f.svc.SetPin(ctx, otherPin))
	assert.True(t, f.svc.IsUnlocked())

	after, err := f.storages.Vault.GetSettings(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, before.SaltB64, after.SaltB64)

	f.svc.Lock()
	ok, err := f.svc.VerifyPin(ctx, testPin)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrWrongPin)

	f.relock(t, otherPin)
	list, err := f.svc.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "hunter2", list[0].Password)
	assert.Equal(t, "octocat", list[0].Username)
	assert.Equal(t, "s3cret", list[1].Password)
	for _, e := range list {
		assert.False(t, e.Unreadable)
	}
}

func TestVaultService_SetPin_KeepsUnreadableEntriesUntouched(t *testing.T) {
	f := unlockedFixture(t)
	ctx := testContext()
	f.add(t, "github", "octocat", "hunter2")

	foreign := foreignEntry(t, "broken")
	require.NoError(t, f.storages.Vault.SaveEntry(ctx, foreign))

	require.NoError(t, f.svc.SetPin(ctx, otherPin))

	stored, err := f.storages.Vault.GetEntry(ctx, foreign.ID)
	require.NoError(t, err)
	assert.Equal(t, *foreign.Password, *stored.Password)
}

// foreignEntry is sealed under a key the vault does not know.
func foreignEntry(t *testing.T, id string) models.VaultEntry {
	t.Helper()
	key := crypto.NewKey(make([]byte, 32))
	defer key.Destroy()

	pw, err := crypto.NewFieldCipher().EncryptField(key, "unreachable")
	require.NoError(t, err)
	return models.VaultEntry{
		ID:       models.EntryID(id),
		Service:  "foreign",
		Password: &pw,
		Created:  testStart.Add(time.Hour),
		Updated:  testStart.Add(time.Hour),
		Version:  1,
	}
}

// ── VerifyPin ────────────────────────────────────────────────────────────────

func TestVaultService_VerifyPin_NoPinSet(t *testing.T) {
	f := newVaultFixture(t)

	ok, err := f.svc.VerifyPin(testContext(), testPin)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrNoPinSet)
}

func TestVaultService_VerifyPin_UnlocksAndDecrypts(t *testing.T) {
	f := unlockedFixture(t)
	added := f.add(t, "github", "octocat", "hunter2")

	f.relock(t, testPin)

	got, err := f.svc.GetEntry(testContext(), added.ID)
	require.NoError(t, err)
	assert.Equal(t, "hunter2", got.Password)
	assert.Equal(t, "octocat", got.Username)
}

func TestVaultService_VerifyPin_MalformedIsNotCounted(t *testing.T) {
	f := unlockedFixture(t)
	f.svc.Lock()
	ctx := testContext()

	for range 10 {
		ok, err := f.svc.VerifyPin(ctx, "12ab56")
		assert.False(t, ok)
		assert.ErrorIs(t, err, ErrInvalidPinFormat)
	}

	state, err := f.storages.Vault.GetLockout(ctx)
	require.NoError(t, err)
	assert.Zero(t, state.FailedAttempts)
	assert.Nil(t, state.LockUntil)
}

func TestVaultService_VerifyPin_WrongPinReportsAttemptsLeft(t *testing.T) {
	f := unlockedFixture(t)
	f.svc.Lock()

	ok, err := f.svc.VerifyPin(testContext(), otherPin)

	assert.False(t, ok)
	require.ErrorIs(t, err, ErrWrongPin)
	assert.Contains(t, err.Error(), "4 attempts left")
	var wrong *WrongPinError
	require.ErrorAs(t, err, &wrong)
	assert.Equal(t, 4, wrong.AttemptsLeft)
	assert.False(t, f.svc.IsUnlocked())
	assert.Equal(t, session.Locked, f.sess.State())
}

func TestVaultService_VerifyPin_Lockout(t *testing.T) {
	f := unlockedFixture(t)
	f.svc.Lock()
	ctx := testContext()

	for i := range 4 {
		_, err := f.svc.VerifyPin(ctx, otherPin)
		require.ErrorIs(t, err, ErrWrongPin, "attempt %d", i+1)
	}

	_, err := f.svc.VerifyPin(ctx, otherPin)
	var lockErr *LockoutError
	require.ErrorAs(t, err, &lockErr)
	assert.Equal(t, 10*time.Minute, lockErr.Remaining)
	assert.ErrorIs(t, err, ErrLockedOut)

	state, err := f.storages.Vault.GetLockout(ctx)
	require.NoError(t, err)
	assert.Zero(t, state.FailedAttempts)
	require.NotNil(t, state.LockUntil)

	// the right PIN is refused during the cooldown and not counted
	f.clock.Advance(3 * time.Minute)
	ok, err := f.svc.VerifyPin(ctx, testPin)
	assert.False(t, ok)
	require.ErrorAs(t, err, &lockErr)
	assert.Equal(t, 7*time.Minute, lockErr.Remaining)

	f.clock.Advance(7 * time.Minute)
	ok, err = f.svc.VerifyPin(ctx, testPin)
	require.NoError(t, err)
	assert.True(t, ok)

	state, err = f.storages.Vault.GetLockout(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.LockoutState{}, state)
}

func TestVaultService_VerifyPin_SuccessResetsCounter(t *testing.T) {
	f := unlockedFixture(t)
	f.svc.Lock()
	ctx := testContext()

	_, err := f.svc.VerifyPin(ctx, otherPin)
	require.ErrorIs(t, err, ErrWrongPin)
	_, err = f.svc.VerifyPin(ctx, otherPin)
	require.ErrorIs(t, err, ErrWrongPin)

	ok, err := f.svc.VerifyPin(ctx, testPin)
	require.NoError(t, err)
	require.True(t, ok)

	state, err := f.storages.Vault.GetLockout(ctx)
	require.NoError(t, err)
	assert.Zero(t, state.FailedAttempts)
}

func TestVaultService_VerifyPin_WhileUnlocked(t *testing.T) {
	f := unlockedFixture(t)
	ctx := testContext()

	ok, err := f.svc.VerifyPin(ctx, testPin)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, f.svc.IsUnlocked())

	ok, err = f.svc.VerifyPin(ctx, otherPin)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrWrongPin)
	assert.True(t, f.svc.IsUnlocked(), "a failed re-check must not lock the vault")

	state, err := f.storages.Vault.GetLockout(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, state.FailedAttempts)
}

func TestVaultService_VerifyPin_UnreadableEntryIsMarked(t *testing.T) {
	f := unlockedFixture(t)
	ctx := testContext()
	good := f.add(t, "github", "octocat", "hunter2")
	require.NoError(t, f.storages.Vault.SaveEntry(ctx, foreignEntry(t, "broken")))

	f.relock(t, testPin)

	list, err := f.svc.ListEntries(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	for _, e := range list {
		switch e.ID {
		case good.ID:
			assert.False(t, e.Unreadable)
			assert.Equal(t, "hunter2", e.Password)
		case "broken":
			assert.True(t, e.Unreadable)
			assert.Empty(t, e.Password)
		default:
			t.Fatalf("unexpected entry %s", e.ID)
		}
	}
}

func TestVaultService_VerifyPin_LegacyVaultWithoutCanary(t *testing.T) {
	f := newVaultFixture(t)
	ctx := testContext()

	salt, err := crypto.GenerateSalt()
	require.NoError(t, err)
	key, err := crypto.NewArgon2Deriver(cheapParams()).DeriveKey(ctx, testPin, salt)
	require.NoError(t, err)
	pw, err := crypto.NewFieldCipher().EncryptField(key, "legacy-secret")
	require.NoError(t, err)
	key.Destroy()

	require.NoError(t, f.storages.Vault.ReplaceVault(ctx,
		&models.VaultSettings{SaltB64: base64.StdEncoding.EncodeToString(salt), KDFVersion: models.KDFArgon2idV1},
		[]models.VaultEntry{{ID: "1", Service: "old", Password: &pw, Created: testStart, Updated: testStart, Version: 1}},
	))

	ok, err := f.svc.VerifyPin(ctx, otherPin)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrWrongPin)

	ok, err = f.svc.VerifyPin(ctx, testPin)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := f.svc.GetEntry(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "legacy-secret", got.Password)

	settings, err := f.storages.Vault.GetSettings(ctx)
	require.NoError(t, err)
	assert.True(t, settings.Canary.Complete(), "a canary is added on first unlock")
}

func TestVaultService_VerifyPin_LegacyVaultSkipsMalformedEntry(t *testing.T) {
	f := newVaultFixture(t)
	ctx := testContext()

	salt, err := crypto.GenerateSalt()
	require.NoError(t, err)
	key, err := crypto.NewArgon2Deriver(cheapParams()).DeriveKey(ctx, testPin, salt)
	require.NoError(t, err)
	pw, err := crypto.NewFieldCipher().EncryptField(key, "legacy-secret")
	require.NoError(t, err)
	key.Destroy()

	broken := models.EncryptedField{IV: "not base64!", CT: pw.CT, Tag: pw.Tag}
	require.NoError(t, f.storages.Vault.ReplaceVault(ctx,
		&models.VaultSettings{SaltB64: base64.StdEncoding.EncodeToString(salt), KDFVersion: models.KDFArgon2idV1},
		[]models.VaultEntry{
			{ID: "1", Service: "corrupt", Password: &broken, Created: testStart, Updated: testStart, Version: 1},
			{ID: "2", Service: "old", Password: &pw, Created: testStart, Updated: testStart, Version: 1},
		},
	))

	ok, err := f.svc.VerifyPin(ctx, otherPin)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrWrongPin, "the next readable entry still rejects a wrong pin")

	ok, err = f.svc.VerifyPin(ctx, testPin)
	require.NoError(t, err, "a corrupt first entry must not turn the right pin into a wrong one")
	require.True(t, ok)

	got, err := f.svc.GetEntry(ctx, "2")
	require.NoError(t, err)
	assert.Equal(t, "legacy-secret", got.Password)

	state, err := f.storages.Vault.GetLockout(ctx)
	require.NoError(t, err)
	assert.Zero(t, state.FailedAttempts)
}

func TestVaultService_VerifyPin_UnknownKDF(t *testing.T) {
	f := unlockedFixture(t)
	ctx := testContext()
	f.svc.Lock()

	settings, err := f.storages.Vault.GetSettings(ctx)
	require.NoError(t, err)
	settings.KDFVersion = "scrypt-v9"
	require.NoError(t, f.storages.Vault.SaveSettings(ctx, *settings))

	ok, err := f.svc.VerifyPin(ctx, testPin)
	assert.False(t, ok)
	assert.ErrorIs(t, err, crypto.ErrUnsupportedKDF)
}

// ── Lock ─────────────────────────────────────────────────────────────────────

func TestVaultService_Lock_DropsEntries(t *testing.T) {
	f := unlockedFixture(t)
	ctx := testContext()
	f.add(t, "github", "octocat", "hunter2")

	assert.True(t, f.svc.Lock())

	assert.Nil(t, f.svc.cache)
	_, err := f.svc.ListEntries(ctx)
	assert.ErrorIs(t, err, session.ErrVaultLocked)
	_, err = f.svc.AddEntry(ctx, models.NewEntry{Service: "x", Password: "y"})
	assert.ErrorIs(t, err, session.ErrVaultLocked)
}

func TestVaultService_Lock_DeferredWhileHeld(t *testing.T) {
	f := unlockedFixture(t)
	ctx := testContext()
	f.add(t, "github", "octocat", "hunter2")

	release, err := f.sess.Hold()
	require.NoError(t, err)

	assert.False(t, f.svc.Lock())
	assert.True(t, f.svc.IsUnlocked(), "the key stays until the holder releases")
	_, err = f.svc.ListEntries(ctx)
	assert.ErrorIs(t, err, session.ErrVaultLocked, "no new operation starts once a lock is pending")

	release()

	assert.False(t, f.svc.IsUnlocked())
	assert.Nil(t, f.svc.cache)
}

// ── ResetPin ─────────────────────────────────────────────────────────────────

func TestVaultService_ResetPin(t *testing.T) {
	f := unlockedFixture(t)
	ctx := testContext()
	e := f.add(t, "github", "octocat", "hunter2")
	require.NoError(t, f.storages.Attachments.PutAttachment(ctx, models.Attachment{ID: "a1", EntryID: e.ID, Name: "f"}))
	_, err := f.svc.VerifyPin(ctx, otherPin)
	require.ErrorIs(t, err, ErrWrongPin)

	require.NoError(t, f.svc.ResetPin(ctx))

	assert.False(t, f.svc.IsUnlocked())
	has, err := f.svc.HasPin(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	entries, err := f.storages.Vault.ListEntries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries)
	state, err := f.storages.Vault.GetLockout(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.LockoutState{}, state)
	_, err = f.storages.Attachments.GetAttachment(ctx, "a1")
	assert.ErrorIs(t, err, store.ErrAttachmentNotFound)

	// a fresh PIN can be set afterwards
	require.NoError(t, f.svc.SetPin(ctx, otherPin))
	assert.True(t, f.svc.IsUnlocked())
}

func TestVaultService_ResetPin_WorksWhileLocked(t *testing.T) {
	f := unlockedFixture(t)
	f.svc.Lock()

	require.NoError(t, f.svc.ResetPin(testContext()))

	ok, err := f.svc.VerifyPin(testContext(), testPin)
	assert.False(t, ok)
	assert.ErrorIs(t, err, ErrNoPinSet)
}

func TestVaultService_ResetPin_WaitsForHolders(t *testing.T) {
	f := unlockedFixture(t)
	ctx := testContext()
	f.add(t, "github", "octocat", "hunter2")

	release, err := f.sess.Hold()
	require.NoError(t, err)

	done := make(chan error, 1)
	go func() { done <- f.svc.ResetPin(ctx) }()

	assert.Eventually(t, func() bool {
		r, err := f.sess.Hold()
		if err == nil {
			r()
			return false
		}
		return errors.Is(err, session.ErrVaultLocked)
	}, time.Second, 5*time.Millisecond, "the pending reset must refuse new holds")

	select {
	case <-done:
		t.Fatal("ResetPin returned while the session was still held")
	case <-time.After(50 * time.Millisecond):
	}

	release()
	require.NoError(t, <-done)

	assert.False(t, f.svc.IsUnlocked())
	has, err := f.svc.HasPin(ctx)
	require.NoError(t, err)
	assert.False(t, has)

	_, err = f.svc.AddEntry(ctx, models.NewEntry{Service: "after", Password: "pw"})
	assert.ErrorIs(t, err, session.ErrVaultLocked)
	entries, err := f.storages.Vault.ListEntries(ctx)
	require.NoError(t, err)
	assert.Empty(t, entries, "no entry may be sealed under the wiped key")
}

func TestVaultService_ResetPin_ContextEndsBeforeLock(t *testing.T) {
	f := unlockedFixture(t)
	f.add(t, "github", "octocat", "hunter2")

	release, err := f.sess.Hold()
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(testContext(), 20*time.Millisecond)
	defer cancel()

	err = f.svc.ResetPin(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	entries, err := f.storages.Vault.ListEntries(testContext())
	require.NoError(t, err)
	assert.Len(t, entries, 1, "nothing is wiped when the lock never happened")

	release()
	assert.False(t, f.svc.IsUnlocked())
}

// ── concurrency ──────────────────────────────────────────────────────────────

func TestVaultService_ConcurrentAdds(t *testing.T) {
	f := unlockedFixture(t)
	ctx := testContext()

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := range 20 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.AddEntry(ctx, models.NewEntry{Service: "svc", Username: string(rune('a' + i)), Password: "pw"})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	stored, err := f.storages.Vault.ListEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, stored, 20)

	list, err := f.svc.ListEntries(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 20)
}

func TestVaultService_LockDuringOperationsNeverLeaksPlaintext(t *testing.T) {
	f := unlockedFixture(t)
	ctx := testContext()
	f.add(t, "github", "octocat", "hunter2")

	var wg sync.WaitGroup
	for range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.svc.ListEntries(ctx)
			if err != nil && !errors.Is(err, session.ErrVaultLocked) {
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	f.svc.Lock()
	wg.Wait()

	assert.False(t, f.svc.IsUnlocked())
	assert.Nil(t, f.svc.cache)
}
