// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the live vault key and the Locked → Unlocking →
// Unlocked → Locked lifecycle around it.
//
// A *Session is the one handle shared by every collaborator that needs the
// key. The key itself is never exposed as a field: callers borrow it through
// [Session.WithKey], which fails with [ErrVaultLocked] when there is no key.
// Operations that encrypt and then persist take a [Session.Hold]; a Lock
// requested while holds are outstanding is deferred until the last one is
// released, never dropped. No new hold is granted while such a lock is
// pending. [Session.LockWait] blocks until the deferred lock has happened.
//
// Hooks registered with OnUnlock, OnLock and OnAutoLockWarning run on the
// goroutine that caused the transition, after the session's own mutex has
// been released. A hook may call back into the session.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-mempass/internal/crypto"
	"github.com/MKhiriev/go-mempass/internal/logger"
	"github.com/MKhiriev/go-mempass/internal/workers"
)

// Default timer settings.
const (
	DefaultAutoLock   = 5 * time.Minute
	DefaultWarning    = 4 * time.Minute
	DefaultInactivity = 90 * time.Second
)

// Options configures the session timers. A zero duration disables the
// corresponding timer.
type Options struct {
	// AutoLock is the absolute lifetime of an unlocked window.
	AutoLock time.Duration
	// Warning is when, measured from unlock, the auto-lock warning fires.
	Warning time.Duration
	// Inactivity is how long the session may go without Touch.
	Inactivity time.Duration
}

// DefaultOptions returns the production timer settings.
func DefaultOptions() Options {
	return Options{
		AutoLock:   DefaultAutoLock,
		Warning:    DefaultWarning,
		Inactivity: DefaultInactivity,
	}
}

// Session is the vault session handle.
type Session struct {
	mu          sync.Mutex
	state       State
	key         *crypto.Key
	epoch       uint64
	holds       int
	lockPending bool
	lockedCh    chan struct{}
	workers     *workers.Workers

	hooksMu   sync.RWMutex
	onUnlock  []func()
	onLock    []func()
	onWarning []func(remaining time.Duration)

	log *logger.Logger
}

// New returns a Locked session with timers configured from opts.
func New(opts Options, log *logger.Logger) *Session {
	if log == nil {
		log = logger.Nop()
	}

	s := &Session{state: Locked, log: log}
	s.workers = workers.New(
		workers.NewAutoLock(opts.AutoLock, opts.Warning, s.fireWarning, s.timerLock("auto-lock")),
		workers.NewInactivity(opts.Inactivity, s.timerLock("inactivity")),
	)
	return s
}

// State returns the current lifecycle state.
func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// IsUnlocked reports whether a session key is held.
func (s *Session) IsUnlocked() bool {
	return s.State() == Unlocked
}

// Touch records user activity and postpones the inactivity lock.
func (s *Session) Touch() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == Unlocked {
		s.workers.Touch()
	}
}

// WithKey lends the session key to fn. The session cannot lock while fn
// runs; a lock requested meanwhile happens right after fn returns.
func (s *Session) WithKey(fn func(key *crypto.Key) error) error {
	release, err := s.Hold()
	if err != nil {
		return err
	}
	defer release()

	s.mu.Lock()
	key := s.key
	s.mu.Unlock()

	return fn(key)
}

// Hold marks an encrypt-then-persist operation as in flight. The returned
// release func must be called exactly once; extra calls are ignored. Hold
// fails with [ErrVaultLocked] once a lock is pending.
func (s *Session) Hold() (release func(), err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Unlocked || s.lockPending {
		return nil, ErrVaultLocked
	}
	s.holds++

	var once sync.Once
	return func() { once.Do(s.release) }, nil
}

func (s *Session) release() {
	s.mu.Lock()
	s.holds--
	if s.holds > 0 || !s.lockPending {
		s.mu.Unlock()
		return
	}

	s.log.Debug().Str("func", "Session.release").Msg("running deferred lock")
	hooks := s.lockLocked()
	s.mu.Unlock()

	runAll(hooks)
}

// Lock discards the key and moves the session to Locked. If an operation
// holds the session, the lock is deferred until it releases and Lock returns
// false. Locking during Unlocking aborts the attempt.
func (s *Session) Lock() bool {
	return s.requestLock() == nil
}

// LockWait locks the session like Lock but, when the lock is deferred, waits
// until the last hold is released. It returns ctx.Err() if ctx ends first;
// the lock stays pending in that case.
func (s *Session) LockWait(ctx context.Context) error {
	locked := s.requestLock()
	if locked == nil {
		return nil
	}

	select {
	case <-locked:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// requestLock returns nil when the session is Locked on return, or a channel
// that is closed once the deferred lock has run.
func (s *Session) requestLock() <-chan struct{} {
	s.mu.Lock()

	switch s.state {
	case Locked:
		s.mu.Unlock()
		return nil
	case Unlocking:
		s.state = Locked
		s.epoch++
		s.mu.Unlock()
		s.log.Debug().Str("func", "Session.Lock").Msg("unlock attempt aborted by lock")
		return nil
	}

	if s.holds > 0 {
		s.lockPending = true
		if s.lockedCh == nil {
			s.lockedCh = make(chan struct{})
		}
		locked := s.lockedCh
		holds := s.holds
		s.mu.Unlock()
		s.log.Debug().Str("func", "Session.Lock").Int("holds", holds).Msg("lock deferred until in-flight operations finish")
		return locked
	}

	hooks := s.lockLocked()
	s.mu.Unlock()

	runAll(hooks)
	return nil
}

// lockLocked performs the transition to Locked. s.mu must be held. It
// returns the OnLock hooks to run once s.mu is released.
func (s *Session) lockLocked() []func() {
	s.workers.Stop()
	s.key.Destroy()
	s.key = nil
	s.state = Locked
	s.epoch++
	s.lockPending = false
	if s.lockedCh != nil {
		close(s.lockedCh)
		s.lockedCh = nil
	}

	s.log.Info().Str("func", "Session.Lock").Msg("vault locked")

	s.hooksMu.RLock()
	defer s.hooksMu.RUnlock()
	return append([]func(){}, s.onLock...)
}

// Rekey replaces the key of an unlocked session, destroying the old one. The
// timers keep running from the original unlock.
func (s *Session) Rekey(key *crypto.Key) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Unlocked {
		return ErrVaultLocked
	}

	old := s.key
	s.key = key
	if old != key {
		old.Destroy()
	}
	return nil
}

// BeginUnlock moves a Locked session to Unlocking. The returned Attempt must
// be committed with the verified key or aborted.
func (s *Session) BeginUnlock() (*Attempt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state != Locked {
		return nil, ErrUnlockInProgress
	}

	s.state = Unlocking
	s.epoch++
	return &Attempt{s: s, epoch: s.epoch}, nil
}

// OnUnlock registers fn to run after every Locked → Unlocked transition.
func (s *Session) OnUnlock(fn func()) {
	s.hooksMu.Lock()
	defer s.hooksMu.Unlock()
	s.onUnlock = append(s.onUnlock, fn)
}

// OnLock registers fn to run after every transition to Locked.
func (s *Session) OnLock(fn func()) {
	s.hooksMu.Lock()
	defer s.hooksMu.Unlock()
	s.onLock = append(s.onLock, fn)
}

// OnAutoLockWarning registers fn to run when the auto-lock warning fires.
func (s *Session) OnAutoLockWarning(fn func(remaining time.Duration)) {
	s.hooksMu.Lock()
	defer s.hooksMu.Unlock()
	s.onWarning = append(s.onWarning, fn)
}

func (s *Session) fireWarning(remaining time.Duration) {
	s.log.Debug().Str("func", "Session.fireWarning").Dur("remaining", remaining).Msg("auto-lock warning")

	s.hooksMu.RLock()
	hooks := append([]func(time.Duration){}, s.onWarning...)
	s.hooksMu.RUnlock()

	for _, fn := range hooks {
		fn(remaining)
	}
}

func (s *Session) timerLock(reason string) func() {
	return func() {
		s.log.Info().Str("func", "Session.timerLock").Str("reason", reason).Msg("timer fired")
		s.Lock()
	}
}

func runAll(hooks []func()) {
	for _, fn := range hooks {
		fn()
	}
}
