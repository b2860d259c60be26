package session

import "github.com/MKhiriev/go-mempass/internal/crypto"

// Attempt is an unlock in progress.
type Attempt struct {
	s     *Session
	epoch uint64
	done  bool
}

// Commit adopts key and moves the session to Unlocked. It fails with
// [ErrUnlockAborted] if the session was locked since BeginUnlock; the key is
// destroyed in that case.
func (a *Attempt) Commit(key *crypto.Key) error {
	s := a.s
	s.mu.Lock()

	if a.done || s.state != Unlocking || s.epoch != a.epoch {
		a.done = true
		s.mu.Unlock()
		key.Destroy()
		return ErrUnlockAborted
	}
	a.done = true

	s.key = key
	s.state = Unlocked
	s.holds = 0
	s.lockPending = false
	s.workers.Start()
	s.mu.Unlock()

	s.log.Info().Str("func", "Attempt.Commit").Msg("vault unlocked")

	s.hooksMu.RLock()
	hooks := append([]func(){}, s.onUnlock...)
	s.hooksMu.RUnlock()
	runAll(hooks)

	return nil
}

// Abort returns the session to Locked. It is a no-op after Commit or after
// the session was locked by someone else, so it is safe to defer.
func (a *Attempt) Abort() {
	s := a.s
	s.mu.Lock()
	defer s.mu.Unlock()

	if a.done {
		return
	}
	a.done = true

	if s.state == Unlocking && s.epoch == a.epoch {
		s.state = Locked
		s.epoch++
	}
}
