// Package lockout decides whether a PIN attempt may proceed.
//
// Policy is pure: it never reads the clock or touches storage. Callers pass
// the persisted [models.LockoutState] and the current time and persist
// whatever state comes back.
package lockout

import (
	"time"

	"github.com/MKhiriev/go-mempass/models"
)

// Defaults used when a Policy field is zero.
const (
	DefaultThreshold = 5
	DefaultCooldown  = 10 * time.Minute
)

// Policy is a consecutive-failure lockout: Threshold failures in a row start a
// Cooldown during which attempts are refused without being counted.
type Policy struct {
	Threshold int
	Cooldown  time.Duration
}

// Decision is the outcome of [Policy.Check].
type Decision struct {
	// Allowed is false while a cooldown is running.
	Allowed bool
	// Remaining is the time left in the cooldown when Allowed is false.
	Remaining time.Duration
	// State is the state to continue with. A served cooldown comes back
	// cleared.
	State models.LockoutState
}

// NewPolicy returns a Policy, substituting defaults for non-positive values.
func NewPolicy(threshold int, cooldown time.Duration) Policy {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return Policy{Threshold: threshold, Cooldown: cooldown}
}

// Check gates an attempt. It is rejected iff now is before LockUntil.
func (p Policy) Check(state models.LockoutState, now time.Time) Decision {
	if state.LockUntil != nil {
		if now.Before(*state.LockUntil) {
			return Decision{Allowed: false, Remaining: state.LockUntil.Sub(now), State: state}
		}
		// cooldown served: the tally starts over
		return Decision{Allowed: true, State: models.LockoutState{}}
	}
	return Decision{Allowed: true, State: state}
}

// RecordFailure counts a wrong PIN. Reaching the threshold starts the
// cooldown and resets the tally to zero; the returned bool reports that.
func (p Policy) RecordFailure(state models.LockoutState, now time.Time) (models.LockoutState, bool) {
	p = NewPolicy(p.Threshold, p.Cooldown)

	attempts := state.FailedAttempts + 1
	if attempts >= p.Threshold {
		until := now.Add(p.Cooldown)
		return models.LockoutState{FailedAttempts: 0, LockUntil: &until}, true
	}
	return models.LockoutState{FailedAttempts: attempts}, false
}

// RecordSuccess clears the tally.
func (p Policy) RecordSuccess() models.LockoutState {
	return models.LockoutState{}
}

// AttemptsLeft reports how many failures remain before a lockout.
func (p Policy) AttemptsLeft(state models.LockoutState) int {
	p = NewPolicy(p.Threshold, p.Cooldown)
	if left := p.Threshold - state.FailedAttempts; left > 0 {
		return left
	}
	return 0
}
