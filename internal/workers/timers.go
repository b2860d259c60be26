// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"sync"
	"time"
)

// AutoLock fires once, a fixed time after Start, regardless of activity. An
// optional warning fires earlier with the time left until the lock.
type AutoLock struct {
	after  time.Duration
	warnAt time.Duration
	onWarn func(remaining time.Duration)
	onFire func()

	mu    sync.Mutex
	gen   uint64
	timer *time.Timer
	warn  *time.Timer
}

// NewAutoLock returns an absolute timer that calls onFire after d. If warnAt
// is positive, shorter than d and onWarn is set, onWarn is called warnAt
// after Start.
func NewAutoLock(d, warnAt time.Duration, onWarn func(remaining time.Duration), onFire func()) *AutoLock {
	return &AutoLock{after: d, warnAt: warnAt, onWarn: onWarn, onFire: onFire}
}

// Start implements [Worker].
func (a *AutoLock) Start() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.stopLocked()
	gen := a.gen

	if a.after > 0 {
		a.timer = time.AfterFunc(a.after, func() {
			if a.current(gen) {
				a.onFire()
			}
		})
	}
	if a.onWarn != nil && a.warnAt > 0 && a.warnAt < a.after {
		remaining := a.after - a.warnAt
		a.warn = time.AfterFunc(a.warnAt, func() {
			if a.current(gen) {
				a.onWarn(remaining)
			}
		})
	}
}

// Stop implements [Worker].
func (a *AutoLock) Stop() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.stopLocked()
}

func (a *AutoLock) stopLocked() {
	a.gen++
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	if a.warn != nil {
		a.warn.Stop()
		a.warn = nil
	}
}

func (a *AutoLock) current(gen uint64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return gen == a.gen
}

// Inactivity fires when no Touch has been observed for the idle duration.
type Inactivity struct {
	idle   time.Duration
	onFire func()

	mu      sync.Mutex
	gen     uint64
	running bool
	timer   *time.Timer
}

// NewInactivity returns a timer that calls onFire after idle without Touch.
func NewInactivity(idle time.Duration, onFire func()) *Inactivity {
	return &Inactivity{idle: idle, onFire: onFire}
}

// Start implements [Worker].
func (i *Inactivity) Start() {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.running = true
	i.armLocked()
}

// Touch restarts the idle countdown. It is a no-op while stopped.
func (i *Inactivity) Touch() {
	i.mu.Lock()
	defer i.mu.Unlock()

	if i.running {
		i.armLocked()
	}
}

// Stop implements [Worker].
func (i *Inactivity) Stop() {
	i.mu.Lock()
	defer i.mu.Unlock()

	i.running = false
	i.disarmLocked()
}

func (i *Inactivity) armLocked() {
	i.disarmLocked()
	if i.idle <= 0 {
		return
	}

	gen := i.gen
	i.timer = time.AfterFunc(i.idle, func() {
		i.mu.Lock()
		fire := i.running && gen == i.gen
		i.mu.Unlock()
		if fire {
			i.onFire()
		}
	})
}

func (i *Inactivity) disarmLocked() {
	i.gen++
	if i.timer != nil {
		i.timer.Stop()
		i.timer = nil
	}
}
