package workers

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	tick    = 20 * time.Millisecond
	settle  = 200 * time.Millisecond
	waitFor = time.Second
)

// ── AutoLock ─────────────────────────────────────────────────────────────────

func TestAutoLock_FiresOnceAfterDuration(t *testing.T) {
	var fired atomic.Int32
	a := NewAutoLock(tick, 0, nil, func() { fired.Add(1) })

	a.Start()
	require.Eventually(t, func() bool { return fired.Load() == 1 }, waitFor, tick/4)

	time.Sleep(3 * tick)
	assert.Equal(t, int32(1), fired.Load())
}

func TestAutoLock_WarningBeforeFire(t *testing.T) {
	warned := make(chan time.Duration, 1)
	var fired atomic.Bool

	a := NewAutoLock(5*tick, tick, func(remaining time.Duration) {
		warned <- remaining
	}, func() { fired.Store(true) })

	a.Start()
	defer a.Stop()

	select {
	case remaining := <-warned:
		assert.Equal(t, 4*tick, remaining)
		assert.False(t, fired.Load(), "warning must precede the lock")
	case <-time.After(waitFor):
		t.Fatal("warning never fired")
	}

	require.Eventually(t, fired.Load, waitFor, tick/4)
}

func TestAutoLock_StopCancels(t *testing.T) {
	var fired, warned atomic.Bool
	a := NewAutoLock(3*tick, tick, func(time.Duration) { warned.Store(true) }, func() { fired.Store(true) })

	a.Start()
	a.Stop()

	time.Sleep(settle)
	assert.False(t, fired.Load())
	assert.False(t, warned.Load())
}

func TestAutoLock_ActivityDoesNotExtend(t *testing.T) {
	var fired atomic.Bool
	a := NewAutoLock(3*tick, 0, nil, func() { fired.Store(true) })
	ws := New(a)

	ws.Start()
	defer ws.Stop()
	for i := 0; i < 5; i++ {
		ws.Touch()
		time.Sleep(tick)
	}

	assert.True(t, fired.Load(), "absolute timer ignores activity")
}

func TestAutoLock_RestartRearms(t *testing.T) {
	var fired atomic.Int32
	a := NewAutoLock(5*tick, 0, nil, func() { fired.Add(1) })

	a.Start()
	time.Sleep(3 * tick)
	a.Start()
	time.Sleep(3 * tick)
	assert.Equal(t, int32(0), fired.Load(), "restart must discard the first countdown")

	require.Eventually(t, func() bool { return fired.Load() == 1 }, waitFor, tick/4)
}

func TestAutoLock_WarningIgnoredWhenNotBeforeLock(t *testing.T) {
	var warned atomic.Bool
	a := NewAutoLock(tick, 2*tick, func(time.Duration) { warned.Store(true) }, func() {})

	a.Start()
	time.Sleep(settle)
	assert.False(t, warned.Load())
}

// ── Inactivity ───────────────────────────────────────────────────────────────

func TestInactivity_FiresWhenIdle(t *testing.T) {
	var fired atomic.Bool
	i := NewInactivity(tick, func() { fired.Store(true) })

	i.Start()
	defer i.Stop()
	require.Eventually(t, fired.Load, waitFor, tick/4)
}

func TestInactivity_TouchPostpones(t *testing.T) {
	var fired atomic.Bool
	i := NewInactivity(4*tick, func() { fired.Store(true) })

	i.Start()
	defer i.Stop()
	for n := 0; n < 6; n++ {
		time.Sleep(tick)
		i.Touch()
	}
	assert.False(t, fired.Load(), "touches every tick keep the timer from firing")

	require.Eventually(t, fired.Load, waitFor, tick/4)
}

func TestInactivity_StopCancelsAndIgnoresTouch(t *testing.T) {
	var fired atomic.Bool
	i := NewInactivity(tick, func() { fired.Store(true) })

	i.Start()
	i.Stop()
	i.Touch()

	time.Sleep(settle)
	assert.False(t, fired.Load())
}

func TestInactivity_CallbackMayStop(t *testing.T) {
	done := make(chan struct{})
	var i *Inactivity
	i = NewInactivity(tick, func() {
		i.Stop()
		close(done)
	})

	i.Start()
	select {
	case <-done:
	case <-time.After(waitFor):
		t.Fatal("callback did not run")
	}
}
