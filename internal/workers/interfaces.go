// Package workers provides the background timers that run while the vault is
// unlocked.
//
// Every worker is armed with Start on the Unlocked transition and disarmed
// with Stop on the Locked transition. Workers never import the session; they
// are handed plain callbacks, which keeps them testable on their own.
package workers

// Worker is a background job bound to one unlocked window.
//
// Start arms the worker; calling it again re-arms it from scratch. Stop
// disarms it: a callback that has not begun by the time Stop returns never
// runs. Both must be safe to call from any goroutine, including from a
// worker's own callback.
type Worker interface {
	Start()
	Stop()
}

// Toucher is implemented by workers that react to user activity.
type Toucher interface {
	Touch()
}
