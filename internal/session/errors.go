package session

import "errors"

var (
	// ErrVaultLocked is returned by every operation that needs the session
	// key while the vault is not unlocked.
	ErrVaultLocked = errors.New("vault is locked")

	// ErrUnlockInProgress is returned when a second unlock attempt starts
	// while another candidate key is still under test.
	ErrUnlockInProgress = errors.New("unlock already in progress")

	// ErrUnlockAborted is returned by [Attempt.Commit] when the session was
	// locked while the candidate key was being tested.
	ErrUnlockAborted = errors.New("unlock aborted")
)
