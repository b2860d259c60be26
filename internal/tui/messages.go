package tui

import (
	"time"

	"github.com/MKhiriev/go-mempass/models"
)

// Page names registered with the [RootModel].
const (
	pageSetPin   = "setpin"
	pageUnlock   = "unlock"
	pageList     = "list"
	pageDetail   = "detail"
	pageForm     = "form"
	pageGenerate = "generate"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page instead of calling its Init.
type NavigateTo struct {
	Page    string
	Payload any
}

type unlockResultMsg struct {
	err error
}

type resetDoneMsg struct {
	err error
}

type pinSetMsg struct {
	err error
}

// changePinMsg opens the PIN screen in change mode.
type changePinMsg struct{}

type entriesLoadedMsg struct {
	entries     []models.PlainEntry
	stats       models.VaultStats
	needsBackup bool
	err         error
}

// reloadMsg asks the list page to fetch entries again.
type reloadMsg struct {
	status string
}

// openEntryMsg opens the detail page for an entry.
type openEntryMsg struct {
	id models.EntryID
}

type entryOpenedMsg struct {
	entry models.PlainEntry
	err   error
}

// editEntryMsg opens the form; a nil entry creates a new one, prefilled
// from draft when set.
type editEntryMsg struct {
	entry *models.PlainEntry
	draft *models.NewEntry
}

type entrySavedMsg struct {
	entry models.PlainEntry
	err   error
}

type entryDeletedMsg struct {
	err error
}

type generatedMsg struct {
	password string
	strength models.Strength
	err      error
}

// vaultLockedMsg is sent by the session OnLock hook.
type vaultLockedMsg struct{}

// autoLockWarningMsg is sent by the session OnAutoLockWarning hook.
type autoLockWarningMsg struct {
	remaining time.Duration
}

type copiedMsg struct {
	what string
	err  error
}

// clearClipboardMsg wipes the clipboard if it still holds value.
type clearClipboardMsg struct {
	value string
}

type suggestionsMsg struct {
	query       string
	suggestions []models.PlainEntry
}
