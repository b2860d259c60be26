package tui

import (
	"time"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

// clipboardClearAfter is how long a copied secret stays on the clipboard.
const clipboardClearAfter = 30 * time.Second

// clipboardAccess is swapped out in tests; the system clipboard is not
// available on headless machines.
type clipboardAccess struct {
	read  func() (string, error)
	write func(string) error
}

var systemClipboard = clipboardAccess{read: clipboard.ReadAll, write: clipboard.WriteAll}

// cmdCopy writes value to the clipboard and schedules its removal.
func (c clipboardAccess) cmdCopy(what, value string) tea.Cmd {
	write := c.write
	copyCmd := func() tea.Msg {
		return copiedMsg{what: what, err: write(value)}
	}
	clearCmd := tea.Tick(clipboardClearAfter, func(time.Time) tea.Msg {
		return clearClipboardMsg{value: value}
	})
	return tea.Batch(copyCmd, clearCmd)
}

// clear empties the clipboard unless the user has copied something else
// since.
func (c clipboardAccess) clear(value string) {
	current, err := c.read()
	if err != nil || current != value {
		return
	}
	_ = c.write("")
}
