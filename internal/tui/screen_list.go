// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-mempass/internal/service"
	"github.com/MKhiriev/go-mempass/models"
)

var sortOrders = []models.SortOrder{models.SortNewest, models.SortOldest, models.SortService, models.SortFrequent}

// ListModel shows the vault entries with search, sorting, quick copy and
// delete. It is the home page of an unlocked vault.
type ListModel struct {
	ctx       context.Context
	vault     service.VaultService
	clipboard clipboardAccess

	entries     []models.PlainEntry
	stats       models.VaultStats
	needsBackup bool
	idx         int
	sortIdx     int
	loading     bool

	search    textinput.Model
	searching bool

	confirmDelete bool
	status        string
	errMsg        string
}

func NewListModel(ctx context.Context, vault service.VaultService) *ListModel {
	search := textinput.New()
	search.Placeholder = "search service or username"
	search.Width = 40

	return &ListModel{
		ctx:       ctx,
		vault:     vault,
		clipboard: systemClipboard,
		search:    search,
	}
}

func (m *ListModel) Init() tea.Cmd {
	m.loading = true
	return m.cmdLoad()
}

func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case reloadMsg:
		m.status = msg.status
		m.loading = true
		return m, m.cmdLoad()

	case entriesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = renderError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.entries = msg.entries
		m.stats = msg.stats
		m.needsBackup = msg.needsBackup
		m.clampCursor()
		return m, nil

	case entryDeletedMsg:
		if msg.err != nil {
			m.errMsg = renderError(msg.err)
			return m, nil
		}
		m.status = "Entry deleted."
		return m, m.cmdLoad()

	case entrySavedMsg:
		if msg.err != nil {
			m.errMsg = renderError(msg.err)
			return m, nil
		}
		return m, m.cmdLoad()

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = renderError(msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("%s copied, clipboard clears in %s.", msg.what, clipboardClearAfter)
		return m, nil

	case clearClipboardMsg:
		m.clipboard.clear(msg.value)
		return m, nil

	case vaultLockedMsg:
		m.entries = nil
		m.confirmDelete = false
		return m, nil

	case tea.KeyMsg:
		if m.searching {
			return m.updateSearch(msg)
		}
		if m.confirmDelete {
			return m.updateConfirm(msg)
		}
		return m.updateKeys(msg)
	}

	return m, nil
}

func (m *ListModel) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""

	switch {
	case key.Matches(msg, keys.quit):
		return m, tea.Quit
	case key.Matches(msg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(msg, keys.down):
		if m.idx < len(m.entries)-1 {
			m.idx++
		}
	case key.Matches(msg, keys.search):
		m.searching = true
		m.search.Focus()
		return m, textinput.Blink
	case key.Matches(msg, keys.esc):
		if m.search.Value() != "" {
			m.search.SetValue("")
			return m, m.cmdLoad()
		}
	case key.Matches(msg, keys.sort):
		m.sortIdx = (m.sortIdx + 1) % len(sortOrders)
		return m, m.cmdLoad()
	case key.Matches(msg, keys.newItem):
		return m, navigate(pageForm, editEntryMsg{})
	case key.Matches(msg, keys.generate):
		return m, navigate(pageGenerate, nil)
	case key.Matches(msg, keys.changePin):
		return m, navigate(pageSetPin, changePinMsg{})
	case key.Matches(msg, keys.lock):
		vault := m.vault
		return m, func() tea.Msg {
			vault.Lock()
			return nil
		}
	}

	entry, ok := m.current()
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(msg, keys.enter):
		return m, navigate(pageDetail, openEntryMsg{id: entry.ID})
	case key.Matches(msg, keys.edit):
		if entry.Unreadable {
			m.errMsg = errorStyle.Render("Unreadable entries cannot be edited")
			return m, nil
		}
		return m, navigate(pageForm, editEntryMsg{entry: &entry})
	case key.Matches(msg, keys.delete):
		m.confirmDelete = true
	case key.Matches(msg, keys.copy):
		if entry.Unreadable {
			return m, nil
		}
		return m, m.clipboard.cmdCopy("Password", entry.Password)
	case key.Matches(msg, keys.copyUser):
		return m, m.clipboard.cmdCopy("Username", entry.Username)
	case key.Matches(msg, keys.favorite):
		return m, m.cmdToggleFavorite(entry)
	}
	return m, nil
}

func (m *ListModel) updateSearch(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.esc):
		m.searching = false
		m.search.Blur()
		m.search.SetValue("")
		return m, m.cmdLoad()
	case key.Matches(msg, keys.enter):
		m.searching = false
		m.search.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(msg)
	return m, tea.Batch(cmd, m.cmdLoad())
}

func (m *ListModel) updateConfirm(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.yes):
		m.confirmDelete = false
		if entry, ok := m.current(); ok {
			return m, m.cmdDelete(entry.ID)
		}
	case key.Matches(msg, keys.no):
		m.confirmDelete = false
	}
	return m, nil
}

func (m *ListModel) View() string {
	var b strings.Builder

	if m.searching || m.search.Value() != "" {
		b.WriteString("Search: ")
		b.WriteString(m.search.View())
		b.WriteString("\n\n")
	}

	switch {
	case m.loading && len(m.entries) == 0:
		b.WriteString("Loading...\n")
	case len(m.entries) == 0:
		b.WriteString("No entries\n")
	default:
		b.WriteString(m.renderTable())
	}

	b.WriteString(fmt.Sprintf("\n%d entries │ %d favorites │ %d recent │ %d duplicates │ sort: %s\n",
		m.stats.Total, m.stats.Favorites, m.stats.Recent, m.stats.Duplicates, sortOrders[m.sortIdx]))
	if m.needsBackup {
		b.WriteString(warningStyle.Render("No recent backup: run `mempass export`."))
		b.WriteString("\n")
	}
	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(statusStyle.Render(m.status))
		b.WriteString("\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}
	if m.confirmDelete {
		if entry, ok := m.current(); ok {
			b.WriteString("\n")
			b.WriteString(confirmModel{message: fmt.Sprintf("Delete %q?", entry.Service)}.View())
			b.WriteString("\n")
		}
	}

	hotKeys := "enter: open │ n: new │ e: edit │ d: delete │ c/u: copy password/username │ f: favorite\n" +
		"  /: search │ o: sort │ g: generator │ p: change PIN │ L: lock │ q: quit"
	return renderPage("VAULT", strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *ListModel) renderTable() string {
	var b strings.Builder

	serviceWidth := lipgloss.Width("Service")
	for _, e := range m.entries {
		if w := lipgloss.Width(fitText(e.Service, 32)); w > serviceWidth {
			serviceWidth = w
		}
	}

	b.WriteString(fmt.Sprintf("   %-*s │ %s\n", serviceWidth, "Service", "Username"))
	b.WriteString(strings.Repeat("─", serviceWidth+3))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", 24))
	b.WriteString("\n")

	for i, e := range m.entries {
		cursor := " "
		if i == m.idx {
			cursor = ">"
		}
		mark := " "
		switch {
		case e.Unreadable:
			mark = "!"
		case e.Favorite:
			mark = "*"
		}
		b.WriteString(fmt.Sprintf("%s%s %-*s │ %s\n", cursor, mark, serviceWidth, fitText(e.Service, 32), fitText(valueOrDash(e.Username), 32)))
	}
	return b.String()
}

func (m *ListModel) current() (models.PlainEntry, bool) {
	if len(m.entries) == 0 || m.idx < 0 || m.idx >= len(m.entries) {
		return models.PlainEntry{}, false
	}
	return m.entries[m.idx], true
}

func (m *ListModel) clampCursor() {
	if m.idx >= len(m.entries) {
		m.idx = len(m.entries) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
}

// cmdLoad fetches the entries for the current query and sort order together
// with the stats line.
func (m *ListModel) cmdLoad() tea.Cmd {
	ctx := m.ctx
	vault := m.vault
	query := strings.TrimSpace(m.search.Value())
	order := sortOrders[m.sortIdx]

	return func() tea.Msg {
		var (
			entries []models.PlainEntry
			err     error
		)
		if query != "" {
			entries, err = vault.Search(ctx, query)
		} else {
			entries, err = vault.Sort(ctx, order)
		}
		if err != nil {
			return entriesLoadedMsg{err: err}
		}

		stats, err := vault.Stats(ctx)
		if err != nil {
			return entriesLoadedMsg{err: err}
		}
		needsBackup, err := vault.NeedsBackup(ctx)
		if err != nil {
			return entriesLoadedMsg{err: err}
		}
		return entriesLoadedMsg{entries: entries, stats: stats, needsBackup: needsBackup}
	}
}

func (m *ListModel) cmdDelete(id models.EntryID) tea.Cmd {
	ctx := m.ctx
	vault := m.vault

	return func() tea.Msg {
		return entryDeletedMsg{err: vault.DeleteEntry(ctx, id)}
	}
}

func (m *ListModel) cmdToggleFavorite(entry models.PlainEntry) tea.Cmd {
	ctx := m.ctx
	vault := m.vault
	favorite := !entry.Favorite

	return func() tea.Msg {
		updated, err := vault.UpdateEntry(ctx, entry.ID, models.EntryUpdate{Favorite: &favorite})
		return entrySavedMsg{entry: updated, err: err}
	}
}

func navigate(page string, payload any) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}
