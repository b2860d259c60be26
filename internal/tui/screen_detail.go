package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-mempass/internal/service"
	"github.com/MKhiriev/go-mempass/models"
)

const detailTimeLayout = "2006-01-02 15:04"

// DetailModel shows one entry. Opening it counts as an access.
type DetailModel struct {
	ctx       context.Context
	vault     service.VaultService
	clipboard clipboardAccess

	entry         models.PlainEntry
	loaded        bool
	reveal        bool
	confirmDelete bool
	status        string
	errMsg        string
}

func NewDetailModel(ctx context.Context, vault service.VaultService) *DetailModel {
	return &DetailModel{ctx: ctx, vault: vault, clipboard: systemClipboard}
}

func (m *DetailModel) Init() tea.Cmd {
	return nil
}

func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case openEntryMsg:
		m.loaded = false
		m.reveal = false
		m.confirmDelete = false
		m.status = ""
		m.errMsg = ""
		return m, m.cmdOpen(msg.id)

	case entryOpenedMsg:
		if msg.err != nil {
			m.errMsg = renderError(msg.err)
			return m, nil
		}
		m.entry = msg.entry
		m.loaded = true
		return m, nil

	case entryDeletedMsg:
		if msg.err != nil {
			m.errMsg = renderError(msg.err)
			return m, nil
		}
		return m, navigate(pageList, reloadMsg{status: "Entry deleted."})

	case copiedMsg:
		if msg.err != nil {
			m.errMsg = renderError(msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("%s copied.", msg.what)
		return m, nil

	case clearClipboardMsg:
		m.clipboard.clear(msg.value)
		return m, nil

	case vaultLockedMsg:
		m.entry = models.PlainEntry{}
		m.loaded = false
		m.reveal = false
		return m, nil

	case tea.KeyMsg:
		if m.confirmDelete {
			switch {
			case key.Matches(msg, keys.yes):
				m.confirmDelete = false
				return m, m.cmdDelete(m.entry.ID)
			case key.Matches(msg, keys.no):
				m.confirmDelete = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.esc):
			m.entry = models.PlainEntry{}
			m.loaded = false
			return m, navigate(pageList, reloadMsg{})
		case !m.loaded:
			return m, nil
		case key.Matches(msg, keys.reveal):
			m.reveal = !m.reveal
		case key.Matches(msg, keys.copy):
			if !m.entry.Unreadable {
				return m, m.clipboard.cmdCopy("Password", m.entry.Password)
			}
		case key.Matches(msg, keys.copyUser):
			return m, m.clipboard.cmdCopy("Username", m.entry.Username)
		case key.Matches(msg, keys.edit):
			if !m.entry.Unreadable {
				entry := m.entry
				return m, navigate(pageForm, editEntryMsg{entry: &entry})
			}
		case key.Matches(msg, keys.delete):
			m.confirmDelete = true
		}
	}
	return m, nil
}

func (m *DetailModel) View() string {
	if !m.loaded {
		body := "Loading..."
		if m.errMsg != "" {
			body = m.errMsg
		}
		return renderPage("ENTRY", body, "esc: back")
	}

	e := m.entry
	var b strings.Builder

	password := maskSecret(e.Password)
	if m.reveal {
		password = valueOrDash(e.Password)
	}
	if e.Unreadable {
		b.WriteString(errorStyle.Render("This entry cannot be decrypted with the current PIN."))
		b.WriteString("\n\n")
		password = "?"
	}

	fmt.Fprintf(&b, "Service:   %s\n", e.Service)
	fmt.Fprintf(&b, "Username:  %s\n", valueOrDash(e.Username))
	fmt.Fprintf(&b, "Password:  %s\n", password)
	fmt.Fprintf(&b, "Notes:     %s\n", valueOrDash(e.Notes))
	fmt.Fprintf(&b, "Version:   %d\n", e.Version)
	fmt.Fprintf(&b, "Favorite:  %t\n", e.Favorite)
	fmt.Fprintf(&b, "Created:   %s\n", e.Created.Local().Format(detailTimeLayout))
	fmt.Fprintf(&b, "Updated:   %s\n", e.Updated.Local().Format(detailTimeLayout))
	if e.LastAccessed != nil {
		fmt.Fprintf(&b, "Accessed:  %s (%d times)\n", e.LastAccessed.Local().Format(detailTimeLayout), e.AccessCount)
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
		b.WriteString("\n")
		b.WriteString(confirmModel{message: fmt.Sprintf("Delete %q?", e.Service)}.View())
		b.WriteString("\n")
	}

	return renderPage(strings.ToUpper(e.Service), strings.TrimRight(b.String(), "\n"),
		"r: reveal │ c: copy password │ u: copy username │ e: edit │ d: delete │ esc: back")
}

func (m *DetailModel) cmdOpen(id models.EntryID) tea.Cmd {
	ctx := m.ctx
	vault := m.vault

	return func() tea.Msg {
		entry, err := vault.GetEntry(ctx, id)
		return entryOpenedMsg{entry: entry, err: err}
	}
}

func (m *DetailModel) cmdDelete(id models.EntryID) tea.Cmd {
	ctx := m.ctx
	vault := m.vault

	return func() tea.Msg {
		return entryDeletedMsg{err: vault.DeleteEntry(ctx, id)}
	}
}
