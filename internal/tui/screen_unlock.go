// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-mempass/internal/service"
)

// UnlockModel is the Bubble Tea model for the PIN prompt. It dispatches an
// async VerifyPin on enter and, on success, opens the entry list. ctrl+r
// asks for confirmation and then wipes the vault.
type UnlockModel struct {
	ctx   context.Context
	vault service.VaultService

	input      textinput.Model
	submitting bool
	confirming bool
	errMsg     string
	status     string
}

// NewUnlockModel creates an [UnlockModel] whose masked input accepts at most
// pinLength characters.
func NewUnlockModel(ctx context.Context, vault service.VaultService, pinLength int) *UnlockModel {
	pin := textinput.New()
	pin.Placeholder = "PIN"
	pin.CharLimit = pinLength
	pin.Width = 20
	pin.EchoMode = textinput.EchoPassword
	pin.EchoCharacter = '*'
	pin.Focus()

	return &UnlockModel{ctx: ctx, vault: vault, input: pin}
}

// Init implements [tea.Model].
func (m *UnlockModel) Init() tea.Cmd {
	m.input.Focus()
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [unlockResultMsg]  opens the list on success, shows the reason otherwise.
//   - [vaultLockedMsg]   notes that the session was locked.
//   - [resetDoneMsg]     moves to PIN setup after a reset.
//   - enter              submits the PIN.
//   - ctrl+r             starts the reset confirmation.
func (m *UnlockModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case unlockResultMsg:
		m.submitting = false
		m.input.SetValue("")
		if msg.err != nil {
			m.errMsg = renderError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = ""
		return m, func() tea.Msg { return NavigateTo{Page: pageList} }

	case vaultLockedMsg:
		m.status = "Vault locked."
		m.input.SetValue("")
		return m, nil

	case resetDoneMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = renderError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		return m, func() tea.Msg { return NavigateTo{Page: pageSetPin} }

	case tea.KeyMsg:
		if m.confirming {
			switch {
			case key.Matches(msg, keys.yes):
				m.confirming = false
				m.submitting = true
				return m, m.cmdReset()
			case key.Matches(msg, keys.no):
				m.confirming = false
			}
			return m, nil
		}

		switch {
		case key.Matches(msg, keys.reset):
			m.confirming = true
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			pin := strings.TrimSpace(m.input.Value())
			if pin == "" {
				m.errMsg = errorStyle.Render("Enter your PIN")
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdUnlock(pin)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *UnlockModel) View() string {
	var b strings.Builder

	if m.status != "" {
		b.WriteString(m.status)
		b.WriteString("\n\n")
	}
	b.WriteString("PIN │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Unlocking...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}
	if m.confirming {
		b.WriteString("\n")
		b.WriteString(confirmModel{message: "Erase the vault and every entry in it?"}.View())
		b.WriteString("\n")
	}

	return renderPage("UNLOCK", strings.TrimRight(b.String(), "\n"), "enter: unlock │ ctrl+r: reset vault │ ctrl+b: version")
}

func (m *UnlockModel) cmdUnlock(pin string) tea.Cmd {
	ctx := m.ctx
	vault := m.vault

	return func() tea.Msg {
		_, err := vault.VerifyPin(ctx, pin)
		return unlockResultMsg{err: err}
	}
}

func (m *UnlockModel) cmdReset() tea.Cmd {
	ctx := m.ctx
	vault := m.vault

	return func() tea.Msg {
		return resetDoneMsg{err: vault.ResetPin(ctx)}
	}
}
