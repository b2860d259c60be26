package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-mempass/internal/service"
)

// SetPinModel creates the first PIN or, after a [changePinMsg], replaces
// the current one.
type SetPinModel struct {
	ctx   context.Context
	vault service.VaultService

	inputs     []textinput.Model
	focus      int
	changing   bool
	submitting bool
	errMsg     string
}

func NewSetPinModel(ctx context.Context, vault service.VaultService, pinLength int) *SetPinModel {
	fields := make([]textinput.Model, 2)
	for i, placeholder := range []string{"new PIN", "repeat PIN"} {
		fields[i] = textinput.New()
		fields[i].Placeholder = placeholder
		fields[i].CharLimit = pinLength
		fields[i].Width = 20
		fields[i].EchoMode = textinput.EchoPassword
		fields[i].EchoCharacter = '*'
	}
	fields[0].Focus()

	return &SetPinModel{ctx: ctx, vault: vault, inputs: fields}
}

func (m *SetPinModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *SetPinModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case changePinMsg:
		m.changing = true
		m.reset()
		return m, textinput.Blink

	case pinSetMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = renderError(msg.err)
			return m, nil
		}
		status := "PIN set."
		if m.changing {
			status = "PIN changed."
		}
		m.changing = false
		m.reset()
		return m, func() tea.Msg { return NavigateTo{Page: pageList, Payload: reloadMsg{status: status}} }

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			if m.changing {
				m.changing = false
				m.reset()
				return m, func() tea.Msg { return NavigateTo{Page: pageList, Payload: reloadMsg{}} }
			}
			return m, nil
		case key.Matches(msg, keys.tab), key.Matches(msg, keys.backtab):
			m.focusNext()
			return m, nil
		case key.Matches(msg, keys.enter):
			if m.submitting {
				return m, nil
			}
			if m.focus == 0 {
				m.focusNext()
				return m, nil
			}

			pin := m.inputs[0].Value()
			if pin != m.inputs[1].Value() {
				m.errMsg = errorStyle.Render("PINs do not match")
				m.inputs[1].SetValue("")
				return m, nil
			}
			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSetPin(pin)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *SetPinModel) View() string {
	var b strings.Builder
	b.WriteString("Field      │ Value\n")
	b.WriteString("───────────┼────────────────────────\n")
	b.WriteString("PIN        │ [")
	b.WriteString(m.inputs[0].View())
	b.WriteString("]\n")
	b.WriteString("Repeat     │ [")
	b.WriteString(m.inputs[1].View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Deriving key...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	title, hotKeys := "CREATE PIN", "tab: next field │ enter: confirm"
	if m.changing {
		title, hotKeys = "CHANGE PIN", "esc: back │ tab: next field │ enter: confirm"
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"), hotKeys)
}

func (m *SetPinModel) cmdSetPin(pin string) tea.Cmd {
	ctx := m.ctx
	vault := m.vault

	return func() tea.Msg {
		return pinSetMsg{err: vault.SetPin(ctx, pin)}
	}
}

func (m *SetPinModel) focusNext() {
	m.inputs[m.focus].Blur()
	m.focus = (m.focus + 1) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *SetPinModel) reset() {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.focus = 0
	m.inputs[0].Focus()
	m.errMsg = ""
}
