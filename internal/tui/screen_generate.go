package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-mempass/internal/service"
	"github.com/MKhiriev/go-mempass/models"
)

const (
	genPhrase = iota
	genService
	genVersion
	genLength
	genFieldCount
)

var generateLabels = [genFieldCount]string{"Phrase", "Service", "Version", "Length"}

// GenerateModel derives a password from a master phrase and a service name.
// The result can be copied or saved as a new entry.
type GenerateModel struct {
	ctx       context.Context
	generator service.GeneratorService
	clipboard clipboardAccess

	inputs   [genFieldCount]textinput.Model
	focus    int
	password string
	strength models.Strength
	reveal   bool
	status   string
	errMsg   string
}

func NewGenerateModel(ctx context.Context, generator service.GeneratorService, defaultLength int) *GenerateModel {
	m := &GenerateModel{ctx: ctx, generator: generator, clipboard: systemClipboard}
	for i := range m.inputs {
		m.inputs[i] = textinput.New()
		m.inputs[i].Placeholder = strings.ToLower(generateLabels[i])
		m.inputs[i].Width = 40
	}
	m.inputs[genPhrase].EchoMode = textinput.EchoPassword
	m.inputs[genPhrase].EchoCharacter = '*'
	m.inputs[genVersion].CharLimit = 4
	m.inputs[genVersion].Placeholder = "1"
	m.inputs[genLength].CharLimit = 3
	m.inputs[genLength].Placeholder = strconv.Itoa(defaultLength)
	m.inputs[genPhrase].Focus()
	return m
}

// Init clears the previous result; the phrase is kept until the vault locks.
func (m *GenerateModel) Init() tea.Cmd {
	m.password = ""
	m.status = ""
	m.errMsg = ""
	m.reveal = false
	return textinput.Blink
}

func (m *GenerateModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case generatedMsg:
		if msg.err != nil {
			m.password = ""
			m.errMsg = renderError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.password = msg.password
		m.strength = msg.strength
		return m, nil

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
		for i := range m.inputs {
			m.inputs[i].SetValue("")
		}
		m.password = ""
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.password = ""
			return m, navigate(pageList, reloadMsg{})
		case key.Matches(msg, keys.tab):
			m.setFocus((m.focus + 1) % genFieldCount)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.setFocus((m.focus - 1 + genFieldCount) % genFieldCount)
			return m, nil
		case key.Matches(msg, keys.enter):
			return m, m.cmdGenerate()
		case msg.String() == "ctrl+y" && m.password != "":
			return m, m.clipboard.cmdCopy("Password", m.password)
		case msg.String() == "ctrl+r" && m.password != "":
			m.reveal = !m.reveal
			return m, nil
		case msg.String() == "ctrl+s" && m.password != "":
			draft := &models.NewEntry{
				Service:  m.inputs[genService].Value(),
				Password: m.password,
				Version:  m.version(),
			}
			return m, navigate(pageForm, editEntryMsg{draft: draft})
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *GenerateModel) View() string {
	var b strings.Builder

	for i, in := range m.inputs {
		fmt.Fprintf(&b, "%-8s │ [%s]\n", generateLabels[i], in.View())
	}

	if m.password != "" {
		shown := maskSecret(m.password)
		if m.reveal {
			shown = m.password
		}
		fmt.Fprintf(&b, "\nPassword: %s\n", shown)
		fmt.Fprintf(&b, "Strength: %d/100, cracked in %s\n", m.strength.Score, m.strength.ReadableTime)
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

	return renderPage("GENERATOR", strings.TrimRight(b.String(), "\n"),
		"enter: generate │ ctrl+r: reveal │ ctrl+y: copy │ ctrl+s: save as entry │ esc: back")
}

func (m *GenerateModel) version() int {
	v, err := strconv.Atoi(strings.TrimSpace(m.inputs[genVersion].Value()))
	if err != nil {
		return 1
	}
	return v
}

func (m *GenerateModel) cmdGenerate() tea.Cmd {
	length := 0
	if raw := strings.TrimSpace(m.inputs[genLength].Value()); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			m.errMsg = errorStyle.Render("Length must be a number")
			return nil
		}
		length = n
	}
	version := 1
	if raw := strings.TrimSpace(m.inputs[genVersion].Value()); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil {
			m.errMsg = errorStyle.Render("Version must be a number")
			return nil
		}
		version = v
	}

	ctx := m.ctx
	generator := m.generator
	req := models.GenerateRequest{
		Phrase:  m.inputs[genPhrase].Value(),
		Service: models.ServiceIdentity{Name: m.inputs[genService].Value(), Version: version},
		Length:  length,
	}

	return func() tea.Msg {
		password, err := generator.Generate(ctx, req)
		if err != nil {
			return generatedMsg{err: err}
		}
		return generatedMsg{password: password, strength: generator.EstimateStrength(password)}
	}
}

func (m *GenerateModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}
