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
	fieldService = iota
	fieldUsername
	fieldPassword
	fieldNotes
	fieldVersion
	fieldCount
)

var formLabels = [fieldCount]string{"Service", "Username", "Password", "Notes", "Version"}

// FormModel adds a new entry or edits an existing one. While the service
// field is focused it shows matching entries already in the vault, and the
// password field shows a strength estimate.
type FormModel struct {
	ctx       context.Context
	vault     service.VaultService
	generator service.GeneratorService

	inputs      [fieldCount]textinput.Model
	focus       int
	editing     *models.PlainEntry
	favorite    bool
	suggestions []models.PlainEntry
	submitting  bool
	errMsg      string
}

func NewFormModel(ctx context.Context, vault service.VaultService, generator service.GeneratorService) *FormModel {
	m := &FormModel{ctx: ctx, vault: vault, generator: generator}
	for i := range m.inputs {
		m.inputs[i] = textinput.New()
		m.inputs[i].Placeholder = strings.ToLower(formLabels[i])
		m.inputs[i].Width = 40
	}
	m.inputs[fieldPassword].EchoMode = textinput.EchoPassword
	m.inputs[fieldPassword].EchoCharacter = '*'
	m.inputs[fieldVersion].CharLimit = 4
	m.reset(nil)
	return m
}

func (m *FormModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *FormModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case editEntryMsg:
		m.reset(msg.entry)
		if msg.entry == nil && msg.draft != nil {
			m.fill(*msg.draft)
		}
		return m, textinput.Blink

	case suggestionsMsg:
		if msg.query == strings.TrimSpace(m.inputs[fieldService].Value()) {
			m.suggestions = msg.suggestions
		}
		return m, nil

	case entrySavedMsg:
		m.submitting = false
		if msg.err != nil {
			m.errMsg = renderError(msg.err)
			return m, nil
		}
		status := "Entry added."
		if m.editing != nil {
			status = "Entry updated."
		}
		m.reset(nil)
		return m, navigate(pageList, reloadMsg{status: status})

	case vaultLockedMsg:
		m.reset(nil)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			m.reset(nil)
			return m, navigate(pageList, reloadMsg{})
		case key.Matches(msg, keys.tab):
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case key.Matches(msg, keys.backtab):
			m.setFocus((m.focus - 1 + fieldCount) % fieldCount)
			return m, nil
		case msg.String() == "ctrl+f":
			m.favorite = !m.favorite
			return m, nil
		case msg.String() == "ctrl+s", key.Matches(msg, keys.enter) && m.focus == fieldCount-1:
			return m, m.submit()
		case key.Matches(msg, keys.enter):
			m.setFocus(m.focus + 1)
			return m, nil
		}
	}

	before := m.inputs[fieldService].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	if m.focus == fieldService && m.inputs[fieldService].Value() != before {
		return m, tea.Batch(cmd, m.cmdSuggest(m.inputs[fieldService].Value()))
	}
	return m, cmd
}

func (m *FormModel) View() string {
	var b strings.Builder

	for i, in := range m.inputs {
		fmt.Fprintf(&b, "%-9s │ [%s]\n", formLabels[i], in.View())
	}
	fmt.Fprintf(&b, "%-9s │ %t\n", "Favorite", m.favorite)

	if pw := m.inputs[fieldPassword].Value(); pw != "" {
		s := m.generator.EstimateStrength(pw)
		fmt.Fprintf(&b, "\nStrength: %d/100, cracked in %s\n", s.Score, s.ReadableTime)
	}

	if m.focus == fieldService && len(m.suggestions) > 0 {
		b.WriteString("\nAlready in the vault:\n")
		for _, s := range m.suggestions {
			fmt.Fprintf(&b, "  %s │ %s\n", s.Service, valueOrDash(s.Username))
		}
	}

	if m.submitting {
		b.WriteString("\n[Saving...]\n")
	}
	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(m.errMsg)
		b.WriteString("\n")
	}

	title := "NEW ENTRY"
	if m.editing != nil {
		title = "EDIT: " + strings.ToUpper(m.editing.Service)
	}
	return renderPage(title, strings.TrimRight(b.String(), "\n"),
		"tab: next field │ ctrl+f: favorite │ ctrl+s: save │ esc: cancel")
}

func (m *FormModel) submit() tea.Cmd {
	if m.submitting {
		return nil
	}

	version := 1
	if raw := strings.TrimSpace(m.inputs[fieldVersion].Value()); raw != "" {
		v, err := strconv.Atoi(raw)
		if err != nil || v < 1 {
			m.errMsg = errorStyle.Render("Version must be a positive number")
			return nil
		}
		version = v
	}

	m.errMsg = ""
	m.submitting = true

	ctx := m.ctx
	vault := m.vault
	svc := m.inputs[fieldService].Value()
	username := m.inputs[fieldUsername].Value()
	password := m.inputs[fieldPassword].Value()
	notes := m.inputs[fieldNotes].Value()
	favorite := m.favorite

	if m.editing == nil {
		return func() tea.Msg {
			entry, err := vault.AddEntry(ctx, models.NewEntry{
				Service:  svc,
				Username: username,
				Password: password,
				Notes:    notes,
				Version:  version,
				Favorite: favorite,
			})
			return entrySavedMsg{entry: entry, err: err}
		}
	}

	id := m.editing.ID
	return func() tea.Msg {
		entry, err := vault.UpdateEntry(ctx, id, models.EntryUpdate{
			Service:  &svc,
			Username: &username,
			Password: &password,
			Notes:    &notes,
			Version:  &version,
			Favorite: &favorite,
		})
		return entrySavedMsg{entry: entry, err: err}
	}
}

func (m *FormModel) cmdSuggest(query string) tea.Cmd {
	ctx := m.ctx
	vault := m.vault
	query = strings.TrimSpace(query)

	return func() tea.Msg {
		suggestions, err := vault.Suggestions(ctx, query, 0)
		if err != nil {
			return suggestionsMsg{query: query}
		}
		return suggestionsMsg{query: query, suggestions: suggestions}
	}
}

func (m *FormModel) setFocus(i int) {
	if i >= fieldCount {
		i = fieldCount - 1
	}
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

// reset clears the form, or fills it from entry when editing.
func (m *FormModel) reset(entry *models.PlainEntry) {
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.editing = entry
	m.favorite = false
	m.suggestions = nil
	m.submitting = false
	m.errMsg = ""

	if entry != nil {
		m.fill(models.NewEntry{
			Service:  entry.Service,
			Username: entry.Username,
			Password: entry.Password,
			Notes:    entry.Notes,
			Version:  entry.Version,
			Favorite: entry.Favorite,
		})
	}

	m.focus = fieldService
	m.inputs[fieldService].Focus()
}

func (m *FormModel) fill(e models.NewEntry) {
	m.inputs[fieldService].SetValue(e.Service)
	m.inputs[fieldUsername].SetValue(e.Username)
	m.inputs[fieldPassword].SetValue(e.Password)
	m.inputs[fieldNotes].SetValue(e.Notes)
	if e.Version > 0 {
		m.inputs[fieldVersion].SetValue(strconv.Itoa(e.Version))
	}
	m.favorite = e.Favorite
}
