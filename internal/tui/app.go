package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/bubbles/key"

	"github.com/MKhiriev/go-mempass/models"
)

// activity is the part of the session the router needs: every key press in
// an unlocked vault counts as user activity.
type activity interface {
	IsUnlocked() bool
	Touch()
}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global ctrl+c quit and the build info window
// 3) handles NavigateTo messages and session lock events
// 4) delegates all other messages to the active page
type RootModel struct {
	pages    map[string]tea.Model
	current  tea.Model
	activity activity

	buildInfo     models.BuildInfo
	showBuildInfo bool
	warning       string
	quitByUser    bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(pages map[string]tea.Model, startPage string, act activity, buildInfo models.BuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		activity:  act,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.buildInfo):
			r.showBuildInfo = !r.showBuildInfo
			return r, nil
		case r.showBuildInfo && key.Matches(keyMsg, keys.esc):
			r.showBuildInfo = false
			return r, nil
		}
		if r.showBuildInfo {
			return r, nil
		}

		if r.activity != nil && r.activity.IsUnlocked() {
			r.activity.Touch()
			r.warning = ""
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}

		r.showBuildInfo = false
		r.current = next

		if msg.Payload != nil {
			payload := msg.Payload
			return r, func() tea.Msg { return payload }
		}
		return r, r.current.Init()

	case vaultLockedMsg:
		r.warning = ""
		cmds := r.clearPages(msg)
		unlock, exists := r.pages[pageUnlock]
		if !exists {
			return r, tea.Batch(cmds...)
		}
		if r.current == unlock {
			updated, cmd := r.delegate(msg)
			return updated, tea.Batch(append(cmds, cmd)...)
		}
		r.current = unlock
		cmds = append(cmds, unlock.Init(), func() tea.Msg { return msg })
		return r, tea.Batch(cmds...)

	case autoLockWarningMsg:
		r.warning = fmt.Sprintf("The vault locks automatically in %s.", msg.remaining.Round(time.Second))
		return r, nil
	}

	return r.delegate(msg)
}

// clearPages hands the lock to every page but the unlock page, so none of
// them keeps decrypted entries. The unlock page gets it through the normal
// routing.
func (r *RootModel) clearPages(msg vaultLockedMsg) []tea.Cmd {
	var cmds []tea.Cmd
	for name, page := range r.pages {
		if name == pageUnlock {
			continue
		}
		updated, cmd := page.Update(msg)
		r.pages[name] = updated
		if r.current == page {
			r.current = updated
		}
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
	}
	return cmds
}

func (r RootModel) delegate(msg tea.Msg) (tea.Model, tea.Cmd) {
	if r.current == nil {
		return r, nil
	}

	updated, cmd := r.current.Update(msg)
	r.current = updated
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo))
	}
	if r.current == nil {
		return renderPage("MEMPASS", "", "")
	}

	view := r.current.View()
	if r.warning != "" {
		view += "\n\n  " + warningStyle.Render(r.warning)
	}
	return appStyle.Render(view)
}
