package tui

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-mempass/internal/mock"
	"github.com/MKhiriev/go-mempass/internal/service"
	"github.com/MKhiriev/go-mempass/internal/session"
	"github.com/MKhiriev/go-mempass/models"
)

// ── helpers ──────────────────────────────────────────────────────────────────

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func typeText(m tea.Model, s string) tea.Model {
	for _, r := range s {
		m, _ = m.Update(runes(string(r)))
	}
	return m
}

var (
	enterKey = tea.KeyMsg{Type: tea.KeyEnter}
	escKey   = tea.KeyMsg{Type: tea.KeyEsc}
	tabKey   = tea.KeyMsg{Type: tea.KeyTab}
	ctrlC    = tea.KeyMsg{Type: tea.KeyCtrlC}
	ctrlR    = tea.KeyMsg{Type: tea.KeyCtrlR}
	ctrlS    = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func exec(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	require.NotNil(t, cmd, "expected a command")
	return cmd()
}

// collect runs cmd and every command nested in it. Cursor blink commands
// wait for the blink interval.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	batch, ok := msg.(tea.BatchMsg)
	if !ok {
		return []tea.Msg{msg}
	}
	var out []tea.Msg
	for _, c := range batch {
		out = append(out, collect(c)...)
	}
	return out
}

func requireNavigate(t *testing.T, msg tea.Msg, page string) NavigateTo {
	t.Helper()
	nav, ok := msg.(NavigateTo)
	require.True(t, ok, "expected NavigateTo, got %T", msg)
	assert.Equal(t, page, nav.Page)
	return nav
}

// fakeClipboard records writes instead of touching the system clipboard.
type fakeClipboard struct {
	content string
	writes  int
}

func (c *fakeClipboard) access() clipboardAccess {
	return clipboardAccess{
		read: func() (string, error) { return c.content, nil },
		write: func(s string) error {
			c.content = s
			c.writes++
			return nil
		},
	}
}

type fakeActivity struct {
	unlocked bool
	touches  int
}

func (a *fakeActivity) IsUnlocked() bool { return a.unlocked }
func (a *fakeActivity) Touch()           { a.touches++ }

var testEntries = []models.PlainEntry{
	{ID: "1", Service: "github", Username: "alice", Password: "gh-secret", Version: 1},
	{ID: "2", Service: "gmail", Username: "alice@example.com", Password: "mail-secret", Version: 1, Favorite: true},
}

// ── unlock ───────────────────────────────────────────────────────────────────

func TestUnlockModel_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vault := mock.NewMockVaultService(ctrl)
	vault.EXPECT().VerifyPin(gomock.Any(), "123456").Return(true, nil)

	m := NewUnlockModel(context.Background(), vault, 6)
	typeText(m, "123456")

	_, cmd := m.Update(enterKey)
	msg := exec(t, cmd)
	assert.Equal(t, unlockResultMsg{}, msg)
	assert.True(t, m.submitting)

	_, cmd = m.Update(msg)
	requireNavigate(t, exec(t, cmd), pageList)
	assert.Empty(t, m.input.Value(), "PIN is cleared after the attempt")
}

func TestUnlockModel_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "wrong pin", err: &service.WrongPinError{AttemptsLeft: 4}, want: "wrong PIN, 4 attempts left"},
		{name: "lockout", err: &service.LockoutError{Remaining: 10 * time.Minute}, want: "try again in 10m0s"},
		{name: "format", err: service.ErrInvalidPinFormat, want: "digits only"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			vault := mock.NewMockVaultService(ctrl)
			vault.EXPECT().VerifyPin(gomock.Any(), "000000").Return(false, tt.err)

			m := NewUnlockModel(context.Background(), vault, 6)
			typeText(m, "000000")
			_, cmd := m.Update(enterKey)
			_, cmd = m.Update(exec(t, cmd))

			assert.Nil(t, cmd)
			assert.Contains(t, m.View(), tt.want)
			assert.False(t, m.submitting)
		})
	}
}

func TestUnlockModel_EmptyPin(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewUnlockModel(context.Background(), mock.NewMockVaultService(ctrl), 6)
	_, cmd := m.Update(enterKey)

	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Enter your PIN")
}

func TestUnlockModel_Reset(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vault := mock.NewMockVaultService(ctrl)
	vault.EXPECT().ResetPin(gomock.Any()).Return(nil)

	m := NewUnlockModel(context.Background(), vault, 6)

	_, cmd := m.Update(ctrlR)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Erase the vault")

	// "n" cancels
	_, cmd = m.Update(runes("n"))
	assert.Nil(t, cmd)
	assert.False(t, m.confirming)

	m.Update(ctrlR)
	_, cmd = m.Update(runes("y"))
	_, cmd = m.Update(exec(t, cmd))
	requireNavigate(t, exec(t, cmd), pageSetPin)
}

// ── set pin ──────────────────────────────────────────────────────────────────

func TestSetPinModel_Mismatch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewSetPinModel(context.Background(), mock.NewMockVaultService(ctrl), 6)
	typeText(m, "123456")
	m.Update(tabKey)
	typeText(m, "654321")

	_, cmd := m.Update(enterKey)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "PINs do not match")
}

func TestSetPinModel_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vault := mock.NewMockVaultService(ctrl)
	vault.EXPECT().SetPin(gomock.Any(), "123456").Return(nil)

	m := NewSetPinModel(context.Background(), vault, 6)
	typeText(m, "123456")
	m.Update(enterKey)
	typeText(m, "123456")

	_, cmd := m.Update(enterKey)
	_, cmd = m.Update(exec(t, cmd))

	nav := requireNavigate(t, exec(t, cmd), pageList)
	assert.Equal(t, reloadMsg{status: "PIN set."}, nav.Payload)
	assert.Empty(t, m.inputs[0].Value())
}

func TestSetPinModel_ChangeCanBeCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewSetPinModel(context.Background(), mock.NewMockVaultService(ctrl), 6)
	m.Update(changePinMsg{})
	assert.Contains(t, m.View(), "CHANGE PIN")

	_, cmd := m.Update(escKey)
	requireNavigate(t, exec(t, cmd), pageList)
	assert.False(t, m.changing)
}

// ── list ─────────────────────────────────────────────────────────────────────

func newTestList(t *testing.T, vault *mock.MockVaultService) (*ListModel, *fakeClipboard) {
	t.Helper()
	clip := &fakeClipboard{}
	m := NewListModel(context.Background(), vault)
	m.clipboard = clip.access()
	return m, clip
}

func expectLoad(vault *mock.MockVaultService, order models.SortOrder, entries []models.PlainEntry) {
	vault.EXPECT().Sort(gomock.Any(), order).Return(entries, nil)
	vault.EXPECT().Stats(gomock.Any()).Return(models.VaultStats{Total: len(entries), Favorites: 1}, nil)
	vault.EXPECT().NeedsBackup(gomock.Any()).Return(true, nil)
}

func TestListModel_LoadAndSort(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vault := mock.NewMockVaultService(ctrl)
	expectLoad(vault, models.SortNewest, testEntries)
	expectLoad(vault, models.SortOldest, testEntries)

	m, _ := newTestList(t, vault)
	m.Update(exec(t, m.Init()))

	view := m.View()
	assert.Contains(t, view, "github")
	assert.Contains(t, view, "alice@example.com")
	assert.Contains(t, view, "No recent backup")
	assert.Contains(t, view, "2 entries")

	_, cmd := m.Update(runes("o"))
	m.Update(exec(t, cmd))
	assert.Contains(t, m.View(), "sort: oldest")
}

func TestListModel_Search(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vault := mock.NewMockVaultService(ctrl)
	vault.EXPECT().Search(gomock.Any(), "g").Return(testEntries[:1], nil)
	vault.EXPECT().Stats(gomock.Any()).Return(models.VaultStats{}, nil)
	vault.EXPECT().NeedsBackup(gomock.Any()).Return(false, nil)

	m, _ := newTestList(t, vault)
	m.Update(runes("/"))
	require.True(t, m.searching)

	_, cmd := m.Update(runes("g"))
	for _, msg := range collect(cmd) {
		if loaded, ok := msg.(entriesLoadedMsg); ok {
			m.Update(loaded)
		}
	}

	assert.Len(t, m.entries, 1)
	m.Update(enterKey)
	assert.False(t, m.searching)
	assert.Equal(t, "g", m.search.Value(), "the filter stays after leaving search mode")
}

func TestListModel_CopyPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, clip := newTestList(t, mock.NewMockVaultService(ctrl))
	m.Update(entriesLoadedMsg{entries: testEntries})
	m.Update(runes("j"))

	_, cmd := m.Update(runes("c"))
	batch, ok := exec(t, cmd).(tea.BatchMsg)
	require.True(t, ok)
	require.NotEmpty(t, batch)

	m.Update(batch[0]())
	assert.Equal(t, "mail-secret", clip.content)
	assert.Contains(t, m.View(), "Password copied")

	m.Update(clearClipboardMsg{value: "mail-secret"})
	assert.Empty(t, clip.content)
}

func TestClipboardAccess_ClearKeepsNewerContent(t *testing.T) {
	clip := &fakeClipboard{content: "something else"}
	clip.access().clear("mail-secret")

	assert.Equal(t, "something else", clip.content)
	assert.Zero(t, clip.writes)
}

func TestListModel_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vault := mock.NewMockVaultService(ctrl)
	vault.EXPECT().DeleteEntry(gomock.Any(), models.EntryID("1")).Return(nil)
	expectLoad(vault, models.SortNewest, testEntries[1:])

	m, _ := newTestList(t, vault)
	m.Update(entriesLoadedMsg{entries: testEntries})

	m.Update(runes("d"))
	assert.Contains(t, m.View(), `Delete "github"?`)

	_, cmd := m.Update(runes("y"))
	_, cmd = m.Update(exec(t, cmd))
	m.Update(exec(t, cmd))

	assert.Equal(t, testEntries[1:], m.entries)
	assert.Contains(t, m.View(), "Entry deleted.")
}

func TestListModel_ToggleFavorite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vault := mock.NewMockVaultService(ctrl)
	vault.EXPECT().UpdateEntry(gomock.Any(), models.EntryID("1"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.EntryID, upd models.EntryUpdate) (models.PlainEntry, error) {
			require.NotNil(t, upd.Favorite)
			assert.True(t, *upd.Favorite)
			assert.Nil(t, upd.Password, "only the flag changes")
			return testEntries[0], nil
		})

	m, _ := newTestList(t, vault)
	m.Update(entriesLoadedMsg{entries: testEntries})

	_, cmd := m.Update(runes("f"))
	_, ok := exec(t, cmd).(entrySavedMsg)
	assert.True(t, ok)
}

func TestListModel_Navigation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestList(t, mock.NewMockVaultService(ctrl))
	m.Update(entriesLoadedMsg{entries: testEntries})

	_, cmd := m.Update(enterKey)
	nav := requireNavigate(t, exec(t, cmd), pageDetail)
	assert.Equal(t, openEntryMsg{id: "1"}, nav.Payload)

	_, cmd = m.Update(runes("e"))
	nav = requireNavigate(t, exec(t, cmd), pageForm)
	edit, ok := nav.Payload.(editEntryMsg)
	require.True(t, ok)
	assert.Equal(t, "github", edit.entry.Service)

	_, cmd = m.Update(runes("g"))
	requireNavigate(t, exec(t, cmd), pageGenerate)

	_, cmd = m.Update(runes("p"))
	nav = requireNavigate(t, exec(t, cmd), pageSetPin)
	assert.Equal(t, changePinMsg{}, nav.Payload)
}

func TestListModel_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m, _ := newTestList(t, mock.NewMockVaultService(ctrl))
	m.Update(entriesLoadedMsg{err: session.ErrVaultLocked})

	assert.Contains(t, m.View(), "vault is locked")
}

// ── detail ───────────────────────────────────────────────────────────────────

func TestDetailModel_OpenAndReveal(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	accessed := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	entry := testEntries[0]
	entry.LastAccessed = &accessed
	entry.AccessCount = 3

	vault := mock.NewMockVaultService(ctrl)
	vault.EXPECT().GetEntry(gomock.Any(), models.EntryID("1")).Return(entry, nil)

	m := NewDetailModel(context.Background(), vault)
	_, cmd := m.Update(openEntryMsg{id: "1"})
	m.Update(exec(t, cmd))

	view := m.View()
	assert.Contains(t, view, "github")
	assert.Contains(t, view, "3 times")
	assert.NotContains(t, view, "gh-secret")

	m.Update(runes("r"))
	assert.Contains(t, m.View(), "gh-secret")

	_, cmd = m.Update(escKey)
	requireNavigate(t, exec(t, cmd), pageList)
	assert.False(t, m.loaded)
}

func TestDetailModel_UnreadableEntry(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewDetailModel(context.Background(), mock.NewMockVaultService(ctrl))
	m.Update(entryOpenedMsg{entry: models.PlainEntry{ID: "x", Service: "legacy", Unreadable: true}})

	assert.Contains(t, m.View(), "cannot be decrypted")
	_, cmd := m.Update(runes("e"))
	assert.Nil(t, cmd, "unreadable entries are not editable")
}

// ── form ─────────────────────────────────────────────────────────────────────

func TestFormModel_Add(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vault := mock.NewMockVaultService(ctrl)
	generator := mock.NewMockGeneratorService(ctrl)
	generator.EXPECT().EstimateStrength(gomock.Any()).Return(models.Strength{Score: 80, ReadableTime: "centuries"}).AnyTimes()
	vault.EXPECT().AddEntry(gomock.Any(), models.NewEntry{Service: "github", Password: "pw", Version: 2}).
		Return(models.PlainEntry{ID: "1", Service: "github"}, nil)

	m := NewFormModel(context.Background(), vault, generator)
	m.Update(editEntryMsg{draft: &models.NewEntry{Service: "github", Password: "pw", Version: 2}})
	assert.Contains(t, m.View(), "Strength: 80/100")

	_, cmd := m.Update(ctrlS)
	_, cmd = m.Update(exec(t, cmd))

	nav := requireNavigate(t, exec(t, cmd), pageList)
	assert.Equal(t, reloadMsg{status: "Entry added."}, nav.Payload)
}

func TestFormModel_EditKeepsID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vault := mock.NewMockVaultService(ctrl)
	generator := mock.NewMockGeneratorService(ctrl)
	generator.EXPECT().EstimateStrength(gomock.Any()).Return(models.Strength{}).AnyTimes()
	vault.EXPECT().UpdateEntry(gomock.Any(), models.EntryID("1"), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ models.EntryID, upd models.EntryUpdate) (models.PlainEntry, error) {
			assert.Equal(t, "github", *upd.Service)
			assert.Equal(t, "gh-secret", *upd.Password)
			return testEntries[0], nil
		})

	entry := testEntries[0]
	m := NewFormModel(context.Background(), vault, generator)
	m.Update(editEntryMsg{entry: &entry})
	assert.Contains(t, m.View(), "EDIT: GITHUB")

	_, cmd := m.Update(ctrlS)
	_, cmd = m.Update(exec(t, cmd))
	nav := requireNavigate(t, exec(t, cmd), pageList)
	assert.Equal(t, reloadMsg{status: "Entry updated."}, nav.Payload)
}

func TestFormModel_InvalidVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewFormModel(context.Background(), mock.NewMockVaultService(ctrl), mock.NewMockGeneratorService(ctrl))
	m.inputs[fieldService].SetValue("github")
	m.inputs[fieldVersion].SetValue("zero")

	_, cmd := m.Update(ctrlS)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Version must be a positive number")
}

func TestFormModel_Suggestions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	vault := mock.NewMockVaultService(ctrl)
	vault.EXPECT().Suggestions(gomock.Any(), "g", 0).Return(testEntries, nil)

	m := NewFormModel(context.Background(), vault, mock.NewMockGeneratorService(ctrl))
	_, cmd := m.Update(runes("g"))
	for _, msg := range collect(cmd) {
		if s, ok := msg.(suggestionsMsg); ok {
			m.Update(s)
		}
	}

	assert.Contains(t, m.View(), "Already in the vault")
	assert.Contains(t, m.View(), "alice@example.com")
}

// ── generator ────────────────────────────────────────────────────────────────

func TestGenerateModel_Generate(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	generator := mock.NewMockGeneratorService(ctrl)
	generator.EXPECT().Generate(gomock.Any(), models.GenerateRequest{
		Phrase:  "correct horse battery staple",
		Service: models.ServiceIdentity{Name: "gmail", Version: 1},
		Length:  16,
	}).Return("r7,9p0Lp1x115dpm", nil)
	generator.EXPECT().EstimateStrength("r7,9p0Lp1x115dpm").Return(models.Strength{Score: 100, ReadableTime: "centuries"})

	m := NewGenerateModel(context.Background(), generator, 16)
	m.inputs[genPhrase].SetValue("correct horse battery staple")
	m.inputs[genService].SetValue("gmail")
	m.inputs[genLength].SetValue("16")

	_, cmd := m.Update(enterKey)
	m.Update(exec(t, cmd))

	view := m.View()
	assert.Contains(t, view, "Strength: 100/100")
	assert.NotContains(t, view, "r7,9p0Lp1x115dpm")

	m.Update(ctrlR)
	assert.Contains(t, m.View(), "r7,9p0Lp1x115dpm")

	_, cmd = m.Update(ctrlS)
	nav := requireNavigate(t, exec(t, cmd), pageForm)
	edit, ok := nav.Payload.(editEntryMsg)
	require.True(t, ok)
	assert.Nil(t, edit.entry)
	assert.Equal(t, &models.NewEntry{Service: "gmail", Password: "r7,9p0Lp1x115dpm", Version: 1}, edit.draft)
}

func TestGenerateModel_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	generator := mock.NewMockGeneratorService(ctrl)
	generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
		Return("", errors.Join(service.ErrInvalidGenerateRequest, errors.New("master phrase is required")))

	m := NewGenerateModel(context.Background(), generator, 16)
	_, cmd := m.Update(enterKey)
	m.Update(exec(t, cmd))

	assert.Contains(t, m.View(), "invalid generate request")
}

func TestGenerateModel_LengthNotANumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	m := NewGenerateModel(context.Background(), mock.NewMockGeneratorService(ctrl), 16)
	m.inputs[genLength].SetValue("long")

	_, cmd := m.Update(enterKey)
	assert.Nil(t, cmd)
	assert.Contains(t, m.View(), "Length must be a number")
}

// ── root ─────────────────────────────────────────────────────────────────────

func newTestRoot(t *testing.T, act activity) (RootModel, *mock.MockVaultService) {
	t.Helper()
	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultService(ctrl)
	pages := map[string]tea.Model{
		pageUnlock: NewUnlockModel(context.Background(), vault, 6),
		pageList:   NewListModel(context.Background(), vault),
	}
	return NewRootModel(pages, pageList, act, models.NewBuildInfo("1.0.0", "", "")), vault
}

func TestRootModel_VaultLockedShowsUnlock(t *testing.T) {
	root, _ := newTestRoot(t, nil)

	updated, cmd := root.Update(vaultLockedMsg{})
	require.NotNil(t, cmd)
	r := updated.(RootModel)

	_, isUnlock := r.current.(*UnlockModel)
	assert.True(t, isUnlock)
	assert.Contains(t, r.View(), "UNLOCK")
}

func TestRootModel_VaultLockedClearsEveryPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock.NewMockVaultService(ctrl)

	list := NewListModel(context.Background(), vault)
	list.Update(entriesLoadedMsg{entries: testEntries})
	require.NotEmpty(t, list.entries)

	detail := NewDetailModel(context.Background(), vault)
	detail.Update(entryOpenedMsg{entry: testEntries[0]})
	detail.Update(runes("r"))
	require.Contains(t, detail.View(), testEntries[0].Password)

	pages := map[string]tea.Model{
		pageUnlock: NewUnlockModel(context.Background(), vault, 6),
		pageList:   list,
		pageDetail: detail,
	}
	root := NewRootModel(pages, pageDetail, nil, models.NewBuildInfo("1.0.0", "", ""))

	updated, _ := root.Update(vaultLockedMsg{})
	r := updated.(RootModel)

	_, isUnlock := r.current.(*UnlockModel)
	assert.True(t, isUnlock)
	assert.Empty(t, list.entries, "list page must drop decrypted entries")
	assert.False(t, detail.loaded)
	assert.False(t, detail.reveal)
	assert.Equal(t, models.PlainEntry{}, detail.entry, "detail page must drop the open entry")
	assert.NotContains(t, detail.View(), testEntries[0].Password)
}

func TestRootModel_Navigate(t *testing.T) {
	root, _ := newTestRoot(t, nil)

	updated, cmd := root.Update(NavigateTo{Page: pageUnlock, Payload: vaultLockedMsg{}})
	r := updated.(RootModel)
	_, isUnlock := r.current.(*UnlockModel)
	assert.True(t, isUnlock)
	assert.Equal(t, vaultLockedMsg{}, exec(t, cmd))

	updated, cmd = r.Update(NavigateTo{Page: "missing"})
	assert.Nil(t, cmd)
	assert.Equal(t, r.current, updated.(RootModel).current)
}

func TestRootModel_KeysCountAsActivity(t *testing.T) {
	act := &fakeActivity{unlocked: true}
	root, _ := newTestRoot(t, act)

	updated, _ := root.Update(autoLockWarningMsg{remaining: time.Minute})
	r := updated.(RootModel)
	assert.Contains(t, r.View(), "locks automatically in 1m0s")

	updated, _ = r.Update(runes("j"))
	r = updated.(RootModel)
	assert.Equal(t, 1, act.touches)
	assert.NotContains(t, r.View(), "locks automatically")
}

func TestRootModel_BuildInfoAndQuit(t *testing.T) {
	root, _ := newTestRoot(t, nil)

	updated, _ := root.Update(tea.KeyMsg{Type: tea.KeyCtrlB})
	r := updated.(RootModel)
	view := r.View()
	assert.Contains(t, view, "Version: 1.0.0")
	assert.True(t, strings.Contains(view, "Commit: N/A"))

	updated, _ = r.Update(escKey)
	r = updated.(RootModel)
	assert.False(t, r.showBuildInfo)

	updated, cmd := r.Update(ctrlC)
	assert.True(t, updated.(RootModel).quitByUser)
	assert.NotNil(t, cmd)
}
