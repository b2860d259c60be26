package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-mempass/internal/logger"
	"github.com/MKhiriev/go-mempass/internal/mock"
	"github.com/MKhiriev/go-mempass/internal/service"
	"github.com/MKhiriev/go-mempass/internal/tui"
	"github.com/MKhiriev/go-mempass/models"
)

// ── helpers ──────────────────────────────────────────────────────────────────

type fakePrompter struct {
	answers []string
	asked   []string
}

func (p *fakePrompter) next(label string) (string, error) {
	p.asked = append(p.asked, label)
	if len(p.answers) == 0 {
		return "", io.EOF
	}
	a := p.answers[0]
	p.answers = p.answers[1:]
	return a, nil
}

func (p *fakePrompter) ReadSecret(label string) ([]byte, error) {
	a, err := p.next(label)
	if err != nil {
		return nil, err
	}
	return []byte(a), nil
}

func (p *fakePrompter) ReadConfirmed(label, _ string) ([]byte, error) {
	return p.ReadSecret(label)
}

func (p *fakePrompter) ReadLine(label string) (string, error) {
	return p.next(label)
}

type fakeUI struct {
	err error
	ran bool
}

func (u *fakeUI) Run(context.Context) error {
	u.ran = true
	return u.err
}

type fixture struct {
	app       *App
	vault     *mock.MockVaultService
	generator *mock.MockGeneratorService
	prompt    *fakePrompter
	out       *bytes.Buffer
	copied    string
}

func newFixture(t *testing.T, ui UI, answers ...string) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &fixture{
		vault:     mock.NewMockVaultService(ctrl),
		generator: mock.NewMockGeneratorService(ctrl),
		prompt:    &fakePrompter{answers: answers},
		out:       &bytes.Buffer{},
	}

	app, err := NewApp(&service.Services{GeneratorService: f.generator, VaultService: f.vault}, ui, f.prompt, logger.Nop())
	require.NoError(t, err)
	app.out = f.out
	app.copy = func(s string) error {
		f.copied = s
		return nil
	}
	f.app = app
	return f
}

func (f *fixture) expectUnlock(pin string) {
	f.vault.EXPECT().HasPin(gomock.Any()).Return(true, nil)
	f.vault.EXPECT().VerifyPin(gomock.Any(), pin).Return(true, nil)
	f.vault.EXPECT().Lock().Return(true)
}

// ── construction and ui ──────────────────────────────────────────────────────

func TestNewApp_Validation(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mock.NewMockGeneratorService(ctrl)

	_, err := NewApp(nil, nil, &fakePrompter{}, logger.Nop())
	assert.Error(t, err)

	_, err = NewApp(&service.Services{GeneratorService: gen}, nil, nil, logger.Nop())
	assert.Error(t, err)

	app, err := NewApp(&service.Services{GeneratorService: gen}, nil, &fakePrompter{}, logger.Nop())
	require.NoError(t, err)
	assert.Nil(t, app.vault)
}

func TestApp_Run(t *testing.T) {
	tests := []struct {
		name    string
		uiErr   error
		wantErr bool
	}{
		{name: "normal exit", uiErr: nil},
		{name: "ctrl+c", uiErr: tui.ErrUserQuit},
		{name: "ui failure", uiErr: errors.New("no tty"), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ui := &fakeUI{err: tt.uiErr}
			f := newFixture(t, ui)
			f.vault.EXPECT().Lock().Return(true)

			err := f.app.Run(context.Background())

			assert.True(t, ui.ran)
			if tt.wantErr {
				assert.ErrorIs(t, err, tt.uiErr)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestApp_Run_WithoutUI(t *testing.T) {
	f := newFixture(t, nil)
	assert.Error(t, f.app.Run(context.Background()))
}

// ── generate ─────────────────────────────────────────────────────────────────

func TestApp_Generate(t *testing.T) {
	f := newFixture(t, nil, "correct horse battery staple")
	f.generator.EXPECT().Generate(gomock.Any(), models.GenerateRequest{
		Phrase:  "correct horse battery staple",
		Service: models.ServiceIdentity{Name: "gmail", Version: 1},
		Length:  16,
	}).Return("r7,9p0Lp1x115dpm", nil)

	err := f.app.Generate(context.Background(), GenerateOptions{Service: "gmail", Version: 1, Length: 16})

	require.NoError(t, err)
	assert.Equal(t, "r7,9p0Lp1x115dpm\n", f.out.String())
	assert.Equal(t, []string{"Master phrase: "}, f.prompt.asked)
}

func TestApp_Generate_CopyWithPhraseFromEnv(t *testing.T) {
	t.Setenv(EnvPhrase, "master")

	f := newFixture(t, nil)
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req models.GenerateRequest) (string, error) {
			assert.Equal(t, "master", req.Phrase)
			return "z9^1bd9d94131lcj5zXn", nil
		})

	err := f.app.Generate(context.Background(), GenerateOptions{Service: "github", Version: 1, Length: 20, Copy: true})

	require.NoError(t, err)
	assert.Empty(t, f.prompt.asked, "the environment wins over the prompt")
	assert.Equal(t, "z9^1bd9d94131lcj5zXn", f.copied)
	assert.NotContains(t, f.out.String(), "z9^1bd9d94131lcj5zXn")
}

func TestApp_Generate_InvalidRequest(t *testing.T) {
	f := newFixture(t, nil, "")
	f.generator.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", service.ErrInvalidGenerateRequest)

	err := f.app.Generate(context.Background(), GenerateOptions{Service: "gmail"})
	assert.ErrorIs(t, err, service.ErrInvalidGenerateRequest)
	assert.Empty(t, f.out.String())
}

func TestApp_Strength(t *testing.T) {
	f := newFixture(t, nil, "typed-password")
	f.generator.EXPECT().EstimateStrength("from-arg").Return(models.Strength{Score: 40, ReadableTime: "3 hours"})
	f.generator.EXPECT().EstimateStrength("typed-password").Return(models.Strength{Score: 70, ReadableTime: "2 years"})

	require.NoError(t, f.app.Strength("from-arg"))
	require.NoError(t, f.app.Strength(""))

	assert.Equal(t, "Score: 40/100, cracked in 3 hours\nScore: 70/100, cracked in 2 years\n", f.out.String())
}

// ── export / import ──────────────────────────────────────────────────────────

func TestApp_Export_JSON(t *testing.T) {
	f := newFixture(t, nil, "123456", "export-password-1")
	f.expectUnlock("123456")
	f.vault.EXPECT().Export(gomock.Any(), "export-password-1").Return(&models.ExportBundle{
		Encrypted:  true,
		Salt:       "c2FsdA==",
		IV:         "aXY=",
		Ciphertext: "Y3Q=",
		Iterations: 100000,
		Version:    models.ExportVersionCurrent,
	}, nil)

	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, f.app.Export(context.Background(), ExportOptions{Path: path}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var bundle models.ExportBundle
	require.NoError(t, json.Unmarshal(data, &bundle))
	assert.True(t, bundle.Encrypted)
	assert.Equal(t, 100000, bundle.Iterations)
	assert.Contains(t, f.out.String(), "Vault exported to")
}

func TestApp_Export_KDBX(t *testing.T) {
	t.Setenv(EnvPin, "123456")
	t.Setenv(EnvExportPassword, "keepass-password")

	f := newFixture(t, nil)
	f.expectUnlock("123456")
	f.vault.EXPECT().ListEntries(gomock.Any()).Return([]models.PlainEntry{
		{ID: "1", Service: "github", Username: "alice", Password: "gh-secret", Version: 1},
	}, nil)

	path := filepath.Join(t.TempDir(), "vault.kdbx")
	require.NoError(t, f.app.Export(context.Background(), ExportOptions{Path: path, Format: "KDBX"}))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.NotZero(t, info.Size())
	assert.Equal(t, "Exported 1 entries to "+path+"\n", f.out.String())
	assert.Empty(t, f.prompt.asked)
}

func TestApp_Export_Errors(t *testing.T) {
	t.Run("unknown format", func(t *testing.T) {
		f := newFixture(t, nil)
		err := f.app.Export(context.Background(), ExportOptions{Path: "x", Format: "csv"})
		assert.ErrorIs(t, err, ErrUnknownFormat)
	})

	t.Run("no pin", func(t *testing.T) {
		f := newFixture(t, nil)
		f.vault.EXPECT().HasPin(gomock.Any()).Return(false, nil)

		err := f.app.Export(context.Background(), ExportOptions{Path: "x"})
		assert.ErrorIs(t, err, service.ErrNoPinSet)
	})

	t.Run("wrong pin", func(t *testing.T) {
		f := newFixture(t, nil, "000000")
		f.vault.EXPECT().HasPin(gomock.Any()).Return(true, nil)
		f.vault.EXPECT().VerifyPin(gomock.Any(), "000000").Return(false, &service.WrongPinError{AttemptsLeft: 4})

		err := f.app.Export(context.Background(), ExportOptions{Path: "x"})
		assert.ErrorIs(t, err, service.ErrWrongPin)
	})

	t.Run("password too short", func(t *testing.T) {
		f := newFixture(t, nil, "123456", "short")
		f.expectUnlock("123456")
		f.vault.EXPECT().Export(gomock.Any(), "short").Return(nil, service.ErrExportPasswordTooShort)

		path := filepath.Join(t.TempDir(), "backup.json")
		err := f.app.Export(context.Background(), ExportOptions{Path: path})

		assert.ErrorIs(t, err, service.ErrExportPasswordTooShort)
		assert.NoFileExists(t, path)
	})
}

func TestApp_Import(t *testing.T) {
	bundle := models.ExportBundle{Encrypted: true, Salt: "c2FsdA==", IV: "aXY=", Ciphertext: "Y3Q=", Iterations: 100000, Version: models.ExportVersionCurrent}
	data, err := json.Marshal(bundle)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "backup.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	f := newFixture(t, nil, "123456", "export-password-1")
	f.expectUnlock("123456")
	f.vault.EXPECT().Import(gomock.Any(), bundle, "export-password-1").Return(3, nil)

	require.NoError(t, f.app.Import(context.Background(), path))
	assert.Equal(t, "Imported 3 entries.\n", f.out.String())
}

func TestApp_Import_PlainBundleSkipsPassword(t *testing.T) {
	bundle := models.ExportBundle{Version: models.ExportVersionCurrent, Vault: []models.ExportedEntry{{Service: "github", Password: "pw"}}}
	data, err := json.Marshal(bundle)
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "plain.json")
	require.NoError(t, os.WriteFile(path, data, 0o600))

	f := newFixture(t, nil, "123456")
	f.expectUnlock("123456")
	f.vault.EXPECT().Import(gomock.Any(), gomock.Any(), "").Return(1, nil)

	require.NoError(t, f.app.Import(context.Background(), path))
	assert.Equal(t, []string{"PIN: "}, f.prompt.asked)
}

func TestApp_Import_NotJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	f := newFixture(t, nil)
	err := f.app.Import(context.Background(), path)
	assert.ErrorIs(t, err, service.ErrExportFormat)

	err = f.app.Import(context.Background(), filepath.Join(t.TempDir(), "missing.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// ── reset ────────────────────────────────────────────────────────────────────

func TestApp_Reset(t *testing.T) {
	tests := []struct {
		name    string
		force   bool
		answer  []string
		reset   bool
		wantErr error
	}{
		{name: "confirmed", answer: []string{"erase"}, reset: true},
		{name: "forced", force: true, reset: true},
		{name: "declined", answer: []string{"no"}, wantErr: context.Canceled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, nil, tt.answer...)
			if tt.reset {
				f.vault.EXPECT().ResetPin(gomock.Any()).Return(nil)
			}

			err := f.app.Reset(context.Background(), tt.force)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "Vault erased.\n", f.out.String())
		})
	}
}
