package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-mempass/internal/logger"
	"github.com/MKhiriev/go-mempass/internal/service"
	"github.com/MKhiriev/go-mempass/internal/tui"
)

// Environment variables that let scripts run commands without a terminal.
const (
	EnvPin            = "MEMPASS_PIN"
	EnvPhrase         = "MEMPASS_PHRASE"
	EnvExportPassword = "MEMPASS_EXPORT_PASSWORD"
)

var _ Client = (*App)(nil)

type App struct {
	generator service.GeneratorService
	vault     service.VaultService
	ui        UI
	prompt    Prompter
	out       io.Writer
	copy      func(string) error
	logger    *logger.Logger
}

// NewApp wires the application. ui may be nil for the one-shot commands, and
// services.VaultService may be nil for the commands that never open the
// vault.
func NewApp(services *service.Services, ui UI, p Prompter, log *logger.Logger) (*App, error) {
	if services == nil || services.GeneratorService == nil {
		return nil, errors.New("client: generator service is required")
	}
	if p == nil {
		return nil, errors.New("client: prompter is required")
	}

	return &App{
		generator: services.GeneratorService,
		vault:     services.VaultService,
		ui:        ui,
		prompt:    p,
		out:       os.Stdout,
		copy:      clipboard.WriteAll,
		logger:    log,
	}, nil
}

// Run hands control to the terminal UI and locks the vault once it exits.
// Leaving the UI with ctrl+c is a normal exit.
func (a *App) Run(ctx context.Context) error {
	if a.ui == nil {
		return errors.New("client: no ui configured")
	}
	if a.vault != nil {
		defer a.vault.Lock()
	}

	err := a.ui.Run(ctx)
	if errors.Is(err, tui.ErrUserQuit) {
		a.logger.Info().Str("func", "App.Run").Msg("user quit")
		return nil
	}
	if err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// secret returns the value of the environment variable env when set and
// asks the user otherwise.
func (a *App) secret(env, label string) ([]byte, error) {
	if v := promptFromEnv(env); v != nil {
		return v, nil
	}
	return a.prompt.ReadSecret(label)
}

// unlock opens the vault with a PIN from the environment or the terminal.
func (a *App) unlock(ctx context.Context) error {
	if a.vault == nil {
		return errors.New("client: vault service is required")
	}

	hasPin, err := a.vault.HasPin(ctx)
	if err != nil {
		return err
	}
	if !hasPin {
		return service.ErrNoPinSet
	}

	pin, err := a.secret(EnvPin, "PIN: ")
	if err != nil {
		return err
	}
	defer wipe(pin)

	if _, err = a.vault.VerifyPin(ctx, string(pin)); err != nil {
		return err
	}
	return nil
}
