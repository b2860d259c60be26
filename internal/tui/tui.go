// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the interactive terminal front-end of mempass, built on
// Bubble Tea. A [RootModel] routes between pages; session lock events are
// delivered to the program as messages.
package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-mempass/internal/config"
	"github.com/MKhiriev/go-mempass/internal/logger"
	"github.com/MKhiriev/go-mempass/internal/service"
	"github.com/MKhiriev/go-mempass/models"
)

type TUI struct {
	services  *service.Services
	cfg       config.StructuredConfig
	buildInfo models.BuildInfo
	logger    *logger.Logger
}

func New(services *service.Services, cfg config.StructuredConfig, buildInfo models.BuildInfo, log *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, fmt.Errorf("tui: services are required")
	}
	return &TUI{services: services, cfg: cfg, buildInfo: buildInfo, logger: log}, nil
}

// Run shows the PIN setup or unlock screen and blocks until the user quits.
// It returns [ErrUserQuit] when the program was left with ctrl+c.
func (t *TUI) Run(ctx context.Context) error {
	hasPin, err := t.services.VaultService.HasPin(ctx)
	if err != nil {
		return err
	}
	start := pageUnlock
	if !hasPin {
		start = pageSetPin
	}

	root := NewRootModel(t.pages(ctx), start, t.services.Session, t.buildInfo)
	program := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	// hooks may fire from inside an Update, so delivery must not block the
	// event loop
	t.services.Session.OnLock(func() {
		go program.Send(vaultLockedMsg{})
	})
	t.services.Session.OnAutoLockWarning(func(remaining time.Duration) {
		go program.Send(autoLockWarningMsg{remaining: remaining})
	})

	t.logger.Info().Str("func", "TUI.Run").Str("page", start).Msg("starting tui")
	finalModel, err := program.Run()
	if err != nil {
		return fmt.Errorf("run tui: %w", err)
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}
	return nil
}

func (t *TUI) pages(ctx context.Context) map[string]tea.Model {
	vault := t.services.VaultService
	generator := t.services.GeneratorService
	pinLength := t.cfg.Vault.PinLength

	return map[string]tea.Model{
		pageSetPin:   NewSetPinModel(ctx, vault, pinLength),
		pageUnlock:   NewUnlockModel(ctx, vault, pinLength),
		pageList:     NewListModel(ctx, vault),
		pageDetail:   NewDetailModel(ctx, vault),
		pageForm:     NewFormModel(ctx, vault, generator),
		pageGenerate: NewGenerateModel(ctx, generator, t.cfg.Generator.DefaultLength),
	}
}
