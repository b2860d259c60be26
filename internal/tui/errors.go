// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-mempass/internal/app"
)

// ErrUserQuit is returned by [TUI.Run] when the user leaves with ctrl+c.
var ErrUserQuit = errors.New("user quit")

func renderError(err error) string {
	if err == nil {
		return ""
	}
	return errorStyle.Render("Error: " + app.UserMessage(err))
}
