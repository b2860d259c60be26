// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import "context"

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the interactive front-end.
type UI interface {
	Run(ctx context.Context) error
}

// Prompter reads secrets from the user. It is satisfied by
// *prompt.Prompter.
type Prompter interface {
	ReadSecret(label string) ([]byte, error)
	ReadConfirmed(label, confirmLabel string) ([]byte, error)
	ReadLine(label string) (string, error)
}
