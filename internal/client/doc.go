// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the mempass application runtime.
//
// It hands control to the terminal UI and runs the one-shot commands
// (generate, export, import, reset) on top of the vault services. Every
// command that unlocks the vault locks it again before returning.
package client
