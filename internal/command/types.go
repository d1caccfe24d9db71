// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DougDougEmojiChat Contributors

// Package command provides the admin command registry and dispatch for
// the emojichat console.
package command

import (
	"context"
	"io"

	"github.com/oklog/ulid/v2"

	"github.com/DougDougDevDev/DougDougEmojiChat/internal/chat"
	"github.com/DougDougDevDev/DougDougEmojiChat/internal/emoji"
)

// Handler is the function signature for command handlers.
type Handler func(ctx context.Context, exec *Execution) error

// Entry represents a registered command.
type Entry struct {
	Name    string  // canonical name (e.g. "reload")
	Handler Handler // command implementation
	Help    string  // short description (one line)
	Usage   string  // usage pattern (e.g. "toggle <user-id>")
}

// Execution provides context for one command invocation.
type Execution struct {
	UserID   ulid.ULID // invoking user; zero for the console
	Args     string    // raw arguments after the command name
	Output   io.Writer
	Registry *Registry
	Services *Services
}

// Services gives handlers access to the running application.
// Handlers must not retain references beyond execution.
type Services struct {
	Emoji   *emoji.Handler
	Chat    *chat.Service
	Version string
	// Reload re-reads configuration and reloads the emoji handler.
	Reload func() error
}
