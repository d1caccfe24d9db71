// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DougDougEmojiChat Contributors

// Package handlers implements the built-in emojichat admin commands.
package handlers

import (
	"github.com/DougDougDevDev/DougDougEmojiChat/internal/command"
)

// RegisterAll registers every built-in command with the registry.
func RegisterAll(registry *command.Registry) {
	registry.Register(command.Entry{
		Name:    "help",
		Handler: HelpHandler,
		Help:    "List available commands",
		Usage:   "help",
	})
	registry.Register(command.Entry{
		Name:    "list",
		Handler: ListHandler,
		Help:    "List enabled emoji tokens and their glyphs",
		Usage:   "list",
	})
	registry.Register(command.Entry{
		Name:    "reload",
		Handler: ReloadHandler,
		Help:    "Reload configuration and rebuild the emoji dictionaries",
		Usage:   "reload",
	})
	registry.Register(command.Entry{
		Name:    "toggle",
		Handler: ToggleHandler,
		Help:    "Toggle shortcut translation for a user",
		Usage:   "toggle <user-id>",
	})
	registry.Register(command.Entry{
		Name:    "version",
		Handler: VersionHandler,
		Help:    "Show version and glyph pack details",
		Usage:   "version",
	})
}
