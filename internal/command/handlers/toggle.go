// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DougDougEmojiChat Contributors

package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/oklog/ulid/v2"

	"github.com/DougDougDevDev/DougDougEmojiChat/internal/command"
)

// ToggleHandler flips shortcut translation for the user given as the
// first argument, or for the invoking user when no argument is given.
func ToggleHandler(_ context.Context, exec *command.Execution) error {
	userID := exec.UserID
	if args := strings.TrimSpace(exec.Args); args != "" {
		parsed, err := ulid.Parse(args)
		if err != nil {
			//nolint:wrapcheck // ErrInvalidArgs creates a structured oops error
			return command.ErrInvalidArgs("toggle", "toggle <user-id>")
		}
		userID = parsed
	}

	off := exec.Services.Chat.ToggleShortcuts(userID)
	state := "on"
	if off {
		state = "off"
	}
	//nolint:errcheck // console output is best-effort
	fmt.Fprintf(exec.Output, "Shortcuts are now %s for %s.\n", state, userID.String())
	return nil
}
