// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DougDougEmojiChat Contributors

package handlers

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/DougDougDevDev/DougDougEmojiChat/internal/command"
)

// ReloadHandler re-reads configuration and rebuilds the emoji
// dictionaries. The opt-out registry is not touched.
func ReloadHandler(_ context.Context, exec *command.Execution) error {
	if err := exec.Services.Reload(); err != nil {
		//nolint:wrapcheck // ErrReloadFailed creates a structured oops error
		return command.ErrReloadFailed(err)
	}

	slog.Info("configuration reloaded",
		"emojis", len(exec.Services.Emoji.Tokens()),
		"shortcuts", len(exec.Services.Emoji.Shortcuts()),
	)
	//nolint:errcheck // console output is best-effort
	fmt.Fprintf(exec.Output, "Reloaded: %d emojis, %d shortcuts.\n",
		len(exec.Services.Emoji.Tokens()), len(exec.Services.Emoji.Shortcuts()))
	return nil
}
