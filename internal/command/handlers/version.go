// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DougDougEmojiChat Contributors

package handlers

import (
	"context"
	"fmt"

	"github.com/DougDougDevDev/DougDougEmojiChat/internal/command"
)

// VersionHandler prints the running version and the active glyph pack.
func VersionHandler(_ context.Context, exec *command.Execution) error {
	variant := exec.Services.Emoji.ActiveVariant()

	//nolint:errcheck // console output is best-effort
	fmt.Fprintf(exec.Output, "emojichat %s\n", exec.Services.Version)
	if variant.Resolved() {
		//nolint:errcheck // console output is best-effort
		fmt.Fprintf(exec.Output, "pack: %s (id %d)\n  url:  %s\n  sha1: %s\n",
			variant.Name, variant.ID, variant.PackURL, variant.PackSHA1)
	}
	return nil
}
