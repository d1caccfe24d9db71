// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DougDougEmojiChat Contributors

package handlers

import (
	"context"
	"fmt"

	"github.com/DougDougDevDev/DougDougEmojiChat/internal/command"
)

// HelpHandler lists every registered command with its usage.
func HelpHandler(_ context.Context, exec *command.Execution) error {
	for _, entry := range exec.Registry.All() {
		//nolint:errcheck // console output is best-effort
		fmt.Fprintf(exec.Output, "%-24s %s\n", entry.Usage, entry.Help)
	}
	return nil
}
