// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DougDougEmojiChat Contributors

package handlers

import (
	"context"
	"fmt"

	"github.com/DougDougDevDev/DougDougEmojiChat/internal/command"
)

// ListHandler prints every enabled emoji token with its glyph, then
// the configured shortcuts.
func ListHandler(_ context.Context, exec *command.Execution) error {
	tokens := exec.Services.Emoji.Tokens()

	//nolint:errcheck // console output is best-effort
	fmt.Fprintf(exec.Output, "%d emojis enabled (%s pack):\n",
		len(tokens), exec.Services.Emoji.ActiveVariant().Name)
	for _, token := range tokens {
		glyph, _ := exec.Services.Emoji.Glyph(token)
		//nolint:errcheck // console output is best-effort
		fmt.Fprintf(exec.Output, "  %s %c\n", token, glyph)
	}

	shortcuts := exec.Services.Emoji.Shortcuts()
	if len(shortcuts) > 0 {
		//nolint:errcheck // console output is best-effort
		fmt.Fprintf(exec.Output, "%d shortcuts configured\n", len(shortcuts))
	}
	return nil
}
