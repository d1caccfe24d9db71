// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DougDougEmojiChat Contributors

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/DougDougDevDev/DougDougEmojiChat/internal/config"
)

// NewInitConfigCmd creates the init-config subcommand.
func NewInitConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init-config [path]",
		Short: "Write the packaged default configuration",
		Long: `Write the packaged default configuration to path (default
"emojichat.yml"). Refuses to overwrite an existing file.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "emojichat.yml"
			if len(args) == 1 {
				path = args[0]
			}
			if err := config.WriteDefault(path); err != nil {
				return fmt.Errorf("writing default config: %w", err)
			}
			cmd.Printf("wrote %s\n", path)
			return nil
		},
	}
}
