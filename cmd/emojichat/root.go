package main

import (
	"github.com/spf13/cobra"
)

// Global flags available to all subcommands.
var configFile string

// NewRootCmd creates the root command for the emojichat CLI.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "emojichat",
		Short: "emojichat - emoji and shortcut translation for game chat",
		Long: `emojichat translates token shorthand (":100:") and operator-defined
shortcuts (":)") in chat messages into private-use glyphs rendered by a
resource pack.`,
	}

	// Global flag for config file path
	cmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path")

	// Add subcommands
	cmd.AddCommand(NewServeCmd())
	cmd.AddCommand(NewTranslateCmd())
	cmd.AddCommand(NewInitConfigCmd())

	return cmd
}
