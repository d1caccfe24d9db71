// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DougDougEmojiChat Contributors

package main

import (
	"bufio"
	"fmt"
	"log/slog"
	"strings"

	"github.com/oklog/ulid/v2"
	"github.com/spf13/cobra"

	"github.com/DougDougDevDev/DougDougEmojiChat/internal/chat"
	"github.com/DougDougDevDev/DougDougEmojiChat/internal/config"
	"github.com/DougDougDevDev/DougDougEmojiChat/internal/emoji"
)

// NewTranslateCmd creates the translate subcommand, a one-shot run of
// the chat pipeline for scripting and debugging.
func NewTranslateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate [message]",
		Short: "Translate a message through the chat pipeline",
		Long: `Translate a single message (or each stdin line when no message is
given) using the configured pack, shortcuts, and disabled list.
Rejected messages print as "rejected".`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTranslate(cmd, args)
		},
	}
	return cmd
}

func runTranslate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(configFile, nil)
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	logger := slog.New(slog.DiscardHandler)
	handler := emoji.NewHandler(logger)
	handler.Load(cfg.Settings())
	svc := chat.NewService(handler, logger)

	emit := func(message string) {
		res := svc.ProcessInbound(ulid.ULID{}, message)
		if res.Rejected {
			fmt.Fprintln(cmd.OutOrStdout(), "rejected")
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), res.Message)
	}

	if len(args) > 0 {
		emit(strings.Join(args, " "))
		return nil
	}

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for scanner.Scan() {
		emit(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}
