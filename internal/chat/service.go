// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DougDougEmojiChat Contributors

// Package chat runs inbound messages through the emoji translation
// pipeline: opt-out check, shortcut expansion, disabled-glyph
// rejection, then token-to-glyph expansion.
package chat

import (
	"log/slog"

	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/DougDougDevDev/DougDougEmojiChat/internal/emoji"
)

// MessagesRejected counts inbound messages rejected for carrying a
// disabled glyph. Use RegisterMetrics to register this with a
// Prometheus registry.
var MessagesRejected = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "emojichat_messages_rejected_total",
		Help: "Total number of chat messages rejected for containing a disabled glyph",
	},
)

// MessagesProcessed counts inbound messages run through the pipeline.
var MessagesProcessed = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "emojichat_messages_processed_total",
		Help: "Total number of chat messages processed",
	},
)

// RegisterMetrics registers chat package metrics with the given
// Prometheus registry.
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(MessagesRejected)
	reg.MustRegister(MessagesProcessed)
}

// Result is the outcome of processing one inbound message.
type Result struct {
	Message  string
	Rejected bool
}

// Service applies the translation pipeline to chat traffic.
type Service struct {
	handler *emoji.Handler
	logger  *slog.Logger
}

// NewService creates a chat service over the given emoji handler.
func NewService(handler *emoji.Handler, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{handler: handler, logger: logger}
}

// ProcessInbound runs one message through the pipeline for the given
// user. The raw message is checked for disabled glyphs before any
// expansion, so injected glyph characters are caught even when no
// token produces them. Shortcut expansion is skipped for users who
// opted out; token-to-glyph expansion always runs, with the chat
// coloring fix-up.
func (s *Service) ProcessInbound(userID ulid.ULID, message string) Result {
	MessagesProcessed.Inc()

	if s.handler.ContainsDisabledCharacter(message) {
		MessagesRejected.Inc()
		s.logger.Info("rejected message containing disabled glyph",
			"user_id", userID.String(),
		)
		return Result{Message: message, Rejected: true}
	}

	if !s.handler.HasShortcutsOff(userID) {
		message = s.handler.TranslateShorthand(message)
	}
	message = s.handler.ToEmojiFromChat(message)

	return Result{Message: message}
}

// ToggleShortcuts flips shortcut translation for the user and returns
// true when shortcuts are now off.
func (s *Service) ToggleShortcuts(userID ulid.ULID) bool {
	off := s.handler.ToggleShortcutsOff(userID)
	s.logger.Info("toggled shortcuts",
		"user_id", userID.String(),
		"shortcuts_off", off,
	)
	return off
}
