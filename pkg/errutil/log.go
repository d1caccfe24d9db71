// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DougDougEmojiChat Contributors

// Package errutil provides helpers for logging and testing structured
// oops errors.
package errutil

import (
	"log/slog"

	"github.com/samber/oops"
)

// attrs extracts structured logging attributes from an error. For oops
// errors this includes the code and context; other errors contribute
// only the error string.
func attrs(err error) []any {
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return []any{"error", err}
	}

	out := []any{"error", oopsErr.Error()}
	if code := oopsErr.Code(); code != "" {
		out = append(out, "code", code)
	}
	if ctx := oopsErr.Context(); len(ctx) > 0 {
		out = append(out, "context", ctx)
	}
	return out
}

// LogError logs an error with structured context.
func LogError(logger *slog.Logger, msg string, err error) {
	logger.Error(msg, attrs(err)...)
}

// LogWarn logs an error at warning level with structured context.
// Used for the recoverable failures this service downgrades rather
// than propagates.
func LogWarn(logger *slog.Logger, msg string, err error) {
	logger.Warn(msg, attrs(err)...)
}
