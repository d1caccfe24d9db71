// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DougDougEmojiChat Contributors

package command

import (
	"github.com/samber/oops"
)

// Error codes for command dispatch failures.
const (
	CodeUnknownCommand = "UNKNOWN_COMMAND"
	CodeInvalidArgs    = "INVALID_ARGS"
	CodeReloadFailed   = "RELOAD_FAILED"
)

// ErrUnknownCommand creates an error for an unknown command.
func ErrUnknownCommand(cmd string) error {
	return oops.Code(CodeUnknownCommand).
		With("command", cmd).
		Errorf("unknown command: %s", cmd)
}

// ErrInvalidArgs creates an error for invalid arguments.
func ErrInvalidArgs(cmd, usage string) error {
	return oops.Code(CodeInvalidArgs).
		With("command", cmd).
		With("usage", usage).
		Errorf("invalid arguments")
}

// ErrReloadFailed wraps a configuration reload failure.
func ErrReloadFailed(cause error) error {
	return oops.Code(CodeReloadFailed).Wrap(cause)
}

// UserMessage extracts an operator-facing message from an error.
func UserMessage(err error) string {
	const fallback = "Something went wrong. Check the logs."

	if err == nil {
		return fallback
	}
	oopsErr, ok := oops.AsOops(err)
	if !ok {
		return fallback
	}

	switch oopsErr.Code() {
	case CodeUnknownCommand:
		return "Unknown command. Try 'help'."
	case CodeInvalidArgs:
		if usage, ok := oopsErr.Context()["usage"].(string); ok && usage != "" {
			return "Usage: " + usage
		}
		return "Invalid arguments."
	case CodeReloadFailed:
		return "Reload failed: " + oopsErr.Error()
	default:
		return fallback
	}
}
