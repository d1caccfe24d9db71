// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DougDougEmojiChat Contributors

package command

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"
)

// Registry manages command registration and lookup.
// It is thread-safe for concurrent access.
type Registry struct {
	commands map[string]Entry
	mu       sync.RWMutex
}

// NewRegistry creates an empty command registry.
func NewRegistry() *Registry {
	return &Registry{commands: make(map[string]Entry)}
}

// Register adds a command to the registry. A command with the same
// name is overwritten with a warning; last registration wins.
func (r *Registry) Register(entry Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.commands[entry.Name]; ok {
		slog.Warn("command conflict: overwriting existing command",
			"command", entry.Name,
		)
	}
	r.commands[entry.Name] = entry
}

// Get retrieves a command by name.
func (r *Registry) Get(name string) (Entry, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entry, ok := r.commands[name]
	return entry, ok
}

// All returns all registered commands sorted by name.
func (r *Registry) All() []Entry {
	r.mu.RLock()
	defer r.mu.RUnlock()

	entries := make([]Entry, 0, len(r.commands))
	for _, e := range r.commands {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// Dispatch parses one input line and runs the matching handler.
// The first word selects the command; the remainder is passed as args.
func (r *Registry) Dispatch(ctx context.Context, input string, exec *Execution) error {
	name, args := splitFirstWord(input)
	if name == "" {
		return nil
	}

	entry, ok := r.Get(name)
	if !ok {
		return ErrUnknownCommand(name)
	}

	exec.Args = args
	exec.Registry = r
	return entry.Handler(ctx, exec)
}

// splitFirstWord splits input into the first word and remaining args.
func splitFirstWord(input string) (first, rest string) {
	input = strings.TrimLeft(input, " \t")
	if input == "" {
		return "", ""
	}

	idx := strings.IndexAny(input, " \t")
	if idx == -1 {
		return input, ""
	}
	return input[:idx], strings.TrimLeft(input[idx+1:], " \t")
}
