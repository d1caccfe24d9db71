// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DougDougEmojiChat Contributors

// Package emoji implements the emoji translation engine: the token
// dictionary, shortcut aliases, disabled glyphs, per-user opt-out, and
// the message substitution passes.
package emoji

import (
	_ "embed"
	"io"
	"log/slog"
	"maps"
	"slices"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/gobwas/glob"
	"github.com/oklog/ulid/v2"
)

// Chat color escape handling. Colored chat recolors inserted glyphs,
// distorting them; forcing white before a glyph and resuming the
// original color afterwards keeps both intact.
const (
	// ColorChar is the section-sign escape that introduces a chat color code.
	ColorChar = '§'
	// ColorWhite is the neutral color emitted before a glyph when fixing coloring.
	ColorWhite = "§f"
)

//go:embed list.txt
var tokenList string

// Settings is the operator configuration consumed on Load.
// Complete reports whether all required keys were present in the
// configuration source; when false, only the token dictionary is
// populated and everything config-derived stays at its default.
type Settings struct {
	PackVariant    int
	Shortcuts      map[string][]string
	DisabledEmojis []string
	DisableEmojis  bool
	FixColoring    bool
	Complete       bool
}

// state is one immutable snapshot of the loaded dictionaries. A fresh
// state is built on every Load and published with a single pointer
// swap, so readers never observe a partially rebuilt dictionary.
type state struct {
	variant      Variant
	dict         *Dictionary
	shortcuts    map[string]string
	shortcutKeys []string // sorted ascending
	disabled     []rune
	fixColoring  bool
}

func emptyState() *state {
	return &state{
		dict:      &Dictionary{glyphs: make(map[string]rune)},
		shortcuts: make(map[string]string),
	}
}

// Handler owns the translation engine state and its lifecycle.
// Translation methods are safe for concurrent use; Load and Disable
// may run concurrently with them.
type Handler struct {
	mu     sync.RWMutex
	st     *state
	optOut *OptOutRegistry
	logger *slog.Logger

	// tokenSource produces the packaged token list. Overridden in tests
	// to exercise the unreadable-source path.
	tokenSource func() io.Reader
}

// NewHandler creates a handler with empty dictionaries. Call Load to
// populate them from configuration.
func NewHandler(logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		st:          emptyState(),
		optOut:      NewOptOutRegistry(),
		logger:      logger,
		tokenSource: func() io.Reader { return strings.NewReader(tokenList) },
	}
}

// Load (re)initializes all dictionaries from the given settings. It is
// safe to call repeatedly; each call builds fully fresh state and then
// publishes it atomically. The opt-out registry is left untouched:
// opt-out is a user preference that survives reloads.
//
// All failures are downgraded to warnings. An unresolved pack-variant
// id falls back to the default (Korean) variant; an unreadable token
// source leaves the dictionary empty; missing required config keys skip
// all config-derived state.
func (h *Handler) Load(s Settings) {
	st := emptyState()

	variant, ok := ResolveVariant(s.PackVariant)
	if !ok {
		h.logger.Warn("unknown pack-variant id, using default variant",
			"pack_variant", s.PackVariant,
			"default", VariantKorean.Name,
		)
		variant = VariantKorean
	}
	st.variant = variant

	dict, err := BuildDictionary(variant, h.tokenSource())
	if err != nil {
		h.logger.Warn("error while loading the emoji token list, emoji will be unavailable",
			"error", err,
		)
	}
	st.dict = dict

	if !s.Complete {
		h.logger.Warn("config is invalid, no configuration data was loaded")
		h.logger.Warn("fix the config, then run the reload command")
	} else {
		st.buildShortcuts(s.Shortcuts)
		if s.DisableEmojis {
			st.applyDisabledList(s.DisabledEmojis, h.logger)
		}
		st.fixColoring = s.FixColoring
	}

	h.mu.Lock()
	h.st = st
	h.mu.Unlock()

	Reloads.Inc()
	h.logger.Info("emoji handler loaded",
		"variant", variant.Name,
		"emojis", dict.Len(),
		"shortcuts", len(st.shortcuts),
		"disabled", len(st.disabled),
		"fix_coloring", st.fixColoring,
	)
}

// Disable clears all dictionaries and the opt-out set.
func (h *Handler) Disable() {
	h.mu.Lock()
	h.st = emptyState()
	h.mu.Unlock()

	h.optOut.Clear()
}

// buildShortcuts maps every alias under a config group to the fully
// delimited canonical token of the group key. Last write for a
// duplicate alias wins. The canonical token is not validated against
// the dictionary: an alias for a disabled or unknown token expands to
// inert text.
func (st *state) buildShortcuts(groups map[string][]string) {
	for key, aliases := range groups {
		for _, alias := range aliases {
			st.shortcuts[alias] = ":" + key + ":"
		}
	}
	st.shortcutKeys = slices.Sorted(maps.Keys(st.shortcuts))
}

// applyDisabledList removes each named token from the dictionary and
// records its glyph, in input-list order. Entries are matched as glob
// patterns against token names; a plain token name matches exactly.
// Entries that are invalid or match nothing are skipped with a warning.
func (st *state) applyDisabledList(names []string, logger *slog.Logger) {
	for _, name := range names {
		g, err := glob.Compile(name)
		if err != nil {
			logger.Warn("invalid entry in 'disabled-emojis', skipping",
				"entry", name,
				"error", err,
			)
			continue
		}

		matched := false
		for _, token := range st.dict.Tokens() {
			if !g.Match(token) {
				continue
			}
			if glyph, ok := st.dict.remove(token); ok {
				st.disabled = append(st.disabled, glyph)
				matched = true
			}
		}
		if !matched {
			logger.Warn("entry in 'disabled-emojis' matches no emoji, skipping",
				"entry", name,
			)
		}
	}
}

// snapshot returns the current published state.
func (h *Handler) snapshot() *state {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return h.st
}

// expandTokens replaces every dictionary token occurrence in message
// with prefix + glyph + suffix, iterating tokens in ascending lexical
// order. Occurrence counts are reported to metrics before each
// replacement.
func (st *state) expandTokens(message, prefix, suffix string) string {
	for _, token := range st.dict.tokens {
		n := strings.Count(message, token)
		recordEmojiUsed(token, n)
		if n == 0 {
			continue
		}
		glyph, _ := st.dict.Glyph(token)
		message = strings.ReplaceAll(message, token, prefix+string(glyph)+suffix)
	}
	return message
}

// ToEmoji replaces every emoji token in message (e.g. ":100:") with its
// assigned glyph.
func (h *Handler) ToEmoji(message string) string {
	return h.snapshot().expandTokens(message, "", "")
}

// ToEmojiFromChat is ToEmoji with the chat coloring fix-up. When the
// fix is enabled and the message is long enough to carry a color code,
// each glyph is wrapped: neutral white before, and the message's
// original color code after, so colored chat resumes unchanged.
func (h *Handler) ToEmojiFromChat(message string) string {
	st := h.snapshot()

	if !st.fixColoring || utf8.RuneCountInString(message) < 3 {
		return st.expandTokens(message, "", "")
	}

	runes := []rune(message)
	chatColor := string(runes[:2])
	resume := ""
	if strings.ContainsRune(chatColor, ColorChar) {
		resume = chatColor
	}
	return st.expandTokens(message, ColorWhite, resume)
}

// TranslateShorthand replaces every configured alias occurrence in
// message with its canonical emoji token. Aliases iterate in ascending
// lexical order; when one alias is a substring of another, the
// earlier-ordered alias wins for text it already consumed.
func (h *Handler) TranslateShorthand(message string) string {
	st := h.snapshot()

	for _, alias := range st.shortcutKeys {
		n := strings.Count(message, alias)
		recordShortcutUsed(alias, n)
		if n == 0 {
			continue
		}
		message = strings.ReplaceAll(message, alias, st.shortcuts[alias])
	}
	return message
}

// ContainsDisabledCharacter reports whether message contains any glyph
// from the disabled set. Callers typically check the raw message before
// expansion to block injection of disabled glyphs.
func (h *Handler) ContainsDisabledCharacter(message string) bool {
	st := h.snapshot()

	for _, glyph := range st.disabled {
		if strings.ContainsRune(message, glyph) {
			return true
		}
	}
	return false
}

// HasShortcutsOff reports whether the user disabled shortcut translation.
func (h *Handler) HasShortcutsOff(userID ulid.ULID) bool {
	return h.optOut.Has(userID)
}

// ToggleShortcutsOff flips shortcut translation for the user and
// returns true when shortcuts are now off.
func (h *Handler) ToggleShortcutsOff(userID ulid.ULID) bool {
	return h.optOut.Toggle(userID)
}

// ActiveVariant returns the glyph pack variant in use.
func (h *Handler) ActiveVariant() Variant {
	return h.snapshot().variant
}

// Tokens returns the enabled emoji tokens in ascending lexical order.
func (h *Handler) Tokens() []string {
	return h.snapshot().dict.Tokens()
}

// Glyph returns the glyph assigned to token.
func (h *Handler) Glyph(token string) (rune, bool) {
	return h.snapshot().dict.Glyph(token)
}

// Shortcuts returns a copy of the alias → token table.
func (h *Handler) Shortcuts() map[string]string {
	st := h.snapshot()

	out := make(map[string]string, len(st.shortcuts))
	maps.Copy(out, st.shortcuts)
	return out
}

// DisabledGlyphs returns a copy of the disabled glyph set, in the order
// the disabled-emojis list named them.
func (h *Handler) DisabledGlyphs() []rune {
	return slices.Clone(h.snapshot().disabled)
}

// FixColoring reports whether the chat coloring fix-up is enabled.
func (h *Handler) FixColoring() bool {
	return h.snapshot().fixColoring
}
