// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DougDougEmojiChat Contributors

package chat

import (
	"log/slog"
	"testing"

	"github.com/oklog/ulid/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/DougDougDevDev/DougDougEmojiChat/internal/emoji"
)

// newPipeline builds a service whose handler is loaded from the
// packaged token list with the given settings.
func newPipeline(t *testing.T, s emoji.Settings) (*Service, *emoji.Handler) {
	t.Helper()
	h := emoji.NewHandler(slog.New(slog.DiscardHandler))
	h.Load(s)
	return NewService(h, slog.New(slog.DiscardHandler)), h
}

func baseSettings() emoji.Settings {
	return emoji.Settings{
		PackVariant: 1,
		Shortcuts:   map[string][]string{"100": {"hundred"}},
		Complete:    true,
	}
}

func TestProcessInbound_ExpandsShortcutThenToken(t *testing.T) {
	svc, h := newPipeline(t, baseSettings())
	user := ulid.MustNew(1, nil)

	res := svc.ProcessInbound(user, "nice one, hundred")

	require.False(t, res.Rejected)
	glyph, ok := h.Glyph(":100:")
	require.True(t, ok)
	assert.Equal(t, "nice one, "+string(glyph), res.Message)
}

func TestProcessInbound_OptOutSkipsShortcutsOnly(t *testing.T) {
	svc, h := newPipeline(t, baseSettings())
	user := ulid.MustNew(2, nil)

	svc.ToggleShortcuts(user)
	res := svc.ProcessInbound(user, "hundred and :100:")

	require.False(t, res.Rejected)
	glyph, _ := h.Glyph(":100:")
	// The alias stays literal, the token still expands.
	assert.Equal(t, "hundred and "+string(glyph), res.Message)
}

func TestProcessInbound_RejectsDisabledGlyph(t *testing.T) {
	s := baseSettings()
	s.DisableEmojis = true
	s.DisabledEmojis = []string{":100:"}
	svc, _ := newPipeline(t, s)
	user := ulid.MustNew(3, nil)

	// ':100:' is the first packaged token, so its glyph is the Korean
	// run start.
	res := svc.ProcessInbound(user, "sneaky 가 injection")

	assert.True(t, res.Rejected)
	assert.Equal(t, "sneaky 가 injection", res.Message)
}

func TestProcessInbound_DisabledTokenLeftLiteral(t *testing.T) {
	s := baseSettings()
	s.DisableEmojis = true
	s.DisabledEmojis = []string{":100:"}
	svc, _ := newPipeline(t, s)
	user := ulid.MustNew(4, nil)

	res := svc.ProcessInbound(user, ":100:")

	require.False(t, res.Rejected)
	assert.Equal(t, ":100:", res.Message)
}

func TestProcessInbound_ColoringFixUp(t *testing.T) {
	s := baseSettings()
	s.FixColoring = true
	svc, h := newPipeline(t, s)
	user := ulid.MustNew(5, nil)

	res := svc.ProcessInbound(user, "§a:100:")

	require.False(t, res.Rejected)
	glyph, _ := h.Glyph(":100:")
	assert.Equal(t, "§a"+emoji.ColorWhite+string(glyph)+"§a", res.Message)
}

func TestToggleShortcuts_ReturnsNewState(t *testing.T) {
	svc, _ := newPipeline(t, baseSettings())
	user := ulid.MustNew(6, nil)

	assert.True(t, svc.ToggleShortcuts(user))
	assert.False(t, svc.ToggleShortcuts(user))
}
