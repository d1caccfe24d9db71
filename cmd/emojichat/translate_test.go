// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DougDougEmojiChat Contributors

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// withConfigFile points the global --config path at a fixture for the
// duration of one test.
func withConfigFile(t *testing.T, contents string) {
	t.Helper()
	prev := configFile
	t.Cleanup(func() { configFile = prev })

	if contents == "" {
		configFile = ""
		return
	}
	path := filepath.Join(t.TempDir(), "emojichat.yml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
	configFile = path
}

// runTranslateCmd executes the translate subcommand and returns stdout.
func runTranslateCmd(t *testing.T, stdin string, args ...string) string {
	t.Helper()
	// NewRootCmd re-registers the --config flag, which resets the
	// configFile global to its default; restore the fixture path.
	path := configFile
	cmd := NewRootCmd()
	configFile = path
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"translate"}, args...))

	require.NoError(t, cmd.Execute())
	return buf.String()
}

func TestTranslate_TokenArg(t *testing.T) {
	withConfigFile(t, "")

	out := runTranslateCmd(t, "", ":100:")

	assert.Equal(t, "가\n", out)
}

func TestTranslate_DefaultShortcut(t *testing.T) {
	withConfigFile(t, "")

	out := runTranslateCmd(t, "", "hello :)")

	assert.NotContains(t, out, ":)")
	assert.NotContains(t, out, ":smile:")
	assert.True(t, strings.HasPrefix(out, "hello "))
}

func TestTranslate_StdinLines(t *testing.T) {
	withConfigFile(t, "")

	out := runTranslateCmd(t, ":100:\nplain text\n")

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "가", lines[0])
	assert.Equal(t, "plain text", lines[1])
}

func TestTranslate_RejectsDisabledGlyph(t *testing.T) {
	withConfigFile(t, `
pack-variant: 1
shortcuts: {}
disabled-emojis: [":100:"]
disable-emojis: true
fix-emoji-coloring: false
`)

	out := runTranslateCmd(t, "", "sneaky 가 injection")

	assert.Equal(t, "rejected\n", out)
}
