// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DougDougEmojiChat Contributors

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig_WritesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emojichat.yml")

	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"init-config", path})

	require.NoError(t, cmd.Execute())

	contents, err := os.ReadFile(path) //nolint:gosec // test-owned path
	require.NoError(t, err)
	assert.Contains(t, string(contents), "pack-variant")
	assert.Contains(t, buf.String(), path)
}

func TestInitConfig_RefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "emojichat.yml")
	require.NoError(t, os.WriteFile(path, []byte("keep me"), 0o600))

	cmd := NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"init-config", path})

	assert.Error(t, cmd.Execute())

	contents, err := os.ReadFile(path) //nolint:gosec // test-owned path
	require.NoError(t, err)
	assert.Equal(t, "keep me", string(contents))
}
