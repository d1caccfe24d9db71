// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DougDougEmojiChat Contributors

package config

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateSchema(t *testing.T) {
	data, err := GenerateSchema()
	require.NoError(t, err)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(data, &schema))

	assert.Equal(t, SchemaID, schema["$id"])
	assert.Equal(t, "DougDougEmojiChat Configuration", schema["title"])

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	for _, key := range requiredKeys {
		assert.Contains(t, props, key)
	}
}

func TestValidateSchema_AcceptsPackagedDefault(t *testing.T) {
	assert.NoError(t, ValidateSchema(defaultYAML))
}

func TestValidateSchema_RejectsEmpty(t *testing.T) {
	assert.Error(t, ValidateSchema(nil))
}

func TestValidateSchema_RejectsInvalidYAML(t *testing.T) {
	assert.Error(t, ValidateSchema([]byte("pack-variant: [unclosed")))
}

func TestValidateSchema_RejectsWrongType(t *testing.T) {
	err := ValidateSchema([]byte(`
pack-variant: "one"
shortcuts: {}
disable-emojis: false
disabled-emojis: []
fix-emoji-coloring: false
`))
	assert.Error(t, err)
}

func TestValidateSchema_RejectsMissingRequiredKey(t *testing.T) {
	err := ValidateSchema([]byte("pack-variant: 1\n"))
	assert.Error(t, err)
}
