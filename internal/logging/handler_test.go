// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DougDougEmojiChat Contributors

package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace"
)

func TestSetup_JSONIncludesServiceIdentity(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup("emojichat", "1.2.3", "json", slog.LevelInfo, &buf)

	logger.Info("hello")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, "emojichat", record["service"])
	assert.Equal(t, "1.2.3", record["version"])
	assert.Equal(t, "hello", record["msg"])
}

func TestSetup_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup("emojichat", "dev", "text", slog.LevelInfo, &buf)

	logger.Info("hello")

	assert.Contains(t, buf.String(), "service=emojichat")
	assert.Contains(t, buf.String(), "msg=hello")
}

func TestSetup_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup("emojichat", "dev", "json", slog.LevelInfo, &buf)

	logger.Debug("invisible")

	assert.Empty(t, buf.String())
}

func TestSetup_TraceContextPropagates(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup("emojichat", "dev", "json", slog.LevelInfo, &buf)

	traceID := trace.TraceID{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16}
	spanID := trace.SpanID{1, 2, 3, 4, 5, 6, 7, 8}
	spanCtx := trace.NewSpanContext(trace.SpanContextConfig{
		TraceID: traceID,
		SpanID:  spanID,
	})
	ctx := trace.ContextWithSpanContext(context.Background(), spanCtx)

	logger.InfoContext(ctx, "traced")

	var record map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &record))
	assert.Equal(t, traceID.String(), record["trace_id"])
	assert.Equal(t, spanID.String(), record["span_id"])
}

func TestSetup_WithAttrsAndGroupKeepIdentity(t *testing.T) {
	var buf bytes.Buffer
	logger := Setup("emojichat", "dev", "json", slog.LevelInfo, &buf)

	logger.With("component", "handler").WithGroup("detail").Info("hello", "k", "v")

	out := buf.String()
	assert.True(t, strings.Contains(out, `"service":"emojichat"`), out)
	assert.True(t, strings.Contains(out, `"component":"handler"`), out)
}
