// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DougDougEmojiChat Contributors

package emoji

import (
	"github.com/prometheus/client_golang/prometheus"
)

// EmojiUsed counts emoji token occurrences found during translation.
// Use RegisterMetrics to register this with a Prometheus registry.
var EmojiUsed = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "emojichat_emoji_used_total",
		Help: "Total number of emoji token occurrences translated",
	},
	[]string{"token"},
)

// ShortcutUsed counts shortcut alias occurrences found during shorthand
// expansion. Use RegisterMetrics to register this with a Prometheus registry.
var ShortcutUsed = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "emojichat_shortcut_used_total",
		Help: "Total number of shortcut alias occurrences expanded",
	},
	[]string{"alias"},
)

// Reloads counts configuration (re)loads of the emoji handler.
var Reloads = prometheus.NewCounter(
	prometheus.CounterOpts{
		Name: "emojichat_reloads_total",
		Help: "Total number of emoji handler configuration loads",
	},
)

// RegisterMetrics registers emoji package metrics with the given
// Prometheus registry. Call once at startup to expose them on /metrics.
// Panics if registration fails (following prometheus convention).
func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(EmojiUsed)
	reg.MustRegister(ShortcutUsed)
	reg.MustRegister(Reloads)
}

// recordEmojiUsed reports n occurrences of token found in a message.
// Counts are reported before the replacement is performed.
func recordEmojiUsed(token string, n int) {
	if n > 0 {
		EmojiUsed.WithLabelValues(token).Add(float64(n))
	}
}

// recordShortcutUsed reports n occurrences of alias found in a message.
func recordShortcutUsed(alias string, n int) {
	if n > 0 {
		ShortcutUsed.WithLabelValues(alias).Add(float64(n))
	}
}
