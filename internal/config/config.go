// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DougDougEmojiChat Contributors

// Package config loads and validates the operator configuration file.
package config

import (
	_ "embed"
	"log/slog"
	"os"

	kyaml "github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/samber/oops"
	"github.com/spf13/pflag"

	"github.com/DougDougDevDev/DougDougEmojiChat/internal/emoji"
)

// requiredKeys are the configuration keys that must all be present for
// config-derived emoji state to be applied. When any is missing the
// handler keeps its all-enabled defaults.
var requiredKeys = []string{
	"shortcuts",
	"disabled-emojis",
	"disable-emojis",
	"fix-emoji-coloring",
	"pack-variant",
}

//go:embed config.yml
var defaultYAML []byte

// Config is the operator configuration.
type Config struct {
	// Emoji translation keys (all five required).
	PackVariant      int                 `koanf:"pack-variant" json:"pack-variant"`
	Shortcuts        map[string][]string `koanf:"shortcuts" json:"shortcuts"`
	DisabledEmojis   []string            `koanf:"disabled-emojis" json:"disabled-emojis"`
	DisableEmojis    bool                `koanf:"disable-emojis" json:"disable-emojis"`
	FixEmojiColoring bool                `koanf:"fix-emoji-coloring" json:"fix-emoji-coloring"`

	// Service keys.
	MetricsAddr          string `koanf:"metrics-addr" json:"metrics-addr,omitempty"`
	LogFormat            string `koanf:"log-format" json:"log-format,omitempty"`
	StatsEndpoint        string `koanf:"stats-endpoint" json:"stats-endpoint,omitempty"`
	StatsIntervalMinutes int    `koanf:"stats-interval-minutes" json:"stats-interval-minutes,omitempty"`
	UpdateURL            string `koanf:"update-url" json:"update-url,omitempty"`

	// Complete reports whether all required keys were present in the
	// loaded source. Not itself a configuration key.
	Complete bool `koanf:"-" json:"-"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		PackVariant: 1,
		Shortcuts: map[string][]string{
			"smile": {":)"},
			"sad":   {":("},
			"wink":  {";)"},
		},
		DisabledEmojis:       []string{},
		MetricsAddr:          "127.0.0.1:9200",
		LogFormat:            "json",
		StatsIntervalMinutes: 30,
		Complete:             true,
	}
}

// Load reads the configuration file at path, overlaying it on the
// built-in defaults and then on any matching command-line flags.
// An empty path yields the defaults. A file that does not match the
// generated schema is reported as a warning, not an error: per-key
// fallout is handled downstream by the emoji handler.
func Load(path string, flags *pflag.FlagSet) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path) //nolint:gosec // operator-supplied path
	if err != nil {
		return nil, oops.With("path", path).Wrap(err)
	}
	if err := ValidateSchema(raw); err != nil {
		slog.Warn("config does not match the expected schema",
			"path", path,
			"error", err,
		)
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), kyaml.Parser()); err != nil {
		return nil, oops.With("path", path).Wrap(err)
	}
	if flags != nil {
		if err := k.Load(posflag.Provider(flags, ".", k), nil); err != nil {
			return nil, oops.Wrap(err)
		}
	}
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, oops.With("path", path).Wrap(err)
	}

	cfg.Complete = true
	for _, key := range requiredKeys {
		if !k.Exists(key) {
			slog.Warn("config is missing a required key", "key", key, "path", path)
			cfg.Complete = false
		}
	}

	return cfg, nil
}

// WriteDefault writes the packaged default configuration to path.
// Fails if the file already exists.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return oops.With("path", path).Errorf("config file already exists")
	}
	if err := os.WriteFile(path, defaultYAML, 0o600); err != nil {
		return oops.With("path", path).Wrap(err)
	}
	return nil
}

// Settings converts the configuration into the emoji handler's load
// settings.
func (c *Config) Settings() emoji.Settings {
	return emoji.Settings{
		PackVariant:    c.PackVariant,
		Shortcuts:      c.Shortcuts,
		DisabledEmojis: c.DisabledEmojis,
		DisableEmojis:  c.DisableEmojis,
		FixColoring:    c.FixEmojiColoring,
		Complete:       c.Complete,
	}
}
