// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DougDougEmojiChat Contributors

// Package updatecheck compares the running release against the latest
// published one.
package updatecheck

import (
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/samber/oops"
)

// maxBodySize bounds the version endpoint response. A well-formed
// response is a single version string.
const maxBodySize = 256

// Result is the outcome of one update check.
type Result struct {
	Current  *semver.Version
	Latest   *semver.Version
	Outdated bool
}

// Check fetches the latest published version from url and compares it
// with current. A nil client uses a default with a short timeout.
func Check(ctx context.Context, client *http.Client, url, current string) (Result, error) {
	cur, err := semver.NewVersion(current)
	if err != nil {
		return Result{}, oops.With("version", current).Wrapf(err, "parsing running version")
	}

	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return Result{}, oops.Wrap(err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return Result{}, oops.With("url", url).Wrap(err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort drain

	if resp.StatusCode != http.StatusOK {
		return Result{}, oops.With("url", url).With("status", resp.StatusCode).
			Errorf("version endpoint returned unexpected status")
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return Result{}, oops.Wrap(err)
	}

	latest, err := semver.NewVersion(strings.TrimSpace(string(body)))
	if err != nil {
		return Result{}, oops.With("body", strings.TrimSpace(string(body))).
			Wrapf(err, "parsing published version")
	}

	return Result{
		Current:  cur,
		Latest:   latest,
		Outdated: latest.GreaterThan(cur),
	}, nil
}
