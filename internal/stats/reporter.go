// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DougDougEmojiChat Contributors

// Package stats periodically reports anonymous usage counts to an
// operator-configured collector endpoint.
package stats

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	dto "github.com/prometheus/client_model/go"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/samber/oops"
	"github.com/sethvargo/go-retry"
)

// Payload is one usage report.
type Payload struct {
	ServerVersion string  `json:"server_version"`
	PackVariant   string  `json:"pack_variant"`
	EmojiUsed     float64 `json:"emoji_used"`
	ShortcutUsed  float64 `json:"shortcut_used"`
}

// Reporter aggregates usage counters from a Prometheus gatherer and
// posts them to the collector. Each post retries with fibonacci
// backoff; a report that still fails is dropped with a warning and the
// next tick tries again with fresh totals.
type Reporter struct {
	endpoint string
	interval time.Duration
	gatherer prometheus.Gatherer
	client   *http.Client
	logger   *slog.Logger
	version  string
	variant  string
}

// New creates a reporter. A nil client uses a default with a short
// timeout.
func New(endpoint string, interval time.Duration, gatherer prometheus.Gatherer, version, variant string, client *http.Client, logger *slog.Logger) *Reporter {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Reporter{
		endpoint: endpoint,
		interval: interval,
		gatherer: gatherer,
		client:   client,
		logger:   logger,
		version:  version,
		variant:  variant,
	}
}

// Run posts a report every interval until the context is cancelled.
func (r *Reporter) Run(ctx context.Context) {
	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := r.ReportOnce(ctx); err != nil {
				r.logger.Warn("usage report failed", "error", err)
			}
		}
	}
}

// ReportOnce gathers current totals and posts a single report.
func (r *Reporter) ReportOnce(ctx context.Context) error {
	families, err := r.gatherer.Gather()
	if err != nil {
		return oops.Wrap(err)
	}

	payload := Payload{
		ServerVersion: r.version,
		PackVariant:   r.variant,
		EmojiUsed:     sumCounter(families, "emojichat_emoji_used_total"),
		ShortcutUsed:  sumCounter(families, "emojichat_shortcut_used_total"),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return oops.Wrap(err)
	}

	backoff := retry.WithMaxRetries(3, retry.NewFibonacci(500*time.Millisecond))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		if postErr := r.post(ctx, body); postErr != nil {
			return retry.RetryableError(postErr)
		}
		return nil
	})
	if err != nil {
		return oops.With("endpoint", r.endpoint).Wrap(err)
	}
	return nil
}

// post sends one report body to the collector.
func (r *Reporter) post(ctx context.Context, body []byte) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, bytes.NewReader(body))
	if err != nil {
		return oops.Wrap(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := r.client.Do(req)
	if err != nil {
		return oops.Wrap(err)
	}
	defer resp.Body.Close() //nolint:errcheck // best-effort drain

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return oops.With("status", resp.StatusCode).Errorf("collector rejected report")
	}
	return nil
}

// sumCounter sums every sample of the named counter family.
func sumCounter(families []*dto.MetricFamily, name string) float64 {
	var total float64
	for _, mf := range families {
		if mf.GetName() != name {
			continue
		}
		for _, m := range mf.GetMetric() {
			total += m.GetCounter().GetValue()
		}
	}
	return total
}
