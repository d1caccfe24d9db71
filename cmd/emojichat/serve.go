// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 DougDougEmojiChat Contributors

package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/DougDougDevDev/DougDougEmojiChat/internal/chat"
	"github.com/DougDougDevDev/DougDougEmojiChat/internal/command"
	"github.com/DougDougDevDev/DougDougEmojiChat/internal/command/handlers"
	"github.com/DougDougDevDev/DougDougEmojiChat/internal/config"
	"github.com/DougDougDevDev/DougDougEmojiChat/internal/emoji"
	"github.com/DougDougDevDev/DougDougEmojiChat/internal/logging"
	"github.com/DougDougDevDev/DougDougEmojiChat/internal/observability"
	"github.com/DougDougDevDev/DougDougEmojiChat/internal/stats"
	"github.com/DougDougDevDev/DougDougEmojiChat/internal/updatecheck"
)

// Default values for serve command flags. They match the built-in
// configuration so an unset flag never overrides a config file.
const (
	defaultMetricsAddr = "127.0.0.1:9200"
	defaultLogFormat   = "json"
)

// NewServeCmd creates the serve subcommand.
func NewServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the translation server",
		Long: `Start the translation server: loads the configuration, builds the
emoji handler, serves metrics and health probes, and reads admin
commands from stdin. SIGHUP reloads the configuration.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context(), cmd, os.Stdin)
		},
	}

	cmd.Flags().String("metrics-addr", defaultMetricsAddr, "metrics/health HTTP address (empty = disabled)")
	cmd.Flags().String("log-format", defaultLogFormat, "log format (json or text)")

	return cmd
}

// runServe starts the server. console supplies admin command input;
// tests pass a pipe, production passes stdin.
func runServe(ctx context.Context, cmd *cobra.Command, console io.Reader) error {
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}
	if cfg.LogFormat != "json" && cfg.LogFormat != "text" {
		return fmt.Errorf("log-format must be 'json' or 'text', got %q", cfg.LogFormat)
	}

	logging.SetDefault("emojichat", version, cfg.LogFormat)
	logger := slog.Default()

	handler := emoji.NewHandler(logger)
	handler.Load(cfg.Settings())
	chatSvc := chat.NewService(handler, logger)

	slog.Info("starting emojichat",
		"pack", handler.ActiveVariant().Name,
		"tokens", len(handler.Tokens()),
		"metrics_addr", cfg.MetricsAddr,
	)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	// Metrics registry lives on the observability server when one is
	// configured; otherwise a private registry still feeds the stats
	// reporter.
	var obsServer *observability.Server
	var registry *prometheus.Registry
	if cfg.MetricsAddr != "" {
		obsServer = observability.NewServer(cfg.MetricsAddr, func() bool { return true })
		registry = obsServer.Registry()
	} else {
		registry = prometheus.NewRegistry()
	}
	emoji.RegisterMetrics(registry)
	chat.RegisterMetrics(registry)

	if obsServer != nil {
		obsErrChan, startErr := obsServer.Start()
		if startErr != nil {
			return fmt.Errorf("starting observability server: %w", startErr)
		}
		go monitorServerErrors(ctx, cancel, obsErrChan, "observability")
	}

	if cfg.StatsEndpoint != "" {
		reporter := stats.New(
			cfg.StatsEndpoint,
			time.Duration(cfg.StatsIntervalMinutes)*time.Minute,
			registry,
			version,
			handler.ActiveVariant().Name,
			nil,
			logger,
		)
		go reporter.Run(ctx)
		slog.Info("usage stats reporting enabled",
			"endpoint", cfg.StatsEndpoint,
			"interval_minutes", cfg.StatsIntervalMinutes,
		)
	}

	if cfg.UpdateURL != "" {
		go checkForUpdate(ctx, cfg.UpdateURL)
	}

	reload := func() error {
		fresh, loadErr := config.Load(configFile, cmd.Flags())
		if loadErr != nil {
			return fmt.Errorf("loading configuration: %w", loadErr)
		}
		handler.Load(fresh.Settings())
		return nil
	}

	// SIGHUP reloads configuration in place.
	hupChan := make(chan os.Signal, 1)
	signal.Notify(hupChan, syscall.SIGHUP)
	defer signal.Stop(hupChan)
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case <-hupChan:
				if reloadErr := reload(); reloadErr != nil {
					slog.Warn("reload failed, keeping previous state", "error", reloadErr)
					continue
				}
				slog.Info("configuration reloaded",
					"pack", handler.ActiveVariant().Name,
					"tokens", len(handler.Tokens()),
				)
			}
		}
	}()

	cmdRegistry := command.NewRegistry()
	handlers.RegisterAll(cmdRegistry)
	services := &command.Services{
		Emoji:   handler,
		Chat:    chatSvc,
		Version: version,
		Reload:  reload,
	}
	go runConsole(ctx, cmdRegistry, services, console, cmd.OutOrStdout())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	cmd.Println("emojichat started")
	slog.Info("emojichat ready")

	select {
	case sig := <-sigChan:
		slog.Info("received shutdown signal", "signal", sig)
	case <-ctx.Done():
		slog.Info("context cancelled, shutting down")
	}

	slog.Info("shutting down...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if obsServer != nil {
		if stopErr := obsServer.Stop(shutdownCtx); stopErr != nil {
			slog.Warn("error stopping observability server", "error", stopErr)
		}
	}

	slog.Info("shutdown complete")
	return nil
}

// runConsole reads admin commands line by line and dispatches them.
func runConsole(ctx context.Context, registry *command.Registry, services *command.Services, in io.Reader, out io.Writer) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}

		exec := &command.Execution{
			Output:   out,
			Services: services,
		}
		if err := registry.Dispatch(ctx, scanner.Text(), exec); err != nil {
			fmt.Fprintln(out, command.UserMessage(err))
			slog.Warn("admin command failed", "error", err)
		}
	}
	if err := scanner.Err(); err != nil {
		slog.Warn("admin console closed", "error", err)
	}
}

// checkForUpdate runs one startup update check. Failures are warnings.
func checkForUpdate(ctx context.Context, url string) {
	res, err := updatecheck.Check(ctx, nil, url, version)
	if err != nil {
		slog.Warn("update check failed", "error", err)
		return
	}
	if res.Outdated {
		slog.Warn("a newer release is available",
			"current", res.Current.String(),
			"latest", res.Latest.String(),
		)
		return
	}
	slog.Info("running the latest release", "version", res.Current.String())
}

// monitorServerErrors monitors a server's error channel and cancels the
// context on error, triggering graceful shutdown of the process.
func monitorServerErrors(ctx context.Context, cancel context.CancelFunc, errCh <-chan error, serverName string) {
	select {
	case err, ok := <-errCh:
		if !ok {
			// Channel closed, server stopped gracefully
			return
		}
		if err != nil {
			slog.Error("server error, triggering shutdown",
				"server", serverName,
				"error", err,
			)
			cancel()
		}
	case <-ctx.Done():
	}
}
