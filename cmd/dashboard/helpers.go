package main

import (
	"context"
	"fmt"
	"io"

	"github.com/Veraticus/finance-dashboard/internal/api"
	"github.com/Veraticus/finance-dashboard/internal/common"
	"github.com/Veraticus/finance-dashboard/internal/config"
	"github.com/Veraticus/finance-dashboard/internal/format"
	"github.com/Veraticus/finance-dashboard/internal/tui"
	"github.com/Veraticus/finance-dashboard/internal/tui/themes"
)

// setupLogging points slog at stderr.
func setupLogging(cfg config.Config) error {
	level, err := common.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return err
	}
	return common.SetupLogger(level, cfg.Logging.Format)
}

// setupFileLogging points slog at the log file while the dashboard owns the
// terminal.
func setupFileLogging(cfg config.Config) (io.Closer, error) {
	level, err := common.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	return common.SetupFileLogger(cfg.Logging.File, level, cfg.Logging.Format)
}

// newClient builds the API client for baseURL.
func newClient(baseURL string) (*api.Client, error) {
	client, err := api.NewClient(baseURL)
	if err != nil {
		return nil, common.NewUserError(fmt.Sprintf("Invalid API URL %q", baseURL), err)
	}
	return client, nil
}

// dashboardOptions returns the TUI options shared by view and demo.
func dashboardOptions(cfg config.Config, client *api.Client) ([]tui.Option, error) {
	formatter, err := format.New(cfg.FormatOptions())
	if err != nil {
		return nil, err
	}

	return []tui.Option{
		tui.WithSource(client),
		tui.WithFormatter(formatter),
		tui.WithTheme(themes.GetTheme(cfg.Display.Theme)),
		tui.WithSourceLabel(client.BaseURL()),
	}, nil
}

// runDashboard runs the interactive view with logs redirected to a file.
func runDashboard(ctx context.Context, cfg config.Config, client *api.Client) error {
	opts, err := dashboardOptions(cfg, client)
	if err != nil {
		return err
	}

	closer, err := setupFileLogging(cfg)
	if err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}
	defer func() {
		_ = closer.Close()
		_ = setupLogging(cfg)
	}()

	return tui.Run(ctx, opts...)
}
