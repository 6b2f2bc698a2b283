package main

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/Veraticus/finance-dashboard/internal/common"
	"github.com/Veraticus/finance-dashboard/internal/config"
	"github.com/Veraticus/finance-dashboard/internal/format"
	"github.com/Veraticus/finance-dashboard/internal/tui"
	"github.com/Veraticus/finance-dashboard/internal/tui/themes"
	"github.com/Veraticus/finance-dashboard/internal/tui/viewmodel"
	"github.com/spf13/cobra"
)

// Output formats for print.
const (
	outputTable = "table"
	outputJSON  = "json"
)

type printOptions struct {
	output string
	width  int
}

func printCmd() *cobra.Command {
	opts := printOptions{}

	cmd := &cobra.Command{
		Use:   "print",
		Short: "Print the dashboard once and exit",
		Long: `Fetch the transactions once and print the summary cards and table,
or the normalized data as JSON, for use in scripts and pipes.`,
		Example: `  dashboard print
  dashboard print --output json | jq '.balance.formatted_total'`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := newClient(appConfig.API.BaseURL)
			if err != nil {
				return err
			}
			return printDashboard(cmd.Context(), cmd.OutOrStdout(), client, appConfig, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", outputTable, "output format (table, json)")
	cmd.Flags().IntVarP(&opts.width, "width", "w", 100, "width of the rendered table")

	return cmd
}

func printDashboard(ctx context.Context, w io.Writer, source tui.FeedSource, cfg config.Config, opts printOptions) error {
	if opts.output != outputTable && opts.output != outputJSON {
		return common.NewUserError(fmt.Sprintf("Unknown output format %q (use table or json)", opts.output), common.ErrInvalidConfig)
	}

	formatter, err := format.New(cfg.FormatOptions())
	if err != nil {
		return err
	}

	start := time.Now()
	feed, err := source.GetFeed(ctx)
	if err != nil {
		return common.NewUserError("Could not load transactions", err)
	}
	view := viewmodel.Normalize(feed, formatter)

	common.LogDebug("Transactions feed loaded", common.Fields{
		"transactions": len(view.Rows),
		"duration":     time.Since(start).String(),
	})

	if opts.output == outputJSON {
		return tui.RenderJSON(w, view)
	}

	return tui.Render(w, view, tui.RenderOptions{
		Theme:       themes.GetTheme(cfg.Display.Theme),
		Width:       opts.width,
		SourceLabel: cfg.API.BaseURL,
		LoadedAt:    time.Now(),
	})
}
