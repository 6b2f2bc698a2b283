package main

import (
	"context"
	"fmt"
	"time"

	"github.com/Veraticus/finance-dashboard/internal/common"
	"github.com/Veraticus/finance-dashboard/internal/fixture"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"
)

type demoOptions struct {
	addr  string
	count int
	seed  int64
}

func demoCmd() *cobra.Command {
	opts := demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Open the dashboard against a generated sample feed",
		Long: `Serve a generated transactions feed on a local port and open the
dashboard against it. No backend is needed.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.Context(), opts)
		},
	}

	cmd.Flags().StringVar(&opts.addr, "addr", "127.0.0.1:0", "address for the sample API")
	cmd.Flags().IntVar(&opts.count, "count", 60, "number of sample transactions")
	cmd.Flags().Int64Var(&opts.seed, "seed", 1, "seed for the sample data")

	return cmd
}

func runDemo(ctx context.Context, opts demoOptions) error {
	if opts.count < 0 {
		return common.NewUserError("--count must not be negative", common.ErrInvalidConfig)
	}

	srv, err := startFixture(opts)
	if err != nil {
		return err
	}

	client, err := newClient(srv.URL())
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)
	runCtx, stop := context.WithCancel(gctx)
	defer stop()

	g.Go(func() error {
		return srv.Serve(runCtx)
	})
	g.Go(func() error {
		// Quitting the dashboard stops the server.
		defer stop()
		return runDashboard(runCtx, appConfig, client)
	})

	return g.Wait()
}

func startFixture(opts demoOptions) (*fixture.Server, error) {
	feed := fixture.Generate(opts.count, opts.seed, time.Now())

	srv, err := fixture.Listen(opts.addr, fixture.NewRouter(fixture.Static(feed)))
	if err != nil {
		return nil, fmt.Errorf("failed to start sample API: %w", err)
	}

	common.LogInfo("Sample API listening", common.Fields{
		"url":          srv.URL(),
		"transactions": opts.count,
	})
	return srv, nil
}
