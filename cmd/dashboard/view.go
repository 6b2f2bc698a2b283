package main

import (
	"github.com/spf13/cobra"
)

func viewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "view",
		Short: "Open the interactive dashboard",
		Long: `Open the interactive dashboard. Press r to reload, ? for help and q to quit.

Logs are written to logging.file while the dashboard is open.`,
		RunE: runView,
	}
}

func runView(cmd *cobra.Command, _ []string) error {
	client, err := newClient(appConfig.API.BaseURL)
	if err != nil {
		return err
	}
	return runDashboard(cmd.Context(), appConfig, client)
}
