// Package main is the finance dashboard command.
package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/Veraticus/finance-dashboard/internal/api"
	"github.com/Veraticus/finance-dashboard/internal/cli"
	"github.com/Veraticus/finance-dashboard/internal/common"
	"github.com/Veraticus/finance-dashboard/internal/config"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile   string
	appConfig config.Config
	version   = "dev"
	rootCmd   = &cobra.Command{
		Use:   "dashboard",
		Short: "Terminal dashboard for your income, outcome and balance",
		Long: `dashboard reads your transactions from the finance API and shows
income, outcome and total cards above a table of every transaction.

Run without a subcommand to open the interactive view.`,
		PersistentPreRunE: initConfig,
		RunE:              runView,
		SilenceUsage:      true,
	}
)

func init() {
	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.config/dashboard/config.yaml)")
	rootCmd.PersistentFlags().String("api-url", config.DefaultBaseURL, "base URL of the transactions API")
	rootCmd.PersistentFlags().String("locale", "", "display locale, e.g. pt-BR or en-US")
	rootCmd.PersistentFlags().String("currency", "", "ISO 4217 currency code, e.g. BRL")
	rootCmd.PersistentFlags().String("timezone", "", "IANA time zone used for dates")
	rootCmd.PersistentFlags().String("theme", "", "color theme (default, catppuccin-mocha)")
	rootCmd.PersistentFlags().String("log-level", config.DefaultLogLevel, "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", config.DefaultLogFormat, "log format (console, json)")

	// Bind flags to viper
	bindFlag(config.KeyBaseURL, "api-url")
	bindFlag(config.KeyLocale, "locale")
	bindFlag(config.KeyCurrency, "currency")
	bindFlag(config.KeyTimezone, "timezone")
	bindFlag(config.KeyTheme, "theme")
	bindFlag(config.KeyLogLevel, "log-level")
	bindFlag(config.KeyLogFormat, "log-format")

	// Add commands
	rootCmd.AddCommand(viewCmd())
	rootCmd.AddCommand(printCmd())
	rootCmd.AddCommand(demoCmd())
	rootCmd.AddCommand(versionCmd())
}

func bindFlag(key, flag string) {
	_ = viper.BindPFlag(key, rootCmd.PersistentFlags().Lookup(flag))
}

func main() {
	// Set up signal handling
	interrupts := cli.NewInterruptHandler(os.Stderr)
	ctx, stop := interrupts.HandleInterrupts(context.Background())

	err := rootCmd.ExecuteContext(ctx)
	stop() // Always cleanup

	if err != nil && !interrupts.WasInterrupted() {
		reportError(err)
		os.Exit(1)
	}
}

func reportError(err error) {
	fmt.Fprintln(os.Stderr, cli.FormatError(common.UserMessage(err)))
	if errors.Is(err, api.ErrTransport) {
		fmt.Fprintln(os.Stderr, cli.FormatHint(fmt.Sprintf(
			"Is the API running at %s? Run `dashboard demo` to try the dashboard with sample data.",
			appConfig.API.BaseURL)))
	}
	slog.Debug("command failed", "error", err)
}

func initConfig(_ *cobra.Command, _ []string) error {
	// A .env next to the binary's working directory is optional.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load .env: %w", err)
	}

	// Set up config file
	if cfgFile != "" {
		viper.SetConfigFile(config.ExpandPath(cfgFile))
	} else {
		// Search for config in standard locations
		viper.AddConfigPath(config.Dir())
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	// Environment variables
	viper.SetEnvPrefix("DASHBOARD")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Read config file
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found is OK, we'll use defaults
	}

	cfg, err := config.Load(viper.GetViper())
	if err != nil {
		return err
	}
	appConfig = cfg

	// Logs go to stderr until a command takes over the terminal.
	if err := setupLogging(cfg); err != nil {
		return fmt.Errorf("failed to setup logging: %w", err)
	}

	return nil
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dashboard %s\n", version)
		},
	}
}
