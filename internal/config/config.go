// Package config resolves dashboard settings from flags, environment and the
// config file.
package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/Veraticus/finance-dashboard/internal/common"
	"github.com/Veraticus/finance-dashboard/internal/format"
	"github.com/Veraticus/finance-dashboard/internal/tui/themes"
	"github.com/spf13/viper"
)

// Config keys.
const (
	KeyBaseURL         = "api.base_url"
	KeyLocale          = "display.locale"
	KeyCurrency        = "display.currency"
	KeyTimezone        = "display.timezone"
	KeyTheme           = "display.theme"
	KeyLogLevel        = "logging.level"
	KeyLogFormat       = "logging.format"
	KeyLogFile         = "logging.file"
	DefaultBaseURL     = "http://localhost:3333"
	DefaultTheme       = "default"
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "console"
	defaultLogFileName = "dashboard.log"
)

// Config is the resolved dashboard configuration.
type Config struct {
	API     APIConfig
	Display DisplayConfig
	Logging LoggingConfig
}

// APIConfig points at the transactions backend.
type APIConfig struct {
	BaseURL string
}

// DisplayConfig controls how amounts, dates and colors are shown.
type DisplayConfig struct {
	Locale   string
	Currency string
	Timezone string
	Theme    string
}

// LoggingConfig controls slog output.
type LoggingConfig struct {
	Level  string
	Format string
	File   string
}

// Dir returns the directory holding the config file and the log.
func Dir() string {
	return ExpandPath(filepath.Join("~", ".config", "dashboard"))
}

// SetDefaults registers default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyBaseURL, DefaultBaseURL)
	v.SetDefault(KeyLocale, format.DefaultLocale)
	v.SetDefault(KeyCurrency, format.DefaultCurrency)
	v.SetDefault(KeyTimezone, format.DefaultTimezone)
	v.SetDefault(KeyTheme, DefaultTheme)
	v.SetDefault(KeyLogLevel, DefaultLogLevel)
	v.SetDefault(KeyLogFormat, DefaultLogFormat)
	v.SetDefault(KeyLogFile, filepath.Join(Dir(), defaultLogFileName))
}

// Load reads the configuration from v, falling back to defaults for unset
// keys, and validates it.
func Load(v *viper.Viper) (Config, error) {
	SetDefaults(v)

	cfg := Config{
		API: APIConfig{
			BaseURL: v.GetString(KeyBaseURL),
		},
		Display: DisplayConfig{
			Locale:   v.GetString(KeyLocale),
			Currency: v.GetString(KeyCurrency),
			Timezone: v.GetString(KeyTimezone),
			Theme:    v.GetString(KeyTheme),
		},
		Logging: LoggingConfig{
			Level:  v.GetString(KeyLogLevel),
			Format: v.GetString(KeyLogFormat),
			File:   ExpandPath(v.GetString(KeyLogFile)),
		},
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	u, err := url.Parse(c.API.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("%w: %s must be an http(s) URL, got %q", common.ErrInvalidConfig, KeyBaseURL, c.API.BaseURL)
	}

	if _, err := format.New(c.FormatOptions()); err != nil {
		return fmt.Errorf("%w: %w", common.ErrInvalidConfig, err)
	}

	if !themes.IsKnown(c.Display.Theme) {
		return fmt.Errorf("%w: %s %q (available: %v)", common.ErrInvalidConfig, KeyTheme, c.Display.Theme, themes.Names)
	}

	if _, err := common.ParseLevel(c.Logging.Level); err != nil {
		return err
	}

	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("%w: %s %q", common.ErrInvalidConfig, KeyLogFormat, c.Logging.Format)
	}

	return nil
}

// FormatOptions returns the formatter settings.
func (c Config) FormatOptions() format.Options {
	return format.Options{
		Locale:   c.Display.Locale,
		Currency: c.Display.Currency,
		Timezone: c.Display.Timezone,
	}
}

// ExpandPath expands a leading ~ and $VAR references in path.
func ExpandPath(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			path = home + strings.TrimPrefix(path, "~")
		}
	}
	return os.ExpandEnv(path)
}
