package tui

import (
	"context"
	"time"

	"github.com/Veraticus/finance-dashboard/internal/model"
	"github.com/Veraticus/finance-dashboard/internal/tui/themes"
	"github.com/Veraticus/finance-dashboard/internal/tui/viewmodel"
)

// FeedSource returns the current transactions feed.
type FeedSource interface {
	GetFeed(ctx context.Context) (model.Feed, error)
}

// FeedSourceFunc adapts a function to FeedSource.
type FeedSourceFunc func(ctx context.Context) (model.Feed, error)

// GetFeed implements FeedSource.
func (f FeedSourceFunc) GetFeed(ctx context.Context) (model.Feed, error) {
	return f(ctx)
}

// Config holds TUI configuration.
type Config struct {
	Theme       themes.Theme
	Source      FeedSource
	Formatter   viewmodel.Formatter
	Now         func() time.Time
	SourceLabel string
	Width       int
	Height      int
	ShowHelp    bool
	AltScreen   bool
}

// Option is a functional option for configuring the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:     themes.Default,
		Now:       time.Now,
		Width:     80,
		Height:    24,
		ShowHelp:  true,
		AltScreen: true,
	}
}

// WithSource sets where the feed is read from.
func WithSource(source FeedSource) Option {
	return func(c *Config) {
		c.Source = source
	}
}

// WithFormatter sets the currency and date formatter.
func WithFormatter(f viewmodel.Formatter) Option {
	return func(c *Config) {
		c.Formatter = f
	}
}

// WithSourceLabel sets the text shown in the header, usually the API URL.
func WithSourceLabel(label string) Option {
	return func(c *Config) {
		c.SourceLabel = label
	}
}

// WithTheme sets the visual theme.
func WithTheme(theme themes.Theme) Option {
	return func(c *Config) {
		c.Theme = theme
	}
}

// WithSize sets the initial terminal size.
func WithSize(width, height int) Option {
	return func(c *Config) {
		c.Width = width
		c.Height = height
	}
}

// WithClock overrides the clock used for the "updated" timestamp.
func WithClock(now func() time.Time) Option {
	return func(c *Config) {
		c.Now = now
	}
}

// WithHelp toggles the key help footer.
func WithHelp(show bool) Option {
	return func(c *Config) {
		c.ShowHelp = show
	}
}

// WithAltScreen toggles running in the terminal's alternate screen.
func WithAltScreen(enabled bool) Option {
	return func(c *Config) {
		c.AltScreen = enabled
	}
}
