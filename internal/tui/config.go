package tui

import (
	"log/slog"
	"time"

	"github.com/atotto/clipboard"

	"github.com/Veraticus/the-truth-is-out-there/internal/debounce"
	"github.com/Veraticus/the-truth-is-out-there/internal/tui/components"
	"github.com/Veraticus/the-truth-is-out-there/internal/tui/themes"
)

// Config holds TUI configuration.
type Config struct {
	Theme         themes.Theme
	Logger        *slog.Logger
	Clipboard     func(string) error
	Width         int
	Height        int
	Debounce      time.Duration
	AnchorTimeout time.Duration
	ColorBy       components.ColorMode
}

// Option configures the TUI.
type Option func(*Config)

// defaultConfig returns the default configuration.
func defaultConfig() Config {
	return Config{
		Theme:         themes.Default,
		Logger:        slog.Default(),
		Clipboard:     clipboard.WriteAll,
		Width:         120,
		Height:        40,
		Debounce:      debounce.DefaultQuiet,
		AnchorTimeout: components.DefaultAnchorTimeout,
		ColorBy:       components.ColorByYear,
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

// WithDebounce sets the brush-move quiet interval.
func WithDebounce(d time.Duration) Option {
	return func(c *Config) {
		c.Debounce = d
	}
}

// WithAnchorTimeout sets how long a first map corner waits.
func WithAnchorTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.AnchorTimeout = d
	}
}

// WithColorBy sets the initial map color mode.
func WithColorBy(mode components.ColorMode) Option {
	return func(c *Config) {
		c.ColorBy = mode
	}
}

// WithClipboard replaces the clipboard writer.
func WithClipboard(write func(string) error) Option {
	return func(c *Config) {
		c.Clipboard = write
	}
}

// WithLogger sets the logger handed to the coordinator.
func WithLogger(l *slog.Logger) Option {
	return func(c *Config) {
		c.Logger = l
	}
}
