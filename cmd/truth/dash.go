package main

import (
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/Veraticus/the-truth-is-out-there/internal/dataset"
	"github.com/Veraticus/the-truth-is-out-there/internal/tui"
	"github.com/Veraticus/the-truth-is-out-there/internal/tui/components"
	"github.com/Veraticus/the-truth-is-out-there/internal/tui/themes"
)

func dashCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dash",
		Short: "Open the interactive dashboard",
		Long: `Open the linked dashboard. Tab moves between panels; space starts a
brush, arrows extend it and enter ends it. On the map, space places the
first corner and space or enter places the second. Press ? for help.`,
		RunE: runDash,
	}

	cmd.Flags().String("theme", "default", "Color theme (default, catppuccin-mocha)")
	return cmd
}

func runDash(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	// The dashboard owns the terminal; logs go to the configured file or
	// nowhere.
	if err := setupLogging(cfg.Logging, io.Discard); err != nil {
		return err
	}

	recs, err := loadRecords(cmd.Context(), cfg)
	if err != nil {
		return err
	}

	store := dataset.New(recs)
	if store.Rejected() > 0 {
		slog.Warn("Dropped malformed sightings", "count", store.Rejected())
	}

	themeName, _ := cmd.Flags().GetString("theme")
	colorBy, _ := components.ParseColorMode(cfg.ColorBy)

	return tui.Run(cmd.Context(), store,
		tui.WithTheme(themes.GetTheme(themeName)),
		tui.WithDebounce(cfg.Debounce),
		tui.WithAnchorTimeout(cfg.AnchorTimeout),
		tui.WithColorBy(colorBy),
		tui.WithLogger(slog.Default()),
	)
}
