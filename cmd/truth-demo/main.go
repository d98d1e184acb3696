// Package main runs the dashboard over generated sightings.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Veraticus/the-truth-is-out-there/internal/dataset"
	"github.com/Veraticus/the-truth-is-out-there/internal/testutil/records"
	"github.com/Veraticus/the-truth-is-out-there/internal/tui"
	"github.com/Veraticus/the-truth-is-out-there/internal/tui/themes"
)

func main() {
	var (
		count int
		seed  uint64
		theme string
	)

	cmd := &cobra.Command{
		Use:          "truth-demo",
		Short:        "Run the dashboard over generated sightings",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			store := dataset.New(records.Random(count, seed))
			err := tui.Run(cmd.Context(), store, tui.WithTheme(themes.GetTheme(theme)))
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}
	cmd.Flags().IntVarP(&count, "count", "n", 2000, "Number of sightings to generate")
	cmd.Flags().Uint64Var(&seed, "seed", 1947, "Random seed")
	cmd.Flags().StringVar(&theme, "theme", "default", "Color theme")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		// Use explicit error check to satisfy forbidigo
		_, _ = fmt.Fprintf(os.Stderr, "Error running dashboard: %v\n", err)
		os.Exit(1)
	}
}
