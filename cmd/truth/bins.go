package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Veraticus/the-truth-is-out-there/internal/cli"
	"github.com/Veraticus/the-truth-is-out-there/internal/dimension"
)

func binsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "bins",
		Short: "Print the encounter length tiers",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), renderBins(dimension.DurationBins))
			return err
		},
	}
}

func renderBins(bins dimension.BinTable) string {
	lines := []string{cli.TableHeaderStyle.Render(fmt.Sprintf("%-10s %-10s %s", "Tier", "From", "To"))}
	for _, b := range bins {
		to := "open"
		if !b.Open {
			to = seconds(b.Max)
		}
		lines = append(lines, cli.TableCellStyle.Render(fmt.Sprintf("%-10s %-10s %s", b.Label, seconds(b.Min), to)))
	}
	return strings.Join(lines, "\n")
}

func seconds(s float64) string {
	return (time.Duration(s) * time.Second).String()
}
