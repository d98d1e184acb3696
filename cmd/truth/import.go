package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/Veraticus/the-truth-is-out-there/internal/cli"
	"github.com/Veraticus/the-truth-is-out-there/internal/common"
	"github.com/Veraticus/the-truth-is-out-there/internal/storage"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Import sightings from a CSV file",
		Long: `Parse a sightings CSV and store the usable rows in the local database.

Rows without coordinates, shape, a positive duration or a readable
timestamp are skipped and counted. Re-importing replaces rows by id.`,
		RunE: runImport,
	}

	cmd.Flags().Bool("replace", false, "Delete every stored sighting before importing")
	_ = viper.BindPFlag("import.replace", cmd.Flags().Lookup("replace"))

	return cmd
}

func runImport(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cfg.CSVPath == "" {
		return common.NewUserError("Pass the file to import with --csv", common.ErrMissingConfig)
	}

	handler := cli.NewInterruptHandler(cmd.ErrOrStderr())
	ctx := handler.HandleInterrupts(cmd.Context(), "Import", true)

	info, err := os.Stat(cfg.CSVPath)
	if err != nil {
		return fmt.Errorf("failed to read CSV: %w", err)
	}

	bar := newProgressBar(info.Size(), cmd)
	res, err := parseFile(cfg.CSVPath, bar)
	if finishErr := bar.Finish(); finishErr != nil {
		slog.Warn("Failed to finish progress bar", "error", finishErr)
	}
	if err != nil {
		return err
	}
	if handler.WasInterrupted() {
		return ctx.Err()
	}
	if len(res.Records) == 0 {
		return common.NewUserError("No usable sightings in "+cfg.CSVPath, common.ErrNoRecords)
	}

	store, err := storage.NewSQLiteStorage(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	defer func() {
		if closeErr := store.Close(); closeErr != nil {
			slog.Warn("Failed to close database", "error", closeErr)
		}
	}()

	if err := store.Migrate(ctx); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	if viper.GetBool("import.replace") {
		if err := store.DeleteAllRecords(ctx); err != nil {
			return err
		}
		common.LogDebug("Cleared stored sightings", common.Fields{"db": cfg.DBPath})
	}
	if err := store.SaveRecords(ctx, res.Records); err != nil {
		return err
	}
	if err := store.RecordImport(ctx, cfg.CSVPath, len(res.Records), res.Skipped); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, cli.FormatSuccess(fmt.Sprintf("Imported %d sightings into %s", len(res.Records), cfg.DBPath)))
	if res.Skipped > 0 {
		fmt.Fprintln(out, cli.RenderBox(
			fmt.Sprintf("Skipped %d rows", res.Skipped),
			strings.Join(skipLines(res.Reasons), "\n")))
	}
	return nil
}

func newProgressBar(size int64, cmd *cobra.Command) *progressbar.ProgressBar {
	w := cmd.ErrOrStderr()
	return progressbar.NewOptions64(size,
		progressbar.OptionSetWriter(w),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(40),
		progressbar.OptionSetDescription("[cyan][bold]Reading sightings...[reset]"),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			if _, err := fmt.Fprintln(w); err != nil {
				slog.Warn("Failed to write newline after progress bar", "error", err)
			}
		}),
	)
}
