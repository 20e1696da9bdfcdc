package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize/english"
	"github.com/spf13/cobra"

	"github.com/teemow/drivecopy/internal/config"
	"github.com/teemow/drivecopy/internal/drive"
	"github.com/teemow/drivecopy/internal/logging"
	"github.com/teemow/drivecopy/internal/replicate"
)

func newCopyCmd() *cobra.Command {
	var (
		configPath string
		account    string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "copy",
		Short: "Copy the configured batches of folders into the destination folder",
		Long: `Read the batch configuration and copy each requested source folder into
its batch's destination folder, recreating the folder structure.

Already-copied items are skipped, so the command can be re-run to resume an
interrupted copy or to pick up folders added to the source since the last
run. Requested folders missing from the source are reported and skipped.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if verbose {
				level = slog.LevelDebug
			}
			logger := logging.Setup(os.Stderr, level)

			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}

			ctx := context.Background()
			client, err := drive.NewClientForAccount(ctx, account)
			if err != nil {
				return fmt.Errorf("failed to create Drive client for account %s: %w", account, err)
			}

			logger = logging.WithAccount(logger, account)
			planner := replicate.NewPlanner(drive.NewStorage(client), logger)

			start := time.Now()
			report, err := planner.Run(ctx, cfg.Replication())
			if err != nil {
				logger.Error("run failed", logging.Err(err), logging.Duration(time.Since(start)))
				return err
			}

			printSummary(logger, report, time.Since(start))
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Config file (default: ~/.config/drivecopy/config.yaml)")
	cmd.Flags().StringVar(&account, "account", "default", "Google account name to use (default: 'default')")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	return cmd
}

func printSummary(logger *slog.Logger, report *replicate.Report, elapsed time.Duration) {
	for _, b := range report.Batches {
		logger.Info("batch finished",
			logging.Batch(b.Name),
			"created", strings.Join(b.Created, ", "),
			"reused", strings.Join(b.Reused, ", "),
		)
		for _, name := range b.Missing {
			logger.Warn("requested folder was not found in the source", logging.Batch(b.Name), "name", name)
		}
	}

	files, folders := report.Totals()
	logger.Info("run finished",
		"copied", english.Plural(files, "file", ""),
		"created", english.Plural(folders, "folder", ""),
		logging.Duration(elapsed),
	)
}
