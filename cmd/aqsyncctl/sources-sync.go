package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/openaq-tools/aqsync/pkg/ingest"
	"github.com/openaq-tools/aqsync/pkg/model"
	"github.com/openaq-tools/aqsync/pkg/sources"
)

// sourcesSyncCmd represents the sources sync command
var sourcesSyncCmd = &cobra.Command{
	Use:   "sync [file]",
	Short: "Sync everything listed in a sources file",
	Long: `Sync measurements for every sensor and location listed in a sources file.

The file is YAML with "sensors" and "locations" lists, and an optional
date window. When no file is given, the configured sources_file is used.

Example:
  aqsyncctl sources sync sources.yml`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		path, err := sourcesFilePath(args)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		if err := syncSources(cmd, path); err != nil {
			fmt.Fprintf(os.Stderr, "Sync failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesSyncCmd)

	sourcesSyncCmd.Flags().Bool("no-progress", false, "Disable the progress bar")
}

func syncSources(cmd *cobra.Command, path string) error {
	list, err := sources.Load(path)
	if err != nil {
		return err
	}

	noProgress, _ := cmd.Flags().GetBool("no-progress")
	syncer, err := newSyncer(!noProgress)
	if err != nil {
		return err
	}

	from, to := sourcesWindow(list)

	failed := false
	for _, locationID := range list.Locations {
		fmt.Printf("Syncing location %d...\n", locationID)
		if err := runSourcesSync(cmd.Context(), func(ctx context.Context) (*ingest.RunStats, error) {
			return syncer.SyncLocation(ctx, locationID, from, to)
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Location %d failed: %v\n", locationID, err)
			failed = true
		}
	}

	if len(list.Sensors) > 0 {
		fmt.Printf("Syncing %d sensor(s)...\n", len(list.Sensors))
		if err := runSourcesSync(cmd.Context(), func(ctx context.Context) (*ingest.RunStats, error) {
			return syncer.SyncSensors(ctx, list.Sensors, from, to)
		}); err != nil {
			fmt.Fprintf(os.Stderr, "Sensor sync failed: %v\n", err)
			failed = true
		}
	}

	if failed {
		return fmt.Errorf("one or more syncs failed")
	}
	return nil
}

// sourcesWindow prefers the window in the sources file over the configured one.
func sourcesWindow(list *sources.Sources) (string, string) {
	from, to := configWindow()
	if list.DatetimeFrom != "" {
		from = list.DatetimeFrom
	}
	if list.DatetimeTo != "" {
		to = list.DatetimeTo
	}
	return from, to
}

func runSourcesSync(ctx context.Context, sync func(context.Context) (*ingest.RunStats, error)) error {
	start := time.Now()
	stats, err := sync(ctx)
	if err != nil {
		return err
	}

	printRunSummary(stats, time.Since(start))

	if stats.Status == model.RunStatusFailed {
		return fmt.Errorf("run %s failed", stats.RunID)
	}
	return nil
}
