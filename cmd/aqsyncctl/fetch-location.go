package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/openaq-tools/aqsync/pkg/model"
)

// fetchLocationCmd represents the fetch location command
var fetchLocationCmd = &cobra.Command{
	Use:   "location <location-id>...",
	Short: "Fetch measurements for every sensor at a location",
	Long: `Fetch daily measurements for every sensor at one or more OpenAQ locations.

Each location is resolved to its sensors first, and the location and sensor
catalog entries are stored alongside the measurements.

Example:
  aqsyncctl fetch location 2178
  aqsyncctl fetch location 2178 2180 --from 2024-01-01 --to 2024-06-01`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		locationIDs := make([]int, 0, len(args))
		for _, arg := range args {
			id, err := strconv.Atoi(arg)
			if err != nil || id <= 0 {
				fmt.Fprintf(os.Stderr, "Invalid location id: %s\n", arg)
				os.Exit(1)
			}
			locationIDs = append(locationIDs, id)
		}

		if err := fetchLocations(cmd, locationIDs); err != nil {
			fmt.Fprintf(os.Stderr, "Fetch failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	fetchCmd.AddCommand(fetchLocationCmd)
}

func fetchLocations(cmd *cobra.Command, locationIDs []int) error {
	noProgress, _ := cmd.Flags().GetBool("no-progress")
	syncer, err := newSyncer(!noProgress)
	if err != nil {
		return err
	}

	from, to := syncWindow(cmd)

	failed := false
	for _, locationID := range locationIDs {
		start := time.Now()
		stats, err := syncer.SyncLocation(cmd.Context(), locationID, from, to)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Location %d failed: %v\n", locationID, err)
			failed = true
			continue
		}

		printRunSummary(stats, time.Since(start))
		if stats.Status == model.RunStatusFailed {
			failed = true
		}
	}

	if failed {
		os.Exit(1)
	}
	return nil
}
