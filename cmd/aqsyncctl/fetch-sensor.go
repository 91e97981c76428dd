package main

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/openaq-tools/aqsync/pkg/model"
)

// fetchSensorCmd represents the fetch sensor command
var fetchSensorCmd = &cobra.Command{
	Use:   "sensor <sensor-id>...",
	Short: "Fetch measurements for one or more sensors",
	Long: `Fetch daily measurements for one or more sensors and store them in PostgreSQL.

Sensors are synced concurrently. A sensor that fails does not abort the
others; the run is recorded as partial instead.

Example:
  aqsyncctl fetch sensor 3917
  aqsyncctl fetch sensor 3917 3920 --from 2024-01-01 --to 2024-06-01`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		sensorIDs := make([]int, 0, len(args))
		for _, arg := range args {
			id, err := strconv.Atoi(arg)
			if err != nil || id <= 0 {
				fmt.Fprintf(os.Stderr, "Invalid sensor id: %s\n", arg)
				os.Exit(1)
			}
			sensorIDs = append(sensorIDs, id)
		}

		if err := fetchSensors(cmd, sensorIDs); err != nil {
			fmt.Fprintf(os.Stderr, "Fetch failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	fetchCmd.AddCommand(fetchSensorCmd)
}

func fetchSensors(cmd *cobra.Command, sensorIDs []int) error {
	noProgress, _ := cmd.Flags().GetBool("no-progress")
	syncer, err := newSyncer(!noProgress)
	if err != nil {
		return err
	}

	from, to := syncWindow(cmd)

	start := time.Now()
	stats, err := syncer.SyncSensors(cmd.Context(), sensorIDs, from, to)
	if err != nil {
		return err
	}

	printRunSummary(stats, time.Since(start))

	if stats.Status == model.RunStatusFailed {
		os.Exit(1)
	}
	return nil
}
