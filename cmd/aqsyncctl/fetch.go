package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/openaq-tools/aqsync/pkg/config"
	"github.com/openaq-tools/aqsync/pkg/db"
	"github.com/openaq-tools/aqsync/pkg/ingest"
	"github.com/openaq-tools/aqsync/pkg/openaq"
)

// fetchCmd represents the fetch command
var fetchCmd = &cobra.Command{
	Use:   "fetch",
	Short: "Fetch measurements from the OpenAQ API",
	Long:  `Fetch daily measurements from the OpenAQ API and store them in PostgreSQL.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'fetch' requires a subcommand (sensor or location)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.PersistentFlags().String("from", "", "Start of the sync window (defaults to configured datetime_from)")
	fetchCmd.PersistentFlags().String("to", "", "End of the sync window (defaults to configured datetime_to)")
	fetchCmd.PersistentFlags().Bool("no-progress", false, "Disable the progress bar")
}

func newAPIClient() (*openaq.Client, error) {
	apiKey := os.Getenv("OPENAQ_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("OPENAQ_API_KEY environment variable is required")
	}

	cfg := config.Get()
	return openaq.NewClient(
		apiKey,
		openaq.WithBaseURL(cfg.APIBaseURL),
		openaq.WithTimeout(cfg.RequestTimeout()),
		openaq.WithMaxRetries(cfg.MaxRetries),
	), nil
}

func newSyncer(progress bool) (*ingest.Syncer, error) {
	client, err := newAPIClient()
	if err != nil {
		return nil, err
	}

	database, err := db.Connect(db.Config{})
	if err != nil {
		return nil, err
	}

	cfg := config.Get()
	store := ingest.NewGormStore(database, cfg.InsertBatchSize)
	return ingest.NewSyncer(client, store, ingest.Options{
		PageSize: cfg.PageSize,
		Workers:  cfg.Workers,
		Progress: progress,
	}), nil
}

// configWindow returns the sync window from configuration.
func configWindow() (string, string) {
	cfg := config.Get()
	return cfg.DatetimeFrom, cfg.DatetimeTo
}

// syncWindow resolves the --from/--to flags against the configured defaults.
func syncWindow(cmd *cobra.Command) (string, string) {
	from, to := configWindow()
	if flag, _ := cmd.Flags().GetString("from"); flag != "" {
		from = flag
	}
	if flag, _ := cmd.Flags().GetString("to"); flag != "" {
		to = flag
	}
	return from, to
}

func printRunSummary(stats *ingest.RunStats, elapsed time.Duration) {
	green := color.New(color.FgGreen)
	red := color.New(color.FgRed)

	fmt.Println()
	for _, s := range stats.Sensors {
		if s.Err != nil {
			red.Printf("  ✗ sensor %d: %v\n", s.SensorID, s.Err)
			continue
		}
		green.Printf("  ✓ sensor %d: %d fetched, %d inserted (%d pages)\n",
			s.SensorID, s.Fetched, s.Inserted, s.Pages)
	}

	fmt.Println()
	fmt.Printf("Run %s finished with status %q in %s\n", stats.RunID, stats.Status, elapsed.Round(time.Millisecond))
	fmt.Printf("  sensors: %d  fetched: %d  inserted: %d  failed: %d\n",
		len(stats.Sensors), stats.Fetched, stats.Inserted, stats.Failed)
}
