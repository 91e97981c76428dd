package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/openaq-tools/aqsync/pkg/export"
	"github.com/openaq-tools/aqsync/pkg/openaq"
)

// exportCmd represents the export command
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export stored measurements as CSV",
	Long: `Export stored measurements as CSV.

Writes to stdout unless --output is given. Filters are optional and
combine with AND.

Example:
  aqsyncctl export > all.csv
  aqsyncctl export --sensor-id 3917 --parameter pm25 --from 2024-01-01 -o pm25.csv`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runExport(cmd); err != nil {
			fmt.Fprintf(os.Stderr, "Export failed: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().Int("sensor-id", 0, "Only export this sensor")
	exportCmd.Flags().String("parameter", "", "Only export this parameter (e.g. pm25)")
	exportCmd.Flags().String("from", "", "Only export measurements at or after this date")
	exportCmd.Flags().String("to", "", "Only export measurements before this date")
	exportCmd.Flags().StringP("output", "o", "", "Output file (defaults to stdout)")
}

func runExport(cmd *cobra.Command) error {
	sensorID, _ := cmd.Flags().GetInt("sensor-id")
	parameter, _ := cmd.Flags().GetString("parameter")

	from, err := exportTime(cmd, "from")
	if err != nil {
		return err
	}
	to, err := exportTime(cmd, "to")
	if err != nil {
		return err
	}

	var out io.Writer = os.Stdout
	if path, _ := cmd.Flags().GetString("output"); path != "" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() { _ = file.Close() }()
		out = file
	}

	exporter, err := export.NewExporter()
	if err != nil {
		return err
	}
	defer func() { _ = exporter.Close() }()

	rows, err := exporter.WriteCSV(out, export.Filter{
		SensorID:  sensorID,
		Parameter: parameter,
		From:      from,
		To:        to,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stderr, "Exported %d rows\n", rows)
	return nil
}

func exportTime(cmd *cobra.Command, name string) (time.Time, error) {
	val, _ := cmd.Flags().GetString(name)
	if val == "" {
		return time.Time{}, nil
	}

	normalized, err := openaq.ParseDate(val)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --%s: %w", name, err)
	}
	return time.Parse("2006-01-02T15:04:05Z", normalized)
}
