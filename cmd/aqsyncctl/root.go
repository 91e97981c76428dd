package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "aqsyncctl",
	Short: "Sync OpenAQ air quality measurements into PostgreSQL",
	Long: `A tool for fetching daily air quality measurements from the OpenAQ API
and storing them in PostgreSQL, with a read-only query API over the result.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
