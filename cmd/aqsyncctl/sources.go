package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/openaq-tools/aqsync/pkg/config"
)

// sourcesCmd represents the sources command
var sourcesCmd = &cobra.Command{
	Use:   "sources",
	Short: "Sync from a sensors/locations list",
	Long:  `Sync measurements for every sensor and location named in a sources file.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'sources' requires a subcommand (sync or watch)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

func init() {
	rootCmd.AddCommand(sourcesCmd)
}

// sourcesFilePath resolves the file argument against the configured default.
func sourcesFilePath(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	if path := config.Get().SourcesFile; path != "" {
		return path, nil
	}
	return "", fmt.Errorf("no sources file given and sources_file is not configured")
}
