package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
)

// sourcesWatchCmd represents the sources watch command
var sourcesWatchCmd = &cobra.Command{
	Use:   "watch <file>",
	Short: "Watch a sources file and re-sync when it changes",
	Long: `Watch a sources file and re-sync whenever it is modified.

This keeps a long-running process that syncs the listed sensors and
locations each time the file is written. Useful for driving scheduled
syncs from a config-management tool.

Example:
  aqsyncctl sources watch /run/aqsync/sources.yml`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := watchSources(cmd, args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to watch sources: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	sourcesCmd.AddCommand(sourcesWatchCmd)
}

func watchSources(cmd *cobra.Command, filename string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer func() { _ = watcher.Close() }()

	if err := watcher.Add(filename); err != nil {
		return fmt.Errorf("failed to watch file %s: %w", filename, err)
	}

	fmt.Printf("Watching %s for sources changes\n", filename)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				fmt.Printf("[%s] File modified, re-syncing...\n", time.Now().Format(time.RFC3339))

				if err := syncSourcesOnce(cmd.Context(), filename); err != nil {
					fmt.Fprintf(os.Stderr, "Error syncing sources: %v\n", err)
				} else {
					fmt.Printf("Sources synced successfully from %s\n", filename)
				}
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintf(os.Stderr, "Watcher error: %v\n", err)
		case <-sigChan:
			fmt.Println("\nShutting down...")
			return nil
		}
	}
}

func syncSourcesOnce(ctx context.Context, path string) error {
	cmd := &cobra.Command{}
	cmd.Flags().Bool("no-progress", true, "")
	cmd.SetContext(ctx)
	return syncSources(cmd, path)
}
