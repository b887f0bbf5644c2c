package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopfloor/reflow/internal/store/sqlite"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history [run-id]",
	Short: "List recorded reflow runs, or show one run's full change list",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum number of runs to list")
}

func runHistory(cmd *cobra.Command, args []string) error {
	store, err := sqlite.Open(cfg.Store.Path)
	if err != nil {
		log.Error("opening history store failed", "path", cfg.Store.Path, "error", err)
		return fmt.Errorf("opening history store: %w", err)
	}
	defer store.Close()

	ctx := context.Background()

	if len(args) == 1 {
		log.Debug("looking up run", "id", args[0])
		detail, err := store.GetRun(ctx, args[0])
		if err != nil {
			log.Warn("run lookup failed", "id", args[0], "error", err)
			return err
		}
		displayChanges(detail.Changes)
		return nil
	}

	log.Debug("listing recent runs", "limit", historyLimit)
	runs, err := store.ListRuns(ctx, historyLimit)
	if err != nil {
		return err
	}
	displayHistory(runs)
	return nil
}
