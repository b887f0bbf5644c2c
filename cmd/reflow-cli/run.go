package main

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopfloor/reflow/internal/reflow"
	"github.com/shopfloor/reflow/internal/store/sqlite"
)

var runCmd = &cobra.Command{
	Use:   "run <scenario-file>",
	Short: "Reflow a scenario and record the outcome to run history",
	Args:  cobra.ExactArgs(1),
	RunE:  runRun,
}

func runRun(cmd *cobra.Command, args []string) error {
	log.Debug("loading scenario", "path", args[0])
	input, raw, err := loadScenario(args[0], cfg.Schedule.DefaultShifts)
	if err != nil {
		return err
	}
	log.Debug("scenario loaded", "workCenters", len(input.WorkCenters), "workOrders", len(input.WorkOrders))

	result, err := reflow.ReflowWithHorizon(*input, cfg.Schedule.SearchHorizonDays)
	if err != nil {
		log.Error("reflow failed", "error", err)
		return fmt.Errorf("reflow failed: %w", err)
	}

	displayChanges(result.Changes)
	displayMetrics(result.Metrics)

	store, err := sqlite.Open(cfg.Store.Path)
	if err != nil {
		log.Error("opening history store failed", "path", cfg.Store.Path, "error", err)
		return fmt.Errorf("opening history store: %w", err)
	}
	defer store.Close()

	digest := sha256.Sum256(raw)
	id, err := store.RecordRun(context.Background(), hex.EncodeToString(digest[:]), len(input.WorkOrders), &result)
	if err != nil {
		return fmt.Errorf("recording run history: %w", err)
	}
	log.Info("recorded run", "id", id)

	return nil
}
