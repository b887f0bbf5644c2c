package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/shopfloor/reflow/internal/validate"
)

var validateCmd = &cobra.Command{
	Use:   "validate <scenario-file>",
	Short: "Check a scenario's declared placements for overlaps and maintenance conflicts",
	Long: `validate checks a scenario file's work orders as declared, without
reflowing them: no work center may host two overlapping orders, and no
non-maintenance order may start or end inside a maintenance window.`,
	Args: cobra.ExactArgs(1),
	RunE: runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	log.Debug("validating scenario", "path", args[0])
	input, _, err := loadScenario(args[0], cfg.Schedule.DefaultShifts)
	if err != nil {
		return err
	}

	if err := validate.ValidateNoWorkCenterOverlaps(input.WorkOrders); err != nil {
		log.Warn("work center overlap detected", "error", err)
		errorColor.Printf("FAIL: %v\n", err)
		return fmt.Errorf("validation failed")
	}
	if err := validate.ValidateMaintenanceRespected(input.WorkOrders, input.WorkCenters); err != nil {
		log.Warn("maintenance conflict detected", "error", err)
		errorColor.Printf("FAIL: %v\n", err)
		return fmt.Errorf("validation failed")
	}

	successColor.Println("OK: scenario has no overlaps or maintenance conflicts")
	return nil
}
