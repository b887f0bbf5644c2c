package main

import (
	"fmt"
	"os"
	"time"

	"github.com/docker/go-units"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"

	"github.com/shopfloor/reflow/internal/domain"
	"github.com/shopfloor/reflow/internal/store/sqlite"
)

var (
	successColor = color.New(color.FgGreen, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	headerColor  = color.New(color.FgMagenta, color.Bold)
	infoColor    = color.New(color.FgCyan)
)

func displayChanges(changes []domain.ChangeRecord) {
	if len(changes) == 0 {
		infoColor.Println("No work orders moved.")
		return
	}

	headerColor.Println("CHANGES")
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Work Order", "Old Start", "New Start", "New End", "Delta"})
	table.SetBorder(false)
	table.SetRowSeparator("-")
	table.SetHeaderColor(
		tablewriter.Colors{tablewriter.FgMagentaColor, tablewriter.Bold},
		tablewriter.Colors{tablewriter.FgMagentaColor, tablewriter.Bold},
		tablewriter.Colors{tablewriter.FgMagentaColor, tablewriter.Bold},
		tablewriter.Colors{tablewriter.FgMagentaColor, tablewriter.Bold},
		tablewriter.Colors{tablewriter.FgMagentaColor, tablewriter.Bold},
	)

	for _, c := range changes {
		table.Append([]string{
			c.WorkOrderNumber,
			c.OldStart.Format(domain.ISOLayout),
			c.NewStart.Format(domain.ISOLayout),
			c.NewEnd.Format(domain.ISOLayout),
			units.HumanDuration(time.Duration(c.DeltaMinutes) * time.Minute),
		})
	}
	table.Render()
}

func displayMetrics(m domain.Metrics) {
	fmt.Println()
	successColor.Printf("Moved: %d work order(s)\n", m.MovedCount)
	infoColor.Printf("Total delay introduced: %s\n", units.HumanDuration(time.Duration(m.TotalDelayMinutes)*time.Minute))
}

func displayHistory(runs []sqlite.RunSummary) {
	if len(runs) == 0 {
		infoColor.Println("No recorded runs yet.")
		return
	}

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Run ID", "Recorded At", "Work Orders", "Moved", "Total Delta"})
	table.SetBorder(false)
	table.SetRowSeparator("-")

	for _, r := range runs {
		table.Append([]string{
			r.ID,
			r.CreatedAt.Format(domain.ISOLayout),
			fmt.Sprintf("%d", r.WorkOrderCount),
			fmt.Sprintf("%d", r.MovedCount),
			units.HumanDuration(time.Duration(r.TotalDeltaMinutes) * time.Minute),
		})
	}
	table.Render()
}
