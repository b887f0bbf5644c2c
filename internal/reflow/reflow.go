// Package reflow implements the reflow driver: the single exported entry
// point of the engine. It maps work centers and work orders, seeds each
// center's blocked set from maintenance, pins maintenance orders, then
// walks the dependency-ordered work orders invoking the allocator and
// accumulating change records.
package reflow

import (
	"fmt"
	"time"

	"github.com/shopfloor/reflow/internal/allocator"
	"github.com/shopfloor/reflow/internal/dag"
	"github.com/shopfloor/reflow/internal/domain"
	"github.com/shopfloor/reflow/internal/interval"
	"github.com/shopfloor/reflow/internal/shiftcal"
)

const explanation = "schedule recomputed to satisfy dependency precedence, work center capacity, shift availability, and maintenance blackouts"

// Reflow recomputes every work order's start/end and returns the
// recomputed set alongside the changes and summary metrics. It is
// synchronous and reentrant: it mutates only its own local clones of the
// input work orders, never the caller's. It searches up to
// shiftcal.DefaultSearchHorizonDays for a usable shift window; callers
// that need a configured horizon (the CLI driver, from its config file)
// should call ReflowWithHorizon instead.
func Reflow(input domain.ReflowInput) (domain.ReflowResult, error) {
	return ReflowWithHorizon(input, shiftcal.DefaultSearchHorizonDays)
}

// ReflowWithHorizon is Reflow with the shift-window search horizon
// overridable, so a CLI-configured value can reach the allocator.
func ReflowWithHorizon(input domain.ReflowInput, horizonDays int) (domain.ReflowResult, error) {
	wcByID := make(map[string]*domain.WorkCenter, len(input.WorkCenters))
	for _, wc := range input.WorkCenters {
		wcByID[wc.DocID] = wc
	}

	woByID := make(map[string]*domain.WorkOrder, len(input.WorkOrders))
	cloned := make([]*domain.WorkOrder, len(input.WorkOrders))
	for i, wo := range input.WorkOrders {
		c := wo.Clone()
		cloned[i] = c
		woByID[c.DocID] = c
	}

	topoIDs, err := dag.TopoSort(cloned)
	if err != nil {
		return domain.ReflowResult{}, err
	}

	centerBlocked := make(map[string][]domain.Interval, len(input.WorkCenters))
	for _, wc := range input.WorkCenters {
		blocks := append([]domain.Interval(nil), wc.MaintenanceWindows...)
		centerBlocked[wc.DocID] = interval.SortByStart(blocks)
	}

	for _, wo := range cloned {
		if !wo.IsMaintenance {
			continue
		}
		span := domain.Interval{Start: wo.StartDate, End: wo.EndDate, Reason: "maintenance order"}
		centerBlocked[wo.WorkCenterID] = interval.SortByStart(append(centerBlocked[wo.WorkCenterID], span))
	}

	scheduledEnd := make(map[string]time.Time, len(cloned))
	var changes []domain.ChangeRecord
	totalDelay := 0

	for _, id := range topoIDs {
		wo := woByID[id]

		center, ok := wcByID[wo.WorkCenterID]
		if !ok {
			return domain.ReflowResult{}, domain.NewScheduleError(
				domain.ErrUnknownWorkCenter, wo.WorkCenterID,
				fmt.Sprintf("work order %s references an unknown work center", wo.DocID),
			)
		}

		if wo.IsMaintenance {
			scheduledEnd[id] = wo.EndDate
			continue
		}

		earliest := wo.StartDate
		for _, parentID := range wo.DependsOnWorkOrderIDs {
			parentEnd, scheduled := scheduledEnd[parentID]
			if !scheduled {
				return domain.ReflowResult{}, domain.NewScheduleError(
					domain.ErrInternalOrderingViolation, parentID,
					fmt.Sprintf("parent of %s was not yet scheduled when processed", wo.DocID),
				)
			}
			if parentEnd.After(earliest) {
				earliest = parentEnd
			}
		}

		total := wo.TotalMinutes()
		span, err := allocator.Allocate(earliest, total, center.Shifts, centerBlocked[center.DocID], horizonDays)
		if err != nil {
			return domain.ReflowResult{}, err
		}

		oldStart, oldEnd := wo.StartDate, wo.EndDate
		wo.StartDate = span.Start
		wo.EndDate = span.End
		scheduledEnd[id] = span.End

		placed := domain.Interval{Start: span.Start, End: span.End, Reason: "work order " + wo.DocID}
		centerBlocked[center.DocID] = interval.SortByStart(append(centerBlocked[center.DocID], placed))

		if !span.Start.Equal(oldStart) || !span.End.Equal(oldEnd) {
			delta := domain.MinutesBetween(oldEnd, span.End)
			changes = append(changes, domain.ChangeRecord{
				WorkOrderID:     wo.DocID,
				WorkOrderNumber: wo.WorkOrderNumber,
				Reason:          "reflow repositioned this order to satisfy dependency, capacity, and availability constraints",
				OldStart:        oldStart,
				NewStart:        span.Start,
				OldEnd:          oldEnd,
				NewEnd:          span.End,
				DeltaMinutes:    delta,
			})
			if delta > 0 {
				totalDelay += delta
			}
		}
	}

	updated := make([]*domain.WorkOrder, len(topoIDs))
	for i, id := range topoIDs {
		updated[i] = woByID[id]
	}

	return domain.ReflowResult{
		UpdatedWorkOrders: updated,
		Changes:           changes,
		Explanation:       explanation,
		Metrics: domain.Metrics{
			MovedCount:        len(changes),
			TotalDelayMinutes: totalDelay,
		},
	}, nil
}
