// Package validate implements the two post-hoc invariant checks used by
// the engine's own tests (and exposed to the CLI's "validate" subcommand)
// to sanity-check an already-scheduled set of work orders.
package validate

import (
	"fmt"
	"sort"

	"github.com/shopfloor/reflow/internal/domain"
	"github.com/shopfloor/reflow/internal/interval"
)

// ValidateNoWorkCenterOverlaps groups orders by work center, sorts each
// group by start, and asserts no consecutive pair overlaps.
func ValidateNoWorkCenterOverlaps(orders []*domain.WorkOrder) error {
	byCenter := make(map[string][]*domain.WorkOrder)
	for _, o := range orders {
		byCenter[o.WorkCenterID] = append(byCenter[o.WorkCenterID], o)
	}

	for centerID, group := range byCenter {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].StartDate.Before(group[j].StartDate)
		})
		for i := 1; i < len(group); i++ {
			prev := domain.Interval{Start: group[i-1].StartDate, End: group[i-1].EndDate}
			cur := domain.Interval{Start: group[i].StartDate, End: group[i].EndDate}
			if interval.Overlaps(prev, cur) {
				return fmt.Errorf(
					"work center %s: orders %s and %s overlap",
					centerID, group[i-1].DocID, group[i].DocID,
				)
			}
		}
	}
	return nil
}

// ValidateMaintenanceRespected asserts that for every non-maintenance
// order, neither its start lies in [mStart, mEnd) nor its end lies in
// (mStart, mEnd] for any maintenance window on its center. This is
// deliberately weaker than "no working minute intersects maintenance":
// the single-span representation can enclose a pause over a maintenance
// window, so only the endpoints are checked.
func ValidateMaintenanceRespected(orders []*domain.WorkOrder, centers []*domain.WorkCenter) error {
	windowsByCenter := make(map[string][]domain.Interval, len(centers))
	for _, c := range centers {
		windowsByCenter[c.DocID] = c.MaintenanceWindows
	}

	for _, o := range orders {
		if o.IsMaintenance {
			continue
		}
		for _, m := range windowsByCenter[o.WorkCenterID] {
			if !o.StartDate.Before(m.Start) && o.StartDate.Before(m.End) {
				return fmt.Errorf(
					"work order %s: start %s falls inside maintenance window [%s, %s)",
					o.DocID, domain.FormatInstant(o.StartDate),
					domain.FormatInstant(m.Start), domain.FormatInstant(m.End),
				)
			}
			if o.EndDate.After(m.Start) && !o.EndDate.After(m.End) {
				return fmt.Errorf(
					"work order %s: end %s falls inside maintenance window (%s, %s]",
					o.DocID, domain.FormatInstant(o.EndDate),
					domain.FormatInstant(m.Start), domain.FormatInstant(m.End),
				)
			}
		}
	}
	return nil
}
