// Package allocator implements the working-minutes allocator: the core
// routine that threads a required duration through the intersection of a
// work center's shift windows and its current blocked intervals, emitting
// a single coherent [start, end) span.
package allocator

import (
	"time"

	"github.com/shopfloor/reflow/internal/domain"
	"github.com/shopfloor/reflow/internal/interval"
	"github.com/shopfloor/reflow/internal/shiftcal"
)

// Allocate finds the [start, end) span in which exactly totalMinutes of
// working time fit, starting no earlier than start, honoring shifts and
// avoiding every interval in blocked. end is the instant immediately after
// the last working minute; the elapsed span between start and end may
// include non-working time (shift gaps, blocked intervals) when work must
// pause partway through.
//
// totalMinutes == 0 is a fast path: the cursor is pushed out of any
// containing block and returned as both endpoints, without resolving a
// shift window at all.
//
// horizonDays bounds how far forward shift resolution searches before
// giving up; pass shiftcal.DefaultSearchHorizonDays absent a configured
// override.
func Allocate(start time.Time, totalMinutes int, shifts []domain.Shift, blocked []domain.Interval, horizonDays int) (domain.Interval, error) {
	cursor := interval.PushOutOfBlocked(start, blocked)

	if totalMinutes <= 0 {
		return domain.Interval{Start: cursor, End: cursor}, nil
	}

	remaining := totalMinutes
	var scheduledStart time.Time
	haveStart := false

	for remaining > 0 {
		cursor = interval.PushOutOfBlocked(cursor, blocked)

		window, err := shiftcal.NextShiftWindow(cursor, shifts, horizonDays)
		if err != nil {
			return domain.Interval{}, err
		}

		if cursor.Before(window.Start) {
			cursor = window.Start
		}
		cursor = interval.PushOutOfBlocked(cursor, blocked)
		if cursor.Before(window.Start) {
			cursor = window.Start
		}

		if !cursor.Before(window.End) {
			cursor = domain.AddMinutes(window.End, 1)
			continue
		}

		if !haveStart {
			scheduledStart = cursor
			haveStart = true
		}

		blocker, freeEnd := constrainingBlock(cursor, window.End, blocked)

		if !freeEnd.After(cursor) {
			if blocker != nil && blocker.Start.Equal(cursor) {
				cursor = blocker.End
			} else {
				cursor = domain.AddMinutes(window.End, 1)
			}
			continue
		}

		free := domain.MinutesBetween(cursor, freeEnd)
		if free <= 0 {
			cursor = domain.AddMinutes(freeEnd, 1)
			continue
		}

		used := remaining
		if free < used {
			used = free
		}
		remaining -= used
		cursor = domain.AddMinutes(cursor, used)
		cursor = interval.PushOutOfBlocked(cursor, blocked)
	}

	return domain.Interval{Start: scheduledStart, End: cursor}, nil
}

// constrainingBlock finds the earliest block (by Start) that ends after
// cursor and starts before shiftEnd, and the free-segment end it implies:
// the block's start clamped to shiftEnd when the block starts at or after
// cursor, else shiftEnd itself.
func constrainingBlock(cursor, shiftEnd time.Time, blocked []domain.Interval) (*domain.Interval, time.Time) {
	freeEnd := shiftEnd
	var chosen *domain.Interval

	for i := range blocked {
		b := blocked[i]
		if !b.End.After(cursor) || !b.Start.Before(shiftEnd) {
			continue
		}
		if chosen == nil || b.Start.Before(chosen.Start) {
			bb := b
			chosen = &bb
		}
	}

	if chosen != nil && !chosen.Start.Before(cursor) {
		if chosen.Start.Before(freeEnd) {
			freeEnd = chosen.Start
		}
	}

	return chosen, freeEnd
}
