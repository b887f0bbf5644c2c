// Package shiftcal resolves a work center's recurring weekly shift table
// into concrete shift windows on the calendar, given a cursor instant.
package shiftcal

import (
	"sort"
	"time"

	"github.com/shopfloor/reflow/internal/domain"
)

// DefaultSearchHorizonDays bounds how far forward the resolver will look
// for a usable shift window before giving up, when no caller-supplied
// horizon overrides it. This guards against centers with empty shift
// tables or shift tables that never cover any day.
const DefaultSearchHorizonDays = 14

// windowsForDay instantiates every shift declared for dayIndex onto the
// given calendar day, sorted by start time.
func windowsForDay(day time.Time, shifts []domain.Shift) []domain.Interval {
	dayIndex := domain.WeekdayIndex(day)
	year, month, date := day.Date()

	var windows []domain.Interval
	for _, s := range shifts {
		if s.DayOfWeek != dayIndex {
			continue
		}
		start := time.Date(year, month, date, s.StartHour, 0, 0, 0, time.UTC)
		end := time.Date(year, month, date, s.EndHour, 0, 0, 0, time.UTC)
		windows = append(windows, domain.Interval{Start: start, End: end})
	}
	sort.SliceStable(windows, func(i, j int) bool {
		return windows[i].Start.Before(windows[j].Start)
	})
	return windows
}

// NextShiftWindow finds the next usable shift window at or after cursor,
// searching forward up to horizonDays days (use DefaultSearchHorizonDays
// absent a caller-configured override).
//
// On the cursor's own day, the first shift whose end strictly follows the
// cursor is chosen, clamped at its start to the cursor itself. On every
// later day, the earliest shift of the first day that declares any shifts
// at all is chosen.
func NextShiftWindow(cursor time.Time, shifts []domain.Shift, horizonDays int) (domain.Interval, error) {
	dayStart := time.Date(cursor.Year(), cursor.Month(), cursor.Day(), 0, 0, 0, 0, time.UTC)

	for d := 0; d < horizonDays; d++ {
		day := dayStart.AddDate(0, 0, d)
		windows := windowsForDay(day, shifts)

		if d == 0 {
			for _, w := range windows {
				if w.End.After(cursor) {
					start := w.Start
					if cursor.After(start) {
						start = cursor
					}
					return domain.Interval{Start: start, End: w.End}, nil
				}
			}
			continue
		}

		if len(windows) > 0 {
			return windows[0], nil
		}
	}

	return domain.Interval{}, domain.NewScheduleError(
		domain.ErrNoShiftWindowInHorizon,
		domain.FormatInstant(cursor),
		"no shift window found within the search horizon",
	)
}
