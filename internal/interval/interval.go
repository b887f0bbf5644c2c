// Package interval implements the engine's half-open time interval
// primitives: overlap testing, stable ordering, and pushing a cursor out
// of whichever blocked interval currently contains it.
package interval

import (
	"sort"
	"time"

	"github.com/shopfloor/reflow/internal/domain"
)

// Overlaps reports whether a and b intersect under the strict half-open
// test: a.Start < b.End && b.Start < a.End.
func Overlaps(a, b domain.Interval) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// SortByStart returns a new slice ordered by Start ascending. Stable order
// on ties is not required by the spec, but sort.SliceStable is used anyway
// so repeated calls on an already-sorted slice are cheap and deterministic
// in practice.
func SortByStart(intervals []domain.Interval) []domain.Interval {
	out := make([]domain.Interval, len(intervals))
	copy(out, intervals)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Start.Before(out[j].Start)
	})
	return out
}

// PushOutOfBlocked returns b.End for the first block b whose [Start, End)
// contains t, else t unchanged. Blocks are expected to be disjoint (or at
// least sorted by Start) by the time this is called; a single linear scan
// suffices either way.
func PushOutOfBlocked(t time.Time, blocked []domain.Interval) time.Time {
	for _, b := range blocked {
		if !t.Before(b.Start) && t.Before(b.End) {
			return b.End
		}
	}
	return t
}
