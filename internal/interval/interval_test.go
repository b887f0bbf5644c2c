package interval

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/shopfloor/reflow/internal/domain"
)

func mustParse(t *testing.T, s string) time.Time {
	t.Helper()
	ts, err := domain.ParseInstant(s)
	if err != nil {
		t.Fatalf("parse %q: %v", s, err)
	}
	return ts
}

func TestOverlapsStrictHalfOpen(t *testing.T) {
	a := domain.Interval{Start: mustParse(t, "2026-03-02T08:00:00Z"), End: mustParse(t, "2026-03-02T10:00:00Z")}
	touching := domain.Interval{Start: mustParse(t, "2026-03-02T10:00:00Z"), End: mustParse(t, "2026-03-02T12:00:00Z")}
	assert.False(t, Overlaps(a, touching), "adjacent half-open intervals must not overlap")

	overlapping := domain.Interval{Start: mustParse(t, "2026-03-02T09:00:00Z"), End: mustParse(t, "2026-03-02T11:00:00Z")}
	assert.True(t, Overlaps(a, overlapping))

	contained := domain.Interval{Start: mustParse(t, "2026-03-02T08:30:00Z"), End: mustParse(t, "2026-03-02T09:00:00Z")}
	assert.True(t, Overlaps(a, contained))
}

func TestSortByStartDoesNotMutateInput(t *testing.T) {
	in := []domain.Interval{
		{Start: mustParse(t, "2026-03-02T10:00:00Z")},
		{Start: mustParse(t, "2026-03-02T08:00:00Z")},
	}
	out := SortByStart(in)

	assert.True(t, out[0].Start.Before(out[1].Start))
	assert.True(t, in[0].Start.After(in[1].Start), "input slice must be left unmodified")
}

func TestPushOutOfBlocked(t *testing.T) {
	blocked := []domain.Interval{
		{Start: mustParse(t, "2026-03-02T10:00:00Z"), End: mustParse(t, "2026-03-02T13:00:00Z")},
	}

	inside := mustParse(t, "2026-03-02T11:00:00Z")
	assert.Equal(t, mustParse(t, "2026-03-02T13:00:00Z"), PushOutOfBlocked(inside, blocked))

	before := mustParse(t, "2026-03-02T09:00:00Z")
	assert.Equal(t, before, PushOutOfBlocked(before, blocked))

	atStart := mustParse(t, "2026-03-02T10:00:00Z")
	assert.Equal(t, mustParse(t, "2026-03-02T13:00:00Z"), PushOutOfBlocked(atStart, blocked))

	atEnd := mustParse(t, "2026-03-02T13:00:00Z")
	assert.Equal(t, atEnd, PushOutOfBlocked(atEnd, blocked), "end is exclusive, so the block does not contain it")
}
