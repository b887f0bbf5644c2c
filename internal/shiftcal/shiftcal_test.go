package shiftcal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/shopfloor/reflow/internal/domain"
)

func weekdayShifts(startHour, endHour int) []domain.Shift {
	var shifts []domain.Shift
	for day := 1; day <= 5; day++ { // Monday..Friday
		shifts = append(shifts, domain.Shift{DayOfWeek: day, StartHour: startHour, EndHour: endHour})
	}
	return shifts
}

func TestNextShiftWindowSameDayClamp(t *testing.T) {
	shifts := weekdayShifts(8, 17)
	cursor, err := domain.ParseInstant("2026-03-02T10:30:00Z") // Monday
	require.NoError(t, err)

	w, err := NextShiftWindow(cursor, shifts, DefaultSearchHorizonDays)
	require.NoError(t, err)

	assert.True(t, w.Start.Equal(cursor), "window start clamps to the cursor, not the shift start")
	expectedEnd, _ := domain.ParseInstant("2026-03-02T17:00:00Z")
	assert.True(t, w.End.Equal(expectedEnd))
}

func TestNextShiftWindowAdvancesToNextDay(t *testing.T) {
	shifts := weekdayShifts(8, 17)
	cursor, err := domain.ParseInstant("2026-03-02T18:00:00Z") // Monday, after shift end
	require.NoError(t, err)

	w, err := NextShiftWindow(cursor, shifts, DefaultSearchHorizonDays)
	require.NoError(t, err)

	expectedStart, _ := domain.ParseInstant("2026-03-03T08:00:00Z")
	expectedEnd, _ := domain.ParseInstant("2026-03-03T17:00:00Z")
	assert.True(t, w.Start.Equal(expectedStart))
	assert.True(t, w.End.Equal(expectedEnd))
}

func TestNextShiftWindowSkipsWeekend(t *testing.T) {
	shifts := weekdayShifts(8, 17)
	cursor, err := domain.ParseInstant("2026-03-06T20:00:00Z") // Friday evening
	require.NoError(t, err)

	w, err := NextShiftWindow(cursor, shifts, DefaultSearchHorizonDays)
	require.NoError(t, err)

	expectedStart, _ := domain.ParseInstant("2026-03-09T08:00:00Z") // following Monday
	assert.True(t, w.Start.Equal(expectedStart))
}

func TestNextShiftWindowFailsBeyondHorizon(t *testing.T) {
	cursor, err := domain.ParseInstant("2026-03-02T08:00:00Z")
	require.NoError(t, err)

	_, err = NextShiftWindow(cursor, nil, DefaultSearchHorizonDays)
	require.Error(t, err)

	var scheduleErr *domain.ScheduleError
	require.ErrorAs(t, err, &scheduleErr)
	assert.Equal(t, domain.ErrNoShiftWindowInHorizon, scheduleErr.Kind)
}

func TestNextShiftWindowHonorsConfiguredHorizon(t *testing.T) {
	// A Friday-only shift, searched for from a Monday: the next
	// occurrence is 4 days out. A horizon of 3 must fail even though
	// DefaultSearchHorizonDays would succeed.
	shifts := []domain.Shift{{DayOfWeek: 5, StartHour: 8, EndHour: 17}}
	cursor, err := domain.ParseInstant("2026-03-02T08:00:00Z") // Monday
	require.NoError(t, err)

	_, err = NextShiftWindow(cursor, shifts, 3)
	require.Error(t, err, "a horizon shorter than the gap to the next shift must fail")

	w, err := NextShiftWindow(cursor, shifts, DefaultSearchHorizonDays)
	require.NoError(t, err)
	expectedStart, _ := domain.ParseInstant("2026-03-06T08:00:00Z")
	assert.True(t, w.Start.Equal(expectedStart))
}
