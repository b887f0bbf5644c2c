package domain

import "time"

// ISOLayout is the wire format for every Instant crossing the engine
// boundary: minute-precision, UTC, RFC3339 with a literal "Z".
const ISOLayout = "2006-01-02T15:04:05Z"

// Minute is the engine's unit of working time.
const Minute = time.Minute

// ParseInstant parses an ISO-8601 UTC timestamp and normalizes it to
// minute precision. Sub-minute components are truncated, not rounded,
// matching the "all times are minute-aligned" assumption on well-formed
// input.
func ParseInstant(s string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, err
	}
	return t.UTC().Truncate(time.Minute), nil
}

// FormatInstant renders an Instant back to its wire form.
func FormatInstant(t time.Time) string {
	return t.UTC().Truncate(time.Minute).Format(ISOLayout)
}

// AddMinutes advances an Instant by n whole minutes. n may be negative.
func AddMinutes(t time.Time, n int) time.Time {
	return t.Add(time.Duration(n) * time.Minute)
}

// MinutesBetween returns floor((b - a) / minute), which may be negative
// when b precedes a.
func MinutesBetween(a, b time.Time) int {
	d := b.Sub(a)
	n := int(d / time.Minute)
	if d%time.Minute < 0 {
		n--
	}
	return n
}

// WeekdayIndex normalizes a time.Weekday to the engine's Sunday=0..Saturday=6
// convention. time.Weekday already uses this numbering, but the helper
// exists so every call site that needs the day index names its intent
// instead of reaching into time.Time directly.
func WeekdayIndex(t time.Time) int {
	return int(t.Weekday())
}
