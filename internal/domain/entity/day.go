package entity

import "time"

// Day-bucket helpers. Every write and read path must agree on which UTC
// calendar day a timestamp belongs to, so all bucket math lives here.

// DayOf returns the UTC midnight that opens the calendar day containing t.
func DayOf(t time.Time) time.Time {
	u := t.UTC()

	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// DayBounds returns the inclusive range covering the UTC calendar day of t.
// The end bound is one millisecond before the next midnight.
func DayBounds(t time.Time) (start, end time.Time) {
	start = DayOf(t)
	end = start.Add(24*time.Hour - time.Millisecond)

	return start, end
}

// SameUTCDay reports whether a and b fall on the same UTC calendar day.
func SameUTCDay(a, b time.Time) bool {
	return DayOf(a).Equal(DayOf(b))
}
