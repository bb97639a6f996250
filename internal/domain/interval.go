package domain

import "github.com/clearpath-advisory/booking-service/pkg/types"

// Overlaps reports whether the half-open interval
// [startMin, startMin+durationMinutes) intersects [busyStartMin, busyEndMin).
// Touching endpoints do not overlap: a slot ending exactly where a busy
// period begins is still bookable. Every availability exclusion in the
// resolver reduces to this predicate.
func Overlaps(startMin, durationMinutes, busyStartMin, busyEndMin int) bool {
	return startMin < busyEndMin && startMin+durationMinutes > busyStartMin
}

// OverlapsPeriod is Overlaps lifted onto time-of-day values. Invalid times
// are treated as non-overlapping.
func OverlapsPeriod(slotStart types.TimeString, durationMinutes int, busyStart, busyEnd types.TimeString) bool {
	s := slotStart.Minutes()
	b0 := busyStart.Minutes()
	b1 := busyEnd.Minutes()
	if s < 0 || b0 < 0 || b1 < 0 {
		return false
	}
	return Overlaps(s, durationMinutes, b0, b1)
}
