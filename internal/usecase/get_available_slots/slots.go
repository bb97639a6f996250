package get_available_slots

import (
	"time"

	"github.com/clearpath-advisory/booking-service/internal/domain"
	"github.com/clearpath-advisory/booking-service/internal/integrations/calendarfeed"
	"github.com/clearpath-advisory/booking-service/pkg/types"
)

// dateOnly truncates t to midnight in loc.
func dateOnly(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// isDateBookable applies the date gate: the date must be strictly after
// today and within the advance-booking horizon. Same-day booking is not
// offered.
func isDateBookable(date, now time.Time, advanceDays int, loc *time.Location) bool {
	day := dateOnly(date, loc)
	today := dateOnly(now, loc)

	if !day.After(today) {
		return false
	}

	horizon := today.AddDate(0, 0, advanceDays)
	return !day.After(horizon)
}

// enumerateSlots generates candidate slot start times over the working
// window: starting at start, advancing by stride, keeping candidates whose
// full duration fits before end.
func enumerateSlots(start, end types.TimeString, stride, durationMinutes int) []types.TimeString {
	startMin := start.Minutes()
	endMin := end.Minutes()
	if startMin < 0 || endMin < 0 || stride <= 0 || durationMinutes <= 0 {
		return nil
	}

	var slots []types.TimeString
	for cur := startMin; cur+durationMinutes <= endMin; cur += stride {
		ts, err := types.FromMinutes(cur)
		if err != nil {
			break
		}
		slots = append(slots, ts)
	}
	return slots
}

// excludeBooked removes candidates whose start time equals a booked
// appointment's start time. Matching is by start equality, not by overlap:
// appointments always occupy whole slots on the same grid. An appointment
// whose ID equals excludeID does not count as occupancy.
func excludeBooked(slots []types.TimeString, booked []*domain.Appointment, excludeID *int64) []types.TimeString {
	if len(booked) == 0 {
		return slots
	}

	taken := make(map[int]struct{}, len(booked))
	for _, appt := range booked {
		if excludeID != nil && appt.ID == *excludeID {
			continue
		}
		if m := appt.StartTime.Minutes(); m >= 0 {
			taken[m] = struct{}{}
		}
	}

	out := slots[:0]
	for _, slot := range slots {
		if _, ok := taken[slot.Minutes()]; ok {
			continue
		}
		out = append(out, slot)
	}
	return out
}

// excludeBusy removes candidates that overlap any external busy period.
// Overlap is strict: a slot that merely touches a busy period's boundary
// survives.
func excludeBusy(slots []types.TimeString, durationMinutes int, busy []calendarfeed.BusyPeriod) []types.TimeString {
	if len(busy) == 0 {
		return slots
	}

	out := slots[:0]
	for _, slot := range slots {
		blocked := false
		for _, period := range busy {
			if domain.OverlapsPeriod(slot, durationMinutes, period.Start, period.End) {
				blocked = true
				break
			}
		}
		if !blocked {
			out = append(out, slot)
		}
	}
	return out
}
