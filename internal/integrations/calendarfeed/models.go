package calendarfeed

import "github.com/clearpath-advisory/booking-service/pkg/types"

// BusyPeriod is one externally-booked interval within a single day.
// It exists only for the duration of one availability computation.
type BusyPeriod struct {
	Start types.TimeString
	End   types.TimeString
}

// Result is the gateway's answer for one date.
// Configured=false means no feed credentials are present OR the feed could
// not be fetched/parsed; both degrade to an empty busy list by contract.
type Result struct {
	Configured  bool
	BusyPeriods []BusyPeriod
}
