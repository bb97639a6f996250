package calendarfeed

import "errors"

// Internal error taxonomy. These never reach the availability resolver —
// the client maps all of them to an unconfigured Result — but they keep
// "feed down" distinguishable from "feed returned garbage" in the logs.
var (
	// ErrFeedUnavailable is returned for transport-level failures.
	ErrFeedUnavailable = errors.New("calendarfeed client: feed unavailable")

	// ErrMalformedFeed is returned when the feed body is not valid ICS.
	ErrMalformedFeed = errors.New("calendarfeed client: malformed feed")
)
