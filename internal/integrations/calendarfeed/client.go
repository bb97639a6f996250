package calendarfeed

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"sort"
	"time"

	ical "github.com/arran4/golang-ical"

	"github.com/clearpath-advisory/booking-service/pkg/types"
)

// Logger is the logging interface required by the client.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client fetches the business's private ICS feed and derives busy periods.
type Client struct {
	feedURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient creates a calendar-feed client. An empty feedURL leaves the
// integration unconfigured; FetchBusyPeriods then always reports
// Configured=false with no busy periods.
func NewClient(feedURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		feedURL: feedURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// FetchBusyPeriods returns the busy periods on the given calendar date in
// the business timezone. Any failure — missing configuration, transport
// error, malformed ICS — degrades to an unconfigured result so a broken
// calendar integration can never block bookings.
func (c *Client) FetchBusyPeriods(ctx context.Context, date time.Time, loc *time.Location) Result {
	if c.feedURL == "" {
		return Result{Configured: false}
	}

	periods, err := c.fetchDay(ctx, date, loc)
	if err != nil {
		c.log.Error("calendarfeed: degrading to no busy periods for %s: %v",
			date.Format("2006-01-02"), err)
		return Result{Configured: false}
	}

	return Result{Configured: true, BusyPeriods: periods}
}

func (c *Client) fetchDay(ctx context.Context, date time.Time, loc *time.Location) ([]BusyPeriod, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", ErrFeedUnavailable, err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: execute request: %v", ErrFeedUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status code %d", ErrFeedUnavailable, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %v", ErrFeedUnavailable, err)
	}

	cal, err := ical.ParseCalendar(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("%w: parse calendar: %v", ErrMalformedFeed, err)
	}

	dayStart := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, loc)
	dayEnd := dayStart.AddDate(0, 0, 1)

	periods := make([]BusyPeriod, 0)
	for _, ev := range cal.Events() {
		period, ok := c.eventBusyPeriod(ev, dayStart, dayEnd, loc)
		if ok {
			periods = append(periods, period)
		}
	}

	sort.Slice(periods, func(i, j int) bool {
		return periods[i].Start.IsBefore(periods[j].Start)
	})

	return periods, nil
}

// eventBusyPeriod clamps one VEVENT to the requested day and converts it to
// a time-of-day interval. All-day events and events outside the day are
// skipped; a malformed event is skipped rather than failing the whole feed.
func (c *Client) eventBusyPeriod(ev *ical.VEvent, dayStart, dayEnd time.Time, loc *time.Location) (BusyPeriod, bool) {
	if isAllDay(ev) {
		return BusyPeriod{}, false
	}

	start, err := ev.GetStartAt()
	if err != nil {
		c.log.Warn("calendarfeed: event without usable DTSTART skipped: %v", err)
		return BusyPeriod{}, false
	}
	end, err := ev.GetEndAt()
	if err != nil || !end.After(start) {
		// Events without DTEND are treated as zero-length and ignored.
		return BusyPeriod{}, false
	}

	start = start.In(loc)
	end = end.In(loc)

	// Clamp to the requested day.
	if !start.Before(dayEnd) || !end.After(dayStart) {
		return BusyPeriod{}, false
	}
	if start.Before(dayStart) {
		start = dayStart
	}
	if end.After(dayEnd) {
		end = dayEnd
	}

	startTS := types.NewTimeString(start)
	endTS := types.NewTimeString(end)
	if end.Equal(dayEnd) {
		endTS = types.TimeString("24:00")
	}

	return BusyPeriod{Start: startTS, End: endTS}, true
}

// isAllDay detects DATE-valued DTSTART properties ("20250114" style).
func isAllDay(ev *ical.VEvent) bool {
	prop := ev.GetProperty(ical.ComponentPropertyDtStart)
	if prop == nil {
		return true
	}
	if len(prop.Value) == 8 {
		return true
	}
	if params, ok := prop.ICalParameters["VALUE"]; ok {
		for _, p := range params {
			if p == "DATE" {
				return true
			}
		}
	}
	return false
}
