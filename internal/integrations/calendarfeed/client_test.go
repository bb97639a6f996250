package calendarfeed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearpath-advisory/booking-service/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const feedFixture = `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//Test//EN
BEGIN:VEVENT
UID:ev-1
DTSTART:20260915T093000Z
DTEND:20260915T101500Z
SUMMARY:Client call
END:VEVENT
BEGIN:VEVENT
UID:ev-2
DTSTART:20260915T140000Z
DTEND:20260915T150000Z
SUMMARY:Review
END:VEVENT
BEGIN:VEVENT
UID:ev-other-day
DTSTART:20260916T090000Z
DTEND:20260916T100000Z
SUMMARY:Tomorrow
END:VEVENT
BEGIN:VEVENT
UID:ev-all-day
DTSTART;VALUE=DATE:20260915
SUMMARY:Vacation marker
END:VEVENT
END:VCALENDAR
`

func serveICS(t *testing.T, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/calendar")
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchBusyPeriods_Unconfigured(t *testing.T) {
	c := NewClient("", time.Second, nopLogger{})

	result := c.FetchBusyPeriods(context.Background(), time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), time.UTC)
	assert.False(t, result.Configured)
	assert.Empty(t, result.BusyPeriods)
}

func TestFetchBusyPeriods_ReturnsDayEvents(t *testing.T) {
	srv := serveICS(t, feedFixture)
	c := NewClient(srv.URL, time.Second, nopLogger{})

	result := c.FetchBusyPeriods(context.Background(), time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), time.UTC)
	require.True(t, result.Configured)

	// Other-day and all-day events are skipped, the rest sorted by start.
	require.Len(t, result.BusyPeriods, 2)
	assert.Equal(t, types.TimeString("09:30"), result.BusyPeriods[0].Start)
	assert.Equal(t, types.TimeString("10:15"), result.BusyPeriods[0].End)
	assert.Equal(t, types.TimeString("14:00"), result.BusyPeriods[1].Start)
	assert.Equal(t, types.TimeString("15:00"), result.BusyPeriods[1].End)
}

func TestFetchBusyPeriods_ClampsToDay(t *testing.T) {
	fixture := `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//Test//EN
BEGIN:VEVENT
UID:ev-overnight-in
DTSTART:20260914T230000Z
DTEND:20260915T013000Z
SUMMARY:Late call
END:VEVENT
BEGIN:VEVENT
UID:ev-overnight-out
DTSTART:20260915T230000Z
DTEND:20260916T010000Z
SUMMARY:Another late call
END:VEVENT
END:VCALENDAR
`
	srv := serveICS(t, fixture)
	c := NewClient(srv.URL, time.Second, nopLogger{})

	result := c.FetchBusyPeriods(context.Background(), time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), time.UTC)
	require.True(t, result.Configured)
	require.Len(t, result.BusyPeriods, 2)

	assert.Equal(t, types.TimeString("00:00"), result.BusyPeriods[0].Start)
	assert.Equal(t, types.TimeString("01:30"), result.BusyPeriods[0].End)
	assert.Equal(t, types.TimeString("23:00"), result.BusyPeriods[1].Start)
	assert.Equal(t, types.TimeString("24:00"), result.BusyPeriods[1].End)
}

func TestFetchBusyPeriods_ConvertsToBusinessTimezone(t *testing.T) {
	fixture := `BEGIN:VCALENDAR
VERSION:2.0
PRODID:-//Test//Test//EN
BEGIN:VEVENT
UID:ev-utc
DTSTART:20260915T140000Z
DTEND:20260915T150000Z
SUMMARY:UTC event
END:VEVENT
END:VCALENDAR
`
	srv := serveICS(t, fixture)
	c := NewClient(srv.URL, time.Second, nopLogger{})

	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 14:00 UTC is 10:00 in New York during DST.
	result := c.FetchBusyPeriods(context.Background(), time.Date(2026, 9, 15, 0, 0, 0, 0, loc), loc)
	require.True(t, result.Configured)
	require.Len(t, result.BusyPeriods, 1)
	assert.Equal(t, types.TimeString("10:00"), result.BusyPeriods[0].Start)
	assert.Equal(t, types.TimeString("11:00"), result.BusyPeriods[0].End)
}

func TestFetchBusyPeriods_DegradesOnServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)
	c := NewClient(srv.URL, time.Second, nopLogger{})

	result := c.FetchBusyPeriods(context.Background(), time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), time.UTC)
	assert.False(t, result.Configured)
}

func TestFetchBusyPeriods_DegradesOnMalformedFeed(t *testing.T) {
	srv := serveICS(t, "not an ics payload")
	c := NewClient(srv.URL, time.Second, nopLogger{})

	result := c.FetchBusyPeriods(context.Background(), time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC), time.UTC)
	assert.False(t, result.Configured)
}
