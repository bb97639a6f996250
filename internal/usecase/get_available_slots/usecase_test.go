package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearpath-advisory/booking-service/internal/domain"
	"github.com/clearpath-advisory/booking-service/internal/integrations/calendarfeed"
	"github.com/clearpath-advisory/booking-service/pkg/types"
)

type fakeAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
}

func (f *fakeAppointmentRepo) ListActiveByDate(_ context.Context, _ time.Time) ([]*domain.Appointment, error) {
	return f.appointments, f.err
}

type fakeScheduleRepo struct {
	weekly   domain.WeeklySchedule
	settings *domain.AdminSettings
	blocked  bool
}

func (f *fakeScheduleRepo) GetWeeklySchedule(_ context.Context) (domain.WeeklySchedule, error) {
	return f.weekly, nil
}

func (f *fakeScheduleRepo) GetSettings(_ context.Context) (*domain.AdminSettings, error) {
	return f.settings, nil
}

func (f *fakeScheduleRepo) IsDateBlocked(_ context.Context, _ time.Time) (bool, error) {
	return f.blocked, nil
}

type fakeCalendar struct {
	result calendarfeed.Result
}

func (f *fakeCalendar) FetchBusyPeriods(_ context.Context, _ time.Time, _ *time.Location) calendarfeed.Result {
	return f.result
}

type stubTime struct {
	now time.Time
}

func (s stubTime) Now() time.Time {
	return s.now
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// Tuesday with a 09:00-12:00 window, 30-minute appointments, 15-minute
// buffer, booked from Sep 1.
func newTestUseCase(appts *fakeAppointmentRepo, cal *fakeCalendar) (*UseCase, *fakeScheduleRepo) {
	schedule := &fakeScheduleRepo{
		weekly: domain.WeeklySchedule{
			{Weekday: time.Tuesday, StartTime: "09:00", EndTime: "12:00", IsAvailable: true},
		},
		settings: &domain.AdminSettings{
			AppointmentDurationMinutes: 30,
			BufferMinutes:              15,
			AdvanceBookingDays:         30,
			Timezone:                   "UTC",
		},
	}

	uc := NewUseCase(appts, schedule, cal, nopLogger{})
	uc.timeProvider = stubTime{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	return uc, schedule
}

func slotsOf(resp *Response) []string {
	out := make([]string, 0, len(resp.Slots))
	for _, s := range resp.Slots {
		out = append(out, s.String())
	}
	return out
}

func TestExecute_EnumeratesSlotsOnStride(t *testing.T) {
	uc, _ := newTestUseCase(&fakeAppointmentRepo{}, &fakeCalendar{})

	resp, err := uc.Execute(context.Background(), Request{Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "09:45", "10:30", "11:15"}, slotsOf(resp))
	assert.Equal(t, 30, resp.DurationMinutes)
	assert.False(t, resp.CalendarConfigured)
}

func TestExecute_ExcludesBookedSlot(t *testing.T) {
	appts := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{ID: 7, StartTime: "10:30", DurationMinutes: 30, Status: domain.StatusConfirmed},
		},
	}
	uc, _ := newTestUseCase(appts, &fakeCalendar{})

	resp, err := uc.Execute(context.Background(), Request{Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	assert.Equal(t, []string{"09:00", "09:45", "11:15"}, slotsOf(resp))
}

func TestExecute_ExcludesBusyPeriods(t *testing.T) {
	cal := &fakeCalendar{
		result: calendarfeed.Result{
			Configured: true,
			BusyPeriods: []calendarfeed.BusyPeriod{
				{Start: "09:15", End: "10:00"},
			},
		},
	}
	uc, _ := newTestUseCase(&fakeAppointmentRepo{}, cal)

	resp, err := uc.Execute(context.Background(), Request{Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	// 09:00-09:30 and 09:45-10:15 both overlap 09:15-10:00; 10:30 does not.
	assert.Equal(t, []string{"10:30", "11:15"}, slotsOf(resp))
	assert.True(t, resp.CalendarConfigured)
}

func TestExecute_TouchingBusyBoundaryDoesNotBlock(t *testing.T) {
	cal := &fakeCalendar{
		result: calendarfeed.Result{
			Configured: true,
			BusyPeriods: []calendarfeed.BusyPeriod{
				{Start: "09:30", End: "09:45"},
			},
		},
	}
	uc, _ := newTestUseCase(&fakeAppointmentRepo{}, cal)

	resp, err := uc.Execute(context.Background(), Request{Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	// 09:00-09:30 ends exactly where the busy period starts, and 09:45
	// starts exactly where it ends.
	assert.Equal(t, []string{"09:00", "09:45", "10:30", "11:15"}, slotsOf(resp))
}

func TestExecute_DateGate(t *testing.T) {
	uc, _ := newTestUseCase(&fakeAppointmentRepo{}, &fakeCalendar{})
	ctx := context.Background()

	tests := []struct {
		name string
		date time.Time
	}{
		{"past date", time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)},
		{"same day", time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)},
		{"beyond advance horizon", time.Date(2026, 10, 6, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(ctx, Request{Date: tt.date})
			require.NoError(t, err)
			assert.Empty(t, resp.Slots)
		})
	}
}

func TestExecute_HorizonBoundaryIsInclusive(t *testing.T) {
	uc, _ := newTestUseCase(&fakeAppointmentRepo{}, &fakeCalendar{})

	// Sep 1 + 30 days = Oct 1, a Thursday: inside the horizon but not a
	// working day, so the gate passes and the weekday check empties it.
	resp, err := uc.Execute(context.Background(), Request{Date: time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)

	// Tuesday Sep 29 is within the horizon and working.
	resp, err = uc.Execute(context.Background(), Request{Date: time.Date(2026, 9, 29, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 4)
}

func TestExecute_BlockedDate(t *testing.T) {
	uc, schedule := newTestUseCase(&fakeAppointmentRepo{}, &fakeCalendar{})
	schedule.blocked = true

	resp, err := uc.Execute(context.Background(), Request{Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_UnavailableWeekday(t *testing.T) {
	uc, _ := newTestUseCase(&fakeAppointmentRepo{}, &fakeCalendar{})

	// Sunday Sep 20 has no working-hours record.
	resp, err := uc.Execute(context.Background(), Request{Date: time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_RequiresDate(t *testing.T) {
	uc, _ := newTestUseCase(&fakeAppointmentRepo{}, &fakeCalendar{})

	_, err := uc.Execute(context.Background(), Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCheckDate(t *testing.T) {
	uc, schedule := newTestUseCase(&fakeAppointmentRepo{}, &fakeCalendar{})

	resp, err := uc.CheckDate(context.Background(), Request{Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.True(t, resp.Available)

	// Past, blocked and off-schedule dates fail the gate.
	resp, err = uc.CheckDate(context.Background(), Request{Date: time.Date(2026, 8, 25, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.False(t, resp.Available)

	resp, err = uc.CheckDate(context.Background(), Request{Date: time.Date(2026, 9, 20, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.False(t, resp.Available)

	schedule.blocked = true
	resp, err = uc.CheckDate(context.Background(), Request{Date: time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)
	assert.False(t, resp.Available)
}

func TestCheckDate_IgnoresOccupancy(t *testing.T) {
	// Every enumerable slot is taken; the date itself is still bookable,
	// so the day is not grayed out.
	appts := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{ID: 1, StartTime: "09:00", Status: domain.StatusConfirmed},
			{ID: 2, StartTime: "09:45", Status: domain.StatusConfirmed},
			{ID: 3, StartTime: "10:30", Status: domain.StatusConfirmed},
			{ID: 4, StartTime: "11:15", Status: domain.StatusConfirmed},
		},
	}
	uc, _ := newTestUseCase(appts, &fakeCalendar{})
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	slots, err := uc.Execute(context.Background(), Request{Date: date})
	require.NoError(t, err)
	assert.Empty(t, slots.Slots)

	resp, err := uc.CheckDate(context.Background(), Request{Date: date})
	require.NoError(t, err)
	assert.True(t, resp.Available)
}

func TestIsSlotAvailable_ExcludesOwnAppointment(t *testing.T) {
	appts := &fakeAppointmentRepo{
		appointments: []*domain.Appointment{
			{ID: 7, StartTime: "10:30", DurationMinutes: 30, Status: domain.StatusConfirmed},
		},
	}
	uc, _ := newTestUseCase(appts, &fakeCalendar{})
	date := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	available, err := uc.IsSlotAvailable(context.Background(), date, types.TimeString("10:30"), nil)
	require.NoError(t, err)
	assert.False(t, available)

	// A reschedule ignoring its own appointment can re-claim the slot.
	ownID := int64(7)
	available, err = uc.IsSlotAvailable(context.Background(), date, types.TimeString("10:30"), &ownID)
	require.NoError(t, err)
	assert.True(t, available)

	// The exclusion does not apply to someone else's appointment.
	otherID := int64(8)
	available, err = uc.IsSlotAvailable(context.Background(), date, types.TimeString("10:30"), &otherID)
	require.NoError(t, err)
	assert.False(t, available)
}
