package reschedule_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearpath-advisory/booking-service/internal/domain"
	apptRepo "github.com/clearpath-advisory/booking-service/internal/infra/storage/appointment"
	"github.com/clearpath-advisory/booking-service/internal/usecase/create_appointment"
)

type fakeAppointmentRepo struct {
	byToken   *domain.Appointment
	byID      map[int64]*domain.Appointment
	cancelled []int64
}

func (f *fakeAppointmentRepo) GetByCancelToken(_ context.Context, token string) (*domain.Appointment, error) {
	if f.byToken == nil || f.byToken.CancelToken != token {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	return f.byToken, nil
}

func (f *fakeAppointmentRepo) GetByID(_ context.Context, id int64) (*domain.Appointment, error) {
	appt, ok := f.byID[id]
	if !ok {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	return appt, nil
}

func (f *fakeAppointmentRepo) Cancel(_ context.Context, id int64) error {
	f.cancelled = append(f.cancelled, id)
	return nil
}

type fakeScheduleRepo struct{}

func (fakeScheduleRepo) GetSettings(_ context.Context) (*domain.AdminSettings, error) {
	return &domain.AdminSettings{Timezone: "UTC"}, nil
}

type fakeBooker struct {
	gotReq *create_appointment.Request
	resp   *create_appointment.Response
	err    error
}

func (f *fakeBooker) Execute(_ context.Context, req *create_appointment.Request) (*create_appointment.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

type fakeNotifier struct {
	reschedules int
}

func (f *fakeNotifier) SendRescheduleConfirmation(_, _ *domain.Appointment) error {
	f.reschedules++
	return nil
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

func originalAppointment() *domain.Appointment {
	phone := "+1-555-0100"
	return &domain.Appointment{
		ID:          11,
		GuestName:   "Jordan Oduya",
		GuestEmail:  "jordan@example.com",
		GuestPhone:  &phone,
		Date:        time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:30",
		Status:      domain.StatusConfirmed,
		CancelToken: "tok-old",
	}
}

func newTestUseCase(repo *fakeAppointmentRepo, booker *fakeBooker, notifier *fakeNotifier) *UseCase {
	uc := NewUseCase(repo, fakeScheduleRepo{}, booker, notifier, nopLogger{})
	uc.timeProvider = stubTime{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func validRequest() *Request {
	return &Request{
		CancelToken:  "tok-old",
		NewDate:      time.Date(2026, 9, 22, 0, 0, 0, 0, time.UTC),
		NewStartTime: "14:00",
	}
}

func TestExecute_ReschedulesAppointment(t *testing.T) {
	old := originalAppointment()
	joinURL := "https://zoom.us/j/555"
	replacement := &domain.Appointment{
		ID:              50,
		GuestName:       old.GuestName,
		GuestEmail:      old.GuestEmail,
		Date:            time.Date(2026, 9, 22, 0, 0, 0, 0, time.UTC),
		StartTime:       "14:00",
		DurationMinutes: 30,
		Status:          domain.StatusConfirmed,
		MeetingJoinURL:  &joinURL,
		CancelToken:     "tok-new",
	}

	repo := &fakeAppointmentRepo{
		byToken: old,
		byID:    map[int64]*domain.Appointment{50: replacement},
	}
	booker := &fakeBooker{resp: &create_appointment.Response{ID: 50}}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(repo, booker, notifier)

	resp, err := uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(50), resp.ID)
	assert.Equal(t, "tok-new", resp.CancelToken)
	assert.Equal(t, int64(11), resp.RescheduledFrom)

	// The booking request carried the guest over and excluded the
	// original appointment from the occupancy check.
	require.NotNil(t, booker.gotReq)
	assert.Equal(t, old.GuestEmail, booker.gotReq.GuestEmail)
	assert.Equal(t, old.GuestPhone, booker.gotReq.GuestPhone)
	assert.True(t, booker.gotReq.SkipConfirmation)
	require.NotNil(t, booker.gotReq.ExcludeAppointmentID)
	assert.Equal(t, int64(11), *booker.gotReq.ExcludeAppointmentID)
	require.NotNil(t, booker.gotReq.RescheduledFrom)
	assert.Equal(t, int64(11), *booker.gotReq.RescheduledFrom)

	// Old cancelled, one combined email sent.
	assert.Equal(t, []int64{11}, repo.cancelled)
	assert.Equal(t, 1, notifier.reschedules)
}

func TestExecute_UnknownToken(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeBooker{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_AlreadyCancelled(t *testing.T) {
	old := originalAppointment()
	old.Status = domain.StatusCancelled
	uc := newTestUseCase(&fakeAppointmentRepo{byToken: old}, &fakeBooker{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
}

func TestExecute_AlreadyPast(t *testing.T) {
	old := originalAppointment()
	old.Date = time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	uc := newTestUseCase(&fakeAppointmentRepo{byToken: old}, &fakeBooker{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAlreadyPast)
}

func TestExecute_BookingErrorLeavesOriginalUntouched(t *testing.T) {
	old := originalAppointment()
	repo := &fakeAppointmentRepo{byToken: old}
	booker := &fakeBooker{err: create_appointment.ErrSlotNotAvailable}
	uc := newTestUseCase(repo, booker, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, create_appointment.ErrSlotNotAvailable)
	assert.Empty(t, repo.cancelled)
}

func TestExecute_Validation(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeBooker{}, &fakeNotifier{})
	ctx := context.Background()

	_, err := uc.Execute(ctx, &Request{NewDate: time.Now(), NewStartTime: "10:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{CancelToken: "tok", NewStartTime: "10:00"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(ctx, &Request{CancelToken: "tok", NewDate: time.Now(), NewStartTime: "bad"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
