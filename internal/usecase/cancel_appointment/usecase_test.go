package cancel_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearpath-advisory/booking-service/internal/domain"
	apptRepo "github.com/clearpath-advisory/booking-service/internal/infra/storage/appointment"
)

type fakeAppointmentRepo struct {
	appt      *domain.Appointment
	cancelled []int64
	cancelErr error
}

func (f *fakeAppointmentRepo) GetByCancelToken(_ context.Context, token string) (*domain.Appointment, error) {
	if f.appt == nil || f.appt.CancelToken != token {
		return nil, apptRepo.ErrAppointmentNotFound
	}
	return f.appt, nil
}

func (f *fakeAppointmentRepo) Cancel(_ context.Context, id int64) error {
	if f.cancelErr != nil {
		return f.cancelErr
	}
	f.cancelled = append(f.cancelled, id)
	return nil
}

type fakeScheduleRepo struct{}

func (fakeScheduleRepo) GetSettings(_ context.Context) (*domain.AdminSettings, error) {
	return &domain.AdminSettings{
		AppointmentDurationMinutes: 30,
		Timezone:                   "UTC",
	}, nil
}

type fakeNotifier struct {
	cancellations int
}

func (f *fakeNotifier) SendCancellationConfirmation(_ *domain.Appointment) error {
	f.cancellations++
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

func futureAppointment() *domain.Appointment {
	return &domain.Appointment{
		ID:          11,
		Date:        time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC),
		StartTime:   "10:30",
		Status:      domain.StatusConfirmed,
		CancelToken: "tok-123",
	}
}

func newTestUseCase(repo *fakeAppointmentRepo, notifier *fakeNotifier) *UseCase {
	uc := NewUseCase(repo, fakeScheduleRepo{}, notifier, nopLogger{})
	uc.timeProvider = stubTime{now: time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_CancelsAppointment(t *testing.T) {
	repo := &fakeAppointmentRepo{appt: futureAppointment()}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(repo, notifier)

	resp, err := uc.Execute(context.Background(), &Request{CancelToken: "tok-123"})
	require.NoError(t, err)

	assert.Equal(t, int64(11), resp.ID)
	assert.Equal(t, "cancelled", resp.Status)
	assert.Equal(t, []int64{11}, repo.cancelled)
	assert.Equal(t, 1, notifier.cancellations)
}

func TestExecute_UnknownToken(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{appt: futureAppointment()}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), &Request{CancelToken: "guessed"})
	assert.ErrorIs(t, err, ErrAppointmentNotFound)
}

func TestExecute_EmptyToken(t *testing.T) {
	uc := newTestUseCase(&fakeAppointmentRepo{}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestExecute_AlreadyCancelled(t *testing.T) {
	appt := futureAppointment()
	appt.Status = domain.StatusCancelled
	repo := &fakeAppointmentRepo{appt: appt}
	uc := newTestUseCase(repo, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), &Request{CancelToken: "tok-123"})
	assert.ErrorIs(t, err, ErrAlreadyCancelled)
	assert.Empty(t, repo.cancelled)
}

func TestExecute_AlreadyPast(t *testing.T) {
	appt := futureAppointment()
	appt.Date = time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC)
	repo := &fakeAppointmentRepo{appt: appt}
	uc := newTestUseCase(repo, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), &Request{CancelToken: "tok-123"})
	assert.ErrorIs(t, err, ErrAlreadyPast)
	assert.Empty(t, repo.cancelled)
}

func TestExecute_SameDayEarlierTimeIsPast(t *testing.T) {
	appt := futureAppointment()
	appt.Date = time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	appt.StartTime = "11:00" // now is 12:00
	uc := newTestUseCase(&fakeAppointmentRepo{appt: appt}, &fakeNotifier{})

	_, err := uc.Execute(context.Background(), &Request{CancelToken: "tok-123"})
	assert.ErrorIs(t, err, ErrAlreadyPast)
}
