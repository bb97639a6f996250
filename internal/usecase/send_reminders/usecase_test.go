package send_reminders

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clearpath-advisory/booking-service/internal/domain"
	"github.com/clearpath-advisory/booking-service/pkg/types"
)

type fakeAppointmentRepo struct {
	pending []*domain.Appointment
	listErr error
	marked  map[int64][]string
	markErr error
}

func (f *fakeAppointmentRepo) ListPendingReminders(_ context.Context) ([]*domain.Appointment, error) {
	return f.pending, f.listErr
}

func (f *fakeAppointmentRepo) MarkReminderSent(_ context.Context, id int64, window string) error {
	if f.markErr != nil {
		return f.markErr
	}
	if f.marked == nil {
		f.marked = make(map[int64][]string)
	}
	f.marked[id] = append(f.marked[id], window)
	return nil
}

type fakeScheduleRepo struct{}

func (fakeScheduleRepo) GetSettings(_ context.Context) (*domain.AdminSettings, error) {
	return &domain.AdminSettings{Timezone: "UTC"}, nil
}

type fakeNotifier struct {
	sent24h []int64
	sent1h  []int64
	err     error
}

func (f *fakeNotifier) SendReminder24h(appt *domain.Appointment) error {
	if f.err != nil {
		return f.err
	}
	f.sent24h = append(f.sent24h, appt.ID)
	return nil
}

func (f *fakeNotifier) SendReminder1h(appt *domain.Appointment) error {
	if f.err != nil {
		return f.err
	}
	f.sent1h = append(f.sent1h, appt.ID)
	return nil
}

type fakeMetrics struct {
	sent     map[string]int
	failures int
}

func (f *fakeMetrics) IncReminderSent(window string) {
	if f.sent == nil {
		f.sent = make(map[string]int)
	}
	f.sent[window]++
}

func (f *fakeMetrics) IncReminderSweepFailure() {
	f.failures++
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

var sweepNow = time.Date(2026, 9, 14, 10, 0, 0, 0, time.UTC)

// appointmentIn returns a confirmed appointment starting the given
// duration after sweepNow.
func appointmentIn(id int64, until time.Duration) *domain.Appointment {
	start := sweepNow.Add(until)
	return &domain.Appointment{
		ID:        id,
		Date:      time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC),
		StartTime: types.NewTimeString(start),
		Status:    domain.StatusConfirmed,
	}
}

func newTestUseCase(repo *fakeAppointmentRepo, notifier *fakeNotifier, m *fakeMetrics) *UseCase {
	uc := NewUseCase(repo, fakeScheduleRepo{}, notifier, m, nopLogger{})
	uc.timeProvider = stubTime{now: sweepNow}
	return uc
}

func TestExecute_Sends24hReminderInsideWindow(t *testing.T) {
	repo := &fakeAppointmentRepo{pending: []*domain.Appointment{appointmentIn(1, 24*time.Hour)}}
	notifier := &fakeNotifier{}
	m := &fakeMetrics{}
	uc := newTestUseCase(repo, notifier, m)

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Sent24h)
	assert.Equal(t, 0, result.Sent1h)
	assert.Equal(t, []int64{1}, notifier.sent24h)
	assert.Equal(t, []string{Window24h}, repo.marked[1])
	assert.Equal(t, 1, m.sent[Window24h])
}

func TestExecute_Sends1hReminderInsideWindow(t *testing.T) {
	repo := &fakeAppointmentRepo{pending: []*domain.Appointment{appointmentIn(2, time.Hour)}}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(repo, notifier, &fakeMetrics{})

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Sent1h)
	assert.Equal(t, []int64{2}, notifier.sent1h)
	assert.Equal(t, []string{Window1h}, repo.marked[2])
}

func TestExecute_WindowBoundaries(t *testing.T) {
	tests := []struct {
		name    string
		until   time.Duration
		want24h int
		want1h  int
	}{
		{"just inside 24h early edge", 23 * time.Hour, 1, 0},
		{"just inside 24h late edge", 25 * time.Hour, 1, 0},
		{"outside 24h late edge", 25*time.Hour + time.Minute, 0, 0},
		{"just inside 1h early edge", 45 * time.Minute, 0, 1},
		{"just inside 1h late edge", 75 * time.Minute, 0, 1},
		{"between windows", 2 * time.Hour, 0, 0},
		{"too soon", 30 * time.Minute, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeAppointmentRepo{pending: []*domain.Appointment{appointmentIn(1, tt.until)}}
			uc := newTestUseCase(repo, &fakeNotifier{}, &fakeMetrics{})

			result, err := uc.Execute(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want24h, result.Sent24h)
			assert.Equal(t, tt.want1h, result.Sent1h)
		})
	}
}

func TestExecute_SkipsAlreadySentWindows(t *testing.T) {
	appt := appointmentIn(3, 24*time.Hour)
	appt.Reminder24hSent = true
	repo := &fakeAppointmentRepo{pending: []*domain.Appointment{appt}}
	notifier := &fakeNotifier{}
	uc := newTestUseCase(repo, notifier, &fakeMetrics{})

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, result.Sent24h)
	assert.Empty(t, notifier.sent24h)
}

func TestExecute_SendFailureLeavesFlagUnset(t *testing.T) {
	repo := &fakeAppointmentRepo{pending: []*domain.Appointment{appointmentIn(4, 24*time.Hour)}}
	notifier := &fakeNotifier{err: errors.New("smtp down")}
	uc := newTestUseCase(repo, notifier, &fakeMetrics{})

	result, err := uc.Execute(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 0, result.Sent24h)
	assert.Equal(t, 1, result.Failures)
	// The flag stays false so the next sweep retries.
	assert.Empty(t, repo.marked)
}

func TestExecute_ListFailure(t *testing.T) {
	repo := &fakeAppointmentRepo{listErr: errors.New("db down")}
	m := &fakeMetrics{}
	uc := newTestUseCase(repo, &fakeNotifier{}, m)

	_, err := uc.Execute(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
	assert.Equal(t, 1, m.failures)
}
