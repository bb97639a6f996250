package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the prometheus collectors exposed by the service.
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	dbQueryDuration *prometheus.HistogramVec
	dbConnsOpen     *prometheus.GaugeVec
	dbConnsIdle     *prometheus.GaugeVec
	dbConnsInUse    *prometheus.GaugeVec

	remindersSent         *prometheus.CounterVec
	reminderSweepFailures prometheus.Counter
	meetinglessBookings   prometheus.Counter
}

// New registers and returns the service's collectors on the default registry.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests.",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency.",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		dbQueryDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency.",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5},
		}, []string{"operation"}),

		dbConnsOpen: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_open",
			Help:        "Open database connections.",
			ConstLabels: constLabels,
		}, []string{"db"}),

		dbConnsIdle: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_idle",
			Help:        "Idle database connections.",
			ConstLabels: constLabels,
		}, []string{"db"}),

		dbConnsInUse: promauto.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections_in_use",
			Help:        "In-use database connections.",
			ConstLabels: constLabels,
		}, []string{"db"}),

		remindersSent: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "reminders_sent_total",
			Help:        "Reminder emails dispatched, by window.",
			ConstLabels: constLabels,
		}, []string{"window"}),

		reminderSweepFailures: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "reminder_sweep_failures_total",
			Help:        "Reminder sweep invocations that returned an error.",
			ConstLabels: constLabels,
		}),

		meetinglessBookings: promauto.NewCounter(prometheus.CounterOpts{
			Name:        "bookings_without_meeting_total",
			Help:        "Bookings confirmed without a meeting link because the provider is unconfigured.",
			ConstLabels: constLabels,
		}),
	}
}

// ObserveHTTPRequest records one served HTTP request.
func (m *Metrics) ObserveHTTPRequest(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveDBQuery records one database query execution.
func (m *Metrics) ObserveDBQuery(operation string, duration time.Duration) {
	m.dbQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetDBPoolStats records connection pool gauges.
func (m *Metrics) SetDBPoolStats(db string, open, idle, inUse int) {
	m.dbConnsOpen.WithLabelValues(db).Set(float64(open))
	m.dbConnsIdle.WithLabelValues(db).Set(float64(idle))
	m.dbConnsInUse.WithLabelValues(db).Set(float64(inUse))
}

// IncReminderSent records a dispatched reminder for the given window ("24h" or "1h").
func (m *Metrics) IncReminderSent(window string) {
	m.remindersSent.WithLabelValues(window).Inc()
}

// IncReminderSweepFailure records a failed sweep invocation.
func (m *Metrics) IncReminderSweepFailure() {
	m.reminderSweepFailures.Inc()
}

// IncMeetinglessBooking records a booking that confirmed without a meeting
// link because the meeting provider is not configured.
func (m *Metrics) IncMeetinglessBooking() {
	m.meetinglessBookings.Inc()
}
