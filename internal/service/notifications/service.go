package notifications

import (
	"fmt"
	"strings"

	"github.com/clearpath-advisory/booking-service/internal/domain"
)

// Service composes and sends guest-facing emails. Send failures are
// returned to the caller but are, by contract, independent of the primary
// transaction: a booking or cancellation that already committed stands even
// if its email failed.
type Service struct {
	sender  Sender
	baseURL string
	logger  Logger
}

// NewService creates a notifications service. baseURL is the public site
// root used for self-service cancel/reschedule links.
func NewService(sender Sender, baseURL string, logger Logger) *Service {
	return &Service{
		sender:  sender,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  logger,
	}
}

// SendBookingConfirmation emails the guest their join link and the
// self-service management link carrying the cancel token.
func (s *Service) SendBookingConfirmation(appt *domain.Appointment) error {
	subject := fmt.Sprintf("Your consultation on %s is confirmed", appt.Date.Format("Monday, January 2"))

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", appt.GuestName)
	fmt.Fprintf(&b, "Your consultation is confirmed for %s at %s (%d minutes).\n\n",
		appt.Date.Format("Monday, January 2, 2006"), appt.StartTime, appt.DurationMinutes)
	if appt.MeetingJoinURL != nil {
		fmt.Fprintf(&b, "Join the meeting: %s\n\n", *appt.MeetingJoinURL)
	}
	fmt.Fprintf(&b, "Need to cancel or reschedule? Use this link:\n%s\n\n", s.manageLink(appt.CancelToken))
	b.WriteString("We look forward to speaking with you.\n")

	return s.send(appt.GuestEmail, subject, b.String(), "booking confirmation")
}

// SendRescheduleConfirmation emails a single combined confirmation for a
// reschedule: the new details plus a note about the replaced time.
func (s *Service) SendRescheduleConfirmation(newAppt, oldAppt *domain.Appointment) error {
	subject := fmt.Sprintf("Your consultation has been moved to %s", newAppt.Date.Format("Monday, January 2"))

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", newAppt.GuestName)
	fmt.Fprintf(&b, "Your consultation originally scheduled for %s at %s has been rescheduled.\n\n",
		oldAppt.Date.Format("Monday, January 2, 2006"), oldAppt.StartTime)
	fmt.Fprintf(&b, "New time: %s at %s (%d minutes).\n\n",
		newAppt.Date.Format("Monday, January 2, 2006"), newAppt.StartTime, newAppt.DurationMinutes)
	if newAppt.MeetingJoinURL != nil {
		fmt.Fprintf(&b, "Join the meeting: %s\n\n", *newAppt.MeetingJoinURL)
	}
	fmt.Fprintf(&b, "Need to make another change? Use this link:\n%s\n", s.manageLink(newAppt.CancelToken))

	return s.send(newAppt.GuestEmail, subject, b.String(), "reschedule confirmation")
}

// SendCancellationConfirmation emails the guest that their appointment was
// cancelled.
func (s *Service) SendCancellationConfirmation(appt *domain.Appointment) error {
	subject := "Your consultation has been cancelled"

	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", appt.GuestName)
	fmt.Fprintf(&b, "Your consultation on %s at %s has been cancelled.\n\n",
		appt.Date.Format("Monday, January 2, 2006"), appt.StartTime)
	fmt.Fprintf(&b, "You can book a new time any time at %s/book.\n", s.baseURL)

	return s.send(appt.GuestEmail, subject, b.String(), "cancellation confirmation")
}

// SendReminder24h emails the day-before reminder.
func (s *Service) SendReminder24h(appt *domain.Appointment) error {
	subject := "Reminder: your consultation is tomorrow"
	return s.send(appt.GuestEmail, subject, s.reminderBody(appt, "tomorrow"), "24h reminder")
}

// SendReminder1h emails the last-call reminder.
func (s *Service) SendReminder1h(appt *domain.Appointment) error {
	subject := "Reminder: your consultation starts soon"
	return s.send(appt.GuestEmail, subject, s.reminderBody(appt, "in about an hour"), "1h reminder")
}

func (s *Service) reminderBody(appt *domain.Appointment, when string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Hi %s,\n\n", appt.GuestName)
	fmt.Fprintf(&b, "This is a reminder that your consultation is %s: %s at %s.\n\n",
		when, appt.Date.Format("Monday, January 2, 2006"), appt.StartTime)
	if appt.MeetingJoinURL != nil {
		fmt.Fprintf(&b, "Join the meeting: %s\n\n", *appt.MeetingJoinURL)
	}
	fmt.Fprintf(&b, "Need to cancel or reschedule? Use this link:\n%s\n", s.manageLink(appt.CancelToken))
	return b.String()
}

// manageLink points at the self-service page; the page submits the token
// via POST body so it never appears in request logs as a query parameter.
func (s *Service) manageLink(token string) string {
	return fmt.Sprintf("%s/appointments/manage/%s", s.baseURL, token)
}

func (s *Service) send(to, subject, body, kind string) error {
	if err := s.sender.Send(to, subject, body); err != nil {
		s.logger.Error("notifications: failed to send %s to %s: %v", kind, to, err)
		return fmt.Errorf("notifications: send %s: %w", kind, err)
	}
	s.logger.Info("notifications: sent %s to %s", kind, to)
	return nil
}
