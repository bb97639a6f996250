package send_reminders

// Reminder windows, measured from the sweep's run time to the
// appointment's start instant. Wide enough that a sweep running every few
// minutes cannot skip over them.
const (
	Window24h = "24h"
	Window1h  = "1h"
)

// Result summarizes one sweep.
type Result struct {
	Checked  int
	Sent24h  int
	Sent1h   int
	Failures int
}
