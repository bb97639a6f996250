package send_reminders

import "errors"

// ErrInternal is returned when the sweep could not even list candidates.
// Per-appointment send failures are not errors of the sweep; they are
// retried on the next run.
var ErrInternal = errors.New("send_reminders: internal error")
