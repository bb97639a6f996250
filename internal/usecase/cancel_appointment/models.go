package cancel_appointment

import (
	"time"

	"github.com/clearpath-advisory/booking-service/pkg/types"
)

// Request carries the secret cancel token.
type Request struct {
	CancelToken string
}

// Response echoes the cancelled appointment.
type Response struct {
	ID        int64
	Date      time.Time
	StartTime types.TimeString
	Status    string
}
