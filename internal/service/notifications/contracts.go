package notifications

// Sender delivers a single plain-text email.
type Sender interface {
	Send(to string, subject string, body string) error
}

// Logger is the logging interface required by the service.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
