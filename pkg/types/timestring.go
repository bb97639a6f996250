package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeString represents a time of day as an "HH:MM" string.
// All slot arithmetic converts to minutes since midnight, which keeps the
// availability math free of Date/timezone pitfalls.
type TimeString string

const (
	// MinutesPerDay is the exclusive upper bound for a time-of-day start.
	MinutesPerDay = 24 * 60

	layout = "15:04"
)

var (
	// ErrInvalidFormat is returned for values that are not "HH:MM".
	ErrInvalidFormat = errors.New("types: invalid time string format, expected HH:MM")

	// ErrOutOfRange is returned when arithmetic leaves the [00:00, 24:00] range.
	ErrOutOfRange = errors.New("types: time out of day range")
)

// NewTimeString builds a TimeString from the wall-clock part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(layout))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// FromMinutes converts minutes since midnight into a TimeString.
// 1440 maps to "24:00" so a closing boundary at midnight stays representable.
func FromMinutes(m int) (TimeString, error) {
	if m < 0 || m > MinutesPerDay {
		return "", fmt.Errorf("%w: %d minutes", ErrOutOfRange, m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate checks the "HH:MM" format. "24:00" is accepted as an end boundary.
func (t TimeString) Validate() error {
	_, err := t.minutes()
	return err
}

// Minutes returns minutes since midnight, or -1 for an invalid value.
func (t TimeString) Minutes() int {
	m, err := t.minutes()
	if err != nil {
		return -1
	}
	return m
}

// AddMinutes returns the time shifted by m minutes.
// The result may not leave the [00:00, 24:00] range.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	cur, err := t.minutes()
	if err != nil {
		return "", err
	}
	return FromMinutes(cur + m)
}

// IsBefore reports whether t is strictly earlier than other.
// Invalid values compare as not-before.
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.minutes()
	b, errB := other.minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.minutes()
	b, errB := other.minutes()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

func (t TimeString) minutes() (int, error) {
	s := string(t)
	if s == "24:00" {
		return MinutesPerDay, nil
	}
	if len(s) != 5 || s[2] != ':' {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	parsed, err := time.Parse(layout, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// Scan implements sql.Scanner. Postgres TIME columns arrive as
// "HH:MM:SS" strings or time.Time values depending on the driver path.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case []byte:
		return t.scanString(string(v))
	case string:
		return t.scanString(v)
	default:
		return fmt.Errorf("%w: unsupported scan type %T", ErrInvalidFormat, src)
	}
}

func (t *TimeString) scanString(s string) error {
	if len(s) >= 5 {
		s = s[:5]
	}
	ts, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = ts
	return nil
}

// Value implements driver.Valuer, emitting a Postgres-compatible time literal.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t) + ":00", nil
}
