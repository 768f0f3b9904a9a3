package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// timeFormat is the canonical wire and storage format for a time of day.
const timeFormat = "15:04"

// TimeString represents a local time of day in "HH:MM" format.
// It is deliberately date-free: all date and timezone handling happens
// before a value is converted into a TimeString.
type TimeString string

// NewTimeString creates a TimeString from the time-of-day part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeFormat))
}

// NewTimeStringFromString parses s as "HH:MM" and returns a TimeString.
func NewTimeStringFromString(s string) (TimeString, error) {
	if _, err := time.Parse(timeFormat, s); err != nil {
		return "", fmt.Errorf("types: invalid time %q: expected HH:MM", s)
	}
	return TimeString(s), nil
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// MinutesOfDay returns the number of minutes since midnight.
func (t TimeString) MinutesOfDay() (int, error) {
	parsed, err := time.Parse(timeFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("types: invalid time %q: expected HH:MM", string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// IsBefore reports whether t is strictly earlier in the day than other.
func (t TimeString) IsBefore(other TimeString) bool {
	a, errA := t.MinutesOfDay()
	b, errB := other.MinutesOfDay()
	if errA != nil || errB != nil {
		return false
	}
	return a < b
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	a, errA := t.MinutesOfDay()
	b, errB := other.MinutesOfDay()
	if errA != nil || errB != nil {
		return false
	}
	return a > b
}

// AddMinutes returns the TimeString m minutes after t.
// The result is clamped within the same day: adding past 23:59 fails.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.MinutesOfDay()
	if err != nil {
		return "", err
	}
	total += m
	if total < 0 || total >= 24*60 {
		return "", fmt.Errorf("types: time %s%+d minutes is outside the day", string(t), m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// OnDate combines t with the given calendar date in loc.
func (t TimeString) OnDate(date time.Time, loc *time.Location) (time.Time, error) {
	parsed, err := time.Parse(timeFormat, string(t))
	if err != nil {
		return time.Time{}, fmt.Errorf("types: invalid time %q: expected HH:MM", string(t))
	}
	return time.Date(date.Year(), date.Month(), date.Day(), parsed.Hour(), parsed.Minute(), 0, 0, loc), nil
}

// Scan implements sql.Scanner. Postgres TIME columns arrive as
// "HH:MM:SS"; the seconds part is dropped.
func (t *TimeString) Scan(value interface{}) error {
	if value == nil {
		*t = ""
		return nil
	}

	var s string
	switch v := value.(type) {
	case string:
		s = v
	case []byte:
		s = string(v)
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", value)
	}

	if len(s) > 5 {
		s = s[:5]
	}

	parsed, err := NewTimeStringFromString(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if t == "" {
		return nil, nil
	}
	if _, err := t.MinutesOfDay(); err != nil {
		return nil, err
	}
	return string(t), nil
}
