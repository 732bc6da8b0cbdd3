package utils

import (
	"encoding/json"
	"time"
)

const ISODate = "2006-01-02" // Date format used for (un)marshaling Date

// Date is a calendar day with no time-of-day component, serialized as
// "YYYY-MM-DD" (e.g., "2026-03-01"). Values are normalized to midnight UTC so
// day arithmetic is exact.
type Date time.Time

// NewDate returns the Date for the given calendar day.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf truncates t to its calendar day in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate parses a "YYYY-MM-DD" string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(ISODate, s)
	if err != nil {
		return Date{}, err
	}
	return Date(t), nil
}

// MarshalJSON serializes the Date to JSON in "YYYY-MM-DD" format.
func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

// UnmarshalJSON parses a "YYYY-MM-DD" formatted string into a Date.
func (d *Date) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	parsed, err := ParseDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Time returns the underlying time.Time value of the Date.
func (d Date) Time() time.Time {
	return time.Time(d)
}

func (d Date) String() string {
	return time.Time(d).Format(ISODate)
}

// AddDays returns the date n days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return Date(time.Time(d).AddDate(0, 0, n))
}

func (d Date) Before(other Date) bool {
	return time.Time(d).Before(time.Time(other))
}

func (d Date) After(other Date) bool {
	return time.Time(d).After(time.Time(other))
}

// DaysSince returns the whole number of days from other to d. It works on
// Unix seconds because time.Duration overflows past about 292 years.
func (d Date) DaysSince(other Date) int {
	return int((time.Time(d).Unix() - time.Time(other).Unix()) / secondsPerDay)
}

const secondsPerDay = 24 * 60 * 60
