package calendar

import (
	"fmt"
	"time"
)

// Date returns the civil date (year, month, day) as a time.Time at
// midnight UTC. Every date this package produces has this form, so
// values compare and order directly.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// FormatDate formats a civil date as YYYY-MM-DD.
func FormatDate(date time.Time) string {
	return date.Format("2006-01-02")
}

// ParseDateString parses a YYYY-MM-DD date string into a civil date.
func ParseDateString(s string) (time.Time, error) {
	date, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return date, nil
}

// sundayOnOrBefore walks backward from date to the nearest Sunday,
// returning date itself when it already is one. Weekdays come from the
// proleptic civil calendar, so the arithmetic is the same for Julian-
// and Gregorian-era years.
func sundayOnOrBefore(date time.Time) time.Time {
	return date.AddDate(0, 0, -int(date.Weekday()))
}

// sundayOnOrAfter walks forward from date to the nearest Sunday,
// returning date itself when it already is one.
func sundayOnOrAfter(date time.Time) time.Time {
	return date.AddDate(0, 0, (7-int(date.Weekday()))%7)
}
