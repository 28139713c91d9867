package database

import "time"

// ArchivedCalendar is a computed liturgical year as stored in the
// archive.
type ArchivedCalendar struct {
	Year       int
	System     string
	IsLeapYear bool
	ComputedAt time.Time
	Feasts     []ArchivedFeast
}

// ArchivedFeast is one feast row of an archived year. Position is the
// feast's place in the liturgical-year ordering.
type ArchivedFeast struct {
	Position int
	Name     string
	Date     time.Time
}
