// Package calendar computes Christian liturgical dates for civil years
// from 532 onward, covering both the Julian era (through 1582) and the
// Gregorian era (1583 onward). It exists for historians and liturgists
// who need the civil date behind a feast name in a dated document.
package calendar

import (
	"fmt"
	"time"
)

// GregorianEaster computes Easter Sunday for a year in the Gregorian
// era using the anonymous computus (the Gauss/Oudin family of
// algorithms): golden number, century corrections, paschal full moon
// offset, then the following Sunday, expressed as a month and day.
//
// Every step is integer division and modulo. The intermediate terms
// carry remainders that a floating-point rendition would round away,
// shifting the result by days or weeks, so no step may be rewritten
// with floats.
//
// The algorithm is defined for years from 1583 onward; earlier years
// belong to the Julian table and return ErrYearOutOfRange.
func GregorianEaster(year int) (time.Time, error) {
	if year < gregorianFirstYear {
		return time.Time{}, fmt.Errorf("%w: Gregorian computus is defined from %d onward, got %d",
			ErrYearOutOfRange, gregorianFirstYear, year)
	}

	a := year % 19
	b := year / 100
	c := year % 100
	d := b / 4
	e := b % 4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i := c / 4
	k := c % 4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	month := (h + l - 7*m + 114) / 31
	day := ((h + l - 7*m + 114) % 31) + 1

	return Date(year, time.Month(month), day), nil
}
