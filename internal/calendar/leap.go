package calendar

// System identifies which calendar system governs a civil year.
type System int

const (
	// Julian is the calendar in force through 1582.
	Julian System = iota
	// Gregorian is the reformed calendar in force from 1583 onward.
	Gregorian
)

func (s System) String() string {
	if s == Julian {
		return "Julian"
	}
	return "Gregorian"
}

// SystemForYear returns the calendar system in force for a civil year.
// Feast computation always uses this year-implied system; an explicit
// System is accepted only by IsLeapYear, for historical comparison.
func SystemForYear(year int) System {
	if year <= julianLastYear {
		return Julian
	}
	return Gregorian
}

// IsLeapYear reports whether year is a leap year under the given
// calendar system. The Julian rule is divisibility by 4 with no
// exceptions; the Gregorian rule excludes centuries unless they are
// divisible by 400. The two diverge on years like 1900, which is a
// Julian leap year but not a Gregorian one.
func IsLeapYear(year int, system System) bool {
	if system == Julian {
		return year%4 == 0
	}
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}
