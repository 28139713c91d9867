package calendar

import (
	"errors"
	"fmt"
	"time"
)

// Era boundaries. Year 532 opens the first Dionysian paschal cycle,
// the earliest year the Julian table covers; the Gregorian reform of
// Pope Gregory XIII takes effect in 1583.
const (
	julianFirstYear    = 532
	julianLastYear     = 1582
	gregorianFirstYear = 1583
)

// MinYear is the earliest year for which liturgical dates are defined.
const MinYear = julianFirstYear

// ErrYearOutOfRange reports a year outside the domain of the component
// asked to handle it: a calendar requested for a year before 532, a
// Julian table lookup outside 532–1582, or the Gregorian computus
// invoked before 1583. The error is surfaced immediately, never
// clamped or defaulted.
var ErrYearOutOfRange = errors.New("year out of range")

// ErrIncompleteTable reports that the Julian Easter table fails to
// cover its declared domain. Partial data would silently yield wrong
// historical dates, so the condition is fatal rather than a per-year
// miss.
var ErrIncompleteTable = errors.New("julian easter table incomplete")

// Easter resolves Easter Sunday for a civil year, consulting the
// recorded Julian table through 1582 and the Gregorian computus from
// 1583 onward. The era switch lives here and nowhere else; everything
// downstream works with the resolved civil date.
func Easter(year int) (time.Time, error) {
	switch {
	case year < julianFirstYear:
		return time.Time{}, fmt.Errorf("%w: liturgical years begin at %d, got %d",
			ErrYearOutOfRange, julianFirstYear, year)
	case year <= julianLastYear:
		return JulianEaster(year)
	default:
		return GregorianEaster(year)
	}
}
