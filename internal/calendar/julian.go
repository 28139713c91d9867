package calendar

import (
	"fmt"
	"sync"
	"time"
)

// JulianEaster returns the recorded Easter Sunday for a year in the
// Julian era, 532 through 1582. The dates come from the table in
// julian_table.go, never from a formula: ecclesiastical paschal tables
// diverge from naive Julian-computus arithmetic, and historical
// correctness requires the recorded values.
func JulianEaster(year int) (time.Time, error) {
	if year < julianFirstYear || year > julianLastYear {
		return time.Time{}, fmt.Errorf("%w: Julian Easter table covers %d through %d, got %d",
			ErrYearOutOfRange, julianFirstYear, julianLastYear, year)
	}
	if err := julianTableReady(); err != nil {
		return time.Time{}, err
	}
	return parseJulianEntry(year, julianEasterDates[year])
}

var (
	julianTableOnce sync.Once
	julianTableErr  error
)

// julianTableReady verifies, once on first use, that the table holds a
// parseable entry for every year of its declared domain. A gap would
// produce wrong historical dates without any visible failure, so an
// incomplete table refuses all lookups instead.
func julianTableReady() error {
	julianTableOnce.Do(func() {
		for year := julianFirstYear; year <= julianLastYear; year++ {
			entry, ok := julianEasterDates[year]
			if !ok {
				julianTableErr = fmt.Errorf("%w: no entry for year %d", ErrIncompleteTable, year)
				return
			}
			if _, err := parseJulianEntry(year, entry); err != nil {
				julianTableErr = err
				return
			}
		}
	})
	return julianTableErr
}

// parseJulianEntry decodes a table value in "MM-DD" form.
func parseJulianEntry(year int, entry string) (time.Time, error) {
	var month, day int
	if _, err := fmt.Sscanf(entry, "%d-%d", &month, &day); err != nil {
		return time.Time{}, fmt.Errorf("%w: malformed entry %q for year %d", ErrIncompleteTable, entry, year)
	}
	if month < 3 || month > 4 || day < 1 || day > 31 {
		return time.Time{}, fmt.Errorf("%w: implausible entry %q for year %d", ErrIncompleteTable, entry, year)
	}
	return Date(year, time.Month(month), day), nil
}
