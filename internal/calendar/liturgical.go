package calendar

import "time"

// BaptismPolicy selects how the Baptism of the Lord is placed when
// Epiphany itself falls on a Sunday. Liturgical usage differs: some
// traditions keep the Baptism on the following Sunday regardless,
// others observe it on Epiphany's own Sunday. The two policies agree
// for every year in which Epiphany is a weekday.
type BaptismPolicy int

const (
	// BaptismFollowingSunday places the Baptism on the Sunday after an
	// Epiphany that falls on a Sunday.
	BaptismFollowingSunday BaptismPolicy = iota
	// BaptismOnEpiphany places the Baptism on Epiphany itself when
	// Epiphany falls on a Sunday.
	BaptismOnEpiphany
)

// Option configures a Calendar at construction.
type Option func(*Calendar)

// WithBaptismPolicy overrides the default BaptismFollowingSunday
// policy for the Epiphany-on-Sunday case.
func WithBaptismPolicy(policy BaptismPolicy) Option {
	return func(c *Calendar) { c.baptismPolicy = policy }
}

// Calendar holds the liturgical dates of a single civil year. Easter
// is resolved once at construction and reused by every accessor, so a
// Calendar is immutable and safe for concurrent reads.
type Calendar struct {
	Year   int
	System System

	easter        time.Time
	baptismPolicy BaptismPolicy
}

// New builds the liturgical calendar for a civil year. Years before
// 532 predate the paschal tables and fail with ErrYearOutOfRange.
func New(year int, opts ...Option) (*Calendar, error) {
	easter, err := Easter(year)
	if err != nil {
		return nil, err
	}
	cal := &Calendar{
		Year:   year,
		System: SystemForYear(year),
		easter: easter,
	}
	for _, opt := range opts {
		opt(cal)
	}
	return cal, nil
}

// IsLeapYear reports whether the calendar's year is a leap year under
// its own era's rule.
func (c *Calendar) IsLeapYear() bool {
	return IsLeapYear(c.Year, c.System)
}

// EasterSunday returns the resolved Easter Sunday, the anchor of every
// moveable feast.
func (c *Calendar) EasterSunday() time.Time {
	return c.easter
}

// AshWednesday opens Lent, 46 days before Easter.
func (c *Calendar) AshWednesday() time.Time {
	return offsetFromEaster(c.easter, ashWednesdayOffset)
}

// PalmSunday opens Holy Week, one week before Easter.
func (c *Calendar) PalmSunday() time.Time {
	return offsetFromEaster(c.easter, palmSundayOffset)
}

func (c *Calendar) HolyThursday() time.Time {
	return offsetFromEaster(c.easter, holyThursdayOffset)
}

func (c *Calendar) GoodFriday() time.Time {
	return offsetFromEaster(c.easter, goodFridayOffset)
}

func (c *Calendar) HolySaturday() time.Time {
	return offsetFromEaster(c.easter, holySaturdayOffset)
}

// Ascension is the fortieth day of Eastertide counted inclusively,
// 39 days after Easter, always a Thursday.
func (c *Calendar) Ascension() time.Time {
	return offsetFromEaster(c.easter, ascensionOffset)
}

// Pentecost closes Eastertide, 49 days after Easter.
func (c *Calendar) Pentecost() time.Time {
	return offsetFromEaster(c.easter, pentecostOffset)
}

// TrinitySunday is the Sunday after Pentecost.
func (c *Calendar) TrinitySunday() time.Time {
	return offsetFromEaster(c.easter, trinitySundayOffset)
}

// CorpusChristi is the Thursday after Trinity Sunday.
func (c *Calendar) CorpusChristi() time.Time {
	return offsetFromEaster(c.easter, corpusChristiOffset)
}

// LentRange returns the closed interval of Lent, from Ash Wednesday
// through Holy Saturday.
func (c *Calendar) LentRange() (start, end time.Time) {
	return c.AshWednesday(), c.HolySaturday()
}

// Epiphany is the fixed feast of January 6.
func (c *Calendar) Epiphany() time.Time {
	return Date(c.Year, time.January, 6)
}

// BaptismOfTheLord returns the Sunday following Epiphany. When
// Epiphany itself falls on a Sunday, the calendar's BaptismPolicy
// decides between that Sunday and the next.
func (c *Calendar) BaptismOfTheLord() time.Time {
	epiphany := c.Epiphany()
	if epiphany.Weekday() == time.Sunday && c.baptismPolicy == BaptismOnEpiphany {
		return epiphany
	}
	return sundayOnOrAfter(epiphany.AddDate(0, 0, 1))
}

// FirstAdventSunday returns the first of the four Advent Sundays. The
// fourth is the Sunday on or before December 24; the first is three
// weeks earlier.
func (c *Calendar) FirstAdventSunday() time.Time {
	fourth := sundayOnOrBefore(Date(c.Year, time.December, 24))
	return fourth.AddDate(0, 0, -21)
}

// AdventSundays returns the four Advent Sundays in order, a week
// apart.
func (c *Calendar) AdventSundays() [4]time.Time {
	first := c.FirstAdventSunday()
	var sundays [4]time.Time
	for i := range sundays {
		sundays[i] = first.AddDate(0, 0, i*7)
	}
	return sundays
}

// ChristTheKing closes the liturgical year, the Sunday before the
// first Sunday of Advent.
func (c *Calendar) ChristTheKing() time.Time {
	return c.FirstAdventSunday().AddDate(0, 0, -7)
}

// Christmas is the fixed feast of December 25.
func (c *Calendar) Christmas() time.Time {
	return Date(c.Year, time.December, 25)
}

// AllDates returns every feast the calendar defines with its resolved
// date, in liturgical-year order: the Epiphany cycle, Lent and Holy
// Week, Eastertide, Advent, Christ the King, Christmas. The order and
// the names are stable across calls.
func (c *Calendar) AllDates() []Feast {
	feasts := make([]Feast, 0, len(easterOffsets)+8)
	feasts = append(feasts,
		Feast{FeastEpiphany, c.Epiphany()},
		Feast{FeastBaptism, c.BaptismOfTheLord()},
	)
	for _, offset := range easterOffsets {
		feasts = append(feasts, Feast{offset.Name, offsetFromEaster(c.easter, offset.Days)})
	}
	for i, sunday := range c.AdventSundays() {
		feasts = append(feasts, Feast{adventSundayNames[i], sunday})
	}
	feasts = append(feasts,
		Feast{FeastChristTheKing, c.ChristTheKing()},
		Feast{FeastChristmas, c.Christmas()},
	)
	return feasts
}
