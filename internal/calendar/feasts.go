package calendar

import "time"

// Feast names as they appear in documents and in the bulk view.
const (
	FeastEpiphany      = "Epiphany"
	FeastBaptism       = "Baptism of the Lord"
	FeastAshWednesday  = "Ash Wednesday"
	FeastPalmSunday    = "Palm Sunday"
	FeastHolyThursday  = "Holy Thursday"
	FeastGoodFriday    = "Good Friday"
	FeastHolySaturday  = "Holy Saturday"
	FeastEasterSunday  = "Easter Sunday"
	FeastAscension     = "Ascension"
	FeastPentecost     = "Pentecost"
	FeastTrinitySunday = "Trinity Sunday"
	FeastCorpusChristi = "Corpus Christi"
	FeastChristTheKing = "Christ the King"
	FeastChristmas     = "Christmas"
)

// Day offsets of the moveable feasts relative to Easter Sunday.
// Ash Wednesday is 46 days back (40 days of Lent plus the six Sundays
// not counted in it); Ascension is the 40th day of Eastertide counted
// inclusively, hence 39; Pentecost likewise the 50th day, hence 49.
const (
	ashWednesdayOffset  = -46
	palmSundayOffset    = -7
	holyThursdayOffset  = -3
	goodFridayOffset    = -2
	holySaturdayOffset  = -1
	ascensionOffset     = 39
	pentecostOffset     = 49
	trinitySundayOffset = 56
	corpusChristiOffset = 60
)

// Feast pairs a feast name with its resolved civil date.
type Feast struct {
	Name string
	Date time.Time
}

// easterOffsets lists every feast derived as a fixed day delta from
// Easter Sunday, in liturgical order. Fixed configuration data; never
// mutated at runtime.
var easterOffsets = []struct {
	Name string
	Days int
}{
	{FeastAshWednesday, ashWednesdayOffset},
	{FeastPalmSunday, palmSundayOffset},
	{FeastHolyThursday, holyThursdayOffset},
	{FeastGoodFriday, goodFridayOffset},
	{FeastHolySaturday, holySaturdayOffset},
	{FeastEasterSunday, 0},
	{FeastAscension, ascensionOffset},
	{FeastPentecost, pentecostOffset},
	{FeastTrinitySunday, trinitySundayOffset},
	{FeastCorpusChristi, corpusChristiOffset},
}

// adventSundayNames name the four Advent Sundays in order.
var adventSundayNames = [4]string{
	"First Sunday of Advent",
	"Second Sunday of Advent",
	"Third Sunday of Advent",
	"Fourth Sunday of Advent",
}

// offsetFromEaster shifts the resolved Easter date by a feast's fixed
// day delta. AddDate carries across month boundaries, so an early
// Easter pushes Ash Wednesday back into February correctly.
func offsetFromEaster(easter time.Time, days int) time.Time {
	return easter.AddDate(0, 0, days)
}
