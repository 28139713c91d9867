// calgen prints the liturgical dates of one or more civil years, for
// historians working offline from the API.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/feriae/liturgical-calendar/internal/calendar"
)

func main() {
	year := flag.Int("year", 2025, "Civil year to print")
	through := flag.Int("through", 0, "Optional last year of a range starting at -year")
	asJSON := flag.Bool("json", false, "Emit JSON instead of text")
	policy := flag.String("baptism-policy", "following-sunday",
		"Baptism of the Lord when Epiphany is a Sunday: following-sunday or epiphany")
	flag.Parse()

	baptism := calendar.BaptismFollowingSunday
	switch *policy {
	case "following-sunday":
	case "epiphany":
		baptism = calendar.BaptismOnEpiphany
	default:
		fmt.Fprintf(os.Stderr, "unknown baptism policy %q\n", *policy)
		os.Exit(2)
	}

	last := *year
	if *through > last {
		last = *through
	}

	for y := *year; y <= last; y++ {
		cal, err := calendar.New(y, calendar.WithBaptismPolicy(baptism))
		if err != nil {
			fmt.Fprintf(os.Stderr, "year %d: %v\n", y, err)
			os.Exit(1)
		}
		if *asJSON {
			printJSON(cal)
		} else {
			printText(cal)
		}
	}
}

func printText(cal *calendar.Calendar) {
	fmt.Printf("=== Liturgical Calendar %d (%s", cal.Year, cal.System)
	if cal.IsLeapYear() {
		fmt.Print(", leap year")
	}
	fmt.Println(") ===")

	for _, feast := range cal.AllDates() {
		fmt.Printf("  %-24s %s (%s)\n", feast.Name, calendar.FormatDate(feast.Date), feast.Date.Weekday())
	}

	lentStart, lentEnd := cal.LentRange()
	fmt.Printf("  %-24s %s .. %s\n", "Lent", calendar.FormatDate(lentStart), calendar.FormatDate(lentEnd))
	fmt.Println()
}

func printJSON(cal *calendar.Calendar) {
	type feastOut struct {
		Name string `json:"name"`
		Date string `json:"date"`
	}

	feasts := cal.AllDates()
	out := struct {
		Year     int        `json:"year"`
		Calendar string     `json:"calendar"`
		LeapYear bool       `json:"leap_year"`
		Feasts   []feastOut `json:"feasts"`
	}{
		Year:     cal.Year,
		Calendar: cal.System.String(),
		LeapYear: cal.IsLeapYear(),
		Feasts:   make([]feastOut, len(feasts)),
	}
	for i, feast := range feasts {
		out.Feasts[i] = feastOut{Name: feast.Name, Date: calendar.FormatDate(feast.Date)}
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		fmt.Fprintf(os.Stderr, "encode: %v\n", err)
		os.Exit(1)
	}
}
