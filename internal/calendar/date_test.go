package calendar

import (
	"testing"
	"time"
)

func TestParseDateString(t *testing.T) {
	date, err := ParseDateString("2024-03-31")
	if err != nil {
		t.Fatalf("ParseDateString error: %v", err)
	}
	if !date.Equal(Date(2024, time.March, 31)) {
		t.Errorf("ParseDateString = %s, want 2024-03-31", FormatDate(date))
	}

	if _, err := ParseDateString("31/03/2024"); err == nil {
		t.Error("ParseDateString accepted non-ISO input")
	}
}

func TestSundayHelpers(t *testing.T) {
	tests := []struct {
		name       string
		date       time.Time
		wantBefore time.Time
		wantAfter  time.Time
	}{
		{
			"tuesday",
			Date(2024, time.December, 24),
			Date(2024, time.December, 22),
			Date(2024, time.December, 29),
		},
		{
			"sunday is its own answer",
			Date(2024, time.December, 22),
			Date(2024, time.December, 22),
			Date(2024, time.December, 22),
		},
		{
			"crosses month boundary",
			Date(2024, time.March, 2),
			Date(2024, time.February, 25),
			Date(2024, time.March, 3),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := sundayOnOrBefore(tt.date); !got.Equal(tt.wantBefore) {
				t.Errorf("sundayOnOrBefore(%s) = %s, want %s", FormatDate(tt.date), FormatDate(got), FormatDate(tt.wantBefore))
			}
			if got := sundayOnOrAfter(tt.date); !got.Equal(tt.wantAfter) {
				t.Errorf("sundayOnOrAfter(%s) = %s, want %s", FormatDate(tt.date), FormatDate(got), FormatDate(tt.wantAfter))
			}
		})
	}
}
