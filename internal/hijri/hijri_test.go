package hijri

import (
	"testing"
	"time"
)

func TestRamadanStartTable(t *testing.T) {
	var c TableConverter
	cases := []struct {
		year int
		want time.Time
	}{
		{2024, time.Date(2024, time.March, 11, 0, 0, 0, 0, time.UTC)},
		{2025, time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)},
		{2026, time.Date(2026, time.February, 18, 0, 0, 0, 0, time.UTC)},
		{2027, time.Date(2027, time.February, 7, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		if got := c.RamadanStart(tc.year); !got.Equal(tc.want) {
			t.Errorf("RamadanStart(%d) = %s, want %s",
				tc.year, got.Format("2006-01-02"), tc.want.Format("2006-01-02"))
		}
	}
}

func TestRamadanStartExtrapolated(t *testing.T) {
	var c TableConverter

	got := c.RamadanStart(2028)
	if got.Year() != 2028 {
		t.Errorf("RamadanStart(2028).Year() = %d, want 2028", got.Year())
	}
	// Three years past the reference, about 33 days earlier than
	// March 1: late January.
	if got.Month() != time.January {
		t.Errorf("RamadanStart(2028) = %s, want a January date", got.Format("2006-01-02"))
	}

	// Past years extrapolate in the other direction.
	past := c.RamadanStart(2023)
	if past.Year() != 2023 {
		t.Errorf("RamadanStart(2023).Year() = %d, want 2023", past.Year())
	}
	if past.Month() != time.March && past.Month() != time.April {
		t.Errorf("RamadanStart(2023) = %s, want spring", past.Format("2006-01-02"))
	}
}

func TestYear(t *testing.T) {
	var c TableConverter
	cases := []struct {
		year int
		want string
	}{
		{2024, "1445"},
		{2025, "1446"},
		{2026, "1447"},
		{2030, "1451"},
		{2000, "1421"},
	}
	for _, tc := range cases {
		if got := c.Year(tc.year); got != tc.want {
			t.Errorf("Year(%d) = %q, want %q", tc.year, got, tc.want)
		}
	}
}
