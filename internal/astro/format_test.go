package astro

import (
	"math"
	"testing"
)

func TestFormatClock(t *testing.T) {
	cases := []struct {
		hours float64
		want  string
	}{
		{0, "00:00"},
		{5.5, "05:30"},
		{12.553, "12:33"},
		{23.9999, "23:59"},
		{24.5, "00:30"},
		{-0.25, "23:45"},
		{-24, "00:00"},
		{math.NaN(), "00:00"},
		{math.Inf(1), "00:00"},
		{math.Inf(-1), "00:00"},
	}
	for _, tc := range cases {
		if got := FormatClock(tc.hours); got != tc.want {
			t.Errorf("FormatClock(%v) = %q, want %q", tc.hours, got, tc.want)
		}
	}
}

func TestFormatParseRoundTrip(t *testing.T) {
	for hh := 0; hh < 24; hh++ {
		for _, mm := range []int{0, 1, 13, 30, 58, 59} {
			h := float64(hh) + float64(mm)/60
			first := FormatClock(h)
			parsed, err := ParseClock(first)
			if err != nil {
				t.Fatalf("ParseClock(%q): %v", first, err)
			}
			if second := FormatClock(parsed); second != first {
				t.Errorf("round trip drifted: %q -> %v -> %q", first, parsed, second)
			}
		}
	}
}

func TestParseClock(t *testing.T) {
	got, err := ParseClock("05:17 (EET)")
	if err != nil {
		t.Fatalf("ParseClock with timezone suffix: %v", err)
	}
	want := 5 + 17.0/60
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("ParseClock(\"05:17 (EET)\") = %v, want %v", got, want)
	}

	for _, bad := range []string{"", "5", "25:00", "12:60", "ab:cd", "12:5:9"} {
		if _, err := ParseClock(bad); err == nil {
			t.Errorf("ParseClock(%q) = nil error, want error", bad)
		}
	}
}

func TestTo12Hour(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"00:30", "12:30 AM"},
		{"09:05", "9:05 AM"},
		{"12:00", "12:00 PM"},
		{"13:05", "1:05 PM"},
		{"23:59", "11:59 PM"},
		{"not a time", "not a time"},
	}
	for _, tc := range cases {
		if got := To12Hour(tc.in); got != tc.want {
			t.Errorf("To12Hour(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
