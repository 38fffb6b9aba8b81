// Package ramadan builds the 30-day Ramadan calendar records consumed
// by presentation: for each day, the end of suhoor (Fajr) and iftar
// (Maghrib).
package ramadan

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/asksunna/salat/internal/api"
	"github.com/asksunna/salat/internal/prayer"
)

// Day is one day of the Ramadan calendar.
type Day struct {
	// Number is the Ramadan day, 1..30.
	Number int
	// Date is the Gregorian date of the day.
	Date time.Time
	// SuhoorEnd is the Fajr time ("HH:MM") ending the pre-dawn meal.
	SuhoorEnd string
	// Iftar is the Maghrib time ("HH:MM") breaking the fast.
	Iftar string
}

// FromTimeSet projects a day's time set into a calendar day.
func FromTimeSet(number int, date time.Time, set prayer.TimeSet) Day {
	return Day{
		Number:    number,
		Date:      date,
		SuhoorEnd: set.Fajr,
		Iftar:     set.Maghrib,
	}
}

// FromCalendarData extracts the Ramadan days (Hijri month 9) from a
// remote month calendar payload. Days whose dates fail to parse are
// skipped; the caller decides whether the surviving count is usable.
func FromCalendarData(days []api.Data) []Day {
	var out []Day
	for _, d := range days {
		if d.Date.Hijri.Month.Number != 9 {
			continue
		}

		number, err := strconv.Atoi(d.Date.Hijri.Day)
		if err != nil || number < 1 || number > 30 {
			continue
		}

		date, err := parseGregorian(d.Date.Gregorian.Date)
		if err != nil {
			continue
		}

		set := d.Timings.TimeSet()
		out = append(out, FromTimeSet(number, date, set))
	}
	return out
}

// Sort orders days ascending by Ramadan day number, in place.
func Sort(days []Day) {
	sort.Slice(days, func(i, j int) bool {
		return days[i].Number < days[j].Number
	})
}

// Complete reports whether days is exactly one full Ramadan: 30 days,
// numbered 1..30 after sorting, each with both meal times present.
func Complete(days []Day) bool {
	if len(days) != 30 {
		return false
	}
	seen := make(map[int]bool, 30)
	for _, d := range days {
		if d.SuhoorEnd == "" || d.Iftar == "" {
			return false
		}
		if seen[d.Number] {
			return false
		}
		seen[d.Number] = true
	}
	for n := 1; n <= 30; n++ {
		if !seen[n] {
			return false
		}
	}
	return true
}

// parseGregorian parses the API's DD-MM-YYYY date string.
func parseGregorian(s string) (time.Time, error) {
	t, err := time.Parse("02-01-2006", s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid gregorian date %q: %w", s, err)
	}
	return t, nil
}
