package schedule

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/asksunna/salat/internal/location"
	"github.com/asksunna/salat/internal/ramadan"
)

// marchCalendarJSON serves all of March 2025: two trailing Sha'ban days
// then Ramadan 1..30 (1 March through 30 March), plus one Shawwal day.
func marchCalendarJSON() string {
	var days []string
	days = append(days, calendarDayJSON(8, 30, "28-02-2025"))
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 30; i++ {
		d := start.AddDate(0, 0, i)
		days = append(days, calendarDayJSON(9, i+1, d.Format("02-01-2006")))
	}
	days = append(days, calendarDayJSON(10, 1, "31-03-2025"))
	return `{"code": 200, "status": "OK", "data": [` + strings.Join(days, ",") + `]}`
}

func calendarDayJSON(hijriMonth, hijriDay int, gregorian string) string {
	return fmt.Sprintf(`{
		"timings": {
			"Fajr": "05:17", "Sunrise": "06:42", "Dhuhr": "12:33",
			"Asr": "15:54", "Sunset": "18:24", "Maghrib": "18:24",
			"Isha": "19:40", "Imsak": "05:07", "Midnight": "00:20"
		},
		"date": {
			"readable": "",
			"hijri": {"day": "%d", "month": {"number": %d, "en": ""}, "year": "1446"},
			"gregorian": {"date": "%s", "day": "", "month": {"number": 3, "en": ""}, "year": "2025"}
		},
		"meta": {"latitude": 21.4225, "longitude": 39.8262, "timezone": "", "method": {"id": 3, "name": ""}}
	}`, hijriDay, hijriMonth, gregorian)
}

func checkFullRamadan(t *testing.T, days []ramadan.Day) {
	t.Helper()
	if len(days) != 30 {
		t.Fatalf("got %d days, want 30", len(days))
	}
	for i, d := range days {
		if d.Number != i+1 {
			t.Fatalf("days[%d].Number = %d, want %d", i, d.Number, i+1)
		}
		if d.SuhoorEnd == "" || d.Iftar == "" {
			t.Fatalf("day %d missing meal times: %+v", d.Number, d)
		}
	}
}

func TestRamadanCalendarRemote(t *testing.T) {
	var paths []string
	svc, calls := newService(t, func(w http.ResponseWriter, r *http.Request) {
		paths = append(paths, r.URL.Path)
		w.Write([]byte(marchCalendarJSON()))
	})

	loc := location.Coordinates(21.4225, 39.8262)
	days, err := svc.RamadanCalendar(context.Background(), loc, 2025, 3)
	if err != nil {
		t.Fatalf("RamadanCalendar: %v", err)
	}
	checkFullRamadan(t, days)

	// Ramadan 2025 fits inside March: a single month fetch.
	if calls.Load() != 1 {
		t.Fatalf("upstream calls = %d, want 1", calls.Load())
	}
	if paths[0] != "/calendar/2025/3" {
		t.Errorf("path = %q, want /calendar/2025/3", paths[0])
	}

	first := days[0]
	if !first.Date.Equal(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("day 1 date = %s, want 2025-03-01", first.Date.Format("2006-01-02"))
	}
	if first.SuhoorEnd != "05:17" || first.Iftar != "18:24" {
		t.Errorf("day 1 meals = %q / %q, want 05:17 / 18:24", first.SuhoorEnd, first.Iftar)
	}
}

func TestRamadanCalendarSecondCallCached(t *testing.T) {
	svc, calls := newService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(marchCalendarJSON()))
	})

	loc := location.Coordinates(21.4225, 39.8262)
	if _, err := svc.RamadanCalendar(context.Background(), loc, 2025, 3); err != nil {
		t.Fatalf("first RamadanCalendar: %v", err)
	}
	if _, err := svc.RamadanCalendar(context.Background(), loc, 2025, 3); err != nil {
		t.Fatalf("second RamadanCalendar: %v", err)
	}

	if calls.Load() != 1 {
		t.Errorf("upstream calls = %d, want 1 (month payload cached)", calls.Load())
	}
}

func TestRamadanCalendarSpansTwoMonths(t *testing.T) {
	// Ramadan 2026 starts 18 February and runs into March: both months
	// are fetched. The stub serves empty Ramadan data so the builder
	// falls through to the per-day rebuild; the point here is the
	// request pattern.
	var paths []string
	svc, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/calendar/") {
			paths = append(paths, r.URL.Path)
			w.Write([]byte(`{"code": 200, "status": "OK", "data": [` + calendarDayJSON(8, 1, "01-02-2026") + `]}`))
			return
		}
		http.Error(w, "down", http.StatusInternalServerError)
	})

	loc := location.Coordinates(21.4225, 39.8262)
	days, err := svc.RamadanCalendar(context.Background(), loc, 2026, 3)
	if err != nil {
		t.Fatalf("RamadanCalendar: %v", err)
	}
	checkFullRamadan(t, days)

	wantPaths := map[string]bool{"/calendar/2026/2": false, "/calendar/2026/3": false}
	for _, p := range paths {
		if _, ok := wantPaths[p]; ok {
			wantPaths[p] = true
		}
	}
	for p, seen := range wantPaths {
		if !seen {
			t.Errorf("month %s was never fetched", p)
		}
	}
}

func TestRamadanCalendarPerDayRebuild(t *testing.T) {
	svc, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusInternalServerError)
	})

	loc := location.Coordinates(21.4225, 39.8262)
	days, err := svc.RamadanCalendar(context.Background(), loc, 2025, 3)
	if err != nil {
		t.Fatalf("RamadanCalendar must not fail when remote is down: %v", err)
	}
	checkFullRamadan(t, days)

	if !days[0].Date.Equal(time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("day 1 date = %s, want 2025-03-01", days[0].Date.Format("2006-01-02"))
	}
	if !days[29].Date.Equal(time.Date(2025, time.March, 30, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("day 30 date = %s, want 2025-03-30", days[29].Date.Format("2006-01-02"))
	}
}

func TestRamadanCalendarPartialRemoteRebuildsFully(t *testing.T) {
	// Remote answers but with only 10 Ramadan days: the partial result
	// is discarded and the calendar rebuilt day by day.
	var days []string
	start := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		d := start.AddDate(0, 0, i)
		days = append(days, calendarDayJSON(9, i+1, d.Format("02-01-2006")))
	}
	partial := `{"code": 200, "status": "OK", "data": [` + strings.Join(days, ",") + `]}`

	svc, _ := newService(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/calendar/") {
			w.Write([]byte(partial))
			return
		}
		http.Error(w, "down", http.StatusInternalServerError)
	})

	loc := location.Coordinates(21.4225, 39.8262)
	got, err := svc.RamadanCalendar(context.Background(), loc, 2025, 3)
	if err != nil {
		t.Fatalf("RamadanCalendar: %v", err)
	}
	checkFullRamadan(t, got)
}
