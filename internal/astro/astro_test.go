package astro

import (
	"math"
	"testing"
	"time"

	"github.com/asksunna/salat/internal/method"
)

func mustParse(t *testing.T, clock string) float64 {
	t.Helper()
	h, err := ParseClock(clock)
	if err != nil {
		t.Fatalf("ParseClock(%q): %v", clock, err)
	}
	return h
}

func TestComputeMecca(t *testing.T) {
	date := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	res, ok := Compute(date, 21.4225, 39.8262, method.Resolve(3))
	if !ok {
		t.Fatal("Compute returned ok=false for valid coordinates")
	}
	if res.Clamped {
		t.Error("Clamped = true at tropical latitude")
	}
	if !res.Times.Complete() {
		t.Fatalf("incomplete time set: %+v", res.Times)
	}

	fajr := mustParse(t, res.Times.Fajr)
	dhuhr := mustParse(t, res.Times.Dhuhr)
	maghrib := mustParse(t, res.Times.Maghrib)

	if fajr >= 6 {
		t.Errorf("Fajr = %s, want before 06:00", res.Times.Fajr)
	}
	if dhuhr < 11.5 || dhuhr > 13.5 {
		t.Errorf("Dhuhr = %s, want between 11:30 and 13:30", res.Times.Dhuhr)
	}
	if maghrib <= 17 {
		t.Errorf("Maghrib = %s, want after 17:00", res.Times.Maghrib)
	}
}

func TestComputeOrdering(t *testing.T) {
	dates := []time.Time{
		time.Date(2025, time.January, 15, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.April, 10, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.September, 23, 0, 0, 0, 0, time.UTC),
		time.Date(2025, time.November, 5, 0, 0, 0, 0, time.UTC),
	}
	lats := []float64{-65, -45, -30, 0, 21.4225, 30, 45, 65}
	lngs := []float64{-122.4, 0, 39.8262, 151.2}

	for _, date := range dates {
		for _, lat := range lats {
			for _, lng := range lngs {
				res, ok := Compute(date, lat, lng, method.Resolve(3))
				if !ok {
					t.Fatalf("Compute(%s, %v, %v) not ok", date.Format("2006-01-02"), lat, lng)
				}
				if !res.Times.Complete() {
					t.Fatalf("incomplete set at lat=%v lng=%v: %+v", lat, lng, res.Times)
				}
				if res.Clamped {
					// Degenerate polar case: times are well-formed but
					// the usual daily ordering does not apply.
					continue
				}

				fajr := mustParse(t, res.Times.Fajr)
				sunrise := mustParse(t, res.Times.Sunrise)
				dhuhr := mustParse(t, res.Times.Dhuhr)
				asr := mustParse(t, res.Times.Asr)
				sunset := mustParse(t, res.Times.Sunset)
				maghrib := mustParse(t, res.Times.Maghrib)
				isha := mustParse(t, res.Times.Isha)

				if !(fajr < sunrise && sunrise < dhuhr && dhuhr < asr && asr < sunset && sunset <= maghrib) {
					t.Errorf("ordering violated at %s lat=%v lng=%v: %+v",
						date.Format("2006-01-02"), lat, lng, res.Times)
				}
				// Isha may wrap past midnight at high latitudes.
				if maghrib >= isha && isha > 2 {
					t.Errorf("Isha %s before Maghrib %s at lat=%v lng=%v",
						res.Times.Isha, res.Times.Maghrib, lat, lng)
				}
			}
		}
	}
}

func TestComputePolarClamp(t *testing.T) {
	// North of the arctic circle at midsummer the sun never reaches
	// the 18 degree depression angle, sometimes not even the horizon.
	date := time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC)
	res, ok := Compute(date, 78.2, 15.6, method.Resolve(3))
	if !ok {
		t.Fatal("Compute returned ok=false for valid polar coordinates")
	}
	if !res.Clamped {
		t.Error("Clamped = false, want true at 78.2N on the solstice")
	}
	if !res.Times.Complete() {
		t.Errorf("clamped result must still be a complete set: %+v", res.Times)
	}
}

func TestComputeIshaMinutesOffset(t *testing.T) {
	// Umm Al-Qura expresses Isha as 90 minutes after Maghrib.
	date := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	res, ok := Compute(date, 21.4225, 39.8262, method.Resolve(4))
	if !ok {
		t.Fatal("Compute returned ok=false")
	}

	maghrib := mustParse(t, res.Times.Maghrib)
	isha := mustParse(t, res.Times.Isha)
	got := isha - maghrib
	if math.Abs(got-1.5) > 0.04 {
		t.Errorf("Isha - Maghrib = %.3fh, want 1.5h (Maghrib %s, Isha %s)",
			got, res.Times.Maghrib, res.Times.Isha)
	}
}

func TestComputeImsakOffset(t *testing.T) {
	date := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	res, _ := Compute(date, 30.0444, 31.2357, method.Resolve(5))

	fajr := mustParse(t, res.Times.Fajr)
	imsak := mustParse(t, res.Times.Imsak)
	got := fajr - imsak
	if math.Abs(got-10.0/60) > 0.04 {
		t.Errorf("Fajr - Imsak = %.3fh, want 10 minutes (Imsak %s, Fajr %s)",
			got, res.Times.Imsak, res.Times.Fajr)
	}
}

func TestComputeRejectsBadCoordinates(t *testing.T) {
	date := time.Date(2025, time.March, 1, 0, 0, 0, 0, time.UTC)
	cases := []struct {
		name     string
		lat, lng float64
	}{
		{"nan latitude", math.NaN(), 0},
		{"inf longitude", 0, math.Inf(1)},
		{"latitude too large", 95, 0},
		{"latitude too small", -90.01, 0},
		{"longitude too large", 0, 181},
		{"longitude too small", 0, -180.5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, ok := Compute(date, tc.lat, tc.lng, method.Resolve(3)); ok {
				t.Errorf("Compute(lat=%v, lng=%v) ok = true, want false", tc.lat, tc.lng)
			}
		})
	}
}

func TestComputeDeterministic(t *testing.T) {
	date := time.Date(2025, time.July, 4, 0, 0, 0, 0, time.UTC)
	a, _ := Compute(date, 40.7128, -74.006, method.Resolve(2))
	b, _ := Compute(date, 40.7128, -74.006, method.Resolve(2))
	if a != b {
		t.Errorf("same inputs gave different results:\n%+v\n%+v", a, b)
	}
}

func TestJulianDate(t *testing.T) {
	// J2000.0 epoch: 2000-01-01 12:00 TT is JD 2451545.0; at midnight
	// the date-only conversion lands on 2451544.5.
	got := julianDate(time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC))
	if got != 2451544.5 {
		t.Errorf("julianDate(2000-01-01) = %v, want 2451544.5", got)
	}

	// January/February fold into months 13/14 of the previous year.
	feb := julianDate(time.Date(2024, time.February, 29, 0, 0, 0, 0, time.UTC))
	mar := julianDate(time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC))
	if mar-feb != 1 {
		t.Errorf("JD(Mar 1) - JD(Feb 29) = %v, want 1", mar-feb)
	}
}
