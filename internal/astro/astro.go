// Package astro computes prayer times from solar position.
//
// The engine is pure and performs no I/O. It is the offline fallback
// behind the remote provider, so it must never fail: where the hour
// angle is undefined (polar summer/winter) the acos argument is
// clamped into [-1, 1] and the result is a degenerate but well-formed
// time, reported through the Clamped flag.
package astro

import (
	"math"
	"time"

	"github.com/asksunna/salat/internal/method"
	"github.com/asksunna/salat/internal/prayer"
)

// asrShadowFactor is the single shadow-length convention (Shafi'i).
const asrShadowFactor = 1

// dhuhrEpsilon nudges Dhuhr just past astronomical noon (decimal hours).
const dhuhrEpsilon = 0.05

// imsakOffsetHours is the fixed precautionary buffer before Fajr.
const imsakOffsetHours = 10.0 / 60

// Result is a computed time set plus a validity indicator.
type Result struct {
	Times prayer.TimeSet
	// Clamped is set when at least one hour angle had to be clamped,
	// meaning the sun never reaches the requested depression angle at
	// this latitude and season. The times are well-formed but degenerate.
	Clamped bool
}

func degrees(rad float64) float64 { return rad * 180 / math.Pi }
func radians(deg float64) float64 { return deg * math.Pi / 180 }

// julianDate converts a calendar date to a Julian Date.
func julianDate(date time.Time) float64 {
	year := date.Year()
	month := int(date.Month())
	day := date.Day()

	if month <= 2 {
		year--
		month += 12
	}

	a := math.Floor(float64(year) / 100)
	b := 2 - a + math.Floor(a/4)

	return math.Floor(365.25*float64(year+4716)) +
		math.Floor(30.6001*float64(month+1)) +
		float64(day) + b - 1524.5
}

// julianCentury converts a Julian Date to centuries since J2000.0.
func julianCentury(jd float64) float64 {
	return (jd - 2451545.0) / 36525
}

// equationOfTime returns the equation of time in minutes for the given
// Julian century, from the standard low-precision solar series.
func equationOfTime(jc float64) float64 {
	epsilon := 23.4393 - 0.0130042*jc
	l0 := 280.46646 + 36000.76983*jc + 0.0003032*jc*jc
	e := 0.016708634 - 0.000042037*jc - 0.0000001267*jc*jc
	m := 357.52911 + 35999.05029*jc - 0.0001537*jc*jc

	y := math.Tan(radians(epsilon)/2) * math.Tan(radians(epsilon)/2)
	sin2l0 := math.Sin(2 * radians(l0))
	sinm := math.Sin(radians(m))
	cos2l0 := math.Cos(2 * radians(l0))
	sin4l0 := math.Sin(4 * radians(l0))
	sin2m := math.Sin(2 * radians(m))

	eot := y*sin2l0 - 2*e*sinm + 4*e*y*sinm*cos2l0 -
		0.5*y*y*sin4l0 - 1.25*e*e*sin2m

	return degrees(eot) * 4
}

// sunDeclination returns the solar declination in radians for the
// given Julian century.
func sunDeclination(jc float64) float64 {
	e := 23.4393 - 0.0130042*jc
	l0 := 280.46646 + 36000.76983*jc + 0.0003032*jc*jc
	m := 357.52911 + 35999.05029*jc - 0.0001537*jc*jc

	sinm := math.Sin(radians(m))
	sin2m := math.Sin(2 * radians(m))

	l := l0 + 1.914602*sinm + 0.019993*sin2m
	return math.Asin(math.Sin(radians(e)) * math.Sin(radians(l)))
}

// Compute derives the full prayer time set for a date, coordinates,
// and method parameters. ok is false only for non-finite or
// out-of-range coordinates; for any valid input the Result carries a
// complete, well-formed time set.
//
// The timezone is approximated as round(longitude/15) -- a
// longitude-only estimate, not the civil time zone. This is an
// inherited precision limit of the calculation, kept deliberately.
func Compute(date time.Time, lat, lng float64, p method.Params) (Result, bool) {
	if math.IsNaN(lat) || math.IsInf(lat, 0) || lat < -90 || lat > 90 {
		return Result{}, false
	}
	if math.IsNaN(lng) || math.IsInf(lng, 0) || lng < -180 || lng > 180 {
		return Result{}, false
	}

	jc := julianCentury(julianDate(date))

	timezone := math.Round(lng / 15)
	decl := sunDeclination(jc)
	eot := equationOfTime(jc)

	noon := 12 + timezone - lng/15 - eot/60

	clamped := false

	// timeFor returns the clock time at which the sun reaches the given
	// depression angle, before or after solar noon.
	timeFor := func(angle float64, afterNoon bool) float64 {
		cosHA := (-math.Sin(radians(angle)) - math.Sin(decl)*math.Sin(radians(lat))) /
			(math.Cos(decl) * math.Cos(radians(lat)))

		if cosHA > 1 {
			cosHA = 1
			clamped = true
		} else if cosHA < -1 {
			cosHA = -1
			clamped = true
		}

		hours := degrees(math.Acos(cosHA)) / 15
		if afterNoon {
			return noon + hours
		}
		return noon - hours
	}

	sunrise := timeFor(0.833, false)
	sunset := timeFor(0.833, true)

	fajr := timeFor(p.FajrAngle, false)
	dhuhr := noon + dhuhrEpsilon

	// Asr under the single shadow-length convention: the elevation
	// angle at which an object's shadow equals its height plus the
	// noon shadow. timeFor takes depression angles, so the elevation
	// is passed negated.
	asrAngle := degrees(math.Atan(1 / (asrShadowFactor + math.Tan(math.Abs(radians(lat)-decl)))))
	asr := timeFor(-asrAngle, true)

	maghrib := sunset + p.MaghribMinutes/60

	var isha float64
	if p.IshaIsMinutes() {
		isha = maghrib + p.IshaAngle/60
	} else {
		isha = timeFor(p.IshaAngle, true)
	}

	imsak := fajr - imsakOffsetHours
	midnight := sunset + (fajr+24-sunset)/2

	times := prayer.TimeSet{
		Fajr:     FormatClock(fajr),
		Sunrise:  FormatClock(sunrise),
		Dhuhr:    FormatClock(dhuhr),
		Asr:      FormatClock(asr),
		Sunset:   FormatClock(sunset),
		Maghrib:  FormatClock(maghrib),
		Isha:     FormatClock(isha),
		Imsak:    FormatClock(imsak),
		Midnight: FormatClock(math.Mod(midnight, 24)),
	}

	return Result{Times: times, Clamped: clamped}, true
}
