// Package estimate is the last-ditch prayer time generator: a crude
// seasonal heuristic used only when the remote provider is unreachable
// and the astronomical engine cannot run (invalid coordinates). Its
// output is intentionally rough but always complete and well-formed.
package estimate

import (
	"fmt"
	"math"
	"time"

	"github.com/asksunna/salat/internal/prayer"
)

// Times builds an estimated time set for the date and coordinates.
// Latitude only shifts Fajr earlier and Maghrib later; longitude is
// ignored entirely.
func Times(date time.Time, latitude float64) prayer.TimeSet {
	day := date.Day()
	month := int(date.Month())
	northern := latitude > 0

	latAdj := math.Abs(latitude) / 90

	var fajrSeason, maghribSeason int
	if northern {
		if month >= 5 && month <= 8 {
			fajrSeason = -1
			maghribSeason = 1
		}
	} else {
		if month >= 11 || month <= 2 {
			fajrSeason = -1
			maghribSeason = 1
		}
	}

	fajrHour := 5 + fajrSeason - int(math.Round(latAdj))
	if fajrHour < 3 {
		fajrHour = 3
	}
	if fajrHour > 6 {
		fajrHour = 6
	}

	maghribHour := 18 + maghribSeason + int(math.Round(latAdj))
	if maghribHour < 17 {
		maghribHour = 17
	}
	if maghribHour > 20 {
		maghribHour = 20
	}

	fajrMin := 10 + day%20
	maghribMin := 30 + day%20

	return prayer.TimeSet{
		Fajr:     clock(fajrHour, fajrMin),
		Sunrise:  clock(fajrHour+1, fajrMin+15),
		Dhuhr:    "12:30",
		Asr:      "15:45",
		Sunset:   clock(maghribHour, maghribMin),
		Maghrib:  clock(maghribHour, maghribMin),
		Isha:     clock(maghribHour+1, 15+day%30),
		Imsak:    clock(fajrHour, fajrMin-10),
		Midnight: "23:45",
	}
}

// clock formats hour/minute as "HH:MM", carrying minute over/underflow.
func clock(h, m int) string {
	for m < 0 {
		m += 60
		h--
	}
	for m >= 60 {
		m -= 60
		h++
	}
	h = ((h % 24) + 24) % 24
	return fmt.Sprintf("%02d:%02d", h, m)
}
