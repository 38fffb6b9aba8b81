package api

import "github.com/asksunna/salat/internal/prayer"

// Response represents the top-level Al Adhan API response.
type Response struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   Data   `json:"data"`
}

// CalendarResponse represents the Al Adhan calendar API response.
// The calendar endpoint returns one Data object per day of the month.
type CalendarResponse struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   []Data `json:"data"`
}

// Data holds one day's prayer timings, date info, and metadata.
type Data struct {
	Timings Timings  `json:"timings"`
	Date    DateInfo `json:"date"`
	Meta    Meta     `json:"meta"`
}

// Timings contains all prayer and event times as HH:MM strings.
// The API may append a timezone suffix like " (EET)" which is stripped
// when converting to a TimeSet.
type Timings struct {
	Fajr     string `json:"Fajr"`
	Sunrise  string `json:"Sunrise"`
	Dhuhr    string `json:"Dhuhr"`
	Asr      string `json:"Asr"`
	Sunset   string `json:"Sunset"`
	Maghrib  string `json:"Maghrib"`
	Isha     string `json:"Isha"`
	Imsak    string `json:"Imsak"`
	Midnight string `json:"Midnight"`
}

// TimeSet converts the raw timings into the domain shape, stripping
// any timezone annotations.
func (t Timings) TimeSet() prayer.TimeSet {
	return prayer.TimeSet{
		Fajr:     prayer.CleanTime(t.Fajr),
		Sunrise:  prayer.CleanTime(t.Sunrise),
		Dhuhr:    prayer.CleanTime(t.Dhuhr),
		Asr:      prayer.CleanTime(t.Asr),
		Sunset:   prayer.CleanTime(t.Sunset),
		Maghrib:  prayer.CleanTime(t.Maghrib),
		Isha:     prayer.CleanTime(t.Isha),
		Imsak:    prayer.CleanTime(t.Imsak),
		Midnight: prayer.CleanTime(t.Midnight),
	}
}

// DateInfo contains the date representations attached to a day.
type DateInfo struct {
	Readable  string        `json:"readable"`
	Hijri     HijriDate     `json:"hijri"`
	Gregorian GregorianDate `json:"gregorian"`
}

// HijriDate represents the Hijri (Islamic) date from the API response.
// Month number 9 identifies Ramadan days in calendar payloads.
type HijriDate struct {
	Date  string     `json:"date"` // e.g. "10-09-1446"
	Day   string     `json:"day"`
	Month HijriMonth `json:"month"`
	Year  string     `json:"year"`
}

// HijriMonth represents the month in the Hijri calendar.
type HijriMonth struct {
	Number int    `json:"number"`
	En     string `json:"en"`
}

// GregorianDate represents the Gregorian date from the API response.
type GregorianDate struct {
	Date  string         `json:"date"` // e.g. "01-03-2025" (DD-MM-YYYY)
	Day   string         `json:"day"`
	Month GregorianMonth `json:"month"`
	Year  string         `json:"year"`
}

// GregorianMonth contains the month details.
type GregorianMonth struct {
	Number int    `json:"number"`
	En     string `json:"en"`
}

// Meta contains request metadata returned by the API.
type Meta struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Timezone  string     `json:"timezone"`
	Method    MethodInfo `json:"method"`
}

// MethodInfo identifies the calculation method used.
type MethodInfo struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
