package prayer

import "strings"

// TimeSet holds one day's prayer and solar event times as 24-hour
// "HH:MM" strings. It is produced per (date, location, method) query
// and treated as immutable once built.
type TimeSet struct {
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

// SetNames lists every field of a TimeSet in chronological order
// (Imsak precedes Fajr; Midnight wraps past the end of day).
var SetNames = []string{
	"Imsak", "Fajr", "Sunrise", "Dhuhr", "Asr", "Sunset", "Maghrib", "Isha", "Midnight",
}

// Get returns the time for a named prayer/event, or "" for an unknown name.
func (s TimeSet) Get(name string) string {
	switch name {
	case "Fajr":
		return s.Fajr
	case "Sunrise":
		return s.Sunrise
	case "Dhuhr":
		return s.Dhuhr
	case "Asr":
		return s.Asr
	case "Sunset":
		return s.Sunset
	case "Maghrib":
		return s.Maghrib
	case "Isha":
		return s.Isha
	case "Imsak":
		return s.Imsak
	case "Midnight":
		return s.Midnight
	default:
		return ""
	}
}

// Map returns the set as a name-keyed map in the wire shape used by
// the HTTP layer.
func (s TimeSet) Map() map[string]string {
	m := make(map[string]string, len(SetNames))
	for _, name := range SetNames {
		m[name] = s.Get(name)
	}
	return m
}

// Complete reports whether every field carries a value.
func (s TimeSet) Complete() bool {
	for _, name := range SetNames {
		if s.Get(name) == "" {
			return false
		}
	}
	return true
}

// CleanTime strips a trailing timezone annotation like " (EET)" that
// the remote API sometimes appends to a timing string.
func CleanTime(raw string) string {
	s := strings.TrimSpace(raw)
	if idx := strings.Index(s, " "); idx != -1 {
		s = s[:idx]
	}
	return s
}
