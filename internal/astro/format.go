package astro

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatClock renders a decimal hour as zero-padded 24-hour "HH:MM".
// Values outside [0, 24) are reduced modulo 24 so the output is always
// a valid clock time; NaN formats as "00:00" rather than propagating.
func FormatClock(hours float64) string {
	if math.IsNaN(hours) || math.IsInf(hours, 0) {
		return "00:00"
	}

	h := math.Mod(hours, 24)
	if h < 0 {
		h += 24
	}

	// Work in whole minutes. The epsilon keeps values that are a hair
	// below an exact minute boundary from flooring to the minute before.
	total := int(math.Floor(h*60 + 1e-6))
	hh := (total / 60) % 24
	mm := total % 60

	return fmt.Sprintf("%02d:%02d", hh, mm)
}

// ParseClock parses a 24-hour "HH:MM" string back into decimal hours.
// A trailing timezone annotation like " (EET)" is tolerated.
func ParseClock(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if idx := strings.Index(s, " "); idx != -1 {
		s = s[:idx]
	}

	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid clock time %q", s)
	}

	hh, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid hour in %q: %w", s, err)
	}
	mm, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid minute in %q: %w", s, err)
	}
	if hh < 0 || hh > 23 || mm < 0 || mm > 59 {
		return 0, fmt.Errorf("clock time %q out of range", s)
	}

	return float64(hh) + float64(mm)/60, nil
}

// To12Hour converts a 24-hour "HH:MM" string to "H:MM AM/PM".
// Strings that do not look like clock times pass through unchanged.
func To12Hour(time24 string) string {
	if !strings.Contains(time24, ":") {
		return time24
	}

	parts := strings.SplitN(time24, ":", 2)
	h24, err := strconv.Atoi(parts[0])
	if err != nil {
		return time24
	}

	h12 := h24 % 12
	if h12 == 0 {
		h12 = 12
	}
	period := "AM"
	if h24 >= 12 {
		period = "PM"
	}

	return fmt.Sprintf("%d:%s %s", h12, parts[1], period)
}
