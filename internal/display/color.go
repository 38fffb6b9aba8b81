// Package display renders terminal output: ANSI styling helpers and
// aligned tables for timing schedules and the Ramadan calendar.
//
// Colors respect the NO_COLOR convention (https://no-color.org/) and
// are disabled automatically when stdout is piped or redirected.
package display

import "os"

// ANSI escape codes for styling.
const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	yellow = "\033[33m"
	cyan   = "\033[36m"
)

// enabled reports whether color output is active. Set once at init.
var enabled bool

func init() {
	enabled = shouldEnable()
}

func shouldEnable() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	// FORCE_COLOR is honored for testing.
	if _, ok := os.LookupEnv("FORCE_COLOR"); ok {
		return true
	}
	return isTerminal(os.Stdout)
}

// isTerminal reports whether f is connected to a character device.
func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// SetEnabled overrides the auto-detected color state.
func SetEnabled(b bool) {
	enabled = b
}

// Enabled reports whether color output is currently active.
func Enabled() bool {
	return enabled
}

func wrap(code, text string) string {
	if !enabled {
		return text
	}
	return code + text + reset
}

// Bold returns text rendered in bold.
func Bold(text string) string { return wrap(bold, text) }

// Dim returns text rendered in dim/faint.
func Dim(text string) string { return wrap(dim, text) }

// Yellow returns text rendered in yellow. Used for degradation notices.
func Yellow(text string) string { return wrap(yellow, text) }

// Accent returns text in the highlight style (bold cyan).
func Accent(text string) string {
	if !enabled {
		return text
	}
	return bold + cyan + text + reset
}
