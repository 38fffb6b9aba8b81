package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/asksunna/salat/internal/astro"
	"github.com/asksunna/salat/internal/prayer"
	"github.com/asksunna/salat/internal/ramadan"
)

// Table renders an aligned text table with optional highlighting.
type Table struct {
	headers []string
	rows    [][]string
	// highlightRow is the 0-based row to highlight (typically "today").
	highlightRow int
}

// NewTable creates a table with the given column headers.
func NewTable(headers []string) *Table {
	return &Table{headers: headers, highlightRow: -1}
}

// AddRow appends a row of values.
func (t *Table) AddRow(values []string) {
	t.rows = append(t.rows, values)
}

// SetHighlightRow sets which row (0-based) to highlight.
func (t *Table) SetHighlightRow(idx int) {
	t.highlightRow = idx
}

// Render produces the formatted table string with leading indent.
func (t *Table) Render() string {
	if len(t.headers) == 0 {
		return ""
	}

	widths := make([]int, len(t.headers))
	for i, h := range t.headers {
		widths[i] = len(h)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if i < len(widths) && len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	var sb strings.Builder

	sb.WriteString("  " + Bold(formatRow(t.headers, widths)) + "\n")

	sepParts := make([]string, len(widths))
	for i, w := range widths {
		sepParts[i] = strings.Repeat("─", w)
	}
	sb.WriteString(Dim("  "+strings.Join(sepParts, "  ")) + "\n")

	for i, row := range t.rows {
		line := formatRow(row, widths)
		if i == t.highlightRow {
			sb.WriteString("  " + Accent(line) + "\n")
		} else {
			sb.WriteString("  " + line + "\n")
		}
	}

	return sb.String()
}

func formatRow(cells []string, widths []int) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		parts[i] = fmt.Sprintf("%-*s", w, cell)
	}
	return strings.Join(parts, "  ")
}

// TimingsTable renders a day's time set, one prayer per row, in the
// chronological field order.
func TimingsTable(set prayer.TimeSet, timeFormat string) string {
	t := NewTable([]string{"Prayer", "Time"})
	for _, name := range prayer.SetNames {
		t.AddRow([]string{name, clockFor(set.Get(name), timeFormat)})
	}
	return t.Render()
}

// RamadanTable renders the 30-day calendar, highlighting today's row
// if it falls within the calendar.
func RamadanTable(days []ramadan.Day, timeFormat string, today time.Time) string {
	t := NewTable([]string{"Day", "Date", "Suhoor ends", "Iftar"})
	for i, d := range days {
		t.AddRow([]string{
			fmt.Sprintf("%d", d.Number),
			d.Date.Format("Mon 02 Jan"),
			clockFor(d.SuhoorEnd, timeFormat),
			clockFor(d.Iftar, timeFormat),
		})
		if sameDay(d.Date, today) {
			t.SetHighlightRow(i)
		}
	}
	return t.Render()
}

// clockFor converts a 24-hour string for the requested format.
func clockFor(hhmm, timeFormat string) string {
	if timeFormat == "12h" {
		return astro.To12Hour(hhmm)
	}
	return hhmm
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}
