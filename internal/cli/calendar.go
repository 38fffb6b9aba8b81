package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/asksunna/salat/internal/display"
	"github.com/asksunna/salat/internal/ramadan"
	"github.com/spf13/cobra"
)

func newCalendarCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calendar [year]",
		Short: "Show the Ramadan calendar",
		Long:  "Display the 30-day Ramadan calendar with suhoor and iftar times for the given Gregorian year (default: current year).",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runCalendar,
	}
}

func runCalendar(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)
	ctx := cmd.Context()

	year := time.Now().Year()
	if len(args) == 1 {
		y, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid year %q", args[0])
		}
		year = y
	}

	svc, closeStore := newService(cfg)
	defer closeStore()

	loc := resolveLocation(ctx, cfg)

	days, err := svc.RamadanCalendar(ctx, loc, year, cfg.Method)
	if err != nil {
		return fmt.Errorf("failed to build ramadan calendar: %w", err)
	}

	if FlagJSON {
		return printCalendarJSON(year, days)
	}

	fmt.Println()
	fmt.Printf("  %s\n", display.Bold(fmt.Sprintf("Ramadan %d", year)))
	fmt.Printf("  %s\n", loc.String())
	fmt.Println()
	fmt.Print(display.RamadanTable(days, cfg.TimeFormat, time.Now()))
	fmt.Println()

	return nil
}

// calendarDayJSON mirrors the day shape served by the HTTP API.
type calendarDayJSON struct {
	Day            int    `json:"day"`
	GregorianDate  int    `json:"gregorianDate"`
	GregorianMonth int    `json:"gregorianMonth"`
	GregorianYear  int    `json:"gregorianYear"`
	Times          struct {
		Suhoor string `json:"suhoor"`
		Iftar  string `json:"iftar"`
	} `json:"times"`
}

func printCalendarJSON(year int, days []ramadan.Day) error {
	out := make([]calendarDayJSON, len(days))
	for i, d := range days {
		out[i].Day = d.Number
		out[i].GregorianDate = d.Date.Day()
		out[i].GregorianMonth = int(d.Date.Month())
		out[i].GregorianYear = d.Date.Year()
		out[i].Times.Suhoor = d.SuhoorEnd
		out[i].Times.Iftar = d.Iftar
	}

	data, err := json.MarshalIndent(map[string]interface{}{
		"year": year,
		"days": out,
	}, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
