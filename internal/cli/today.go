package cli

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/asksunna/salat/internal/display"
	"github.com/asksunna/salat/internal/schedule"
	"github.com/spf13/cobra"
)

func newTodayCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "today",
		Short: "Show today's prayer schedule",
		Long:  "Display the full prayer schedule for today at the configured location.",
		RunE:  runToday,
	}
}

func runToday(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)
	ctx := cmd.Context()

	svc, closeStore := newService(cfg)
	defer closeStore()

	loc := resolveLocation(ctx, cfg)
	now := time.Now()

	t := svc.PrayerTimes(ctx, now, loc, cfg.Method)

	if FlagJSON {
		return printTimingsJSON(now, loc.String(), t)
	}

	fmt.Println()
	fmt.Printf("  %s\n", display.Bold("Prayer Times"))
	fmt.Println()
	fmt.Printf("  %s\n", loc.String())
	fmt.Printf("  %s\n", now.Format("02 Jan 2006"))
	fmt.Println()
	fmt.Print(display.TimingsTable(t.Set, cfg.TimeFormat))
	fmt.Println()
	printSourceNotice(t)

	return nil
}

// printSourceNotice tells the user when the times did not come from
// the remote provider.
func printSourceNotice(t schedule.Timings) {
	switch t.Source {
	case schedule.SourceComputed:
		msg := "  times computed locally (network unavailable)"
		if t.Degraded {
			msg += "; degraded accuracy at this latitude"
		}
		fmt.Println(display.Yellow(msg))
		fmt.Println()
	case schedule.SourceEstimated:
		fmt.Println(display.Yellow("  times are rough estimates"))
		fmt.Println()
	}
}

// timingsJSON is the JSON output shape for today/timings output.
type timingsJSON struct {
	Date     string            `json:"date"`
	Location string            `json:"location"`
	Source   string            `json:"source"`
	Degraded bool              `json:"degraded,omitempty"`
	Timings  map[string]string `json:"timings"`
}

func printTimingsJSON(date time.Time, locStr string, t schedule.Timings) error {
	out := timingsJSON{
		Date:     date.Format("2006-01-02"),
		Location: locStr,
		Source:   t.Source.String(),
		Degraded: t.Degraded,
		Timings:  t.Set.Map(),
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
