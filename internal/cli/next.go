package cli

import (
	"fmt"
	"time"

	"github.com/asksunna/salat/internal/prayer"
	"github.com/spf13/cobra"
)

func newNextCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "next",
		Short: "Show the next prayer with countdown",
		Long:  "Display the next upcoming prayer time with a countdown. Suitable for status bars.",
		RunE:  runNext,
	}
}

func runNext(cmd *cobra.Command, args []string) error {
	cfg := effectiveConfig(cmd)
	ctx := cmd.Context()

	svc, closeStore := newService(cfg)
	defer closeStore()

	loc := resolveLocation(ctx, cfg)
	now := time.Now()

	t := svc.PrayerTimes(ctx, now, loc, cfg.Method)

	prayers, err := prayer.ParseSet(t.Set, now, now.Location(), prayer.DefaultNames)
	if err != nil {
		return err
	}

	next := prayer.NextPrayer(prayers, now)

	// All of today's prayers have passed: the next prayer is
	// tomorrow's Fajr.
	if next == nil {
		tomorrow := now.AddDate(0, 0, 1)
		tt := svc.PrayerTimes(ctx, tomorrow, loc, cfg.Method)

		tomorrowPrayers, err := prayer.ParseSet(tt.Set, tomorrow, now.Location(), prayer.DefaultNames)
		if err != nil {
			return err
		}
		if len(tomorrowPrayers) > 0 {
			next = &tomorrowPrayers[0]
		}
	}

	if next == nil {
		return fmt.Errorf("could not determine next prayer")
	}

	remaining := prayer.FormatRemaining(prayer.TimeRemaining(*next, now))
	fmt.Printf("%s %s (%s)\n", next.Name, next.Time.Format(goTimeFormat(cfg)), remaining)

	return nil
}
