package schedule

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/asksunna/salat/internal/api"
	"github.com/asksunna/salat/internal/cache"
	"github.com/asksunna/salat/internal/location"
	"github.com/asksunna/salat/internal/ramadan"
	"github.com/rs/zerolog/log"
)

// RamadanCalendar builds the 30-day calendar for a Gregorian year.
//
// It first tries the remote month-calendar endpoint for the Gregorian
// month(s) Ramadan spans. Anything short of exactly 30 usable days --
// request failure, partial data -- discards the remote result entirely
// and rebuilds day by day through PrayerTimes, which itself degrades
// through the local tiers. Because the daily path cannot fail, the
// rebuild always yields 30 days.
func (s *Service) RamadanCalendar(ctx context.Context, loc location.Location, year, methodID int) ([]ramadan.Day, error) {
	start := s.converter.RamadanStart(year)

	days, err := s.remoteRamadan(ctx, loc, start, methodID)
	if err == nil {
		ramadan.Sort(days)
		if ramadan.Complete(days) {
			return days, nil
		}
		err = fmt.Errorf("remote calendar yielded %d usable days, want 30", len(days))
	}
	log.Warn().Err(err).Int("year", year).Msg("remote ramadan calendar unusable; rebuilding per day")

	return s.perDayRamadan(ctx, loc, start, methodID), nil
}

// remoteRamadan fetches the covering Gregorian month(s) and extracts
// the Ramadan days.
func (s *Service) remoteRamadan(ctx context.Context, loc location.Location, start time.Time, methodID int) ([]ramadan.Day, error) {
	end := start.AddDate(0, 0, 29)

	var data []api.Data

	monthData, err := s.monthCalendar(ctx, loc, start.Year(), int(start.Month()), methodID)
	if err != nil {
		return nil, err
	}
	data = append(data, monthData...)

	// Ramadan may span two Gregorian months (and a year boundary for a
	// December start).
	if end.Month() != start.Month() {
		monthData, err := s.monthCalendar(ctx, loc, end.Year(), int(end.Month()), methodID)
		if err != nil {
			return nil, err
		}
		data = append(data, monthData...)
	}

	return ramadan.FromCalendarData(data), nil
}

// monthCalendar returns one month of daily records, consulting the
// cache with the calendar expiry window.
func (s *Service) monthCalendar(ctx context.Context, loc location.Location, year, month, methodID int) ([]api.Data, error) {
	key := cache.MonthKey(year, month, loc, methodID)

	if s.cache != nil {
		if raw, ok := s.cache.Get(key, cache.CalendarTTL); ok {
			var data []api.Data
			if err := json.Unmarshal(raw, &data); err == nil && len(data) > 0 {
				return data, nil
			}
		}
	}

	resp, err := s.client.FetchCalendar(ctx, year, month, loc, methodID)
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, fmt.Errorf("empty calendar for %d-%02d", year, month)
	}

	if s.cache != nil {
		if raw, err := json.Marshal(resp.Data); err == nil {
			s.cache.Put(key, raw)
		}
	}

	return resp.Data, nil
}

// perDayRamadan rebuilds the calendar one day at a time. The 30
// lookups are independent and read-only, so they run as a batch and
// are awaited together; each writes its own slice slot.
func (s *Service) perDayRamadan(ctx context.Context, loc location.Location, start time.Time, methodID int) []ramadan.Day {
	days := make([]ramadan.Day, 30)

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			date := start.AddDate(0, 0, i)
			t := s.PrayerTimes(ctx, date, loc, methodID)
			days[i] = ramadan.FromTimeSet(i+1, date, t.Set)
		}(i)
	}
	wg.Wait()

	return days
}
