// Package schedule orchestrates the tiered lookup of prayer times:
// cache, then the remote provider, then the local astronomical engine,
// then a crude estimator. The daily path never fails; the worst
// outcome is degraded-precision times, tagged with their origin.
package schedule

import (
	"context"
	"encoding/json"
	"time"

	"github.com/asksunna/salat/internal/api"
	"github.com/asksunna/salat/internal/astro"
	"github.com/asksunna/salat/internal/cache"
	"github.com/asksunna/salat/internal/estimate"
	"github.com/asksunna/salat/internal/geo"
	"github.com/asksunna/salat/internal/hijri"
	"github.com/asksunna/salat/internal/location"
	"github.com/asksunna/salat/internal/method"
	"github.com/asksunna/salat/internal/prayer"
	"github.com/rs/zerolog/log"
)

// Source identifies which tier produced a result.
type Source int

const (
	// SourceRemote: the Al Adhan API (directly or via cache).
	SourceRemote Source = iota
	// SourceComputed: the local astronomical engine.
	SourceComputed
	// SourceEstimated: the crude seasonal heuristic.
	SourceEstimated
)

// String returns the tier name for logs and JSON output.
func (s Source) String() string {
	switch s {
	case SourceRemote:
		return "remote"
	case SourceComputed:
		return "computed"
	case SourceEstimated:
		return "estimated"
	default:
		return "unknown"
	}
}

// Timings is a resolved time set plus its provenance.
type Timings struct {
	Set    prayer.TimeSet
	Source Source
	// Degraded is set when the engine had to clamp at this latitude and
	// season; the times are well-formed but not astronomically exact.
	Degraded bool
}

// Service resolves prayer times through the fallback tiers.
type Service struct {
	client    *api.Client
	cache     *cache.Cache
	converter hijri.Converter
}

// New creates a Service. The cache may be nil to disable caching
// entirely; the converter may be nil to use the built-in table.
func New(client *api.Client, c *cache.Cache, converter hijri.Converter) *Service {
	if converter == nil {
		converter = hijri.TableConverter{}
	}
	return &Service{client: client, cache: c, converter: converter}
}

// PrayerTimes resolves the time set for one date. It never fails:
// remote-tier errors degrade to the astronomical engine, and invalid
// coordinates degrade further to the estimator.
//
// Engine and estimator output is never written to the cache, so a
// fallback result cannot mask a later-successful remote fetch.
func (s *Service) PrayerTimes(ctx context.Context, date time.Time, loc location.Location, methodID int) Timings {
	key := cache.DailyKey(date, loc, methodID)

	if s.cache != nil {
		if raw, ok := s.cache.Get(key, cache.DailyTTL); ok {
			var set prayer.TimeSet
			if err := json.Unmarshal(raw, &set); err == nil && set.Complete() {
				return Timings{Set: set, Source: SourceRemote}
			}
		}
	}

	resp, err := s.client.FetchTimings(ctx, date, loc, methodID)
	if err == nil {
		set := resp.Data.Timings.TimeSet()
		if set.Complete() {
			if s.cache != nil {
				if raw, mErr := json.Marshal(set); mErr == nil {
					s.cache.Put(key, raw)
				}
			}
			return Timings{Set: set, Source: SourceRemote}
		}
		log.Warn().Str("date", date.Format("2006-01-02")).Msg("remote timings incomplete; falling back")
	} else {
		log.Warn().Err(err).Str("date", date.Format("2006-01-02")).Msg("remote timings failed; falling back")
	}

	return s.computeLocal(date, loc, methodID)
}

// computeLocal runs the engine tier, descending to the estimator when
// the engine cannot run.
func (s *Service) computeLocal(date time.Time, loc location.Location, methodID int) Timings {
	lat, lng := loc.Latitude, loc.Longitude
	if loc.Kind == location.KindAddress {
		// The engine needs coordinates. An address-only query that
		// missed the remote tier degrades to the default location.
		lat, lng = geo.Default.Latitude, geo.Default.Longitude
		log.Info().Str("address", loc.Text).Msg("no coordinates for address; computing for default location")
	}

	res, ok := astro.Compute(date, lat, lng, method.Resolve(methodID))
	if !ok {
		log.Warn().Float64("lat", lat).Float64("lng", lng).Msg("engine rejected coordinates; using estimator")
		return Timings{Set: estimate.Times(date, lat), Source: SourceEstimated}
	}

	if res.Clamped {
		log.Debug().Float64("lat", lat).Msg("hour angle clamped; times are degenerate at this latitude")
	}

	return Timings{Set: res.Times, Source: SourceComputed, Degraded: res.Clamped}
}
