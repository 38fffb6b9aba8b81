package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/asksunna/salat/internal/api"
	"github.com/asksunna/salat/internal/cache"
	"github.com/asksunna/salat/internal/config"
	"github.com/asksunna/salat/internal/geo"
	"github.com/asksunna/salat/internal/location"
	"github.com/asksunna/salat/internal/schedule"
	"github.com/asksunna/salat/internal/storage"
)

// newService builds the orchestrator with its cache. A store that
// cannot be opened degrades to memory-only caching with a warning; it
// never blocks the command. The returned closer releases the store.
func newService(cfg *config.Config) (*schedule.Service, func()) {
	var store cache.Store
	closer := func() {}

	if !cfg.Cache.Disabled {
		path := cfg.Cache.Path
		if path == "" {
			var err error
			path, err = storage.DefaultPath()
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: persistent cache disabled: %v\n", err)
			}
		}
		if path != "" {
			st, err := storage.Open(path)
			if err != nil {
				fmt.Fprintf(os.Stderr, "warning: persistent cache disabled: %v\n", err)
			} else {
				store = st
				closer = func() { _ = st.Close() }
			}
		}
	}

	svc := schedule.New(api.NewClient(), cache.New(store), nil)
	return svc, closer
}

// resolveLocation determines the effective query location.
// Priority: address > coordinates > IP auto-detection, with the Mecca
// default substituted when detection fails.
func resolveLocation(ctx context.Context, cfg *config.Config) location.Location {
	if cfg.Location.Address != "" {
		return location.Address(cfg.Location.Address)
	}

	if cfg.Location.Latitude != 0 || cfg.Location.Longitude != 0 {
		loc := location.Coordinates(cfg.Location.Latitude, cfg.Location.Longitude)
		if err := loc.Validate(); err != nil {
			fmt.Fprintf(os.Stderr, "warning: %v; using %s\n", err, geo.Default.City)
			return location.Coordinates(geo.Default.Latitude, geo.Default.Longitude)
		}
		return loc
	}

	detected, notice := geo.DetectOrDefault(ctx)
	if notice != "" {
		fmt.Fprintf(os.Stderr, "note: %s\n", notice)
	}
	return location.Coordinates(detected.Latitude, detected.Longitude)
}

// goTimeFormat maps the config time format to a Go layout string.
func goTimeFormat(cfg *config.Config) string {
	if cfg.TimeFormat == "12h" {
		return "3:04 PM"
	}
	return "15:04"
}
