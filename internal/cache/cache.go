// Package cache memoizes provider responses in two tiers: an
// in-process map checked first, then a persistent key-value store that
// survives restarts. Expiry is enforced lazily on read against two
// windows -- 12 hours for daily timings, 7 days for month calendars --
// and an expired persistent entry is deleted at read time.
//
// A missing or failing store is never an error, only a miss: the
// caller's worst case is a refetch.
package cache

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/asksunna/salat/internal/location"
	"github.com/rs/zerolog/log"
)

// Expiry windows per payload class.
const (
	DailyTTL    = 12 * time.Hour
	CalendarTTL = 7 * 24 * time.Hour
)

// Store is the persistent tier. Implementations must be safe for
// concurrent use by a calendar build's fetch batch.
type Store interface {
	Get(key string) (value string, ok bool, err error)
	Set(key, value string) error
	Delete(key string) error
}

// envelope is the persisted JSON shape: payload plus write time.
type envelope struct {
	Data      json.RawMessage `json:"data"`
	Timestamp int64           `json:"timestamp"` // unix milliseconds
}

type memEntry struct {
	data    []byte
	written time.Time
}

// Cache is the two-tier cache. Construct with New; the zero value is
// not usable.
type Cache struct {
	mu    sync.RWMutex
	mem   map[string]memEntry
	store Store // may be nil: memory-only operation

	// now is the clock used for expiry checks; replaceable in tests.
	now func() time.Time
}

// New creates a cache over the given persistent store. A nil store
// degrades to memory-only caching.
func New(store Store) *Cache {
	return &Cache{
		mem:   make(map[string]memEntry),
		store: store,
		now:   time.Now,
	}
}

// DailyKey builds the cache key for a single day's timings.
func DailyKey(date time.Time, loc location.Location, methodID int) string {
	return fmt.Sprintf("prayer_%s_%s_%d", date.Format("02-01-2006"), loc.CacheKey(), methodID)
}

// MonthKey builds the cache key for a month calendar.
func MonthKey(year, month int, loc location.Location, methodID int) string {
	return fmt.Sprintf("calendar_%d_%d_%s_%d", year, month, loc.CacheKey(), methodID)
}

// Get returns the cached payload for key if it is younger than ttl.
// A persistent-tier hit is promoted back into the memory tier; an
// expired persistent entry is removed.
func (c *Cache) Get(key string, ttl time.Duration) ([]byte, bool) {
	now := c.now()

	c.mu.RLock()
	entry, ok := c.mem[key]
	c.mu.RUnlock()
	if ok {
		if now.Sub(entry.written) <= ttl {
			return entry.data, true
		}
		c.mu.Lock()
		delete(c.mem, key)
		c.mu.Unlock()
	}

	if c.store == nil {
		return nil, false
	}

	raw, ok, err := c.store.Get(key)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache store read failed; treating as miss")
		return nil, false
	}
	if !ok {
		return nil, false
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("corrupt cache entry; discarding")
		_ = c.store.Delete(key)
		return nil, false
	}

	written := time.UnixMilli(env.Timestamp)
	if now.Sub(written) > ttl {
		// Expired entries read as absent and are cleaned up here rather
		// than by a background sweep.
		if err := c.store.Delete(key); err != nil {
			log.Warn().Err(err).Str("key", key).Msg("failed to delete expired cache entry")
		}
		return nil, false
	}

	c.mu.Lock()
	c.mem[key] = memEntry{data: env.Data, written: written}
	c.mu.Unlock()

	return env.Data, true
}

// Put stores the payload under key in both tiers. Persistent-tier
// failures are logged and swallowed.
func (c *Cache) Put(key string, payload []byte) {
	now := c.now()

	c.mu.Lock()
	c.mem[key] = memEntry{data: payload, written: now}
	c.mu.Unlock()

	if c.store == nil {
		return
	}

	env := envelope{Data: payload, Timestamp: now.UnixMilli()}
	raw, err := json.Marshal(env)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("failed to marshal cache envelope")
		return
	}
	if err := c.store.Set(key, string(raw)); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("cache store write failed")
	}
}
