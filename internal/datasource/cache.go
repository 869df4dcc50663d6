package datasource

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// Cache keys for the per-source snapshots.
const (
	CacheKeyGames   = "games"
	CacheKeyOdds    = "odds"
	CacheKeyWeather = "weather"
	CacheKeyTrends  = "trends"
)

// CacheTTLs holds the per-source expiry durations.
type CacheTTLs struct {
	Games   time.Duration
	Odds    time.Duration
	Weather time.Duration
	Trends  time.Duration
}

// DefaultCacheTTLs returns the stock TTLs. Odds expire faster than the
// rest because prices move between runs.
func DefaultCacheTTLs() CacheTTLs {
	return CacheTTLs{
		Games:   5 * time.Minute,
		Odds:    2 * time.Minute,
		Weather: 5 * time.Minute,
		Trends:  5 * time.Minute,
	}
}

// SourceCache is a TTL cache for fetched source snapshots. Each entry
// carries its own expiry; a hit within the TTL returns the stored
// value without touching the source again.
type SourceCache struct {
	store *gocache.Cache
	ttls  CacheTTLs
	now   func() time.Time
}

// NewSourceCache creates a cache with the given TTL configuration.
func NewSourceCache(ttls CacheTTLs) *SourceCache {
	return &SourceCache{
		store: gocache.New(gocache.NoExpiration, 10*time.Minute),
		ttls:  ttls,
		now:   time.Now,
	}
}

type cacheEntry struct {
	value     any
	expiresAt time.Time
}

// Get returns the cached value for key if it is still valid.
func (sc *SourceCache) Get(key string) (any, bool) {
	raw, ok := sc.store.Get(key)
	if !ok {
		return nil, false
	}
	entry := raw.(cacheEntry)
	if sc.now().After(entry.expiresAt) {
		sc.store.Delete(key)
		return nil, false
	}
	return entry.value, true
}

// Set stores value under key with the TTL configured for that key.
func (sc *SourceCache) Set(key string, value any) {
	sc.store.Set(key, cacheEntry{
		value:     value,
		expiresAt: sc.now().Add(sc.ttlFor(key)),
	}, gocache.NoExpiration)
}

// Invalidate drops a single key.
func (sc *SourceCache) Invalidate(key string) {
	sc.store.Delete(key)
}

// Flush drops every cached snapshot.
func (sc *SourceCache) Flush() {
	sc.store.Flush()
}

func (sc *SourceCache) ttlFor(key string) time.Duration {
	switch key {
	case CacheKeyGames:
		return sc.ttls.Games
	case CacheKeyOdds:
		return sc.ttls.Odds
	case CacheKeyWeather:
		return sc.ttls.Weather
	case CacheKeyTrends:
		return sc.ttls.Trends
	default:
		return time.Minute
	}
}
