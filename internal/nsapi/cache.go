package nsapi

import (
	"sync"
	"time"
)

// cacheKey identifies one fetch: a station pair at a minute-granularity
// timestamp. The NS API itself only accepts minute precision, so finer
// keys would never produce distinct responses.
type cacheKey struct {
	origin      string
	destination string
	atUnix      int64
}

func newCacheKey(origin, destination string, at time.Time) cacheKey {
	return cacheKey{
		origin:      origin,
		destination: destination,
		atUnix:      at.Truncate(time.Minute).Unix(),
	}
}

// Cache memoizes parsed trip responses. Entries never expire implicitly;
// the prewarm job clears the cache at the start of each cycle. Clear swaps
// the whole map so concurrent readers observe either the old or the new
// generation, never a half-cleared one.
type Cache struct {
	mu      sync.RWMutex
	entries map[cacheKey][]RawTrip
}

// NewCache creates an empty trip cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[cacheKey][]RawTrip)}
}

func (c *Cache) get(key cacheKey) ([]RawTrip, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	trips, ok := c.entries[key]
	return trips, ok
}

func (c *Cache) put(key cacheKey, trips []RawTrip) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = trips
}

// Clear atomically replaces the cache contents with an empty generation.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[cacheKey][]RawTrip)
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
