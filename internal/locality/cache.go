// Package locality implements the (department, team) → last placement
// cache that gives the allocator O(1) anchor lookups.
package locality

import (
	"github.com/puzpuzpuz/xsync/v4"

	"github.com/emailanant84-innovation/Hackathon-Seat-Allocation/types"
)

// Entry records where a (department, team) pair was last placed.
type Entry struct {
	// Key is the zone of the last placement.
	Key types.ZoneKey

	// SeatID is the last seat chosen for the pair.
	SeatID string
}

// Cache is a read-mostly concurrent map keyed by (department, team).
// Entries are overwritten on every successful placement for the same pair;
// nothing is ever evicted. The allocator is the only writer, but read-only
// snapshots may be taken concurrently by the presentation layer.
type Cache struct {
	entries *xsync.Map[string, Entry]
}

// New creates an empty cache.
func New() *Cache {
	return &Cache{entries: xsync.NewMap[string, Entry]()}
}

func cacheKey(department, team string) string {
	return department + "/" + team
}

// Lookup returns the last placement for a (department, team) pair.
func (c *Cache) Lookup(department, team string) (Entry, bool) {
	return c.entries.Load(cacheKey(department, team))
}

// Remember overwrites the placement entry for a (department, team) pair.
func (c *Cache) Remember(department, team string, key types.ZoneKey, seatID string) {
	c.entries.Store(cacheKey(department, team), Entry{Key: key, SeatID: seatID})
}

// Len returns the number of cached pairs.
func (c *Cache) Len() int {
	return c.entries.Size()
}
