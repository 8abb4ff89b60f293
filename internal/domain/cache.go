package domain

import "time"

// CacheInfo describes one on-disk cache entry for maintenance commands.
type CacheInfo struct {
	Key     string
	Size    int64
	ModTime time.Time
}

// Fresh reports whether the entry is still inside the TTL window.
// A non-positive TTL means entries never expire.
func (c CacheInfo) Fresh(ttl time.Duration, now time.Time) bool {
	if ttl <= 0 {
		return true
	}
	return now.Sub(c.ModTime) < ttl
}
