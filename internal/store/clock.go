package store

import "time"

// Clock supplies the current time. Stores take it as a dependency so expiry
// can be tested without sleeping.
type Clock func() time.Time

// fresh reports whether an entry created at createdAt is still live at now.
// Expiry is lazy: callers treat stale entries as absent but never delete
// them, so a store may hold stale entries until the next write for that key.
func fresh(createdAt time.Time, ttl time.Duration, now time.Time) bool {
	return now.Sub(createdAt) < ttl
}
