package store

import (
	"testing"
	"time"
)

// fakeClock is a manually advanced clock for expiry tests.
type fakeClock struct {
	t time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{t: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	return c.t
}

func (c *fakeClock) Advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func TestFresh(t *testing.T) {
	base := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	ttl := 300 * time.Second

	tests := []struct {
		name    string
		elapsed time.Duration
		want    bool
	}{
		{"just_created", 0, true},
		{"one_second_before_ttl", 299 * time.Second, true},
		{"exactly_at_ttl", 300 * time.Second, false},
		{"one_second_after_ttl", 301 * time.Second, false},
		{"far_past_ttl", 24 * time.Hour, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := fresh(base, ttl, base.Add(tt.elapsed)); got != tt.want {
				t.Errorf("fresh(+%v) = %v, want %v", tt.elapsed, got, tt.want)
			}
		})
	}
}
