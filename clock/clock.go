// Package clock provides the single source of "current time" for all
// schedule math.
package clock

import (
	"sync"
	"time"
)

// Clock supplies the current time. It must be monotonic non-decreasing for
// the ledger's accounting invariants to hold.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// System returns a Clock backed by the wall clock.
func System() Clock { return systemClock{} }

// Manual is a hand-driven Clock for tests.
type Manual struct {
	mu sync.RWMutex
	t  time.Time
}

var _ Clock = (*Manual)(nil)

// NewManual creates a Manual clock set to t.
func NewManual(t time.Time) *Manual {
	return &Manual{t: t}
}

// Now implements Clock.
func (m *Manual) Now() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.t
}

// Set moves the clock to t.
func (m *Manual) Set(t time.Time) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.t = t
}

// Advance moves the clock forward by d.
func (m *Manual) Advance(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.t = m.t.Add(d)
}
