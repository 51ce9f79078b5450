// Package kill tracks the accrual window that decides whether consecutive
// kill operations append to or replace the clipboard.
//
// The window is a logical one-shot timestamp, not a running timer: each
// recorded kill stores the current instant, and a later kill checks
// synchronously whether it falls inside the window. There is no background
// goroutine and nothing to cancel; an expired window is simply inactive.
package kill

import (
	"sync"
	"time"
)

// DefaultWindow is the accrual window applied when none is configured.
const DefaultWindow = 2500 * time.Millisecond

// Accrual tracks the instant of the most recent kill.
// Safe for concurrent use, though callers are expected to serialize the
// check-then-act pair (Active followed by Record) on one goroutine.
type Accrual struct {
	mu     sync.Mutex
	window time.Duration
	last   time.Time
	armed  bool
	clock  func() time.Time
}

// Option configures an Accrual.
type Option func(*Accrual)

// WithWindow sets the accrual window. Non-positive values are ignored.
func WithWindow(d time.Duration) Option {
	return func(a *Accrual) {
		if d > 0 {
			a.window = d
		}
	}
}

// WithClock injects a clock, for tests.
func WithClock(clock func() time.Time) Option {
	return func(a *Accrual) {
		if clock != nil {
			a.clock = clock
		}
	}
}

// NewAccrual creates an accrual tracker with an inactive window.
func NewAccrual(opts ...Option) *Accrual {
	a := &Accrual{
		window: DefaultWindow,
		clock:  time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Active returns true if a kill was recorded less than the window ago.
func (a *Accrual) Active() bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	if !a.armed {
		return false
	}
	return a.clock().Sub(a.last) < a.window
}

// Record marks a completed kill, re-arming the window from this instant.
// Each kill extends the window rather than letting a fixed schedule expire.
func (a *Accrual) Record() {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.last = a.clock()
	a.armed = true
}

// Window returns the configured accrual window.
func (a *Accrual) Window() time.Duration {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.window
}
