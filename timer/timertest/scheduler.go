// Package timertest provides a deterministic timer.Scheduler for tests.
package timertest

import (
	"time"

	"Countdown/timer"
)

// ManualScheduler records registrations and only fires them when Tick is
// called.
type ManualScheduler struct {
	regs      []*Registration
	acquired  int
	Intervals []time.Duration
}

// Registration is one call to Every.
type Registration struct {
	fn        func()
	cancelled bool
}

// Cancel marks the registration as released.
func (r *Registration) Cancel() {
	r.cancelled = true
}

// Cancelled reports whether Cancel was called.
func (r *Registration) Cancelled() bool {
	return r.cancelled
}

// NewManualScheduler returns an empty scheduler.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Every implements timer.Scheduler.
func (s *ManualScheduler) Every(interval time.Duration, fn func()) timer.Handle {
	r := &Registration{fn: fn}
	s.regs = append(s.regs, r)
	s.acquired++
	s.Intervals = append(s.Intervals, interval)
	return r
}

// Tick fires every live registration once.
func (s *ManualScheduler) Tick() {
	live := make([]*Registration, 0, len(s.regs))
	for _, r := range s.regs {
		if !r.cancelled {
			live = append(live, r)
		}
	}
	for _, r := range live {
		if !r.cancelled {
			r.fn()
		}
	}
}

// TickN calls Tick n times.
func (s *ManualScheduler) TickN(n int) {
	for i := 0; i < n; i++ {
		s.Tick()
	}
}

// Live returns the number of registrations not yet cancelled.
func (s *ManualScheduler) Live() int {
	n := 0
	for _, r := range s.regs {
		if !r.cancelled {
			n++
		}
	}
	return n
}

// Acquired returns how many registrations were ever made.
func (s *ManualScheduler) Acquired() int {
	return s.acquired
}
