// Package timer contains the countdown domain logic: the Countdown state
// machine, the Scheduler contract it ticks through, and formatting/parsing
// helpers for durations.
//
// Maintenance notes:
//   - Countdown has no lock. Every method, including the tick callback it
//     registers, must run on one goroutine. The application achieves this by
//     routing UI commands and scheduler ticks through a single command loop
//     (see TickerScheduler and Poster).
//   - The schedule handle is only touched by acquire and release. Any new
//     transition out of StateRunning must call release, otherwise a second
//     registration would double the decrement rate.
package timer

import (
	"log"
)

// Countdown is a single countdown timer.
type Countdown struct {
	sched Scheduler

	state      State
	duration   int
	configured bool
	left       int
	handle     Handle
	closed     bool
}

// NewCountdown creates an idle countdown with no duration.
func NewCountdown(s Scheduler) *Countdown {
	return &Countdown{
		sched: s,
		state: StateIdle,
	}
}

func (c *Countdown) changeState(newState State) {
	if c.state != newState {
		log.Printf("countdown: %v -> %v (%ds left)", c.state, newState, c.left)
	}
	c.state = newState
}

func (c *Countdown) acquire() {
	if c.handle != nil {
		return
	}
	c.handle = c.sched.Every(TickInterval, c.tick)
}

func (c *Countdown) release() {
	if c.handle == nil {
		return
	}
	c.handle.Cancel()
	c.handle = nil
}

// SetDuration commits a new duration. Anything but a positive whole number
// of seconds is ignored.
func (c *Countdown) SetDuration(in Input) {
	if c.closed {
		return
	}
	sec, ok := in.positive()
	if !ok {
		return
	}

	c.release()
	c.duration = sec
	c.configured = true
	c.left = sec
	c.changeState(StateIdle)
}

// Start begins or resumes the countdown.
func (c *Countdown) Start() {
	if c.closed || c.left <= 0 || c.state == StateRunning {
		return
	}
	c.changeState(StateRunning)
	c.acquire()
}

// Pause freezes a running countdown.
func (c *Countdown) Pause() {
	if c.closed || c.state != StateRunning {
		return
	}
	c.release()
	c.changeState(StatePaused)
}

// Reset puts the countdown back to its committed duration.
func (c *Countdown) Reset() {
	if c.closed {
		return
	}
	c.release()
	c.left = 0
	if c.configured {
		c.left = c.duration
	}
	c.changeState(StateIdle)
}

// Close releases the live schedule, if any, and turns every later command
// into a no-op. A running countdown is left paused.
func (c *Countdown) Close() {
	if c.closed {
		return
	}
	c.release()
	if c.state == StateRunning {
		c.changeState(StatePaused)
	}
	c.closed = true
}

// tick processes one second of time passing.
func (c *Countdown) tick() {
	if c.state != StateRunning {
		return
	}
	if c.left <= 1 {
		c.left = 0
		c.release()
		c.changeState(StateExpired)
		return
	}
	c.left--
}

// State returns the current phase.
func (c *Countdown) State() State {
	return c.state
}

// TimeLeft returns the remaining seconds.
func (c *Countdown) TimeLeft() int {
	return c.left
}

// Duration returns the committed duration and whether one was ever set.
func (c *Countdown) Duration() (int, bool) {
	return c.duration, c.configured
}

// Resumable reports whether the start control should offer "Resume".
func (c *Countdown) Resumable() bool {
	return c.state == StatePaused
}

// FormatTimeLeft renders the remaining time as "mm : ss".
func (c *Countdown) FormatTimeLeft() string {
	return FormatTime(c.left)
}

// Snapshot is a copy of the countdown fields the UI needs to render.
type Snapshot struct {
	State      State
	TimeLeft   int
	Duration   int
	Configured bool
	Display    string
	Resumable  bool
}

// Snapshot returns the current view of the countdown.
func (c *Countdown) Snapshot() Snapshot {
	return Snapshot{
		State:      c.state,
		TimeLeft:   c.left,
		Duration:   c.duration,
		Configured: c.configured,
		Display:    c.FormatTimeLeft(),
		Resumable:  c.Resumable(),
	}
}
