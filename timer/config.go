package timer

import (
	"image/color"
	"time"
)

// State defines the phase a countdown is in.
type State int

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateExpired
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateExpired:
		return "expired"
	}
	return "unknown"
}

// TickInterval is the cadence at which a running countdown is decremented.
const TickInterval = time.Second

// UI constants
const (
	FontSizeTitle float32 = 24.0

	// Dimensions
	ButtonGap        = 8
	CornerRadius     = 10.0
	DurationInputMin = 220
)

var (
	// BackgroundColor is the base background color of the timer box.
	BackgroundColor = color.NRGBA{R: 0xfe, G: 0xe2, B: 0xe2, A: 0xff}
	// DarkBackgroundColor replaces BackgroundColor when the dark variant is active.
	DarkBackgroundColor = color.NRGBA{R: 0x1f, G: 0x29, B: 0x37, A: 0xff}
)
