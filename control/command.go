// Package control defines lightweight command messages used by the UI and
// the tick scheduler to request actions from the application command loop.
// The command loop is the only goroutine that touches the countdown, so no
// locking is needed around it.
package control

import "Countdown/timer"

// CommandType enumerates supported command operations.
type CommandType int

const (
	CmdSet CommandType = iota
	CmdStart
	CmdPause
	CmdReset
	CmdTick
)

func (t CommandType) String() string {
	switch t {
	case CmdSet:
		return "set"
	case CmdStart:
		return "start"
	case CmdPause:
		return "pause"
	case CmdReset:
		return "reset"
	case CmdTick:
		return "tick"
	}
	return "unknown"
}

// Command is the message sent to AppManager.commandLoop. The optional Reply
// channel can be used by the commandLoop to confirm completion back to the
// sender (useful for keeping UI state in sync).
type Command struct {
	Type  CommandType
	Input timer.Input // CmdSet only
	Fire  func()      // CmdTick only
	Reply chan error  // optional reply channel
}
