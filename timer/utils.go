package timer

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormatTime converts a number of seconds into a "mm : ss" string.
func FormatTime(sec int) string {
	if sec < 0 {
		sec = 0
	}
	return fmt.Sprintf("%02d : %02d", sec/60, sec%60)
}

// Input is a duration as typed by the user. The zero value means no value
// was entered, which is not the same as an entered zero.
type Input struct {
	value float64
	set   bool
}

// Seconds returns an Input holding n seconds.
func Seconds(n int) Input {
	return Input{value: float64(n), set: true}
}

// ParseInput turns raw entry text into an Input. Plain numbers and "mm:ss"
// are understood; anything else is an unset Input.
func ParseInput(text string) Input {
	text = strings.TrimSpace(text)
	if text == "" {
		return Input{}
	}

	if strings.Contains(text, ":") {
		sec, err := parseMinutesSeconds(text)
		if err != nil {
			return Input{}
		}
		return Seconds(sec)
	}

	v, err := strconv.ParseFloat(text, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return Input{}
	}
	return Input{value: v, set: true}
}

func parseMinutesSeconds(text string) (int, error) {
	parts := strings.Split(text, ":")
	if len(parts) != 2 {
		return 0, fmt.Errorf("invalid time format %q", text)
	}

	min, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || min < 0 {
		return 0, fmt.Errorf("invalid minutes %q", parts[0])
	}
	sec, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil || sec < 0 || sec >= 60 {
		return 0, fmt.Errorf("invalid seconds %q (must be 0-59)", parts[1])
	}
	return min*60 + sec, nil
}

// IsSet reports whether any value was entered.
func (in Input) IsSet() bool {
	return in.set
}

// positive returns the input as whole seconds when it is a positive integer.
func (in Input) positive() (int, bool) {
	if !in.set || in.value <= 0 || in.value != math.Trunc(in.value) {
		return 0, false
	}
	if in.value > math.MaxInt32 {
		return 0, false
	}
	return int(in.value), true
}

func (in Input) String() string {
	if !in.set {
		return "<unset>"
	}
	return strconv.FormatFloat(in.value, 'f', -1, 64)
}
