package core

import "fmt"

// Mode selects the firmware entry path. The two modes are mutually
// exclusive; the target decides once at startup and never switches.
type Mode uint8

const (
	// ModeCondition runs the input watch / minimum duty cycle loop.
	ModeCondition Mode = iota

	// ModeDiagnostic emits a fixed 1 kHz square wave on the output line
	// for checking the timing calibration against a frequency counter.
	ModeDiagnostic
)

// ParseMode maps a configuration string onto a Mode.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "condition":
		return ModeCondition, nil
	case "diagnostic":
		return ModeDiagnostic, nil
	}
	return ModeCondition, fmt.Errorf("unknown mode %q", s)
}

func (m Mode) String() string {
	switch m {
	case ModeCondition:
		return "condition"
	case ModeDiagnostic:
		return "diagnostic"
	}
	return "unknown"
}
