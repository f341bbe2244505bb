//go:build rp2040

package main

import "laserdot/core"

// ModeConfig determines which entry path the firmware takes.
type ModeConfig struct {
	// Mode is core.ModeCondition for normal operation or
	// core.ModeDiagnostic for the 1 kHz calibration square wave. The two
	// are mutually exclusive.
	Mode core.Mode

	// LimitPulseWhileActive also bounds the asserted phase with the
	// timeout, reducing a stuck-high input to synthetic pulses. Leave
	// false for controllers that hold the line high during long engraves.
	LimitPulseWhileActive bool
}

// GetMode returns the current mode configuration
// This is fixed at compile time; rebuild and reflash to switch modes.
func GetMode() ModeConfig {
	return ModeConfig{
		Mode: core.ModeCondition,
	}
}
