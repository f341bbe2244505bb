//go:build rp2040

package main

import "laserdot/core"

// Pin assignment:
//
//	GP0   in   PWM from the controller
//	GP1   out  PWM to the laser module
//
// All other pins stay unconnected.
const (
	pinPWMIn  = core.GPIOPin(0)
	pinPWMOut = core.GPIOPin(1)
)
