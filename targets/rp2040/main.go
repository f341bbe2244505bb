//go:build rp2040

// laserdot firmware for RP2040 boards.
//
// Keeps a minimum duty cycle on a laser module's PWM line so the beam
// stays faintly visible for axis alignment even when the controller sends
// no pulses. GP0 watches the controller's PWM, GP1 drives the module; the
// intensity byte in the last flash sector sets the synthetic pulse duty
// cycle (0xFF means unset, 0.5% is substituted).
package main

import (
	"laserdot/core"
)

func main() {
	core.SetGPIODriver(NewRPGPIODriver())
	core.SetClock(hwClock{})

	timing, err := core.LoadCalibration(flashCell{}, core.MustClock())
	if err != nil {
		haltLow()
	}

	mode := GetMode()
	if mode.Mode == core.ModeDiagnostic {
		// Must produce exactly a 1 kHz signal on the output pin.
		diag, err := core.NewDiagnostic(core.MustGPIO(), core.MustClock(), pinPWMOut)
		if err != nil {
			haltLow()
		}
		diag.Run()
	}

	cond, err := core.New(core.MustGPIO(), core.MustClock(), core.Config{
		In:                    pinPWMIn,
		Out:                   pinPWMOut,
		Timing:                timing,
		LimitPulseWhileActive: mode.LimitPulseWhileActive,
	})
	if err != nil {
		haltLow()
	}
	cond.Run()
}

// haltLow parks the output deasserted forever. The device has no channel
// to report a fault on.
func haltLow() {
	gpio := core.MustGPIO()
	_ = gpio.ConfigureOutput(pinPWMOut)
	_ = gpio.SetPin(pinPWMOut, false)
	for {
	}
}
