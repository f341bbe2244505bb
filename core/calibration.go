// Calibration support
// Converts the persisted intensity byte into the pulse timing pair used by
// the conditioner loop.
package core

import "errors"

// Calibration constants. The intensity byte is the duty cycle of the
// synthetic pulse in thousandths of the 1 ms reference period, so the
// usable range tops out at 25%.
const (
	IntensityUnset   = 0xff // cell never written; substitute the default
	DefaultIntensity = 5    // 0.5% duty cycle
	IntensityMax     = 250  // 25% duty cycle
	PeriodMicros     = 1000 // reference period: 1 ms
)

// CalibrationCell is the persistent one-byte intensity setting. It is
// written out-of-band by a programming tool; the firmware only reads it,
// once, at startup.
type CalibrationCell interface {
	ReadIntensity() (uint8, error)
}

// PulseTiming is the derived timing pair for one synthetic pulse.
// HighTicks+LowTicks always equals the reference period in ticks.
type PulseTiming struct {
	HighTicks uint32 // asserted portion
	LowTicks  uint32 // deasserted portion
}

var errNoClockRate = errors.New("calibration: clock rate not configured")

// LoadCalibration reads the intensity byte and derives the pulse timing
// pair for the given clock rate. An unreadable or unset cell falls back
// to the default intensity. Out-of-range values are not rejected; the
// byte can never exceed the 1000-unit period, so the arithmetic stays
// defined (just with degraded duty fidelity above IntensityMax).
func LoadCalibration(cell CalibrationCell, clk Clock) (PulseTiming, error) {
	hz := clk.Hz()
	if hz == 0 {
		return PulseTiming{}, errNoClockRate
	}

	intensity, err := cell.ReadIntensity()
	if err != nil || intensity == IntensityUnset {
		intensity = DefaultIntensity
	}

	period := TicksFromMicros(hz, PeriodMicros)
	high := TicksFromMicros(hz, uint32(intensity))
	return PulseTiming{HighTicks: high, LowTicks: period - high}, nil
}
