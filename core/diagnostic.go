// Diagnostic mode
// Emits a fixed 1 kHz square wave on the output line so the timing
// calibration can be verified against an external frequency counter. The
// intensity byte plays no part here.
package core

const halfPeriodMicros = PeriodMicros / 2

// Diagnostic is the square wave generator used in ModeDiagnostic.
type Diagnostic struct {
	gpio      GPIODriver
	clock     Clock
	out       GPIOPin
	halfTicks uint32
}

// NewDiagnostic configures the output pin and returns the generator.
func NewDiagnostic(gpio GPIODriver, clk Clock, out GPIOPin) (*Diagnostic, error) {
	if gpio == nil || clk == nil {
		return nil, errNoDriver
	}
	if clk.Hz() == 0 {
		return nil, errZeroClock
	}
	if err := gpio.ConfigureOutput(out); err != nil {
		return nil, err
	}
	if err := gpio.SetPin(out, false); err != nil {
		return nil, err
	}
	return &Diagnostic{
		gpio:      gpio,
		clock:     clk,
		out:       out,
		halfTicks: TicksFromMicros(clk.Hz(), halfPeriodMicros),
	}, nil
}

// Run emits the square wave until power-off.
func (d *Diagnostic) Run() {
	for {
		d.halfCycle(true)
		d.halfCycle(false)
	}
}

// RunCycles emits n full periods and leaves the output deasserted.
func (d *Diagnostic) RunCycles(n int) {
	for i := 0; i < n; i++ {
		d.halfCycle(true)
		d.halfCycle(false)
	}
}

func (d *Diagnostic) halfCycle(level bool) {
	_ = d.gpio.SetPin(d.out, level)
	until := d.clock.Ticks() + d.halfTicks
	for !ticksReached(d.clock.Ticks(), until) {
	}
}
