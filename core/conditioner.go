// Signal conditioner
// Watches the PWM input line and guarantees a minimum duty cycle on the
// PWM output line. While the input toggles, its level is mirrored onto
// the output. When the input sits at one level past the timeout window, a
// short synthetic pulse at the calibrated duty cycle keeps the beam
// visible. This covers idle, zero and disconnected inputs alike.
package core

import "errors"

// DefaultTimeoutMicros bounds how long either phase waits for an input
// transition before emitting a synthetic pulse. Two reference periods
// give a stalled controller room to resume before the beam drops.
const DefaultTimeoutMicros = 2000

// phase is the conditioner state: which input transition is awaited.
type phase uint8

const (
	watchingLow  phase = iota // input low, waiting for it to rise
	watchingHigh              // input high, waiting for it to fall
)

// Event reports what a single poll step did.
type Event uint8

const (
	EventNone           Event = iota
	EventMirrorRise           // input rose; output asserted
	EventMirrorFall           // input fell; output deasserted
	EventSyntheticPulse       // timeout expired; one pulse emitted
)

// Config carries the conditioner wiring and loop options.
type Config struct {
	In  GPIOPin // PWM input line
	Out GPIOPin // PWM output line

	// Timing is the synthetic pulse shape from LoadCalibration.
	Timing PulseTiming

	// TimeoutMicros is the timeout window length. Zero selects
	// DefaultTimeoutMicros.
	TimeoutMicros uint32

	// LimitPulseWhileActive bounds the asserted phase with the timeout
	// as well, so a stuck-high input is also reduced to synthetic
	// pulses. Leave false for controllers that legitimately hold the
	// line high during long engraves.
	LimitPulseWhileActive bool
}

// Conditioner is the two-phase watch/timeout/pulse state machine. It owns
// the output line exclusively; the input is sampled as a raw level, with
// no debouncing or edge latch.
type Conditioner struct {
	gpio  GPIODriver
	clock Clock

	in        GPIOPin
	out       GPIOPin
	timing    PulseTiming
	timeout   uint32 // timeout window in ticks
	limitHigh bool

	phase    phase
	deadline uint32
}

var (
	errNoDriver  = errors.New("gpio driver and clock are required")
	errNoTiming  = errors.New("pulse timing not loaded")
	errSamePin   = errors.New("input and output must be distinct pins")
	errZeroClock = errors.New("clock rate not configured")
)

// New configures the pins and returns a conditioner ready to run. The
// input is pulled down, so a floating line behaves as permanently idle
// and keeps the synthetic pulses coming. The output starts deasserted.
func New(gpio GPIODriver, clk Clock, cfg Config) (*Conditioner, error) {
	if gpio == nil || clk == nil {
		return nil, errNoDriver
	}
	if clk.Hz() == 0 {
		return nil, errZeroClock
	}
	if cfg.Timing.HighTicks == 0 && cfg.Timing.LowTicks == 0 {
		return nil, errNoTiming
	}
	if cfg.In == cfg.Out {
		return nil, errSamePin
	}

	timeoutMicros := cfg.TimeoutMicros
	if timeoutMicros == 0 {
		timeoutMicros = DefaultTimeoutMicros
	}

	if err := gpio.ConfigureInputPullDown(cfg.In); err != nil {
		return nil, err
	}
	if err := gpio.ConfigureOutput(cfg.Out); err != nil {
		return nil, err
	}
	if err := gpio.SetPin(cfg.Out, false); err != nil {
		return nil, err
	}

	c := &Conditioner{
		gpio:      gpio,
		clock:     clk,
		in:        cfg.In,
		out:       cfg.Out,
		timing:    cfg.Timing,
		timeout:   TicksFromMicros(clk.Hz(), timeoutMicros),
		limitHigh: cfg.LimitPulseWhileActive,
		phase:     watchingLow,
	}
	c.arm()
	return c, nil
}

// Run executes the loop forever. There is no terminal state; the device
// stops at power-off.
func (c *Conditioner) Run() {
	for {
		c.Step()
	}
}

// Step samples the clock and the input once and advances the state
// machine by one poll iteration. Targets and tests share this loop body.
func (c *Conditioner) Step() Event {
	now := c.clock.Ticks()
	level := c.gpio.ReadPin(c.in)

	switch c.phase {
	case watchingLow:
		if level {
			// The pulse started; mirror it right away.
			_ = c.gpio.SetPin(c.out, true)
			c.phase = watchingHigh
			c.arm()
			return EventMirrorRise
		}
		if ticksReached(now, c.deadline) {
			c.emitPulse()
			c.arm()
			return EventSyntheticPulse
		}

	case watchingHigh:
		if !level {
			// The pulse stopped.
			_ = c.gpio.SetPin(c.out, false)
			c.phase = watchingLow
			c.arm()
			return EventMirrorFall
		}
		if c.limitHigh && ticksReached(now, c.deadline) {
			c.emitPulse()
			c.arm()
			return EventSyntheticPulse
		}
	}
	return EventNone
}

// arm restarts the timeout window from the current time.
func (c *Conditioner) arm() {
	c.deadline = c.clock.Ticks() + c.timeout
}

// emitPulse drives one synthetic pulse at the calibrated duty cycle. The
// input is not sampled while the pulse is in flight; the whole pulse
// lasts one reference period, well below expected input pulse widths.
func (c *Conditioner) emitPulse() {
	_ = c.gpio.SetPin(c.out, true)
	c.spin(c.timing.HighTicks)
	_ = c.gpio.SetPin(c.out, false)
	c.spin(c.timing.LowTicks)
}

// spin busy-waits for the given number of ticks.
func (c *Conditioner) spin(ticks uint32) {
	until := c.clock.Ticks() + ticks
	for !ticksReached(c.clock.Ticks(), until) {
	}
}
