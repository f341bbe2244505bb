package core

// Clock is the abstract monotonic tick source that core code times
// against. Platform-specific implementations wrap a hardware timer; the
// counter wraps at 32 bits, which deadline checks must tolerate.
type Clock interface {
	// Ticks returns the current counter value.
	Ticks() uint32

	// Hz returns the counter rate in ticks per second. Implementations
	// must report their real hardware rate; core rejects a zero rate.
	Hz() uint32
}

// TicksFromMicros converts a microsecond duration to ticks at the given
// clock rate. The intermediate is 64-bit so rates up to 4 GHz cannot
// overflow the multiply.
func TicksFromMicros(hz, us uint32) uint32 {
	return uint32(uint64(us) * uint64(hz) / 1000000)
}

// ticksReached reports whether now has reached or passed deadline,
// treating the difference as signed so deadlines remain correct across
// counter wraparound for spans under half the counter range.
func ticksReached(now, deadline uint32) bool {
	return int32(now-deadline) >= 0
}

// Global singleton used by core code.
var clock Clock

// SetClock is called by target-specific code to register its clock.
func SetClock(c Clock) {
	clock = c
}

// MustClock returns the configured clock or panics if missing.
func MustClock() Clock {
	if clock == nil {
		panic("clock not configured")
	}
	return clock
}
