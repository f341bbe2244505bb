//go:build linux && !tinygo

package main

import (
	"time"

	"laserdot/core"
)

// monoClock implements core.Clock on the Go monotonic clock with
// microsecond ticks, matching the 1 MHz rate of the MCU targets. Wrap at
// 2^32 µs (~71 minutes) is handled by core's tick comparisons.
type monoClock struct {
	start time.Time
}

var _ core.Clock = (*monoClock)(nil)

func newMonoClock() *monoClock {
	return &monoClock{start: time.Now()}
}

func (c *monoClock) Ticks() uint32 {
	return uint32(time.Since(c.start).Microseconds())
}

func (c *monoClock) Hz() uint32 {
	return 1000000
}
