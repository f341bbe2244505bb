//go:build rp2040

package main

import (
	"runtime/volatile"
	"unsafe"
)

// RP2040 Timer peripheral memory map
const (
	timerBase     = 0x40054000
	timerTIMERAWL = timerBase + 0x0C // Raw timer low word
)

var timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))

// clockHz is the RP2040 hardware timer rate: a 64-bit microsecond counter
// at 1 MHz. Passed to core explicitly; core refuses a zero rate.
const clockHz = 1000000

// hwClock implements core.Clock on the low word of the hardware timer.
// Wraparound every ~71 minutes is handled by core's tick comparisons.
type hwClock struct{}

func (hwClock) Ticks() uint32 {
	return timerRAWL.Get()
}

func (hwClock) Hz() uint32 {
	return clockHz
}
