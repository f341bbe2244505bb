package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTicksFromMicros(t *testing.T) {
	cases := []struct {
		hz, us, want uint32
	}{
		{1_000_000, 1000, 1000},
		{1_000_000, 5, 5},
		{16_000_000, 1000, 16000},
		{16_000_000, 5, 80},
		{9_600_000, 1000, 9600},
		{9_600_000, 5, 48},
		{9_600_000, 995, 9552},
		{0, 1000, 0},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, TicksFromMicros(c.hz, c.us), "hz=%d us=%d", c.hz, c.us)
	}
}

func TestTicksReached(t *testing.T) {
	assert.True(t, ticksReached(100, 100))
	assert.True(t, ticksReached(101, 100))
	assert.False(t, ticksReached(99, 100))

	// Deadline armed just before the counter wraps, checked just after.
	assert.True(t, ticksReached(2, 0xFFFFFFF8))
	assert.False(t, ticksReached(0xFFFFFFF8, 2))
}
