package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDiagnostic_Validation(t *testing.T) {
	clk := NewMockClock(1_000_000, 1)
	gpio := NewMockGPIODriver(clk)

	_, err := NewDiagnostic(nil, clk, testOut)
	assert.Error(t, err)

	_, err = NewDiagnostic(gpio, NewMockClock(0, 1), testOut)
	assert.Error(t, err)
}

func TestDiagnostic_OneKilohertzSquareWave(t *testing.T) {
	clk := NewMockClock(1_000_000, 1)
	gpio := NewMockGPIODriver(clk)

	diag, err := NewDiagnostic(gpio, clk, testOut)
	require.NoError(t, err)

	diag.RunCycles(5)

	edges := gpio.Edges(testOut)
	require.Len(t, edges, 10)

	// Alternating levels, half periods of 500 µs each.
	for i, e := range edges {
		assert.Equal(t, i%2 == 0, e.Level, "edge %d", i)
		if i > 0 {
			half := float64(e.At - edges[i-1].At)
			assert.InDelta(t, 500, half, 3, "edge %d", i)
		}
	}

	// Rise to rise is one full 1 ms period: 1000 Hz.
	period := float64(edges[2].At - edges[0].At)
	assert.InDelta(t, float64(PeriodMicros), period, 5)

	// Output parks deasserted after a bounded run.
	assert.False(t, gpio.Level(testOut))
}

func TestDiagnostic_IndependentOfClockRate(t *testing.T) {
	// Same wave shape in wall time at a faster tick rate.
	clk := NewMockClock(16_000_000, 1)
	gpio := NewMockGPIODriver(clk)

	diag, err := NewDiagnostic(gpio, clk, testOut)
	require.NoError(t, err)

	diag.RunCycles(2)

	edges := gpio.Edges(testOut)
	require.Len(t, edges, 4)
	half := float64(edges[1].At - edges[0].At)
	assert.InDelta(t, float64(TicksFromMicros(clk.Hz(), 500)), half, 3)
}
