package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockClock_AdvancesPerCall(t *testing.T) {
	clk := NewMockClock(1_000_000, 3)

	assert.Equal(t, uint32(3), clk.Ticks())
	assert.Equal(t, uint32(6), clk.Ticks())
	assert.Equal(t, uint32(6), clk.Now())

	clk.Advance(10)
	assert.Equal(t, uint32(16), clk.Now())
}

func TestMockGPIODriver_RecordsEdgesOnce(t *testing.T) {
	clk := NewMockClock(1_000_000, 1)
	gpio := NewMockGPIODriver(clk)
	require.NoError(t, gpio.ConfigureOutput(testOut))

	require.NoError(t, gpio.SetPin(testOut, true))
	require.NoError(t, gpio.SetPin(testOut, true)) // no level change
	require.NoError(t, gpio.SetPin(testOut, false))

	edges := gpio.Edges(testOut)
	require.Len(t, edges, 2)
	assert.True(t, edges[0].Level)
	assert.False(t, edges[1].Level)
}

func TestMockGPIODriver_ScheduledInputApplies(t *testing.T) {
	clk := NewMockClock(1_000_000, 1)
	gpio := NewMockGPIODriver(clk)
	require.NoError(t, gpio.ConfigureInputPullDown(testIn))

	gpio.ScheduleInput(testIn, 10, true)
	gpio.ScheduleInput(testIn, 20, false)

	assert.False(t, gpio.ReadPin(testIn))
	clk.Advance(10)
	assert.True(t, gpio.ReadPin(testIn))
	clk.Advance(10)
	assert.False(t, gpio.ReadPin(testIn))
}

func TestMockCell(t *testing.T) {
	v, err := MockCell{Intensity: 42}.ReadIntensity()
	require.NoError(t, err)
	assert.Equal(t, uint8(42), v)

	_, err = MockCell{Err: errors.New("bad cell")}.ReadIntensity()
	assert.Error(t, err)
}
