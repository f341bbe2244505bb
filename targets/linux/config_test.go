//go:build linux && !tinygo

package main

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempConfig(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "laserdot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadConfig_DefaultsApplied(t *testing.T) {
	path := writeTempConfig(t, "input_line: 17\noutput_line: 27\n")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/dev/gpiochip0", cfg.Chip)
	assert.Equal(t, "/var/lib/laserdot/intensity", cfg.CalibrationPath)
	assert.Equal(t, "condition", cfg.Mode)
	assert.Equal(t, 2*time.Millisecond, cfg.Timeout)
	assert.False(t, cfg.LimitPulseWhileActive)
}

func TestLoadConfig_FullConfig(t *testing.T) {
	path := writeTempConfig(t, `
chip: /dev/gpiochip4
input_line: 5
output_line: 6
calibration_path: /tmp/intensity
mode: diagnostic
timeout: 1500us
limit_pulse_while_active: true
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "/dev/gpiochip4", cfg.Chip)
	assert.Equal(t, 5, cfg.InputLine)
	assert.Equal(t, 6, cfg.OutputLine)
	assert.Equal(t, "/tmp/intensity", cfg.CalibrationPath)
	assert.Equal(t, "diagnostic", cfg.Mode)
	assert.Equal(t, 1500*time.Microsecond, cfg.Timeout)
	assert.True(t, cfg.LimitPulseWhileActive)
}

func TestLoadConfig_Rejections(t *testing.T) {
	cases := []struct {
		name string
		yaml string
	}{
		{"same lines", "input_line: 4\noutput_line: 4\n"},
		{"negative line", "input_line: -1\noutput_line: 4\n"},
		{"unknown mode", "input_line: 4\noutput_line: 5\nmode: resonate\n"},
		{"timeout below period", "input_line: 4\noutput_line: 5\ntimeout: 200us\n"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			path := writeTempConfig(t, c.yaml)
			_, err := LoadConfig(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
