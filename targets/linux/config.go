//go:build linux && !tinygo

package main

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"laserdot/core"
)

// Config is the on-disk YAML configuration for the Linux runner. Line
// offsets follow the GPIO chip's numbering (BCM numbers on a Raspberry
// Pi header).
type Config struct {
	Chip            string        `yaml:"chip"`
	InputLine       int           `yaml:"input_line"`
	OutputLine      int           `yaml:"output_line"`
	CalibrationPath string        `yaml:"calibration_path"`
	Mode            string        `yaml:"mode"`
	Timeout         time.Duration `yaml:"timeout"`

	LimitPulseWhileActive bool `yaml:"limit_pulse_while_active"`
}

// LoadConfig reads, defaults and validates the configuration.
func LoadConfig(path string) (Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return Config{}, err
	}

	var cfg Config
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, err
	}

	if cfg.Chip == "" {
		cfg.Chip = "/dev/gpiochip0"
	}
	if cfg.CalibrationPath == "" {
		cfg.CalibrationPath = "/var/lib/laserdot/intensity"
	}
	if cfg.Mode == "" {
		cfg.Mode = core.ModeCondition.String()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = core.DefaultTimeoutMicros * time.Microsecond
	}

	if _, err := core.ParseMode(cfg.Mode); err != nil {
		return Config{}, err
	}
	if cfg.InputLine < 0 || cfg.OutputLine < 0 {
		return Config{}, fmt.Errorf("line offsets must not be negative")
	}
	if cfg.InputLine == cfg.OutputLine {
		return Config{}, fmt.Errorf("input_line and output_line must be distinct")
	}
	if cfg.Timeout < time.Millisecond {
		return Config{}, fmt.Errorf("timeout must be at least the 1 ms pulse period")
	}

	return cfg, nil
}
