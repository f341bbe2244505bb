//go:build linux && !tinygo

package main

import (
	"fmt"

	"github.com/warthog618/go-gpiocdev"

	"laserdot/core"
)

// cdevGPIO implements core.GPIODriver over the Linux GPIO character
// device (libgpiod uAPI).
type cdevGPIO struct {
	chip  *gpiocdev.Chip
	lines map[core.GPIOPin]*gpiocdev.Line
}

func newCdevGPIO(chipPath string) (*cdevGPIO, error) {
	chip, err := gpiocdev.NewChip(chipPath)
	if err != nil {
		return nil, fmt.Errorf("open gpio chip %s: %w", chipPath, err)
	}
	return &cdevGPIO{
		chip:  chip,
		lines: make(map[core.GPIOPin]*gpiocdev.Line),
	}, nil
}

func (g *cdevGPIO) ConfigureInputPullDown(pin core.GPIOPin) error {
	line, err := g.chip.RequestLine(int(pin),
		gpiocdev.AsInput,
		gpiocdev.WithPullDown,
		gpiocdev.WithConsumer("laserdot"))
	if err != nil {
		return fmt.Errorf("request input line %d: %w", pin, err)
	}
	g.lines[pin] = line
	return nil
}

func (g *cdevGPIO) ConfigureOutput(pin core.GPIOPin) error {
	line, err := g.chip.RequestLine(int(pin),
		gpiocdev.AsOutput(0),
		gpiocdev.WithConsumer("laserdot"))
	if err != nil {
		return fmt.Errorf("request output line %d: %w", pin, err)
	}
	g.lines[pin] = line
	return nil
}

func (g *cdevGPIO) SetPin(pin core.GPIOPin, value bool) error {
	line, ok := g.lines[pin]
	if !ok {
		return fmt.Errorf("line %d not configured", pin)
	}
	v := 0
	if value {
		v = 1
	}
	return line.SetValue(v)
}

func (g *cdevGPIO) ReadPin(pin core.GPIOPin) bool {
	line, ok := g.lines[pin]
	if !ok {
		return false
	}
	v, err := line.Value()
	return err == nil && v != 0
}

// Close releases the lines with the output deasserted.
func (g *cdevGPIO) Close() error {
	for _, line := range g.lines {
		_ = line.SetValue(0)
		_ = line.Close()
	}
	return g.chip.Close()
}
