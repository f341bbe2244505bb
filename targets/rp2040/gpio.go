//go:build rp2040

package main

import (
	"errors"

	"laserdot/core"
	"machine"
)

// RPGPIODriver implements core.GPIODriver on the RP2040 machine API.
type RPGPIODriver struct {
	pins map[core.GPIOPin]machine.Pin
}

// NewRPGPIODriver creates a new RP2040 GPIO driver
func NewRPGPIODriver() *RPGPIODriver {
	return &RPGPIODriver{
		pins: make(map[core.GPIOPin]machine.Pin),
	}
}

var errPinNotConfigured = errors.New("gpio: pin not configured")

// ConfigureInputPullDown configures a pin as a digital input with a
// pull-down resistor, so a disconnected line reads low.
func (d *RPGPIODriver) ConfigureInputPullDown(pin core.GPIOPin) error {
	p := machine.Pin(pin)
	p.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	d.pins[pin] = p
	return nil
}

// ConfigureOutput configures a pin as a digital output
func (d *RPGPIODriver) ConfigureOutput(pin core.GPIOPin) error {
	p := machine.Pin(pin)
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	d.pins[pin] = p
	return nil
}

// SetPin sets the pin to high (true) or low (false)
func (d *RPGPIODriver) SetPin(pin core.GPIOPin, value bool) error {
	p, ok := d.pins[pin]
	if !ok {
		return errPinNotConfigured
	}
	p.Set(value)
	return nil
}

// ReadPin reads the current pin level
func (d *RPGPIODriver) ReadPin(pin core.GPIOPin) bool {
	p, ok := d.pins[pin]
	if !ok {
		return false
	}
	return p.Get()
}
