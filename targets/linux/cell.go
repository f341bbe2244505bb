//go:build linux && !tinygo

package main

import (
	"os"

	"laserdot/core"
)

// fileCell reads the intensity byte from a one-byte file, the Linux
// stand-in for the MCU's persistent cell. Write it out-of-band, e.g.:
//
//	printf '\x0a' > /var/lib/laserdot/intensity
//
// A missing or empty file counts as unset, so the default applies.
type fileCell struct {
	path string
}

var _ core.CalibrationCell = fileCell{}

func (c fileCell) ReadIntensity() (uint8, error) {
	b, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return core.IntensityUnset, nil
		}
		return 0, err
	}
	if len(b) == 0 {
		return core.IntensityUnset, nil
	}
	return b[0], nil
}
