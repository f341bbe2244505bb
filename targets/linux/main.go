//go:build linux && !tinygo

// laserdot runner for Linux boards with a GPIO character device, such as
// a Raspberry Pi. Same conditioner core as the MCU targets; wiring and
// mode come from a YAML file instead of compile-time constants.
package main

import (
	"flag"
	"fmt"
	"os"

	"laserdot/core"
)

var configPath = flag.String("config", "/etc/laserdot.yaml", "Path to the YAML configuration")

func main() {
	flag.Parse()

	cfg, err := LoadConfig(*configPath)
	if err != nil {
		fatal(err)
	}

	gpio, err := newCdevGPIO(cfg.Chip)
	if err != nil {
		fatal(err)
	}
	defer gpio.Close()

	core.SetGPIODriver(gpio)
	core.SetClock(newMonoClock())

	timing, err := core.LoadCalibration(fileCell{path: cfg.CalibrationPath}, core.MustClock())
	if err != nil {
		fatal(err)
	}

	mode, err := core.ParseMode(cfg.Mode)
	if err != nil {
		fatal(err)
	}

	if mode == core.ModeDiagnostic {
		diag, err := core.NewDiagnostic(core.MustGPIO(), core.MustClock(), core.GPIOPin(cfg.OutputLine))
		if err != nil {
			fatal(err)
		}
		fmt.Printf("laserdot: diagnostic mode, 1 kHz square wave on line %d\n", cfg.OutputLine)
		diag.Run()
	}

	cond, err := core.New(core.MustGPIO(), core.MustClock(), core.Config{
		In:                    core.GPIOPin(cfg.InputLine),
		Out:                   core.GPIOPin(cfg.OutputLine),
		Timing:                timing,
		TimeoutMicros:         uint32(cfg.Timeout.Microseconds()),
		LimitPulseWhileActive: cfg.LimitPulseWhileActive,
	})
	if err != nil {
		fatal(err)
	}
	fmt.Printf("laserdot: conditioning line %d -> line %d on %s\n",
		cfg.InputLine, cfg.OutputLine, cfg.Chip)
	cond.Run()
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "laserdot: %v\n", err)
	os.Exit(1)
}
