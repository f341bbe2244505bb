// dotcal verifies the device's timing calibration. Flash the firmware in
// diagnostic mode, point a serial frequency counter at the output line,
// and dotcal checks the streamed readings against the expected 1 kHz.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"laserdot/host/serial"
)

var (
	device    = flag.String("device", "/dev/ttyUSB0", "Serial device of the frequency counter")
	baud      = flag.Int("baud", 9600, "Baud rate")
	samples   = flag.Int("samples", 10, "Number of readings to average")
	tolerance = flag.Float64("tolerance-ppm", 500, "Accepted deviation from 1 kHz in ppm")
)

// targetHz is the diagnostic square wave frequency.
const targetHz = 1000.0

func main() {
	flag.Parse()

	port, err := serial.Open(serial.Config{
		Device:      *device,
		Baud:        *baud,
		ReadTimeout: 2 * time.Second,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	readings, err := readFrequencies(port, *samples)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	avg := mean(readings)
	ppm := (avg - targetHz) / targetHz * 1e6
	fmt.Printf("readings: %d  mean: %.3f Hz  deviation: %+.1f ppm\n", len(readings), avg, ppm)

	if math.Abs(ppm) > *tolerance {
		fmt.Printf("FAIL: outside the ±%.0f ppm window\n", *tolerance)
		os.Exit(1)
	}
	fmt.Println("PASS")
}

// readFrequencies collects n decimal Hz readings, one per line, skipping
// blank lines and counter status chatter.
func readFrequencies(r io.Reader, n int) ([]float64, error) {
	sc := bufio.NewScanner(r)
	out := make([]float64, 0, n)
	for len(out) < n && sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	if len(out) < n {
		return out, fmt.Errorf("counter stopped after %d of %d readings", len(out), n)
	}
	return out, nil
}

func mean(v []float64) float64 {
	var sum float64
	for _, x := range v {
		sum += x
	}
	return sum / float64(len(v))
}
