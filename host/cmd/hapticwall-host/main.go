// Command hapticwall-host streams broadcast frames to the actuator array:
// one 36-byte frame over SPI followed by a sync pulse, paced at a fixed
// rate. Intended to run on the controller board wired to the four nodes.
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"hapticwall/host/bus"
	"hapticwall/host/pattern"
)

var (
	spiPort   = flag.String("spi", "SPI0.0", "SPI port name (periph.io registry)")
	syncPin   = flag.String("sync", "GPIO22", "sync pulse GPIO name")
	rate      = flag.Int("rate", 400, "frame rate in Hz")
	shape     = flag.String("pattern", "uniform", "pattern: uniform, sine, square, off")
	level     = flag.Float64("level", 0.5, "uniform intensity [0,1]")
	amplitude = flag.Float64("amplitude", 0.5, "sine/square amplitude [0,1]")
	offset    = flag.Float64("offset", 0.5, "sine DC offset [0,1]")
	period    = flag.Float64("period", 2.0, "pattern period in seconds")
	duty      = flag.Float64("duty", 0.5, "square pulse duty cycle [0,1]")
	duration  = flag.Duration("duration", 0, "how long to stream (0 = until interrupted)")
	verbose   = flag.Bool("verbose", false, "print per-second frame counts")
)

func main() {
	flag.Parse()

	interval, err := frameInterval(*rate)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fieldAt, err := fieldFunc(*shape)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	sender, err := bus.Open(*spiPort, *syncPin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer sender.Close()

	fmt.Printf("Streaming %q at %d Hz on %s (sync on %s)\n",
		*shape, *rate, *spiPort, *syncPin)

	interrupted := make(chan os.Signal, 1)
	signal.Notify(interrupted, os.Interrupt, syscall.SIGTERM)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	start := time.Now()
	frames := 0
	lastReport := start

	for {
		select {
		case <-interrupted:
			shutdown(sender)
			return
		case now := <-ticker.C:
			elapsed := now.Sub(start)
			if *duration > 0 && elapsed >= *duration {
				shutdown(sender)
				return
			}

			field := fieldAt(elapsed.Seconds())
			if err := sendOne(sender, &field); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			frames++

			if *verbose && now.Sub(lastReport) >= time.Second {
				fmt.Printf("frames sent: %d (%.0f Hz)\n",
					frames, float64(frames)/elapsed.Seconds())
				lastReport = now
			}
		}
	}
}

// frameInterval converts a frame rate to the ticker interval. Rates that
// are non-positive, or so high that the interval truncates to zero, are
// rejected: time.NewTicker panics on a zero interval.
func frameInterval(rate int) (time.Duration, error) {
	if rate <= 0 {
		return 0, fmt.Errorf("rate must be positive, got %d", rate)
	}
	interval := time.Second / time.Duration(rate)
	if interval <= 0 {
		return 0, fmt.Errorf("rate %d Hz exceeds the timer resolution", rate)
	}
	return interval, nil
}

// fieldFunc resolves the pattern name to a sampler over elapsed seconds.
func fieldFunc(name string) (func(t float64) pattern.Field, error) {
	switch name {
	case "uniform":
		return func(float64) pattern.Field {
			return pattern.Uniform(*level)
		}, nil
	case "sine":
		return func(t float64) pattern.Field {
			return pattern.Sine(t, *period, *amplitude, *offset)
		}, nil
	case "square":
		return func(t float64) pattern.Field {
			return pattern.SquarePulse(t, *period, *duty, *amplitude)
		}, nil
	case "off":
		return func(float64) pattern.Field {
			return pattern.Uniform(0)
		}, nil
	default:
		return nil, fmt.Errorf("unknown pattern %q", name)
	}
}

func sendOne(sender *bus.Sender, field *pattern.Field) error {
	if err := sender.SendFrame(field.Frame()); err != nil {
		return err
	}
	return sender.PulseSync()
}

// shutdown parks the whole array at the stop command before exiting, so no
// actuator is left running at the last streamed intensity.
func shutdown(sender *bus.Sender) {
	fmt.Println("stopping, sending all-stop frame")
	stop := pattern.Uniform(0)
	if err := sendOne(sender, &stop); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: all-stop frame failed: %v\n", err)
	}
}
