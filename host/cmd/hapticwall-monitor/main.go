// Command hapticwall-monitor tails a node's USB debug console: the firmware
// prints a once-per-second line with frame rate and watchdog trips, which is
// the quickest way to check a node without touching the bus.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"hapticwall/host/serial"
)

var (
	device = flag.String("device", "/dev/ttyACM0", "node console device path")
	baud   = flag.Int("baud", 115200, "baud rate (ignored for USB CDC)")
)

func main() {
	flag.Parse()

	cfg := serial.DefaultConfig(*device)
	cfg.Baud = *baud
	cfg.ReadTimeout = 0 // block until the node prints

	port, err := serial.Open(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer port.Close()

	fmt.Printf("Monitoring %s (Ctrl-C to stop)\n", *device)

	scanner := bufio.NewScanner(port)
	for scanner.Scan() {
		fmt.Println(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading console: %v\n", err)
		os.Exit(1)
	}
}
