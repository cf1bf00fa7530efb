// Package serial wraps the host-side serial port used to tail a node's USB
// debug console. The interface keeps the CLI testable with a mock port.
package serial

import "io"

// Port represents an open serial connection to a node.
type Port interface {
	io.ReadWriteCloser
}

// Config holds serial port configuration.
type Config struct {
	// Device path (e.g., "/dev/ttyACM0", "COM3")
	Device string

	// Baud rate. USB CDC ignores this, but physical adapters need it.
	Baud int

	// Read timeout in milliseconds (0 = blocking)
	ReadTimeout int
}

// DefaultConfig returns the configuration for a node's USB CDC console.
func DefaultConfig(device string) *Config {
	return &Config{
		Device:      device,
		Baud:        115200,
		ReadTimeout: 500,
	}
}
