// Package bus drives the shared actuator bus from the host side: an SPI
// controller port for the broadcast frames and a GPIO line for the sync
// pulse that delimits them.
package bus

import (
	"fmt"
	"time"

	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpioreg"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"hapticwall/protocol"
)

const (
	// Bus clock. Nodes are clocked by the master, so this is the whole
	// array's byte rate.
	defaultFreq = 1 * physic.MegaHertz

	// Mode 0, MSB first: idle-low clock, sampling on the first edge.
	busMode = spi.Mode0

	// High time of the sync pulse. The nodes only need >= 1µs.
	syncPulseWidth = 100 * time.Microsecond
)

// Sender owns the host ends of the bus and the sync line.
type Sender struct {
	port spi.PortCloser
	conn spi.Conn
	sync gpio.PinIO
}

// Open initializes the periph host, opens the SPI port (e.g. "SPI0.0") and
// claims the sync GPIO line (e.g. "GPIO22") as a low output.
func Open(spiPort, syncPin string) (*Sender, error) {
	if _, err := host.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize periph host: %w", err)
	}

	port, err := spireg.Open(spiPort)
	if err != nil {
		return nil, fmt.Errorf("failed to open SPI port %s: %w", spiPort, err)
	}
	conn, err := port.Connect(defaultFreq, busMode, 8)
	if err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("failed to connect SPI: %w", err)
	}

	pin := gpioreg.ByName(syncPin)
	if pin == nil {
		_ = port.Close()
		return nil, fmt.Errorf("sync pin %q not found", syncPin)
	}
	if err := pin.Out(gpio.Low); err != nil {
		_ = port.Close()
		return nil, fmt.Errorf("failed to drive sync pin low: %w", err)
	}

	return &Sender{port: port, conn: conn, sync: pin}, nil
}

// SendFrame broadcasts one 36-byte frame. Every node on the bus receives
// all of it and keeps only its own slice.
func (s *Sender) SendFrame(f *protocol.Frame) error {
	if err := s.conn.Tx(f[:], nil); err != nil {
		return fmt.Errorf("frame transmit failed: %w", err)
	}
	return nil
}

// PulseSync raises the sync line briefly. The rising edge tells every node
// to latch the frame it just received and realign for the next one.
func (s *Sender) PulseSync() error {
	if err := s.sync.Out(gpio.High); err != nil {
		return err
	}
	time.Sleep(syncPulseWidth)
	return s.sync.Out(gpio.Low)
}

// Close parks the sync line low and releases the SPI port.
func (s *Sender) Close() error {
	_ = s.sync.Out(gpio.Low)
	return s.port.Close()
}
