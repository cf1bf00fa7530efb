//go:build rp2040 || rp2350

package main

import (
	"machine"
	"runtime/volatile"
	"unsafe"

	"hapticwall/core"
)

// SPI0 (PL022 SSP) register map. The machine package only drives the
// controller role, so the slave receive path talks to the peripheral
// directly, the same way clock.go reads the raw timer.
const (
	ssp0Base   = 0x4003C000
	ssp0SSPCR1 = ssp0Base + 0x004 // control 1: role, enable, output disable
	ssp0SSPDR  = ssp0Base + 0x008 // data register, pops the RX FIFO on read
	ssp0SSPSR  = ssp0Base + 0x00C // status
)

const (
	sspCR1SSE = 1 << 1 // port enable
	sspCR1MS  = 1 << 2 // slave mode
	sspCR1SOD = 1 << 3 // slave output disable
	sspSRRNE  = 1 << 2 // receive FIFO not empty
)

var (
	sspCR1 = (*volatile.Register32)(unsafe.Pointer(uintptr(ssp0SSPCR1)))
	sspDR  = (*volatile.Register32)(unsafe.Pointer(uintptr(ssp0SSPDR)))
	sspSR  = (*volatile.Register32)(unsafe.Pointer(uintptr(ssp0SSPSR)))
)

// Bus wiring: CS on GPIO17, SCK on GPIO18, data in on GPIO16, all driven by
// the bus master. GPIO19 is the SSP TX pad and is kept off the bus.
const (
	pinBusRX  = machine.GPIO16
	pinBusCS  = machine.GPIO17
	pinBusSCK = machine.GPIO18
	pinBusTX  = machine.GPIO19
)

// sspSlaveBus implements core.BusDriver on the SSP receive FIFO. ReadByte
// pops the data register directly and never pushes a transmit byte: the
// node shares the bus with three others and must not drive it, and filling
// the TX FIFO against backpressure could wedge the peripheral.
type sspSlaveBus struct{}

func (sspSlaveBus) ReadByte() (byte, bool) {
	if sspSR.Get()&sspSRRNE == 0 {
		return 0, false
	}
	return byte(sspDR.Get()), true
}

// initBus brings SPI0 up as a mode-0, MSB-first, 8-bit slave receiver.
func initBus() (core.BusDriver, error) {
	// Configure through the machine package first so the block comes out
	// of reset with clocks and pins set up. The frequency only matters to
	// a controller; the bus master supplies the clock in slave mode.
	err := machine.SPI0.Configure(machine.SPIConfig{
		Frequency: 1000000,
		SCK:       pinBusSCK,
		SDO:       pinBusTX,
		SDI:       pinBusRX,
		Mode:      0,
	})
	if err != nil {
		return nil, err
	}

	// Flip the port to slave reception with the output driver disabled.
	sspCR1.ClearBits(sspCR1SSE)
	sspCR1.SetBits(sspCR1MS | sspCR1SOD)
	sspCR1.SetBits(sspCR1SSE)

	// Chip select comes from the master.
	pinBusCS.Configure(machine.PinConfig{Mode: machine.PinSPI})

	// Take the TX pad off the peripheral entirely; SOD already silences
	// it, the pin function keeps it silent across reconfiguration.
	pinBusTX.Configure(machine.PinConfig{Mode: machine.PinInput})

	return sspSlaveBus{}, nil
}
