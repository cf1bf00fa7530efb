//go:build rp2040 || rp2350

package main

import "machine"

// Status indicator on GPIO25, the onboard LED of the Pico board.
const pinStatus = machine.GPIO25

// ledStatus implements core.StatusDriver on a plain GPIO output.
type ledStatus struct {
	pin machine.Pin
}

func (l ledStatus) Set(on bool) {
	l.pin.Set(on)
}

func (l ledStatus) Toggle() {
	l.pin.Set(!l.pin.Get())
}

// initStatus configures the LED pin and lights it for the startup phase.
func initStatus() ledStatus {
	pinStatus.Configure(machine.PinConfig{Mode: machine.PinOutput})
	pinStatus.High()
	return ledStatus{pin: pinStatus}
}
