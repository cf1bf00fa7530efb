//go:build rp2040 || rp2350

package main

import (
	"machine"

	"hapticwall/core"
)

// Sync input on GPIO22, pulled down when idle. The master raises it after
// the last byte of each broadcast frame.
const pinSync = machine.GPIO22

// initSyncPin arms the rising-edge interrupt that marks frame boundaries.
// The handler body runs in interrupt context and only raises the core sync
// flag and heartbeat bookkeeping.
func initSyncPin() error {
	pinSync.Configure(machine.PinConfig{Mode: machine.PinInputPulldown})
	return pinSync.SetInterrupt(machine.PinRising, func(machine.Pin) {
		core.HandleSyncEdge()
	})
}
