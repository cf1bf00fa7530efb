// Package core implements the per-node real-time data path: frame reception
// from the shared bus, latch-on-sync output updates, the command-to-pulse
// mapping, and the communication-loss watchdog.
//
// The package is platform-independent. Hardware access goes through the
// small HAL interfaces in pulse_hal.go, bus_hal.go and status_hal.go, which
// target-specific code registers at startup. All state lives at package
// level and the program runs forever; nothing is ever torn down.
package core

import (
	"errors"

	"hapticwall/protocol"
)

// Pulse limits in microseconds. Idle is the explicit stop state and is
// deliberately below the minimum active pulse, so a zeroed or disconnected
// host cannot hold actuators at their minimum live position.
const (
	IdlePulseUS      = 1000
	MinActivePulseUS = 1200
	MaxPulseUS       = 2000
)

// Timing constants.
const (
	// SafetyTimeoutUS is the maximum time without a serviced sync edge
	// before the watchdog forces the safe state.
	SafetyTimeoutUS = 200000

	// HeartbeatPeriod is the number of sync edges per status toggle in
	// normal operation.
	HeartbeatPeriod = 20

	// FaultBlinkPeriodUS is the full period of the fast status square wave
	// driven while the watchdog holds the safe state.
	FaultBlinkPeriodUS = 200000
)

// Node identity, fixed at startup by Configure.
var (
	nodeID  int
	myStart int // first global frame position owned by this node
	myEnd   int // one past the last owned position
)

// Configure sets the node identity and resets the whole data path: buffers
// zeroed, frame position zeroed, sync flag cleared, counters cleared, and
// the watchdog reference stamped from the current clock. It must be called
// once at startup before the main loop runs, and may be called again from
// tests to restart from a clean state.
func Configure(id int) error {
	if id < 0 || id >= protocol.NumNodes {
		return errors.New("core: node id out of range")
	}
	nodeID = id
	myStart = protocol.SliceStart(id)
	myEnd = protocol.SliceEnd(id)

	resetReceiver()
	resetSync()
	resetWatchdog()
	resetStats()
	return nil
}

// NodeID returns the configured node identity.
func NodeID() int {
	return nodeID
}
