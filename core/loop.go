package core

import "hapticwall/protocol"

// Debug counters, printed by the target main at 1Hz. Main loop context only.
var (
	framesLatched uint32
	watchdogTrips uint32
)

func resetStats() {
	framesLatched = 0
	watchdogTrips = 0
}

// InitNode configures the node identity, verifies that all drivers are
// registered, prepares the output channels and parks them at the idle pulse.
// The target calls this once after registering its drivers and initializing
// the clock.
func InitNode(id int) error {
	if err := Configure(id); err != nil {
		return err
	}
	MustBus()
	MustStatus()
	if err := MustPulse().Configure(protocol.ActuatorsPerNode); err != nil {
		return err
	}
	for i := 0; i < protocol.ActuatorsPerNode; i++ {
		SetPulseMicros(i, IdlePulseUS)
	}
	// Indicator on at startup, matching the heartbeat starting state.
	MustStatus().Set(true)
	return nil
}

// RunOnce executes one iteration of the node data path. The order matters:
// the bus is drained before the sync flag is serviced, so every byte that
// was in the FIFO when the edge fired is in the pending buffer before the
// snapshot is taken. Every step is bounded-time and non-blocking.
func RunOnce() {
	DrainBus()
	ServiceSync()
	CheckWatchdog()
}

// FramesLatched returns the number of sync edges serviced since startup.
func FramesLatched() uint32 {
	return framesLatched
}

// WatchdogTrips returns the number of distinct safe-state entries.
func WatchdogTrips() uint32 {
	return watchdogTrips
}
