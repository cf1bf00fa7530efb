package core

import "hapticwall/protocol"

var faulted bool

func resetWatchdog() {
	faulted = false
}

// CheckWatchdog measures the time since the last serviced sync edge and,
// past SafetyTimeoutUS, forces the safe state: every channel at the idle
// pulse and the status line driven as a fast square wave so operators can
// tell a fault from the normal heartbeat. The safe state is idempotent and
// re-applied every loop iteration until an edge is serviced again, at which
// point LastSyncTime is fresh and normal operation resumes by itself.
// Returns true while the node is in the safe state.
func CheckWatchdog() bool {
	now := GetTime()
	if now-lastSyncUS <= SafetyTimeoutUS {
		faulted = false
		return false
	}
	if !faulted {
		faulted = true
		watchdogTrips++
	}

	for i := 0; i < protocol.ActuatorsPerNode; i++ {
		SetPulseMicros(i, IdlePulseUS)
	}

	// 50% duty square wave derived from the monotonic clock. No edges are
	// arriving while this runs, so the heartbeat toggle is quiescent and
	// the two writers never contend for the line.
	MustStatus().Set(now%FaultBlinkPeriodUS < FaultBlinkPeriodUS/2)
	return true
}

// Faulted reports whether the watchdog currently holds the safe state.
func Faulted() bool {
	return faulted
}
