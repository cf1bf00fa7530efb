package core

import (
	"sync/atomic"

	"hapticwall/protocol"
)

// Synchronization state shared between the edge interrupt and the main loop.
// The flag is a single word accessed with atomic loads and stores, so a
// handler store and a main-loop test-and-clear are tear-free on any target.
// A burst of edges before the loop services the flag collapses into one: at
// most one unserviced edge is remembered, which is fine because the next
// frame boundary is always the next relevant one.
var (
	syncFlag   uint32
	syncCount  uint32 // edges since the last heartbeat toggle, interrupt context only
	active     [protocol.ActuatorsPerNode]byte
	lastSyncUS uint64
)

func resetSync() {
	atomic.StoreUint32(&syncFlag, 0)
	syncCount = 0
	active = [protocol.ActuatorsPerNode]byte{}
	lastSyncUS = GetTime()
}

// HandleSyncEdge is called from the sync input interrupt on each rising
// edge. It only raises the flag, counts the edge, and toggles the heartbeat
// every HeartbeatPeriod edges; all real work happens in ServiceSync on the
// main loop.
func HandleSyncEdge() {
	atomic.StoreUint32(&syncFlag, 1)
	syncCount++
	if syncCount >= HeartbeatPeriod {
		syncCount = 0
		MustStatus().Toggle()
	}
}

// ServiceSync consumes a pending sync edge: it snapshots the pending slice
// into the active slice, applies the mapped pulse for every channel from
// that single snapshot, and realigns the frame position for the next frame.
// Returns false when no edge was pending.
//
// The caller drains the bus before calling this, so every byte of the frame
// the edge terminated is already in the pending buffer. A byte arriving
// between the drain and the snapshot belongs to the next frame and merely
// pre-fills the freshly realigned stream.
func ServiceSync() bool {
	if atomic.SwapUint32(&syncFlag, 0) == 0 {
		return false
	}
	lastSyncUS = GetTime()

	active = pending
	for i, v := range active {
		SetPulseMicros(i, PulseForCommand(v))
	}
	framePos = 0
	framesLatched++
	return true
}

// ActiveSlice returns a copy of the last latched command slice.
func ActiveSlice() [protocol.ActuatorsPerNode]byte {
	return active
}

// LastSyncTime returns the time the most recent sync edge was serviced.
func LastSyncTime() uint64 {
	return lastSyncUS
}
