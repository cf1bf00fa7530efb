//go:build rp2040 || rp2350

package main

import (
	"runtime/volatile"
	"unsafe"

	"hapticwall/core"
)

// RP2040 timer peripheral memory map. The chip has a 64-bit microsecond
// counter at 1MHz; TIMERAWH/TIMERAWL read it without latching side effects.
const (
	timerBase     = 0x40054000
	timerTIMERAWH = timerBase + 0x08
	timerTIMERAWL = timerBase + 0x0C
)

var (
	timerRAWH = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWH)))
	timerRAWL = (*volatile.Register32)(unsafe.Pointer(uintptr(timerTIMERAWL)))
)

// hardwareMicros reads the full 64-bit hardware timer. High word first, then
// low, then high again to detect a rollover during the read.
func hardwareMicros() uint64 {
	for {
		high1 := timerRAWH.Get()
		low := timerRAWL.Get()
		high2 := timerRAWH.Get()
		if high1 == high2 {
			return (uint64(high1) << 32) | uint64(low)
		}
	}
}

// updateClock feeds the hardware timer into the core clock. Called once per
// main loop iteration before the data path runs.
func updateClock() {
	core.SetTime(hardwareMicros())
}
