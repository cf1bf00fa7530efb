//go:build rp2040 || rp2350

// Firmware entry point for one node of the actuator array. The node is a
// passive slave on a shared SPI bus: it receives broadcast 36-byte frames,
// latches its own nine bytes on the external sync edge and drives nine
// servo-style pulse outputs.
package main

import (
	"time"

	"hapticwall/core"
)

// nodeID selects which nine frame positions this board owns. Set it to the
// board's position in the array (0..3) before flashing; every node runs the
// same firmware apart from this constant.
const nodeID = 0

func main() {
	// Give USB CDC a moment to enumerate so startup prints are visible.
	time.Sleep(2 * time.Second)
	println("hapticwall node firmware, node", nodeID)

	core.SetStatusDriver(initStatus())
	core.SetPulseDriver(&servoPulseDriver{})

	bus, err := initBus()
	if err != nil {
		failStartup(err)
	}
	core.SetBusDriver(bus)

	updateClock()
	if err := core.InitNode(nodeID); err != nil {
		failStartup(err)
	}
	if err := initSyncPin(); err != nil {
		failStartup(err)
	}
	println("startup complete, outputs parked at idle")

	lastReport := core.GetTime()
	lastFrames := uint32(0)
	for {
		updateClock()
		core.RunOnce()

		// Once-per-second stats on the debug console.
		if now := core.GetTime(); now-lastReport >= 1000000 {
			frames := core.FramesLatched()
			println("rate:", frames-lastFrames, "Hz, frames:", frames,
				"trips:", core.WatchdogTrips())
			lastFrames = frames
			lastReport = now
		}

		// Yield to the scheduler between iterations.
		time.Sleep(10 * time.Microsecond)
	}
}

// failStartup reports an initialization error and parks with a fast blink.
// There is nothing to fall back to before the drivers are up.
func failStartup(err error) {
	println("startup failed:", err.Error())
	for {
		pinStatus.Set(!pinStatus.Get())
		time.Sleep(100 * time.Millisecond)
	}
}
