package core

import "hapticwall/protocol"

// Frame reception state. The node keeps a position counter into the virtual
// 36-byte frame and copies only its own nine positions into the pending
// buffer. There is no start-of-frame marker: the counter is realigned to
// zero every time a sync edge is serviced, which makes byte loss recoverable
// within one frame.
var (
	framePos   int                             // [0, FrameBytes], saturating
	pending    [protocol.ActuatorsPerNode]byte // written here, latched by ServiceSync
	lastByteUS uint64                          // time of the most recent bus byte
)

func resetReceiver() {
	framePos = 0
	pending = [protocol.ActuatorsPerNode]byte{}
	lastByteUS = GetTime()
}

// DrainBus pops every byte currently waiting in the bus receive FIFO and
// routes the ones belonging to this node into the pending buffer. Bytes past
// the end of the frame are swallowed without advancing the counter; they are
// surplus until the next sync edge realigns the stream. Returns the number
// of bytes consumed.
func DrainBus() int {
	bus := MustBus()
	n := 0
	for {
		b, ok := bus.ReadByte()
		if !ok {
			return n
		}
		n++
		lastByteUS = GetTime()

		idx := framePos
		if framePos < protocol.FrameBytes {
			framePos++
		}
		if idx >= myStart && idx < myEnd {
			pending[idx-myStart] = b
		}
	}
}

// FramePosition returns the current position in the virtual frame.
func FramePosition() int {
	return framePos
}

// LastByteTime returns the time the most recent bus byte was received.
func LastByteTime() uint64 {
	return lastByteUS
}
