// Package protocol defines the broadcast frame shared by the host and the
// node firmware.
//
// A frame is 36 raw bytes, one command byte per actuator, with no start or
// end markers. Framing is established by the sync line: the host pulses it
// after the last byte of each frame, and every node realigns its byte
// counter on the rising edge.
package protocol

// Frame geometry. The array is driven by four identical nodes, each owning
// nine consecutive byte positions of the frame.
const (
	NumNodes         = 4
	ActuatorsPerNode = 9
	FrameBytes       = NumNodes * ActuatorsPerNode
)

// Frame is one complete broadcast command unit.
type Frame [FrameBytes]byte

// SliceStart returns the first global frame position owned by a node.
func SliceStart(nodeID int) int {
	return nodeID * ActuatorsPerNode
}

// SliceEnd returns one past the last global frame position owned by a node.
func SliceEnd(nodeID int) int {
	return SliceStart(nodeID) + ActuatorsPerNode
}

// NodeForIndex returns the node that owns a global frame position.
func NodeForIndex(globalIndex int) int {
	return globalIndex / ActuatorsPerNode
}

// NodeSlice returns the nine bytes of the frame belonging to one node.
func (f *Frame) NodeSlice(nodeID int) []byte {
	return f[SliceStart(nodeID):SliceEnd(nodeID)]
}
