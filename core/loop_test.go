package core

import (
	"testing"

	"hapticwall/protocol"
)

func TestConfigureRejectsBadNodeID(t *testing.T) {
	for _, id := range []int{-1, protocol.NumNodes, 99} {
		if err := Configure(id); err == nil {
			t.Errorf("Configure(%d) succeeded, want error", id)
		}
	}
}

func TestInitNodeParksAtIdle(t *testing.T) {
	pulse, _, status := newTestNode(t, 2)

	if pulse.configured != protocol.ActuatorsPerNode {
		t.Errorf("configured %d channels, want %d",
			pulse.configured, protocol.ActuatorsPerNode)
	}
	for i := range pulse.last {
		if pulse.last[i] != IdlePulseUS {
			t.Errorf("channel %d = %d at startup, want %d",
				i, pulse.last[i], IdlePulseUS)
		}
	}
	if !status.on {
		t.Error("status indicator off at startup, want on")
	}
	if NodeID() != 2 {
		t.Errorf("NodeID = %d, want 2", NodeID())
	}
}

// End-to-end scenarios for node 1 (slice 9..17).

func TestScenarioAllIdleFrame(t *testing.T) {
	pulse, bus, _ := newTestNode(t, 1)

	latchFrame(bus, make([]byte, protocol.FrameBytes))
	for i := range pulse.last {
		if pulse.last[i] != 1000 {
			t.Errorf("channel %d = %d, want 1000", i, pulse.last[i])
		}
	}
}

func TestScenarioFullScaleFrame(t *testing.T) {
	pulse, bus, _ := newTestNode(t, 1)

	latchFrame(bus, fullScaleFrame())
	for i := range pulse.last {
		if pulse.last[i] != 2000 {
			t.Errorf("channel %d = %d, want 2000", i, pulse.last[i])
		}
	}
}

func TestScenarioPerChannelMapping(t *testing.T) {
	pulse, bus, _ := newTestNode(t, 1)

	slice := []byte{0, 1, 64, 128, 191, 254, 255, 0, 128}
	want := []uint16{1000, 1203, 1400, 1601, 1799, 1996, 2000, 1000, 1601}

	stream := make([]byte, protocol.FrameBytes)
	copy(stream[protocol.SliceStart(1):], slice)
	latchFrame(bus, stream)

	for i := range want {
		if pulse.last[i] != want[i] {
			t.Errorf("channel %d = %d, want %d", i, pulse.last[i], want[i])
		}
	}
}

func TestScenarioSyncBeforeFrameComplete(t *testing.T) {
	pulse, bus, _ := newTestNode(t, 1)

	// 20 bytes carrying values 1..20, then an edge. The bytes cover global
	// positions 0..19, so the whole slice 9..17 holds values 10..18 and the
	// edge latches that partial frame.
	stream := make([]byte, 20)
	for i := range stream {
		stream[i] = byte(i + 1)
	}
	latchFrame(bus, stream)

	for i := 0; i < protocol.ActuatorsPerNode; i++ {
		want := PulseForCommand(byte(10 + i))
		if pulse.last[i] != want {
			t.Errorf("channel %d = %d after partial frame, want %d",
				i, pulse.last[i], want)
		}
	}

	// A full zero frame afterwards returns every channel to idle.
	latchFrame(bus, make([]byte, protocol.FrameBytes))
	for i := range pulse.last {
		if pulse.last[i] != 1000 {
			t.Errorf("channel %d = %d after zero frame, want 1000", i, pulse.last[i])
		}
	}
}

func TestScenarioLossOfSync(t *testing.T) {
	pulse, bus, status := newTestNode(t, 1)

	latchFrame(bus, fullScaleFrame())
	for i := range pulse.last {
		if pulse.last[i] != 2000 {
			t.Fatalf("channel %d = %d before loss, want 2000", i, pulse.last[i])
		}
	}

	// 300ms with no further edges: safe state within the 200ms budget.
	SetTime(300000)
	RunOnce()
	for i := range pulse.last {
		if pulse.last[i] != 1000 {
			t.Errorf("channel %d = %d after loss of sync, want 1000", i, pulse.last[i])
		}
	}
	if !Faulted() {
		t.Error("node not in safe state after 300ms without edges")
	}

	// The indicator follows the fast clock-driven square wave.
	wasOn := status.on
	SetTime(400000)
	RunOnce()
	if status.on == wasOn {
		t.Error("fault indicator not blinking across half periods")
	}
}

func TestScenarioExtraBytes(t *testing.T) {
	pulse, bus, _ := newTestNode(t, 1)

	stream := make([]byte, 50)
	for i := range stream {
		stream[i] = byte(i + 1)
	}
	latchFrame(bus, stream)

	for i := 0; i < protocol.ActuatorsPerNode; i++ {
		want := PulseForCommand(byte(10 + i))
		if pulse.last[i] != want {
			t.Errorf("channel %d = %d, want %d", i, pulse.last[i], want)
		}
	}
	if FramePosition() != 0 {
		t.Errorf("FramePosition = %d after the edge, want 0", FramePosition())
	}
}

// Latching a stream of frames keeps each node slice consistent with the most
// recent complete frame.
func TestFrameStreamPartitioning(t *testing.T) {
	pulse, bus, _ := newTestNode(t, 1)

	for frame := 0; frame < 5; frame++ {
		stream := make([]byte, protocol.FrameBytes)
		for i := range stream {
			stream[i] = byte((frame*protocol.FrameBytes + i) % 251)
		}
		latchFrame(bus, stream)

		active := ActiveSlice()
		for i := 0; i < protocol.ActuatorsPerNode; i++ {
			want := stream[protocol.SliceStart(1)+i]
			if active[i] != want {
				t.Errorf("frame %d: active[%d] = %d, want %d",
					frame, i, active[i], want)
			}
			if pulse.last[i] != PulseForCommand(want) {
				t.Errorf("frame %d: channel %d = %d, want %d",
					frame, i, pulse.last[i], PulseForCommand(want))
			}
		}
	}

	if FramesLatched() != 5 {
		t.Errorf("FramesLatched = %d, want 5", FramesLatched())
	}
}

// After dropped or injected bytes, the first edge realigns the counter and
// the next full frame partitions correctly.
func TestFrameRealignment(t *testing.T) {
	_, bus, _ := newTestNode(t, 1)

	// Desynchronized remainder of a damaged frame.
	latchFrame(bus, []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x01})
	if FramePosition() != 0 {
		t.Fatalf("FramePosition = %d after realigning edge, want 0", FramePosition())
	}

	stream := make([]byte, protocol.FrameBytes)
	for i := range stream {
		stream[i] = byte(i + 100)
	}
	latchFrame(bus, stream)

	active := ActiveSlice()
	for i := 0; i < protocol.ActuatorsPerNode; i++ {
		want := byte(protocol.SliceStart(1) + i + 100)
		if active[i] != want {
			t.Errorf("active[%d] = %d after realignment, want %d", i, active[i], want)
		}
	}
}
