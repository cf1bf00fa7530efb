package core

import (
	"testing"

	"hapticwall/protocol"
)

// fakePulse records the most recent pulse width per channel.
type fakePulse struct {
	configured int
	last       [protocol.ActuatorsPerNode]uint16
	writes     int
}

func (p *fakePulse) Configure(channels int) error {
	p.configured = channels
	return nil
}

func (p *fakePulse) SetPulseMicros(channel int, pulseUS uint16) {
	p.last[channel] = pulseUS
	p.writes++
}

// fakeBus replays a queued byte stream one byte per ReadByte call.
type fakeBus struct {
	queue []byte
}

func (b *fakeBus) ReadByte() (byte, bool) {
	if len(b.queue) == 0 {
		return 0, false
	}
	v := b.queue[0]
	b.queue = b.queue[1:]
	return v, true
}

func (b *fakeBus) feed(data []byte) {
	b.queue = append(b.queue, data...)
}

// fakeStatus tracks the indicator line.
type fakeStatus struct {
	on      bool
	sets    int
	toggles int
}

func (s *fakeStatus) Set(on bool) {
	s.on = on
	s.sets++
}

func (s *fakeStatus) Toggle() {
	s.on = !s.on
	s.toggles++
}

// newTestNode registers fresh fake drivers, rewinds the clock and boots the
// node with the given identity.
func newTestNode(t *testing.T, id int) (*fakePulse, *fakeBus, *fakeStatus) {
	t.Helper()

	pulse := &fakePulse{}
	bus := &fakeBus{}
	status := &fakeStatus{}
	SetPulseDriver(pulse)
	SetBusDriver(bus)
	SetStatusDriver(status)

	SetTime(0)
	if err := InitNode(id); err != nil {
		t.Fatalf("InitNode(%d) failed: %v", id, err)
	}
	return pulse, bus, status
}

// latchFrame feeds a byte stream, fires a sync edge and runs one loop
// iteration, mirroring the host sending one frame followed by the sync
// pulse.
func latchFrame(bus *fakeBus, stream []byte) {
	bus.feed(stream)
	HandleSyncEdge()
	RunOnce()
}
