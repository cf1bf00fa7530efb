// Package pattern builds broadcast frames from actuator intensity fields.
// Intensities live in [0, 1] in logical actuator order; encoding maps them
// onto command bytes where zero stays the explicit stop command, and the
// physical wiring table rearranges them into frame byte positions.
package pattern

import (
	"math"

	"hapticwall/protocol"
)

// PhysicalOrder maps frame byte positions to logical actuator IDs, taken
// from the array's wiring: each node's nine byte positions cover one 3x3
// block of the 6x6 grid rather than nine consecutive logical IDs.
var PhysicalOrder = [protocol.FrameBytes]int{
	// node 0 (byte positions 0..8)
	0, 1, 2, 6, 7, 8, 12, 13, 14,
	// node 1 (byte positions 9..17)
	18, 19, 20, 24, 25, 26, 30, 31, 32,
	// node 2 (byte positions 18..26)
	3, 4, 5, 9, 10, 11, 15, 16, 17,
	// node 3 (byte positions 27..35)
	21, 22, 23, 27, 28, 29, 33, 34, 35,
}

// Field is one intensity per logical actuator.
type Field [protocol.FrameBytes]float64

// CommandByte encodes an intensity as a command byte. Zero and below stay
// the stop command; anything positive lands in [1, 255] so that a barely
// active actuator is never confused with a stopped one.
func CommandByte(intensity float64) byte {
	if intensity <= 0 {
		return 0
	}
	if intensity >= 1 {
		return 255
	}
	b := int(math.Round(intensity * 255))
	if b < 1 {
		b = 1
	}
	return byte(b)
}

// Frame encodes the field into a broadcast frame, routing each logical
// actuator to its wired byte position.
func (f *Field) Frame() *protocol.Frame {
	var out protocol.Frame
	for pos, id := range PhysicalOrder {
		out[pos] = CommandByte(f[id])
	}
	return &out
}

// Uniform returns a field with every actuator at the same level.
func Uniform(level float64) Field {
	var f Field
	for i := range f {
		f[i] = level
	}
	return f
}

// Sine returns the field at time t seconds for a sine intensity of the
// given period, amplitude and DC offset, applied to all actuators.
func Sine(t, period, amplitude, offset float64) Field {
	v := offset + amplitude*math.Sin(2*math.Pi*t/period)
	return Uniform(clamp01(v))
}

// SquarePulse returns the field at time t seconds for a square intensity
// wave: amplitude for the duty fraction of each period, stop otherwise.
func SquarePulse(t, period, duty, amplitude float64) Field {
	phase := math.Mod(t, period)
	if phase < 0 {
		phase += period
	}
	if phase < duty*period {
		return Uniform(clamp01(amplitude))
	}
	return Uniform(0)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
