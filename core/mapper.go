package core

// PulseForCommand maps a command byte to a target pulse width in
// microseconds.
//
// Zero is a first-class stop command and maps to the idle pulse. All other
// values scale linearly onto [MinActivePulseUS, MaxPulseUS], so the smallest
// live command (1) is already distinctly above idle. The arithmetic is done
// in 32 bits; the worst case is 255*800 which is far below overflow.
func PulseForCommand(v byte) uint16 {
	if v == 0 {
		return IdlePulseUS
	}
	span := uint32(MaxPulseUS - MinActivePulseUS)
	pulse := MinActivePulseUS + uint16(uint32(v)*span/255)
	if pulse > MaxPulseUS {
		pulse = MaxPulseUS
	}
	return pulse
}
