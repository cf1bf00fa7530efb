package core

// PulseDriver is the abstract pulse-width output interface that core code
// uses. Platform-specific implementations own the timer hardware.
type PulseDriver interface {
	// Configure prepares the given number of output channels and leaves
	// them at the idle pulse.
	Configure(channels int) error

	// SetPulseMicros writes the high time of one channel. The value has
	// already been clamped by the caller; the write must be a single
	// non-blocking store that takes effect on the next counter wrap.
	SetPulseMicros(channel int, pulseUS uint16)
}

// Global singleton used by core code.
var pulseDriver PulseDriver

// SetPulseDriver is called by target-specific code to register its driver.
func SetPulseDriver(d PulseDriver) {
	pulseDriver = d
}

// MustPulse returns the configured driver or panics if missing.
func MustPulse() PulseDriver {
	if pulseDriver == nil {
		panic("pulse driver not configured")
	}
	return pulseDriver
}

// SetPulseMicros clamps a pulse width to the safe range and hands it to the
// hardware driver. Out-of-range inputs are silently saturated; there are no
// error conditions on this path.
func SetPulseMicros(channel int, pulseUS uint16) {
	if pulseUS < IdlePulseUS {
		pulseUS = IdlePulseUS
	}
	if pulseUS > MaxPulseUS {
		pulseUS = MaxPulseUS
	}
	MustPulse().SetPulseMicros(channel, pulseUS)
}
