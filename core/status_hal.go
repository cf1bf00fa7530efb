package core

// StatusDriver is the abstract single-line status indicator. Toggle is
// called from the sync edge interrupt for the heartbeat; Set is called from
// the main loop for the fault pattern. The two never contend: the watchdog
// only writes while no edges arrive.
type StatusDriver interface {
	Set(on bool)
	Toggle()
}

// Global singleton used by core code.
var statusDriver StatusDriver

// SetStatusDriver is called by target-specific code to register its driver.
func SetStatusDriver(d StatusDriver) {
	statusDriver = d
}

// MustStatus returns the configured driver or panics if missing.
func MustStatus() StatusDriver {
	if statusDriver == nil {
		panic("status driver not configured")
	}
	return statusDriver
}
