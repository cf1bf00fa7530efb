package core

// BusDriver is the abstract receive side of the shared command bus. The node
// is a passive slave on a multi-drop bus, so the interface is deliberately
// read-only: there is no way to push transmit bytes through it, and
// implementations must not drive the bus from this node.
type BusDriver interface {
	// ReadByte pops exactly one byte from the receive FIFO. It returns
	// false immediately when the FIFO is empty and never blocks.
	ReadByte() (byte, bool)
}

// Global singleton used by core code.
var busDriver BusDriver

// SetBusDriver is called by target-specific code to register its driver.
func SetBusDriver(d BusDriver) {
	busDriver = d
}

// MustBus returns the configured driver or panics if missing.
func MustBus() BusDriver {
	if busDriver == nil {
		panic("bus driver not configured")
	}
	return busDriver
}
