package core

// The core clock is a 64-bit microsecond counter maintained by the target:
// the main loop calls SetTime with the hardware timer value once per
// iteration before running the data path. It is read and written only from
// the main loop context (the sync edge handler never touches it), so no
// synchronization is needed.
var nowUS uint64

// GetTime returns the current node time in microseconds.
func GetTime() uint64 {
	return nowUS
}

// SetTime sets the current node time. Called by the target main loop with
// the hardware timer value, and by tests to drive time directly.
func SetTime(us uint64) {
	nowUS = us
}
