package clock

import (
	_ "unsafe" // Required for go:linkname
)

// nanotime returns the runtime's monotonic clock in nanoseconds.
// It avoids building a time.Time on every sample.
//
//go:linkname nanotime runtime.nanotime
func nanotime() int64
