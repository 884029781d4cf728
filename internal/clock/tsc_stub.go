//go:build !amd64

package clock

import "fmt"

const counterName = "nanotime"

// ErrTSCNotSupported is returned when TSC is not available on this architecture.
var ErrTSCNotSupported = fmt.Errorf("%w: TSC requires amd64 architecture", ErrUnavailable)

func readCounter() int64 {
	return nanotime()
}

func counterFrequency() (Frequency, error) {
	return 1_000_000_000, nil
}

// CalibrateTSC returns an error on non-amd64 architectures.
func CalibrateTSC() (Frequency, error) {
	return 0, ErrTSCNotSupported
}
