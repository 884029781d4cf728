// Package clock provides the timestamp sources used by the timer.
//
// Three backends implement the Source interface:
//   - HighFreq: monotonic hardware counter (TSC on amd64, runtime nanotime elsewhere)
//   - WallClock: seconds + microseconds since the Unix epoch
//   - Coarse: low-resolution tick counter that wraps like a C clock_t
//
// The default backend is chosen at build time (see Default). Accuracy and
// monotonicity are whatever the underlying source offers.
package clock

import (
	"errors"
	"fmt"
)

// MicrosPerSecond is the scale between seconds and the microsecond results
// every backend reports.
const MicrosPerSecond = 1_000_000

var (
	// ErrUnavailable is returned when a source cannot produce timestamps or
	// calibrate on this machine.
	ErrUnavailable = errors.New("clock: source unavailable")

	// ErrUnknownSource is returned by ByName for unrecognised backend names.
	ErrUnknownSource = errors.New("clock: unknown source")
)

// Timestamp is a raw, backend-specific reading. Counter backends fill Ticks;
// the wall-clock backend fills Sec and Usec.
type Timestamp struct {
	Ticks int64
	Sec   int64
	Usec  int64
}

// Frequency is a raw calibration value in ticks per second.
type Frequency int64

// Source samples a clock and converts its readings to microseconds.
//
// Implementations are not required to be safe for concurrent use.
type Source interface {
	// Name identifies the backend, e.g. "tsc" or "wallclock".
	Name() string

	// Now returns the current reading. The error, not the value, tells a
	// failed read apart from a genuine zero timestamp.
	Now() (Timestamp, error)

	// Frequency performs (or returns the cached) calibration.
	Frequency() (Frequency, error)

	// ToMicros converts an absolute reading to microseconds.
	ToMicros(t Timestamp, f Frequency) float64

	// DeltaMicros returns the microseconds elapsed from t1 to t2.
	DeltaMicros(t1, t2 Timestamp, f Frequency) float64
}

// Names lists the backends accepted by ByName.
var Names = []string{"highfreq", "wallclock", "coarse"}

// ByName returns the backend with the given name. The empty string selects
// the build default.
func ByName(name string) (Source, error) {
	switch name {
	case "":
		return Default(), nil
	case "highfreq":
		return NewHighFreq(), nil
	case "wallclock":
		return NewWallClock(nil), nil
	case "coarse":
		return NewCoarse(CoarseTicksPerSecond), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, name)
	}
}
