package clock

import (
	"fmt"

	"k8s.io/utils/clock"
)

// WallClock reads seconds and microseconds since the Unix epoch.
//
// Resolution is usually one microsecond. Readings jump when the system time
// is adjusted, so intervals may come out negative.
type WallClock struct {
	clock clock.PassiveClock
}

// NewWallClock returns a wall-clock source backed by c, or by the real system
// clock when c is nil.
func NewWallClock(c clock.PassiveClock) *WallClock {
	if c == nil {
		c = clock.RealClock{}
	}
	return &WallClock{clock: c}
}

func (*WallClock) Name() string {
	return "wallclock"
}

// Now returns the current time split into seconds and microseconds.
func (w *WallClock) Now() (Timestamp, error) {
	t := w.clock.Now()
	if t.IsZero() {
		return Timestamp{}, fmt.Errorf("%w: wall clock returned the zero time", ErrUnavailable)
	}
	return Timestamp{Sec: t.Unix(), Usec: int64(t.Nanosecond() / 1000)}, nil
}

// Frequency is not used by this backend; it reports microsecond ticks.
func (*WallClock) Frequency() (Frequency, error) {
	return MicrosPerSecond, nil
}

func (*WallClock) ToMicros(t Timestamp, _ Frequency) float64 {
	return float64(t.Sec)*MicrosPerSecond + float64(t.Usec)
}

// DeltaMicros returns (t2.Sec-t1.Sec)*1e6 + (t2.Usec-t1.Usec).
func (*WallClock) DeltaMicros(t1, t2 Timestamp, _ Frequency) float64 {
	return float64(t2.Sec-t1.Sec)*MicrosPerSecond + float64(t2.Usec-t1.Usec)
}
