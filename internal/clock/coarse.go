package clock

import "fmt"

// CoarseTicksPerSecond is the resolution of the default Coarse source.
const CoarseTicksPerSecond = 1000

// coarseEpoch anchors Coarse readings to process start, like clock().
var coarseEpoch = nanotime()

// Coarse is a low-resolution fallback counter.
//
// Readings are truncated to 32 bits, so the counter wraps after 2^32 ticks
// (about 49 days at 1kHz, about 71 minutes at 1MHz). An interval spanning a
// wrap comes out negative; callers accept that risk.
type Coarse struct {
	ticksPerSecond int64
	nanos          func() int64
}

// NewCoarse returns a tick counter running at ticksPerSecond.
func NewCoarse(ticksPerSecond int64) *Coarse {
	return newCoarse(ticksPerSecond, func() int64 { return nanotime() - coarseEpoch })
}

func newCoarse(ticksPerSecond int64, nanos func() int64) *Coarse {
	return &Coarse{ticksPerSecond: ticksPerSecond, nanos: nanos}
}

func (c *Coarse) Name() string {
	return fmt.Sprintf("coarse(%dHz)", c.ticksPerSecond)
}

// valid reports whether the rate is usable; above 1GHz a tick would be
// shorter than the underlying nanosecond clock.
func (c *Coarse) valid() bool {
	return c.ticksPerSecond > 0 && c.ticksPerSecond <= 1_000_000_000
}

// Now returns the current tick count.
func (c *Coarse) Now() (Timestamp, error) {
	if !c.valid() {
		return Timestamp{}, fmt.Errorf("%w: coarse rate %d", ErrUnavailable, c.ticksPerSecond)
	}
	ticks := uint32(c.nanos() / (1_000_000_000 / c.ticksPerSecond))
	return Timestamp{Ticks: int64(ticks)}, nil
}

// Frequency returns the fixed tick rate.
func (c *Coarse) Frequency() (Frequency, error) {
	if !c.valid() {
		return 0, fmt.Errorf("%w: coarse rate %d", ErrUnavailable, c.ticksPerSecond)
	}
	return Frequency(c.ticksPerSecond), nil
}

func (c *Coarse) ToMicros(t Timestamp, _ Frequency) float64 {
	return float64(t.Ticks) * MicrosPerSecond / float64(c.ticksPerSecond)
}

// DeltaMicros returns (t2-t1) * 1e6 / ticksPerSecond.
func (c *Coarse) DeltaMicros(t1, t2 Timestamp, _ Frequency) float64 {
	return float64(t2.Ticks-t1.Ticks) * MicrosPerSecond / float64(c.ticksPerSecond)
}
