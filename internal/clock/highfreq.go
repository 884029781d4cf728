package clock

// HighFreq reads a monotonic hardware counter.
//
// On amd64 this is the CPU Time Stamp Counter, calibrated once per process
// against the runtime clock. Other architectures fall back to the runtime's
// nanosecond counter, whose frequency is exactly 1e9.
//
// Resolution is sub-microsecond and the reading is immune to wall-clock
// adjustments. A 64-bit counter at a few GHz takes decades to wrap.
type HighFreq struct{}

// NewHighFreq returns the hardware counter source.
func NewHighFreq() *HighFreq {
	return &HighFreq{}
}

// Name returns the counter in use ("tsc" or "nanotime").
func (*HighFreq) Name() string {
	return counterName
}

// Now reads the counter.
func (*HighFreq) Now() (Timestamp, error) {
	return Timestamp{Ticks: readCounter()}, nil
}

// Frequency returns the counter's ticks per second.
func (*HighFreq) Frequency() (Frequency, error) {
	return counterFrequency()
}

// ToMicros converts a counter reading to microseconds.
func (*HighFreq) ToMicros(t Timestamp, f Frequency) float64 {
	return float64(t.Ticks) * MicrosPerSecond / float64(f)
}

// DeltaMicros returns (t2-t1) * 1e6 / f.
func (*HighFreq) DeltaMicros(t1, t2 Timestamp, f Frequency) float64 {
	return float64(t2.Ticks-t1.Ticks) * MicrosPerSecond / float64(f)
}
