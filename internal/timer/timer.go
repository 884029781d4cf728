// Package timer provides a stopwatch-style interval timer and micro-benchmark
// drivers built on a pluggable clock.Source.
//
// A Timer is owned by a single goroutine; it has no internal locking.
//
// Typical use:
//
//	t, err := timer.New()
//	if err != nil { ... }
//	defer timer.Release(t)
//
//	t.Tick()
//	work()
//	t.Tick()
//	us, _ := t.DiffMicros()
package timer

import (
	"fmt"
	"math"

	"github.com/randomizedcoder/msutimer/internal/clock"
	"github.com/randomizedcoder/msutimer/internal/diag"
)

// Sentinel is returned by scalar queries alongside ErrInvalidArgument.
const Sentinel = -math.MaxFloat64

// DefaultMaxSamples caps the Median sample buffer (128MiB of float64).
const DefaultMaxSamples = 1 << 24

// Timer records the elapsed time between successive Tick calls.
type Timer struct {
	src  clock.Source
	freq clock.Frequency
	ref  clock.Timestamp
	diff float64 // microseconds between the two most recent ticks

	diag       *diag.Reporter
	maxSamples int
}

// Option configures a Timer at construction.
type Option func(*Timer)

// WithSource selects the clock backend. The default is clock.Default().
func WithSource(src clock.Source) Option {
	return func(t *Timer) {
		t.src = src
	}
}

// WithDiagnostics routes failures to r. Without it failures are reported
// only through return values.
func WithDiagnostics(r *diag.Reporter) Option {
	return func(t *Timer) {
		t.diag = r
	}
}

// WithMaxSamples bounds the number of repetitions Median will buffer.
func WithMaxSamples(n int) Option {
	return func(t *Timer) {
		t.maxSamples = n
	}
}

// New calibrates the clock source and starts a Timer.
//
// It returns an error wrapping ErrUnsupported if calibration or the first
// reading fails; no Timer is produced in that case.
func New(opts ...Option) (*Timer, error) {
	t := &Timer{maxSamples: DefaultMaxSamples}
	for _, opt := range opts {
		opt(t)
	}
	if t.src == nil {
		t.src = clock.Default()
	}

	freq, err := t.src.Frequency()
	if err != nil {
		t.diag.Error("New", "(ERANGE) %s calibration failed: %v", t.src.Name(), err)
		return nil, fmt.Errorf("%w: %s calibration: %w", ErrUnsupported, t.src.Name(), err)
	}
	ref, err := t.src.Now()
	if err != nil {
		t.diag.Error("New", "(ERANGE) %s initial reading failed: %v", t.src.Name(), err)
		return nil, fmt.Errorf("%w: %s initial reading: %w", ErrUnsupported, t.src.Name(), err)
	}

	t.freq = freq
	t.ref = ref
	t.diff = 0
	return t, nil
}

// Release tears down t and returns nil, so callers can write
//
//	t = timer.Release(t)
//
// t must not be used afterwards.
func Release(t *Timer) *Timer {
	if t != nil {
		t.src = nil
		t.diag = nil
	}
	return nil
}

// Source returns the clock backend in use.
func (t *Timer) Source() clock.Source {
	if t == nil {
		return nil
	}
	return t.src
}

// Tick samples the clock, stores the microseconds elapsed since the previous
// Tick (or New) and returns the new reading in absolute microseconds.
//
// The returned value can be stored and subtracted from a later Tick result to
// measure across several calls.
func (t *Timer) Tick() (float64, error) {
	if t == nil {
		return Sentinel, fmt.Errorf("%w: nil timer", ErrInvalidArgument)
	}

	now, err := t.src.Now()
	if err != nil {
		t.diag.Error("Tick", "%s reading failed: %v", t.src.Name(), err)
		return Sentinel, fmt.Errorf("%w: %w", ErrUnsupported, err)
	}
	t.diff = t.src.DeltaMicros(t.ref, now, t.freq)
	t.ref = now
	return t.src.ToMicros(now, t.freq), nil
}

// DiffMicros returns the interval between the two most recent ticks in
// microseconds. Before the first Tick the value is meaningless.
func (t *Timer) DiffMicros() (float64, error) {
	if t == nil {
		return Sentinel, fmt.Errorf("%w: nil timer", ErrInvalidArgument)
	}
	return t.diff, nil
}

// DiffMillis is DiffMicros in milliseconds.
func (t *Timer) DiffMillis() (float64, error) {
	if t == nil {
		return Sentinel, fmt.Errorf("%w: nil timer", ErrInvalidArgument)
	}
	return MicrosToMillis(t.diff), nil
}

// DiffSeconds is DiffMicros in seconds.
func (t *Timer) DiffSeconds() (float64, error) {
	if t == nil {
		return Sentinel, fmt.Errorf("%w: nil timer", ErrInvalidArgument)
	}
	return MicrosToSeconds(t.diff), nil
}

// AccuracyMicros measures the smallest interval the clock can observe.
//
// It spins on Tick until the reading changes. There is no timeout: on a clock
// that never advances this call never returns.
func (t *Timer) AccuracyMicros() (float64, error) {
	if t == nil {
		return Sentinel, fmt.Errorf("%w: nil timer", ErrInvalidArgument)
	}

	t1, err := t.Tick()
	if err != nil {
		return Sentinel, err
	}
	for {
		t2, err := t.Tick()
		if err != nil {
			return Sentinel, err
		}
		if t2 > t1 {
			return t2 - t1, nil
		}
	}
}

// MicrosToMillis converts microseconds to milliseconds.
func MicrosToMillis(us float64) float64 {
	return us * 0.001
}

// MicrosToSeconds converts microseconds to seconds.
func MicrosToSeconds(us float64) float64 {
	return us * 0.000001
}
