package timer

import (
	"fmt"
	"slices"
)

// Probe is the unit of work a benchmark driver repeats. It returns false to
// abort the run. arg is passed through unmodified on every call.
type Probe[T any] func(arg T) bool

// All drivers share the same contract:
//
//   - A nil timer, a nil probe or n <= 0 returns (0, 0, ErrInvalidArgument)
//     without calling the probe.
//   - On full completion the result is positive and the index is 0.
//   - If the probe returns false at zero-based repetition i, the result is
//     negated, the index is i and the error is a *ProbeError. The magnitude
//     still covers the repetitions that ran.

// Total returns the microseconds taken by n sequential calls to probe.
func Total[T any](t *Timer, n int, probe Probe[T], arg T) (float64, int, error) {
	if err := t.checkBench("Total", n, probe == nil); err != nil {
		return 0, 0, err
	}

	if _, err := t.Tick(); err != nil {
		return 0, 0, err
	}
	failed := -1
	for i := 0; i < n; i++ {
		if !probe(arg) {
			failed = i
			break
		}
	}
	if _, err := t.Tick(); err != nil {
		return 0, 0, err
	}

	if failed >= 0 {
		t.diag.Warn("Total", "requested %d repetitions, failed at %d; returning elapsed usecs with negative sign", n, failed)
		return -t.diff, failed, &ProbeError{Index: failed, Requested: n}
	}
	return t.diff, 0, nil
}

// Average returns the mean microseconds of a single probe call over n
// repetitions. Each call is timed on its own, so loop overhead is excluded.
//
// If the probe fails at i, the mean covers the i completed calls. Failing on
// the very first call leaves nothing to average: the result is 0 and the
// error wraps both ErrNoRepetitions and the *ProbeError.
func Average[T any](t *Timer, n int, probe Probe[T], arg T) (float64, int, error) {
	if err := t.checkBench("Average", n, probe == nil); err != nil {
		return 0, 0, err
	}

	var sum float64
	completed, perr, err := sample(t, n, probe, arg, func(us float64) { sum += us })
	if err != nil {
		return 0, 0, err
	}
	if perr == nil {
		return sum / float64(completed), 0, nil
	}
	if completed == 0 {
		t.diag.Warn("Average", "probe failed on the first of %d repetitions; nothing to average", n)
		return 0, 0, fmt.Errorf("%w: %w", ErrNoRepetitions, perr)
	}
	t.diag.Warn("Average", "requested %d repetitions, failed at %d; returning average usecs with negative sign", n, perr.Index)
	return -sum / float64(completed), perr.Index, perr
}

// Median returns the median microseconds of a single probe call over n
// repetitions. Unlike Average it is insensitive to occasional spikes.
//
// For an even number of completed calls the two central samples are averaged.
// n samples are buffered; n above the timer's limit (see WithMaxSamples)
// returns ErrResourceExhausted before any call.
func Median[T any](t *Timer, n int, probe Probe[T], arg T) (float64, int, error) {
	if err := t.checkBench("Median", n, probe == nil); err != nil {
		return 0, 0, err
	}
	if n > t.maxSamples {
		t.diag.Error("Median", "sample buffer of %d exceeds limit %d; returning 0 usecs", n, t.maxSamples)
		return 0, 0, fmt.Errorf("%w: %d samples, limit %d", ErrResourceExhausted, n, t.maxSamples)
	}

	samples := make([]float64, 0, n)
	_, perr, err := sample(t, n, probe, arg, func(us float64) { samples = append(samples, us) })
	if err != nil {
		return 0, 0, err
	}
	if perr != nil && len(samples) == 0 {
		t.diag.Warn("Median", "probe failed on the first of %d repetitions; no median", n)
		return 0, 0, fmt.Errorf("%w: %w", ErrNoRepetitions, perr)
	}

	slices.Sort(samples)
	m := median(samples)
	if perr != nil {
		t.diag.Warn("Median", "requested %d repetitions, failed at %d; returning median usecs with negative sign", n, perr.Index)
		return -m, perr.Index, perr
	}
	return m, 0, nil
}

// median expects a sorted, non-empty slice.
func median(sorted []float64) float64 {
	k := len(sorted)
	if k%2 == 1 {
		return sorted[k/2]
	}
	return (sorted[k/2-1] + sorted[k/2]) / 2
}

// sample times each probe call individually and hands the per-call
// microseconds to record. It stops at the first failing call.
func sample[T any](t *Timer, n int, probe Probe[T], arg T, record func(us float64)) (int, *ProbeError, error) {
	for i := 0; i < n; i++ {
		if _, err := t.Tick(); err != nil {
			return i, nil, err
		}
		if !probe(arg) {
			return i, &ProbeError{Index: i, Requested: n}, nil
		}
		if _, err := t.Tick(); err != nil {
			return i, nil, err
		}
		record(t.diff)
	}
	return n, nil, nil
}

func (t *Timer) checkBench(op string, n int, nilProbe bool) error {
	if t == nil {
		return fmt.Errorf("%s: %w: nil timer", op, ErrInvalidArgument)
	}
	if nilProbe {
		t.diag.Error(op, "(EDOM) nil probe; returning 0 usecs")
		return fmt.Errorf("%s: %w: nil probe", op, ErrInvalidArgument)
	}
	if n <= 0 {
		t.diag.Warn(op, "(EDOM) %d repetitions requested; returning 0 usecs", n)
		return fmt.Errorf("%s: %w: %d repetitions", op, ErrInvalidArgument, n)
	}
	return nil
}
