package timer

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument covers a nil timer, a nil probe and a non-positive
	// repetition count.
	ErrInvalidArgument = errors.New("timer: invalid argument")

	// ErrUnsupported is returned when the clock source cannot calibrate or
	// sample on this platform.
	ErrUnsupported = errors.New("timer: clock unsupported")

	// ErrResourceExhausted is returned by Median when the sample buffer
	// would exceed the configured limit.
	ErrResourceExhausted = errors.New("timer: sample buffer limit exceeded")

	// ErrNoRepetitions is returned by Average and Median when the probe fails
	// on its first call, leaving nothing to aggregate.
	ErrNoRepetitions = errors.New("timer: no completed repetitions")

	// ErrProbeFailed matches any *ProbeError.
	ErrProbeFailed = errors.New("timer: probe failed")
)

// ProbeError reports a probe that returned false before all repetitions ran.
type ProbeError struct {
	Index     int // zero-based repetition that failed
	Requested int
}

func (e *ProbeError) Error() string {
	return fmt.Sprintf("timer: probe failed at repetition %d of %d", e.Index, e.Requested)
}

// Is makes errors.Is(err, ErrProbeFailed) true.
func (e *ProbeError) Is(target error) bool {
	return target == ErrProbeFailed
}
