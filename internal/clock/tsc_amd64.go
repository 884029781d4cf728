//go:build amd64

package clock

import (
	"fmt"
	"slices"
	"sync"
	"time"
)

const counterName = "tsc"

// rdtsc reads the CPU's Time Stamp Counter.
// Implemented in tsc_amd64.s
func rdtsc() uint64

func readCounter() int64 {
	return int64(rdtsc())
}

var (
	calibrateOnce sync.Once
	tscFrequency  Frequency
	tscErr        error
)

func counterFrequency() (Frequency, error) {
	calibrateOnce.Do(func() {
		tscFrequency, tscErr = CalibrateTSC()
	})
	return tscFrequency, tscErr
}

// calibrationSamples and calibrationWindow bound the one-off cost of
// CalibrateTSC to roughly 50ms.
const (
	calibrationSamples = 5
	calibrationWindow  = 10 * time.Millisecond
)

// CalibrateTSC measures the TSC frequency in ticks per second.
//
// Each sample compares TSC ticks against the runtime monotonic clock across a
// short sleep; the median sample is returned. The result is approximate and
// can vary with:
//   - CPU frequency scaling on CPUs without an invariant TSC
//   - Power management states
//   - Virtualisation that traps or offsets rdtsc
func CalibrateTSC() (Frequency, error) {
	// Warm up the TSC path
	rdtsc()
	rdtsc()

	freqs := make([]Frequency, 0, calibrationSamples)
	for i := 0; i < calibrationSamples; i++ {
		start := rdtsc()
		t1 := nanotime()
		time.Sleep(calibrationWindow)
		end := rdtsc()
		t2 := nanotime()

		nanos := t2 - t1
		if end <= start || nanos <= 0 {
			return 0, fmt.Errorf("%w: tsc did not advance during calibration", ErrUnavailable)
		}
		freqs = append(freqs, Frequency(float64(end-start)*1e9/float64(nanos)))
	}

	slices.Sort(freqs)
	return freqs[len(freqs)/2], nil
}
