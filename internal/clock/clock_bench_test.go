package clock_test

import (
	"testing"

	"github.com/randomizedcoder/msutimer/internal/clock"
)

// Sink variable to prevent compiler from eliminating benchmark loops
var sinkTimestamp clock.Timestamp

func benchmarkNow(b *testing.B, src clock.Source) {
	if _, err := src.Frequency(); err != nil {
		b.Skipf("source unavailable: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()

	var ts clock.Timestamp
	for i := 0; i < b.N; i++ {
		ts, _ = src.Now()
	}
	sinkTimestamp = ts
}

func BenchmarkNow_HighFreq(b *testing.B) {
	benchmarkNow(b, clock.NewHighFreq())
}

func BenchmarkNow_WallClock(b *testing.B) {
	benchmarkNow(b, clock.NewWallClock(nil))
}

func BenchmarkNow_Coarse(b *testing.B) {
	benchmarkNow(b, clock.NewCoarse(clock.CoarseTicksPerSecond))
}
