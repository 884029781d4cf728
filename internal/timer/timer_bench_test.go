package timer_test

import (
	"testing"

	"github.com/randomizedcoder/msutimer/internal/clock"
	"github.com/randomizedcoder/msutimer/internal/timer"
)

// Sink variable to prevent compiler from eliminating benchmark loops
var sinkFloat float64

func benchmarkTick(b *testing.B, src clock.Source) {
	tm, err := timer.New(timer.WithSource(src))
	if err != nil {
		b.Skipf("source unavailable: %v", err)
	}
	b.ReportAllocs()
	b.ResetTimer()

	var result float64
	for i := 0; i < b.N; i++ {
		result, _ = tm.Tick()
	}
	sinkFloat = result
}

func BenchmarkTick_HighFreq(b *testing.B) {
	benchmarkTick(b, clock.NewHighFreq())
}

func BenchmarkTick_WallClock(b *testing.B) {
	benchmarkTick(b, clock.NewWallClock(nil))
}

func BenchmarkTick_Coarse(b *testing.B) {
	benchmarkTick(b, clock.NewCoarse(clock.CoarseTicksPerSecond))
}

func BenchmarkMedian_Noop(b *testing.B) {
	tm, err := timer.New()
	if err != nil {
		b.Fatalf("New() error: %v", err)
	}
	noop := func(struct{}) bool { return true }
	b.ReportAllocs()
	b.ResetTimer()

	var result float64
	for i := 0; i < b.N; i++ {
		result, _, _ = timer.Median(tm, 64, noop, struct{}{})
	}
	sinkFloat = result
}
