// Package probe provides the sample workloads benchmarked by msubench.
//
// Each Workload binds a probe function to its own state, which the timer's
// drivers pass back to the probe unmodified on every repetition:
//   - noop, spin, sleep: calibration baselines
//   - ring: push+pop on an SPSC ring buffer
//   - lfring: write+read on a sharded lock-free ring
//   - lru: add+get on an LRU cache
//   - ratelimit: token bucket Allow; aborts the run once the burst is spent
//   - stem: Porter-stem a word list
//   - redis: PING round trip (needs Params.RedisAddr)
//   - failat: fails on a chosen repetition
package probe

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/randomizedcoder/msutimer/internal/timer"
)

// ErrUnknownWorkload is returned by Lookup for unrecognised names.
var ErrUnknownWorkload = errors.New("probe: unknown workload")

// Params tunes the workloads. Zero values select the defaults.
type Params struct {
	Spin      int           // spin: loop iterations per call
	Sleep     time.Duration // sleep: duration per call
	RingSize  int           // ring: capacity
	CacheSize int           // lru: capacity
	Burst     int           // ratelimit: calls allowed before failing
	FailAt    int           // failat: zero-based failing repetition
	RedisAddr string        // redis: host:port
}

// DefaultParams returns the parameters used by msubench.
func DefaultParams() Params {
	return Params{
		Spin:      1000,
		Sleep:     100 * time.Microsecond,
		RingSize:  1024,
		CacheSize: 128,
		Burst:     1000,
		FailAt:    2,
	}
}

// Bound is a workload ready to run: a probe and the state it receives.
type Bound struct {
	Probe timer.Probe[any]
	Arg   any
	close func() error
}

// Close releases the workload's resources.
func (b Bound) Close() error {
	if b.close == nil {
		return nil
	}
	return b.close()
}

// bind adapts a typed probe to the opaque argument the drivers pass around.
func bind[S any](state S, probe func(S) bool, closeFn func() error) Bound {
	return Bound{
		Probe: func(arg any) bool { return probe(arg.(S)) },
		Arg:   state,
		close: closeFn,
	}
}

// Workload describes one entry of the catalogue.
type Workload struct {
	Name        string
	Description string
	// Offline workloads need no external service and run by default.
	Offline bool
	setup   func(ctx context.Context, p Params) (Bound, error)
}

// Setup builds the workload's state.
func (w Workload) Setup(ctx context.Context, p Params) (Bound, error) {
	b, err := w.setup(ctx, p)
	if err != nil {
		return Bound{}, fmt.Errorf("probe %s: %w", w.Name, err)
	}
	return b, nil
}

// Catalogue lists every workload in display order.
func Catalogue() []Workload {
	return []Workload{
		{"noop", "returns true immediately", true, setupNoop},
		{"spin", "busy loop of Params.Spin iterations", true, setupSpin},
		{"sleep", "time.Sleep(Params.Sleep)", true, setupSleep},
		{"ring", "push+pop on an SPSC ring buffer", true, setupRing},
		{"lfring", "write+read on a 1-shard go-lock-free-ring", true, setupLFRing},
		{"lru", "add+get on golang-lru", true, setupLRU},
		{"ratelimit", "x/time/rate Allow, fails after Params.Burst calls", true, setupRateLimit},
		{"stem", "porter-stem a word list", true, setupStem},
		{"redis", "PING via go-redis", false, setupRedis},
		{"failat", "fails on repetition Params.FailAt", true, setupFailAt},
	}
}

// Lookup returns the named workload.
func Lookup(name string) (Workload, error) {
	for _, w := range Catalogue() {
		if w.Name == name {
			return w, nil
		}
	}
	return Workload{}, fmt.Errorf("%w: %q", ErrUnknownWorkload, name)
}

// Offline returns the names of workloads that run without external services.
func Offline() []string {
	var names []string
	for _, w := range Catalogue() {
		if w.Offline {
			names = append(names, w.Name)
		}
	}
	return names
}
