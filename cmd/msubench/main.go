// Command msubench times the sample workloads with the total, average and
// median benchmark drivers.
//
// Usage:
//
//	go run ./cmd/msubench -n 10000
//	go run ./cmd/msubench --mode median --workload lru --workload stem
//	go run ./cmd/msubench --workload redis --redis-addr localhost:6379
//
// MSUTIMER_DEBUG, MSUTIMER_MAX_SAMPLES and MSUTIMER_CLOCK provide defaults
// for --debug, --max-samples and --clock.
package main

import (
	"context"
	goflag "flag"
	"fmt"
	"os"
	"os/signal"
	"runtime"

	"github.com/golang/glog"
	"github.com/spf13/pflag"

	"github.com/randomizedcoder/msutimer/internal/probe"
	"github.com/randomizedcoder/msutimer/internal/timer"
)

func main() {
	opts, err := newOptions()
	if err != nil {
		glog.Errorf("%v", err)
		glog.Flush()
		os.Exit(1)
	}
	opts.addFlags(pflag.CommandLine)
	pflag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	pflag.Parse()

	if err := opts.validate(); err != nil {
		glog.Errorf("%v", err)
		glog.Flush()
		os.Exit(1)
	}

	if err := run(opts); err != nil {
		glog.Errorf("%v", err)
		glog.Flush()
		os.Exit(1)
	}
	glog.Flush()
}

func run(opts *options) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Ctrl-C makes the running probe fail, so the driver returns the
	// partial result instead of the process dying mid-table.
	var stopper probe.Stopper
	go func() {
		<-ctx.Done()
		stopper.Stop()
	}()

	tm, err := timer.New(opts.timerOptions...)
	if err != nil {
		return err
	}
	defer timer.Release(tm)

	fmt.Printf("Benchmarking %d workload(s), %d repetitions each\n", len(opts.workloads), opts.repeats)
	fmt.Printf("Architecture: %s/%s, clock: %s\n", runtime.GOOS, runtime.GOARCH, tm.Source().Name())
	if opts.accuracy {
		acc, err := tm.AccuracyMicros()
		if err != nil {
			return err
		}
		fmt.Printf("Clock accuracy: %.6f us (%.9f s)\n", acc, timer.MicrosToSeconds(acc))
	}
	fmt.Println("─────────────────────────────────────────────────────────────────────────")
	fmt.Printf("  %-10s %-8s %16s %14s %8s  %s\n", "workload", "mode", "usecs", "msecs", "erepeat", "status")

	for _, name := range opts.workloads {
		w, err := probe.Lookup(name)
		if err != nil {
			return err
		}
		for _, m := range opts.modes {
			if stopper.Stopped() {
				return nil
			}
			// Fresh state per mode so failat and ratelimit abort at the same
			// repetition in every row.
			bound, err := w.Setup(ctx, opts.params)
			if err != nil {
				return err
			}
			bound = bound.StopWith(&stopper)

			us, erepeat, err := modes[m](tm, opts.repeats, bound.Probe, bound.Arg)
			fmt.Printf("  %-10s %-8s %16.3f %14.6f %8d  %s\n",
				name, m, us, timer.MicrosToMillis(us), erepeat, status(err))

			if err := bound.Close(); err != nil {
				glog.Warningf("closing %s: %v", name, err)
			}
		}
	}

	fmt.Printf("\nNote: a negative result means the probe aborted at repetition erepeat;\n")
	fmt.Printf("its magnitude covers the repetitions completed before that.\n")
	return nil
}

func status(err error) string {
	if err == nil {
		return "ok"
	}
	return err.Error()
}
