package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/pflag"

	"github.com/randomizedcoder/msutimer/internal/clock"
	"github.com/randomizedcoder/msutimer/internal/config"
	"github.com/randomizedcoder/msutimer/internal/diag"
	"github.com/randomizedcoder/msutimer/internal/probe"
	"github.com/randomizedcoder/msutimer/internal/timer"
)

type driver func(*timer.Timer, int, timer.Probe[any], any) (float64, int, error)

var modes = map[string]driver{
	"total":   timer.Total[any],
	"average": timer.Average[any],
	"median":  timer.Median[any],
}

var modeOrder = []string{"total", "average", "median"}

type options struct {
	cfg       config.Config
	repeats   int
	mode      string
	modes     []string
	workloads []string
	debug     int
	accuracy  bool
	params    probe.Params

	timerOptions []timer.Option
}

// newOptions seeds the flag defaults from the environment.
func newOptions() (*options, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	return &options{
		cfg:       cfg,
		repeats:   10_000,
		mode:      "all",
		workloads: probe.Offline(),
		debug:     int(cfg.Level),
		params:    probe.DefaultParams(),
	}, nil
}

func (o *options) addFlags(fs *pflag.FlagSet) {
	fs.IntVarP(&o.repeats, "repeats", "n", o.repeats, "repetitions per workload and mode")
	fs.StringVar(&o.mode, "mode", o.mode, "driver: total, average, median or all")
	fs.StringSliceVarP(&o.workloads, "workload", "w", o.workloads, "workloads to run (repeatable)")
	fs.StringVar(&o.cfg.Clock, "clock", o.cfg.Clock, "clock backend: "+strings.Join(clock.Names, ", ")+" (empty = build default)")
	fs.IntVar(&o.cfg.MaxSamples, "max-samples", o.cfg.MaxSamples, "largest repetition count the median driver buffers")
	fs.IntVar(&o.debug, "debug", o.debug, "diagnostics: 0 silent, 1 report, 2 report and exit")
	fs.BoolVar(&o.accuracy, "accuracy", false, "measure and print the clock accuracy first")

	fs.IntVar(&o.params.Spin, "spin", o.params.Spin, "spin workload: loop iterations")
	fs.DurationVar(&o.params.Sleep, "sleep", o.params.Sleep, "sleep workload: duration per call")
	fs.IntVar(&o.params.RingSize, "ring-size", o.params.RingSize, "ring workload: capacity")
	fs.IntVar(&o.params.CacheSize, "cache-size", o.params.CacheSize, "lru workload: capacity")
	fs.IntVar(&o.params.Burst, "burst", o.params.Burst, "ratelimit workload: calls allowed before failing")
	fs.IntVar(&o.params.FailAt, "fail-at", o.params.FailAt, "failat workload: failing repetition")
	fs.StringVar(&o.params.RedisAddr, "redis-addr", "", "redis workload: server address")
}

func (o *options) validate() error {
	if o.repeats <= 0 {
		return fmt.Errorf("--repeats must be positive, got %d", o.repeats)
	}

	switch o.mode {
	case "all":
		o.modes = modeOrder
	case "total", "average", "median":
		o.modes = []string{o.mode}
	default:
		return fmt.Errorf("unknown --mode %q", o.mode)
	}

	for _, name := range o.workloads {
		if _, err := probe.Lookup(name); err != nil {
			return err
		}
	}
	if o.params.Sleep < 0 || o.params.Sleep > time.Second {
		return fmt.Errorf("--sleep must be within [0, 1s], got %v", o.params.Sleep)
	}

	o.cfg.Level = diag.Level(o.debug)
	if err := o.cfg.Validate(); err != nil {
		return err
	}
	topts, err := o.cfg.Options(nil)
	if err != nil {
		return err
	}
	o.timerOptions = topts
	return nil
}
