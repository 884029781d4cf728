// Package config reads timer settings from the environment.
//
//	MSUTIMER_DEBUG        diagnostic level: 0 silent, 1 report, 2 report and exit
//	MSUTIMER_MAX_SAMPLES  largest repetition count Median will buffer
//	MSUTIMER_CLOCK        clock backend: highfreq, wallclock or coarse
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cast"

	"github.com/randomizedcoder/msutimer/internal/clock"
	"github.com/randomizedcoder/msutimer/internal/diag"
	"github.com/randomizedcoder/msutimer/internal/timer"
)

const (
	EnvDebug      = "MSUTIMER_DEBUG"
	EnvMaxSamples = "MSUTIMER_MAX_SAMPLES"
	EnvClock      = "MSUTIMER_CLOCK"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("config: invalid value")

// Config holds timer settings.
type Config struct {
	Level      diag.Level
	MaxSamples int
	Clock      string // empty selects the build default
}

// Default returns the settings used when nothing is configured.
func Default() Config {
	return Config{
		Level:      diag.Silent,
		MaxSamples: timer.DefaultMaxSamples,
	}
}

// Load reads the process environment.
func Load() (Config, error) {
	return FromLookup(os.LookupEnv)
}

// FromLookup reads settings through lookup, which has the signature of
// os.LookupEnv.
func FromLookup(lookup func(string) (string, bool)) (Config, error) {
	c := Default()

	if v, ok := lookup(EnvDebug); ok && v != "" {
		level, err := parseLevel(v)
		if err != nil {
			return c, fmt.Errorf("%s=%q: %w", EnvDebug, v, err)
		}
		c.Level = level
	}

	if v, ok := lookup(EnvMaxSamples); ok && v != "" {
		n, err := cast.ToIntE(v)
		if err != nil {
			return c, fmt.Errorf("%w: %s=%q: %v", ErrInvalid, EnvMaxSamples, v, err)
		}
		c.MaxSamples = n
	}

	if v, ok := lookup(EnvClock); ok {
		c.Clock = v
	}

	return c, c.Validate()
}

// parseLevel accepts a number or a boolean, so MSUTIMER_DEBUG=true means
// level 1.
func parseLevel(v string) (diag.Level, error) {
	if n, err := cast.ToIntE(v); err == nil {
		return diag.Level(n), nil
	}
	b, err := cast.ToBoolE(v)
	if err != nil {
		return 0, fmt.Errorf("%w: not a level", ErrInvalid)
	}
	if b {
		return diag.Report, nil
	}
	return diag.Silent, nil
}

// Validate checks ranges.
func (c Config) Validate() error {
	if c.Level < diag.Silent || c.Level > diag.Exit {
		return fmt.Errorf("%w: debug level %d outside 0..2", ErrInvalid, c.Level)
	}
	if c.MaxSamples <= 0 {
		return fmt.Errorf("%w: max samples %d must be positive", ErrInvalid, c.MaxSamples)
	}
	return nil
}

// Options converts c into timer options. Diagnostics go to sink (glog when
// nil).
func (c Config) Options(sink diag.Sink) ([]timer.Option, error) {
	src, err := clock.ByName(c.Clock)
	if err != nil {
		return nil, err
	}
	return []timer.Option{
		timer.WithSource(src),
		timer.WithMaxSamples(c.MaxSamples),
		timer.WithDiagnostics(diag.NewReporter(c.Level, sink)),
	}, nil
}
