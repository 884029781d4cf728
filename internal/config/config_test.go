package config_test

import (
	"errors"
	"testing"

	"github.com/randomizedcoder/msutimer/internal/clock"
	"github.com/randomizedcoder/msutimer/internal/config"
	"github.com/randomizedcoder/msutimer/internal/diag"
	"github.com/randomizedcoder/msutimer/internal/timer"
)

func env(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func TestFromLookup_Defaults(t *testing.T) {
	c, err := config.FromLookup(env(nil))
	if err != nil {
		t.Fatalf("FromLookup() error: %v", err)
	}
	if c != config.Default() {
		t.Errorf("expected defaults, got %+v", c)
	}
	if c.MaxSamples != timer.DefaultMaxSamples {
		t.Errorf("expected MaxSamples = %d, got %d", timer.DefaultMaxSamples, c.MaxSamples)
	}
}

func TestFromLookup_Debug(t *testing.T) {
	testCases := []struct {
		value string
		want  diag.Level
	}{
		{"0", diag.Silent},
		{"1", diag.Report},
		{"2", diag.Exit},
		{"true", diag.Report},
		{"false", diag.Silent},
		{"", diag.Silent},
	}

	for _, tc := range testCases {
		t.Run(tc.value, func(t *testing.T) {
			c, err := config.FromLookup(env(map[string]string{config.EnvDebug: tc.value}))
			if err != nil {
				t.Fatalf("FromLookup() error: %v", err)
			}
			if c.Level != tc.want {
				t.Errorf("expected level %v, got %v", tc.want, c.Level)
			}
		})
	}
}

func TestFromLookup_Invalid(t *testing.T) {
	testCases := []map[string]string{
		{config.EnvDebug: "3"},
		{config.EnvDebug: "-1"},
		{config.EnvDebug: "loud"},
		{config.EnvMaxSamples: "lots"},
		{config.EnvMaxSamples: "0"},
	}

	for _, vars := range testCases {
		if _, err := config.FromLookup(env(vars)); !errors.Is(err, config.ErrInvalid) {
			t.Errorf("%v: expected ErrInvalid, got %v", vars, err)
		}
	}
}

func TestOptions(t *testing.T) {
	c, err := config.FromLookup(env(map[string]string{
		config.EnvClock:      "wallclock",
		config.EnvMaxSamples: "2",
	}))
	if err != nil {
		t.Fatalf("FromLookup() error: %v", err)
	}

	opts, err := c.Options(nil)
	if err != nil {
		t.Fatalf("Options() error: %v", err)
	}
	tm, err := timer.New(opts...)
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if got := tm.Source().Name(); got != "wallclock" {
		t.Errorf("expected wallclock source, got %q", got)
	}

	noop := func(struct{}) bool { return true }
	if _, _, err := timer.Median(tm, 3, noop, struct{}{}); !errors.Is(err, timer.ErrResourceExhausted) {
		t.Errorf("expected the sample limit to apply, got %v", err)
	}
}

func TestOptions_UnknownClock(t *testing.T) {
	c := config.Default()
	c.Clock = "hourglass"
	if _, err := c.Options(nil); !errors.Is(err, clock.ErrUnknownSource) {
		t.Errorf("expected ErrUnknownSource, got %v", err)
	}
}
