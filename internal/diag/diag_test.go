package diag_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/randomizedcoder/msutimer/internal/diag"
)

type recordingSink struct {
	warnings []string
	errors   []string
}

func (s *recordingSink) Warningf(format string, args ...any) {
	s.warnings = append(s.warnings, fmt.Sprintf(format, args...))
}

func (s *recordingSink) Errorf(format string, args ...any) {
	s.errors = append(s.errors, fmt.Sprintf(format, args...))
}

func TestReporter_Levels(t *testing.T) {
	testCases := []struct {
		level     diag.Level
		wantLines int
		wantExits int
	}{
		{diag.Silent, 0, 0},
		{diag.Report, 2, 0},
		{diag.Exit, 2, 2},
	}

	for _, tc := range testCases {
		t.Run(tc.level.String(), func(t *testing.T) {
			sink := &recordingSink{}
			var exits []int
			r := diag.NewReporter(tc.level, sink).WithExit(func(code int) {
				exits = append(exits, code)
			})

			r.Warn("Total", "failed at %d", 2)
			r.Error("New", "calibration failed")

			if got := len(sink.warnings) + len(sink.errors); got != tc.wantLines {
				t.Errorf("expected %d diagnostics, got %d", tc.wantLines, got)
			}
			if len(exits) != tc.wantExits {
				t.Errorf("expected %d exits, got %d", tc.wantExits, len(exits))
			}
			for _, code := range exits {
				if code != 1 {
					t.Errorf("expected exit code 1, got %d", code)
				}
			}
		})
	}
}

func TestReporter_Format(t *testing.T) {
	sink := &recordingSink{}
	r := diag.NewReporter(diag.Report, sink)

	r.Warn("Median", "failed at %d of %d", 3, 10)
	if len(sink.warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(sink.warnings))
	}
	if got := sink.warnings[0]; !strings.Contains(got, "[Median]") || !strings.Contains(got, "failed at 3 of 10") {
		t.Errorf("unexpected warning text: %q", got)
	}
	if strings.Contains(sink.warnings[0], "exiting") {
		t.Error("Report level must not announce an exit")
	}
}

func TestReporter_Nil(t *testing.T) {
	var r *diag.Reporter

	// Must not panic
	r.Warn("Tick", "ignored")
	r.Error("Tick", "ignored")

	if r.Level() != diag.Silent {
		t.Errorf("expected nil Reporter to be silent, got %v", r.Level())
	}
}

func TestLevel_String(t *testing.T) {
	if got := diag.Level(7).String(); got != "Level(7)" {
		t.Errorf("expected Level(7), got %q", got)
	}
}
