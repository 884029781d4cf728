// Package diag reports timer failures to a pluggable sink.
//
// Three levels are supported:
//   - Silent: failures are visible only through return values
//   - Report: failures are written to the sink, control flow is unchanged
//   - Exit: failures are written to the sink and the process exits
//
// A nil *Reporter behaves like Silent.
package diag

import (
	"fmt"
	"os"

	"github.com/golang/glog"
)

// Level selects how failures are surfaced.
type Level int

const (
	Silent Level = iota
	Report
	Exit
)

func (l Level) String() string {
	switch l {
	case Silent:
		return "silent"
	case Report:
		return "report"
	case Exit:
		return "exit"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Sink receives formatted diagnostics.
type Sink interface {
	Warningf(format string, args ...any)
	Errorf(format string, args ...any)
}

// GlogSink writes diagnostics through glog.
type GlogSink struct{}

func (GlogSink) Warningf(format string, args ...any) {
	glog.Warningf(format, args...)
}

func (GlogSink) Errorf(format string, args ...any) {
	glog.Errorf(format, args...)
}

// Reporter routes failures to a Sink according to its Level.
type Reporter struct {
	level Level
	sink  Sink
	exit  func(code int)
}

// NewReporter returns a Reporter writing to sink, or to glog when sink is nil.
func NewReporter(level Level, sink Sink) *Reporter {
	if sink == nil {
		sink = GlogSink{}
	}
	return &Reporter{level: level, sink: sink, exit: exitProcess}
}

func exitProcess(code int) {
	glog.Flush()
	os.Exit(code)
}

// WithExit replaces the function called at the Exit level. Tests use it to
// observe termination without exiting.
func (r *Reporter) WithExit(fn func(code int)) *Reporter {
	r.exit = fn
	return r
}

// Level returns the configured level; Silent for a nil Reporter.
func (r *Reporter) Level() Level {
	if r == nil {
		return Silent
	}
	return r.level
}

// Warn reports a recoverable condition, e.g. a probe that aborted a run.
func (r *Reporter) Warn(op, format string, args ...any) {
	if r.Level() == Silent {
		return
	}
	r.sink.Warningf("msutimer WARNING [%s]: %s%s", op, fmt.Sprintf(format, args...), r.suffix())
	r.maybeExit()
}

// Error reports a failed operation.
func (r *Reporter) Error(op, format string, args ...any) {
	if r.Level() == Silent {
		return
	}
	r.sink.Errorf("msutimer ERROR [%s]: %s%s", op, fmt.Sprintf(format, args...), r.suffix())
	r.maybeExit()
}

func (r *Reporter) suffix() string {
	if r.level >= Exit {
		return " (exiting)"
	}
	return ""
}

func (r *Reporter) maybeExit() {
	if r.level >= Exit && r.exit != nil {
		r.exit(1)
	}
}
