package probe

import "sync/atomic"

// Stopper ends a run early from another goroutine, e.g. a signal handler.
//
// The timer's drivers have no cancellation hook; a stopped probe simply
// returns false, which they report as an aborted run with a negative result.
// Checking it costs a single atomic load per repetition.
type Stopper struct {
	done atomic.Bool
}

// Stop makes every probe wrapped by this Stopper fail from now on.
// Safe to call multiple times and from any goroutine.
func (s *Stopper) Stop() {
	s.done.Store(true)
}

// Stopped reports whether Stop has been called.
func (s *Stopper) Stopped() bool {
	return s.done.Load()
}

// StopWith returns a copy of b whose probe fails once s is stopped.
func (b Bound) StopWith(s *Stopper) Bound {
	inner := b.Probe
	b.Probe = func(arg any) bool {
		return !s.Stopped() && inner(arg)
	}
	return b
}
