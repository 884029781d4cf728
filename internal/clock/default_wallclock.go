//go:build msutimer_wallclock

package clock

// Default returns the backend selected for this build: the system wall clock.
func Default() Source {
	return NewWallClock(nil)
}
