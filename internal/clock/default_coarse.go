//go:build msutimer_coarse && !msutimer_wallclock

package clock

// Default returns the backend selected for this build: the coarse counter.
func Default() Source {
	return NewCoarse(CoarseTicksPerSecond)
}
