//go:build !msutimer_wallclock && !msutimer_coarse

package clock

// Default returns the backend selected for this build: the hardware counter.
// Build with -tags msutimer_wallclock or -tags msutimer_coarse to switch.
func Default() Source {
	return NewHighFreq()
}
