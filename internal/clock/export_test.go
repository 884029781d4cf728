package clock

// NewCoarseWithCounter exposes the injectable nanosecond counter for tests.
var NewCoarseWithCounter = newCoarse
