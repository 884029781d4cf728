package probe

import (
	"context"

	"golang.org/x/time/rate"
)

// setupRateLimit builds a limiter that never refills: the first Burst calls
// are allowed and the next one aborts the run.
func setupRateLimit(_ context.Context, p Params) (Bound, error) {
	return bind(rate.NewLimiter(0, p.Burst), (*rate.Limiter).Allow, nil), nil
}
