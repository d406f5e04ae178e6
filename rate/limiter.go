// Package rate paces requests to the documentation service.
package rate

import (
	"context"

	"github.com/fwojciec/context7"
	"golang.org/x/time/rate"
)

var _ context7.Limiter = (*Limiter)(nil)

// Limiter is a token bucket with a burst of 1, so calls to Wait are spaced
// at least 1/rps apart. A non-positive rps disables limiting.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a new Limiter allowing rps requests per second.
func NewLimiter(rps float64) *Limiter {
	limit := rate.Inf
	if rps > 0 {
		limit = rate.Limit(rps)
	}
	return &Limiter{limiter: rate.NewLimiter(limit, 1)}
}

// Wait blocks until the rate limit allows another request.
// Returns an error if the context is canceled before the wait completes.
func (l *Limiter) Wait(ctx context.Context) error {
	return l.limiter.Wait(ctx)
}
