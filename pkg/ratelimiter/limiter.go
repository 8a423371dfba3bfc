package ratelimiter

import (
	"context"

	"golang.org/x/time/rate"
)

// RateLimiter throttles outbound node requests with a token bucket.
// A nil *RateLimiter never blocks.
type RateLimiter struct {
	limiter *rate.Limiter
}

// New returns a limiter allowing rps requests per second with the given
// burst. It returns nil when rps is not positive so callers can treat
// throttling as disabled.
func New(rps, burst int) *RateLimiter {
	if rps <= 0 {
		return nil
	}
	if burst <= 0 {
		burst = rps
	}
	return &RateLimiter{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
}

// Wait blocks until a token is available or ctx is done.
func (rl *RateLimiter) Wait(ctx context.Context) error {
	if rl == nil {
		return nil
	}
	return rl.limiter.Wait(ctx)
}
