package httpclient

import (
	"context"

	"golang.org/x/time/rate"
)

// RequestLimiter paces outgoing requests so bursts of input do not flood the backend.
type RequestLimiter struct {
	limiter *rate.Limiter
}

// NewRequestLimiter returns nil when rps is not positive, which disables limiting.
func NewRequestLimiter(rps float64, burst int) *RequestLimiter {
	if rps <= 0 {
		return nil
	}
	if burst < 1 {
		burst = 1
	}
	return &RequestLimiter{limiter: rate.NewLimiter(rate.Limit(rps), burst)}
}

// Wait blocks until a request may be sent or ctx ends.
func (l *RequestLimiter) Wait(ctx context.Context) error {
	if l == nil {
		return nil
	}
	return l.limiter.Wait(ctx)
}
