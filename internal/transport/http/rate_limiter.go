package http

import (
	"net/http"

	"golang.org/x/time/rate"
)

// RateLimitTransport is a custom http.RoundTripper that throttles outgoing
// requests to a fixed rate. The upstream API bans clients that hammer it,
// so every request waits for a token before leaving the process.
type RateLimitTransport struct {
	// next is the underlying HTTP round tripper.
	next http.RoundTripper
	// limiter dispenses permission to send.
	limiter *rate.Limiter
}

// DefaultRequestsPerSecond is the request rate used when the configuration
// does not set one.
const DefaultRequestsPerSecond = 2.0

// NewRateLimitTransport creates and returns a new instance of
// RateLimitTransport. If requestsPerSecond is not positive, it defaults to
// DefaultRequestsPerSecond.
func NewRateLimitTransport(next http.RoundTripper, requestsPerSecond float64) http.RoundTripper {
	if requestsPerSecond <= 0 {
		requestsPerSecond = DefaultRequestsPerSecond
	}

	return &RateLimitTransport{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(requestsPerSecond), 1),
	}
}

// RoundTrip waits for the limiter and then executes the transaction.
// It implements the http.RoundTripper interface.
func (t *RateLimitTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if req == nil {
		return nil, ErrNilRequest
	}

	if err := t.limiter.Wait(req.Context()); err != nil {
		return nil, err
	}

	return t.next.RoundTrip(req)
}
