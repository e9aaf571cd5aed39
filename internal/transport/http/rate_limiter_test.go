package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewRateLimitTransport tests the NewRateLimitTransport function.
func TestNewRateLimitTransport(t *testing.T) {
	t.Parallel()

	transport := NewRateLimitTransport(http.DefaultTransport, 2.0)

	assert.NotNil(t, transport)
	assert.Implements(t, (*http.RoundTripper)(nil), transport)
}

// TestRateLimitTransport_RoundTrip tests that requests pass through the limiter.
func TestRateLimitTransport_RoundTrip(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	transport := NewRateLimitTransport(http.DefaultTransport, 1000)

	req, err := http.NewRequest(http.MethodGet, server.URL, nil) //nolint:noctx // Test code, context not needed.
	require.NoError(t, err)

	resp, err := transport.RoundTrip(req)
	require.NoError(t, err)

	defer resp.Body.Close() //nolint:errcheck // Test cleanup, error is not critical.

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}

// TestRateLimitTransport_RoundTrip_NilRequest tests that a nil request is rejected.
func TestRateLimitTransport_RoundTrip_NilRequest(t *testing.T) {
	t.Parallel()

	transport := NewRateLimitTransport(http.DefaultTransport, 2.0)

	_, err := transport.RoundTrip(nil)
	require.ErrorIs(t, err, ErrNilRequest)
}

// TestRateLimitTransport_Throttles tests that consecutive requests are spaced out.
func TestRateLimitTransport_Throttles(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	// 10 requests per second: the second request must wait about 100ms.
	transport := NewRateLimitTransport(http.DefaultTransport, 10)

	start := time.Now()

	for range 2 {
		req, err := http.NewRequest(http.MethodGet, server.URL, nil) //nolint:noctx // Test code, context not needed.
		require.NoError(t, err)

		resp, err := transport.RoundTrip(req)
		require.NoError(t, err)
		resp.Body.Close() //nolint:errcheck,gosec // Test cleanup, error is not critical.
	}

	assert.GreaterOrEqual(t, time.Since(start), 90*time.Millisecond)
}

// TestRateLimitTransport_DefaultRate tests that a non-positive rate falls back to the default.
func TestRateLimitTransport_DefaultRate(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	// A zero rate must not block forever.
	transport := NewRateLimitTransport(http.DefaultTransport, 0)

	req, err := http.NewRequest(http.MethodGet, server.URL, nil) //nolint:noctx // Test code, context not needed.
	require.NoError(t, err)

	resp, err := transport.RoundTrip(req)
	require.NoError(t, err)

	defer resp.Body.Close() //nolint:errcheck // Test cleanup, error is not critical.

	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
