package ytmusic

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oshokin/ytmusic-cli/internal/config"
)

const emptySearchResponse = `{
	"contents": {"tabbedSearchResultsRenderer": {"tabs": [{"tabRenderer": {"content": {
		"sectionListRenderer": {"contents": []}
	}}}]}}
}`

func testConfig() *config.Config {
	return &config.Config{
		AuthMode:             config.AuthModeBrowser,
		Cookie:               "SAPISID=test-sapisid",
		Language:             "en",
		Region:               "US",
		RequestsPerSecond:    1000,
		ParsedRequestTimeout: 5 * time.Second,
		ParsedMaxLogLength:   64 * 1024,
	}
}

// newTestClient builds a client aimed at the given API handler, with a fixed
// clock and a browser credential unless another one is supplied.
func newTestClient(t *testing.T, handler http.HandlerFunc, credential Credential) (*ClientImpl, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	if credential == nil {
		var err error

		credential, err = NewBrowserCredential("SAPISID=test-sapisid")
		require.NoError(t, err)
	}

	client, err := NewClient(testConfig(), credential)
	require.NoError(t, err)

	impl, ok := client.(*ClientImpl)
	require.True(t, ok)

	impl.baseURL = server.URL + "/"
	impl.clock = func() time.Time { return time.Unix(1700000000, 0) }

	return impl, server
}

func TestClientRequestEnvelope(t *testing.T) {
	t.Parallel()

	var captured struct {
		body  map[string]any
		query map[string]string
		auth  string
	}

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(raw, &captured.body))

		captured.query = map[string]string{}
		for key := range r.URL.Query() {
			captured.query[key] = r.URL.Query().Get(key)
		}

		captured.auth = r.Header.Get("Authorization")

		_, _ = w.Write([]byte(emptySearchResponse))
	}, nil)

	_, err := client.Search(context.Background(), "test artist")
	require.NoError(t, err)

	// Fixed query parameters and the API key travel on the URL.
	assert.Equal(t, "json", captured.query["alt"])
	assert.Equal(t, "false", captured.query["prettyPrint"])
	assert.Equal(t, apiKey, captured.query["key"])

	// The payload is wrapped in the client context envelope.
	clientContext := captured.body["context"].(map[string]any)["client"].(map[string]any)
	assert.Equal(t, clientName, clientContext["clientName"])
	assert.Equal(t, defaultClientVersion, clientContext["clientVersion"])
	assert.Equal(t, "en", clientContext["hl"])
	assert.Equal(t, "US", clientContext["gl"])

	assert.Equal(t, "test artist", captured.body["query"])
	assert.Equal(t, searchParamsArtists, captured.body["params"])

	// The request is signed for the fixed clock instant.
	assert.Contains(t, captured.auth, "SAPISIDHASH 1700000000_")
}

func TestClientStatusMapping(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		status      int
		expectedErr error
	}{
		{name: "unauthorized", status: http.StatusUnauthorized, expectedErr: ErrAuthRejected},
		{name: "forbidden", status: http.StatusForbidden, expectedErr: ErrAuthRejected},
		{name: "too many requests", status: http.StatusTooManyRequests, expectedErr: ErrRateLimited},
		{name: "internal server error", status: http.StatusInternalServerError, expectedErr: ErrServerError},
		{name: "bad gateway", status: http.StatusBadGateway, expectedErr: ErrServerError},
		{name: "bad request", status: http.StatusBadRequest, expectedErr: ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}, nil)

			_, err := client.Search(context.Background(), "test")
			require.ErrorIs(t, err, tt.expectedErr)

			var statusErr *StatusError
			require.ErrorAs(t, err, &statusErr)
			assert.Equal(t, tt.status, statusErr.Code)
		})
	}
}

func TestClientBrowserCredentialNotRetriedOn401(t *testing.T) {
	t.Parallel()

	var requests atomic.Int64

	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		requests.Add(1)
		w.WriteHeader(http.StatusUnauthorized)
	}, nil)

	_, err := client.Search(context.Background(), "test")
	require.ErrorIs(t, err, ErrAuthRejected)

	// Cookies cannot be refreshed, so there is nothing to retry with.
	assert.Equal(t, int64(1), requests.Load())
}

func TestClientOAuth401RefreshesOnceAndRetries(t *testing.T) {
	t.Parallel()

	var apiRequests, tokenRequests atomic.Int64

	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		tokenRequests.Add(1)
		_, _ = w.Write([]byte(`{"access_token": "fresh-access", "token_type": "Bearer", "expires_in": 3600}`))
	}))
	t.Cleanup(tokenServer.Close)

	credential := NewOAuthCredential(OAuthToken{
		AccessToken:  "stale-access",
		TokenType:    "Bearer",
		RefreshToken: "refresh-token",
		ExpiresIn:    3600,
	}, time.Unix(1700000000, 0))

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		apiRequests.Add(1)

		// The first attempt carries the stale token and is rejected.
		if r.Header.Get("Authorization") == "Bearer stale-access" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}

		_, _ = w.Write([]byte(emptySearchResponse))
	}, credential)
	client.tokenURL = tokenServer.URL

	page, err := client.Search(context.Background(), "test")
	require.NoError(t, err)
	assert.Empty(t, page.Items)

	assert.Equal(t, int64(2), apiRequests.Load())
	assert.Equal(t, int64(1), tokenRequests.Load())
}

func TestClientExpiredTokenRefreshedBeforeRequest(t *testing.T) {
	t.Parallel()

	var tokenRequests atomic.Int64

	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		tokenRequests.Add(1)
		_, _ = w.Write([]byte(`{"access_token": "fresh-access", "token_type": "Bearer", "expires_in": 3600}`))
	}))
	t.Cleanup(tokenServer.Close)

	// Already expired at the client's fixed clock instant.
	credential := NewStoredOAuthCredential(OAuthToken{
		AccessToken:  "stale-access",
		TokenType:    "Bearer",
		RefreshToken: "refresh-token",
	}, time.Unix(1690000000, 0))

	var refreshedTokens []string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer fresh-access", r.Header.Get("Authorization"))
		_, _ = w.Write([]byte(emptySearchResponse))
	}, credential)
	client.tokenURL = tokenServer.URL
	client.SetTokenRefreshHook(func(refreshed *OAuthCredential) {
		refreshedTokens = append(refreshedTokens, refreshed.Token().AccessToken)
	})

	_, err := client.Search(context.Background(), "test")
	require.NoError(t, err)

	assert.Equal(t, int64(1), tokenRequests.Load())
	assert.Equal(t, []string{"fresh-access"}, refreshedTokens)
}

func TestClientConcurrentRefreshesCollapse(t *testing.T) {
	t.Parallel()

	var tokenRequests atomic.Int64

	tokenServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		tokenRequests.Add(1)

		// Hold the refresh long enough for both callers to pile up on it.
		time.Sleep(100 * time.Millisecond)
		_, _ = w.Write([]byte(`{"access_token": "fresh-access", "token_type": "Bearer", "expires_in": 3600}`))
	}))
	t.Cleanup(tokenServer.Close)

	credential := NewStoredOAuthCredential(OAuthToken{
		AccessToken:  "stale-access",
		TokenType:    "Bearer",
		RefreshToken: "refresh-token",
	}, time.Unix(1690000000, 0))

	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(emptySearchResponse))
	}, credential)
	client.tokenURL = tokenServer.URL

	var wg sync.WaitGroup

	for range 2 {
		wg.Add(1)

		go func() {
			defer wg.Done()

			_, err := client.Search(context.Background(), "test")
			assert.NoError(t, err)
		}()
	}

	wg.Wait()

	// Both callers observed the same single refresh.
	assert.Equal(t, int64(1), tokenRequests.Load())
}

func TestClientContinuationRequiresToken(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(emptySearchResponse))
	}, nil)

	_, err := client.NextSearchPage(context.Background(), Page[SearchResultItem]{})
	require.ErrorIs(t, err, ErrNoMoreContinuations)
}

func TestClientContinuationRejectsForeignToken(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(emptySearchResponse))
	}, nil)

	// A watch playlist cursor must not be replayed against the library
	// endpoint.
	prior := Page[Playlist]{
		Continuation: &ContinuationToken{value: "foreign", kind: kindGetWatchPlaylist},
	}

	_, err := client.NextLibraryPlaylistsPage(context.Background(), prior)
	require.ErrorIs(t, err, ErrInvalidParameter)
	assert.Contains(t, err.Error(), "get_watch_playlist")
	assert.Contains(t, err.Error(), "get_library_playlists")
}

func TestClientContinuationRequest(t *testing.T) {
	t.Parallel()

	var captured map[string]string

	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		captured = map[string]string{
			"ctoken":       r.URL.Query().Get("ctoken"),
			"continuation": r.URL.Query().Get("continuation"),
		}

		_, _ = w.Write([]byte(`{"continuationContents": {"gridContinuation": {"items": []}}}`))
	}, nil)

	prior := Page[Playlist]{
		Continuation: &ContinuationToken{value: "library-cursor", kind: kindGetLibraryPlaylists},
	}

	page, err := client.NextLibraryPlaylistsPage(context.Background(), prior)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Nil(t, page.Continuation)

	// The cursor travels in both query parameters.
	assert.Equal(t, "library-cursor", captured["ctoken"])
	assert.Equal(t, "library-cursor", captured["continuation"])
}

func TestClientUnimplementedEndpoints(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{}`))
	}, nil)

	ctx := context.Background()

	_, err := client.GetLibraryArtists(ctx)
	require.ErrorIs(t, err, ErrNotImplemented)

	_, err = client.GetPlaylist(ctx, "VL123")
	require.ErrorIs(t, err, ErrNotImplemented)

	_, err = client.GetHome(ctx)
	require.ErrorIs(t, err, ErrNotImplemented)

	_, err = client.GetHistory(ctx)
	require.ErrorIs(t, err, ErrNotImplemented)
}

func TestNewClientRequiresCredential(t *testing.T) {
	t.Parallel()

	_, err := NewClient(testConfig(), nil)
	require.ErrorIs(t, err, ErrAuthNotConfigured)
}
