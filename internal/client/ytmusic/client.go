package ytmusic

//go:generate $MOCKGEN -source=client.go -destination=mocks/client_mock.go

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"github.com/oshokin/ytmusic-cli/internal/config"
	"github.com/oshokin/ytmusic-cli/internal/logger"
	http_transport "github.com/oshokin/ytmusic-cli/internal/transport/http"
	"github.com/oshokin/ytmusic-cli/internal/utils"
)

// Client defines the interface for interacting with the music API.
type Client interface {
	// GetArtist retrieves an artist page by channel ID.
	GetArtist(ctx context.Context, channelID string) (*Artist, error)
	// GetAlbum retrieves an album page by browse ID.
	GetAlbum(ctx context.Context, browseID string) (*Album, error)
	// GetArtistAlbums retrieves an artist's full release list. The browse
	// ID and params come from the albums carousel of a GetArtist result.
	GetArtistAlbums(ctx context.Context, channelID, params string) ([]AlbumSummary, error)
	// Search retrieves the first page of artist results for a term.
	// Only artist results are decoded and continuations are not followed.
	Search(ctx context.Context, term string) (Page[SearchResultItem], error)
	// NextSearchPage fetches the page after a prior search page.
	NextSearchPage(ctx context.Context, prior Page[SearchResultItem]) (Page[SearchResultItem], error)
	// GetSearchSuggestions retrieves search completions for a partial term.
	GetSearchSuggestions(ctx context.Context, term string) ([]SearchSuggestion, error)
	// GetLyrics retrieves lyrics by the browse ID found on a watch playlist.
	GetLyrics(ctx context.Context, browseID string) (*Lyrics, error)
	// GetWatchPlaylist retrieves the playback queue built from a video.
	// Only queue entry IDs are decoded and continuations are not followed.
	GetWatchPlaylist(ctx context.Context, videoID string) (*WatchPlaylist, error)
	// NextWatchPlaylistPage fetches the queue entries after a prior page.
	NextWatchPlaylistPage(ctx context.Context, prior Page[WatchTrack]) (Page[WatchTrack], error)
	// GetLibraryPlaylists retrieves the first page of the user's playlists.
	GetLibraryPlaylists(ctx context.Context) (Page[Playlist], error)
	// NextLibraryPlaylistsPage fetches the playlists after a prior page.
	NextLibraryPlaylistsPage(ctx context.Context, prior Page[Playlist]) (Page[Playlist], error)
	// GetLibraryArtists is declared but not implemented yet.
	GetLibraryArtists(ctx context.Context) (Page[LibraryArtist], error)
	// GetPlaylist is declared but not implemented yet.
	GetPlaylist(ctx context.Context, playlistID string) (*Playlist, error)
	// GetHome is declared but not implemented yet.
	GetHome(ctx context.Context) ([]Playlist, error)
	// GetHistory is declared but not implemented yet.
	GetHistory(ctx context.Context) ([]Song, error)
	// SetTokenRefreshHook registers a callback invoked after every
	// successful OAuth token refresh, so refreshed tokens can be persisted.
	SetTokenRefreshHook(hook func(*OAuthCredential))
}

// ClientImpl implements the Client interface against the InnerTube API.
type ClientImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// baseURL is the base URL for API requests.
	baseURL string
	// tokenURL is the OAuth token endpoint used for refreshes.
	tokenURL string
	// httpClient is the HTTP client for making requests.
	httpClient *http.Client
	// clock supplies the current time; injectable for deterministic
	// signatures in tests.
	clock func() time.Time
	// credMu guards credential and refreshHook.
	credMu sync.Mutex
	// credential holds the current authorization material.
	credential Credential
	// refreshGroup collapses concurrent token refreshes into one.
	refreshGroup singleflight.Group
	// refreshHook is invoked after every successful token refresh.
	refreshHook func(*OAuthCredential)
}

// NewClient creates and returns a new instance of ClientImpl authorized by
// the given credential.
func NewClient(cfg *config.Config, credential Credential) (Client, error) {
	if credential == nil {
		return nil, ErrAuthNotConfigured
	}

	httpClient := &http.Client{
		Transport: http_transport.NewUserAgentInjector(
			http_transport.NewLogTransport(
				http_transport.NewRateLimitTransport(http.DefaultTransport, cfg.RequestsPerSecond),
				cfg.ParsedMaxLogLength),
			utils.NewSimpleUserAgentProvider(cfg.UserAgent)),
		Timeout: cfg.ParsedRequestTimeout,
	}

	return &ClientImpl{
		cfg:        cfg,
		baseURL:    apiBaseURL,
		tokenURL:   oauthTokenURL,
		httpClient: httpClient,
		clock:      time.Now,
		credential: credential,
	}, nil
}

// GetArtist retrieves an artist page by channel ID.
func (c *ClientImpl) GetArtist(ctx context.Context, channelID string) (*Artist, error) {
	return executeQuery[*Artist](ctx, c, getArtistQuery{channelID: channelID})
}

// GetAlbum retrieves an album page by browse ID.
func (c *ClientImpl) GetAlbum(ctx context.Context, browseID string) (*Album, error) {
	return executeQuery[*Album](ctx, c, getAlbumQuery{browseID: browseID})
}

// GetArtistAlbums retrieves an artist's full release list.
func (c *ClientImpl) GetArtistAlbums(ctx context.Context, channelID, params string) ([]AlbumSummary, error) {
	return executeQuery[[]AlbumSummary](ctx, c, getArtistAlbumsQuery{channelID: channelID, params: params})
}

// Search retrieves the first page of artist results for a term.
func (c *ClientImpl) Search(ctx context.Context, term string) (Page[SearchResultItem], error) {
	return executeQuery[Page[SearchResultItem]](ctx, c, searchQuery{term: term})
}

// NextSearchPage fetches the page after a prior search page.
func (c *ClientImpl) NextSearchPage(
	ctx context.Context,
	prior Page[SearchResultItem],
) (Page[SearchResultItem], error) {
	return executeContinuation[SearchResultItem](ctx, c, searchQuery{}, prior)
}

// GetSearchSuggestions retrieves search completions for a partial term.
func (c *ClientImpl) GetSearchSuggestions(ctx context.Context, term string) ([]SearchSuggestion, error) {
	return executeQuery[[]SearchSuggestion](ctx, c, getSearchSuggestionsQuery{term: term})
}

// GetLyrics retrieves lyrics by browse ID.
func (c *ClientImpl) GetLyrics(ctx context.Context, browseID string) (*Lyrics, error) {
	return executeQuery[*Lyrics](ctx, c, getLyricsQuery{browseID: browseID})
}

// GetWatchPlaylist retrieves the playback queue built from a video.
func (c *ClientImpl) GetWatchPlaylist(ctx context.Context, videoID string) (*WatchPlaylist, error) {
	return executeQuery[*WatchPlaylist](ctx, c, getWatchPlaylistQuery{videoID: videoID})
}

// NextWatchPlaylistPage fetches the queue entries after a prior page.
func (c *ClientImpl) NextWatchPlaylistPage(
	ctx context.Context,
	prior Page[WatchTrack],
) (Page[WatchTrack], error) {
	return executeContinuation[WatchTrack](ctx, c, getWatchPlaylistQuery{}, prior)
}

// GetLibraryPlaylists retrieves the first page of the user's playlists.
func (c *ClientImpl) GetLibraryPlaylists(ctx context.Context) (Page[Playlist], error) {
	return executeQuery[Page[Playlist]](ctx, c, getLibraryPlaylistsQuery{})
}

// NextLibraryPlaylistsPage fetches the playlists after a prior page.
func (c *ClientImpl) NextLibraryPlaylistsPage(
	ctx context.Context,
	prior Page[Playlist],
) (Page[Playlist], error) {
	return executeContinuation[Playlist](ctx, c, getLibraryPlaylistsQuery{}, prior)
}

// GetLibraryArtists is declared but its response decoding is not built yet.
func (c *ClientImpl) GetLibraryArtists(context.Context) (Page[LibraryArtist], error) {
	return Page[LibraryArtist]{}, fmt.Errorf("%w: get_library_artists", ErrNotImplemented)
}

// GetPlaylist is declared but its response decoding is not built yet.
func (c *ClientImpl) GetPlaylist(context.Context, string) (*Playlist, error) {
	return nil, fmt.Errorf("%w: get_playlist", ErrNotImplemented)
}

// GetHome is declared but its response decoding is not built yet.
func (c *ClientImpl) GetHome(context.Context) ([]Playlist, error) {
	return nil, fmt.Errorf("%w: get_home", ErrNotImplemented)
}

// GetHistory is declared but its response decoding is not built yet.
func (c *ClientImpl) GetHistory(context.Context) ([]Song, error) {
	return nil, fmt.Errorf("%w: get_history", ErrNotImplemented)
}

// SetTokenRefreshHook registers a callback invoked after every successful
// OAuth token refresh.
func (c *ClientImpl) SetTokenRefreshHook(hook func(*OAuthCredential)) {
	c.credMu.Lock()
	defer c.credMu.Unlock()

	c.refreshHook = hook
}

//nolint:revive // Has no sense, it's cause Go doesn't allow struct methods to be generic.
func executeQuery[T any](ctx context.Context, c *ClientImpl, q query[T]) (T, error) {
	var zero T

	payload, err := q.payload()
	if err != nil {
		return zero, err
	}

	raw, err := c.call(ctx, q.kind(), payload, "")
	if err != nil {
		return zero, err
	}

	root, err := newCrawler(raw)
	if err != nil {
		return zero, err
	}

	return q.decode(root)
}

//nolint:revive // Has no sense, it's cause Go doesn't allow struct methods to be generic.
func executeContinuation[T any](
	ctx context.Context,
	c *ClientImpl,
	q continuationDecoder[T],
	prior Page[T],
) (Page[T], error) {
	if prior.Continuation == nil {
		return Page[T]{}, ErrNoMoreContinuations
	}

	if prior.Continuation.kind != q.kind() {
		return Page[T]{}, fmt.Errorf("%w: continuation token belongs to endpoint %q, not %q",
			ErrInvalidParameter, endpoints[prior.Continuation.kind].name, endpoints[q.kind()].name)
	}

	raw, err := c.call(ctx, q.kind(), map[string]any{}, prior.Continuation.value)
	if err != nil {
		return Page[T]{}, err
	}

	root, err := newCrawler(raw)
	if err != nil {
		return Page[T]{}, err
	}

	return q.decodeContinuation(root)
}

// call issues one signed API request and returns the raw response body.
// An expired OAuth credential is refreshed before the request; a request
// rejected with 401 under OAuth gets exactly one refresh-and-retry.
func (c *ClientImpl) call(ctx context.Context, kind queryKind, payload map[string]any, continuation string) ([]byte, error) {
	cred := c.currentCredential()
	if cred.expired(c.clock()) {
		refreshed, err := c.refreshCredential(ctx)
		if err != nil {
			return nil, err
		}

		cred = refreshed
	}

	body, err := c.requestBody(payload)
	if err != nil {
		return nil, err
	}

	raw, status, err := c.send(ctx, cred, kind, body, continuation)
	if err == nil || status != http.StatusUnauthorized {
		return raw, err
	}

	// A 401 under OAuth usually means the token died before its expiry
	// instant; refresh once and retry once.
	if _, isOAuth := cred.(*OAuthCredential); !isOAuth {
		return nil, err
	}

	refreshed, refreshErr := c.refreshCredential(ctx)
	if refreshErr != nil {
		return nil, refreshErr
	}

	logger.Debug(ctx, "Retrying request with refreshed token")

	raw, _, err = c.send(ctx, refreshed, kind, body, continuation)

	return raw, err
}

// send performs a single HTTP exchange without any recovery.
func (c *ClientImpl) send(
	ctx context.Context,
	cred Credential,
	kind queryKind,
	body []byte,
	continuation string,
) ([]byte, int, error) {
	endpoint := endpoints[kind]

	route := c.baseURL + endpoint.uri + "?" + apiQueryParams + "&key=" + apiKey
	if continuation != "" {
		route += "&ctoken=" + continuation + "&continuation=" + continuation
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, route, bytes.NewReader(body))
	if err != nil {
		return nil, 0, fmt.Errorf("failed to build request: %w", err)
	}

	request.Header.Set("Content-Type", "application/json")

	if err = cred.apply(request, c.clock()); err != nil {
		return nil, 0, err
	}

	logger.DebugKV(ctx, "Calling API",
		"endpoint", endpoint.name,
		"auth_mode", cred.mode(),
		"request_id", uuid.NewString())

	response, err := c.httpClient.Do(request)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer response.Body.Close()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, response.StatusCode, fmt.Errorf("%w: failed to read response: %w", ErrTransport, err)
	}

	if response.StatusCode != http.StatusOK {
		return nil, response.StatusCode, statusError(response.StatusCode)
	}

	return raw, response.StatusCode, nil
}

// requestBody wraps an endpoint payload in the client context envelope.
func (c *ClientImpl) requestBody(payload map[string]any) ([]byte, error) {
	clientContext := map[string]any{
		"clientName":    clientName,
		"clientVersion": c.clientVersion(),
	}

	if c.cfg.Language != "" {
		clientContext["hl"] = c.cfg.Language
	}

	if c.cfg.Region != "" {
		clientContext["gl"] = c.cfg.Region
	}

	body := map[string]any{
		"context": map[string]any{"client": clientContext},
	}

	for key, value := range payload {
		body[key] = value
	}

	encoded, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("failed to encode request body: %w", err)
	}

	return encoded, nil
}

func (c *ClientImpl) clientVersion() string {
	if c.cfg.ClientVersion != "" {
		return c.cfg.ClientVersion
	}

	return defaultClientVersion
}

// currentCredential returns the credential under the lock, so a refresh in
// flight never hands out a half-replaced value.
func (c *ClientImpl) currentCredential() Credential {
	c.credMu.Lock()
	defer c.credMu.Unlock()

	return c.credential
}

// refreshCredential mints a fresh access token, replacing the stored
// credential. Concurrent callers are collapsed into a single refresh and
// all receive its outcome.
func (c *ClientImpl) refreshCredential(ctx context.Context) (Credential, error) {
	result, err, _ := c.refreshGroup.Do("refresh", func() (any, error) {
		oauth, ok := c.currentCredential().(*OAuthCredential)
		if !ok {
			return nil, fmt.Errorf("%w: cookie credentials cannot be refreshed", ErrAuthExpired)
		}

		refreshed, err := refreshAccessToken(ctx, c.httpClient, c.tokenURL, oauth.token.RefreshToken, c.clock())
		if err != nil {
			return nil, err
		}

		c.credMu.Lock()
		c.credential = refreshed
		hook := c.refreshHook
		c.credMu.Unlock()

		logger.Debug(ctx, "OAuth token refreshed")

		if hook != nil {
			hook(refreshed)
		}

		return refreshed, nil
	})
	if err != nil {
		return nil, err
	}

	return result.(Credential), nil //nolint:forcetypeassert // The group only stores credentials.
}

// statusError maps a non-OK HTTP status onto the error taxonomy.
func statusError(code int) error {
	var category error

	switch {
	case code == http.StatusUnauthorized || code == http.StatusForbidden:
		category = ErrAuthRejected
	case code == http.StatusTooManyRequests:
		category = ErrRateLimited
	case code >= http.StatusInternalServerError:
		category = ErrServerError
	default:
		category = ErrInvalidParameter
	}

	return &StatusError{Code: code, Category: category}
}
