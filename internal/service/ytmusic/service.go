package ytmusic

//go:generate $MOCKGEN -source=service.go -destination=mocks/service_mock.go

import (
	"context"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"

	client "github.com/oshokin/ytmusic-cli/internal/client/ytmusic"
	"github.com/oshokin/ytmusic-cli/internal/config"
	"github.com/oshokin/ytmusic-cli/internal/logger"
)

const (
	// artistsCacheSize defines the maximum number of artist pages to cache.
	// Artist pages change rarely within a session.
	artistsCacheSize = 500
	// albumsCacheSize defines the maximum number of album pages to cache.
	albumsCacheSize = 2000
	// lyricsCacheSize defines the maximum number of lyrics entries to cache.
	// Lyrics never change, so cached entries stay valid for the whole session.
	lyricsCacheSize = 1000
)

// Static error definitions for better error handling.
var (
	// ErrLyricsUnavailable indicates that the track has no lyrics attached.
	ErrLyricsUnavailable = errors.New("no lyrics available for this track")
	// ErrAlbumListUnavailable indicates that the artist page exposes no
	// browsable full release list.
	ErrAlbumListUnavailable = errors.New("artist page exposes no full album list")
)

// Service provides cached, composed operations on top of the API client.
type Service interface {
	// SearchArtists returns the first page of artist results for a term.
	SearchArtists(ctx context.Context, term string) ([]client.SearchResultItem, error)
	// Suggest returns search completions for a partial term.
	Suggest(ctx context.Context, term string) ([]client.SearchSuggestion, error)
	// GetArtist returns an artist page, from cache when possible.
	GetArtist(ctx context.Context, channelID string) (*client.Artist, error)
	// GetArtistAlbums returns an artist's full release list, resolving the
	// browse target through the artist page.
	GetArtistAlbums(ctx context.Context, channelID string) ([]client.AlbumSummary, error)
	// GetAlbum returns an album page, from cache when possible.
	GetAlbum(ctx context.Context, browseID string) (*client.Album, error)
	// GetLyrics returns lyrics by browse ID, from cache when possible.
	GetLyrics(ctx context.Context, browseID string) (*client.Lyrics, error)
	// GetLyricsForVideo resolves a video's lyrics via its watch playlist.
	GetLyricsForVideo(ctx context.Context, videoID string) (*client.Lyrics, error)
	// GetWatchQueue returns the playback queue built from a video.
	GetWatchQueue(ctx context.Context, videoID string) (*client.WatchPlaylist, error)
	// ListWatchTracks returns the playback queue built from a video along
	// with up to limit of its entries, following continuations as needed.
	ListWatchTracks(ctx context.Context, videoID string, limit int) (*client.WatchPlaylist, []client.WatchTrack, error)
	// ListLibraryPlaylists returns up to maxPages pages of the user's
	// playlists, following continuations when the provider supplies them.
	ListLibraryPlaylists(ctx context.Context, maxPages int) ([]client.Playlist, error)
}

// ServiceImpl implements the Service interface.
type ServiceImpl struct {
	// cfg contains the application configuration.
	cfg *config.Config
	// apiClient talks to the music API.
	apiClient client.Client
	// artistsCache caches artist pages to avoid refetching during a session.
	artistsCache *lru.Cache[string, *client.Artist]
	// albumsCache caches album pages to avoid refetching during a session.
	albumsCache *lru.Cache[string, *client.Album]
	// lyricsCache caches lyrics by browse ID.
	lyricsCache *lru.Cache[string, *client.Lyrics]
}

// NewService creates and returns a new instance of ServiceImpl.
func NewService(cfg *config.Config, apiClient client.Client) (Service, error) {
	artistsCache, err := lru.New[string, *client.Artist](artistsCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create artists cache: %w", err)
	}

	albumsCache, err := lru.New[string, *client.Album](albumsCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create albums cache: %w", err)
	}

	lyricsCache, err := lru.New[string, *client.Lyrics](lyricsCacheSize)
	if err != nil {
		return nil, fmt.Errorf("failed to create lyrics cache: %w", err)
	}

	return &ServiceImpl{
		cfg:          cfg,
		apiClient:    apiClient,
		artistsCache: artistsCache,
		albumsCache:  albumsCache,
		lyricsCache:  lyricsCache,
	}, nil
}

// SearchArtists returns the first page of artist results for a term.
func (s *ServiceImpl) SearchArtists(ctx context.Context, term string) ([]client.SearchResultItem, error) {
	page, err := s.apiClient.Search(ctx, term)
	if err != nil {
		return nil, err
	}

	return page.Items, nil
}

// Suggest returns search completions for a partial term.
func (s *ServiceImpl) Suggest(ctx context.Context, term string) ([]client.SearchSuggestion, error) {
	return s.apiClient.GetSearchSuggestions(ctx, term)
}

// GetArtist returns an artist page, from cache when possible.
func (s *ServiceImpl) GetArtist(ctx context.Context, channelID string) (*client.Artist, error) {
	if cached, ok := s.artistsCache.Get(channelID); ok {
		logger.Debugf(ctx, "Artist cache hit for ID: %s", channelID)

		return cached, nil
	}

	artist, err := s.apiClient.GetArtist(ctx, channelID)
	if err != nil {
		return nil, err
	}

	s.artistsCache.Add(channelID, artist)

	return artist, nil
}

// GetArtistAlbums returns an artist's full release list. The browse target
// of the list lives on the artist page, so that page is fetched (or served
// from cache) first. Artists without a browsable list fall back to the
// albums visible in the carousel.
func (s *ServiceImpl) GetArtistAlbums(ctx context.Context, channelID string) ([]client.AlbumSummary, error) {
	artist, err := s.GetArtist(ctx, channelID)
	if err != nil {
		return nil, err
	}

	if artist.Albums == nil {
		return nil, ErrAlbumListUnavailable
	}

	if artist.Albums.BrowseID == nil || artist.Albums.Params == nil {
		logger.Debugf(ctx, "Artist %s has no full album list, using carousel items", channelID)

		return artist.Albums.Items, nil
	}

	return s.apiClient.GetArtistAlbums(ctx, *artist.Albums.BrowseID, *artist.Albums.Params)
}

// GetAlbum returns an album page, from cache when possible.
func (s *ServiceImpl) GetAlbum(ctx context.Context, browseID string) (*client.Album, error) {
	if cached, ok := s.albumsCache.Get(browseID); ok {
		logger.Debugf(ctx, "Album cache hit for ID: %s", browseID)

		return cached, nil
	}

	album, err := s.apiClient.GetAlbum(ctx, browseID)
	if err != nil {
		return nil, err
	}

	s.albumsCache.Add(browseID, album)

	return album, nil
}

// GetLyrics returns lyrics by browse ID, from cache when possible.
func (s *ServiceImpl) GetLyrics(ctx context.Context, browseID string) (*client.Lyrics, error) {
	if cached, ok := s.lyricsCache.Get(browseID); ok {
		logger.Debugf(ctx, "Lyrics cache hit for ID: %s", browseID)

		return cached, nil
	}

	lyrics, err := s.apiClient.GetLyrics(ctx, browseID)
	if err != nil {
		return nil, err
	}

	s.lyricsCache.Add(browseID, lyrics)

	return lyrics, nil
}

// GetLyricsForVideo resolves a video's lyrics via its watch playlist: the
// watch response carries the lyrics browse ID when lyrics exist.
func (s *ServiceImpl) GetLyricsForVideo(ctx context.Context, videoID string) (*client.Lyrics, error) {
	watch, err := s.apiClient.GetWatchPlaylist(ctx, videoID)
	if err != nil {
		return nil, err
	}

	if watch.LyricsID == nil {
		return nil, ErrLyricsUnavailable
	}

	return s.GetLyrics(ctx, *watch.LyricsID)
}

// GetWatchQueue returns the playback queue built from a video.
func (s *ServiceImpl) GetWatchQueue(ctx context.Context, videoID string) (*client.WatchPlaylist, error) {
	return s.apiClient.GetWatchPlaylist(ctx, videoID)
}

// ListWatchTracks returns the playback queue built from a video along with
// up to limit of its entries. Entries past the first page are pulled lazily
// through continuations; a non-positive limit returns the first page as-is.
func (s *ServiceImpl) ListWatchTracks(
	ctx context.Context,
	videoID string,
	limit int,
) (*client.WatchPlaylist, []client.WatchTrack, error) {
	watch, err := s.apiClient.GetWatchPlaylist(ctx, videoID)
	if err != nil {
		return nil, nil, err
	}

	if limit <= 0 {
		return watch, watch.Tracks.Items, nil
	}

	tracks := make([]client.WatchTrack, 0, limit)
	iterator := client.NewPageIterator(watch.Tracks, s.apiClient.NextWatchPlaylistPage)

	for len(tracks) < limit {
		track, ok, err := iterator.Next(ctx)
		if err != nil {
			return nil, nil, err
		}

		if !ok {
			break
		}

		tracks = append(tracks, track)
	}

	return watch, tracks, nil
}

// ListLibraryPlaylists returns up to maxPages pages of the user's
// playlists. A non-positive maxPages fetches just the first page.
func (s *ServiceImpl) ListLibraryPlaylists(ctx context.Context, maxPages int) ([]client.Playlist, error) {
	if maxPages <= 0 {
		maxPages = 1
	}

	page, err := s.apiClient.GetLibraryPlaylists(ctx)
	if err != nil {
		return nil, err
	}

	playlists := append([]client.Playlist(nil), page.Items...)

	for fetched := 1; fetched < maxPages && page.Continuation != nil; fetched++ {
		page, err = s.apiClient.NextLibraryPlaylistsPage(ctx, page)
		if err != nil {
			return nil, err
		}

		playlists = append(playlists, page.Items...)
	}

	return playlists, nil
}
