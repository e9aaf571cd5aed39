package ytmusic

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	client "github.com/oshokin/ytmusic-cli/internal/client/ytmusic"
	"github.com/oshokin/ytmusic-cli/internal/config"
)

// stubClient is a hand-rolled Client implementation for service tests.
// Only the methods a test configures are functional; the rest answer with
// zero values.
type stubClient struct {
	getArtistFunc            func(ctx context.Context, channelID string) (*client.Artist, error)
	getAlbumFunc             func(ctx context.Context, browseID string) (*client.Album, error)
	getArtistAlbumsFunc      func(ctx context.Context, channelID, params string) ([]client.AlbumSummary, error)
	searchFunc               func(ctx context.Context, term string) (client.Page[client.SearchResultItem], error)
	getLyricsFunc            func(ctx context.Context, browseID string) (*client.Lyrics, error)
	getWatchPlaylistFunc     func(ctx context.Context, videoID string) (*client.WatchPlaylist, error)
	getLibraryPlaylistsFunc  func(ctx context.Context) (client.Page[client.Playlist], error)
	nextLibraryPlaylistsFunc func(ctx context.Context, prior client.Page[client.Playlist]) (client.Page[client.Playlist], error)
}

func (s *stubClient) GetArtist(ctx context.Context, channelID string) (*client.Artist, error) {
	return s.getArtistFunc(ctx, channelID)
}

func (s *stubClient) GetAlbum(ctx context.Context, browseID string) (*client.Album, error) {
	return s.getAlbumFunc(ctx, browseID)
}

func (s *stubClient) GetArtistAlbums(ctx context.Context, channelID, params string) ([]client.AlbumSummary, error) {
	return s.getArtistAlbumsFunc(ctx, channelID, params)
}

func (s *stubClient) Search(ctx context.Context, term string) (client.Page[client.SearchResultItem], error) {
	return s.searchFunc(ctx, term)
}

func (s *stubClient) NextSearchPage(
	context.Context,
	client.Page[client.SearchResultItem],
) (client.Page[client.SearchResultItem], error) {
	return client.Page[client.SearchResultItem]{}, nil
}

func (s *stubClient) GetSearchSuggestions(context.Context, string) ([]client.SearchSuggestion, error) {
	return nil, nil
}

func (s *stubClient) GetLyrics(ctx context.Context, browseID string) (*client.Lyrics, error) {
	return s.getLyricsFunc(ctx, browseID)
}

func (s *stubClient) GetWatchPlaylist(ctx context.Context, videoID string) (*client.WatchPlaylist, error) {
	return s.getWatchPlaylistFunc(ctx, videoID)
}

func (s *stubClient) NextWatchPlaylistPage(
	context.Context,
	client.Page[client.WatchTrack],
) (client.Page[client.WatchTrack], error) {
	return client.Page[client.WatchTrack]{}, nil
}

func (s *stubClient) GetLibraryPlaylists(ctx context.Context) (client.Page[client.Playlist], error) {
	return s.getLibraryPlaylistsFunc(ctx)
}

func (s *stubClient) NextLibraryPlaylistsPage(
	ctx context.Context,
	prior client.Page[client.Playlist],
) (client.Page[client.Playlist], error) {
	return s.nextLibraryPlaylistsFunc(ctx, prior)
}

func (s *stubClient) GetLibraryArtists(context.Context) (client.Page[client.LibraryArtist], error) {
	return client.Page[client.LibraryArtist]{}, client.ErrNotImplemented
}

func (s *stubClient) GetPlaylist(context.Context, string) (*client.Playlist, error) {
	return nil, client.ErrNotImplemented
}

func (s *stubClient) GetHome(context.Context) ([]client.Playlist, error) {
	return nil, client.ErrNotImplemented
}

func (s *stubClient) GetHistory(context.Context) ([]client.Song, error) {
	return nil, client.ErrNotImplemented
}

func (s *stubClient) SetTokenRefreshHook(func(*client.OAuthCredential)) {}

func newTestService(t *testing.T, stub *stubClient) Service {
	t.Helper()

	service, err := NewService(&config.Config{}, stub)
	require.NoError(t, err)

	return service
}

func TestGetArtistCachesResult(t *testing.T) {
	t.Parallel()

	var fetches int

	stub := &stubClient{
		getArtistFunc: func(_ context.Context, channelID string) (*client.Artist, error) {
			fetches++

			return &client.Artist{ChannelID: channelID, Name: "Test Artist"}, nil
		},
	}

	service := newTestService(t, stub)
	ctx := context.Background()

	first, err := service.GetArtist(ctx, "UC123")
	require.NoError(t, err)

	second, err := service.GetArtist(ctx, "UC123")
	require.NoError(t, err)

	assert.Same(t, first, second)
	assert.Equal(t, 1, fetches)

	// A different artist misses the cache.
	_, err = service.GetArtist(ctx, "UC456")
	require.NoError(t, err)
	assert.Equal(t, 2, fetches)
}

func TestGetArtistAlbumsResolvesBrowseTarget(t *testing.T) {
	t.Parallel()

	browseID := "UCALBUMS"
	params := "ggMI"

	stub := &stubClient{
		getArtistFunc: func(_ context.Context, channelID string) (*client.Artist, error) {
			return &client.Artist{
				ChannelID: channelID,
				Name:      "Test Artist",
				Albums: &client.ArtistAlbums{
					BrowseID: &browseID,
					Params:   &params,
					Items:    []client.AlbumSummary{{BrowseID: "MPRE111", Title: "Carousel Album"}},
				},
			}, nil
		},
		getArtistAlbumsFunc: func(_ context.Context, channelID, albumParams string) ([]client.AlbumSummary, error) {
			assert.Equal(t, browseID, channelID)
			assert.Equal(t, params, albumParams)

			return []client.AlbumSummary{
				{BrowseID: "MPRE111", Title: "First Album"},
				{BrowseID: "MPRE222", Title: "Second Album"},
			}, nil
		},
	}

	service := newTestService(t, stub)

	albums, err := service.GetArtistAlbums(context.Background(), "UC123")
	require.NoError(t, err)
	require.Len(t, albums, 2)
	assert.Equal(t, "Second Album", albums[1].Title)
}

func TestGetArtistAlbumsFallsBackToCarousel(t *testing.T) {
	t.Parallel()

	stub := &stubClient{
		getArtistFunc: func(_ context.Context, channelID string) (*client.Artist, error) {
			return &client.Artist{
				ChannelID: channelID,
				Name:      "Test Artist",
				Albums: &client.ArtistAlbums{
					Items: []client.AlbumSummary{{BrowseID: "MPRE111", Title: "Carousel Album"}},
				},
			}, nil
		},
	}

	service := newTestService(t, stub)

	albums, err := service.GetArtistAlbums(context.Background(), "UC123")
	require.NoError(t, err)
	require.Len(t, albums, 1)
	assert.Equal(t, "Carousel Album", albums[0].Title)
}

func TestGetArtistAlbumsWithoutAlbumSection(t *testing.T) {
	t.Parallel()

	stub := &stubClient{
		getArtistFunc: func(_ context.Context, channelID string) (*client.Artist, error) {
			return &client.Artist{ChannelID: channelID, Name: "Test Artist"}, nil
		},
	}

	service := newTestService(t, stub)

	_, err := service.GetArtistAlbums(context.Background(), "UC123")
	require.ErrorIs(t, err, ErrAlbumListUnavailable)
}

func TestGetLyricsForVideo(t *testing.T) {
	t.Parallel()

	lyricsID := "MPLYt-lyrics"

	stub := &stubClient{
		getWatchPlaylistFunc: func(_ context.Context, videoID string) (*client.WatchPlaylist, error) {
			assert.Equal(t, "video123", videoID)

			return &client.WatchPlaylist{LyricsID: &lyricsID}, nil
		},
		getLyricsFunc: func(_ context.Context, browseID string) (*client.Lyrics, error) {
			assert.Equal(t, lyricsID, browseID)

			return &client.Lyrics{Lyrics: "some lyrics"}, nil
		},
	}

	service := newTestService(t, stub)

	lyrics, err := service.GetLyricsForVideo(context.Background(), "video123")
	require.NoError(t, err)
	assert.Equal(t, "some lyrics", lyrics.Lyrics)
}

func TestGetLyricsForVideoWithoutLyrics(t *testing.T) {
	t.Parallel()

	stub := &stubClient{
		getWatchPlaylistFunc: func(context.Context, string) (*client.WatchPlaylist, error) {
			return &client.WatchPlaylist{}, nil
		},
	}

	service := newTestService(t, stub)

	_, err := service.GetLyricsForVideo(context.Background(), "video123")
	require.ErrorIs(t, err, ErrLyricsUnavailable)
}

func TestGetLyricsCachesResult(t *testing.T) {
	t.Parallel()

	var fetches int

	stub := &stubClient{
		getLyricsFunc: func(context.Context, string) (*client.Lyrics, error) {
			fetches++

			return &client.Lyrics{Lyrics: "cached lyrics"}, nil
		},
	}

	service := newTestService(t, stub)
	ctx := context.Background()

	_, err := service.GetLyrics(ctx, "MPLYt123")
	require.NoError(t, err)

	_, err = service.GetLyrics(ctx, "MPLYt123")
	require.NoError(t, err)

	assert.Equal(t, 1, fetches)
}

func TestListWatchTracksHonorsLimit(t *testing.T) {
	t.Parallel()

	stub := &stubClient{
		getWatchPlaylistFunc: func(context.Context, string) (*client.WatchPlaylist, error) {
			return &client.WatchPlaylist{
				Tracks: client.Page[client.WatchTrack]{
					Items: []client.WatchTrack{
						{VideoID: "video111"},
						{VideoID: "video222"},
						{VideoID: "video333"},
					},
				},
			}, nil
		},
	}

	service := newTestService(t, stub)

	_, tracks, err := service.ListWatchTracks(context.Background(), "video111", 2)
	require.NoError(t, err)
	require.Len(t, tracks, 2)
	assert.Equal(t, "video222", tracks[1].VideoID)

	// A non-positive limit returns the first page as-is.
	_, tracks, err = service.ListWatchTracks(context.Background(), "video111", 0)
	require.NoError(t, err)
	assert.Len(t, tracks, 3)
}

func TestListLibraryPlaylistsSinglePage(t *testing.T) {
	t.Parallel()

	stub := &stubClient{
		getLibraryPlaylistsFunc: func(context.Context) (client.Page[client.Playlist], error) {
			return client.Page[client.Playlist]{
				Items: []client.Playlist{{PlaylistID: "VL111", Title: "Favorites"}},
			}, nil
		},
	}

	service := newTestService(t, stub)

	playlists, err := service.ListLibraryPlaylists(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, playlists, 1)
	assert.Equal(t, "Favorites", playlists[0].Title)
}
