package ytmusic

import "fmt"

// queryKind identifies an API endpoint. Continuation tokens are stamped
// with the kind that produced them, so a cursor can never be replayed
// against a different endpoint.
type queryKind int

const (
	kindGetArtist queryKind = iota
	kindGetAlbum
	kindGetArtistAlbums
	kindSearch
	kindGetSearchSuggestions
	kindGetLyrics
	kindGetWatchPlaylist
	kindGetLibraryPlaylists
)

// endpointSpec ties a query kind to its URI path and display name.
type endpointSpec struct {
	// name is the endpoint's name for logs and errors.
	name string
	// uri is the URI path under the API base.
	uri string
}

// endpoints maps every query kind to its endpoint.
var endpoints = map[queryKind]endpointSpec{
	kindGetArtist:            {name: "get_artist", uri: browseURI},
	kindGetAlbum:             {name: "get_album", uri: browseURI},
	kindGetArtistAlbums:      {name: "get_artist_albums", uri: browseURI},
	kindSearch:               {name: "search", uri: searchURI},
	kindGetSearchSuggestions: {name: "get_search_suggestions", uri: suggestionsURI},
	kindGetLyrics:            {name: "get_lyrics", uri: browseURI},
	kindGetWatchPlaylist:     {name: "get_watch_playlist", uri: nextURI},
	kindGetLibraryPlaylists:  {name: "get_library_playlists", uri: browseURI},
}

// query describes a single API call: which endpoint it hits, what payload
// it sends and how its response decodes into T.
//
//nolint:unused // The decode method is exercised through the generic executors.
type query[T any] interface {
	kind() queryKind
	payload() (map[string]any, error)
	decode(root *crawler) (T, error)
}

// continuationDecoder is implemented by queries whose endpoint supports
// continuations. Follow-up pages arrive in a different wrapper than the
// first one, so they decode separately.
//
//nolint:unused // The decodeContinuation method is exercised through the generic executors.
type continuationDecoder[T any] interface {
	kind() queryKind
	decodeContinuation(root *crawler) (Page[T], error)
}

type getArtistQuery struct {
	channelID string
}

func (q getArtistQuery) kind() queryKind { return kindGetArtist }

func (q getArtistQuery) payload() (map[string]any, error) {
	if q.channelID == "" {
		return nil, fmt.Errorf("%w: empty channel ID", ErrInvalidParameter)
	}

	return map[string]any{"browseId": q.channelID}, nil
}

type getAlbumQuery struct {
	browseID string
}

func (q getAlbumQuery) kind() queryKind { return kindGetAlbum }

func (q getAlbumQuery) payload() (map[string]any, error) {
	if q.browseID == "" {
		return nil, fmt.Errorf("%w: empty album browse ID", ErrInvalidParameter)
	}

	return map[string]any{"browseId": q.browseID}, nil
}

type getArtistAlbumsQuery struct {
	channelID string
	params    string
}

func (q getArtistAlbumsQuery) kind() queryKind { return kindGetArtistAlbums }

func (q getArtistAlbumsQuery) payload() (map[string]any, error) {
	if q.channelID == "" || q.params == "" {
		return nil, fmt.Errorf("%w: artist albums need both a browse ID and params", ErrInvalidParameter)
	}

	return map[string]any{"browseId": q.channelID, "params": q.params}, nil
}

type searchQuery struct {
	term string
}

func (q searchQuery) kind() queryKind { return kindSearch }

func (q searchQuery) payload() (map[string]any, error) {
	if q.term == "" {
		return nil, fmt.Errorf("%w: empty search term", ErrInvalidParameter)
	}

	return map[string]any{"query": q.term, "params": searchParamsArtists}, nil
}

type getSearchSuggestionsQuery struct {
	term string
}

func (q getSearchSuggestionsQuery) kind() queryKind { return kindGetSearchSuggestions }

func (q getSearchSuggestionsQuery) payload() (map[string]any, error) {
	if q.term == "" {
		return nil, fmt.Errorf("%w: empty suggestion input", ErrInvalidParameter)
	}

	return map[string]any{"input": q.term}, nil
}

type getLyricsQuery struct {
	browseID string
}

func (q getLyricsQuery) kind() queryKind { return kindGetLyrics }

func (q getLyricsQuery) payload() (map[string]any, error) {
	if q.browseID == "" {
		return nil, fmt.Errorf("%w: empty lyrics browse ID", ErrInvalidParameter)
	}

	return map[string]any{"browseId": q.browseID}, nil
}

type getWatchPlaylistQuery struct {
	videoID string
}

func (q getWatchPlaylistQuery) kind() queryKind { return kindGetWatchPlaylist }

func (q getWatchPlaylistQuery) payload() (map[string]any, error) {
	if q.videoID == "" {
		return nil, fmt.Errorf("%w: empty video ID", ErrInvalidParameter)
	}

	return map[string]any{
		"videoId":                       q.videoID,
		"enablePersistentPlaylistPanel": true,
		"isAudioOnly":                   true,
	}, nil
}

type getLibraryPlaylistsQuery struct{}

func (q getLibraryPlaylistsQuery) kind() queryKind { return kindGetLibraryPlaylists }

func (q getLibraryPlaylistsQuery) payload() (map[string]any, error) {
	return map[string]any{"browseId": libraryPlaylistsBrowseID}, nil
}
