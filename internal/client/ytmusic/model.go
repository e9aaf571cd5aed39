package ytmusic

// Thumbnail represents a single artwork rendition attached to an entity.
type Thumbnail struct {
	// URL is the image location.
	URL string `json:"url"`
	// Width is the image width in pixels.
	Width int64 `json:"width"`
	// Height is the image height in pixels.
	Height int64 `json:"height"`
}

// Artist represents an artist page fetched via GetArtist.
// Optional fields are nil when the upstream response omits them.
type Artist struct {
	// ChannelID is the artist's browse identifier.
	ChannelID string
	// Name is the artist's display name.
	Name string
	// Description is the artist biography, if present.
	Description *string
	// Subscribers is the formatted subscriber count, if present.
	Subscribers *string
	// Thumbnails holds the artist artwork renditions.
	Thumbnails []Thumbnail
	// Albums describes the albums carousel on the artist page, if present.
	Albums *ArtistAlbums
}

// ArtistAlbums describes the albums section of an artist page.
// BrowseID and Params, when both present, can be fed to GetArtistAlbums
// to fetch the artist's full release list.
type ArtistAlbums struct {
	// BrowseID is the browse identifier of the full album list, if present.
	BrowseID *string
	// Params is the opaque parameter blob accompanying BrowseID, if present.
	Params *string
	// Items holds the albums visible in the carousel itself.
	Items []AlbumSummary
}

// AlbumSummary represents a single album reference as it appears in
// carousels and release lists.
type AlbumSummary struct {
	// BrowseID is the album's browse identifier.
	BrowseID string
	// Title is the album name.
	Title string
	// Year is the formatted release year, if present.
	Year *string
	// Thumbnails holds the cover art renditions.
	Thumbnails []Thumbnail
}

// Album represents a full album page fetched via GetAlbum.
type Album struct {
	// Title is the album name.
	Title string
	// Artist is the primary artist name, if present.
	Artist *string
	// Year is the formatted release year, if present.
	Year *string
	// TrackCount is the formatted track count, if present.
	TrackCount *string
	// Thumbnails holds the cover art renditions.
	Thumbnails []Thumbnail
	// Tracks holds the album's track list.
	Tracks []Song
}

// Song represents a single track as it appears in album track lists.
type Song struct {
	// Title is the track name.
	Title string
	// VideoID is the track's playback identifier, if present.
	VideoID *string
	// Duration is the formatted track length, if present.
	Duration *string
	// Plays is the formatted play count, if present.
	Plays *string
}

// SearchResultItem represents a single search hit. Only artist results are
// currently decoded; see the Search documentation on Client.
type SearchResultItem struct {
	// Artist is the artist's display name.
	Artist string
	// Subscribers is the formatted subscriber count, if present.
	Subscribers *string
	// BrowseID is the artist's browse identifier, if present.
	BrowseID *string
	// Thumbnails holds the artist artwork renditions.
	Thumbnails []Thumbnail
}

// TextRun is a fragment of suggestion text with its emphasis flag.
type TextRun struct {
	// Text is the fragment content.
	Text string
	// Bold reports whether the provider marked the fragment as matching
	// the typed prefix.
	Bold bool
}

// SuggestionKind distinguishes freshly predicted suggestions from the
// user's own search history entries.
type SuggestionKind string

const (
	// SuggestionKindPrediction marks a provider-predicted suggestion.
	SuggestionKindPrediction SuggestionKind = "prediction"
	// SuggestionKindHistory marks a suggestion from the user's history.
	SuggestionKindHistory SuggestionKind = "history"
)

// SearchSuggestion represents a single search completion.
type SearchSuggestion struct {
	// Kind reports the suggestion origin.
	Kind SuggestionKind
	// Runs holds the suggestion text fragments in display order.
	Runs []TextRun
}

// Lyrics represents the lyrics of a track together with their attribution.
type Lyrics struct {
	// Lyrics is the full lyrics text.
	Lyrics string
	// Source is the attribution line, if present.
	Source *string
}

// WatchTrack represents a single queue entry of a watch playlist.
// Only the playback identifier is decoded at present.
type WatchTrack struct {
	// VideoID is the track's playback identifier.
	VideoID string
}

// WatchPlaylist represents the playback queue derived from a video.
type WatchPlaylist struct {
	// PlaylistID is the queue's playlist identifier, if present.
	PlaylistID *string
	// LyricsID is the browse identifier for the current track's lyrics,
	// if present.
	LyricsID *string
	// Tracks holds the queue entries.
	Tracks Page[WatchTrack]
}

// Playlist represents a playlist from the user's library.
type Playlist struct {
	// PlaylistID is the playlist's browse identifier.
	PlaylistID string
	// Title is the playlist name.
	Title string
	// Description is the playlist byline, if present.
	Description *string
	// Thumbnails holds the playlist artwork renditions.
	Thumbnails []Thumbnail
}

// LibraryArtist represents an artist from the user's library.
// The corresponding endpoint is declared but not yet implemented.
type LibraryArtist struct {
	// ChannelID is the artist's browse identifier.
	ChannelID string
	// Artist is the artist's display name.
	Artist string
}

// ContinuationToken is an opaque pagination cursor tied to the endpoint
// that produced it. A token must only be resubmitted to that endpoint.
type ContinuationToken struct {
	// value is the opaque cursor string.
	value string
	// kind identifies the originating endpoint.
	kind queryKind
}

// Value returns the opaque cursor string.
func (t *ContinuationToken) Value() string {
	return t.value
}

// Page holds one page of results together with the cursor to the next one.
// A nil Continuation marks the terminal page.
type Page[T any] struct {
	// Items holds the page contents in response order.
	Items []T
	// Continuation points at the next page, or is nil on the last page.
	Continuation *ContinuationToken
}
