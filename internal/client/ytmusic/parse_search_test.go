package ytmusic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func searchArtistItemJSON(name, browseID, subscribers string) string {
	return `{
		"musicResponsiveListItemRenderer": {
			"flexColumns": [
				{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [{"text": "` + name + `"}]}}},
				{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [
					{"text": "Artist"}, {"text": " • "}, {"text": "` + subscribers + `"}
				]}}}
			],
			"navigationEndpoint": {"browseEndpoint": {
				"browseId": "` + browseID + `",
				"browseEndpointContextSupportedConfigs": {
					"browseEndpointContextMusicConfig": {"pageType": "MUSIC_PAGE_TYPE_ARTIST"}
				}
			}},
			"thumbnail": {"musicThumbnailRenderer": {"thumbnail": {"thumbnails": [
				{"url": "https://example.com/` + browseID + `.jpg", "width": 60, "height": 60}
			]}}}
		}
	}`
}

// searchSongItemJSON is a song result the provider mixes into artist
// shelves; its page type marks it as a non-artist.
const searchSongItemJSON = `{
	"musicResponsiveListItemRenderer": {
		"flexColumns": [
			{"musicResponsiveListItemFlexColumnRenderer": {"text": {"runs": [{"text": "Some Song"}]}}}
		],
		"navigationEndpoint": {"browseEndpoint": {
			"browseId": "MPRE123",
			"browseEndpointContextSupportedConfigs": {
				"browseEndpointContextMusicConfig": {"pageType": "MUSIC_PAGE_TYPE_ALBUM"}
			}
		}}
	}
}`

func TestSearchDecode(t *testing.T) {
	t.Parallel()

	response := `{
		"contents": {"tabbedSearchResultsRenderer": {"tabs": [{"tabRenderer": {"content": {
			"sectionListRenderer": {"contents": [
				{"musicShelfRenderer": {
					"contents": [
						` + searchArtistItemJSON("Artist One", "UC111", "1M subscribers") + `,
						` + searchSongItemJSON + `,
						` + searchArtistItemJSON("Artist Two", "UC222", "250K subscribers") + `
					],
					"continuations": [{"nextContinuationData": {"continuation": "search-token"}}]
				}}
			]}
		}}}]}}
	}`

	root, err := newCrawler([]byte(response))
	require.NoError(t, err)

	page, err := searchQuery{term: "artist"}.decode(root)
	require.NoError(t, err)

	// The song result is skipped; only the two artists survive.
	require.Len(t, page.Items, 2)
	assert.Equal(t, "Artist One", page.Items[0].Artist)
	assert.Equal(t, "Artist Two", page.Items[1].Artist)

	require.NotNil(t, page.Items[0].BrowseID)
	assert.Equal(t, "UC111", *page.Items[0].BrowseID)
	require.NotNil(t, page.Items[0].Subscribers)
	assert.Equal(t, "1M subscribers", *page.Items[0].Subscribers)
	require.Len(t, page.Items[0].Thumbnails, 1)
	assert.Equal(t, int64(60), page.Items[0].Thumbnails[0].Width)

	// First-page search results never surface their continuation, even
	// when the shelf carries one.
	assert.Nil(t, page.Continuation)
}

func TestSearchDecodeSpellingSuggestion(t *testing.T) {
	t.Parallel()

	// A misspelled term replaces the result shelf with a "did you mean"
	// section, which decodes to an empty page rather than an error.
	response := `{
		"contents": {"tabbedSearchResultsRenderer": {"tabs": [{"tabRenderer": {"content": {
			"sectionListRenderer": {"contents": [
				{"itemSectionRenderer": {"contents": [{"didYouMeanRenderer": {}}]}}
			]}
		}}}]}}
	}`

	root, err := newCrawler([]byte(response))
	require.NoError(t, err)

	page, err := searchQuery{term: "artsit"}.decode(root)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.Nil(t, page.Continuation)
}

func TestSearchDecodeMissingTabs(t *testing.T) {
	t.Parallel()

	root, err := newCrawler([]byte(`{"contents": {}}`))
	require.NoError(t, err)

	_, err = searchQuery{term: "artist"}.decode(root)

	var decodeErr *DecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, "/contents/tabbedSearchResultsRenderer", decodeErr.Path)
}

func TestSearchDecodeContinuation(t *testing.T) {
	t.Parallel()

	response := `{
		"continuationContents": {"musicShelfContinuation": {
			"contents": [` + searchArtistItemJSON("Artist Three", "UC333", "20K subscribers") + `],
			"continuations": [{"nextContinuationData": {"continuation": "next-token"}}]
		}}
	}`

	root, err := newCrawler([]byte(response))
	require.NoError(t, err)

	page, err := searchQuery{}.decodeContinuation(root)
	require.NoError(t, err)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "Artist Three", page.Items[0].Artist)

	require.NotNil(t, page.Continuation)
	assert.Equal(t, "next-token", page.Continuation.Value())
}
