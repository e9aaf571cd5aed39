package ytmusic

import "strconv"

// Renderer pointer fragments shared across response decoders. The provider
// wraps every piece of content in nested renderer objects; keeping the
// pointers in one place means a layout change upstream is fixed in one place
// here.
const (
	// pathSectionList descends from a tab content into its section list.
	pathSectionList = "/sectionListRenderer/contents"
	// pathSectionListItem descends into the first section of a section list.
	pathSectionListItem = "/sectionListRenderer/contents/0"
	// pathSingleColumnTab descends from a browse response root into the
	// content of its first tab.
	pathSingleColumnTab = "/contents/singleColumnBrowseResultsRenderer/tabs/0/tabRenderer/content"
	// pathTabbedSearchResults descends from a search response root into
	// the content of its first tab.
	pathTabbedSearchResults = "/contents/tabbedSearchResultsRenderer/tabs/0/tabRenderer/content"
	// pathMusicShelf descends into a music shelf's item list.
	pathMusicShelf = "/musicShelfRenderer/contents"
	// pathCarouselShelf descends into a carousel shelf's item list.
	pathCarouselShelf = "/musicCarouselShelfRenderer/contents"
	// pathGridItems descends into a grid's item list.
	pathGridItems = "/gridRenderer/items"
	// pathMRLIR unwraps a responsive list item.
	pathMRLIR = "/musicResponsiveListItemRenderer"
	// pathMTRIR unwraps a two-row item.
	pathMTRIR = "/musicTwoRowItemRenderer"
	// pathTitleText reads the title of a two-row item.
	pathTitleText = "/title/runs/0/text"
	// pathSubtitleRuns reads the subtitle runs of a two-row item.
	pathSubtitleRuns = "/subtitle/runs"
	// pathRunText reads the first run of a formatted text node.
	pathRunText = "/runs/0/text"
	// pathNavigationBrowseID reads the browse target of a renderer.
	pathNavigationBrowseID = "/navigationEndpoint/browseEndpoint/browseId"
	// pathNavigationPageType reads the page type of a renderer's browse target.
	pathNavigationPageType = "/navigationEndpoint/browseEndpoint/browseEndpointContextSupportedConfigs/browseEndpointContextMusicConfig/pageType"
	// pathThumbnails reads the thumbnail list of a responsive list item.
	pathThumbnails = "/thumbnail/musicThumbnailRenderer/thumbnail/thumbnails"
	// pathCroppedThumbnails reads the cropped thumbnail list of a page header.
	pathCroppedThumbnails = "/thumbnail/croppedSquareThumbnailRenderer/thumbnail/thumbnails"
	// pathDescriptionShelf unwraps a description shelf.
	pathDescriptionShelf = "/musicDescriptionShelfRenderer"
	// pathWatchTabbedResults descends from a next response root into the
	// watch results renderer.
	pathWatchTabbedResults = "/contents/singleColumnMusicWatchNextResultsRenderer/tabbedRenderer/watchNextTabbedResultsRenderer"
	// pathQueueContents descends from a watch tab content into the queue
	// item list.
	pathQueueContents = "/musicQueueRenderer/content/playlistPanelRenderer/contents"
	// pathPPVR unwraps a playlist panel video item.
	pathPPVR = "/playlistPanelVideoRenderer"
	// pathContinuationToken reads the next-page cursor of a shelf or panel.
	pathContinuationToken = "/continuations/0/nextContinuationData/continuation"
)

// Page types carried by browse endpoints, used to tell result kinds apart.
const (
	pageTypeArtist = "MUSIC_PAGE_TYPE_ARTIST"
)

// parseItemText reads the text of a responsive list item's flex column.
// Columns hold formatted text split into runs; callers address a specific
// run within a specific column, mirroring how the UI lays the fields out.
func parseItemText(item *crawler, column, run int) (string, error) {
	columns, err := item.array("/flexColumns")
	if err != nil {
		return "", err
	}

	if column >= len(columns) {
		return "", item.fail("/flexColumns",
			"at least "+strconv.Itoa(column+1)+" flex columns",
			strconv.Itoa(len(columns))+" columns")
	}

	return columns[column].str("/musicResponsiveListItemFlexColumnRenderer/text/runs/" + strconv.Itoa(run) + "/text")
}

// optionalItemText reads a flex column text that the provider may omit.
func optionalItemText(item *crawler, column, run int) *string {
	text, err := parseItemText(item, column, run)
	if err != nil {
		return nil
	}

	return &text
}
