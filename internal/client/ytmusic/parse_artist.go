package ytmusic

const (
	// pathImmersiveHeader unwraps an artist page header.
	pathImmersiveHeader = "/header/musicImmersiveHeaderRenderer"
	// pathCarouselHeader unwraps a carousel shelf header.
	pathCarouselHeader = "/musicCarouselShelfRenderer/header/musicCarouselShelfBasicHeaderRenderer"
	// pathMTRIRThumbnails reads the thumbnail list of a two-row item.
	pathMTRIRThumbnails = "/thumbnailRenderer/musicThumbnailRenderer/thumbnail/thumbnails"
)

// decode extracts an artist page. The header carries the display fields;
// the body is a section list whose carousels hold the artist's releases.
// Only the albums carousel is decoded, together with the browse target of
// the full release list when the provider exposes one.
func (q getArtistQuery) decode(root *crawler) (*Artist, error) {
	header, err := root.pointer(pathImmersiveHeader)
	if err != nil {
		return nil, err
	}

	name, err := header.str("/title" + pathRunText)
	if err != nil {
		return nil, err
	}

	description, err := header.optionalStr("/description" + pathRunText)
	if err != nil {
		return nil, err
	}

	subscribers, err := header.optionalStr("/subscriptionButton/subscribeButtonRenderer/subscriberCountText" + pathRunText)
	if err != nil {
		return nil, err
	}

	thumbnails, err := parseThumbnails(header, pathThumbnails)
	if err != nil {
		return nil, err
	}

	artist := &Artist{
		ChannelID:   q.channelID,
		Name:        name,
		Description: description,
		Subscribers: subscribers,
		Thumbnails:  thumbnails,
	}

	tab, err := root.pointer(pathSingleColumnTab)
	if err != nil {
		return nil, err
	}

	sections, err := tab.array(pathSectionList)
	if err != nil {
		return nil, err
	}

	for _, section := range sections {
		albums, err := parseAlbumCarousel(section)
		if err != nil {
			return nil, err
		}

		if albums != nil {
			artist.Albums = albums

			break
		}
	}

	return artist, nil
}

// parseAlbumCarousel decodes a section into the artist's albums carousel,
// or returns nil when the section holds something else. The carousel
// header's title link, when present, points at the artist's full release
// list.
func parseAlbumCarousel(section *crawler) (*ArtistAlbums, error) {
	contents, ok := section.optional(pathCarouselShelf)
	if !ok {
		return nil, nil
	}

	elements, err := contents.array("")
	if err != nil {
		return nil, err
	}

	items := make([]AlbumSummary, 0, len(elements))

	for _, element := range elements {
		item, ok := element.optional(pathMTRIR)
		if !ok {
			return nil, nil
		}

		if pageType, typeErr := item.str(pathNavigationPageType); typeErr != nil || pageType != "MUSIC_PAGE_TYPE_ALBUM" {
			return nil, nil
		}

		summary, err := parseAlbumSummary(item)
		if err != nil {
			return nil, err
		}

		items = append(items, summary)
	}

	albums := &ArtistAlbums{Items: items}

	header, ok := section.optional(pathCarouselHeader)
	if ok {
		browseID, err := header.optionalStr("/title/runs/0/navigationEndpoint/browseEndpoint/browseId")
		if err != nil {
			return nil, err
		}

		params, err := header.optionalStr("/title/runs/0/navigationEndpoint/browseEndpoint/params")
		if err != nil {
			return nil, err
		}

		albums.BrowseID = browseID
		albums.Params = params
	}

	return albums, nil
}

// parseAlbumSummary decodes a two-row album item as it appears in
// carousels and release grids. The release year, when present, is the last
// subtitle run.
func parseAlbumSummary(item *crawler) (AlbumSummary, error) {
	title, err := item.str(pathTitleText)
	if err != nil {
		return AlbumSummary{}, err
	}

	browseID, err := item.str(pathNavigationBrowseID)
	if err != nil {
		return AlbumSummary{}, err
	}

	year, err := item.optionalStr(pathSubtitleRuns + "/-1/text")
	if err != nil {
		return AlbumSummary{}, err
	}

	thumbnails, err := parseThumbnails(item, pathMTRIRThumbnails)
	if err != nil {
		return AlbumSummary{}, err
	}

	return AlbumSummary{
		BrowseID:   browseID,
		Title:      title,
		Year:       year,
		Thumbnails: thumbnails,
	}, nil
}

// decode extracts an artist's full release list, reached through the
// browse target of the albums carousel. The releases arrive as a grid of
// two-row items.
func (q getArtistAlbumsQuery) decode(root *crawler) ([]AlbumSummary, error) {
	tab, err := root.pointer(pathSingleColumnTab)
	if err != nil {
		return nil, err
	}

	section, err := tab.pointer(pathSectionListItem)
	if err != nil {
		return nil, err
	}

	items, err := section.array(pathGridItems)
	if err != nil {
		return nil, err
	}

	albums := make([]AlbumSummary, 0, len(items))

	for _, element := range items {
		item, err := element.pointer(pathMTRIR)
		if err != nil {
			return nil, err
		}

		summary, err := parseAlbumSummary(item)
		if err != nil {
			return nil, err
		}

		albums = append(albums, summary)
	}

	return albums, nil
}
