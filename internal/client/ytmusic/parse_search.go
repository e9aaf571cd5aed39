package ytmusic

// decode extracts artist results from a filtered search response. The
// response nests the result shelf inside the first tab's section list; an
// empty result set replaces the shelf with a "did you mean" section, which
// decodes to an empty page. Items of other kinds that the provider mixes
// into the shelf are skipped.
func (q searchQuery) decode(root *crawler) (Page[SearchResultItem], error) {
	tab, err := root.pointer(pathTabbedSearchResults)
	if err != nil {
		return Page[SearchResultItem]{}, err
	}

	sections, err := tab.array(pathSectionList)
	if err != nil {
		return Page[SearchResultItem]{}, err
	}

	for _, section := range sections {
		shelf, ok := section.optional("/musicShelfRenderer")
		if !ok {
			continue
		}

		page, err := parseSearchShelf(shelf)
		if err != nil {
			return Page[SearchResultItem]{}, err
		}

		// Continuations are deliberately not followed for search: only
		// the first page of artist results is surfaced.
		page.Continuation = nil

		return page, nil
	}

	// No shelf at all: either zero results or a spelling suggestion.
	return Page[SearchResultItem]{}, nil
}

// decodeContinuation extracts artist results from a search continuation
// response, where the shelf arrives without the surrounding tab structure.
func (q searchQuery) decodeContinuation(root *crawler) (Page[SearchResultItem], error) {
	shelf, err := root.pointer("/continuationContents/musicShelfContinuation")
	if err != nil {
		return Page[SearchResultItem]{}, err
	}

	return parseSearchShelf(shelf)
}

// parseSearchShelf decodes the items of a search result shelf.
func parseSearchShelf(shelf *crawler) (Page[SearchResultItem], error) {
	contents, err := shelf.array("/contents")
	if err != nil {
		return Page[SearchResultItem]{}, err
	}

	items := make([]SearchResultItem, 0, len(contents))

	for _, content := range contents {
		item, ok := content.optional(pathMRLIR)
		if !ok {
			continue
		}

		if pageType, typeErr := item.str(pathNavigationPageType); typeErr != nil || pageType != pageTypeArtist {
			continue
		}

		parsed, err := parseSearchArtistItem(item)
		if err != nil {
			return Page[SearchResultItem]{}, err
		}

		items = append(items, parsed)
	}

	return Page[SearchResultItem]{
		Items:        items,
		Continuation: shelfContinuation(shelf, kindSearch),
	}, nil
}

// parseSearchArtistItem decodes a single artist result. The display name
// sits in the first flex column; the subscriber count, when present, in the
// third run of the second column, after the "Artist" tag and its separator.
func parseSearchArtistItem(item *crawler) (SearchResultItem, error) {
	name, err := parseItemText(item, 0, 0)
	if err != nil {
		return SearchResultItem{}, err
	}

	browseID, err := item.optionalStr(pathNavigationBrowseID)
	if err != nil {
		return SearchResultItem{}, err
	}

	thumbnails, err := parseThumbnails(item, pathThumbnails)
	if err != nil {
		return SearchResultItem{}, err
	}

	return SearchResultItem{
		Artist:      name,
		Subscribers: optionalItemText(item, 1, 2),
		BrowseID:    browseID,
		Thumbnails:  thumbnails,
	}, nil
}
