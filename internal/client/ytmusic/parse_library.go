package ytmusic

// decode extracts the user's library playlists. The grid's first item is
// the "new playlist" tile, not a playlist, and is skipped. Continuations
// are deliberately not followed for the first page.
func (q getLibraryPlaylistsQuery) decode(root *crawler) (Page[Playlist], error) {
	tab, err := root.pointer(pathSingleColumnTab)
	if err != nil {
		return Page[Playlist]{}, err
	}

	section, err := tab.pointer(pathSectionListItem)
	if err != nil {
		return Page[Playlist]{}, err
	}

	items, err := section.array(pathGridItems)
	if err != nil {
		return Page[Playlist]{}, err
	}

	if len(items) > 0 {
		items = items[1:]
	}

	page := Page[Playlist]{Items: make([]Playlist, 0, len(items))}

	for _, element := range items {
		item, err := element.pointer(pathMTRIR)
		if err != nil {
			return Page[Playlist]{}, err
		}

		playlist, err := parseLibraryPlaylist(item)
		if err != nil {
			return Page[Playlist]{}, err
		}

		page.Items = append(page.Items, playlist)
	}

	return page, nil
}

// decodeContinuation extracts further library playlists from a grid
// continuation response.
func (q getLibraryPlaylistsQuery) decodeContinuation(root *crawler) (Page[Playlist], error) {
	grid, err := root.pointer("/continuationContents/gridContinuation")
	if err != nil {
		return Page[Playlist]{}, err
	}

	items, err := grid.array("/items")
	if err != nil {
		return Page[Playlist]{}, err
	}

	page := Page[Playlist]{
		Items:        make([]Playlist, 0, len(items)),
		Continuation: shelfContinuation(grid, kindGetLibraryPlaylists),
	}

	for _, element := range items {
		item, err := element.pointer(pathMTRIR)
		if err != nil {
			return Page[Playlist]{}, err
		}

		playlist, err := parseLibraryPlaylist(item)
		if err != nil {
			return Page[Playlist]{}, err
		}

		page.Items = append(page.Items, playlist)
	}

	return page, nil
}

// parseLibraryPlaylist decodes a single two-row playlist tile.
func parseLibraryPlaylist(item *crawler) (Playlist, error) {
	title, err := item.str(pathTitleText)
	if err != nil {
		return Playlist{}, err
	}

	playlistID, err := item.str(pathNavigationBrowseID)
	if err != nil {
		return Playlist{}, err
	}

	description, err := item.optionalStr(pathSubtitleRuns + "/0/text")
	if err != nil {
		return Playlist{}, err
	}

	thumbnails, err := parseThumbnails(item, pathMTRIRThumbnails)
	if err != nil {
		return Playlist{}, err
	}

	return Playlist{
		PlaylistID:  playlistID,
		Title:       title,
		Description: description,
		Thumbnails:  thumbnails,
	}, nil
}
