package ytmusic

const (
	// pathDetailHeader unwraps an album page header.
	pathDetailHeader = "/header/musicDetailHeaderRenderer"
	// pathWatchVideoID reads the playback target of a formatted text run.
	pathWatchVideoID = "/navigationEndpoint/watchEndpoint/videoId"
	// pathFixedColumnText reads the text of a responsive list item's first
	// fixed column, which holds the track duration on album pages.
	pathFixedColumnText = "/fixedColumns/0/musicResponsiveListItemFixedColumnRenderer/text/runs/0/text"
)

// decode extracts an album page: title, subtitle metadata and the track
// shelf. The subtitle runs read "<type> • <artist> • <year>", so the artist
// and year sit at fixed run offsets when present.
func (q getAlbumQuery) decode(root *crawler) (*Album, error) {
	header, err := root.pointer(pathDetailHeader)
	if err != nil {
		return nil, err
	}

	title, err := header.str("/title" + pathRunText)
	if err != nil {
		return nil, err
	}

	artist, err := header.optionalStr("/subtitle/runs/2/text")
	if err != nil {
		return nil, err
	}

	year, err := header.optionalStr("/subtitle/runs/-1/text")
	if err != nil {
		return nil, err
	}

	trackCount, err := header.optionalStr("/secondSubtitle/runs/0/text")
	if err != nil {
		return nil, err
	}

	thumbnails, err := parseThumbnails(header, pathCroppedThumbnails)
	if err != nil {
		return nil, err
	}

	tab, err := root.pointer(pathSingleColumnTab)
	if err != nil {
		return nil, err
	}

	section, err := tab.pointer(pathSectionListItem)
	if err != nil {
		return nil, err
	}

	contents, err := section.array(pathMusicShelf)
	if err != nil {
		return nil, err
	}

	tracks := make([]Song, 0, len(contents))

	for _, content := range contents {
		item, err := content.pointer(pathMRLIR)
		if err != nil {
			return nil, err
		}

		track, err := parseAlbumTrack(item)
		if err != nil {
			return nil, err
		}

		tracks = append(tracks, track)
	}

	return &Album{
		Title:      title,
		Artist:     artist,
		Year:       year,
		TrackCount: trackCount,
		Thumbnails: thumbnails,
		Tracks:     tracks,
	}, nil
}

// parseAlbumTrack decodes one row of an album's track shelf. Unavailable
// tracks keep their title but carry no playback target, so the video ID
// stays optional.
func parseAlbumTrack(item *crawler) (Song, error) {
	title, err := parseItemText(item, 0, 0)
	if err != nil {
		return Song{}, err
	}

	videoID, err := item.optionalStr(
		"/flexColumns/0/musicResponsiveListItemFlexColumnRenderer/text/runs/0" + pathWatchVideoID)
	if err != nil {
		return Song{}, err
	}

	duration, err := item.optionalStr(pathFixedColumnText)
	if err != nil {
		return Song{}, err
	}

	return Song{
		Title:    title,
		VideoID:  videoID,
		Duration: duration,
		Plays:    optionalItemText(item, 2, 0),
	}, nil
}
