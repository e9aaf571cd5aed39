package ytmusic

// decode extracts the playback queue built from a video. Only the queue
// entry identifiers are decoded; continuations are deliberately not
// followed. The lyrics browse ID sits on the second tab of the watch
// panel, the queue on the first.
func (q getWatchPlaylistQuery) decode(root *crawler) (*WatchPlaylist, error) {
	watch, err := root.pointer(pathWatchTabbedResults)
	if err != nil {
		return nil, err
	}

	lyricsID, err := watch.optionalStr("/tabs/1/tabRenderer/endpoint/browseEndpoint/browseId")
	if err != nil {
		return nil, err
	}

	queueTab, err := watch.pointer("/tabs/0/tabRenderer/content")
	if err != nil {
		return nil, err
	}

	contents, err := queueTab.array(pathQueueContents)
	if err != nil {
		return nil, err
	}

	playlist := &WatchPlaylist{LyricsID: lyricsID}

	for _, content := range contents {
		item, ok := content.optional(pathPPVR)
		if !ok {
			// Automix placeholders and counterpart wrappers carry no
			// playable entry.
			continue
		}

		videoID, err := item.str("/videoId")
		if err != nil {
			return nil, err
		}

		if playlist.PlaylistID == nil {
			playlistID, err := item.optionalStr("/navigationEndpoint/watchEndpoint/playlistId")
			if err != nil {
				return nil, err
			}

			playlist.PlaylistID = playlistID
		}

		playlist.Tracks.Items = append(playlist.Tracks.Items, WatchTrack{VideoID: videoID})
	}

	return playlist, nil
}

// decodeContinuation extracts further queue entries from a watch playlist
// continuation response.
func (q getWatchPlaylistQuery) decodeContinuation(root *crawler) (Page[WatchTrack], error) {
	panel, err := root.pointer("/continuationContents/playlistPanelContinuation")
	if err != nil {
		return Page[WatchTrack]{}, err
	}

	contents, err := panel.array("/contents")
	if err != nil {
		return Page[WatchTrack]{}, err
	}

	page := Page[WatchTrack]{Continuation: shelfContinuation(panel, kindGetWatchPlaylist)}

	for _, content := range contents {
		item, ok := content.optional(pathPPVR)
		if !ok {
			continue
		}

		videoID, err := item.str("/videoId")
		if err != nil {
			return Page[WatchTrack]{}, err
		}

		page.Items = append(page.Items, WatchTrack{VideoID: videoID})
	}

	return page, nil
}
