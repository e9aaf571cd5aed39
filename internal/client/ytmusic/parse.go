package ytmusic

// parseThumbnails decodes the thumbnail list at ptr. A missing list is not
// an error, but a present list with malformed entries is.
func parseThumbnails(c *crawler, ptr string) ([]Thumbnail, error) {
	list, ok := c.optional(ptr)
	if !ok {
		return nil, nil
	}

	entries, err := list.array("")
	if err != nil {
		return nil, err
	}

	thumbnails := make([]Thumbnail, 0, len(entries))

	for _, entry := range entries {
		url, err := entry.str("/url")
		if err != nil {
			return nil, err
		}

		width, err := entry.pointer("/width")
		if err != nil {
			return nil, err
		}

		w, err := width.asInt()
		if err != nil {
			return nil, err
		}

		height, err := entry.pointer("/height")
		if err != nil {
			return nil, err
		}

		h, err := height.asInt()
		if err != nil {
			return nil, err
		}

		thumbnails = append(thumbnails, Thumbnail{URL: url, Width: w, Height: h})
	}

	return thumbnails, nil
}

// shelfContinuation reads the next-page cursor attached to a shelf, grid or
// panel, stamped with the endpoint it belongs to. Returns nil when the
// shelf is terminal.
func shelfContinuation(shelf *crawler, kind queryKind) *ContinuationToken {
	token, ok := shelf.optional(pathContinuationToken)
	if !ok {
		return nil
	}

	value, err := token.asString()
	if err != nil {
		return nil
	}

	return &ContinuationToken{value: value, kind: kind}
}
