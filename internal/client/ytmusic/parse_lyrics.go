package ytmusic

// decode extracts lyrics from a lyrics browse response. The text lives in a
// description shelf inside the first section; the footer holds the source
// attribution when the provider licenses one.
func (q getLyricsQuery) decode(root *crawler) (*Lyrics, error) {
	section, err := root.pointer("/contents" + pathSectionListItem)
	if err != nil {
		return nil, err
	}

	shelf, err := section.pointer(pathDescriptionShelf)
	if err != nil {
		return nil, err
	}

	text, err := shelf.str("/description" + pathRunText)
	if err != nil {
		return nil, err
	}

	source, err := shelf.optionalStr("/footer" + pathRunText)
	if err != nil {
		return nil, err
	}

	return &Lyrics{Lyrics: text, Source: source}, nil
}
