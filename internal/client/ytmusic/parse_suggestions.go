package ytmusic

// decode extracts search suggestions. Each entry arrives as either a
// prediction or a history suggestion; both carry the same run structure,
// with a bold flag marking the fragments that extend the typed prefix.
func (q getSearchSuggestionsQuery) decode(root *crawler) ([]SearchSuggestion, error) {
	contents, err := root.array("/contents/0/searchSuggestionsSectionRenderer/contents")
	if err != nil {
		return nil, err
	}

	suggestions := make([]SearchSuggestion, 0, len(contents))

	for _, content := range contents {
		kind := SuggestionKindPrediction

		renderer, ok := content.optional("/searchSuggestionRenderer")
		if !ok {
			renderer, ok = content.optional("/historySuggestionRenderer")
			if !ok {
				return nil, content.fail("", "search or history suggestion renderer", describeJSON(content.value))
			}

			kind = SuggestionKindHistory
		}

		runs, err := renderer.array("/suggestion/runs")
		if err != nil {
			return nil, err
		}

		suggestion := SearchSuggestion{Kind: kind, Runs: make([]TextRun, 0, len(runs))}

		for _, run := range runs {
			text, err := run.str("/text")
			if err != nil {
				return nil, err
			}

			bold := false
			if flag, ok := run.optional("/bold"); ok {
				if bold, err = flag.asBool(); err != nil {
					return nil, err
				}
			}

			suggestion.Runs = append(suggestion.Runs, TextRun{Text: text, Bold: bold})
		}

		suggestions = append(suggestions, suggestion)
	}

	return suggestions, nil
}
