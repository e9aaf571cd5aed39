package app

import (
	"context"

	"github.com/oshokin/ytmusic-cli/internal/config"
	"github.com/oshokin/ytmusic-cli/internal/logger"
)

// ExecuteSearchCommand searches for artists matching a term and prints the
// first page of results.
func ExecuteSearchCommand(ctx context.Context, cfg *config.Config, term string) {
	s, err := newService(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize service: %v", err)
	}

	results, err := s.SearchArtists(ctx, term)
	if err != nil {
		logger.Fatalf(ctx, "Search failed: %v", err)
	}

	renderSearchResults(results)
}

// ExecuteSuggestCommand prints search completions for a partial term.
func ExecuteSuggestCommand(ctx context.Context, cfg *config.Config, term string) {
	s, err := newService(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize service: %v", err)
	}

	suggestions, err := s.Suggest(ctx, term)
	if err != nil {
		logger.Fatalf(ctx, "Failed to fetch suggestions: %v", err)
	}

	renderSuggestions(suggestions)
}
