package app

import (
	"context"

	"github.com/oshokin/ytmusic-cli/internal/config"
	"github.com/oshokin/ytmusic-cli/internal/logger"
)

// ExecuteLibraryCommand fetches and prints the user's playlists, following
// continuations for up to maxPages pages.
func ExecuteLibraryCommand(ctx context.Context, cfg *config.Config, maxPages int) {
	s, err := newService(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize service: %v", err)
	}

	playlists, err := s.ListLibraryPlaylists(ctx, maxPages)
	if err != nil {
		logger.Fatalf(ctx, "Failed to fetch library playlists: %v", err)
	}

	renderPlaylists(playlists)
}
