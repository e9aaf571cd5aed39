package app

import (
	"context"

	"github.com/oshokin/ytmusic-cli/internal/config"
	"github.com/oshokin/ytmusic-cli/internal/logger"
)

// ExecuteWatchCommand fetches and prints the playback queue built from a
// video. A positive limit follows continuations until that many entries
// have been collected.
func ExecuteWatchCommand(ctx context.Context, cfg *config.Config, videoID string, limit int) {
	s, err := newService(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize service: %v", err)
	}

	watch, tracks, err := s.ListWatchTracks(ctx, normalizeVideoID(videoID), limit)
	if err != nil {
		logger.Fatalf(ctx, "Failed to fetch watch playlist: %v", err)
	}

	renderWatchPlaylist(watch, tracks)
}
