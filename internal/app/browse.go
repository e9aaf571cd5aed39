package app

import (
	"context"

	"github.com/oshokin/ytmusic-cli/internal/config"
	"github.com/oshokin/ytmusic-cli/internal/logger"
)

// ExecuteArtistCommand fetches and prints an artist page.
func ExecuteArtistCommand(ctx context.Context, cfg *config.Config, channelID string) {
	s, err := newService(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize service: %v", err)
	}

	artist, err := s.GetArtist(ctx, channelID)
	if err != nil {
		logger.Fatalf(ctx, "Failed to fetch artist: %v", err)
	}

	renderArtist(artist)
}

// ExecuteArtistAlbumsCommand fetches and prints an artist's release list.
func ExecuteArtistAlbumsCommand(ctx context.Context, cfg *config.Config, channelID string) {
	s, err := newService(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize service: %v", err)
	}

	albums, err := s.GetArtistAlbums(ctx, channelID)
	if err != nil {
		logger.Fatalf(ctx, "Failed to fetch albums: %v", err)
	}

	renderAlbumSummaries(albums)
}

// ExecuteAlbumCommand fetches and prints an album page with its track list.
func ExecuteAlbumCommand(ctx context.Context, cfg *config.Config, browseID string) {
	s, err := newService(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize service: %v", err)
	}

	album, err := s.GetAlbum(ctx, browseID)
	if err != nil {
		logger.Fatalf(ctx, "Failed to fetch album: %v", err)
	}

	renderAlbum(album)
}

// ExecuteLyricsCommand resolves and prints the lyrics of a track.
func ExecuteLyricsCommand(ctx context.Context, cfg *config.Config, videoID string) {
	s, err := newService(ctx, cfg)
	if err != nil {
		logger.Fatalf(ctx, "Failed to initialize service: %v", err)
	}

	lyrics, err := s.GetLyricsForVideo(ctx, normalizeVideoID(videoID))
	if err != nil {
		logger.Fatalf(ctx, "Failed to fetch lyrics: %v", err)
	}

	renderLyrics(lyrics)
}
