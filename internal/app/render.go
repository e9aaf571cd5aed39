package app

import (
	"fmt"
	"strings"

	ytmusic_client "github.com/oshokin/ytmusic-cli/internal/client/ytmusic"
	"github.com/oshokin/ytmusic-cli/internal/utils"
)

// valueOrDash renders optional fields, showing a dash when absent.
func valueOrDash(value *string) string {
	if value == nil || *value == "" {
		return "-"
	}

	return *value
}

func renderSearchResults(results []ytmusic_client.SearchResultItem) {
	if len(results) == 0 {
		fmt.Println("No artists found.")
		return
	}

	for i, result := range results {
		fmt.Printf("%2d. %s (subscribers: %s, channel: %s)\n",
			i+1, result.Artist, valueOrDash(result.Subscribers), valueOrDash(result.BrowseID))
	}
}

func renderSuggestions(suggestions []ytmusic_client.SearchSuggestion) {
	if len(suggestions) == 0 {
		fmt.Println("No suggestions.")
		return
	}

	for _, suggestion := range suggestions {
		text := strings.Join(
			utils.Map(suggestion.Runs, func(run ytmusic_client.TextRun) string { return run.Text }), "")

		marker := " "
		if suggestion.Kind == ytmusic_client.SuggestionKindHistory {
			marker = "*"
		}

		fmt.Printf("%s %s\n", marker, text)
	}
}

func renderArtist(artist *ytmusic_client.Artist) {
	fmt.Printf("Artist:      %s\n", artist.Name)
	fmt.Printf("Channel:     %s\n", artist.ChannelID)
	fmt.Printf("Subscribers: %s\n", valueOrDash(artist.Subscribers))

	if artist.Description != nil {
		fmt.Printf("\n%s\n", *artist.Description)
	}

	if artist.Albums != nil && len(artist.Albums.Items) > 0 {
		fmt.Println("\nAlbums:")
		renderAlbumSummaries(artist.Albums.Items)
	}
}

func renderAlbumSummaries(albums []ytmusic_client.AlbumSummary) {
	if len(albums) == 0 {
		fmt.Println("No albums found.")
		return
	}

	for i, album := range albums {
		fmt.Printf("%2d. %s (%s) [%s]\n", i+1, album.Title, valueOrDash(album.Year), album.BrowseID)
	}
}

func renderAlbum(album *ytmusic_client.Album) {
	fmt.Printf("Album:  %s\n", album.Title)
	fmt.Printf("Artist: %s\n", valueOrDash(album.Artist))
	fmt.Printf("Year:   %s\n", valueOrDash(album.Year))
	fmt.Printf("Tracks: %s\n", valueOrDash(album.TrackCount))

	if len(album.Tracks) == 0 {
		return
	}

	fmt.Println()

	for i, track := range album.Tracks {
		fmt.Printf("%2d. %s (%s, plays: %s)\n",
			i+1, track.Title, valueOrDash(track.Duration), valueOrDash(track.Plays))
	}
}

func renderLyrics(lyrics *ytmusic_client.Lyrics) {
	fmt.Println(lyrics.Lyrics)

	if lyrics.Source != nil {
		fmt.Printf("\n%s\n", *lyrics.Source)
	}
}

func renderWatchPlaylist(watch *ytmusic_client.WatchPlaylist, tracks []ytmusic_client.WatchTrack) {
	fmt.Printf("Playlist: %s\n", valueOrDash(watch.PlaylistID))
	fmt.Printf("Lyrics:   %s\n", valueOrDash(watch.LyricsID))
	fmt.Println()

	for i, track := range tracks {
		fmt.Printf("%2d. %s\n", i+1, track.VideoID)
	}
}

func renderPlaylists(playlists []ytmusic_client.Playlist) {
	if len(playlists) == 0 {
		fmt.Println("No playlists in the library.")
		return
	}

	for i, playlist := range playlists {
		fmt.Printf("%2d. %s (%s) [%s]\n",
			i+1, playlist.Title, valueOrDash(playlist.Description), playlist.PlaylistID)
	}
}
