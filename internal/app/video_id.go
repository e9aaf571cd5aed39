package app

import (
	"regexp"

	"github.com/oshokin/ytmusic-cli/internal/utils"
)

// videoURLPattern matches the video ID inside watch and short-link URLs, so
// commands accept a pasted link as well as a bare ID.
//
//nolint:gochecknoglobals,lll // These are immutable, pre-compiled regex patterns and used as constants.
var videoURLPattern = regexp.MustCompile(`(?:watch\?(?:.*&)?v=|youtu\.be/)(?P<videoID>[A-Za-z0-9_-]{11})`)

// normalizeVideoID accepts either a bare video ID or a full URL and returns
// the video ID.
func normalizeVideoID(input string) string {
	if videoID := utils.ExtractNamedGroup(videoURLPattern, "videoID", input); videoID != "" {
		return videoID
	}

	return input
}
