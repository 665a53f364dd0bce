package utils

import (
	"fmt"
	"regexp"
	"time"

	"github.com/go-resty/resty/v2"
)

var youtubePatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&\n?#]+)`),
	regexp.MustCompile(`^([a-zA-Z0-9_-]{11})$`),
}

// ExtractYouTubeID pulls the 11-character video id out of the usual YouTube
// URL shapes, or returns "" when the URL is not recognizable.
func ExtractYouTubeID(url string) string {
	for _, pattern := range youtubePatterns {
		if match := pattern.FindStringSubmatch(url); match != nil {
			return match[1]
		}
	}
	return ""
}

// DefaultThumbnail builds the YouTube-hosted thumbnail URL for a video id.
func DefaultThumbnail(youtubeID string) string {
	return fmt.Sprintf("https://img.youtube.com/vi/%s/maxresdefault.jpg", youtubeID)
}

// VideoMetadata is what the oEmbed endpoint reports about a video.
type VideoMetadata struct {
	Title        string `json:"title"`
	ThumbnailURL string `json:"thumbnail_url"`
}

// FetchVideoMetadata asks YouTube's oEmbed endpoint for the video title and
// thumbnail, used by the authoring flow to prefill fields the admin left
// blank. Failures are returned to the caller, who treats them as optional.
func FetchVideoMetadata(videoURL string) (*VideoMetadata, error) {
	client := resty.New().SetTimeout(10 * time.Second)

	var meta VideoMetadata
	resp, err := client.R().
		SetQueryParams(map[string]string{
			"url":    videoURL,
			"format": "json",
		}).
		SetResult(&meta).
		Get("https://www.youtube.com/oembed")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, fmt.Errorf("oembed lookup failed: %s", resp.Status())
	}
	return &meta, nil
}
