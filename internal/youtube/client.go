// Package youtube extracts video identifiers from share URLs and fetches
// descriptive metadata from the YouTube Data API, degrading to deterministic
// placeholders when the API is unconfigured or unreachable.
package youtube

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"
	"time"

	"github.com/sirupsen/logrus"
)

// Known URL shapes: watch?v=, youtu.be/, embed/.
var idPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:youtube\.com/watch\?v=|youtu\.be/|youtube\.com/embed/)([^&?#/]+)`),
	regexp.MustCompile(`youtube\.com/watch\?.*v=([^&]+)`),
	regexp.MustCompile(`youtu\.be/([^?]+)`),
}

// ExtractID pulls the video identifier out of a YouTube URL.
// It returns false when no known pattern matches.
func ExtractID(rawURL string) (string, bool) {
	for _, p := range idPatterns {
		if m := p.FindStringSubmatch(rawURL); len(m) > 1 && m[1] != "" {
			return m[1], true
		}
	}
	return "", false
}

// WatchURL returns the canonical watch URL stored for a video id.
func WatchURL(id string) string {
	return "https://www.youtube.com/watch?v=" + id
}

// Metadata is the descriptive snapshot captured once at video creation.
type Metadata struct {
	Title        string
	Description  string
	Thumbnail    string
	Duration     string
	PublishedAt  time.Time
	ChannelTitle string
}

// Placeholder returns deterministic metadata derived from the id, used when
// the external lookup is unavailable or fails.
func Placeholder(id string) Metadata {
	return Metadata{
		Title:        "Video " + id,
		Description:  "No description available",
		Thumbnail:    fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", id),
		Duration:     "N/A",
		PublishedAt:  time.Now().UTC(),
		ChannelTitle: "Unknown Channel",
	}
}

const apiEndpoint = "https://www.googleapis.com/youtube/v3/videos"

// Client queries the YouTube Data API v3.
type Client struct {
	APIKey  string
	BaseURL string
	HTTP    *http.Client
	Logger  *logrus.Logger
}

func NewClient(apiKey string, logger *logrus.Logger) *Client {
	return &Client{
		APIKey:  apiKey,
		BaseURL: apiEndpoint,
		HTTP:    &http.Client{Timeout: 5 * time.Second},
		Logger:  logger,
	}
}

// Lookup fetches metadata for the given video id. It never fails the caller:
// any lookup problem yields placeholder metadata instead.
func (c *Client) Lookup(ctx context.Context, id string) Metadata {
	if c == nil || c.APIKey == "" {
		return Placeholder(id)
	}
	md, err := c.fetch(ctx, id)
	if err != nil {
		if c.Logger != nil {
			c.Logger.WithError(err).WithField("youtube_id", id).Warn("youtube lookup failed, using placeholder")
		}
		return Placeholder(id)
	}
	return md
}

func (c *Client) fetch(ctx context.Context, id string) (Metadata, error) {
	q := url.Values{}
	q.Set("part", "snippet,contentDetails")
	q.Set("id", id)
	q.Set("key", c.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+"?"+q.Encode(), nil)
	if err != nil {
		return Metadata{}, err
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return Metadata{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return Metadata{}, fmt.Errorf("youtube api status %d", resp.StatusCode)
	}

	var body struct {
		Items []struct {
			Snippet struct {
				Title        string    `json:"title"`
				Description  string    `json:"description"`
				ChannelTitle string    `json:"channelTitle"`
				PublishedAt  time.Time `json:"publishedAt"`
				Thumbnails   struct {
					High   struct{ URL string `json:"url"` } `json:"high"`
					Medium struct{ URL string `json:"url"` } `json:"medium"`
				} `json:"thumbnails"`
			} `json:"snippet"`
			ContentDetails struct {
				Duration string `json:"duration"`
			} `json:"contentDetails"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return Metadata{}, err
	}
	if len(body.Items) == 0 {
		return Metadata{}, fmt.Errorf("video %s not found on youtube", id)
	}

	item := body.Items[0]
	thumb := item.Snippet.Thumbnails.High.URL
	if thumb == "" {
		thumb = item.Snippet.Thumbnails.Medium.URL
	}
	return Metadata{
		Title:        item.Snippet.Title,
		Description:  item.Snippet.Description,
		Thumbnail:    thumb,
		Duration:     item.ContentDetails.Duration,
		PublishedAt:  item.Snippet.PublishedAt,
		ChannelTitle: item.Snippet.ChannelTitle,
	}, nil
}
