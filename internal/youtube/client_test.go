package youtube

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractID(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
		ok   bool
	}{
		{"watch url", "https://www.youtube.com/watch?v=dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short url", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"short url with params", "https://youtu.be/dQw4w9WgXcQ?t=42", "dQw4w9WgXcQ", true},
		{"embed url", "https://www.youtube.com/embed/dQw4w9WgXcQ", "dQw4w9WgXcQ", true},
		{"watch url with extra params", "https://www.youtube.com/watch?list=PL123&v=abc123", "abc123", true},
		{"no scheme", "youtube.com/watch?v=abc123", "abc123", true},
		{"unrelated url", "https://vimeo.com/123456", "", false},
		{"empty", "", "", false},
		{"plain text", "not a url at all", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := ExtractID(tc.url)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.want, got)
		})
	}
}

// Different URL shapes for the same video must extract the same id, since
// duplicate detection keys on the id.
func TestExtractID_SameVideoAcrossShapes(t *testing.T) {
	a, ok := ExtractID("https://youtu.be/X9kQzz1")
	require.True(t, ok)
	b, ok := ExtractID("https://www.youtube.com/watch?v=X9kQzz1")
	require.True(t, ok)
	assert.Equal(t, a, b)
}

func TestPlaceholder_Deterministic(t *testing.T) {
	md := Placeholder("abc123")
	assert.Equal(t, "Video abc123", md.Title)
	assert.Equal(t, "https://img.youtube.com/vi/abc123/hqdefault.jpg", md.Thumbnail)
	assert.Equal(t, "N/A", md.Duration)
	assert.Equal(t, "Unknown Channel", md.ChannelTitle)
}

func TestWatchURL(t *testing.T) {
	assert.Equal(t, "https://www.youtube.com/watch?v=abc123", WatchURL("abc123"))
}

func TestLookup_NoAPIKeyUsesPlaceholder(t *testing.T) {
	c := NewClient("", nil)
	md := c.Lookup(context.Background(), "abc123")
	assert.Equal(t, "Video abc123", md.Title)
}

func TestLookup_APIErrorFallsBackToPlaceholder(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := NewClient("test-key", nil)
	c.BaseURL = srv.URL
	c.HTTP = srv.Client()

	md := c.Lookup(context.Background(), "abc123")
	assert.Equal(t, "Video abc123", md.Title)
	assert.Equal(t, "No description available", md.Description)
}

func TestLookup_ParsesAPIResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc123", r.URL.Query().Get("id"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		_, _ = w.Write([]byte(`{
			"items": [{
				"snippet": {
					"title": "A Real Title",
					"description": "desc",
					"channelTitle": "Some Channel",
					"publishedAt": "2023-04-01T10:00:00Z",
					"thumbnails": {"high": {"url": "https://example.com/hq.jpg"}}
				},
				"contentDetails": {"duration": "PT4M13S"}
			}]
		}`))
	}))
	defer srv.Close()

	c := NewClient("test-key", nil)
	c.BaseURL = srv.URL
	c.HTTP = srv.Client()

	md := c.Lookup(context.Background(), "abc123")
	assert.Equal(t, "A Real Title", md.Title)
	assert.Equal(t, "Some Channel", md.ChannelTitle)
	assert.Equal(t, "PT4M13S", md.Duration)
	assert.Equal(t, "https://example.com/hq.jpg", md.Thumbnail)
}
