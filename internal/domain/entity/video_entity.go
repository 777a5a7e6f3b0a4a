package entity

import "time"

// Privacy levels for a catalogued video. Unlisted grants the same access as
// public; it only differs on discovery surfaces.
const (
	PrivacyPublic   = "public"
	PrivacyUnlisted = "unlisted"
	PrivacyPrivate  = "private"
)

// Video is an externally hosted (YouTube) video tracked by the catalogue.
// Metadata is captured once at creation and not refreshed.
type Video struct {
	ID           string
	YouTubeID    string
	URL          string
	Title        string
	Thumbnail    string
	Description  string
	Privacy      string
	AllowedRoles []string // relevant when Privacy is private; defaults to {user}
	AllowedUsers []string // user ids, relevant when Privacy is private
	AddedBy      string
	Duration     string
	PublishedAt  time.Time
	ChannelTitle string
	Views        int64
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time

	// Joined display fields, populated by list/get queries.
	AddedByName  string
	AddedByEmail string
}
