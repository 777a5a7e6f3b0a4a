package entity

import "time"

// Recorded administrative/auth actions.
const (
	ActionRegister    = "REGISTER"
	ActionLogin       = "LOGIN"
	ActionAddVideo    = "ADD_VIDEO"
	ActionUpdateVideo = "UPDATE_VIDEO"
	ActionDeleteVideo = "DELETE_VIDEO"
	ActionUpdateUser  = "UPDATE_USER"
)

// Targets labelling the affected entity type.
const (
	TargetUser  = "USER"
	TargetVideo = "VIDEO"
)

// ActivityLog is an immutable audit entry. Entries are never updated or
// deleted after insert.
type ActivityLog struct {
	ID        string
	Actor     string
	Action    string
	Target    string
	Details   map[string]any
	IP        string
	UserAgent string
	CreatedAt time.Time

	// Joined display fields for the admin log viewer.
	ActorName  string
	ActorEmail string
}
