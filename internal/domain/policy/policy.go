// Package policy holds the access rules deciding which videos a viewer may
// see. It is pure: no I/O, no side effects. List queries mirror CanView as a
// SQL predicate in the postgres repository so filtering happens in the
// database; both must be kept in sync.
package policy

import "github.com/abdelrhman445/learn-video-vercel/internal/domain/entity"

// Viewer is the subject of an access decision.
type Viewer struct {
	ID   string
	Role string
}

// CanView reports whether the viewer may watch the video.
//
// Inactive videos are visible to no one through this check. Public and
// unlisted grant access to any authenticated viewer. Private requires an
// explicit allow-listing by role, by user id, or ownership.
func CanView(viewer Viewer, video *entity.Video) bool {
	if !video.IsActive {
		return false
	}
	switch video.Privacy {
	case entity.PrivacyPublic, entity.PrivacyUnlisted:
		return true
	case entity.PrivacyPrivate:
		if video.AddedBy == viewer.ID {
			return true
		}
		for _, r := range video.AllowedRoles {
			if r == viewer.Role {
				return true
			}
		}
		for _, u := range video.AllowedUsers {
			if u == viewer.ID {
				return true
			}
		}
		return false
	default:
		return false
	}
}

// NormalizeAllowedRoles applies the catalogue default: a private video with
// no roles listed is treated as allowing the base user role.
func NormalizeAllowedRoles(roles []string) []string {
	if len(roles) == 0 {
		return []string{entity.RoleUser}
	}
	return roles
}
