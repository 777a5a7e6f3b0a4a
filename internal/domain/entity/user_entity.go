package entity

import "time"

// Roles a user account can hold.
const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User is the aggregate root for the credential store.
// PasswordHash holds a bcrypt hash and must never be serialized outward.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	Role         string
	Active       bool
	LastLogin    *time.Time
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the user holds the admin role.
func (u *User) IsAdmin() bool { return u.Role == RoleAdmin }
