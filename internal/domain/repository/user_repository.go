package repository

import (
	"context"
	"errors"
	"time"

	"github.com/abdelrhman445/learn-video-vercel/internal/domain/entity"
)

// ErrNotFound is returned by every repository when no row matches.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is returned when an insert hits a unique index
// (email or youtube_id).
var ErrDuplicate = errors.New("duplicate record")

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	Create(ctx context.Context, u *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	// GetByEmail matches case-insensitively (emails are stored lowercased).
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, u *entity.User) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error)
	Count(ctx context.Context) (int64, error)
	CountCreatedSince(ctx context.Context, since time.Time) (int64, error)
}
