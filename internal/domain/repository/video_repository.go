package repository

import (
	"context"

	"github.com/abdelrhman445/learn-video-vercel/internal/domain/entity"
	"github.com/abdelrhman445/learn-video-vercel/internal/domain/policy"
)

// VideoRepository defines the interface for catalogue persistence.
//
// List methods filter in SQL, order newest-first and report the total count
// for pagination metadata. The search argument, when non-empty, is a
// case-insensitive substring match on title and description.
type VideoRepository interface {
	Create(ctx context.Context, v *entity.Video) error
	GetByID(ctx context.Context, id string) (*entity.Video, error)
	GetByYouTubeID(ctx context.Context, youtubeID string) (*entity.Video, error)
	Update(ctx context.Context, v *entity.Video) error
	Delete(ctx context.Context, id string) error
	// ListForViewer returns active videos the viewer may watch, applying the
	// policy.CanView rule as a database predicate.
	ListForViewer(ctx context.Context, viewer policy.Viewer, search string, limit, offset int) ([]*entity.Video, int64, error)
	// ListActive returns all active videos regardless of privacy (admin view).
	ListActive(ctx context.Context, search string, limit, offset int) ([]*entity.Video, int64, error)
	// IncrementViews atomically bumps the view counter and returns the new value.
	IncrementViews(ctx context.Context, id string) (int64, error)
	Count(ctx context.Context) (int64, error)
	SumViews(ctx context.Context) (int64, error)
}
