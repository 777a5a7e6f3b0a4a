package repository

import (
	"context"

	"github.com/abdelrhman445/learn-video-vercel/internal/domain/entity"
)

// ActivityRepository persists the append-only activity log.
// There is intentionally no update or delete.
type ActivityRepository interface {
	Insert(ctx context.Context, e *entity.ActivityLog) error
	// List returns entries newest-first, optionally filtered by action,
	// with actor name/email resolved for display.
	List(ctx context.Context, action string, limit, offset int) ([]*entity.ActivityLog, int64, error)
}
