package application

import (
	"context"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/abdelrhman445/learn-video-vercel/internal/domain/entity"
	"github.com/abdelrhman445/learn-video-vercel/internal/domain/repository"
	"github.com/abdelrhman445/learn-video-vercel/pkg/helpers"
)

const (
	statsCacheKey = "admin:stats"
	statsCacheTTL = 30 * time.Second
)

// AdminService covers the administration surface: user management,
// the activity log viewer and dashboard statistics.
type AdminService struct {
	Users    repository.UserRepository
	Videos   repository.VideoRepository
	Logs     repository.ActivityRepository
	Activity *Recorder
	Redis    *redis.Client
	Logger   *logrus.Logger
}

func NewAdminService(users repository.UserRepository, videos repository.VideoRepository, logs repository.ActivityRepository, activity *Recorder, rdb *redis.Client, logger *logrus.Logger) *AdminService {
	return &AdminService{Users: users, Videos: videos, Logs: logs, Activity: activity, Redis: rdb, Logger: logger}
}

func (s *AdminService) ListUsers(ctx context.Context, page, limit int) ([]*entity.User, int64, error) {
	limit, offset := pageWindow(page, limit, 20)
	return s.Users.List(ctx, limit, offset)
}

// UpdateUserInput is the admin's allow-list for user updates. Only the
// role and the active flag can be changed; names, emails and password
// hashes are never writable through this path.
type UpdateUserInput struct {
	Role   *string
	Active *bool
}

func (s *AdminService) UpdateUser(ctx context.Context, id string, in UpdateUserInput, actor *entity.User, meta RequestMeta) (*entity.User, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	diff := map[string]any{}
	if in.Role != nil {
		u.Role = *in.Role
		diff["role"] = *in.Role
	}
	if in.Active != nil {
		u.Active = *in.Active
		diff["is_active"] = *in.Active
	}
	if err := s.Users.Update(ctx, u); err != nil {
		return nil, err
	}

	s.Activity.Record(ctx, actor.ID, entity.ActionUpdateUser, entity.TargetUser,
		map[string]any{"user_id": u.ID, "email": u.Email, "updates": diff}, meta)
	return u, nil
}

func (s *AdminService) ListLogs(ctx context.Context, action string, page, limit int) ([]*entity.ActivityLog, int64, error) {
	limit, offset := pageWindow(page, limit, 50)
	return s.Logs.List(ctx, action, limit, offset)
}

// Stats is the dashboard snapshot. Cached for a short window since every
// admin page load requests it.
type Stats struct {
	TotalUsers   int64  `json:"totalUsers"`
	TotalVideos  int64  `json:"totalVideos"`
	TotalViews   int64  `json:"totalViews"`
	RecentUsers  int64  `json:"recentUsers"`
	SystemStatus string `json:"systemStatus"`
}

func (s *AdminService) GetStats(ctx context.Context) (*Stats, error) {
	if s.Redis != nil {
		var cached Stats
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, statsCacheKey, &cached); err == nil && ok {
			return &cached, nil
		}
	}

	totalUsers, err := s.Users.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalVideos, err := s.Videos.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalViews, err := s.Videos.SumViews(ctx)
	if err != nil {
		return nil, err
	}
	recentUsers, err := s.Users.CountCreatedSince(ctx, time.Now().AddDate(0, 0, -7))
	if err != nil {
		return nil, err
	}

	st := &Stats{
		TotalUsers:   totalUsers,
		TotalVideos:  totalVideos,
		TotalViews:   totalViews,
		RecentUsers:  recentUsers,
		SystemStatus: "operational",
	}
	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, statsCacheKey, st, statsCacheTTL); err != nil {
			s.Logger.WithError(err).Warn("stats cache write failed")
		}
	}
	return st, nil
}
