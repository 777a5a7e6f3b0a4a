package application

import (
	"context"
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/mock"

	"github.com/abdelrhman445/learn-video-vercel/internal/domain/entity"
	"github.com/abdelrhman445/learn-video-vercel/internal/domain/policy"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) Create(ctx context.Context, u *entity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*entity.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	args := m.Called(ctx, email)
	if u, ok := args.Get(0).(*entity.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *entity.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	args := m.Called(ctx, id, at)
	return args.Error(0)
}

func (m *mockUserRepo) List(ctx context.Context, limit, offset int) ([]*entity.User, int64, error) {
	args := m.Called(ctx, limit, offset)
	users, _ := args.Get(0).([]*entity.User)
	return users, args.Get(1).(int64), args.Error(2)
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockUserRepo) CountCreatedSince(ctx context.Context, since time.Time) (int64, error) {
	args := m.Called(ctx, since)
	return args.Get(0).(int64), args.Error(1)
}

type mockVideoRepo struct{ mock.Mock }

func (m *mockVideoRepo) Create(ctx context.Context, v *entity.Video) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *mockVideoRepo) GetByID(ctx context.Context, id string) (*entity.Video, error) {
	args := m.Called(ctx, id)
	if v, ok := args.Get(0).(*entity.Video); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVideoRepo) GetByYouTubeID(ctx context.Context, ytID string) (*entity.Video, error) {
	args := m.Called(ctx, ytID)
	if v, ok := args.Get(0).(*entity.Video); ok {
		return v, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockVideoRepo) Update(ctx context.Context, v *entity.Video) error {
	args := m.Called(ctx, v)
	return args.Error(0)
}

func (m *mockVideoRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockVideoRepo) ListForViewer(ctx context.Context, viewer policy.Viewer, search string, limit, offset int) ([]*entity.Video, int64, error) {
	args := m.Called(ctx, viewer, search, limit, offset)
	videos, _ := args.Get(0).([]*entity.Video)
	return videos, args.Get(1).(int64), args.Error(2)
}

func (m *mockVideoRepo) ListActive(ctx context.Context, search string, limit, offset int) ([]*entity.Video, int64, error) {
	args := m.Called(ctx, search, limit, offset)
	videos, _ := args.Get(0).([]*entity.Video)
	return videos, args.Get(1).(int64), args.Error(2)
}

func (m *mockVideoRepo) IncrementViews(ctx context.Context, id string) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockVideoRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockVideoRepo) SumViews(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

type mockActivityRepo struct{ mock.Mock }

func (m *mockActivityRepo) Insert(ctx context.Context, e *entity.ActivityLog) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}

func (m *mockActivityRepo) List(ctx context.Context, action string, limit, offset int) ([]*entity.ActivityLog, int64, error) {
	args := m.Called(ctx, action, limit, offset)
	logs, _ := args.Get(0).([]*entity.ActivityLog)
	return logs, args.Get(1).(int64), args.Error(2)
}
