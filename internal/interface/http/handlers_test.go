package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abdelrhman445/learn-video-vercel/internal/application"
	"github.com/abdelrhman445/learn-video-vercel/internal/domain/entity"
	"github.com/abdelrhman445/learn-video-vercel/internal/domain/policy"
	"github.com/abdelrhman445/learn-video-vercel/internal/domain/repository"
	"github.com/abdelrhman445/learn-video-vercel/internal/interface/middleware"
	"github.com/abdelrhman445/learn-video-vercel/internal/youtube"
	"github.com/abdelrhman445/learn-video-vercel/pkg/helpers"
	"github.com/abdelrhman445/learn-video-vercel/pkg/validation"
	"github.com/sirupsen/logrus"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

// In-memory repositories backing the full HTTP stack in tests.

type memUsers struct {
	mu          sync.Mutex
	byID        map[string]*entity.User
	failGetByID error
}

func newMemUsers() *memUsers { return &memUsers{byID: map[string]*entity.User{}} }

func (m *memUsers) Create(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.byID {
		if e.Email == u.Email {
			return repository.ErrDuplicate
		}
	}
	u.ID = uuid.New().String()
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}

func (m *memUsers) GetByID(_ context.Context, id string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGetByID != nil {
		return nil, m.failGetByID
	}
	if u, ok := m.byID[id]; ok {
		cp := *u
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memUsers) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.byID {
		if u.Email == strings.ToLower(email) {
			cp := *u
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memUsers) Update(_ context.Context, u *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[u.ID]; !ok {
		return repository.ErrNotFound
	}
	u.UpdatedAt = time.Now()
	cp := *u
	m.byID[u.ID] = &cp
	return nil
}

func (m *memUsers) UpdateLastLogin(_ context.Context, id string, at time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if u, ok := m.byID[id]; ok {
		u.LastLogin = &at
		return nil
	}
	return repository.ErrNotFound
}

func (m *memUsers) List(_ context.Context, limit, offset int) ([]*entity.User, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.User, 0, len(m.byID))
	for _, u := range m.byID {
		cp := *u
		out = append(out, &cp)
	}
	return out, int64(len(m.byID)), nil
}

func (m *memUsers) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.byID)), nil
}

func (m *memUsers) CountCreatedSince(_ context.Context, since time.Time) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, u := range m.byID {
		if u.CreatedAt.After(since) {
			n++
		}
	}
	return n, nil
}

type memVideos struct {
	mu   sync.Mutex
	byID map[string]*entity.Video
}

func newMemVideos() *memVideos { return &memVideos{byID: map[string]*entity.Video{}} }

func (m *memVideos) Create(_ context.Context, v *entity.Video) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.byID {
		if e.YouTubeID == v.YouTubeID {
			return repository.ErrDuplicate
		}
	}
	v.ID = uuid.New().String()
	v.CreatedAt = time.Now()
	v.UpdatedAt = v.CreatedAt
	cp := *v
	m.byID[v.ID] = &cp
	return nil
}

func (m *memVideos) GetByID(_ context.Context, id string) (*entity.Video, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.byID[id]; ok {
		cp := *v
		return &cp, nil
	}
	return nil, repository.ErrNotFound
}

func (m *memVideos) GetByYouTubeID(_ context.Context, ytID string) (*entity.Video, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, v := range m.byID {
		if v.YouTubeID == ytID {
			cp := *v
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memVideos) Update(_ context.Context, v *entity.Video) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[v.ID]; !ok {
		return repository.ErrNotFound
	}
	v.UpdatedAt = time.Now()
	cp := *v
	m.byID[v.ID] = &cp
	return nil
}

func (m *memVideos) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func (m *memVideos) ListForViewer(_ context.Context, viewer policy.Viewer, search string, limit, offset int) ([]*entity.Video, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.Video, 0)
	for _, v := range m.byID {
		if !policy.CanView(viewer, v) {
			continue
		}
		if search != "" && !strings.Contains(strings.ToLower(v.Title), strings.ToLower(search)) {
			continue
		}
		cp := *v
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (m *memVideos) ListActive(_ context.Context, search string, limit, offset int) ([]*entity.Video, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.Video, 0)
	for _, v := range m.byID {
		if !v.IsActive {
			continue
		}
		cp := *v
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

func (m *memVideos) IncrementViews(_ context.Context, id string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if v, ok := m.byID[id]; ok {
		v.Views++
		return v.Views, nil
	}
	return 0, repository.ErrNotFound
}

func (m *memVideos) Count(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.byID)), nil
}

func (m *memVideos) SumViews(_ context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, v := range m.byID {
		n += v.Views
	}
	return n, nil
}

type memActivity struct {
	mu      sync.Mutex
	entries []*entity.ActivityLog
}

func (m *memActivity) Insert(_ context.Context, e *entity.ActivityLog) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	e.ID = uuid.New().String()
	e.CreatedAt = time.Now()
	cp := *e
	m.entries = append(m.entries, &cp)
	return nil
}

func (m *memActivity) List(_ context.Context, action string, limit, offset int) ([]*entity.ActivityLog, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*entity.ActivityLog, 0)
	for i := len(m.entries) - 1; i >= 0; i-- {
		e := m.entries[i]
		if action != "" && e.Action != action {
			continue
		}
		cp := *e
		out = append(out, &cp)
	}
	return out, int64(len(out)), nil
}

type testEnv struct {
	router   *gin.Engine
	users    *memUsers
	videos   *memVideos
	activity *memActivity
	auth     *application.AuthService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()
	logger := testLogger()

	users := newMemUsers()
	videos := newMemVideos()
	activity := &memActivity{}
	recorder := application.NewRecorder(activity, nil, logger)

	authSvc := application.NewAuthService(users, helpers.NewJWTManager("test-secret", time.Hour), recorder, logger)
	catalogSvc := application.NewCatalogService(videos, recorder, &youtube.Client{}, logger, nil, "")
	adminSvc := application.NewAdminService(users, videos, activity, recorder, nil, logger)

	r := gin.New()
	r.Use(middleware.RequestID())
	api := r.Group("/api")

	authHandler := NewAuthHandler(authSvc, logger)
	api.POST("/auth/register", authHandler.Register)
	api.POST("/auth/login", authHandler.Login)
	api.GET("/auth/me", middleware.Auth(authSvc), authHandler.Me)

	videoHandler := NewVideoHandler(catalogSvc, logger)
	vids := api.Group("/videos", middleware.Auth(authSvc))
	vids.GET("", videoHandler.List)
	vids.GET("/:id", videoHandler.Get)

	adminHandler := NewAdminHandler(catalogSvc, adminSvc, logger)
	admin := api.Group("/admin", middleware.Auth(authSvc), middleware.RequireAdmin())
	admin.POST("/videos", adminHandler.AddVideo)
	admin.GET("/videos", adminHandler.ListVideos)
	admin.GET("/videos/:id", adminHandler.GetVideo)
	admin.PUT("/videos/:id", adminHandler.UpdateVideo)
	admin.DELETE("/videos/:id", adminHandler.DeleteVideo)
	admin.GET("/users", adminHandler.ListUsers)
	admin.PUT("/users/:id", adminHandler.UpdateUser)
	admin.GET("/logs", adminHandler.ListLogs)
	admin.GET("/stats", adminHandler.Stats)

	return &testEnv{router: r, users: users, videos: videos, activity: activity, auth: authSvc}
}

func (env *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	env.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

// Seeds a user directly through the repository and returns a fresh token.
func (env *testEnv) seedUser(t *testing.T, name, email, password, role string, active bool) (string, string) {
	t.Helper()
	hash, err := helpers.HashPassword(password)
	require.NoError(t, err)
	u := &entity.User{Name: name, Email: strings.ToLower(email), PasswordHash: hash, Role: role, Active: active}
	require.NoError(t, env.users.Create(context.Background(), u))
	token, _, err := helpers.NewJWTManager("test-secret", time.Hour).Issue(u.ID)
	require.NoError(t, err)
	return u.ID, token
}

func TestRegisterAndLoginFlow(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Bob", "email": "Bob@Example.com", "password": "secret123",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	body := decode(t, w)
	data := body["data"].(map[string]any)
	assert.NotEmpty(t, data["token"])
	user := data["user"].(map[string]any)
	assert.Equal(t, "bob@example.com", user["email"])
	assert.Equal(t, "user", user["role"])

	// duplicate registration under a different case is rejected
	w = env.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Bob2", "email": "BOB@EXAMPLE.COM", "password": "secret123",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// login with the right password succeeds
	w = env.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "bob@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusOK, w.Code)

	// wrong password and unknown email yield the same generic 401
	w = env.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "bob@example.com", "password": "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	wrongPwd := decode(t, w)["message"]

	w = env.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "ghost@example.com", "password": "whatever",
	})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, wrongPwd, decode(t, w)["message"])
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Bob", "email": "not-an-email", "password": "123",
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	body := decode(t, w)
	errs := body["error"].(map[string]any)
	assert.Contains(t, errs, "email")
	assert.Contains(t, errs, "password")
}

func TestDeactivatedUserIsCutOff(t *testing.T) {
	env := newTestEnv(t)
	uid, token := env.seedUser(t, "Carol", "carol@example.com", "secret123", entity.RoleUser, true)

	w := env.do(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// deactivate; the still-unexpired token must stop working immediately
	u, err := env.users.GetByID(context.Background(), uid)
	require.NoError(t, err)
	u.Active = false
	require.NoError(t, env.users.Update(context.Background(), u))

	w = env.do(t, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	// and login is refused with the generic message
	w = env.do(t, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "carol@example.com", "password": "secret123",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAuthUserStoreOutage(t *testing.T) {
	env := newTestEnv(t)
	_, token := env.seedUser(t, "Carol", "carol@example.com", "secret123", entity.RoleUser, true)

	w := env.do(t, http.MethodGet, "/api/auth/me", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// a failing user store is a server error, not an auth failure
	env.users.failGetByID = errors.New("connection refused")
	w = env.do(t, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code, w.Body.String())

	env.users.failGetByID = nil
	w = env.do(t, http.MethodGet, "/api/auth/me", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminGate(t *testing.T) {
	env := newTestEnv(t)
	_, userToken := env.seedUser(t, "Dave", "dave@example.com", "secret123", entity.RoleUser, true)
	_, adminToken := env.seedUser(t, "Eve", "eve@example.com", "secret123", entity.RoleAdmin, true)

	w := env.do(t, http.MethodGet, "/api/admin/stats", userToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = env.do(t, http.MethodGet, "/api/admin/stats", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = env.do(t, http.MethodGet, "/api/admin/stats", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	data := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "operational", data["systemStatus"])
}

func TestAdminVideoLifecycle(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.seedUser(t, "Eve", "eve@example.com", "secret123", entity.RoleAdmin, true)

	// invalid URL
	w := env.do(t, http.MethodPost, "/api/admin/videos", adminToken, gin.H{
		"url": "https://example.com/not-youtube",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// create
	w = env.do(t, http.MethodPost, "/api/admin/videos", adminToken, gin.H{
		"url": "https://youtu.be/dQw4w9WgXcQ",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)["data"].(map[string]any)
	videoID := created["id"].(string)
	assert.Equal(t, "dQw4w9WgXcQ", created["youtubeId"])
	assert.Equal(t, "https://www.youtube.com/watch?v=dQw4w9WgXcQ", created["url"])
	assert.Equal(t, "public", created["privacy"])

	// same video under another URL shape is a duplicate
	w = env.do(t, http.MethodPost, "/api/admin/videos", adminToken, gin.H{
		"url": "https://www.youtube.com/embed/dQw4w9WgXcQ",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// partial update
	w = env.do(t, http.MethodPut, "/api/admin/videos/"+videoID, adminToken, gin.H{
		"title": "Renamed", "privacy": "private",
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "Renamed", updated["title"])
	assert.Equal(t, "private", updated["privacy"])

	// delete
	w = env.do(t, http.MethodDelete, "/api/admin/videos/"+videoID, adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = env.do(t, http.MethodGet, "/api/admin/videos/"+videoID, adminToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// every mutation left an audit entry
	w = env.do(t, http.MethodGet, "/api/admin/logs", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	logs := decode(t, w)["data"].([]any)
	actions := make([]string, 0, len(logs))
	for _, l := range logs {
		actions = append(actions, l.(map[string]any)["action"].(string))
	}
	assert.Contains(t, actions, entity.ActionAddVideo)
	assert.Contains(t, actions, entity.ActionUpdateVideo)
	assert.Contains(t, actions, entity.ActionDeleteVideo)
}

func TestAdminVideoCustomRoleAllowList(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.seedUser(t, "Eve", "eve@example.com", "secret123", entity.RoleAdmin, true)

	// allow-lists are free-form role strings, not limited to account roles
	w := env.do(t, http.MethodPost, "/api/admin/videos", adminToken, gin.H{
		"url":          "https://youtu.be/vipvideo001",
		"privacy":      "private",
		"allowedRoles": []string{"vip"},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decode(t, w)["data"].(map[string]any)
	roles := created["allowedRoles"].([]any)
	require.Len(t, roles, 1)
	assert.Equal(t, "vip", roles[0])

	// and survive a partial update the same way
	id := created["id"].(string)
	w = env.do(t, http.MethodPut, "/api/admin/videos/"+id, adminToken, gin.H{
		"allowedRoles": []string{"vip", "premium"},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	updated := decode(t, w)["data"].(map[string]any)
	assert.Len(t, updated["allowedRoles"].([]any), 2)

	// empty strings in the list are still rejected
	w = env.do(t, http.MethodPost, "/api/admin/videos", adminToken, gin.H{
		"url":          "https://youtu.be/vipvideo002",
		"privacy":      "private",
		"allowedRoles": []string{""},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAdminListingMeta(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.seedUser(t, "Eve", "eve@example.com", "secret123", entity.RoleAdmin, true)

	for _, url := range []string{
		"https://youtu.be/metavideo01",
		"https://youtu.be/metavideo02",
		"https://youtu.be/metavideo03",
	} {
		w := env.do(t, http.MethodPost, "/api/admin/videos", adminToken, gin.H{"url": url})
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	}

	w := env.do(t, http.MethodGet, "/api/admin/videos?page=2&limit=2", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	meta := decode(t, w)["meta"].(map[string]any)
	assert.Equal(t, float64(3), meta["total"])
	assert.Equal(t, float64(2), meta["totalPages"])
	assert.Equal(t, float64(2), meta["currentPage"])

	// users and logs listings carry the same shape
	for _, path := range []string{"/api/admin/users", "/api/admin/logs"} {
		w = env.do(t, http.MethodGet, path, adminToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		meta = decode(t, w)["meta"].(map[string]any)
		assert.Contains(t, meta, "total")
		assert.Contains(t, meta, "totalPages")
		assert.Contains(t, meta, "currentPage")
	}
}

func TestVideoVisibility(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.seedUser(t, "Eve", "eve@example.com", "secret123", entity.RoleAdmin, true)
	allowedID, allowedToken := env.seedUser(t, "Frank", "frank@example.com", "secret123", entity.RoleUser, true)
	_, otherToken := env.seedUser(t, "Grace", "grace@example.com", "secret123", entity.RoleUser, true)

	// admin-only private video with one explicitly allowed user
	w := env.do(t, http.MethodPost, "/api/admin/videos", adminToken, gin.H{
		"url":          "https://youtu.be/private0001",
		"privacy":      "private",
		"allowedRoles": []string{"admin"},
		"allowedUsers": []string{allowedID},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	privateID := decode(t, w)["data"].(map[string]any)["id"].(string)

	w = env.do(t, http.MethodPost, "/api/admin/videos", adminToken, gin.H{
		"url": "https://youtu.be/public00001",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	publicID := decode(t, w)["data"].(map[string]any)["id"].(string)

	// listing hides the private video from a user without access
	w = env.do(t, http.MethodGet, "/api/videos", otherToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	listed := decode(t, w)["data"].([]any)
	assert.Len(t, listed, 1)
	assert.Equal(t, publicID, listed[0].(map[string]any)["id"])

	// but shows it to the allow-listed user
	w = env.do(t, http.MethodGet, "/api/videos", allowedToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode(t, w)["data"].([]any), 2)

	// direct fetch of a denied private video admits existence with 403
	w = env.do(t, http.MethodGet, "/api/videos/"+privateID, otherToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	// missing video is 404
	w = env.do(t, http.MethodGet, "/api/videos/"+uuid.New().String(), otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// deactivated video is indistinguishable from missing
	w = env.do(t, http.MethodPut, "/api/admin/videos/"+publicID, adminToken, gin.H{"isActive": false})
	require.Equal(t, http.StatusOK, w.Code)
	w = env.do(t, http.MethodGet, "/api/videos/"+publicID, otherToken, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// admins can still address it directly
	w = env.do(t, http.MethodGet, "/api/admin/videos/"+publicID, adminToken, nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestVideoViewCounting(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.seedUser(t, "Eve", "eve@example.com", "secret123", entity.RoleAdmin, true)
	_, userToken := env.seedUser(t, "Frank", "frank@example.com", "secret123", entity.RoleUser, true)

	w := env.do(t, http.MethodPost, "/api/admin/videos", adminToken, gin.H{
		"url": "https://youtu.be/viewcount01",
	})
	require.Equal(t, http.StatusCreated, w.Code)
	id := decode(t, w)["data"].(map[string]any)["id"].(string)

	for want := 1; want <= 3; want++ {
		w = env.do(t, http.MethodGet, "/api/videos/"+id, userToken, nil)
		require.Equal(t, http.StatusOK, w.Code)
		views := decode(t, w)["data"].(map[string]any)["views"].(float64)
		assert.Equal(t, float64(want), views)
	}
}

func TestAdminUserManagement(t *testing.T) {
	env := newTestEnv(t)
	_, adminToken := env.seedUser(t, "Eve", "eve@example.com", "secret123", entity.RoleAdmin, true)
	targetID, _ := env.seedUser(t, "Heidi", "heidi@example.com", "secret123", entity.RoleUser, true)

	w := env.do(t, http.MethodGet, "/api/admin/users", adminToken, nil)
	require.Equal(t, http.StatusOK, w.Code)
	users := decode(t, w)["data"].([]any)
	assert.Len(t, users, 2)
	for _, u := range users {
		assert.NotContains(t, u.(map[string]any), "passwordHash")
	}

	w = env.do(t, http.MethodPut, "/api/admin/users/"+targetID, adminToken, gin.H{
		"role": "admin", "isActive": false,
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode(t, w)["data"].(map[string]any)
	assert.Equal(t, "admin", updated["role"])
	assert.Equal(t, false, updated["isActive"])

	// invalid role is rejected by validation
	w = env.do(t, http.MethodPut, "/api/admin/users/"+targetID, adminToken, gin.H{
		"role": "superuser",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
