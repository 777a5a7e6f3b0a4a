package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abdelrhman445/learn-video-vercel/internal/application"
	"github.com/abdelrhman445/learn-video-vercel/internal/domain/entity"
	"github.com/abdelrhman445/learn-video-vercel/internal/domain/repository"
	"github.com/abdelrhman445/learn-video-vercel/pkg/response"
)

const timeLayout = time.RFC3339

// userView is the public shape of an account. The password hash never
// crosses this boundary.
type userView struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Email     string     `json:"email"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

func toUserView(u *entity.User) userView {
	return userView{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		IsActive:  u.Active,
		LastLogin: u.LastLogin,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func toUserViews(users []*entity.User) []userView {
	out := make([]userView, 0, len(users))
	for _, u := range users {
		out = append(out, toUserView(u))
	}
	return out
}

type videoView struct {
	ID           string    `json:"id"`
	YouTubeID    string    `json:"youtubeId"`
	URL          string    `json:"url"`
	Title        string    `json:"title"`
	Thumbnail    string    `json:"thumbnail"`
	Description  string    `json:"description"`
	Privacy      string    `json:"privacy"`
	AllowedRoles []string  `json:"allowedRoles"`
	AllowedUsers []string  `json:"allowedUsers"`
	AddedBy      string    `json:"addedBy"`
	AddedByName  string    `json:"addedByName,omitempty"`
	AddedByEmail string    `json:"addedByEmail,omitempty"`
	Duration     string    `json:"duration"`
	PublishedAt  time.Time `json:"publishedAt"`
	ChannelTitle string    `json:"channelTitle"`
	Views        int64     `json:"views"`
	IsActive     bool      `json:"isActive"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

func toVideoView(v *entity.Video) videoView {
	roles := v.AllowedRoles
	if roles == nil {
		roles = []string{}
	}
	users := v.AllowedUsers
	if users == nil {
		users = []string{}
	}
	return videoView{
		ID:           v.ID,
		YouTubeID:    v.YouTubeID,
		URL:          v.URL,
		Title:        v.Title,
		Thumbnail:    v.Thumbnail,
		Description:  v.Description,
		Privacy:      v.Privacy,
		AllowedRoles: roles,
		AllowedUsers: users,
		AddedBy:      v.AddedBy,
		AddedByName:  v.AddedByName,
		AddedByEmail: v.AddedByEmail,
		Duration:     v.Duration,
		PublishedAt:  v.PublishedAt,
		ChannelTitle: v.ChannelTitle,
		Views:        v.Views,
		IsActive:     v.IsActive,
		CreatedAt:    v.CreatedAt,
		UpdatedAt:    v.UpdatedAt,
	}
}

func toVideoViews(videos []*entity.Video) []videoView {
	out := make([]videoView, 0, len(videos))
	for _, v := range videos {
		out = append(out, toVideoView(v))
	}
	return out
}

type logView struct {
	ID         string         `json:"id"`
	Actor      string         `json:"actor"`
	ActorName  string         `json:"actorName,omitempty"`
	ActorEmail string         `json:"actorEmail,omitempty"`
	Action     string         `json:"action"`
	Target     string         `json:"target"`
	Details    map[string]any `json:"details,omitempty"`
	IP         string         `json:"ip,omitempty"`
	UserAgent  string         `json:"userAgent,omitempty"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func toLogViews(logs []*entity.ActivityLog) []logView {
	out := make([]logView, 0, len(logs))
	for _, l := range logs {
		out = append(out, logView{
			ID:         l.ID,
			Actor:      l.Actor,
			ActorName:  l.ActorName,
			ActorEmail: l.ActorEmail,
			Action:     l.Action,
			Target:     l.Target,
			Details:    l.Details,
			IP:         l.IP,
			UserAgent:  l.UserAgent,
			CreatedAt:  l.CreatedAt,
		})
	}
	return out
}

func listMeta(page, limit int, total int64) map[string]any {
	if page < 1 {
		page = 1
	}
	return map[string]any{"count": total, "page": page, "limit": limit}
}

// adminListMeta is the pagination shape of the admin listings.
func adminListMeta(page, limit int, total int64) map[string]any {
	if page < 1 {
		page = 1
	}
	totalPages := int64(0)
	if limit > 0 {
		totalPages = (total + int64(limit) - 1) / int64(limit)
	}
	return map[string]any{
		"total":       total,
		"totalPages":  totalPages,
		"currentPage": page,
		"limit":       limit,
	}
}

func requestMeta(c *gin.Context) application.RequestMeta {
	ip := c.GetString("real_ip")
	if ip == "" {
		ip = c.ClientIP()
	}
	return application.RequestMeta{IP: ip, UserAgent: c.Request.UserAgent()}
}

// writeDomainError maps service failures to HTTP statuses. Conflicts are
// reported as plain bad requests to match the long-standing API contract.
func writeDomainError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, application.ErrInvalidCredentials):
		response.Error(c, http.StatusUnauthorized, "Invalid credentials", nil)
	case errors.Is(err, application.ErrUnauthorized):
		response.Error(c, http.StatusUnauthorized, "unauthorized", nil)
	case errors.Is(err, application.ErrForbidden):
		response.Error(c, http.StatusForbidden, "You do not have access to this video", nil)
	case errors.Is(err, repository.ErrNotFound):
		response.Error(c, http.StatusNotFound, "not found", nil)
	case errors.Is(err, application.ErrDuplicateEmail):
		response.Error(c, http.StatusBadRequest, "Email already registered", nil)
	case errors.Is(err, application.ErrDuplicateVideo):
		response.Error(c, http.StatusBadRequest, "Video already exists", nil)
	case errors.Is(err, application.ErrInvalidURL):
		response.Error(c, http.StatusBadRequest, "Invalid YouTube URL", nil)
	default:
		response.Error(c, http.StatusInternalServerError, "internal server error", nil)
	}
}
