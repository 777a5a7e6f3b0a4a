package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/abdelrhman445/learn-video-vercel/internal/application"
	"github.com/abdelrhman445/learn-video-vercel/internal/interface/middleware"
	"github.com/abdelrhman445/learn-video-vercel/pkg/response"
	"github.com/abdelrhman445/learn-video-vercel/pkg/validation"
)

// AdminHandler groups the admin-only surface: catalogue curation, user
// management, the activity log viewer and dashboard stats. All routes sit
// behind Auth plus RequireAdmin.
type AdminHandler struct {
	Catalog *application.CatalogService
	Admin   *application.AdminService
	Logger  *logrus.Logger
}

func NewAdminHandler(catalog *application.CatalogService, admin *application.AdminService, logger *logrus.Logger) *AdminHandler {
	return &AdminHandler{Catalog: catalog, Admin: admin, Logger: logger}
}

// Video allow-lists accept any role string (catalogues can gate on roles
// like "vip" that no account-management rule knows about); only user-account
// role assignment is restricted to the fixed role set.
type addVideoRequest struct {
	URL          string   `json:"url" binding:"required,url"`
	Privacy      string   `json:"privacy" binding:"omitempty,privacy"`
	AllowedRoles []string `json:"allowedRoles" binding:"omitempty,dive,min=1"`
	AllowedUsers []string `json:"allowedUsers" binding:"omitempty,dive,uuid"`
}

type updateVideoRequest struct {
	Title        *string   `json:"title" binding:"omitempty,min=1,max=200"`
	Description  *string   `json:"description"`
	Privacy      *string   `json:"privacy" binding:"omitempty,privacy"`
	AllowedRoles *[]string `json:"allowedRoles" binding:"omitempty,dive,min=1"`
	AllowedUsers *[]string `json:"allowedUsers" binding:"omitempty,dive,uuid"`
	IsActive     *bool     `json:"isActive"`
}

type updateUserRequest struct {
	Role     *string `json:"role" binding:"omitempty,role"`
	IsActive *bool   `json:"isActive"`
}

func (h *AdminHandler) AddVideo(c *gin.Context) {
	var req addVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	v, err := h.Catalog.Add(c.Request.Context(), application.AddVideoInput{
		URL:          req.URL,
		Privacy:      req.Privacy,
		AllowedRoles: req.AllowedRoles,
		AllowedUsers: req.AllowedUsers,
	}, middleware.CurrentUser(c), requestMeta(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, toVideoView(v), "video added", nil)
}

func (h *AdminHandler) ListVideos(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 10)
	search := c.Query("search")

	videos, total, err := h.Catalog.ListForAdmin(c.Request.Context(), search, page, limit)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toVideoViews(videos), "videos", adminListMeta(page, limit, total))
}

func (h *AdminHandler) GetVideo(c *gin.Context) {
	v, err := h.Catalog.AdminGet(c.Request.Context(), c.Param("id"))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toVideoView(v), "video", nil)
}

func (h *AdminHandler) UpdateVideo(c *gin.Context) {
	var req updateVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	v, err := h.Catalog.Update(c.Request.Context(), c.Param("id"), application.UpdateVideoInput{
		Title:        req.Title,
		Description:  req.Description,
		Privacy:      req.Privacy,
		AllowedRoles: req.AllowedRoles,
		AllowedUsers: req.AllowedUsers,
		IsActive:     req.IsActive,
	}, middleware.CurrentUser(c), requestMeta(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toVideoView(v), "video updated", nil)
}

func (h *AdminHandler) DeleteVideo(c *gin.Context) {
	if err := h.Catalog.Delete(c.Request.Context(), c.Param("id"), middleware.CurrentUser(c), requestMeta(c)); err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success[any](c, http.StatusOK, gin.H{"deleted": true}, "video deleted", nil)
}

func (h *AdminHandler) ListUsers(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 20)

	users, total, err := h.Admin.ListUsers(c.Request.Context(), page, limit)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toUserViews(users), "users", adminListMeta(page, limit, total))
}

func (h *AdminHandler) UpdateUser(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Admin.UpdateUser(c.Request.Context(), c.Param("id"), application.UpdateUserInput{
		Role:   req.Role,
		Active: req.IsActive,
	}, middleware.CurrentUser(c), requestMeta(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toUserView(u), "user updated", nil)
}

func (h *AdminHandler) ListLogs(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 50)
	action := c.Query("action")

	logs, total, err := h.Admin.ListLogs(c.Request.Context(), action, page, limit)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toLogViews(logs), "activity logs", adminListMeta(page, limit, total))
}

func (h *AdminHandler) Stats(c *gin.Context) {
	st, err := h.Admin.GetStats(c.Request.Context())
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, st, "stats", nil)
}
