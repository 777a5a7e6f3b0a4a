package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/abdelrhman445/learn-video-vercel/internal/application"
	"github.com/abdelrhman445/learn-video-vercel/internal/domain/policy"
	"github.com/abdelrhman445/learn-video-vercel/internal/interface/middleware"
	"github.com/abdelrhman445/learn-video-vercel/pkg/response"
)

// VideoHandler serves the viewer-facing catalogue. Every route requires an
// authenticated user; visibility is decided per video.
type VideoHandler struct {
	Svc    *application.CatalogService
	Logger *logrus.Logger
}

func NewVideoHandler(svc *application.CatalogService, logger *logrus.Logger) *VideoHandler {
	return &VideoHandler{Svc: svc, Logger: logger}
}

func queryInt(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return def
	}
	return v
}

func viewerFromCtx(c *gin.Context) policy.Viewer {
	u := middleware.CurrentUser(c)
	if u == nil {
		return policy.Viewer{}
	}
	return policy.Viewer{ID: u.ID, Role: u.Role}
}

// List returns the videos the caller may watch, newest first.
func (h *VideoHandler) List(c *gin.Context) {
	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", 50)
	search := c.Query("search")

	videos, total, err := h.Svc.ListForViewer(c.Request.Context(), viewerFromCtx(c), search, page, limit)
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toVideoViews(videos), "videos", listMeta(page, limit, total))
}

// Get returns a single video and counts the view.
func (h *VideoHandler) Get(c *gin.Context) {
	v, err := h.Svc.FetchOne(c.Request.Context(), c.Param("id"), viewerFromCtx(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, toVideoView(v), "video", nil)
}
