package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abdelrhman445/learn-video-vercel/internal/application"
	"github.com/abdelrhman445/learn-video-vercel/internal/container"
	handlers "github.com/abdelrhman445/learn-video-vercel/internal/interface/http"
	"github.com/abdelrhman445/learn-video-vercel/internal/interface/middleware"
)

type AdminModule struct {
	Handler *handlers.AdminHandler
	Auth    *application.AuthService
}

func NewAdminModule(h *handlers.AdminHandler, auth *application.AuthService) *AdminModule {
	return &AdminModule{Handler: h, Auth: auth}
}

func (m *AdminModule) Register(rg *gin.RouterGroup) {
	admin := rg.Group("/admin")
	admin.Use(middleware.Auth(m.Auth))
	admin.Use(middleware.RequireAdmin())
	admin.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		admin.GET("/videos", m.Handler.ListVideos)
		admin.POST("/videos", m.Handler.AddVideo)
		admin.GET("/videos/:id", m.Handler.GetVideo)
		admin.PUT("/videos/:id", m.Handler.UpdateVideo)
		admin.DELETE("/videos/:id", m.Handler.DeleteVideo)

		admin.GET("/users", m.Handler.ListUsers)
		admin.PUT("/users/:id", m.Handler.UpdateUser)

		admin.GET("/logs", m.Handler.ListLogs)
		admin.GET("/stats", m.Handler.Stats)
	}
}
