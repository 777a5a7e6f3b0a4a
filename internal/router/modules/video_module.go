package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abdelrhman445/learn-video-vercel/internal/application"
	"github.com/abdelrhman445/learn-video-vercel/internal/container"
	handlers "github.com/abdelrhman445/learn-video-vercel/internal/interface/http"
	"github.com/abdelrhman445/learn-video-vercel/internal/interface/middleware"
)

type VideoModule struct {
	Handler *handlers.VideoHandler
	Auth    *application.AuthService
}

func NewVideoModule(h *handlers.VideoHandler, auth *application.AuthService) *VideoModule {
	return &VideoModule{Handler: h, Auth: auth}
}

func (m *VideoModule) Register(rg *gin.RouterGroup) {
	videos := rg.Group("/videos")
	videos.Use(middleware.Auth(m.Auth))
	videos.Use(
		middleware.RateLimit(container.GetRedis(), 300, time.Minute, middleware.KeyByIP()),
		middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()),
	)
	{
		videos.GET("", m.Handler.List)
		videos.GET("/:id", m.Handler.Get)
	}
}
