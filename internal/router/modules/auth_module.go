package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abdelrhman445/learn-video-vercel/internal/application"
	"github.com/abdelrhman445/learn-video-vercel/internal/container"
	handlers "github.com/abdelrhman445/learn-video-vercel/internal/interface/http"
	"github.com/abdelrhman445/learn-video-vercel/internal/interface/middleware"
)

type AuthModule struct {
	Handler *handlers.AuthHandler
	Auth    *application.AuthService
}

func NewAuthModule(h *handlers.AuthHandler, auth *application.AuthService) *AuthModule {
	return &AuthModule{Handler: h, Auth: auth}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	// Public endpoints with tight per-IP limits; registration is the most
	// abuse-prone route so it gets the smallest budget.
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath())
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath())

	rg.POST("/auth/register", registerLimiter, m.Handler.Register)
	rg.POST("/auth/login", loginLimiter, m.Handler.Login)

	auth := rg.Group("/")
	auth.Use(middleware.Auth(m.Auth))
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUserID()))
	{
		auth.GET("/auth/me", m.Handler.Me)
	}
}
