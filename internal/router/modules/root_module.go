package modules

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/abdelrhman445/learn-video-vercel/pkg/response"
)

// RootModule serves the API descriptor and the health endpoint.
type RootModule struct{}

func NewRootModule() *RootModule { return &RootModule{} }

func (m *RootModule) Register(rg *gin.RouterGroup) {
	rg.GET("", m.describe)
	rg.GET("/health", m.health)
}

func (m *RootModule) describe(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{
		"name": "learn-video api",
		"endpoints": gin.H{
			"auth":   []string{"POST /api/auth/register", "POST /api/auth/login", "GET /api/auth/me"},
			"videos": []string{"GET /api/videos", "GET /api/videos/:id"},
			"admin": []string{
				"GET /api/admin/videos", "POST /api/admin/videos",
				"GET /api/admin/videos/:id", "PUT /api/admin/videos/:id", "DELETE /api/admin/videos/:id",
				"GET /api/admin/users", "PUT /api/admin/users/:id",
				"GET /api/admin/logs", "GET /api/admin/stats",
			},
		},
	}, "ok", nil)
}

func (m *RootModule) health(c *gin.Context) {
	response.Success(c, http.StatusOK, gin.H{"status": "ok"}, "healthy", nil)
}
