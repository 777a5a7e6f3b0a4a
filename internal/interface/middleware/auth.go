package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/abdelrhman445/learn-video-vercel/internal/application"
	"github.com/abdelrhman445/learn-video-vercel/internal/domain/entity"
	"github.com/abdelrhman445/learn-video-vercel/pkg/response"
)

const userKey = "user"

// Auth validates the bearer token and resolves it to a live account on
// every request, so a deactivated user is cut off immediately even while
// their token is still unexpired. It sets "user" and "userID" in the Gin
// context on success.
func Auth(auth *application.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			response.AbortError(c, http.StatusUnauthorized, "missing bearer token", nil)
			return
		}
		u, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			// Only auth failures become 401; a store error is not the
			// caller's fault.
			if errors.Is(err, application.ErrUnauthorized) {
				response.AbortError(c, http.StatusUnauthorized, "invalid or expired token", nil)
				return
			}
			response.AbortError(c, http.StatusInternalServerError, "internal server error", nil)
			return
		}
		c.Set(userKey, u)
		c.Set("userID", u.ID)
		c.Next()
	}
}

// RequireAdmin gates admin routes. Must run after Auth.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		u := CurrentUser(c)
		if u == nil || !u.IsAdmin() {
			response.AbortError(c, http.StatusForbidden, "admin access required", nil)
			return
		}
		c.Next()
	}
}

// CurrentUser returns the authenticated user set by Auth, or nil.
func CurrentUser(c *gin.Context) *entity.User {
	v, ok := c.Get(userKey)
	if !ok {
		return nil
	}
	u, _ := v.(*entity.User)
	return u
}

func bearerToken(c *gin.Context) string {
	h := c.GetHeader("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
