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

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type sessionView struct {
	Token     string   `json:"token"`
	ExpiresAt string   `json:"expiresAt"`
	User      userView `json:"user"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, sess, err := h.Svc.Register(c.Request.Context(), req.Name, req.Email, req.Password, requestMeta(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, sessionView{
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt.UTC().Format(timeLayout),
		User:      toUserView(u),
	}, "registration successful", nil)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, sess, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password, requestMeta(c))
	if err != nil {
		writeDomainError(c, err)
		return
	}
	response.Success(c, http.StatusOK, sessionView{
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt.UTC().Format(timeLayout),
		User:      toUserView(u),
	}, "login successful", nil)
}

// Me returns the authenticated account. The token was already resolved by
// the auth middleware, so this is a pure read.
func (h *AuthHandler) Me(c *gin.Context) {
	u := middleware.CurrentUser(c)
	if u == nil {
		response.Error(c, http.StatusUnauthorized, "unauthorized", nil)
		return
	}
	response.Success(c, http.StatusOK, toUserView(u), "profile", nil)
}
