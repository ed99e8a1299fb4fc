package handler

import (
	"net/http"

	"go-event-management/internal/middleware"
	"go-event-management/internal/model"
	"go-event-management/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// RegisterRoutes 登入路由掛上限流 middleware（暴力嘗試防護）
func (h *AuthHandler) RegisterRoutes(r *gin.Engine, auth, loginLimiter gin.HandlerFunc) {
	router := r.Group("/api/v1")
	{
		router.POST("users/signup", h.SignUp)
		router.POST("users/login", loginLimiter, h.Login)
		router.GET("users/me", auth, h.Me)
	}
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req model.SignUpRequest
	if err := BindJsonFields(c, &req); err != nil {
		return
	}

	user, err := h.service.SignUp(c, req)
	if err != nil {
		respondError(c, err, "SignUp")
		return
	}

	c.JSON(http.StatusCreated, user)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req model.LoginRequest
	if err := BindJsonFields(c, &req); err != nil {
		return
	}

	result, err := h.service.Login(c, req)
	if err != nil {
		respondError(c, err, "Login")
		return
	}

	c.JSON(http.StatusOK, result)
}

func (h *AuthHandler) Me(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	profile, err := h.service.Profile(c, user.ID)
	if err != nil {
		respondError(c, err, "Profile")
		return
	}

	c.JSON(http.StatusOK, profile)
}
