package handler

import (
	"github.com/gin-gonic/gin"

	identityapp "github.com/ozercanmutlu-ship-it/capdana/internal/application/identity"
	"github.com/ozercanmutlu-ship-it/capdana/internal/interfaces/http/middleware"
)

// AuthHandler serves registration, login, token refresh and password
// changes
type AuthHandler struct {
	BaseHandler
	identity *identityapp.Service
	auth     gin.HandlerFunc
}

// NewAuthHandler creates the auth handler. The auth middleware guards
// the password route.
func NewAuthHandler(identity *identityapp.Service, auth gin.HandlerFunc) *AuthHandler {
	return &AuthHandler{identity: identity, auth: auth}
}

// RegisterRoutes registers the auth routes
func (h *AuthHandler) RegisterRoutes(rg *gin.RouterGroup) {
	auth := rg.Group("/auth")
	auth.POST("/register", h.Register)
	auth.POST("/login", h.Login)
	auth.POST("/refresh", h.Refresh)
	auth.PUT("/password", h.auth, h.ChangePassword)
}

// Register creates an account and signs it in
func (h *AuthHandler) Register(c *gin.Context) {
	var in identityapp.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.BindError(c, err)
		return
	}
	resp, err := h.identity.Register(c.Request.Context(), in)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// Login verifies credentials and issues tokens
func (h *AuthHandler) Login(c *gin.Context) {
	var in identityapp.LoginInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.BindError(c, err)
		return
	}
	resp, err := h.identity.Login(c.Request.Context(), in)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// Refresh exchanges a refresh token for a fresh pair
func (h *AuthHandler) Refresh(c *gin.Context) {
	var in refreshRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		h.BindError(c, err)
		return
	}
	pair, err := h.identity.Refresh(c.Request.Context(), in.RefreshToken)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, pair)
}

// ChangePassword rotates the caller's password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		h.HandleError(c, errUnauthenticated)
		return
	}
	var in identityapp.ChangePasswordInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.BindError(c, err)
		return
	}
	if err := h.identity.ChangePassword(c.Request.Context(), userID, in); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
