package handler

import (
	"github.com/gin-gonic/gin"

	settingsapp "github.com/ozercanmutlu-ship-it/capdana/internal/application/settings"
)

// SettingsHandler serves the public prices and their admin update
type SettingsHandler struct {
	BaseHandler
	settings *settingsapp.Service
	auth     []gin.HandlerFunc
}

// NewSettingsHandler creates the settings handler
func NewSettingsHandler(settings *settingsapp.Service, auth ...gin.HandlerFunc) *SettingsHandler {
	return &SettingsHandler{settings: settings, auth: auth}
}

// RegisterRoutes registers the settings routes. The storefront reads
// the prices without a session, so GET stays public next to the admin
// pair.
func (h *SettingsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/settings", h.Get)
	rg.GET("/admin/settings", append(h.auth, h.Get)...)
	rg.PUT("/admin/settings", append(h.auth, h.Update)...)
}

// Get returns the current site prices
func (h *SettingsHandler) Get(c *gin.Context) {
	s, err := h.settings.Get(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, s)
}

// Update replaces the site prices
func (h *SettingsHandler) Update(c *gin.Context) {
	var in settingsapp.UpdateInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.BindError(c, err)
		return
	}
	s, err := h.settings.Update(c.Request.Context(), in)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, s)
}
