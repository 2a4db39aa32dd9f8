package handler

import (
	"github.com/gin-gonic/gin"

	catalogapp "github.com/ozercanmutlu-ship-it/capdana/internal/application/catalog"
)

// CatalogHandler serves the public catalog and its admin CRUD
type CatalogHandler struct {
	BaseHandler
	catalog *catalogapp.Service
	auth    []gin.HandlerFunc
}

// NewCatalogHandler creates the catalog handler. The auth chain guards
// the admin routes.
func NewCatalogHandler(catalog *catalogapp.Service, auth ...gin.HandlerFunc) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, auth: auth}
}

// RegisterRoutes registers the catalog routes
func (h *CatalogHandler) RegisterRoutes(rg *gin.RouterGroup) {
	public := rg.Group("/catalog")
	public.GET("/fronts", h.ListFronts)
	public.GET("/bandanas", h.ListBandanas)
	public.GET("/ready", h.ListReadyCapdanas)

	admin := rg.Group("/admin/catalog", h.auth...)
	admin.POST("/fronts", h.CreateFront)
	admin.PUT("/fronts/:id", h.UpdateFront)
	admin.DELETE("/fronts/:id", h.DeleteFront)
	admin.POST("/bandanas", h.CreateBandana)
	admin.PUT("/bandanas/:id", h.UpdateBandana)
	admin.DELETE("/bandanas/:id", h.DeleteBandana)
	admin.POST("/ready", h.CreateReadyCapdana)
	admin.PUT("/ready/:id", h.UpdateReadyCapdana)
	admin.DELETE("/ready/:id", h.DeleteReadyCapdana)
}

// ListFronts returns the curated fronts
func (h *CatalogHandler) ListFronts(c *gin.Context) {
	fronts, err := h.catalog.ListFronts(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, fronts)
}

// ListBandanas returns all bandanas
func (h *CatalogHandler) ListBandanas(c *gin.Context) {
	bandanas, err := h.catalog.ListBandanas(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, bandanas)
}

// ListReadyCapdanas returns the curated combinations
func (h *CatalogHandler) ListReadyCapdanas(c *gin.Context) {
	ready, err := h.catalog.ListReadyCapdanas(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, ready)
}

// CreateFront adds a front panel
func (h *CatalogHandler) CreateFront(c *gin.Context) {
	var in catalogapp.CreateFrontInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.BindError(c, err)
		return
	}
	front, err := h.catalog.CreateFront(c.Request.Context(), in)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, front)
}

type updateFrontRequest struct {
	Name  string `json:"name" binding:"required"`
	Image string `json:"image"`
}

// UpdateFront renames a front
func (h *CatalogHandler) UpdateFront(c *gin.Context) {
	var in updateFrontRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		h.BindError(c, err)
		return
	}
	front, err := h.catalog.UpdateFront(c.Request.Context(), c.Param("id"), catalogapp.CreateFrontInput{
		ID:    c.Param("id"),
		Name:  in.Name,
		Image: in.Image,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, front)
}

// DeleteFront removes a front
func (h *CatalogHandler) DeleteFront(c *gin.Context) {
	if err := h.catalog.DeleteFront(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateBandana adds a bandana
func (h *CatalogHandler) CreateBandana(c *gin.Context) {
	var in catalogapp.CreateBandanaInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.BindError(c, err)
		return
	}
	bandana, err := h.catalog.CreateBandana(c.Request.Context(), in)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, bandana)
}

type updateBandanaRequest struct {
	Name   string `json:"name" binding:"required"`
	Image  string `json:"image"`
	Rarity string `json:"rarity" binding:"required,rarity"`
	Color  string `json:"color"`
}

// UpdateBandana renames a bandana and refreshes its grade
func (h *CatalogHandler) UpdateBandana(c *gin.Context) {
	var in updateBandanaRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		h.BindError(c, err)
		return
	}
	bandana, err := h.catalog.UpdateBandana(c.Request.Context(), c.Param("id"), catalogapp.CreateBandanaInput{
		ID:     c.Param("id"),
		Name:   in.Name,
		Image:  in.Image,
		Rarity: in.Rarity,
		Color:  in.Color,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, bandana)
}

// DeleteBandana removes a bandana
func (h *CatalogHandler) DeleteBandana(c *gin.Context) {
	if err := h.catalog.DeleteBandana(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// CreateReadyCapdana adds a curated combination
func (h *CatalogHandler) CreateReadyCapdana(c *gin.Context) {
	var in catalogapp.CreateReadyCapdanaInput
	if err := c.ShouldBindJSON(&in); err != nil {
		h.BindError(c, err)
		return
	}
	rc, err := h.catalog.CreateReadyCapdana(c.Request.Context(), in)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, rc)
}

type updateReadyCapdanaRequest struct {
	Name      string   `json:"name" binding:"required"`
	Image     string   `json:"image"`
	FrontID   string   `json:"front_id" binding:"required"`
	BandanaID string   `json:"bandana_id" binding:"required"`
	Rarity    string   `json:"rarity" binding:"required,rarity"`
	Price     string   `json:"price"`
	Tags      []string `json:"tags"`
}

// UpdateReadyCapdana reworks a curated combination
func (h *CatalogHandler) UpdateReadyCapdana(c *gin.Context) {
	var in updateReadyCapdanaRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		h.BindError(c, err)
		return
	}
	rc, err := h.catalog.UpdateReadyCapdana(c.Request.Context(), c.Param("id"), catalogapp.CreateReadyCapdanaInput{
		ID:        c.Param("id"),
		Name:      in.Name,
		Image:     in.Image,
		FrontID:   in.FrontID,
		BandanaID: in.BandanaID,
		Rarity:    in.Rarity,
		Price:     in.Price,
		Tags:      in.Tags,
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rc)
}

// DeleteReadyCapdana removes a curated combination
func (h *CatalogHandler) DeleteReadyCapdana(c *gin.Context) {
	if err := h.catalog.DeleteReadyCapdana(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
