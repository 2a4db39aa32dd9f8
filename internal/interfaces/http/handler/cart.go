package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	cartapp "github.com/ozercanmutlu-ship-it/capdana/internal/application/cart"
)

// CartIDHeader carries the anonymous cart id. Clients keep the value
// returned on the first response and send it back on every request.
const CartIDHeader = "X-Cart-ID"

// CartHandler serves the anonymous cart
type CartHandler struct {
	BaseHandler
	carts *cartapp.Service
}

// NewCartHandler creates the cart handler
func NewCartHandler(carts *cartapp.Service) *CartHandler {
	return &CartHandler{carts: carts}
}

// RegisterRoutes registers the cart routes
func (h *CartHandler) RegisterRoutes(rg *gin.RouterGroup) {
	cart := rg.Group("/cart")
	cart.GET("", h.Get)
	cart.POST("/items", h.AddReadyItem)
	cart.POST("/custom-items", h.AddCustomItem)
	cart.PUT("/items/:id", h.UpdateQuantity)
	cart.DELETE("/items/:id", h.RemoveItem)
	cart.DELETE("", h.Clear)
}

// cartID resolves the cart id from the header, minting one for new
// visitors, and always echoes it back.
func (h *CartHandler) cartID(c *gin.Context) string {
	id := c.GetHeader(CartIDHeader)
	if id == "" {
		id = uuid.NewString()
	}
	c.Writer.Header().Set(CartIDHeader, id)
	return id
}

// Get returns the current cart
func (h *CartHandler) Get(c *gin.Context) {
	h.Success(c, h.carts.Get(c.Request.Context(), h.cartID(c)))
}

type addReadyItemRequest struct {
	ReadyID  string `json:"ready_id" binding:"required"`
	Quantity int    `json:"quantity" binding:"omitempty,min=1"`
}

// AddReadyItem adds a curated capdana to the cart
func (h *CartHandler) AddReadyItem(c *gin.Context) {
	var in addReadyItemRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		h.BindError(c, err)
		return
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	resp, err := h.carts.AddReadyItem(c.Request.Context(), h.cartID(c), in.ReadyID, in.Quantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

type addCustomItemRequest struct {
	FrontID   string `json:"front_id" binding:"required"`
	BandanaID string `json:"bandana_id" binding:"required"`
	Quantity  int    `json:"quantity" binding:"omitempty,min=1"`
}

// AddCustomItem adds a customer-built configuration to the cart
func (h *CartHandler) AddCustomItem(c *gin.Context) {
	var in addCustomItemRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		h.BindError(c, err)
		return
	}
	if in.Quantity == 0 {
		in.Quantity = 1
	}
	resp, err := h.carts.AddCustomItem(c.Request.Context(), h.cartID(c), in.FrontID, in.BandanaID, in.Quantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, resp)
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" binding:"required"`
}

// UpdateQuantity replaces one line's quantity
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	var in updateQuantityRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		h.BindError(c, err)
		return
	}
	h.Success(c, h.carts.UpdateQuantity(c.Request.Context(), h.cartID(c), c.Param("id"), in.Quantity))
}

// RemoveItem drops one line
func (h *CartHandler) RemoveItem(c *gin.Context) {
	h.Success(c, h.carts.Remove(c.Request.Context(), h.cartID(c), c.Param("id")))
}

// Clear empties the cart
func (h *CartHandler) Clear(c *gin.Context) {
	cartID := h.cartID(c)
	h.carts.Clear(c.Request.Context(), cartID)
	h.Success(c, h.carts.Get(c.Request.Context(), cartID))
}
