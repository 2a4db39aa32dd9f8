package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	checkoutapp "github.com/ozercanmutlu-ship-it/capdana/internal/application/checkout"
	orderingapp "github.com/ozercanmutlu-ship-it/capdana/internal/application/ordering"
	"github.com/ozercanmutlu-ship-it/capdana/internal/interfaces/http/dto"
	"github.com/ozercanmutlu-ship-it/capdana/internal/interfaces/http/middleware"
)

// OrderHandler serves checkout, order history and the admin workflow
type OrderHandler struct {
	BaseHandler
	checkout *checkoutapp.Service
	ordering *orderingapp.Service
	auth     gin.HandlerFunc
	admin    gin.HandlerFunc
}

// NewOrderHandler creates the order handler
func NewOrderHandler(
	checkout *checkoutapp.Service,
	ordering *orderingapp.Service,
	auth, admin gin.HandlerFunc,
) *OrderHandler {
	return &OrderHandler{checkout: checkout, ordering: ordering, auth: auth, admin: admin}
}

// RegisterRoutes registers the order routes
func (h *OrderHandler) RegisterRoutes(rg *gin.RouterGroup) {
	orders := rg.Group("/orders", h.auth)
	orders.POST("", h.Create)
	orders.GET("/my", h.ListMine)

	admin := rg.Group("/admin/orders", h.auth, h.admin)
	admin.GET("", h.List)
	admin.PUT("/:id/status", h.UpdateStatus)
}

// Create places an order from the caller's cart
func (h *OrderHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		h.HandleError(c, errUnauthenticated)
		return
	}

	var form checkoutapp.ShippingForm
	if err := c.ShouldBindJSON(&form); err != nil {
		h.BindError(c, err)
		return
	}

	cartID := c.GetHeader(CartIDHeader)
	if cartID == "" {
		h.BadRequest(c, "missing "+CartIDHeader+" header")
		return
	}

	order, err := h.checkout.CreateOrder(c.Request.Context(), userID, cartID, form)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, order)
}

// ListMine returns the caller's orders
func (h *OrderHandler) ListMine(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		h.HandleError(c, errUnauthenticated)
		return
	}
	orders, err := h.checkout.ListMyOrders(c.Request.Context(), userID)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

// List returns all orders for staff, optionally filtered by status
func (h *OrderHandler) List(c *gin.Context) {
	req := dto.DefaultListRequest()
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BindError(c, err)
		return
	}
	orders, err := h.ordering.List(c.Request.Context(), req.Status, req.Limit, req.Offset)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, orders)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// UpdateStatus moves an order along its lifecycle
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid order id")
		return
	}
	var in updateStatusRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		h.BindError(c, err)
		return
	}
	order, err := h.ordering.UpdateStatus(c.Request.Context(), id, in.Status)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, order)
}
