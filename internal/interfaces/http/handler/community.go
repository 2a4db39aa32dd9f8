package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	communityapp "github.com/ozercanmutlu-ship-it/capdana/internal/application/community"
	"github.com/ozercanmutlu-ship-it/capdana/internal/domain/shared"
	"github.com/ozercanmutlu-ship-it/capdana/internal/interfaces/http/middleware"
)

// errUnauthenticated covers handlers reached without claims, which only
// happens when the auth middleware was not applied.
var errUnauthenticated = shared.NewDomainError(shared.ErrCodeUnauthorized, "authentication required")

// maxUploadBytes caps community photo uploads at 10 MiB.
const maxUploadBytes = 10 << 20

// CommunityHandler serves the community wall and its moderation
type CommunityHandler struct {
	BaseHandler
	community *communityapp.Service
	auth      gin.HandlerFunc
	admin     gin.HandlerFunc
}

// NewCommunityHandler creates the community handler
func NewCommunityHandler(community *communityapp.Service, auth, admin gin.HandlerFunc) *CommunityHandler {
	return &CommunityHandler{community: community, auth: auth, admin: admin}
}

// RegisterRoutes registers the community routes
func (h *CommunityHandler) RegisterRoutes(rg *gin.RouterGroup) {
	public := rg.Group("/community")
	public.GET("/posts", h.ListApproved)
	public.POST("/posts", h.auth, h.Submit)

	admin := rg.Group("/admin/community", h.auth, h.admin)
	admin.GET("/posts", h.ListForModeration)
	admin.PUT("/posts/:id", h.Moderate)
	admin.DELETE("/posts/:id", h.Delete)
}

// ListApproved returns the public wall
func (h *CommunityHandler) ListApproved(c *gin.Context) {
	posts, err := h.community.ListApproved(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, posts)
}

// Submit accepts a multipart photo submission
func (h *CommunityHandler) Submit(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		h.HandleError(c, errUnauthenticated)
		return
	}

	fileHeader, err := c.FormFile("photo")
	if err != nil {
		h.BadRequest(c, "photo file is required")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		h.BadRequest(c, "photo exceeds the 10MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	defer file.Close()

	post, err := h.community.Submit(c.Request.Context(), userID, communityapp.SubmitInput{
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Body:        file,
		Caption:     c.PostForm("caption"),
		Combo:       c.PostForm("combo"),
	})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, post)
}

// ListForModeration returns all posts with the pending counter
func (h *CommunityHandler) ListForModeration(c *gin.Context) {
	mod, err := h.community.ListForModeration(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, mod)
}

type moderateRequest struct {
	Approved *bool `json:"approved" binding:"required"`
}

// Moderate approves or rejects a post
func (h *CommunityHandler) Moderate(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid post id")
		return
	}
	var in moderateRequest
	if err := c.ShouldBindJSON(&in); err != nil {
		h.BindError(c, err)
		return
	}
	post, err := h.community.Moderate(c.Request.Context(), id, *in.Approved)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, post)
}

// Delete removes a post
func (h *CommunityHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		h.BadRequest(c, "invalid post id")
		return
	}
	if err := h.community.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
