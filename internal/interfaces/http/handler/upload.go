package handler

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ozercanmutlu-ship-it/capdana/internal/infrastructure/storage"
)

// UploadHandler serves admin image uploads for the catalog
type UploadHandler struct {
	BaseHandler
	storage storage.ObjectStorage
	auth    []gin.HandlerFunc
	now     func() time.Time
}

// NewUploadHandler creates the upload handler
func NewUploadHandler(objectStorage storage.ObjectStorage, auth ...gin.HandlerFunc) *UploadHandler {
	return &UploadHandler{storage: objectStorage, auth: auth, now: time.Now}
}

// RegisterRoutes registers the upload routes
func (h *UploadHandler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/admin/uploads", append(h.auth, h.Upload)...)
}

// Upload stores a catalog image and returns its public URL
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		h.BadRequest(c, "file is required")
		return
	}
	if fileHeader.Size > maxUploadBytes {
		h.BadRequest(c, "file exceeds the 10MB limit")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		h.HandleError(c, err)
		return
	}
	defer file.Close()

	key := fmt.Sprintf("products/%d-%s", h.now().UnixMilli(), fileHeader.Filename)
	url, err := h.storage.Put(c.Request.Context(), key, file, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, gin.H{"key": key, "url": url})
}
