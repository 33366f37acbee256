package handler

import (
	"net/http"
	"strconv"
	"strings"

	"inkwell/internal/middleware"
	"inkwell/pkg/cloudinary"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type UploadHandler struct {
	cloud cloudinary.Client
}

// NewUploadHandler accepts a nil client; uploads then respond 503 until
// Cloudinary credentials are configured.
func NewUploadHandler(cloud cloudinary.Client) *UploadHandler {
	return &UploadHandler{cloud: cloud}
}

// UploadImage stores an image for blog, book, or site imagery and returns
// its hosted URL.
func (h *UploadHandler) UploadImage(c *gin.Context) {
	if h.cloud == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"message": "Uploads are not configured"})
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "File is required"})
		return
	}
	folder := "inkwell/" + strconv.FormatUint(uint64(middleware.GetUserID(c)), 10)
	publicID := "img_" + strings.ReplaceAll(uuid.New().String(), "-", "")[:16]

	f, err := file.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Could not read file"})
		return
	}
	defer f.Close()

	url, err := h.cloud.UploadImage(c.Request.Context(), f, folder, publicID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Upload failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}
