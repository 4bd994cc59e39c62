package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/piyushrajyadav/Nexusaloon/internal/httperr"
	"github.com/piyushrajyadav/Nexusaloon/internal/infra/storage"
)

const maxUploadBytes = 5 << 20 // 5MB

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
	"image/gif":  true,
}

type UploadHandler struct {
	store *storage.ImageStore
}

func NewUploadHandler(store *storage.ImageStore) *UploadHandler {
	return &UploadHandler{store: store}
}

// ServiceImage receives a multipart catalog image, validates type and size
// and stores it as webp. Responds with the public URL to attach to a service.
func (h *UploadHandler) ServiceImage(c *gin.Context) {
	if h.store == nil {
		httperr.Write(c, http.StatusServiceUnavailable, "uploads_disabled", "Image storage is not configured.")
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "A file field is required.")
		return
	}

	if fileHeader.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "Images must be 5MB or less.")
		return
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		httperr.BadRequest(c, "unsupported_file_type", "Only jpeg, png, webp and gif images are accepted.")
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "upload_failed", "Could not read the uploaded file.")
		return
	}
	defer file.Close()

	url, err := h.store.UploadImage(c.Request.Context(), "services", file)
	if err != nil {
		httperr.Internal(c, "upload_failed", "Could not store the image.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"url": url})
}
