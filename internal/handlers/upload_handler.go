package handlers

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/GreenvaleServices/landscape-platform/internal/httperr"
	"github.com/GreenvaleServices/landscape-platform/internal/images"
	"github.com/GreenvaleServices/landscape-platform/internal/storage"
)

const maxUploadBytes = 10 << 20 // 10 MiB

// UploadHandler accepts multipart uploads and returns the object key.
// Photos are re-encoded to WebP; PDFs (site plans, resumes) pass through.
type UploadHandler struct {
	store storage.Uploader
}

func NewUploadHandler(store storage.Uploader) *UploadHandler {
	return &UploadHandler{store: store}
}

func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		httperr.BadRequest(c, "missing_file", "A file field is required.")
		return
	}

	if fileHeader.Size > maxUploadBytes {
		httperr.BadRequest(c, "file_too_large", "File exceeds the 10 MB limit.")
		return
	}

	folder := c.DefaultPostForm("folder", "uploads")
	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))

	f, err := fileHeader.Open()
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Could not read upload.")
		return
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		httperr.Internal(c, "failed_to_read_file", "Could not read upload.")
		return
	}

	var key string

	switch ext {
	case ".jpg", ".jpeg", ".png":
		encoded, cerr := images.ToWebP(data)
		if cerr != nil {
			httperr.BadRequest(c, "invalid_image", "Could not decode image.")
			return
		}
		key, err = h.store.Put(c.Request.Context(), folder, ".webp", "image/webp", encoded)

	case ".pdf":
		key, err = h.store.Put(c.Request.Context(), folder, ".pdf", "application/pdf", data)

	default:
		httperr.BadRequest(c, "unsupported_file_type", "Only JPEG, PNG and PDF are accepted.")
		return
	}

	if err != nil {
		httperr.Internal(c, "failed_to_store_file", "Could not store upload.")
		return
	}

	c.JSON(201, gin.H{"key": key})
}
