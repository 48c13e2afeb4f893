package handlers

import (
	"github.com/atelierhq/atelier/backend/internal/services"
	"github.com/atelierhq/atelier/backend/pkg/response"
	"github.com/gin-gonic/gin"
)

type UploadHandler struct {
	uploadService *services.UploadService
}

func NewUploadHandler(uploadService *services.UploadService) *UploadHandler {
	return &UploadHandler{uploadService: uploadService}
}

// Upload stores one or more images and returns their hosted URLs. Files
// that fail validation are dropped from the result; the request only fails
// when nothing could be stored.
// POST /api/upload
func (h *UploadHandler) Upload(c *gin.Context) {
	form, err := c.MultipartForm()
	if err != nil {
		response.BadRequest(c, "multipart form required")
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		// Single-file clients post under "image"
		files = form.File["image"]
	}
	if len(files) == 0 {
		response.BadRequest(c, "no files provided")
		return
	}

	urls, err := h.uploadService.SaveImages(files)
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, gin.H{"urls": urls})
}
