package handlers

import (
	"errors"
	"strconv"

	"github.com/atelierhq/atelier/backend/internal/services"
	"github.com/atelierhq/atelier/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ContactHandler struct {
	contactService *services.ContactService
	captchaService *services.CaptchaService
}

func NewContactHandler(contactService *services.ContactService, captchaService *services.CaptchaService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
		captchaService: captchaService,
	}
}

// Submit accepts a public contact form submission
// POST /api/contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req services.SubmitContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.captchaService.Verify(req.CaptchaToken, c.ClientIP()); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	sub, err := h.contactService.Submit(&req)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Created(c, sub)
}

// List returns paginated submissions for the dashboard
// GET /api/contact
func (h *ContactHandler) List(c *gin.Context) {
	var req services.ContactListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.contactService.List(&req)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, resp)
}

// GetByID returns a submission by ID
// GET /api/contact/:id
func (h *ContactHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid submission id")
		return
	}

	sub, err := h.contactService.GetByID(uint(id))
	if err != nil {
		response.NotFound(c, "submission not found")
		return
	}

	response.Success(c, sub)
}

// UpdateStatus moves a submission through its lifecycle
// PATCH /api/contact/:id/status
func (h *ContactHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid submission id")
		return
	}

	var req services.UpdateContactStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	sub, err := h.contactService.UpdateStatus(uint(id), req.Status)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "submission not found")
			return
		}
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, sub)
}

// Delete deletes a submission
// DELETE /api/contact/:id
func (h *ContactHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid submission id")
		return
	}

	if err := h.contactService.Delete(uint(id)); err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"message": "submission deleted successfully"})
}
