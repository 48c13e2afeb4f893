package handlers

import (
	"errors"
	"strconv"

	"github.com/atelierhq/atelier/backend/internal/services"
	"github.com/atelierhq/atelier/backend/pkg/response"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ReviewHandler struct {
	reviewService  *services.ReviewService
	captchaService *services.CaptchaService
}

func NewReviewHandler(reviewService *services.ReviewService, captchaService *services.CaptchaService) *ReviewHandler {
	return &ReviewHandler{
		reviewService:  reviewService,
		captchaService: captchaService,
	}
}

// ListPublished returns published reviews for the public site
// GET /api/reviews
func (h *ReviewHandler) ListPublished(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "50"))

	reviews, err := h.reviewService.ListPublished(limit)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, reviews)
}

// List returns all reviews for the dashboard
// GET /api/admin/reviews
func (h *ReviewHandler) List(c *gin.Context) {
	var req services.ReviewListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	resp, err := h.reviewService.List(&req)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, resp)
}

// Submit accepts a public review submission
// POST /api/reviews
func (h *ReviewHandler) Submit(c *gin.Context) {
	var req services.SubmitReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if err := h.captchaService.Verify(req.CaptchaToken, c.ClientIP()); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	review, err := h.reviewService.Submit(&req)
	if err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Created(c, review)
}

// Update edits a review or toggles publication
// PUT /api/reviews/:id
func (h *ReviewHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid review id")
		return
	}

	var req services.UpdateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	review, err := h.reviewService.Update(uint(id), &req)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			response.NotFound(c, "review not found")
			return
		}
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, review)
}

// Delete deletes a review
// DELETE /api/reviews/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "invalid review id")
		return
	}

	if err := h.reviewService.Delete(uint(id)); err != nil {
		response.ServerError(c, err.Error())
		return
	}

	response.Success(c, gin.H{"message": "review deleted successfully"})
}
