package services

import (
	"errors"

	"github.com/atelierhq/atelier/backend/internal/models"
	"gorm.io/gorm"
)

type ReviewService struct {
	db    *gorm.DB
	email *EmailService
}

func NewReviewService(db *gorm.DB, email *EmailService) *ReviewService {
	return &ReviewService{db: db, email: email}
}

// SubmitReviewRequest carries a public review submission. The binding tags
// are the authoritative validation schema: rating 1-5, text 10-1000 chars.
type SubmitReviewRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	Email        string `json:"email" binding:"required,email"`
	Rating       int    `json:"rating" binding:"required,min=1,max=5"`
	Review       string `json:"review" binding:"required,min=10,max=1000"`
	Project      string `json:"project" binding:"omitempty,max=200"`
	CaptchaToken string `json:"captcha_token"`
}

type UpdateReviewRequest struct {
	Rating    *int    `json:"rating" binding:"omitempty,min=1,max=5"`
	Review    *string `json:"review" binding:"omitempty,min=10,max=1000"`
	Project   *string `json:"project"`
	Published *bool   `json:"published"`
}

type ReviewListRequest struct {
	Page      int    `form:"page" binding:"omitempty,min=1"`
	PageSize  int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Published *bool  `form:"published"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

type ReviewListResponse struct {
	Total    int64           `json:"total"`
	Page     int             `json:"page"`
	PageSize int             `json:"page_size"`
	Items    []models.Review `json:"items"`
}

// ListPublished returns published reviews for the public site, newest first.
func (s *ReviewService) ListPublished(limit int) ([]models.Review, error) {
	if limit <= 0 || limit > 100 {
		limit = 50
	}

	var reviews []models.Review
	if err := s.db.Where("published = ?", true).
		Order("created_at DESC").
		Limit(limit).
		Find(&reviews).Error; err != nil {
		return nil, err
	}
	return reviews, nil
}

// List returns all reviews for the dashboard, optionally filtered by
// publication state.
func (s *ReviewService) List(req *ReviewListRequest) (*ReviewListResponse, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}

	var reviews []models.Review
	var total int64

	query := s.db.Model(&models.Review{})
	if req.Published != nil {
		query = query.Where("published = ?", *req.Published)
	}

	query.Count(&total)

	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Order("created_at DESC").Find(&reviews).Error; err != nil {
		return nil, err
	}

	return &ReviewListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    reviews,
	}, nil
}

// Submit stores a public review submission. New reviews are unpublished
// until approved in the dashboard. Triggers the admin notification and the
// submitter confirmation emails.
func (s *ReviewService) Submit(req *SubmitReviewRequest) (*models.Review, error) {
	review := models.Review{
		Name:      req.Name,
		Email:     req.Email,
		Rating:    req.Rating,
		Review:    req.Review,
		Project:   req.Project,
		Published: false,
	}

	if err := s.db.Create(&review).Error; err != nil {
		return nil, err
	}

	if s.email != nil {
		s.email.SendReviewNotification(&review)
		s.email.SendReviewConfirmation(&review)
	}

	return &review, nil
}

// Update edits a review or toggles its publication state.
func (s *ReviewService) Update(id uint, req *UpdateReviewRequest) (*models.Review, error) {
	var review models.Review
	if err := s.db.First(&review, id).Error; err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.Review != nil {
		updates["review"] = *req.Review
	}
	if req.Project != nil {
		updates["project"] = *req.Project
	}
	if req.Published != nil {
		updates["published"] = *req.Published
	}

	if len(updates) == 0 {
		return &review, nil
	}

	if err := s.db.Model(&review).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &review, nil
}

// Delete deletes a review
func (s *ReviewService) Delete(id uint) error {
	result := s.db.Delete(&models.Review{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("review not found")
	}
	return nil
}
