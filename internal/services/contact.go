package services

import (
	"errors"

	"github.com/atelierhq/atelier/backend/internal/models"
	"gorm.io/gorm"
)

type ContactService struct {
	db    *gorm.DB
	email *EmailService
}

func NewContactService(db *gorm.DB, email *EmailService) *ContactService {
	return &ContactService{db: db, email: email}
}

type SubmitContactRequest struct {
	Name         string `json:"name" binding:"required,max=100"`
	Email        string `json:"email" binding:"required,email"`
	Phone        string `json:"phone" binding:"omitempty,max=50"`
	ProjectType  string `json:"project_type" binding:"required,max=100"`
	Message      string `json:"message" binding:"required,max=5000"`
	CaptchaToken string `json:"captcha_token"`
}

type ContactListRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Status   string `form:"status" binding:"omitempty,oneof=new contacted closed"`
	Search   string `form:"search"`
}

type ContactListResponse struct {
	Total    int64                      `json:"total"`
	Page     int                        `json:"page"`
	PageSize int                        `json:"page_size"`
	Items    []models.ContactSubmission `json:"items"`
}

type UpdateContactStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new contacted closed"`
}

// Submit stores a contact form submission with status "new" and triggers
// the admin notification and submitter confirmation emails.
func (s *ContactService) Submit(req *SubmitContactRequest) (*models.ContactSubmission, error) {
	sub := models.ContactSubmission{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		ProjectType: req.ProjectType,
		Message:     req.Message,
		Status:      models.ContactStatusNew,
	}

	if err := s.db.Create(&sub).Error; err != nil {
		return nil, err
	}

	if s.email != nil {
		s.email.SendContactNotification(&sub)
		s.email.SendContactConfirmation(&sub)
	}

	return &sub, nil
}

// List returns paginated submissions for the dashboard, optionally filtered
// by status and a name/email search.
func (s *ContactService) List(req *ContactListRequest) (*ContactListResponse, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}

	var subs []models.ContactSubmission
	var total int64

	query := s.db.Model(&models.ContactSubmission{})

	if req.Status != "" {
		query = query.Where("status = ?", req.Status)
	}
	if req.Search != "" {
		like := "%" + req.Search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", like, like)
	}

	query.Count(&total)

	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Order("created_at DESC").Find(&subs).Error; err != nil {
		return nil, err
	}

	return &ContactListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    subs,
	}, nil
}

// GetByID returns a submission by ID
func (s *ContactService) GetByID(id uint) (*models.ContactSubmission, error) {
	var sub models.ContactSubmission
	if err := s.db.First(&sub, id).Error; err != nil {
		return nil, err
	}
	return &sub, nil
}

// UpdateStatus moves a submission through its lifecycle (new/contacted/closed).
func (s *ContactService) UpdateStatus(id uint, status string) (*models.ContactSubmission, error) {
	var sub models.ContactSubmission
	if err := s.db.First(&sub, id).Error; err != nil {
		return nil, err
	}

	if err := s.db.Model(&sub).Update("status", status).Error; err != nil {
		return nil, err
	}

	return &sub, nil
}

// Delete deletes a submission
func (s *ContactService) Delete(id uint) error {
	result := s.db.Delete(&models.ContactSubmission{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("submission not found")
	}
	return nil
}

// ListNew returns all submissions still in status "new", oldest first.
// Used by the daily digest.
func (s *ContactService) ListNew() ([]models.ContactSubmission, error) {
	var subs []models.ContactSubmission
	if err := s.db.Where("status = ?", models.ContactStatusNew).
		Order("created_at ASC").
		Find(&subs).Error; err != nil {
		return nil, err
	}
	return subs, nil
}
