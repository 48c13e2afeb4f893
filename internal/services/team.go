package services

import (
	"errors"

	"github.com/atelierhq/atelier/backend/internal/models"
	"gorm.io/gorm"
)

type TeamService struct {
	db *gorm.DB
}

func NewTeamService(db *gorm.DB) *TeamService {
	return &TeamService{db: db}
}

type CreateTeamMemberRequest struct {
	Name      string `json:"name" binding:"required,max=100"`
	Role      string `json:"role" binding:"required,max=100"`
	Bio       string `json:"bio"`
	Image     string `json:"image"`
	SortOrder int    `json:"sort_order"`
}

type UpdateTeamMemberRequest struct {
	Name      string  `json:"name" binding:"omitempty,max=100"`
	Role      string  `json:"role" binding:"omitempty,max=100"`
	Bio       *string `json:"bio"`
	Image     *string `json:"image"`
	SortOrder *int    `json:"sort_order"`
}

// List returns all team members in display order.
func (s *TeamService) List() ([]models.TeamMember, error) {
	var members []models.TeamMember
	if err := s.db.Order("sort_order ASC, id ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

// Create creates a team member
func (s *TeamService) Create(req *CreateTeamMemberRequest) (*models.TeamMember, error) {
	member := models.TeamMember{
		Name:      req.Name,
		Role:      req.Role,
		Bio:       req.Bio,
		Image:     req.Image,
		SortOrder: req.SortOrder,
	}

	if err := s.db.Create(&member).Error; err != nil {
		return nil, err
	}

	return &member, nil
}

// Update applies a partial update to a team member
func (s *TeamService) Update(id uint, req *UpdateTeamMemberRequest) (*models.TeamMember, error) {
	var member models.TeamMember
	if err := s.db.First(&member, id).Error; err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Role != "" {
		updates["role"] = req.Role
	}
	if req.Bio != nil {
		updates["bio"] = *req.Bio
	}
	if req.Image != nil {
		updates["image"] = *req.Image
	}
	if req.SortOrder != nil {
		updates["sort_order"] = *req.SortOrder
	}

	if len(updates) == 0 {
		return &member, nil
	}

	if err := s.db.Model(&member).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &member, nil
}

// Delete deletes a team member
func (s *TeamService) Delete(id uint) error {
	result := s.db.Delete(&models.TeamMember{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("team member not found")
	}
	return nil
}
