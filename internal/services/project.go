package services

import (
	"errors"

	"github.com/atelierhq/atelier/backend/internal/models"
	"gorm.io/gorm"
)

var (
	ErrNoImages          = errors.New("project must have at least one image")
	ErrMainImageNotInSet = errors.New("main image must be one of the project images")
)

type ProjectService struct {
	db *gorm.DB
}

func NewProjectService(db *gorm.DB) *ProjectService {
	return &ProjectService{db: db}
}

type ProjectListRequest struct {
	Page     int    `form:"page" binding:"omitempty,min=1"`
	PageSize int    `form:"page_size" binding:"omitempty,min=1,max=100"`
	Type     string `form:"type" binding:"omitempty,oneof=residential commercial hospitality"`
	Featured *bool  `form:"featured"`
	Limit    int    `form:"limit" binding:"omitempty,min=1,max=100"`
}

type ProjectListResponse struct {
	Total    int64            `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"page_size"`
	Items    []models.Project `json:"items"`
}

type CreateProjectRequest struct {
	Title           string   `json:"title" binding:"required,max=200"`
	Description     string   `json:"description" binding:"required,max=1000"`
	FullDescription string   `json:"full_description"`
	Location        string   `json:"location"`
	Date            string   `json:"date"`
	Client          string   `json:"client"`
	Type            string   `json:"type" binding:"required,oneof=residential commercial hospitality"`
	Featured        bool     `json:"featured"`
	Images          []string `json:"images" binding:"required,min=1"`
	MainImage       string   `json:"main_image" binding:"required"`
}

type UpdateProjectRequest struct {
	Title           string   `json:"title" binding:"omitempty,max=200"`
	Description     string   `json:"description" binding:"omitempty,max=1000"`
	FullDescription *string  `json:"full_description"`
	Location        *string  `json:"location"`
	Date            *string  `json:"date"`
	Client          *string  `json:"client"`
	Type            string   `json:"type" binding:"omitempty,oneof=residential commercial hospitality"`
	Featured        *bool    `json:"featured"`
	Images          []string `json:"images"`
	MainImage       *string  `json:"main_image"`
}

// List returns paginated projects, optionally filtered by type and featured
// flag. Limit is a shorthand used by the public landing page.
func (s *ProjectService) List(req *ProjectListRequest) (*ProjectListResponse, error) {
	if req.Page == 0 {
		req.Page = 1
	}
	if req.PageSize == 0 {
		req.PageSize = 20
	}
	if req.Limit > 0 {
		req.Page = 1
		req.PageSize = req.Limit
	}

	var projects []models.Project
	var total int64

	query := s.db.Model(&models.Project{})

	if req.Type != "" {
		query = query.Where("type = ?", req.Type)
	}
	if req.Featured != nil {
		query = query.Where("featured = ?", *req.Featured)
	}

	query.Count(&total)

	offset := (req.Page - 1) * req.PageSize
	if err := query.Offset(offset).Limit(req.PageSize).Order("created_at DESC").Find(&projects).Error; err != nil {
		return nil, err
	}

	return &ProjectListResponse{
		Total:    total,
		Page:     req.Page,
		PageSize: req.PageSize,
		Items:    projects,
	}, nil
}

// GetByID returns a project by ID
func (s *ProjectService) GetByID(id uint) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// validateImages enforces the gallery invariant: the image list is non-empty
// and the denormalized main image is a member of it.
func validateImages(images models.ImageList, mainImage string) error {
	if len(images) == 0 {
		return ErrNoImages
	}
	if !images.Contains(mainImage) {
		return ErrMainImageNotInSet
	}
	return nil
}

// Create creates a new project
func (s *ProjectService) Create(req *CreateProjectRequest) (*models.Project, error) {
	images := models.ImageList(req.Images)
	if err := validateImages(images, req.MainImage); err != nil {
		return nil, err
	}

	project := models.Project{
		Title:           req.Title,
		Description:     req.Description,
		FullDescription: req.FullDescription,
		Location:        req.Location,
		Date:            req.Date,
		Client:          req.Client,
		Type:            req.Type,
		Featured:        req.Featured,
		Images:          images,
		MainImage:       req.MainImage,
	}

	if err := s.db.Create(&project).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// Update applies a partial update. Only provided fields are persisted; the
// image invariant is re-checked against the resulting image set.
func (s *ProjectService) Update(id uint, req *UpdateProjectRequest) (*models.Project, error) {
	var project models.Project
	if err := s.db.First(&project, id).Error; err != nil {
		return nil, err
	}

	images := project.Images
	if req.Images != nil {
		images = models.ImageList(req.Images)
	}
	mainImage := project.MainImage
	if req.MainImage != nil {
		mainImage = *req.MainImage
	}
	if req.Images != nil || req.MainImage != nil {
		if err := validateImages(images, mainImage); err != nil {
			return nil, err
		}
	}

	updates := make(map[string]interface{})

	if req.Title != "" {
		updates["title"] = req.Title
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.FullDescription != nil {
		updates["full_description"] = *req.FullDescription
	}
	if req.Location != nil {
		updates["location"] = *req.Location
	}
	if req.Date != nil {
		updates["date"] = *req.Date
	}
	if req.Client != nil {
		updates["client"] = *req.Client
	}
	if req.Type != "" {
		updates["type"] = req.Type
	}
	if req.Featured != nil {
		updates["featured"] = *req.Featured
	}
	if req.Images != nil {
		updates["images"] = images
	}
	if req.MainImage != nil {
		updates["main_image"] = mainImage
	}

	if len(updates) == 0 {
		return &project, nil
	}

	if err := s.db.Model(&project).Updates(updates).Error; err != nil {
		return nil, err
	}

	return &project, nil
}

// Delete deletes a project
func (s *ProjectService) Delete(id uint) error {
	result := s.db.Delete(&models.Project{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errors.New("project not found")
	}
	return nil
}
