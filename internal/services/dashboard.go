package services

import (
	"github.com/atelierhq/atelier/backend/internal/models"
	"gorm.io/gorm"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

type ProjectCounts struct {
	Total    int64 `json:"total"`
	Featured int64 `json:"featured"`
}

type ReviewCounts struct {
	Total         int64   `json:"total"`
	Published     int64   `json:"published"`
	Pending       int64   `json:"pending"`
	AverageRating float64 `json:"average_rating"`
}

type ContactCounts struct {
	Total     int64 `json:"total"`
	New       int64 `json:"new"`
	Contacted int64 `json:"contacted"`
	Closed    int64 `json:"closed"`
}

type DashboardStats struct {
	Projects    ProjectCounts `json:"projects"`
	Reviews     ReviewCounts  `json:"reviews"`
	Contacts    ContactCounts `json:"contacts"`
	TeamMembers int64         `json:"team_members"`
}

// GetStats returns the aggregate counts shown on the dashboard landing page.
func (s *DashboardService) GetStats() (*DashboardStats, error) {
	var stats DashboardStats

	s.db.Model(&models.Project{}).Count(&stats.Projects.Total)
	s.db.Model(&models.Project{}).Where("featured = ?", true).Count(&stats.Projects.Featured)

	s.db.Model(&models.Review{}).Count(&stats.Reviews.Total)
	s.db.Model(&models.Review{}).Where("published = ?", true).Count(&stats.Reviews.Published)
	stats.Reviews.Pending = stats.Reviews.Total - stats.Reviews.Published
	s.db.Model(&models.Review{}).
		Where("published = ?", true).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&stats.Reviews.AverageRating)

	s.db.Model(&models.ContactSubmission{}).Count(&stats.Contacts.Total)
	s.db.Model(&models.ContactSubmission{}).Where("status = ?", models.ContactStatusNew).Count(&stats.Contacts.New)
	s.db.Model(&models.ContactSubmission{}).Where("status = ?", models.ContactStatusContacted).Count(&stats.Contacts.Contacted)
	s.db.Model(&models.ContactSubmission{}).Where("status = ?", models.ContactStatusClosed).Count(&stats.Contacts.Closed)

	s.db.Model(&models.TeamMember{}).Count(&stats.TeamMembers)

	return &stats, nil
}
