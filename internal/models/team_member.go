package models

import (
	"time"

	"gorm.io/gorm"
)

// TeamMember represents a studio staff profile on the about page.
type TeamMember struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Role      string         `gorm:"size:100;not null" json:"role"`
	Bio       string         `gorm:"type:text" json:"bio"`
	Image     string         `gorm:"size:500" json:"image"`
	SortOrder int            `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (TeamMember) TableName() string { return "team_members" }
