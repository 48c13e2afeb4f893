package models

import (
	"time"

	"gorm.io/gorm"
)

// Review represents a client review. Public submissions start unpublished
// and only appear on the site after an admin publishes them.
type Review struct {
	ID        uint           `gorm:"primaryKey" json:"id"`
	Name      string         `gorm:"size:100;not null" json:"name"`
	Email     string         `gorm:"size:255;not null" json:"email"`
	Rating    int            `gorm:"not null" json:"rating"`      // 1-5
	Review    string         `gorm:"type:text;not null" json:"review"` // 10-1000 chars
	Project   string         `gorm:"size:200" json:"project"`     // free-text project label
	Published bool           `gorm:"default:false;index" json:"published"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Review) TableName() string { return "reviews" }
