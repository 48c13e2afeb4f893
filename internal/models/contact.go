package models

import (
	"time"

	"gorm.io/gorm"
)

// Contact submission status values
const (
	ContactStatusNew       = "new"
	ContactStatusContacted = "contacted"
	ContactStatusClosed    = "closed"
)

// ContactSubmission represents a message sent through the public contact form.
// Status is tracked manually by studio staff.
type ContactSubmission struct {
	ID          uint           `gorm:"primaryKey" json:"id"`
	Name        string         `gorm:"size:100;not null" json:"name"`
	Email       string         `gorm:"size:255;not null" json:"email"`
	Phone       string         `gorm:"size:50" json:"phone"`
	ProjectType string         `gorm:"size:100" json:"project_type"`
	Message     string         `gorm:"type:text;not null" json:"message"`
	Status      string         `gorm:"size:20;default:new;index" json:"status"` // new, contacted, closed
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (ContactSubmission) TableName() string { return "contact_submissions" }
