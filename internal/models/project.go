package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
)

// Project type enum values
const (
	ProjectTypeResidential = "residential"
	ProjectTypeCommercial  = "commercial"
	ProjectTypeHospitality = "hospitality"
)

// ImageList is an ordered list of image URLs stored as a JSON text column.
type ImageList []string

func (l ImageList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *ImageList) Scan(value interface{}) error {
	if value == nil {
		*l = ImageList{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("unsupported type for ImageList")
	}
}

// Contains reports whether url is one of the list entries.
func (l ImageList) Contains(url string) bool {
	for _, img := range l {
		if img == url {
			return true
		}
	}
	return false
}

// Project represents a portfolio project shown on the public site.
// MainImage is a denormalized copy of one of Images; the project service
// enforces membership on every write.
type Project struct {
	ID              uint           `gorm:"primaryKey" json:"id"`
	Title           string         `gorm:"size:200;not null" json:"title"`
	Description     string         `gorm:"size:1000;not null" json:"description"`
	FullDescription string         `gorm:"type:text" json:"full_description"`
	Location        string         `gorm:"size:200" json:"location"`
	Date            string         `gorm:"size:50" json:"date"`
	Client          string         `gorm:"size:200" json:"client"`
	Type            string         `gorm:"size:50;not null;index" json:"type"` // residential, commercial, hospitality
	Featured        bool           `gorm:"default:false;index" json:"featured"`
	Images          ImageList      `gorm:"type:text" json:"images"`
	MainImage       string         `gorm:"size:500;not null" json:"main_image"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
	DeletedAt       gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Project) TableName() string { return "projects" }
