package model

import (
	"time"

	"github.com/malabartrails/tours-backend/pkg/util"
	"gorm.io/gorm"
)

// Destination is searched through the same unified-search contract as tours.
type Destination struct {
	ID          uint           `gorm:"primarykey" json:"id"`
	Title       string         `gorm:"not null" json:"title"`
	Slug        string         `gorm:"uniqueIndex" json:"slug"`
	Description string         `gorm:"type:text" json:"description"`
	State       string         `gorm:"index" json:"state"`
	Region      string         `gorm:"index" json:"region"`
	ImageURL    string         `json:"image_url"`
	IsPublished bool           `gorm:"default:false;index" json:"is_published"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Destination) TableName() string {
	return "destinations"
}

func (d *Destination) BeforeCreate(tx *gorm.DB) error {
	if d.Slug == "" {
		d.Slug = util.Slugify(d.Title)
	}
	return nil
}
