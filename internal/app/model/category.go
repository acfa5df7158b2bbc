package model

import (
	"errors"
	"time"

	"github.com/malabartrails/tours-backend/pkg/util"
	"gorm.io/gorm"
)

// ErrCategoryTooDeep is returned when a category would hang below a category
// that already has a parent. The tree is category -> parent, nothing deeper.
var ErrCategoryTooDeep = errors.New("category parent must be a top-level category")

type Category struct {
	ID        uint           `gorm:"primarykey" json:"id"`
	Name      string         `gorm:"type:varchar(100);not null" json:"name"`
	Slug      string         `gorm:"type:varchar(120);uniqueIndex" json:"slug"`
	ParentID  *uint          `gorm:"index" json:"parent_id"`
	Parent    *Category      `gorm:"foreignKey:ParentID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"parent,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`
}

func (Category) TableName() string {
	return "categories"
}

// BeforeSave derives the slug and enforces the single level of nesting.
func (c *Category) BeforeSave(tx *gorm.DB) error {
	if c.Slug == "" {
		c.Slug = util.Slugify(c.Name)
	}
	if c.ParentID == nil {
		return nil
	}
	if c.ID != 0 && *c.ParentID == c.ID {
		return ErrCategoryTooDeep
	}

	var parent Category
	if err := tx.Session(&gorm.Session{NewDB: true}).Select("id", "parent_id").First(&parent, *c.ParentID).Error; err != nil {
		return err
	}
	if parent.ParentID != nil {
		return ErrCategoryTooDeep
	}

	// A category that already has children cannot become a child itself.
	if c.ID != 0 {
		var children int64
		if err := tx.Session(&gorm.Session{NewDB: true}).Model(&Category{}).Where("parent_id = ?", c.ID).Count(&children).Error; err != nil {
			return err
		}
		if children > 0 {
			return ErrCategoryTooDeep
		}
	}
	return nil
}

// ParentName returns the parent's label, or "" for a top-level category.
func (c *Category) ParentName() string {
	if c == nil || c.Parent == nil {
		return ""
	}
	return c.Parent.Name
}
