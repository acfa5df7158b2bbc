package repository

import (
	"errors"

	"github.com/malabartrails/tours-backend/internal/app/model"
	"github.com/malabartrails/tours-backend/pkg/logger"
	"gorm.io/gorm"
)

type CategoryRepository interface {
	Create(category *model.Category) error
	FindAll() ([]model.Category, error)
	FindBySlug(slug string) (*model.Category, error)
	FindChildren(parentID uint) ([]model.Category, error)
}

type categoryRepository struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(category *model.Category) error {
	logger.Debug("Creating category in database", map[string]interface{}{
		"name":      category.Name,
		"parent_id": category.ParentID,
	})

	if err := r.db.Create(category).Error; err != nil {
		logger.Error("Failed to create category in database", err, map[string]interface{}{
			"name":      category.Name,
			"parent_id": category.ParentID,
		})
		return err
	}

	logger.Debug("Category created in database", map[string]interface{}{
		"category_id": category.ID,
		"slug":        category.Slug,
	})
	return nil
}

func (r *categoryRepository) FindAll() ([]model.Category, error) {
	logger.Debug("Finding all categories")

	var categories []model.Category
	if err := r.db.Preload("Parent").Order("name ASC").Find(&categories).Error; err != nil {
		logger.Error("Failed to find categories", err)
		return nil, err
	}

	logger.Debug("Categories found", map[string]interface{}{
		"count": len(categories),
	})
	return categories, nil
}

func (r *categoryRepository) FindBySlug(slug string) (*model.Category, error) {
	logger.Debug("Finding category by slug", map[string]interface{}{
		"slug": slug,
	})

	var category model.Category
	if err := r.db.Preload("Parent").Where("slug = ?", slug).First(&category).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("Failed to find category by slug", err, map[string]interface{}{
				"slug": slug,
			})
		}
		return nil, err
	}
	return &category, nil
}

func (r *categoryRepository) FindChildren(parentID uint) ([]model.Category, error) {
	logger.Debug("Finding child categories", map[string]interface{}{
		"parent_id": parentID,
	})

	var children []model.Category
	if err := r.db.Where("parent_id = ?", parentID).Order("name ASC").Find(&children).Error; err != nil {
		logger.Error("Failed to find child categories", err, map[string]interface{}{
			"parent_id": parentID,
		})
		return nil, err
	}
	return children, nil
}
