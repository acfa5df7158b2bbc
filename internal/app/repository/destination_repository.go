package repository

import (
	"errors"

	"github.com/malabartrails/tours-backend/internal/app/model"
	"github.com/malabartrails/tours-backend/pkg/logger"
	"gorm.io/gorm"
)

type DestinationFilter struct {
	State  string
	Region string
	Limit  int
}

type DestinationRepository interface {
	Create(destination *model.Destination) error
	FindPublished(filter DestinationFilter) ([]model.Destination, error)
	FindBySlug(slug string) (*model.Destination, error)
	Search(term string, limit int) ([]model.Destination, error)
}

type destinationRepository struct {
	db *gorm.DB
}

func NewDestinationRepository(db *gorm.DB) DestinationRepository {
	return &destinationRepository{db: db}
}

func (r *destinationRepository) Create(destination *model.Destination) error {
	logger.Debug("Creating destination in database", map[string]interface{}{
		"title": destination.Title,
	})

	if err := r.db.Create(destination).Error; err != nil {
		logger.Error("Failed to create destination in database", err, map[string]interface{}{
			"title": destination.Title,
		})
		return err
	}
	return nil
}

func (r *destinationRepository) FindPublished(filter DestinationFilter) ([]model.Destination, error) {
	logger.Debug("Finding published destinations", map[string]interface{}{
		"state":  filter.State,
		"region": filter.Region,
		"limit":  filter.Limit,
	})

	query := r.db.Model(&model.Destination{}).Where("is_published = ?", true)
	if filter.State != "" {
		query = query.Where("LOWER(state) = ?", normalizeTerm(filter.State))
	}
	if filter.Region != "" {
		query = query.Where("LOWER(region) = ?", normalizeTerm(filter.Region))
	}
	if filter.Limit > 0 {
		query = query.Limit(filter.Limit)
	}

	var destinations []model.Destination
	if err := query.Order("title ASC").Find(&destinations).Error; err != nil {
		logger.Error("Failed to find destinations", err)
		return nil, err
	}
	return destinations, nil
}

func (r *destinationRepository) FindBySlug(slug string) (*model.Destination, error) {
	logger.Debug("Finding destination by slug", map[string]interface{}{
		"slug": slug,
	})

	var destination model.Destination
	if err := r.db.Where("slug = ? AND is_published = ?", slug, true).First(&destination).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Error("Failed to find destination by slug", err, map[string]interface{}{
				"slug": slug,
			})
		}
		return nil, err
	}
	return &destination, nil
}

// Search matches term case-insensitively against title, description, state and region.
func (r *destinationRepository) Search(term string, limit int) ([]model.Destination, error) {
	logger.Debug("Searching destinations", map[string]interface{}{
		"term":  term,
		"limit": limit,
	})

	like := likePattern(term)
	query := r.db.Model(&model.Destination{}).
		Where("is_published = ?", true).
		Where(
			r.db.Where("LOWER(title) LIKE ? ESCAPE '\\'", like).
				Or("LOWER(description) LIKE ? ESCAPE '\\'", like).
				Or("LOWER(state) LIKE ? ESCAPE '\\'", like).
				Or("LOWER(region) LIKE ? ESCAPE '\\'", like),
		).
		Order("title ASC")
	if limit > 0 {
		query = query.Limit(limit)
	}

	var destinations []model.Destination
	if err := query.Find(&destinations).Error; err != nil {
		logger.Error("Failed to search destinations", err, map[string]interface{}{
			"term": term,
		})
		return nil, err
	}

	logger.Debug("Destination search completed", map[string]interface{}{
		"term":  term,
		"count": len(destinations),
	})
	return destinations, nil
}
