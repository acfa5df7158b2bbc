package repository

import (
	"errors"
	"strings"

	"github.com/malabartrails/tours-backend/internal/app/model"
	"github.com/malabartrails/tours-backend/pkg/logger"
	"gorm.io/gorm"
)

type TourRepository interface {
	Create(tour *model.Tour) error
	FindPublished() ([]model.Tour, error)
	FindBySlug(slug string) (*model.Tour, error)
	FindBySlugs(slugs []string) ([]model.Tour, error)
	Search(term string, limit int) ([]model.Tour, error)
	PublishedSlugs() ([]string, error)
	ExistingSlugs(slugs []string) (map[string]bool, error)
	BulkCreate(tours []model.Tour, batchSize int) error
}

type tourRepository struct {
	db *gorm.DB
}

func NewTourRepository(db *gorm.DB) TourRepository {
	return &tourRepository{db: db}
}

func (r *tourRepository) Create(tour *model.Tour) error {
	logger.Debug("Creating tour in database", map[string]interface{}{
		"title":       tour.Title,
		"category_id": tour.CategoryID,
	})

	if err := r.db.Create(tour).Error; err != nil {
		logger.Error("Failed to create tour in database", err, map[string]interface{}{
			"title": tour.Title,
			"slug":  tour.Slug,
		})
		return err
	}

	logger.Debug("Tour created in database", map[string]interface{}{
		"tour_id": tour.ID,
		"slug":    tour.Slug,
	})
	return nil
}

// listingQuery loads what cards and filters need: the category chain and images.
func (r *tourRepository) listingQuery() *gorm.DB {
	return r.db.Model(&model.Tour{}).
		Preload("Category.Parent").
		Preload("Images", orderedChildren).
		Where("tours.is_published = ?", true)
}

// detailQuery additionally loads sections and the structured itinerary.
func (r *tourRepository) detailQuery() *gorm.DB {
	return r.listingQuery().
		Preload("Sections", orderedChildren).
		Preload("ItineraryDays", func(db *gorm.DB) *gorm.DB {
			return db.Order("day_number, sort_order, id")
		}).
		Preload("ItineraryDays.Activities", orderedChildren)
}

func orderedChildren(db *gorm.DB) *gorm.DB {
	return db.Order("sort_order, id")
}

func (r *tourRepository) FindPublished() ([]model.Tour, error) {
	logger.Debug("Finding published tours")

	var tours []model.Tour
	if err := r.listingQuery().Order("tours.created_at DESC").Order("tours.id DESC").Find(&tours).Error; err != nil {
		logger.Error("Failed to find published tours", err)
		return nil, err
	}

	logger.Debug("Published tours found", map[string]interface{}{
		"count": len(tours),
	})
	return tours, nil
}

func (r *tourRepository) FindBySlug(slug string) (*model.Tour, error) {
	logger.Debug("Finding tour by slug in database", map[string]interface{}{
		"slug": slug,
	})

	var tour model.Tour
	if err := r.detailQuery().Where("tours.slug = ?", slug).First(&tour).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Debug("Tour not found", map[string]interface{}{
				"slug": slug,
			})
		} else {
			logger.Error("Failed to find tour by slug", err, map[string]interface{}{
				"slug": slug,
			})
		}
		return nil, err
	}

	logger.Debug("Tour found by slug", map[string]interface{}{
		"tour_id": tour.ID,
		"slug":    slug,
	})
	return &tour, nil
}

// FindBySlugs returns the published tours among slugs, in the order the slugs were given.
func (r *tourRepository) FindBySlugs(slugs []string) ([]model.Tour, error) {
	logger.Debug("Finding tours by slugs", map[string]interface{}{
		"count": len(slugs),
	})
	if len(slugs) == 0 {
		return []model.Tour{}, nil
	}

	var found []model.Tour
	if err := r.listingQuery().Where("tours.slug IN ?", slugs).Find(&found).Error; err != nil {
		logger.Error("Failed to find tours by slugs", err)
		return nil, err
	}

	bySlug := make(map[string]model.Tour, len(found))
	for _, t := range found {
		bySlug[t.Slug] = t
	}
	tours := make([]model.Tour, 0, len(found))
	for _, slug := range slugs {
		if t, ok := bySlug[slug]; ok {
			tours = append(tours, t)
			delete(bySlug, slug)
		}
	}
	return tours, nil
}

// Search matches term case-insensitively against title, description,
// location and the name of the tour's category or its parent.
func (r *tourRepository) Search(term string, limit int) ([]model.Tour, error) {
	logger.Debug("Searching tours", map[string]interface{}{
		"term":  term,
		"limit": limit,
	})

	like := likePattern(term)
	query := r.listingQuery().
		Select("tours.*").
		Joins("LEFT JOIN categories ON categories.id = tours.category_id AND categories.deleted_at IS NULL").
		Joins("LEFT JOIN categories AS parent_categories ON parent_categories.id = categories.parent_id AND parent_categories.deleted_at IS NULL").
		Where(
			r.db.Where("LOWER(tours.title) LIKE ? ESCAPE '\\'", like).
				Or("LOWER(tours.description) LIKE ? ESCAPE '\\'", like).
				Or("LOWER(tours.location) LIKE ? ESCAPE '\\'", like).
				Or("LOWER(categories.name) LIKE ? ESCAPE '\\'", like).
				Or("LOWER(parent_categories.name) LIKE ? ESCAPE '\\'", like),
		).
		Order("tours.title ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	var tours []model.Tour
	if err := query.Find(&tours).Error; err != nil {
		logger.Error("Failed to search tours", err, map[string]interface{}{
			"term": term,
		})
		return nil, err
	}

	logger.Debug("Tour search completed", map[string]interface{}{
		"term":  term,
		"count": len(tours),
	})
	return tours, nil
}

func (r *tourRepository) PublishedSlugs() ([]string, error) {
	logger.Debug("Listing published tour slugs")

	var slugs []string
	if err := r.db.Model(&model.Tour{}).
		Where("is_published = ?", true).
		Order("slug ASC").
		Pluck("slug", &slugs).Error; err != nil {
		logger.Error("Failed to list published tour slugs", err)
		return nil, err
	}
	return slugs, nil
}

// likePattern lowercases term and escapes LIKE wildcards so they match literally.
func likePattern(term string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(strings.TrimSpace(term)))
	return "%" + escaped + "%"
}

func normalizeTerm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// ExistingSlugs reports which of slugs are taken, published or not.
func (r *tourRepository) ExistingSlugs(slugs []string) (map[string]bool, error) {
	existing := make(map[string]bool, len(slugs))
	if len(slugs) == 0 {
		return existing, nil
	}

	var found []string
	if err := r.db.Unscoped().Model(&model.Tour{}).Where("slug IN ?", slugs).Pluck("slug", &found).Error; err != nil {
		logger.Error("Failed to check existing tour slugs", err, map[string]interface{}{
			"count": len(slugs),
		})
		return nil, err
	}
	for _, slug := range found {
		existing[slug] = true
	}
	return existing, nil
}

// BulkCreate inserts tours in batches inside one transaction. Slugs must
// already be set and unique.
func (r *tourRepository) BulkCreate(tours []model.Tour, batchSize int) error {
	logger.Debug("Bulk creating tours", map[string]interface{}{
		"count":      len(tours),
		"batch_size": batchSize,
	})
	if len(tours) == 0 {
		return nil
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(tours, batchSize).Error
	})
	if err != nil {
		logger.Error("Failed to bulk create tours", err, map[string]interface{}{
			"count": len(tours),
		})
		return err
	}

	logger.Info("Tours bulk created", map[string]interface{}{
		"count": len(tours),
	})
	return nil
}
