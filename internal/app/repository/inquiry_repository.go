package repository

import (
	"github.com/malabartrails/tours-backend/internal/app/model"
	"github.com/malabartrails/tours-backend/pkg/logger"
	"gorm.io/gorm"
)

type InquiryRepository interface {
	Create(inquiry *model.Inquiry) error
}

type inquiryRepository struct {
	db *gorm.DB
}

func NewInquiryRepository(db *gorm.DB) InquiryRepository {
	return &inquiryRepository{db: db}
}

func (r *inquiryRepository) Create(inquiry *model.Inquiry) error {
	logger.Debug("Creating inquiry in database", map[string]interface{}{
		"tour_slug": inquiry.TourSlug,
	})

	if err := r.db.Create(inquiry).Error; err != nil {
		logger.Error("Failed to create inquiry in database", err, map[string]interface{}{
			"tour_slug": inquiry.TourSlug,
		})
		return err
	}

	logger.Debug("Inquiry created in database", map[string]interface{}{
		"inquiry_id": inquiry.ID,
	})
	return nil
}
