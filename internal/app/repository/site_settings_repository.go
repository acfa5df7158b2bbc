package repository

import (
	"errors"

	"github.com/malabartrails/tours-backend/internal/app/model"
	"github.com/malabartrails/tours-backend/pkg/logger"
	"gorm.io/gorm"
)

// SiteSettingsRepository reads the homepage blocks. A missing row is not an
// error: the getters return nil and the service fills in defaults.
type SiteSettingsRepository interface {
	GetHero() (*model.HeroSettings, error)
	GetTourOffers() (*model.TourOffersSettings, error)
	GetDayOut() (*model.DayOutSettings, error)
}

type siteSettingsRepository struct {
	db *gorm.DB
}

func NewSiteSettingsRepository(db *gorm.DB) SiteSettingsRepository {
	return &siteSettingsRepository{db: db}
}

func (r *siteSettingsRepository) GetHero() (*model.HeroSettings, error) {
	var hero model.HeroSettings
	return latest(r.db, &hero, "hero")
}

func (r *siteSettingsRepository) GetTourOffers() (*model.TourOffersSettings, error) {
	var offers model.TourOffersSettings
	return latest(r.db, &offers, "tour_offers")
}

func (r *siteSettingsRepository) GetDayOut() (*model.DayOutSettings, error) {
	var dayOut model.DayOutSettings
	return latest(r.db, &dayOut, "day_out")
}

// latest loads the most recently written row of a settings table.
func latest[T any](db *gorm.DB, dest *T, kind string) (*T, error) {
	logger.Debug("Loading site settings", map[string]interface{}{
		"kind": kind,
	})

	if err := db.Order("updated_at DESC").Order("id DESC").First(dest).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		logger.Error("Failed to load site settings", err, map[string]interface{}{
			"kind": kind,
		})
		return nil, err
	}
	return dest, nil
}
