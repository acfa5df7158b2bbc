package service

import (
	"errors"

	"github.com/malabartrails/tours-backend/internal/app/model"
	"github.com/malabartrails/tours-backend/internal/app/repository"
	"github.com/malabartrails/tours-backend/internal/content"
	"github.com/malabartrails/tours-backend/internal/taxonomy"
	"github.com/malabartrails/tours-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrTourNotFound = errors.New("tour not found")

type TourListOptions struct {
	Category    string
	Subcategory string
	Limit       int
}

type TourService interface {
	ListTours(opts TourListOptions) ([]content.Summary, error)
	GetTourBySlug(slug string) (*content.CanonicalTour, error)
	GetTourImages(slug string, section model.ImageSection) ([]content.Image, error)
	PublishedSlugs() ([]string, error)
}

type tourService struct {
	tourRepo repository.TourRepository
	resolver *content.Resolver
}

func NewTourService(tourRepo repository.TourRepository, resolver *content.Resolver) TourService {
	return &tourService{
		tourRepo: tourRepo,
		resolver: resolver,
	}
}

func (s *tourService) ListTours(opts TourListOptions) ([]content.Summary, error) {
	logger.Debug("Listing tours", map[string]interface{}{
		"category":    opts.Category,
		"subcategory": opts.Subcategory,
		"limit":       opts.Limit,
	})

	tours, err := s.tourRepo.FindPublished()
	if err != nil {
		logger.Error("Failed to list tours", err)
		return nil, err
	}

	filtered := taxonomy.ToursByCategory(tours, opts.Category, opts.Subcategory, opts.Limit)

	logger.Info("Tours listed", map[string]interface{}{
		"category":    opts.Category,
		"subcategory": opts.Subcategory,
		"count":       len(filtered),
	})
	return s.resolver.SummarizeAll(filtered), nil
}

func (s *tourService) loadTour(slug string) (*model.Tour, error) {
	tour, err := s.tourRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Tour not found", map[string]interface{}{
				"slug": slug,
			})
			return nil, ErrTourNotFound
		}
		logger.Error("Failed to fetch tour", err, map[string]interface{}{
			"slug": slug,
		})
		return nil, err
	}
	return tour, nil
}

func (s *tourService) GetTourBySlug(slug string) (*content.CanonicalTour, error) {
	logger.Debug("Fetching tour by slug", map[string]interface{}{
		"slug": slug,
	})

	tour, err := s.loadTour(slug)
	if err != nil {
		return nil, err
	}

	view, err := s.resolver.ResolveTour(tour)
	if err != nil {
		if errors.Is(err, content.ErrTourMissing) {
			return nil, ErrTourNotFound
		}
		return nil, err
	}

	logger.Debug("Tour resolved", map[string]interface{}{
		"tour_id":    view.ID,
		"sections":   len(view.Sections),
		"days":       len(view.Itinerary),
		"images":     len(view.Images),
		"structured": len(tour.ItineraryDays) > 0,
	})
	return view, nil
}

func (s *tourService) GetTourImages(slug string, section model.ImageSection) ([]content.Image, error) {
	tour, err := s.loadTour(slug)
	if err != nil {
		return nil, err
	}
	if section == "" {
		return s.resolver.ResolveImages(tour), nil
	}
	return s.resolver.ImagesForSection(tour, section), nil
}

func (s *tourService) PublishedSlugs() ([]string, error) {
	slugs, err := s.tourRepo.PublishedSlugs()
	if err != nil {
		logger.Error("Failed to list published slugs", err)
		return nil, err
	}
	if slugs == nil {
		slugs = []string{}
	}
	return slugs, nil
}
