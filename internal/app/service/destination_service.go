package service

import (
	"errors"

	"github.com/malabartrails/tours-backend/internal/app/repository"
	"github.com/malabartrails/tours-backend/internal/content"
	"github.com/malabartrails/tours-backend/pkg/logger"
	"gorm.io/gorm"
)

var ErrDestinationNotFound = errors.New("destination not found")

type DestinationService interface {
	ListDestinations(filter repository.DestinationFilter) ([]content.DestinationSummary, error)
	GetDestinationBySlug(slug string) (*content.DestinationSummary, error)
}

type destinationService struct {
	destinationRepo repository.DestinationRepository
	resolver        *content.Resolver
}

func NewDestinationService(destinationRepo repository.DestinationRepository, resolver *content.Resolver) DestinationService {
	return &destinationService{
		destinationRepo: destinationRepo,
		resolver:        resolver,
	}
}

func (s *destinationService) ListDestinations(filter repository.DestinationFilter) ([]content.DestinationSummary, error) {
	destinations, err := s.destinationRepo.FindPublished(filter)
	if err != nil {
		logger.Error("Failed to list destinations", err)
		return nil, err
	}
	return s.resolver.SummarizeDestinations(destinations), nil
}

func (s *destinationService) GetDestinationBySlug(slug string) (*content.DestinationSummary, error) {
	destination, err := s.destinationRepo.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			logger.Warn("Destination not found", map[string]interface{}{
				"slug": slug,
			})
			return nil, ErrDestinationNotFound
		}
		logger.Error("Failed to fetch destination", err, map[string]interface{}{
			"slug": slug,
		})
		return nil, err
	}

	summary := s.resolver.SummarizeDestination(destination)
	return &summary, nil
}
