package service

import (
	"net/url"
	"strings"

	"github.com/malabartrails/tours-backend/internal/app/repository"
	"github.com/malabartrails/tours-backend/internal/content"
	"github.com/malabartrails/tours-backend/pkg/logger"
)

// SearchResultLimit caps each result list.
const SearchResultLimit = 24

// SearchResult carries both result lists and the shape flags pages use to
// pick where to send the visitor. The flags depend only on the list sizes.
type SearchResult struct {
	Tours               []content.Summary            `json:"tours"`
	Destinations        []content.DestinationSummary `json:"destinations"`
	// TotalResults is len(Tours)+len(Destinations), so it never exceeds
	// 2*SearchResultLimit even when more rows match.
	TotalResults        int                          `json:"total_results"`
	HasToursOnly        bool                         `json:"has_tours_only"`
	HasDestinationsOnly bool                         `json:"has_destinations_only"`
	HasBoth             bool                         `json:"has_both"`
}

func NewSearchResult(tours []content.Summary, destinations []content.DestinationSummary) SearchResult {
	if tours == nil {
		tours = []content.Summary{}
	}
	if destinations == nil {
		destinations = []content.DestinationSummary{}
	}
	nt, nd := len(tours), len(destinations)
	return SearchResult{
		Tours:               tours,
		Destinations:        destinations,
		TotalResults:        nt + nd,
		HasToursOnly:        nt > 0 && nd == 0,
		HasDestinationsOnly: nd > 0 && nt == 0,
		HasBoth:             nt > 0 && nd > 0,
	}
}

// RoutePath is the listing page to open for query: the tours or destinations
// listing when only one kind matched, the combined results page otherwise.
func (r SearchResult) RoutePath(query string) string {
	q := url.QueryEscape(strings.TrimSpace(query))
	switch {
	case r.HasToursOnly:
		return "/tours?search=" + q
	case r.HasDestinationsOnly:
		return "/destinations?search=" + q
	default:
		return "/search?q=" + q
	}
}

type SearchService interface {
	UnifiedSearch(query string) (SearchResult, error)
}

type searchService struct {
	tourRepo        repository.TourRepository
	destinationRepo repository.DestinationRepository
	resolver        *content.Resolver
}

func NewSearchService(tourRepo repository.TourRepository, destinationRepo repository.DestinationRepository, resolver *content.Resolver) SearchService {
	return &searchService{
		tourRepo:        tourRepo,
		destinationRepo: destinationRepo,
		resolver:        resolver,
	}
}

func (s *searchService) UnifiedSearch(query string) (SearchResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return NewSearchResult(nil, nil), nil
	}

	logger.Debug("Running unified search", map[string]interface{}{
		"query": query,
	})

	tours, err := s.tourRepo.Search(query, SearchResultLimit)
	if err != nil {
		logger.Error("Failed to search tours", err, map[string]interface{}{
			"query": query,
		})
		return SearchResult{}, err
	}

	destinations, err := s.destinationRepo.Search(query, SearchResultLimit)
	if err != nil {
		logger.Error("Failed to search destinations", err, map[string]interface{}{
			"query": query,
		})
		return SearchResult{}, err
	}

	result := NewSearchResult(s.resolver.SummarizeAll(tours), s.resolver.SummarizeDestinations(destinations))

	logger.Info("Unified search completed", map[string]interface{}{
		"query":        query,
		"tours":        len(result.Tours),
		"destinations": len(result.Destinations),
	})
	return result, nil
}
