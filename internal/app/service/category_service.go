package service

import (
	"errors"

	"github.com/malabartrails/tours-backend/internal/app/model"
	"github.com/malabartrails/tours-backend/internal/app/repository"
	"github.com/malabartrails/tours-backend/internal/content"
	"github.com/malabartrails/tours-backend/internal/taxonomy"
	"github.com/malabartrails/tours-backend/pkg/logger"
)

var ErrCategoryNotFound = errors.New("category not found")

// DefaultMenuLimit caps how many tours a navigation dropdown shows per category.
const DefaultMenuLimit = 8

// CategoryPage is everything the dynamic category page renders.
type CategoryPage struct {
	ID            uint              `json:"id"`
	Name          string            `json:"name"`
	Slug          string            `json:"slug"`
	ParentName    string            `json:"parent_name,omitempty"`
	ParentSlug    string            `json:"parent_slug,omitempty"`
	Subcategories []taxonomy.Node   `json:"subcategories"`
	Tours         []content.Summary `json:"tours"`
}

type CategoryService interface {
	GetCategoryTree() ([]taxonomy.Node, error)
	GetCategoryPage(query string) (*CategoryPage, error)
	MenuTours(categorySlug string, limit int) ([]content.Summary, error)
}

type categoryService struct {
	categoryRepo repository.CategoryRepository
	tourRepo     repository.TourRepository
	resolver     *content.Resolver
}

func NewCategoryService(categoryRepo repository.CategoryRepository, tourRepo repository.TourRepository, resolver *content.Resolver) CategoryService {
	return &categoryService{
		categoryRepo: categoryRepo,
		tourRepo:     tourRepo,
		resolver:     resolver,
	}
}

func (s *categoryService) GetCategoryTree() ([]taxonomy.Node, error) {
	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		logger.Error("Failed to load categories", err)
		return nil, err
	}
	return taxonomy.BuildTree(categories), nil
}

// GetCategoryPage resolves query the way the site's category URLs do: exact
// slug, then name, then a containment match.
func (s *categoryService) GetCategoryPage(query string) (*CategoryPage, error) {
	logger.Debug("Building category page", map[string]interface{}{
		"query": query,
	})

	categories, err := s.categoryRepo.FindAll()
	if err != nil {
		logger.Error("Failed to load categories", err)
		return nil, err
	}

	category := taxonomy.FindCategory(categories, query)
	if category == nil {
		logger.Warn("Category not found", map[string]interface{}{
			"query": query,
		})
		return nil, ErrCategoryNotFound
	}

	tours, err := s.tourRepo.FindPublished()
	if err != nil {
		logger.Error("Failed to load tours for category page", err, map[string]interface{}{
			"category_id": category.ID,
		})
		return nil, err
	}

	page := &CategoryPage{
		ID:            category.ID,
		Name:          category.Name,
		Slug:          category.Slug,
		ParentName:    category.ParentName(),
		Subcategories: childNodes(categories, category.ID),
		Tours:         s.resolver.SummarizeAll(taxonomy.ToursByCategory(tours, category.Slug, "", 0)),
	}
	if category.Parent != nil {
		page.ParentSlug = category.Parent.Slug
	}

	logger.Info("Category page built", map[string]interface{}{
		"category": category.Slug,
		"tours":    len(page.Tours),
	})
	return page, nil
}

// MenuTours is the lazy fetch behind a navigation dropdown.
func (s *categoryService) MenuTours(categorySlug string, limit int) ([]content.Summary, error) {
	if limit <= 0 {
		limit = DefaultMenuLimit
	}

	tours, err := s.tourRepo.FindPublished()
	if err != nil {
		logger.Error("Failed to load tours for menu", err, map[string]interface{}{
			"category": categorySlug,
		})
		return nil, err
	}
	return s.resolver.SummarizeAll(taxonomy.ToursByCategory(tours, categorySlug, "", limit)), nil
}

func childNodes(categories []model.Category, parentID uint) []taxonomy.Node {
	for _, node := range taxonomy.BuildTree(categories) {
		if node.ID == parentID {
			return node.Children
		}
	}
	return []taxonomy.Node{}
}
