package main

import (
	"strings"

	"github.com/malabartrails/tours-backend/internal/app/model"
	"github.com/malabartrails/tours-backend/internal/app/repository"
	"github.com/malabartrails/tours-backend/pkg/util"
)

type importResult struct {
	Imported          int
	Existing          int
	CategoriesCreated int
}

type tourImporter struct {
	categoryRepo repository.CategoryRepository
	tourRepo     repository.TourRepository
	categories   map[string]*model.Category // by slug
}

func newTourImporter(categoryRepo repository.CategoryRepository, tourRepo repository.TourRepository) *tourImporter {
	return &tourImporter{
		categoryRepo: categoryRepo,
		tourRepo:     tourRepo,
	}
}

// Import stores rows as legacy flat-schema tours. Categories are created on
// demand; tours whose slug already exists are left untouched.
func (im *tourImporter) Import(rows []tourRow, batchSize int) (importResult, error) {
	var result importResult
	if batchSize <= 0 {
		batchSize = 200
	}

	if err := im.loadCategories(); err != nil {
		return result, err
	}

	slugs := make([]string, 0, len(rows))
	for _, row := range rows {
		slugs = append(slugs, util.Slugify(row.Title))
	}
	existing, err := im.tourRepo.ExistingSlugs(slugs)
	if err != nil {
		return result, err
	}

	tours := make([]model.Tour, 0, len(rows))
	taken := make(map[string]bool)
	for i, row := range rows {
		slug := slugs[i]
		if slug == "" || existing[slug] || taken[slug] {
			result.Existing++
			continue
		}
		taken[slug] = true

		category, created, err := im.ensureCategory(row.Category, row.ParentCategory)
		if err != nil {
			return result, err
		}
		result.CategoriesCreated += created

		tours = append(tours, model.Tour{
			Title:            row.Title,
			Slug:             slug,
			Description:      row.Description,
			Itinerary:        row.Itinerary,
			FeaturedImageURL: row.FeaturedImage,
			CategoryID:       &category.ID,
			Subcategories:    model.StringArray(slugifyAll(row.Subcategories)),
			Location:         row.Location,
			Duration:         row.Duration,
			Price:            row.Price,
			IsPublished:      row.Published,
		})
	}

	if err := im.tourRepo.BulkCreate(tours, batchSize); err != nil {
		return result, err
	}
	result.Imported = len(tours)
	return result, nil
}

func (im *tourImporter) loadCategories() error {
	all, err := im.categoryRepo.FindAll()
	if err != nil {
		return err
	}
	im.categories = make(map[string]*model.Category, len(all))
	for i := range all {
		im.categories[all[i].Slug] = &all[i]
	}
	return nil
}

// ensureCategory returns the category for name, creating it and its parent
// when missing. It reports how many categories were created.
func (im *tourImporter) ensureCategory(name, parentName string) (*model.Category, int, error) {
	created := 0

	var parentID *uint
	if strings.TrimSpace(parentName) != "" {
		parent, n, err := im.findOrCreate(parentName, nil)
		if err != nil {
			return nil, 0, err
		}
		created += n
		parentID = &parent.ID
	}

	category, n, err := im.findOrCreate(name, parentID)
	if err != nil {
		return nil, 0, err
	}
	return category, created + n, nil
}

func (im *tourImporter) findOrCreate(name string, parentID *uint) (*model.Category, int, error) {
	slug := util.Slugify(name)
	if category, ok := im.categories[slug]; ok {
		return category, 0, nil
	}

	category := &model.Category{Name: strings.TrimSpace(name), Slug: slug, ParentID: parentID}
	if err := im.categoryRepo.Create(category); err != nil {
		return nil, 0, err
	}
	im.categories[slug] = category
	return category, 1, nil
}

func slugifyAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if slug := util.Slugify(v); slug != "" {
			out = append(out, slug)
		}
	}
	return out
}
