package content

import (
	"github.com/malabartrails/tours-backend/internal/app/model"
	"github.com/malabartrails/tours-backend/internal/taxonomy"
)

// ResolveTour builds the canonical view of a tour. A nil record is reported
// as ErrTourMissing so callers can render "not found" instead of a broken page.
func (r *Resolver) ResolveTour(t *model.Tour) (*CanonicalTour, error) {
	if t == nil {
		return nil, ErrTourMissing
	}

	images := r.ResolveImages(t)
	subcategories := []string{}
	if len(t.Subcategories) > 0 {
		subcategories = append(subcategories, t.Subcategories...)
	}

	category := ""
	if t.Category != nil {
		category = t.Category.Name
	}

	return &CanonicalTour{
		ID:            t.ID,
		Title:         t.Title,
		Slug:          t.Slug,
		Description:   t.Description,
		Overview:      r.ResolveOverviewContent(t),
		Category:      category,
		Categories:    taxonomy.TourCategories(t),
		Subcategories: subcategories,
		Location:      t.Location,
		Duration:      max(t.Duration, 1),
		Price:         t.Price,
		Sections:      r.ResolveSections(t),
		Itinerary:     ResolveItinerary(t),
		Images:        images,
		HeroImage:     heroImage(images),
		IsPublished:   t.IsPublished,
	}, nil
}

// Summary is the lighter card used by listing grids and menus.
type Summary struct {
	ID         uint     `json:"id"`
	Title      string   `json:"title"`
	Slug       string   `json:"slug"`
	Category   string   `json:"category"`
	Categories []string `json:"categories"`
	Location   string   `json:"location"`
	Duration   int      `json:"duration"`
	Price      string   `json:"price,omitempty"`
	ImageURL   string   `json:"image_url"`
}

func (r *Resolver) Summarize(t *model.Tour) Summary {
	summary := Summary{
		ID:         t.ID,
		Title:      t.Title,
		Slug:       t.Slug,
		Categories: taxonomy.TourCategories(t),
		Location:   t.Location,
		Duration:   max(t.Duration, 1),
		Price:      t.Price,
		ImageURL:   r.sanitizer.PlaceholderURL(),
	}
	if t.Category != nil {
		summary.Category = t.Category.Name
	}
	if hero := heroImage(r.ResolveImages(t)); hero != nil {
		summary.ImageURL = hero.URL
	}
	return summary
}

func (r *Resolver) SummarizeAll(tours []model.Tour) []Summary {
	out := make([]Summary, 0, len(tours))
	for i := range tours {
		out = append(out, r.Summarize(&tours[i]))
	}
	return out
}
