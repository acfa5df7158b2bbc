package content

import (
	"cmp"
	"slices"
	"strings"

	"github.com/malabartrails/tours-backend/internal/app/model"
	"github.com/malabartrails/tours-backend/pkg/logger"
)

// ResolveImages merges the featured slot and the active gallery into one
// ordered set. The featured image leads unless the gallery already holds the
// same URL.
func (r *Resolver) ResolveImages(t *model.Tour) []Image {
	if t == nil {
		return []Image{}
	}

	active := make([]model.TourImage, 0, len(t.Images))
	for _, img := range t.Images {
		if img.IsActive {
			active = append(active, img)
		}
	}
	slices.SortStableFunc(active, func(a, b model.TourImage) int {
		return cmp.Compare(a.Order, b.Order)
	})

	gallery := make([]Image, 0, len(active)+1)
	for _, img := range active {
		url, ok := r.sanitizer.SanitizeImageURL(img.URL)
		if !ok {
			logger.Debug("Gallery image URL rejected, using placeholder", map[string]interface{}{
				"tour_id":  t.ID,
				"image_id": img.ID,
			})
			url = r.sanitizer.PlaceholderURL()
		}
		gallery = append(gallery, Image{
			ID:      img.ID,
			URL:     url,
			Alt:     altOr(img.Alt, t.Title),
			Caption: img.Caption,
			Order:   img.Order,
			Section: img.Section.Normalize(),
		})
	}

	featured := strings.TrimSpace(t.FeaturedImageURL)
	if featured == "" {
		return gallery
	}

	featuredURL, ok := r.sanitizer.SanitizeImageURL(featured)
	if !ok {
		logger.Debug("Featured image URL rejected", map[string]interface{}{
			"tour_id": t.ID,
		})
		if len(gallery) > 0 {
			return gallery
		}
		featuredURL = r.sanitizer.PlaceholderURL()
	}

	for _, img := range gallery {
		if img.URL == featuredURL {
			return gallery
		}
	}

	synthetic := Image{
		URL:      featuredURL,
		Alt:      t.Title,
		Order:    0,
		Section:  model.ImageOverview,
		Featured: true,
	}
	return append([]Image{synthetic}, gallery...)
}

// ImagesForSection returns the resolved images placed in one section. The
// itinerary panel also shows gallery and overview pictures.
func (r *Resolver) ImagesForSection(t *model.Tour, section model.ImageSection) []Image {
	section = section.Normalize()
	out := []Image{}
	for _, img := range r.ResolveImages(t) {
		if img.Section == section {
			out = append(out, img)
			continue
		}
		if section == model.ImageItinerary && (img.Section == model.ImageGallery || img.Section == model.ImageOverview) {
			out = append(out, img)
		}
	}
	return out
}

// heroImage prefers a banner placement and falls back to the first image.
func heroImage(images []Image) *Image {
	if len(images) == 0 {
		return nil
	}
	for i := range images {
		if images[i].Section == model.ImageBanner {
			hero := images[i]
			return &hero
		}
	}
	hero := images[0]
	return &hero
}

func altOr(alt, fallback string) string {
	if strings.TrimSpace(alt) != "" {
		return alt
	}
	return fallback
}
