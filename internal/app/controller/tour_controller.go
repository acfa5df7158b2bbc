package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/malabartrails/tours-backend/internal/app/model"
	"github.com/malabartrails/tours-backend/internal/app/service"
	apperrors "github.com/malabartrails/tours-backend/internal/errors"
	"github.com/malabartrails/tours-backend/internal/middleware"
)

type TourController struct {
	tourService service.TourService
}

func NewTourController(tourService service.TourService) *TourController {
	return &TourController{
		tourService: tourService,
	}
}

// ListTours returns published tour cards, optionally narrowed by category
// GET /api/v1/tours?category=&subcategory=&limit=
func (ctrl *TourController) ListTours(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	limit, ok := queryLimit(c)
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidRange, "limit must be a non-negative number")
		return
	}

	opts := service.TourListOptions{
		Category:    c.Query("category"),
		Subcategory: c.Query("subcategory"),
		Limit:       limit,
	}

	tours, err := ctrl.tourService.ListTours(opts)
	if err != nil {
		log.Error("Failed to list tours", err, map[string]interface{}{
			"category": opts.Category,
		})
		apperrors.InternalError(c, "Failed to load tours")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tours": tours,
		"count": len(tours),
	})
}

// ListPublishedSlugs returns every published slug for static builds
// GET /api/v1/tours/slugs
func (ctrl *TourController) ListPublishedSlugs(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	slugs, err := ctrl.tourService.PublishedSlugs()
	if err != nil {
		log.Error("Failed to list tour slugs", err)
		apperrors.InternalError(c, "Failed to load tours")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"slugs": slugs,
		"count": len(slugs),
	})
}

// GetTourBySlug returns the canonical view of one tour
// GET /api/v1/tours/:slug
func (ctrl *TourController) GetTourBySlug(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	slug := c.Param("slug")

	tour, err := ctrl.tourService.GetTourBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrTourNotFound) {
			log.Warn("Tour not found", map[string]interface{}{
				"slug": slug,
			})
			apperrors.NotFound(c, apperrors.TourNotFound, "Tour not found")
			return
		}
		log.Error("Failed to fetch tour", err, map[string]interface{}{
			"slug": slug,
		})
		apperrors.InternalError(c, "Failed to load tour")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tour": tour,
	})
}

// GetTourImages returns a tour's resolved images, optionally for one placement
// GET /api/v1/tours/:slug/images?section=
func (ctrl *TourController) GetTourImages(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	slug := c.Param("slug")

	section := model.ImageSection(c.Query("section"))
	if section != "" && section.Normalize() != section {
		apperrors.BadRequest(c, apperrors.ValidationInvalidFormat, "section must be one of banner, overview, itinerary, gallery")
		return
	}

	images, err := ctrl.tourService.GetTourImages(slug, section)
	if err != nil {
		if errors.Is(err, service.ErrTourNotFound) {
			apperrors.NotFound(c, apperrors.TourNotFound, "Tour not found")
			return
		}
		log.Error("Failed to fetch tour images", err, map[string]interface{}{
			"slug":    slug,
			"section": section,
		})
		apperrors.InternalError(c, "Failed to load images")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"images": images,
		"count":  len(images),
	})
}
