package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/malabartrails/tours-backend/internal/app/service"
	apperrors "github.com/malabartrails/tours-backend/internal/errors"
	"github.com/malabartrails/tours-backend/internal/middleware"
)

type CategoryController struct {
	categoryService service.CategoryService
}

func NewCategoryController(categoryService service.CategoryService) *CategoryController {
	return &CategoryController{
		categoryService: categoryService,
	}
}

// GetCategoryTree returns top-level categories with their subcategories
// GET /api/v1/categories
func (ctrl *CategoryController) GetCategoryTree(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	tree, err := ctrl.categoryService.GetCategoryTree()
	if err != nil {
		log.Error("Failed to build category tree", err)
		apperrors.InternalError(c, "Failed to load categories")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"categories": tree,
	})
}

// GetCategoryPage GET /api/v1/categories/:slug
func (ctrl *CategoryController) GetCategoryPage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	slug := c.Param("slug")

	page, err := ctrl.categoryService.GetCategoryPage(slug)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			apperrors.NotFound(c, apperrors.CategoryNotFound, "Category not found")
			return
		}
		log.Error("Failed to build category page", err, map[string]interface{}{
			"slug": slug,
		})
		apperrors.InternalError(c, "Failed to load category")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category": page,
	})
}

// GetMenuTours is the navigation dropdown fetch
// GET /api/v1/categories/:slug/tours?limit=
func (ctrl *CategoryController) GetMenuTours(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	slug := c.Param("slug")

	limit, ok := queryLimit(c)
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidRange, "limit must be a non-negative number")
		return
	}

	tours, err := ctrl.categoryService.MenuTours(slug, limit)
	if err != nil {
		log.Error("Failed to load menu tours", err, map[string]interface{}{
			"slug": slug,
		})
		apperrors.InternalError(c, "Failed to load tours")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"tours": tours,
		"count": len(tours),
	})
}
