package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/malabartrails/tours-backend/internal/app/repository"
	"github.com/malabartrails/tours-backend/internal/app/service"
	apperrors "github.com/malabartrails/tours-backend/internal/errors"
	"github.com/malabartrails/tours-backend/internal/middleware"
)

type DestinationController struct {
	destinationService service.DestinationService
}

func NewDestinationController(destinationService service.DestinationService) *DestinationController {
	return &DestinationController{
		destinationService: destinationService,
	}
}

// ListDestinations GET /api/v1/destinations?state=&region=&limit=
func (ctrl *DestinationController) ListDestinations(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	limit, ok := queryLimit(c)
	if !ok {
		apperrors.BadRequest(c, apperrors.ValidationInvalidRange, "limit must be a non-negative number")
		return
	}

	filter := repository.DestinationFilter{
		State:  c.Query("state"),
		Region: c.Query("region"),
		Limit:  limit,
	}

	destinations, err := ctrl.destinationService.ListDestinations(filter)
	if err != nil {
		log.Error("Failed to list destinations", err, map[string]interface{}{
			"state":  filter.State,
			"region": filter.Region,
		})
		apperrors.InternalError(c, "Failed to load destinations")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"destinations": destinations,
		"count":        len(destinations),
	})
}

// GetDestinationBySlug GET /api/v1/destinations/:slug
func (ctrl *DestinationController) GetDestinationBySlug(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	slug := c.Param("slug")

	destination, err := ctrl.destinationService.GetDestinationBySlug(slug)
	if err != nil {
		if errors.Is(err, service.ErrDestinationNotFound) {
			apperrors.NotFound(c, apperrors.DestinationNotFound, "Destination not found")
			return
		}
		log.Error("Failed to fetch destination", err, map[string]interface{}{
			"slug": slug,
		})
		apperrors.InternalError(c, "Failed to load destination")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"destination": destination,
	})
}
