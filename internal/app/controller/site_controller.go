package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/malabartrails/tours-backend/internal/app/service"
	apperrors "github.com/malabartrails/tours-backend/internal/errors"
	"github.com/malabartrails/tours-backend/internal/middleware"
)

type SiteController struct {
	siteService service.SiteService
}

func NewSiteController(siteService service.SiteService) *SiteController {
	return &SiteController{
		siteService: siteService,
	}
}

// GetHomepage returns the hero, tour offers and day-out blocks
// GET /api/v1/site/homepage
func (ctrl *SiteController) GetHomepage(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)

	homepage, err := ctrl.siteService.GetHomepage()
	if err != nil {
		log.Error("Failed to build homepage", err)
		apperrors.InternalError(c, "Failed to load homepage")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"homepage": homepage,
	})
}
