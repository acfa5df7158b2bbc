package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/malabartrails/tours-backend/internal/app/service"
	apperrors "github.com/malabartrails/tours-backend/internal/errors"
	"github.com/malabartrails/tours-backend/internal/middleware"
)

const maxSearchQueryLength = 200

type SearchController struct {
	searchService service.SearchService
}

func NewSearchController(searchService service.SearchService) *SearchController {
	return &SearchController{
		searchService: searchService,
	}
}

// Search runs the unified tour and destination search
// GET /api/v1/search?q=
func (ctrl *SearchController) Search(c *gin.Context) {
	log := middleware.GetLoggerFromContext(c)
	query := c.Query("q")

	if len([]rune(query)) > maxSearchQueryLength {
		apperrors.BadRequest(c, apperrors.ValidationTooLong, "Search text is too long")
		return
	}

	result, err := ctrl.searchService.UnifiedSearch(query)
	if err != nil {
		log.Error("Search failed", err, map[string]interface{}{
			"query": query,
		})
		info := apperrors.ParseError(err, "search")
		apperrors.RespondWithError(c, http.StatusInternalServerError, info.Code, info.Message)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"query":  query,
		"result": result,
		"route":  result.RoutePath(query),
	})
}
