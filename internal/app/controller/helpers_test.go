package controller

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/malabartrails/tours-backend/internal/app/repository"
	"github.com/malabartrails/tours-backend/internal/app/service"
	"github.com/malabartrails/tours-backend/internal/content"
	"github.com/malabartrails/tours-backend/internal/db"
	"github.com/malabartrails/tours-backend/pkg/sanitize"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type stubLimiter struct {
	allowed bool
}

func (l stubLimiter) Allow(ctx context.Context, identifier string) (bool, error) {
	return l.allowed, nil
}

type controllers struct {
	tours        *TourController
	categories   *CategoryController
	destinations *DestinationController
	search       *SearchController
	inquiries    *InquiryController
	site         *SiteController
}

// setupControllerTest builds every controller over a seeded in-memory store.
func setupControllerTest(t *testing.T, limiter service.Limiter) (*controllers, *gin.Engine, *gorm.DB) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() {
		db.CleanupTestDB(testDB)
	})
	require.NoError(t, db.Seed(testDB))

	resolver := content.NewResolver(sanitize.New(sanitize.Options{
		AllowedPathPrefixes: []string{"/images/"},
	}))
	tourRepo := repository.NewTourRepository(testDB)
	categoryRepo := repository.NewCategoryRepository(testDB)
	destinationRepo := repository.NewDestinationRepository(testDB)

	ctrls := &controllers{
		tours:        NewTourController(service.NewTourService(tourRepo, resolver)),
		categories:   NewCategoryController(service.NewCategoryService(categoryRepo, tourRepo, resolver)),
		destinations: NewDestinationController(service.NewDestinationService(destinationRepo, resolver)),
		search:       NewSearchController(service.NewSearchService(tourRepo, destinationRepo, resolver)),
		inquiries:    NewInquiryController(service.NewInquiryService(repository.NewInquiryRepository(testDB), limiter)),
		site:         NewSiteController(service.NewSiteService(repository.NewSiteSettingsRepository(testDB), tourRepo, resolver)),
	}

	gin.SetMode(gin.TestMode)
	return ctrls, gin.New(), testDB
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), v))
}
