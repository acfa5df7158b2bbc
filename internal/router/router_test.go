package router

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/malabartrails/tours-backend/config"
	"github.com/malabartrails/tours-backend/internal/app/controller"
	"github.com/malabartrails/tours-backend/internal/app/repository"
	"github.com/malabartrails/tours-backend/internal/app/service"
	"github.com/malabartrails/tours-backend/internal/content"
	"github.com/malabartrails/tours-backend/internal/db"
	"github.com/malabartrails/tours-backend/internal/middleware"
	"github.com/malabartrails/tours-backend/pkg/sanitize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRouterTest(t *testing.T) http.Handler {
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

	cfg := &config.Config{
		Server: config.ServerConfig{GinMode: gin.TestMode},
		CORS:   config.CORSConfig{AllowedOrigins: []string{"https://malabartrails.example"}},
	}

	r := NewRouter(
		controller.NewTourController(service.NewTourService(tourRepo, resolver)),
		controller.NewCategoryController(service.NewCategoryService(categoryRepo, tourRepo, resolver)),
		controller.NewDestinationController(service.NewDestinationService(destinationRepo, resolver)),
		controller.NewSearchController(service.NewSearchService(tourRepo, destinationRepo, resolver)),
		controller.NewInquiryController(service.NewInquiryService(repository.NewInquiryRepository(testDB), nil)),
		controller.NewSiteController(service.NewSiteService(repository.NewSiteSettingsRepository(testDB), tourRepo, resolver)),
		middleware.NewIPRateLimiter(1, 2),
		cfg,
	)
	return r.Setup()
}

func TestRouter_Routes(t *testing.T) {
	handler := setupRouterTest(t)

	paths := []string{
		"/health",
		"/api/v1/health",
		"/api/v1/tours",
		"/api/v1/tours/slugs",
		"/api/v1/tours/munnar-spice-trail",
		"/api/v1/tours/munnar-spice-trail/images?section=gallery",
		"/api/v1/categories",
		"/api/v1/categories/kerala-travels",
		"/api/v1/categories/kerala-travels/tours",
		"/api/v1/destinations",
		"/api/v1/destinations/munnar",
		"/api/v1/search?q=munnar",
		"/api/v1/site/homepage",
	}

	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)
			assert.Equal(t, http.StatusOK, w.Code, w.Body.String())
			assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))
		})
	}
}

func TestRouter_SearchIsThrottled(t *testing.T) {
	handler := setupRouterTest(t)

	codes := []int{}
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/api/v1/search?q=kochi", nil)
		req.RemoteAddr = "203.0.113.9:4000"
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		codes = append(codes, w.Code)
	}
	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
}

func TestRouter_CORS(t *testing.T) {
	handler := setupRouterTest(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/inquiries", nil)
	req.Header.Set("Origin", "https://malabartrails.example")
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://malabartrails.example", w.Header().Get("Access-Control-Allow-Origin"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "https://evil.example")
	w = httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}
