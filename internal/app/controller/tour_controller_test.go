package controller

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/malabartrails/tours-backend/internal/app/model"
	"github.com/malabartrails/tours-backend/internal/content"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTourController_ListTours(t *testing.T) {
	ctrls, router, _ := setupControllerTest(t, nil)
	router.GET("/tours", ctrls.tours.ListTours)

	req := httptest.NewRequest(http.MethodGet, "/tours?category=kerala-travels", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Tours []content.Summary `json:"tours"`
		Count int               `json:"count"`
	}
	decodeBody(t, w, &response)
	assert.Equal(t, 2, response.Count)
	for _, tour := range response.Tours {
		assert.Contains(t, tour.Categories, "Kerala Travels")
	}
}

func TestTourController_ListTours_BadLimit(t *testing.T) {
	ctrls, router, _ := setupControllerTest(t, nil)
	router.GET("/tours", ctrls.tours.ListTours)

	req := httptest.NewRequest(http.MethodGet, "/tours?limit=-3", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_INVALID_RANGE")
}

func TestTourController_GetTourBySlug_Legacy(t *testing.T) {
	ctrls, router, _ := setupControllerTest(t, nil)
	router.GET("/tours/:slug", ctrls.tours.GetTourBySlug)

	req := httptest.NewRequest(http.MethodGet, "/tours/alleppey-houseboat-escape", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Tour content.CanonicalTour `json:"tour"`
	}
	decodeBody(t, w, &response)

	tour := response.Tour
	assert.Equal(t, "Alleppey Houseboat Escape", tour.Title)
	require.Len(t, tour.Itinerary, 2)
	assert.Equal(t, "Arrival", tour.Itinerary[0].Title)
	assert.Equal(t, model.ActivityArrival, tour.Itinerary[0].ActivityType)
	assert.Equal(t, "Village walk", tour.Itinerary[1].Title)
	require.Len(t, tour.Images, 1)
	assert.True(t, tour.Images[0].Featured)
	assert.Equal(t, "/images/tours/alleppey-houseboat.jpg", tour.Images[0].URL)
}

func TestTourController_GetTourBySlug_Structured(t *testing.T) {
	ctrls, router, _ := setupControllerTest(t, nil)
	router.GET("/tours/:slug", ctrls.tours.GetTourBySlug)

	req := httptest.NewRequest(http.MethodGet, "/tours/munnar-spice-trail", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		Tour content.CanonicalTour `json:"tour"`
	}
	decodeBody(t, w, &response)

	tour := response.Tour
	require.Len(t, tour.Itinerary, 3)
	assert.Equal(t, "Arrive in Munnar", tour.Itinerary[0].Title)
	require.Len(t, tour.Itinerary[0].Activities, 2)
	assert.Equal(t, model.ActivityArrival, tour.Itinerary[0].Activities[0].ActivityType)
	require.Len(t, tour.Sections, 2)
	assert.Equal(t, model.SectionOverview, tour.Sections[0].Type)
	assert.Equal(t, "<p>Walk the plantations that made Kerala famous.</p>", tour.Overview)
	assert.Equal(t, []string{"Spice Tours", "Kerala Travels"}, tour.Categories)
}

func TestTourController_GetTourBySlug_NotFound(t *testing.T) {
	ctrls, router, _ := setupControllerTest(t, nil)
	router.GET("/tours/:slug", ctrls.tours.GetTourBySlug)

	req := httptest.NewRequest(http.MethodGet, "/tours/atlantis-cruise", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "TOUR_NOT_FOUND")
}

func TestTourController_GetTourImages(t *testing.T) {
	ctrls, router, _ := setupControllerTest(t, nil)
	router.GET("/tours/:slug/images", ctrls.tours.GetTourImages)

	req := httptest.NewRequest(http.MethodGet, "/tours/munnar-spice-trail/images?section=banner", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Images []content.Image `json:"images"`
	}
	decodeBody(t, w, &response)
	require.Len(t, response.Images, 1)
	assert.Equal(t, "/images/tours/munnar-banner.jpg", response.Images[0].URL)

	req = httptest.NewRequest(http.MethodGet, "/tours/munnar-spice-trail/images?section=poster", nil)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTourController_ListPublishedSlugs(t *testing.T) {
	ctrls, router, _ := setupControllerTest(t, nil)
	router.GET("/tours/slugs", ctrls.tours.ListPublishedSlugs)

	req := httptest.NewRequest(http.MethodGet, "/tours/slugs", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var response struct {
		Slugs []string `json:"slugs"`
	}
	decodeBody(t, w, &response)
	assert.Equal(t, []string{"alleppey-houseboat-escape", "delhi-agra-jaipur-classic", "munnar-spice-trail"}, response.Slugs)
}
