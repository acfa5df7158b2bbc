package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/malabartrails/tours-backend/internal/app/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchController_Search(t *testing.T) {
	tests := []struct {
		name         string
		query        string
		tours        int
		destinations int
		route        string
	}{
		{"both kinds", "kerala", 2, 2, "/search?q=kerala"},
		{"tours only", "agra", 1, 0, "/tours?search=agra"},
		{"destinations only", "pink+city", 0, 1, "/destinations?search=pink+city"},
		{"nothing", "atlantis", 0, 0, "/search?q=atlantis"},
		{"empty", "", 0, 0, "/search?q="},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrls, router, _ := setupControllerTest(t, nil)
			router.GET("/search", ctrls.search.Search)

			req := httptest.NewRequest(http.MethodGet, "/search?q="+tt.query, nil)
			w := httptest.NewRecorder()
			router.ServeHTTP(w, req)

			require.Equal(t, http.StatusOK, w.Code)
			var response struct {
				Result service.SearchResult `json:"result"`
				Route  string               `json:"route"`
			}
			decodeBody(t, w, &response)
			assert.Len(t, response.Result.Tours, tt.tours)
			assert.Len(t, response.Result.Destinations, tt.destinations)
			assert.Equal(t, tt.tours+tt.destinations, response.Result.TotalResults)
			assert.Equal(t, tt.route, response.Route)
		})
	}
}

func TestSearchController_QueryTooLong(t *testing.T) {
	ctrls, router, _ := setupControllerTest(t, nil)
	router.GET("/search", ctrls.search.Search)

	req := httptest.NewRequest(http.MethodGet, "/search?q="+strings.Repeat("a", 201), nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VALIDATION_TOO_LONG")
}
