package service

import (
	"testing"

	"github.com/malabartrails/tours-backend/internal/app/model"
	"github.com/malabartrails/tours-backend/internal/app/repository"
	"github.com/malabartrails/tours-backend/internal/content"
	"github.com/malabartrails/tours-backend/internal/db"
	"github.com/malabartrails/tours-backend/pkg/sanitize"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type testEnv struct {
	db           *gorm.DB
	tours        repository.TourRepository
	categories   repository.CategoryRepository
	destinations repository.DestinationRepository
	resolver     *content.Resolver
}

func setupServiceTest(t *testing.T) *testEnv {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	t.Cleanup(func() { db.CleanupTestDB(testDB) })

	return &testEnv{
		db:           testDB,
		tours:        repository.NewTourRepository(testDB),
		categories:   repository.NewCategoryRepository(testDB),
		destinations: repository.NewDestinationRepository(testDB),
		resolver: content.NewResolver(sanitize.New(sanitize.Options{
			AllowedHosts:        []string{"cdn.example.com"},
			AllowedPathPrefixes: []string{"/images/"},
		})),
	}
}

// seedKerala creates "Kerala Travels" > "Spice Tours" and "Golden Triangle".
func (e *testEnv) seedKerala(t *testing.T) (kerala, spice, triangle *model.Category) {
	kerala = &model.Category{Name: "Kerala Travels"}
	require.NoError(t, e.categories.Create(kerala))
	spice = &model.Category{Name: "Spice Tours", ParentID: &kerala.ID}
	require.NoError(t, e.categories.Create(spice))
	triangle = &model.Category{Name: "Golden Triangle"}
	require.NoError(t, e.categories.Create(triangle))
	return kerala, spice, triangle
}

func (e *testEnv) createTour(t *testing.T, tour *model.Tour) *model.Tour {
	require.NoError(t, e.tours.Create(tour))
	return tour
}
