package repository

import (
	"testing"

	"github.com/malabartrails/tours-backend/internal/app/model"
	"github.com/malabartrails/tours-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestDestinationRepository(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	defer db.CleanupTestDB(testDB)

	repo := NewDestinationRepository(testDB)
	destinations := []*model.Destination{
		{Title: "Fort Kochi", Slug: "fort-kochi", State: "Kerala", Region: "South India", IsPublished: true},
		{Title: "Munnar", Slug: "munnar", Description: "Hill station in Kerala", State: "Kerala", Region: "South India", IsPublished: true},
		{Title: "Jaipur", Slug: "jaipur", State: "Rajasthan", Region: "North India", IsPublished: true},
		{Title: "Secret Beach", Slug: "secret-beach", State: "Kerala", IsPublished: false},
	}
	for _, d := range destinations {
		require.NoError(t, repo.Create(d))
	}

	t.Run("search by state", func(t *testing.T) {
		found, err := repo.Search("KERALA", 0)
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("search by region", func(t *testing.T) {
		found, err := repo.Search("north", 0)
		require.NoError(t, err)
		require.Len(t, found, 1)
		assert.Equal(t, "Jaipur", found[0].Title)
	})

	t.Run("filter", func(t *testing.T) {
		found, err := repo.FindPublished(DestinationFilter{State: "kerala"})
		require.NoError(t, err)
		assert.Len(t, found, 2)
	})

	t.Run("find by slug", func(t *testing.T) {
		found, err := repo.FindBySlug("munnar")
		require.NoError(t, err)
		assert.Equal(t, "Munnar", found.Title)

		_, err = repo.FindBySlug("secret-beach")
		assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
	})
}
