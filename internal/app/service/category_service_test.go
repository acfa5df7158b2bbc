package service

import (
	"testing"

	"github.com/malabartrails/tours-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCategoryService_GetCategoryTree(t *testing.T) {
	env := setupServiceTest(t)
	env.seedKerala(t)
	svc := NewCategoryService(env.categories, env.tours, env.resolver)

	tree, err := svc.GetCategoryTree()
	require.NoError(t, err)
	require.Len(t, tree, 2)
	assert.Equal(t, "Golden Triangle", tree[0].Name)
	assert.Equal(t, "Kerala Travels", tree[1].Name)
	require.Len(t, tree[1].Children, 1)
	assert.Equal(t, "spice-tours", tree[1].Children[0].Slug)
}

func TestCategoryService_GetCategoryPage(t *testing.T) {
	env := setupServiceTest(t)
	kerala, spice, triangle := env.seedKerala(t)
	svc := NewCategoryService(env.categories, env.tours, env.resolver)

	env.createTour(t, &model.Tour{Title: "Kochi Walk", CategoryID: &kerala.ID, IsPublished: true})
	env.createTour(t, &model.Tour{Title: "Cardamom Hills", CategoryID: &spice.ID, IsPublished: true})
	env.createTour(t, &model.Tour{Title: "Jaipur Forts", CategoryID: &triangle.ID, IsPublished: true})

	t.Run("parent page lists child tours and subcategories", func(t *testing.T) {
		page, err := svc.GetCategoryPage("kerala-travels")
		require.NoError(t, err)
		assert.Equal(t, "Kerala Travels", page.Name)
		assert.Empty(t, page.ParentName)
		assert.Len(t, page.Tours, 2)
		require.Len(t, page.Subcategories, 1)
		assert.Equal(t, "Spice Tours", page.Subcategories[0].Name)
	})

	t.Run("child page", func(t *testing.T) {
		page, err := svc.GetCategoryPage("spice-tours")
		require.NoError(t, err)
		assert.Equal(t, "Kerala Travels", page.ParentName)
		assert.Equal(t, "kerala-travels", page.ParentSlug)
		require.Len(t, page.Tours, 1)
		assert.Equal(t, "cardamom-hills", page.Tours[0].Slug)
		assert.Empty(t, page.Subcategories)
	})

	t.Run("fuzzy query", func(t *testing.T) {
		page, err := svc.GetCategoryPage("golden")
		require.NoError(t, err)
		assert.Equal(t, "Golden Triangle", page.Name)
	})

	t.Run("unknown", func(t *testing.T) {
		_, err := svc.GetCategoryPage("ayurveda")
		assert.ErrorIs(t, err, ErrCategoryNotFound)
	})
}

func TestCategoryService_MenuTours(t *testing.T) {
	env := setupServiceTest(t)
	kerala, _, _ := env.seedKerala(t)
	svc := NewCategoryService(env.categories, env.tours, env.resolver)

	for _, title := range []string{"One", "Two", "Three"} {
		env.createTour(t, &model.Tour{Title: title, CategoryID: &kerala.ID, IsPublished: true})
	}

	tours, err := svc.MenuTours("kerala-travels", 2)
	require.NoError(t, err)
	assert.Len(t, tours, 2)

	tours, err = svc.MenuTours("kerala-travels", 0)
	require.NoError(t, err)
	assert.Len(t, tours, 3)

	tours, err = svc.MenuTours("golden-triangle", 0)
	require.NoError(t, err)
	assert.Empty(t, tours)
}
