package repository

import (
	"testing"

	"github.com/malabartrails/tours-backend/internal/app/model"
	"github.com/malabartrails/tours-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCategoryRepository_CreateAndFind(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	defer db.CleanupTestDB(testDB)

	repo := NewCategoryRepository(testDB)
	parent, child := createKeralaCategories(t, repo)

	assert.Equal(t, "kerala-travels", parent.Slug)
	assert.Equal(t, "spice-tours", child.Slug)

	found, err := repo.FindBySlug("spice-tours")
	require.NoError(t, err)
	require.NotNil(t, found.Parent)
	assert.Equal(t, "Kerala Travels", found.ParentName())

	all, err := repo.FindAll()
	require.NoError(t, err)
	assert.Len(t, all, 2)

	children, err := repo.FindChildren(parent.ID)
	require.NoError(t, err)
	require.Len(t, children, 1)
	assert.Equal(t, child.ID, children[0].ID)

	_, err = repo.FindBySlug("nope")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCategoryRepository_DepthLimit(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	defer db.CleanupTestDB(testDB)

	repo := NewCategoryRepository(testDB)
	parent, child := createKeralaCategories(t, repo)

	grandchild := &model.Category{Name: "Cardamom Hills", ParentID: &child.ID}
	err = repo.Create(grandchild)
	assert.ErrorIs(t, err, model.ErrCategoryTooDeep)

	// A category with children cannot be moved under another one.
	other := &model.Category{Name: "Golden Triangle"}
	require.NoError(t, repo.Create(other))
	parent.ParentID = &other.ID
	err = testDB.Save(parent).Error
	assert.ErrorIs(t, err, model.ErrCategoryTooDeep)
}
