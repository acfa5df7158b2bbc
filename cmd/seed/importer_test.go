package main

import (
	"testing"

	"github.com/malabartrails/tours-backend/internal/app/model"
	"github.com/malabartrails/tours-backend/internal/app/repository"
	"github.com/malabartrails/tours-backend/internal/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func newWorkbook(t *testing.T, rows [][]interface{}) *excelize.File {
	f := excelize.NewFile()
	t.Cleanup(func() { f.Close() })

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	return f
}

var legacyHeader = []interface{}{
	"Title", "Category", "Parent_Category", "Subcategories", "Description",
	"Itinerary", "Featured_Image_URL", "Location", "Duration", "Price", "Published",
}

func TestReadTourRows(t *testing.T) {
	f := newWorkbook(t, [][]interface{}{
		legacyHeader,
		{"Alleppey Houseboat Escape", "Backwaters", "Kerala Travels", "Houseboats, Village Life", "Two days afloat",
			"Day 1: Arrival\nDay 2: Departure", "/images/tours/alleppey.jpg", "Alleppey", "2", "₹14,500", "yes"},
		{"", "Backwaters"},
		{"Jaipur Day Out", "Day Outs", "", "", "", "", "", "Jaipur", "one", "", "no"},
		{"alleppey houseboat escape", "Backwaters"},
	})

	rows, report, err := readTourRows(f)
	require.NoError(t, err)

	assert.Equal(t, 4, report.TotalRows)
	assert.Equal(t, 2, report.Valid)
	assert.Equal(t, 2, report.Skipped)
	assert.Equal(t, 1, report.Duplicates)
	assert.Len(t, report.Problems, 2)

	require.Len(t, rows, 2)
	first := rows[0]
	assert.Equal(t, 2, first.Line)
	assert.Equal(t, "Kerala Travels", first.ParentCategory)
	assert.Equal(t, []string{"Houseboats", "Village Life"}, first.Subcategories)
	assert.Equal(t, 2, first.Duration)
	assert.True(t, first.Published)

	second := rows[1]
	assert.Equal(t, 1, second.Duration)
	assert.False(t, second.Published)
}

func TestReadTourRows_MissingColumn(t *testing.T) {
	f := newWorkbook(t, [][]interface{}{
		{"Title", "Description"},
		{"Kochi Walk", "Old town"},
	})

	_, _, err := readTourRows(f)
	assert.ErrorContains(t, err, "category")
}

func TestTourImporter_Import(t *testing.T) {
	testDB, err := db.SetupTestDB()
	require.NoError(t, err)
	defer db.CleanupTestDB(testDB)

	categoryRepo := repository.NewCategoryRepository(testDB)
	tourRepo := repository.NewTourRepository(testDB)

	kerala := &model.Category{Name: "Kerala Travels"}
	require.NoError(t, categoryRepo.Create(kerala))
	require.NoError(t, tourRepo.Create(&model.Tour{Title: "Kochi Heritage Walk", IsPublished: true}))

	rows := []tourRow{
		{Title: "Alleppey Houseboat Escape", Category: "Backwaters", ParentCategory: "Kerala Travels",
			Subcategories: []string{"Houseboats"}, Itinerary: "Day 1: Arrival", Duration: 2, Published: true},
		{Title: "Kochi Heritage Walk", Category: "Day Outs", Duration: 1, Published: true},
		{Title: "Jaipur Forts", Category: "Golden Triangle", Duration: 3, Published: true},
	}

	result, err := newTourImporter(categoryRepo, tourRepo).Import(rows, 10)
	require.NoError(t, err)
	assert.Equal(t, importResult{Imported: 2, Existing: 1, CategoriesCreated: 2}, result)

	tour, err := tourRepo.FindBySlug("alleppey-houseboat-escape")
	require.NoError(t, err)
	require.NotNil(t, tour.Category)
	assert.Equal(t, "Backwaters", tour.Category.Name)
	assert.Equal(t, "Kerala Travels", tour.Category.ParentName())
	assert.Equal(t, model.StringArray{"houseboats"}, tour.Subcategories)
	assert.Equal(t, "Day 1: Arrival", tour.Itinerary)

	// running the same import again changes nothing
	again, err := newTourImporter(categoryRepo, tourRepo).Import(rows, 10)
	require.NoError(t, err)
	assert.Equal(t, importResult{Existing: 3}, again)
}
