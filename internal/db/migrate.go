package db

import (
	"github.com/malabartrails/tours-backend/internal/app/model"
	"github.com/malabartrails/tours-backend/pkg/logger"
	"gorm.io/gorm"
)

// Models lists every table the content store owns, parents before children.
func Models() []interface{} {
	return []interface{}{
		&model.Category{},
		&model.Tour{},
		&model.TourSection{},
		&model.ItineraryDay{},
		&model.ItineraryActivity{},
		&model.TourImage{},
		&model.Destination{},
		&model.Inquiry{},
		&model.HeroSettings{},
		&model.TourOffersSettings{},
		&model.DayOutSettings{},
	}
}

// Migrate runs database migrations and seeds starter content
func Migrate() error {
	logger.Info("Running database migrations...")

	models := Models()
	if err := DB.AutoMigrate(models...); err != nil {
		logger.Error("Failed to run migrations", err)
		return err
	}

	if err := Seed(DB); err != nil {
		logger.Error("Failed to seed initial data during migration", err)
		return err
	}

	logger.Info("Database migrations completed successfully", map[string]interface{}{
		"models_count": len(models),
	})
	return nil
}

// Seed adds starter content to an empty store. Tables that already hold rows are left alone.
func Seed(db *gorm.DB) error {
	logger.Info("Seeding initial data...")

	if err := seedCategories(db); err != nil {
		logger.Error("Failed to seed categories", err)
		return err
	}
	if err := seedTours(db); err != nil {
		logger.Error("Failed to seed tours", err)
		return err
	}
	if err := seedDestinations(db); err != nil {
		logger.Error("Failed to seed destinations", err)
		return err
	}
	if err := seedSiteSettings(db); err != nil {
		logger.Error("Failed to seed site settings", err)
		return err
	}

	logger.Info("Initial data seeded successfully")
	return nil
}

func hasRows(db *gorm.DB, m interface{}, what string) (bool, error) {
	var count int64
	if err := db.Model(m).Count(&count).Error; err != nil {
		return false, err
	}
	if count > 0 {
		logger.Info(what+" already seeded, skipping...", map[string]interface{}{
			"existing_count": count,
		})
		return true, nil
	}
	return false, nil
}

func seedCategories(db *gorm.DB) error {
	if seeded, err := hasRows(db, &model.Category{}, "Categories"); err != nil || seeded {
		return err
	}

	roots := []model.Category{
		{Name: "Kerala Travels"},
		{Name: "Golden Triangle"},
		{Name: "Day Outs"},
	}
	for i := range roots {
		if err := db.Create(&roots[i]).Error; err != nil {
			return err
		}
	}

	children := []model.Category{
		{Name: "Backwaters", ParentID: &roots[0].ID},
		{Name: "Spice Tours", ParentID: &roots[0].ID},
		{Name: "Hill Stations", ParentID: &roots[0].ID},
	}
	for i := range children {
		if err := db.Create(&children[i]).Error; err != nil {
			return err
		}
	}

	logger.Info("Categories seeded successfully", map[string]interface{}{
		"total_records": len(roots) + len(children),
	})
	return nil
}

func seedTours(db *gorm.DB) error {
	if seeded, err := hasRows(db, &model.Tour{}, "Tours"); err != nil || seeded {
		return err
	}

	var backwaters, spice, triangle model.Category
	if err := db.Where("slug = ?", "backwaters").First(&backwaters).Error; err != nil {
		return err
	}
	if err := db.Where("slug = ?", "spice-tours").First(&spice).Error; err != nil {
		return err
	}
	if err := db.Where("slug = ?", "golden-triangle").First(&triangle).Error; err != nil {
		return err
	}

	tours := []model.Tour{
		{
			// Legacy flat schema: itinerary text and featured image only.
			Title:            "Alleppey Houseboat Escape",
			Description:      "Two slow days on the Kerala backwaters aboard a private kettuvallam.",
			Itinerary:        "Day 1: Arrival, Hotel check-in, Sunset backwater cruise\nDay 2: Village walk - Departure",
			FeaturedImageURL: "/images/tours/alleppey-houseboat.jpg",
			CategoryID:       &backwaters.ID,
			Subcategories:    model.StringArray{"houseboats"},
			Location:         "Alleppey",
			Duration:         2,
			Price:            "₹14,500",
			IsPublished:      true,
		},
		{
			// Structured admin schema.
			Title:         "Munnar Spice Trail",
			Description:   "Tea estates, spice gardens and misty viewpoints in the Western Ghats.",
			CategoryID:    &spice.ID,
			Subcategories: model.StringArray{"plantations"},
			Location:      "Munnar",
			Duration:      3,
			Price:         "₹21,000",
			IsPublished:   true,
			Sections: []model.TourSection{
				{Type: model.SectionOverview, Title: "Overview", Content: "<p>Walk the plantations that made Kerala famous.</p>", IsVisible: true, Order: 0},
				{Type: model.SectionInclusions, Title: "What's included", Content: "<ul><li>Breakfast</li><li>Private driver</li></ul>", IsVisible: true, Order: 1},
			},
			ItineraryDays: []model.ItineraryDay{
				{DayNumber: 1, Title: "Arrive in Munnar", IsActive: true, Activities: []model.ItineraryActivity{
					{Title: "Pick up from Kochi airport", IsIncluded: true, Order: 0},
					{Title: "Tea garden walk", IsIncluded: true, Order: 1},
				}},
				{DayNumber: 2, Title: "Spice garden visit", IsActive: true, Order: 1},
				{DayNumber: 3, Title: "Departure", IsActive: true, Order: 2},
			},
			Images: []model.TourImage{
				{URL: "/images/tours/munnar-banner.jpg", Alt: "Munnar tea hills", Section: model.ImageBanner, IsActive: true},
				{URL: "/images/tours/munnar-spices.jpg", Alt: "Cardamom pods", Section: model.ImageGallery, Order: 1, IsActive: true},
			},
		},
		{
			Title:            "Delhi Agra Jaipur Classic",
			Description:      "The Golden Triangle in five days.",
			Itinerary:        "Day 1: Arrival in Delhi, Old Delhi market walk\nDay 2: Agra - Taj Mahal visit\nDay 3: Jaipur, Amber Fort\nDay 4: City palace\nDay 5: Departure",
			FeaturedImageURL: "/images/tours/golden-triangle.jpg",
			CategoryID:       &triangle.ID,
			Location:         "Delhi",
			Duration:         5,
			IsPublished:      true,
		},
	}

	for i := range tours {
		if err := db.Create(&tours[i]).Error; err != nil {
			return err
		}
	}

	logger.Info("Tours seeded successfully", map[string]interface{}{
		"total_records": len(tours),
	})
	return nil
}

func seedDestinations(db *gorm.DB) error {
	if seeded, err := hasRows(db, &model.Destination{}, "Destinations"); err != nil || seeded {
		return err
	}

	destinations := []model.Destination{
		{Title: "Fort Kochi", Slug: "fort-kochi", Description: "Colonial streets and Chinese fishing nets.", State: "Kerala", Region: "South India", IsPublished: true},
		{Title: "Munnar", Slug: "munnar", Description: "Tea country in the Western Ghats.", State: "Kerala", Region: "South India", IsPublished: true},
		{Title: "Jaipur", Slug: "jaipur", Description: "The Pink City.", State: "Rajasthan", Region: "North India", IsPublished: true},
	}
	if err := db.Create(&destinations).Error; err != nil {
		return err
	}

	logger.Info("Destinations seeded successfully", map[string]interface{}{
		"total_records": len(destinations),
	})
	return nil
}

func seedSiteSettings(db *gorm.DB) error {
	if seeded, err := hasRows(db, &model.HeroSettings{}, "Site settings"); err != nil || seeded {
		return err
	}

	hero := model.HeroSettings{
		Title:              "Discover God's Own Country",
		Subtitle:           "Handpicked tours across Kerala and beyond",
		BackgroundImageURL: "/images/hero/kerala-backwaters.jpg",
		CTAText:            "Explore tours",
		CTALink:            "/tours",
	}
	offers := model.TourOffersSettings{
		Heading:      "Kerala Tour Offers",
		Subheading:   "Seasonal packages from our local team",
		CategorySlug: "kerala-travels",
		MaxItems:     6,
	}
	dayOut := model.DayOutSettings{
		Heading:     "Day Outs",
		Description: "Short trips for a free afternoon.",
		ImageURL:    "/images/day-out.jpg",
		TourSlugs:   model.StringArray{"alleppey-houseboat-escape"},
	}

	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&hero).Error; err != nil {
			return err
		}
		if err := tx.Create(&offers).Error; err != nil {
			return err
		}
		return tx.Create(&dayOut).Error
	})
}
