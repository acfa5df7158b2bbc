package service

import (
	"testing"

	"github.com/malabartrails/tours-backend/internal/app/model"
	"github.com/malabartrails/tours-backend/internal/app/repository"
	"github.com/malabartrails/tours-backend/pkg/sanitize"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteService_GetHomepage_Defaults(t *testing.T) {
	env := setupServiceTest(t)
	svc := NewSiteService(repository.NewSiteSettingsRepository(env.db), env.tours, env.resolver)

	home, err := svc.GetHomepage()
	require.NoError(t, err)

	assert.Equal(t, defaultHero.Title, home.Hero.Title)
	assert.Equal(t, "/tours", home.Hero.CTALink)
	assert.Equal(t, sanitize.DefaultPlaceholderURL, home.Hero.BackgroundImageURL)
	assert.Equal(t, defaultOffersMaxItems, home.TourOffers.Settings.MaxItems)
	assert.NotNil(t, home.TourOffers.Tours)
	assert.NotNil(t, home.DayOut.Settings.TourSlugs)
	assert.Empty(t, home.DayOut.Tours)
}

func TestSiteService_GetHomepage_Stored(t *testing.T) {
	env := setupServiceTest(t)
	kerala, _, triangle := env.seedKerala(t)
	svc := NewSiteService(repository.NewSiteSettingsRepository(env.db), env.tours, env.resolver)

	env.createTour(t, &model.Tour{Title: "Kochi Walk", CategoryID: &kerala.ID, IsPublished: true})
	env.createTour(t, &model.Tour{Title: "Kumarakom Day", CategoryID: &kerala.ID, IsPublished: true})
	env.createTour(t, &model.Tour{Title: "Jaipur Forts", CategoryID: &triangle.ID, IsPublished: true})

	require.NoError(t, env.db.Create(&model.HeroSettings{
		Title:              "Monsoon Specials",
		BackgroundImageURL: "https://evil.example.org/x.jpg",
		CTALink:            "javascript:alert(1)",
	}).Error)
	require.NoError(t, env.db.Create(&model.TourOffersSettings{
		CategorySlug: "kerala-travels",
		MaxItems:     1,
	}).Error)
	require.NoError(t, env.db.Create(&model.DayOutSettings{
		Description: "<p>Short <b>trips</b></p><script>x()</script>",
		ImageURL:    "https://cdn.example.com/day.jpg",
		TourSlugs:   model.StringArray{"jaipur-forts", " ", "missing"},
	}).Error)

	home, err := svc.GetHomepage()
	require.NoError(t, err)

	assert.Equal(t, "Monsoon Specials", home.Hero.Title)
	assert.Equal(t, defaultHero.Subtitle, home.Hero.Subtitle)
	assert.Equal(t, sanitize.DefaultPlaceholderURL, home.Hero.BackgroundImageURL)
	assert.Equal(t, "/tours", home.Hero.CTALink)

	assert.Equal(t, defaultTourOffers.Heading, home.TourOffers.Settings.Heading)
	require.Len(t, home.TourOffers.Tours, 1)
	assert.Contains(t, home.TourOffers.Tours[0].Categories, "Kerala Travels")

	assert.Equal(t, "<p>Short <b>trips</b></p>", home.DayOut.Settings.Description)
	assert.Equal(t, "https://cdn.example.com/day.jpg", home.DayOut.Settings.ImageURL)
	assert.Equal(t, model.StringArray{"jaipur-forts", "missing"}, home.DayOut.Settings.TourSlugs)
	require.Len(t, home.DayOut.Tours, 1)
	assert.Equal(t, "jaipur-forts", home.DayOut.Tours[0].Slug)
}
