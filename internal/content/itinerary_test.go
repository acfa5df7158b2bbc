package content

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/malabartrails/tours-backend/internal/app/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLegacyItinerary(t *testing.T) {
	text := "Day 1: Arrival, City tour, Hotel check-in\nWelcome notes\nDay 2: Backwater cruise"

	want := []Day{
		{
			DayNumber:    1,
			Title:        "Arrival",
			ActivityType: model.ActivityArrival,
			Activities: []Activity{
				{Title: "City tour", ActivityType: model.ActivityCity, IsIncluded: true, Order: 0},
				{Title: "Hotel check-in", ActivityType: model.ActivityArrival, IsIncluded: true, Order: 1},
			},
			Order: 0,
		},
		{
			DayNumber:    2,
			Title:        "Backwater cruise",
			ActivityType: model.ActivityCruise,
			Activities:   []Activity{},
			Order:        1,
		},
	}

	got := ParseLegacyItinerary(text)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseLegacyItinerary() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseLegacyItinerary_Variants(t *testing.T) {
	t.Run("lowercase marker without colon", func(t *testing.T) {
		days := ParseLegacyItinerary("day 3 Periyar wildlife sanctuary; jeep safari")
		require.Len(t, days, 1)
		assert.Equal(t, 3, days[0].DayNumber)
		assert.Equal(t, "Periyar wildlife sanctuary", days[0].Title)
		assert.Equal(t, model.ActivityNature, days[0].ActivityType)
		require.Len(t, days[0].Activities, 1)
		assert.Equal(t, model.ActivityAdventure, days[0].Activities[0].ActivityType)
	})

	t.Run("spaced dash separates fragments", func(t *testing.T) {
		days := ParseLegacyItinerary("Day 1: Kochi - Fort Kochi walk")
		require.Len(t, days, 1)
		assert.Equal(t, "Kochi", days[0].Title)
		require.Len(t, days[0].Activities, 1)
		assert.Equal(t, "Fort Kochi walk", days[0].Activities[0].Title)
		assert.Equal(t, model.ActivityCity, days[0].Activities[0].ActivityType)
	})

	t.Run("dash after the day marker", func(t *testing.T) {
		days := ParseLegacyItinerary("Day 1 - Arrival in Kochi, Hotel check-in\nDay 2 – Backwater cruise\nDay 3 -Munnar")
		require.Len(t, days, 3)
		assert.Equal(t, "Arrival in Kochi", days[0].Title)
		require.Len(t, days[0].Activities, 1)
		assert.Equal(t, "Hotel check-in", days[0].Activities[0].Title)
		assert.Equal(t, "Backwater cruise", days[1].Title)
		assert.Equal(t, model.ActivityCruise, days[1].ActivityType)
		assert.Equal(t, 3, days[2].DayNumber)
		assert.Equal(t, "Munnar", days[2].Title)
	})

	t.Run("appearance order kept", func(t *testing.T) {
		days := ParseLegacyItinerary("Day 2: Munnar\r\nDay 1: Kochi")
		require.Len(t, days, 2)
		assert.Equal(t, 2, days[0].DayNumber)
		assert.Equal(t, 1, days[1].DayNumber)
	})

	t.Run("no day lines", func(t *testing.T) {
		assert.Empty(t, ParseLegacyItinerary("A relaxed week in Kerala."))
		assert.Empty(t, ParseLegacyItinerary(""))
	})
}

func TestResolveItinerary_StructuredTakesPrecedence(t *testing.T) {
	tour := &model.Tour{
		Itinerary: "Day 1: Arrival\nDay 2: Departure",
		ItineraryDays: []model.ItineraryDay{
			{
				ID: 20, DayNumber: 2, Title: "Alleppey houseboat", IsActive: true,
				Activities: []model.ItineraryActivity{
					{ID: 2, Title: "Lunch on board", ActivityType: model.ActivityDefault, IsIncluded: true, Order: 2},
					{ID: 1, Title: "Backwater cruise", Order: 1},
				},
			},
			{ID: 10, DayNumber: 1, Title: "Arrive in Kochi", IsActive: true},
			{ID: 30, DayNumber: 3, Title: "Hidden day", IsActive: false},
		},
	}

	days := ResolveItinerary(tour)
	require.Len(t, days, 2)

	assert.Equal(t, uint(10), days[0].ID)
	assert.Equal(t, model.ActivityArrival, days[0].ActivityType)
	assert.Equal(t, uint(20), days[1].ID)
	assert.Equal(t, model.ActivityCruise, days[1].ActivityType)

	require.Len(t, days[1].Activities, 2)
	assert.Equal(t, "Backwater cruise", days[1].Activities[0].Title)
	assert.Equal(t, model.ActivityCruise, days[1].Activities[0].ActivityType, "empty type is classified")
	assert.False(t, days[1].Activities[0].IsIncluded)
	assert.Equal(t, model.ActivityDefault, days[1].Activities[1].ActivityType)
}

func TestResolveItinerary_EqualOrderKeepsArrayPosition(t *testing.T) {
	tour := &model.Tour{
		ItineraryDays: []model.ItineraryDay{
			{ID: 1, DayNumber: 1, IsActive: true, Activities: []model.ItineraryActivity{
				{ID: 12, Title: "Spice garden", Order: 0},
				{ID: 11, Title: "Tea museum", Order: 0},
			}},
		},
	}

	days := ResolveItinerary(tour)
	require.Len(t, days, 1)
	require.Len(t, days[0].Activities, 2)
	assert.Equal(t, "Spice garden", days[0].Activities[0].Title)
	assert.Equal(t, "Tea museum", days[0].Activities[1].Title)
}

func TestResolveItinerary_AllStructuredInactive(t *testing.T) {
	tour := &model.Tour{
		Itinerary: "Day 1: Arrival",
		ItineraryDays: []model.ItineraryDay{
			{DayNumber: 1, Title: "Draft", IsActive: false},
		},
	}
	assert.Empty(t, ResolveItinerary(tour))
}

func TestResolveItinerary_DoesNotMutateInput(t *testing.T) {
	tour := &model.Tour{
		ItineraryDays: []model.ItineraryDay{
			{DayNumber: 1, IsActive: true, Activities: []model.ItineraryActivity{
				{Title: "b", Order: 2},
				{Title: "a", Order: 1},
			}},
		},
	}
	_ = ResolveItinerary(tour)
	assert.Equal(t, "b", tour.ItineraryDays[0].Activities[0].Title)
}
