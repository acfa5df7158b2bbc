package content

import (
	"strings"

	"github.com/malabartrails/tours-backend/internal/app/model"
)

type activityRule struct {
	keywords []string
	tag      model.ActivityType
}

// Rules are evaluated top to bottom and the first hit wins, so specific
// places (temple, cruise) sit above generic words like "tour" or "visit".
var activityRules = []activityRule{
	{tag: model.ActivityArrival, keywords: []string{"arrival", "arrive", "check-in", "check in", "welcome", "pick up from", "pickup from"}},
	{tag: model.ActivityDeparture, keywords: []string{"departure", "depart", "check-out", "check out", "drop at", "drop to", "fly back", "return home"}},
	{tag: model.ActivityTemple, keywords: []string{"temple", "shrine", "church", "mosque", "synagogue", "basilica", "pilgrim"}},
	{tag: model.ActivityCruise, keywords: []string{"cruise", "houseboat", "backwater", "boat", "ferry", "shikara"}},
	{tag: model.ActivityNature, keywords: []string{"wildlife", "sanctuary", "national park", "waterfall", "beach", "lake", "plantation", "tea garden", "tea estate", "spice garden", "hill station", "forest", "bird", "nature"}},
	{tag: model.ActivityAdventure, keywords: []string{"trek", "hike", "hiking", "rafting", "kayak", "zipline", "zip line", "paraglid", "camping", "jeep safari", "adventure"}},
	{tag: model.ActivityCultural, keywords: []string{"kathakali", "theyyam", "dance", "cultural", "culture", "performance", "heritage", "museum", "ayurveda", "cooking class", "martial"}},
	{tag: model.ActivityCity, keywords: []string{"city", "market", "shopping", "bazaar", "palace", "fort kochi", "downtown", "street"}},
	{tag: model.ActivitySightseeing, keywords: []string{"sightseeing", "tour", "visit", "viewpoint", "view point", "explore", "excursion"}},
}

// Classify tags a free-text activity with an activity type. Matching is a
// case-insensitive substring test; no hit yields ActivityDefault.
func Classify(text string) model.ActivityType {
	lower := strings.ToLower(text)
	if strings.TrimSpace(lower) == "" {
		return model.ActivityDefault
	}
	for _, rule := range activityRules {
		for _, kw := range rule.keywords {
			if strings.Contains(lower, kw) {
				return rule.tag
			}
		}
	}
	return model.ActivityDefault
}
