package content

import (
	"cmp"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/malabartrails/tours-backend/internal/app/model"
)

var (
	dayLinePattern = regexp.MustCompile(`(?i)Day (\d+):?\s*(.+)`)
	// Spaced dashes only, so hyphenated words like "check-in" survive.
	fragmentSeparator = regexp.MustCompile(`\s*[,;]\s*|\s+[-–—]\s+`)
	// "Day 1 - Arrival" and "Day 1 -Arrival" put the marker's dash in front of the title.
	leadingMarker = regexp.MustCompile(`^[-–—:\s]+`)
)

// ResolveItinerary returns the tour's days. Structured day records win
// unconditionally; the legacy text is only parsed when none exist.
func ResolveItinerary(t *model.Tour) []Day {
	if t == nil {
		return []Day{}
	}
	if len(t.ItineraryDays) > 0 {
		return structuredDays(t.ItineraryDays)
	}
	return ParseLegacyItinerary(t.Itinerary)
}

func structuredDays(records []model.ItineraryDay) []Day {
	active := make([]model.ItineraryDay, 0, len(records))
	for _, d := range records {
		if d.IsActive {
			active = append(active, d)
		}
	}
	slices.SortStableFunc(active, func(a, b model.ItineraryDay) int {
		if c := cmp.Compare(a.DayNumber, b.DayNumber); c != 0 {
			return c
		}
		return cmp.Compare(a.Order, b.Order)
	})

	days := make([]Day, 0, len(active))
	for _, d := range active {
		activities := slices.Clone(d.Activities)
		slices.SortStableFunc(activities, func(a, b model.ItineraryActivity) int {
			return cmp.Compare(a.Order, b.Order)
		})

		day := Day{
			ID:           d.ID,
			DayNumber:    d.DayNumber,
			Title:        d.Title,
			Description:  d.Description,
			ActivityType: classifyDay(d.Title, d.Description),
			Activities:   make([]Activity, 0, len(activities)),
			Order:        d.Order,
		}
		for _, a := range activities {
			activityType := a.ActivityType
			if activityType == "" {
				activityType = Classify(a.Title)
			}
			day.Activities = append(day.Activities, Activity{
				ID:           a.ID,
				Title:        a.Title,
				ActivityType: activityType,
				IsIncluded:   a.IsIncluded,
				Order:        a.Order,
			})
		}
		days = append(days, day)
	}
	return days
}

// ParseLegacyItinerary reads "Day N: title, activity, activity" lines. Lines
// without a day marker are narrative and are skipped. Days keep the order in
// which they appear.
func ParseLegacyItinerary(text string) []Day {
	days := []Day{}
	if strings.TrimSpace(text) == "" {
		return days
	}

	for _, line := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		m := dayLinePattern.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		dayNumber, err := strconv.Atoi(m[1])
		if err != nil || dayNumber <= 0 {
			continue
		}
		body := strings.TrimSpace(leadingMarker.ReplaceAllString(m[2], ""))
		fragments := splitFragments(body)
		if len(fragments) == 0 {
			continue
		}

		day := Day{
			DayNumber:    dayNumber,
			Title:        fragments[0],
			ActivityType: classifyDay(fragments[0], body),
			Activities:   make([]Activity, 0, len(fragments)-1),
			Order:        len(days),
		}
		for i, fragment := range fragments[1:] {
			day.Activities = append(day.Activities, Activity{
				Title:        fragment,
				ActivityType: Classify(fragment),
				IsIncluded:   true,
				Order:        i,
			})
		}
		days = append(days, day)
	}
	return days
}

func splitFragments(body string) []string {
	var out []string
	for _, part := range fragmentSeparator.Split(body, -1) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func classifyDay(title, body string) model.ActivityType {
	if t := Classify(title); t != model.ActivityDefault {
		return t
	}
	return Classify(body)
}
