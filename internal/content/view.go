// Package content turns raw tour rows into the canonical view model every page
// renders. It reconciles the legacy flat fields with the structured admin
// schema in one place and never mutates its input.
package content

import (
	"encoding/json"

	"github.com/malabartrails/tours-backend/internal/app/model"
)

// ComingSoonText is shown when no overview content survives the fallback chain.
const ComingSoonText = "Detailed information about this tour is coming soon."

type Image struct {
	ID       uint               `json:"id"`
	URL      string             `json:"url"`
	Alt      string             `json:"alt"`
	Caption  string             `json:"caption,omitempty"`
	Order    int                `json:"order"`
	Section  model.ImageSection `json:"section"`
	Featured bool               `json:"featured,omitempty"`
}

type Section struct {
	ID       uint              `json:"id"`
	Type     model.SectionType `json:"type"`
	Title    string            `json:"title"`
	Content  string            `json:"content,omitempty"`  // sanitised HTML
	Settings json.RawMessage   `json:"settings,omitempty"` // map/gallery configuration
	Order    int               `json:"order"`
}

type Activity struct {
	ID           uint               `json:"id,omitempty"`
	Title        string             `json:"title"`
	ActivityType model.ActivityType `json:"activity_type"`
	IsIncluded   bool               `json:"is_included"`
	Order        int                `json:"order"`
}

type Day struct {
	ID           uint               `json:"id,omitempty"`
	DayNumber    int                `json:"day_number"`
	Title        string             `json:"title"`
	Description  string             `json:"description,omitempty"`
	ActivityType model.ActivityType `json:"activity_type"`
	Activities   []Activity         `json:"activities"`
	Order        int                `json:"order"`
}

// CanonicalTour is the single resolved view of a tour.
type CanonicalTour struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Slug          string    `json:"slug"`
	Description   string    `json:"description"`
	Overview      string    `json:"overview"`
	Category      string    `json:"category"`
	Categories    []string  `json:"categories"`
	Subcategories []string  `json:"subcategories"`
	Location      string    `json:"location"`
	Duration      int       `json:"duration"`
	Price         string    `json:"price,omitempty"`
	Sections      []Section `json:"sections"`
	Itinerary     []Day     `json:"itinerary"`
	Images        []Image   `json:"images"`
	HeroImage     *Image    `json:"hero_image,omitempty"`
	IsPublished   bool      `json:"is_published"`
}
