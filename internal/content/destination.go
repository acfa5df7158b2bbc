package content

import "github.com/malabartrails/tours-backend/internal/app/model"

// DestinationSummary is the card shape for destinations in listings and search.
type DestinationSummary struct {
	ID          uint   `json:"id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	Description string `json:"description"`
	State       string `json:"state"`
	Region      string `json:"region"`
	ImageURL    string `json:"image_url"`
}

func (r *Resolver) SummarizeDestination(d *model.Destination) DestinationSummary {
	return DestinationSummary{
		ID:          d.ID,
		Title:       d.Title,
		Slug:        d.Slug,
		Description: r.sanitizer.SanitizeHTML(d.Description),
		State:       d.State,
		Region:      d.Region,
		ImageURL:    r.sanitizer.ImageURLOrPlaceholder(d.ImageURL),
	}
}

func (r *Resolver) SummarizeDestinations(destinations []model.Destination) []DestinationSummary {
	out := make([]DestinationSummary, 0, len(destinations))
	for i := range destinations {
		out = append(out, r.SummarizeDestination(&destinations[i]))
	}
	return out
}
