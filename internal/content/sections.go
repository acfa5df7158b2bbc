package content

import (
	"bytes"
	"cmp"
	"encoding/json"
	"slices"

	"github.com/malabartrails/tours-backend/internal/app/model"
)

// ResolveSections returns the visible sections ordered by their sort key,
// with rich text passed through the sanitiser.
func (r *Resolver) ResolveSections(t *model.Tour) []Section {
	if t == nil {
		return []Section{}
	}

	visible := visibleSections(t.Sections)
	out := make([]Section, 0, len(visible))
	for _, s := range visible {
		section := Section{
			ID:    s.ID,
			Type:  normalizeSectionType(s.Type),
			Title: s.Title,
			Order: s.Order,
		}
		switch section.Type {
		case model.SectionMap, model.SectionGallery:
			if settings := settingsOf(s.Content); settings != nil {
				section.Settings = settings
			} else {
				section.Content = r.sanitizer.SanitizeHTML(s.Content)
			}
		default:
			section.Content = r.sanitizer.SanitizeHTML(s.Content)
		}
		out = append(out, section)
	}
	return out
}

// ResolveOverviewContent walks the fallback chain: visible overview section,
// detailed content, description, then the coming-soon text. It never returns "".
func (r *Resolver) ResolveOverviewContent(t *model.Tour) string {
	if t == nil {
		return ComingSoonText
	}
	for _, s := range visibleSections(t.Sections) {
		if normalizeSectionType(s.Type) != model.SectionOverview {
			continue
		}
		if html := r.sanitizer.SanitizeHTML(s.Content); html != "" {
			return html
		}
	}
	if html := r.sanitizer.SanitizeHTML(t.DetailedContent); html != "" {
		return html
	}
	if html := r.sanitizer.SanitizeHTML(t.Description); html != "" {
		return html
	}
	return ComingSoonText
}

func visibleSections(sections []model.TourSection) []model.TourSection {
	visible := make([]model.TourSection, 0, len(sections))
	for _, s := range sections {
		if s.IsVisible {
			visible = append(visible, s)
		}
	}
	slices.SortStableFunc(visible, func(a, b model.TourSection) int {
		return cmp.Compare(a.Order, b.Order)
	})
	return visible
}

func normalizeSectionType(t model.SectionType) model.SectionType {
	switch t {
	case model.SectionOverview, model.SectionItinerary, model.SectionInclusions,
		model.SectionGallery, model.SectionMap, model.SectionCustom:
		return t
	default:
		return model.SectionCustom
	}
}

// settingsOf returns structured section settings when content is a JSON object.
func settingsOf(raw string) json.RawMessage {
	trimmed := bytes.TrimSpace([]byte(raw))
	if len(trimmed) == 0 || trimmed[0] != '{' || !json.Valid(trimmed) {
		return nil
	}
	var compact bytes.Buffer
	if err := json.Compact(&compact, trimmed); err != nil {
		return nil
	}
	return json.RawMessage(compact.Bytes())
}
