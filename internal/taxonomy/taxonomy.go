// Package taxonomy answers category and subcategory questions about tours.
// The tree is two levels deep (category -> optional parent) and matching is
// fuzzy: case-insensitive containment against names and slugs, checking the
// tour's own category and then exactly one parent.
package taxonomy

import (
	"strings"

	"github.com/malabartrails/tours-backend/internal/app/model"
	"github.com/malabartrails/tours-backend/pkg/util"
)

// MatchKind says how confident a subcategory match is.
type MatchKind int

const (
	MatchNone MatchKind = iota
	// MatchRelated comes from substring containment in slug, title or
	// description; it means "also relevant", not "filed under".
	MatchRelated
	// MatchTag is an exact hit on one of the tour's subcategory tags.
	MatchTag
)

func (k MatchKind) String() string {
	switch k {
	case MatchTag:
		return "tag"
	case MatchRelated:
		return "related"
	default:
		return "none"
	}
}

// level is one rung of the tour's category chain.
type level struct {
	name string
	slug string
}

func chain(t *model.Tour) []level {
	if t == nil || t.Category == nil {
		return nil
	}
	levels := []level{{name: t.Category.Name, slug: t.Category.Slug}}
	if p := t.Category.Parent; p != nil {
		levels = append(levels, level{name: p.Name, slug: p.Slug})
	}
	return levels
}

// TourCategories returns the tour's own category label followed by its
// parent's label when present and distinct.
func TourCategories(t *model.Tour) []string {
	out := []string{}
	for _, l := range chain(t) {
		name := strings.TrimSpace(l.name)
		if name == "" {
			continue
		}
		duplicate := false
		for _, existing := range out {
			if strings.EqualFold(existing, name) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			out = append(out, name)
		}
	}
	return out
}

// MatchesCategory reports whether the query is contained in the name or slug
// of the tour's category or its parent. An empty query matches everything.
func MatchesCategory(t *model.Tour, query string) bool {
	q := normalize(query)
	if q == "" {
		return true
	}
	qSlug := util.Slugify(query)
	for _, l := range chain(t) {
		if containsFold(l.name, q) || containsFold(l.slug, q) {
			return true
		}
		if qSlug != "" && containsFold(l.slug, qSlug) {
			return true
		}
	}
	return false
}

// SubcategoryMatch tries an exact tag match first and falls back to substring
// containment against slug, title and description, in that order.
func SubcategoryMatch(t *model.Tour, query string) MatchKind {
	q := normalize(query)
	if t == nil || q == "" {
		return MatchNone
	}

	qSlug := util.Slugify(query)
	for _, tag := range t.Subcategories {
		tag = normalize(tag)
		if tag == "" {
			continue
		}
		if tag == q || (qSlug != "" && tag == qSlug) {
			return MatchTag
		}
	}

	if containsFold(t.Slug, q) || (qSlug != "" && containsFold(t.Slug, qSlug)) {
		return MatchRelated
	}
	if containsFold(t.Title, q) || containsFold(t.Description, q) {
		return MatchRelated
	}
	return MatchNone
}

// MatchesSubcategory is the boolean form of SubcategoryMatch. Callers needing
// precision should use SubcategoryMatch and check for MatchTag.
func MatchesSubcategory(t *model.Tour, query string) bool {
	return SubcategoryMatch(t, query) != MatchNone
}

// ToursByCategory filters tours by category and, when given, subcategory,
// then applies the limit (limit <= 0 means no limit). Exact subcategory tag
// matches are listed before related ones; relative order is otherwise kept.
func ToursByCategory(tours []model.Tour, categoryQuery, subcategoryQuery string, limit int) []model.Tour {
	tagged := []model.Tour{}
	related := []model.Tour{}

	for i := range tours {
		t := &tours[i]
		if !MatchesCategory(t, categoryQuery) {
			continue
		}
		if normalize(subcategoryQuery) == "" {
			tagged = append(tagged, *t)
			continue
		}
		switch SubcategoryMatch(t, subcategoryQuery) {
		case MatchTag:
			tagged = append(tagged, *t)
		case MatchRelated:
			related = append(related, *t)
		}
	}

	out := append(tagged, related...)
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// containsFold reports whether lower-cased needle occurs in haystack, ignoring case.
func containsFold(haystack, needle string) bool {
	if needle == "" || haystack == "" {
		return false
	}
	return strings.Contains(strings.ToLower(haystack), needle)
}
