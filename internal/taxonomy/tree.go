package taxonomy

import (
	"cmp"
	"slices"
	"strings"

	"github.com/malabartrails/tours-backend/internal/app/model"
	"github.com/malabartrails/tours-backend/pkg/util"
)

type Node struct {
	ID       uint   `json:"id"`
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Children []Node `json:"children"`
}

// BuildTree groups a flat category listing into top-level nodes with their
// direct children. Rows pointing at a missing or nested parent are promoted to
// the top level rather than dropped.
func BuildTree(categories []model.Category) []Node {
	byID := make(map[uint]model.Category, len(categories))
	for _, c := range categories {
		byID[c.ID] = c
	}

	roots := []Node{}
	rootIndex := make(map[uint]int)
	var children []model.Category

	isRoot := func(c model.Category) bool {
		if c.ParentID == nil {
			return true
		}
		parent, ok := byID[*c.ParentID]
		return !ok || parent.ParentID != nil
	}

	for _, c := range categories {
		if isRoot(c) {
			rootIndex[c.ID] = len(roots)
			roots = append(roots, Node{ID: c.ID, Name: c.Name, Slug: c.Slug, Children: []Node{}})
		} else {
			children = append(children, c)
		}
	}
	for _, c := range children {
		i := rootIndex[*c.ParentID]
		roots[i].Children = append(roots[i].Children, Node{ID: c.ID, Name: c.Name, Slug: c.Slug, Children: []Node{}})
	}

	byName := func(a, b Node) int {
		return cmp.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	}
	slices.SortStableFunc(roots, byName)
	for i := range roots {
		slices.SortStableFunc(roots[i].Children, byName)
	}
	return roots
}

// FindCategory resolves a page or menu query to a category: exact slug first,
// then exact name, then the first name/slug containing the query.
func FindCategory(categories []model.Category, query string) *model.Category {
	q := normalize(query)
	if q == "" {
		return nil
	}
	qSlug := util.Slugify(query)

	for i := range categories {
		if strings.EqualFold(categories[i].Slug, q) || (qSlug != "" && categories[i].Slug == qSlug) {
			return &categories[i]
		}
	}
	for i := range categories {
		if strings.EqualFold(strings.TrimSpace(categories[i].Name), q) {
			return &categories[i]
		}
	}
	for i := range categories {
		if containsFold(categories[i].Name, q) || containsFold(categories[i].Slug, q) {
			return &categories[i]
		}
	}
	return nil
}
