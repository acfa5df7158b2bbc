package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// Legacy spreadsheet columns, matched case-insensitively against the header row.
const (
	colTitle          = "title"
	colCategory       = "category"
	colParentCategory = "parent_category"
	colSubcategories  = "subcategories"
	colDescription    = "description"
	colItinerary      = "itinerary"
	colFeaturedImage  = "featured_image_url"
	colLocation       = "location"
	colDuration       = "duration"
	colPrice          = "price"
	colPublished      = "published"
)

var requiredColumns = []string{colTitle, colCategory}

type tourRow struct {
	Line           int
	Title          string
	Category       string
	ParentCategory string
	Subcategories  []string
	Description    string
	Itinerary      string
	FeaturedImage  string
	Location       string
	Duration       int
	Price          string
	Published      bool
}

type readReport struct {
	Sheet      string
	TotalRows  int
	Valid      int
	Skipped    int
	Duplicates int
	Problems   []string
}

func (r readReport) print(w io.Writer) {
	fmt.Fprintf(w, "\nSummary (%s):\n", r.Sheet)
	fmt.Fprintf(w, "  Total rows: %d\n", r.TotalRows)
	fmt.Fprintf(w, "  Valid tours: %d\n", r.Valid)
	fmt.Fprintf(w, "  Skipped rows: %d\n", r.Skipped)
	fmt.Fprintf(w, "  Duplicate titles: %d\n", r.Duplicates)
	for _, p := range r.Problems {
		fmt.Fprintf(w, "  - %s\n", p)
	}
}

func readTourRowsFromFile(filePath string) ([]tourRow, readReport, error) {
	f, err := excelize.OpenFile(filePath)
	if err != nil {
		return nil, readReport{}, fmt.Errorf("failed to open XLSX file: %w", err)
	}
	defer f.Close()
	return readTourRows(f)
}

// readTourRows parses the first sheet. Rows without a title or category are
// skipped and reported; repeated titles keep the first occurrence.
func readTourRows(f *excelize.File) ([]tourRow, readReport, error) {
	sheetName := f.GetSheetName(0)
	if sheetName == "" {
		return nil, readReport{}, fmt.Errorf("no sheets found in XLSX file")
	}
	report := readReport{Sheet: sheetName}

	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, report, fmt.Errorf("failed to read rows: %w", err)
	}
	if len(rows) == 0 {
		return nil, report, fmt.Errorf("no data found in XLSX file")
	}

	columns := make(map[string]int)
	for i, header := range rows[0] {
		columns[strings.ToLower(strings.TrimSpace(header))] = i
	}
	for _, required := range requiredColumns {
		if _, ok := columns[required]; !ok {
			return nil, report, fmt.Errorf("missing required column %q", required)
		}
	}

	cell := func(row []string, name string) string {
		i, ok := columns[name]
		if !ok || i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	var tours []tourRow
	seen := make(map[string]bool)
	for i, row := range rows[1:] {
		line := i + 2
		report.TotalRows++

		t := tourRow{
			Line:           line,
			Title:          cell(row, colTitle),
			Category:       cell(row, colCategory),
			ParentCategory: cell(row, colParentCategory),
			Subcategories:  splitList(cell(row, colSubcategories)),
			Description:    cell(row, colDescription),
			Itinerary:      cell(row, colItinerary),
			FeaturedImage:  cell(row, colFeaturedImage),
			Location:       cell(row, colLocation),
			Duration:       1,
			Price:          cell(row, colPrice),
			Published:      parseBool(cell(row, colPublished), true),
		}

		if t.Title == "" || t.Category == "" {
			report.Skipped++
			report.Problems = append(report.Problems, fmt.Sprintf("line %d: title and category are required", line))
			continue
		}

		if raw := cell(row, colDuration); raw != "" {
			d, err := strconv.Atoi(strings.TrimSuffix(strings.ToLower(raw), " days"))
			if err != nil || d < 1 {
				report.Problems = append(report.Problems, fmt.Sprintf("line %d: duration %q is not a day count, using 1", line, raw))
			} else {
				t.Duration = d
			}
		}

		key := strings.ToLower(t.Title)
		if seen[key] {
			report.Duplicates++
			report.Skipped++
			continue
		}
		seen[key] = true

		tours = append(tours, t)
	}

	report.Valid = len(tours)
	return tours, report, nil
}

func splitList(s string) []string {
	out := []string{}
	for _, part := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ';' }) {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseBool(s string, fallback bool) bool {
	switch strings.ToLower(s) {
	case "yes", "y", "true", "1":
		return true
	case "no", "n", "false", "0":
		return false
	}
	return fallback
}
