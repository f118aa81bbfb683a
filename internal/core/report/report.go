// Package report selects recipes by category or author and renders them into
// downloadable text documents.
//
// The xlsx and xls formats are delimited text (comma and tab respectively)
// and pdf is plain prose; each document is labeled with the MIME type of the
// format it names, not encoded in it.
package report

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/recipebook/recipe-book/internal/core/domain"
)

const (
	ingredientSeparator = "; "
	divider             = "----------------------------------------"
)

var header = []string{"Title", "Description", "Cooking Time", "Servings", "Difficulty", "Ingredients", "Instructions"}

var contentTypes = map[domain.ReportFormat]string{
	domain.FormatXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	domain.FormatXLS:  "application/vnd.ms-excel",
	domain.FormatPDF:  "application/pdf",
}

// ContentType returns the MIME label of format.
func ContentType(format domain.ReportFormat) string {
	return contentTypes[format]
}

// Select keeps the recipes matching sel in their original order.
func Select(recipes []domain.Recipe, sel domain.Selector) []domain.Recipe {
	var out []domain.Recipe
	for _, r := range recipes {
		if sel.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}

// Generate selects from recipes and renders the selection. It fails with
// domain.ErrEmptyResult rather than emit an empty document.
func Generate(recipes []domain.Recipe, req domain.ReportRequest, now time.Time) (*domain.Document, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	selected := Select(recipes, req.Selector)
	if len(selected) == 0 {
		return nil, fmt.Errorf("%s %s: %w", req.Selector.Type, req.Selector.ID, domain.ErrEmptyResult)
	}

	content, err := Render(selected, req.Format)
	if err != nil {
		return nil, err
	}

	return &domain.Document{
		Filename:    Filename(req, now),
		ContentType: ContentType(req.Format),
		Content:     content,
	}, nil
}

// Filename is recipes-<category|user>-<YYYY-MM-DD>.<ext>.
func Filename(req domain.ReportRequest, now time.Time) string {
	return fmt.Sprintf("recipes-%s-%s.%s", req.Selector.Type, now.Format(time.DateOnly), req.Format)
}

// Render encodes recipes in format.
func Render(recipes []domain.Recipe, format domain.ReportFormat) ([]byte, error) {
	switch format {
	case domain.FormatXLSX:
		return renderDelimited(recipes, ',')
	case domain.FormatXLS:
		return renderDelimited(recipes, '\t')
	case domain.FormatPDF:
		return renderProse(recipes), nil
	}
	return nil, domain.InvalidInput("unsupported report format %q", format)
}

func row(r domain.Recipe) []string {
	return []string{
		r.Title,
		r.Description,
		strconv.Itoa(r.CookingTime),
		strconv.Itoa(r.Servings),
		string(r.Difficulty),
		strings.Join(r.Ingredients, ingredientSeparator),
		r.Instructions,
	}
}

func renderDelimited(recipes []domain.Recipe, comma rune) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	w.Comma = comma

	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range recipes {
		if err := w.Write(row(r)); err != nil {
			return nil, fmt.Errorf("render %s: %w", r.ID, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func renderProse(recipes []domain.Recipe) []byte {
	var b strings.Builder
	for i, r := range recipes {
		if i > 0 {
			b.WriteString(divider + "\n\n")
		}
		fmt.Fprintf(&b, "Title: %s\n", r.Title)
		fmt.Fprintf(&b, "Description: %s\n\n", r.Description)
		fmt.Fprintf(&b, "Cooking Time: %d min\n", r.CookingTime)
		fmt.Fprintf(&b, "Servings: %d\n", r.Servings)
		fmt.Fprintf(&b, "Difficulty: %s\n\n", r.Difficulty)

		b.WriteString("Ingredients:\n")
		for _, ing := range r.Ingredients {
			fmt.Fprintf(&b, "  - %s\n", ing)
		}

		b.WriteString("\nInstructions:\n")
		for n, step := range r.Steps() {
			fmt.Fprintf(&b, "  %d. %s\n", n+1, step)
		}
		b.WriteString("\n")
	}
	return []byte(b.String())
}
