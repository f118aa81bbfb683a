package domain

import "slices"

// SelectorType chooses which recipes a report covers.
type SelectorType string

const (
	SelectByCategory SelectorType = "category"
	SelectByUser     SelectorType = "user"
)

// Selector is ByCategory(ID) or ByUser(ID).
type Selector struct {
	Type SelectorType `json:"type"`
	ID   string       `json:"id"`
}

func ByCategory(categoryID string) Selector {
	return Selector{Type: SelectByCategory, ID: categoryID}
}

func ByUser(userID string) Selector {
	return Selector{Type: SelectByUser, ID: userID}
}

// Matches reports whether r falls under the selector.
func (s Selector) Matches(r Recipe) bool {
	switch s.Type {
	case SelectByCategory:
		return r.CategoryID == s.ID
	case SelectByUser:
		return r.UserID == s.ID
	}
	return false
}

// ReportFormat is the requested download format, named after its file extension.
type ReportFormat string

const (
	FormatXLSX ReportFormat = "xlsx"
	FormatXLS  ReportFormat = "xls"
	FormatPDF  ReportFormat = "pdf"
)

var reportFormats = []ReportFormat{FormatXLSX, FormatXLS, FormatPDF}

func (f ReportFormat) Valid() bool {
	return slices.Contains(reportFormats, f)
}

// ReportRequest is the input of report generation.
type ReportRequest struct {
	Selector Selector     `json:"selector"`
	Format   ReportFormat `json:"format"`
}

// Validate rejects unknown selector types, empty selector ids and unknown formats.
func (r ReportRequest) Validate() error {
	if r.Selector.Type != SelectByCategory && r.Selector.Type != SelectByUser {
		return InvalidInput("report type must be category or user")
	}
	if r.Selector.ID == "" {
		return InvalidInput("report %s id is required", r.Selector.Type)
	}
	if !r.Format.Valid() {
		return InvalidInput("report format must be one of: xlsx xls pdf")
	}
	return nil
}

// Document is a rendered report ready to be saved to disk.
type Document struct {
	Filename    string `json:"filename"`
	ContentType string `json:"contentType"`
	Content     []byte `json:"content"`
}
