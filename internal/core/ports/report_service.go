package ports

import (
	"context"

	"github.com/recipebook/recipe-book/internal/core/domain"
)

// ReportService renders the recipes matching a selector into a document.
type ReportService interface {
	Generate(ctx context.Context, req domain.ReportRequest) (*domain.Document, error)
}
