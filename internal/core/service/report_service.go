package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/recipebook/recipe-book/internal/core/domain"
	"github.com/recipebook/recipe-book/internal/core/ports"
	"github.com/recipebook/recipe-book/internal/core/report"
	"github.com/recipebook/recipe-book/internal/metrics"
)

// ReportService renders reports over whatever the recipe service lists.
type ReportService struct {
	recipes ports.RecipeService
	log     zerolog.Logger
	now     func() time.Time
}

var _ ports.ReportService = (*ReportService)(nil)

func NewReportService(recipes ports.RecipeService, log zerolog.Logger) *ReportService {
	return &ReportService{recipes: recipes, log: log, now: time.Now}
}

func (s *ReportService) Generate(ctx context.Context, req domain.ReportRequest) (*domain.Document, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	recipes, err := s.recipes.List(ctx, domain.RecipeFilter{})
	if err != nil {
		return nil, err
	}

	doc, err := report.Generate(recipes, req, s.now())
	if err != nil {
		return nil, err
	}

	metrics.ReportsGeneratedTotal.WithLabelValues(string(req.Format), string(req.Selector.Type)).Inc()
	s.log.Info().
		Str("selector", string(req.Selector.Type)).
		Str("id", req.Selector.ID).
		Str("format", string(req.Format)).
		Int("bytes", len(doc.Content)).
		Msg("report generated")
	return doc, nil
}
