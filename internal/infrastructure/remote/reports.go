package remote

import (
	"context"
	"mime"

	"github.com/recipebook/recipe-book/internal/core/domain"
	"github.com/recipebook/recipe-book/internal/core/ports"
	"github.com/recipebook/recipe-book/internal/core/report"
)

type ReportService struct {
	c *Client
}

var _ ports.ReportService = (*ReportService)(nil)

func NewReportService(c *Client) *ReportService {
	return &ReportService{c: c}
}

func (s *ReportService) Generate(ctx context.Context, req domain.ReportRequest) (*domain.Document, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	r, err := s.c.request(ctx, "")
	if err != nil {
		return nil, err
	}

	query := map[string]string{
		"type":   string(req.Selector.Type),
		"format": string(req.Format),
	}
	if req.Selector.Type == domain.SelectByCategory {
		query["categoryId"] = req.Selector.ID
	} else {
		query["userId"] = req.Selector.ID
	}

	resp, err := r.SetQueryParams(query).Get("/reports")
	if err := s.c.check(resp, err); err != nil {
		return nil, err
	}

	doc := &domain.Document{
		ContentType: resp.Header().Get("Content-Type"),
		Content:     resp.Body(),
	}
	if _, params, err := mime.ParseMediaType(resp.Header().Get("Content-Disposition")); err == nil {
		doc.Filename = params["filename"]
	}
	if doc.Filename == "" {
		doc.Filename = report.Filename(req, resp.ReceivedAt())
	}
	if doc.ContentType == "" {
		doc.ContentType = report.ContentType(req.Format)
	}
	return doc, nil
}
