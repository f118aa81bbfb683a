package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/recipebook/recipe-book/internal/core/domain"
)

type stubReportService struct {
	generateFn func(ctx context.Context, req domain.ReportRequest) (*domain.Document, error)
}

func (s *stubReportService) Generate(ctx context.Context, req domain.ReportRequest) (*domain.Document, error) {
	return s.generateFn(ctx, req)
}

func TestReportHandler_Download(t *testing.T) {
	stub := &stubReportService{
		generateFn: func(ctx context.Context, req domain.ReportRequest) (*domain.Document, error) {
			if req.Selector != domain.ByCategory("cat-1") || req.Format != domain.FormatXLSX {
				t.Fatalf("unexpected request %+v", req)
			}
			return &domain.Document{Filename: "recipes-category-2024-01-01.xlsx", ContentType: "application/vnd.ms-excel", Content: []byte("a,b\n")}, nil
		},
	}
	h := NewReportHandler(stub)

	c, rec := jsonContext(newEcho(), http.MethodGet, "/reports?type=category&categoryId=cat-1&userId=ignored&format=xlsx", "")
	if err := h.Generate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if got := rec.Header().Get(echo.HeaderContentDisposition); got != `attachment; filename="recipes-category-2024-01-01.xlsx"` {
		t.Fatalf("unexpected disposition %q", got)
	}
	if rec.Header().Get(echo.HeaderContentType) != "application/vnd.ms-excel" || rec.Body.String() != "a,b\n" {
		t.Fatalf("unexpected body %q (%s)", rec.Body.String(), rec.Header().Get(echo.HeaderContentType))
	}
}

func TestReportHandler_PropagatesErrors(t *testing.T) {
	stub := &stubReportService{
		generateFn: func(ctx context.Context, req domain.ReportRequest) (*domain.Document, error) {
			if req.Selector.Type != domain.SelectByUser || req.Selector.ID != "user-9" {
				t.Fatalf("unexpected request %+v", req)
			}
			return nil, domain.ErrEmptyResult
		},
	}
	h := NewReportHandler(stub)

	c, _ := jsonContext(newEcho(), http.MethodGet, "/reports?type=user&userId=user-9&format=pdf", "")
	if err := h.Generate(c); !errors.Is(err, domain.ErrEmptyResult) {
		t.Fatalf("expected ErrEmptyResult, got %v", err)
	}
}
