package queue

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/recipebook/recipe-book/internal/core/domain"
)

type stubReports struct {
	mu    sync.Mutex
	calls []domain.ReportRequest
}

func (s *stubReports) Generate(_ context.Context, req domain.ReportRequest) (*domain.Document, error) {
	s.mu.Lock()
	s.calls = append(s.calls, req)
	s.mu.Unlock()
	if req.Selector.ID == "empty" {
		return nil, domain.ErrEmptyResult
	}
	return &domain.Document{Filename: req.Selector.ID + "." + string(req.Format)}, nil
}

func TestExporter_ExportsEveryRequest(t *testing.T) {
	reports := &stubReports{}
	var mu sync.Mutex
	var written []string
	sink := func(_ context.Context, _ domain.ReportRequest, doc *domain.Document) error {
		mu.Lock()
		defer mu.Unlock()
		written = append(written, doc.Filename)
		return nil
	}

	e := NewExporter(3, reports, sink, zerolog.Nop())
	e.Start(context.Background())
	err := e.EnqueueBatch([]domain.ReportRequest{
		{Selector: domain.ByCategory("cat-1"), Format: domain.FormatPDF},
		{Selector: domain.ByCategory("cat-2"), Format: domain.FormatPDF},
		{Selector: domain.ByCategory("cat-3"), Format: domain.FormatXLS},
	})
	if err != nil {
		t.Fatalf("EnqueueBatch: %v", err)
	}
	if err := e.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}
	if len(written) != 3 {
		t.Fatalf("expected 3 documents, got %v", written)
	}
}

func TestExporter_CollectsFailures(t *testing.T) {
	reports := &stubReports{}
	sinkErr := errors.New("disk full")
	sink := func(_ context.Context, _ domain.ReportRequest, doc *domain.Document) error {
		if doc.Filename == "cat-2.pdf" {
			return sinkErr
		}
		return nil
	}

	e := NewExporter(0, reports, sink, zerolog.Nop())
	e.Start(context.Background())
	for _, id := range []string{"empty", "cat-2", "cat-1"} {
		if err := e.Enqueue(domain.ReportRequest{Selector: domain.ByCategory(id), Format: domain.FormatPDF}); err != nil {
			t.Fatalf("Enqueue %s: %v", id, err)
		}
	}

	err := e.Wait()
	if !errors.Is(err, domain.ErrEmptyResult) {
		t.Fatalf("expected ErrEmptyResult in %v", err)
	}
	if !errors.Is(err, sinkErr) {
		t.Fatalf("expected sink error in %v", err)
	}
	if len(reports.calls) != 3 {
		t.Fatalf("expected 3 generate calls, got %d", len(reports.calls))
	}
}

func TestExporter_SameSelectorKeepsOrder(t *testing.T) {
	reports := &stubReports{}
	e := NewExporter(4, reports, func(context.Context, domain.ReportRequest, *domain.Document) error { return nil }, zerolog.Nop())

	sel := domain.ByUser("user-1")
	formats := []domain.ReportFormat{domain.FormatPDF, domain.FormatXLS, domain.FormatXLSX}
	for _, f := range formats {
		if err := e.Enqueue(domain.ReportRequest{Selector: sel, Format: f}); err != nil {
			t.Fatalf("Enqueue: %v", err)
		}
	}
	e.Start(context.Background())
	if err := e.Wait(); err != nil {
		t.Fatalf("Wait: %v", err)
	}

	for i, f := range formats {
		if reports.calls[i].Format != f {
			t.Fatalf("call %d: expected %s, got %s", i, f, reports.calls[i].Format)
		}
	}
}

func TestExporter_CancelledContextUnblocksEnqueue(t *testing.T) {
	reports := &stubReports{}
	e := NewExporter(1, reports, func(context.Context, domain.ReportRequest, *domain.Document) error { return nil }, zerolog.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	e.Start(ctx)

	reqs := make([]domain.ReportRequest, channelBuffer+1)
	for i := range reqs {
		reqs[i] = domain.ReportRequest{Selector: domain.ByCategory("cat-1"), Format: domain.FormatPDF}
	}

	done := make(chan error, 1)
	go func() { done <- e.EnqueueBatch(reqs) }()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled from EnqueueBatch, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("EnqueueBatch blocked after cancellation")
	}

	if err := e.Wait(); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled from Wait, got %v", err)
	}
}

func TestExporter_ShardIndexIsStable(t *testing.T) {
	e := NewExporter(8, &stubReports{}, nil, zerolog.Nop())
	sel := domain.ByCategory("cat-4")
	first := e.shardIndex(sel)
	for range 10 {
		if got := e.shardIndex(sel); got != first {
			t.Fatalf("shard changed: %d != %d", got, first)
		}
	}
	if first < 0 || first >= 8 {
		t.Fatalf("shard %d out of range", first)
	}
}
