// Package queue runs report generation on a fixed pool of workers.
package queue

import (
	"context"
	"errors"
	"hash/fnv"
	"sync"

	"github.com/rs/zerolog"

	"github.com/recipebook/recipe-book/internal/core/domain"
	"github.com/recipebook/recipe-book/internal/core/ports"
)

const (
	defaultWorkers = 4
	channelBuffer  = 64
)

// Sink receives every rendered document with the request it answers. It may
// be called from several workers at once.
type Sink func(ctx context.Context, req domain.ReportRequest, doc *domain.Document) error

// Exporter routes report requests to workers by selector, so requests for the
// same selector are rendered in the order they were enqueued.
type Exporter struct {
	workers []chan domain.ReportRequest
	reports ports.ReportService
	sink    Sink
	log     zerolog.Logger

	wg   sync.WaitGroup
	mu   sync.Mutex
	errs []error

	stop     chan struct{}
	stopOnce sync.Once
	stopErr  error
}

// NewExporter creates an Exporter with numWorkers sharded workers.
// If numWorkers <= 0, defaultWorkers is used.
func NewExporter(numWorkers int, reports ports.ReportService, sink Sink, log zerolog.Logger) *Exporter {
	if numWorkers <= 0 {
		numWorkers = defaultWorkers
	}
	e := &Exporter{
		workers: make([]chan domain.ReportRequest, numWorkers),
		reports: reports,
		sink:    sink,
		log:     log,
		stop:    make(chan struct{}),
	}
	for i := range e.workers {
		e.workers[i] = make(chan domain.ReportRequest, channelBuffer)
	}
	return e
}

// Start launches the worker goroutines. Workers stop when ctx is cancelled or
// when Wait closes their queues. Cancelling ctx also unblocks Enqueue.
func (e *Exporter) Start(ctx context.Context) {
	context.AfterFunc(ctx, func() {
		e.stopOnce.Do(func() {
			e.stopErr = ctx.Err()
			close(e.stop)
		})
	})
	for i, ch := range e.workers {
		e.wg.Add(1)
		go e.runWorker(ctx, i, ch)
	}
}

// Enqueue hands req to the worker responsible for its selector. It blocks
// once that worker's buffer is full, and returns the context error without
// enqueueing once the Start context is cancelled.
func (e *Exporter) Enqueue(req domain.ReportRequest) error {
	select {
	case <-e.stop:
		return e.stopErr
	default:
	}
	select {
	case e.workers[e.shardIndex(req.Selector)] <- req:
		return nil
	case <-e.stop:
		return e.stopErr
	}
}

// EnqueueBatch enqueues reqs preserving per-selector order. It stops at the
// first request that cannot be enqueued.
func (e *Exporter) EnqueueBatch(reqs []domain.ReportRequest) error {
	for _, r := range reqs {
		if err := e.Enqueue(r); err != nil {
			return err
		}
	}
	return nil
}

// Wait closes the queues, waits for the workers to drain them and returns
// every failure joined. Nothing may be enqueued after Wait.
func (e *Exporter) Wait() error {
	for _, ch := range e.workers {
		close(ch)
	}
	e.wg.Wait()

	e.mu.Lock()
	defer e.mu.Unlock()
	return errors.Join(e.errs...)
}

func (e *Exporter) shardIndex(sel domain.Selector) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(string(sel.Type) + ":" + sel.ID))
	return int(h.Sum32() % uint32(len(e.workers)))
}

func (e *Exporter) runWorker(ctx context.Context, id int, ch <-chan domain.ReportRequest) {
	defer e.wg.Done()
	for {
		select {
		case <-ctx.Done():
			e.fail(ctx.Err())
			return
		case req, ok := <-ch:
			if !ok {
				return
			}
			if err := e.export(ctx, req); err != nil {
				e.log.Error().Err(err).
					Str("selector", string(req.Selector.Type)).
					Str("id", req.Selector.ID).
					Int("worker_id", id).
					Msg("report export failed")
				e.fail(err)
			}
		}
	}
}

func (e *Exporter) export(ctx context.Context, req domain.ReportRequest) error {
	doc, err := e.reports.Generate(ctx, req)
	if err != nil {
		return err
	}
	return e.sink(ctx, req, doc)
}

func (e *Exporter) fail(err error) {
	e.mu.Lock()
	e.errs = append(e.errs, err)
	e.mu.Unlock()
}
