package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/cobra"

	"github.com/recipebook/recipe-book/internal/core/domain"
	"github.com/recipebook/recipe-book/internal/infrastructure/queue"
	"github.com/recipebook/recipe-book/pkg/logger"
)

func newReportCommand(rt *runtime) *cobra.Command {
	var (
		categoryID   string
		userID       string
		format       string
		outDir       string
		eachCategory bool
		workers      int
	)
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export recipes of a category or an author",
		Long: `Export recipes to a file named recipes-<category|user>-<date>.<format>.

Formats are xlsx, xls and pdf. With --each-category one file is written per
category that has recipes.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()
			f := domain.ReportFormat(format)
			if eachCategory {
				return exportEachCategory(cmd, rt, f, workers, outDir)
			}

			var sel domain.Selector
			switch {
			case categoryID != "":
				sel = domain.ByCategory(categoryID)
			case userID != "":
				sel = domain.ByUser(userID)
			default:
				return domain.InvalidInput("one of --category, --user or --each-category is required")
			}

			doc, err := rt.svc.Reports.Generate(ctx, domain.ReportRequest{Selector: sel, Format: f})
			if err != nil {
				return err
			}
			return writeDocument(cmd, outDir)(doc)
		},
	}
	cmd.Flags().StringVar(&categoryID, "category", "", "Export this category")
	cmd.Flags().StringVar(&userID, "user", "", "Export recipes by this user id")
	cmd.Flags().StringVar(&format, "format", string(domain.FormatPDF), "xlsx, xls or pdf")
	cmd.Flags().StringVarP(&outDir, "out", "o", ".", "Directory to write into")
	cmd.Flags().BoolVar(&eachCategory, "each-category", false, "Export every category")
	cmd.Flags().IntVar(&workers, "workers", 0, "Parallel exports with --each-category")
	cmd.MarkFlagsMutuallyExclusive("category", "user", "each-category")
	return cmd
}

// outMu serialises progress lines of concurrent exports.
var outMu sync.Mutex

// writeDocument saves doc under dir and reports the path on stdout. It is
// safe for concurrent use.
func writeDocument(cmd *cobra.Command, dir string) func(doc *domain.Document) error {
	return func(doc *domain.Document) error {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		path := filepath.Join(dir, doc.Filename)
		if err := os.WriteFile(path, doc.Content, 0o644); err != nil {
			return fmt.Errorf("write report: %w", err)
		}
		outMu.Lock()
		defer outMu.Unlock()
		fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", path)
		return nil
	}
}

// exportEachCategory writes one report per category into <dir>/<category id>,
// since reports of one day share a file name. Categories without recipes are
// skipped.
func exportEachCategory(cmd *cobra.Command, rt *runtime, format domain.ReportFormat, workers int, dir string) error {
	ctx := cmd.Context()
	if !format.Valid() {
		return domain.InvalidInput("report format must be one of: xlsx xls pdf")
	}
	cats, err := rt.svc.Categories.List(ctx)
	if err != nil {
		return err
	}

	reqs := make([]domain.ReportRequest, 0, len(cats))
	writers := make(map[string]func(*domain.Document) error, len(cats))
	for _, c := range cats {
		reqs = append(reqs, domain.ReportRequest{Selector: domain.ByCategory(c.ID), Format: format})
		writers[c.ID] = writeDocument(cmd, filepath.Join(dir, c.ID))
	}

	sink := func(_ context.Context, req domain.ReportRequest, doc *domain.Document) error {
		return writers[req.Selector.ID](doc)
	}
	e := queue.NewExporter(workers, rt.svc.Reports, sink, logger.For("export"))
	e.Start(ctx)
	if err := e.EnqueueBatch(reqs); err != nil {
		_ = e.Wait()
		return err
	}
	return ignoreEmpty(e.Wait())
}

// ignoreEmpty drops ErrEmptyResult from a joined error.
func ignoreEmpty(err error) error {
	if err == nil {
		return nil
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		if errors.Is(err, domain.ErrEmptyResult) {
			return nil
		}
		return err
	}
	var rest []error
	for _, e := range joined.Unwrap() {
		if !errors.Is(e, domain.ErrEmptyResult) {
			rest = append(rest, e)
		}
	}
	return errors.Join(rest...)
}
