// Package services orchestrates the ledger's read and write paths over
// the record store, the aggregation functions, and the export adapters.
package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"tally/internal/core"
	"tally/internal/export"
)

// ErrNoRecords signals that an operation had nothing to work with. It
// is a notice, not a failure: callers report it and move on.
var ErrNoRecords = errors.New("no records found")

// Store is the record store the service writes to and reads from.
type Store interface {
	Insert(ctx context.Context, rec core.Record) (int64, error)
	ListAll(ctx context.Context) ([]core.Record, error)
	Search(ctx context.Context, f core.Filter) ([]core.Record, error)
}

// Renderer rasterizes a labeled series to an image file.
type Renderer interface {
	RenderPie(s export.Series, path string) error
	RenderTrend(s export.Series, path string) error
}

// Report holds the full set of analytics over the ledger.
type Report struct {
	Total      float64
	ByCategory []core.CategoryTotal
	ByMonth    []core.MonthTotal
}

// Empty reports whether there was nothing to aggregate.
func (r Report) Empty() bool {
	return len(r.ByCategory) == 0 && len(r.ByMonth) == 0
}

// LedgerService wires validation, storage, aggregation and export.
type LedgerService struct {
	store    Store
	renderer Renderer
}

func NewLedgerService(store Store, renderer Renderer) *LedgerService {
	return &LedgerService{
		store:    store,
		renderer: renderer,
	}
}

// Add validates raw input and persists the resulting record. Validation
// failures return before anything touches the store, so no partial
// record is ever written.
func (s *LedgerService) Add(ctx context.Context, dateText, category, amountText, notes string) (core.Record, error) {
	rec, err := core.NewRecord(dateText, category, amountText, notes)
	if err != nil {
		return core.Record{}, err
	}

	id, err := s.store.Insert(ctx, rec)
	if err != nil {
		return core.Record{}, fmt.Errorf("save expense: %w", err)
	}
	rec.ID = id

	return rec, nil
}

// All returns every record in display order (date desc, id desc).
func (s *LedgerService) All(ctx context.Context) ([]core.Record, error) {
	return s.store.ListAll(ctx)
}

// Search returns the records matching the filter in display order. An
// empty result is valid, not an error.
func (s *LedgerService) Search(ctx context.Context, f core.Filter) ([]core.Record, error) {
	if f.IsZero() {
		return s.store.ListAll(ctx)
	}
	return s.store.Search(ctx, f)
}

// Analytics aggregates the whole ledger.
func (s *LedgerService) Analytics(ctx context.Context) (Report, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return Report{}, fmt.Errorf("load records: %w", err)
	}
	return Report{
		Total:      core.TotalSpending(records),
		ByCategory: core.ByCategory(records),
		ByMonth:    core.ByMonth(records),
	}, nil
}

// RenderCharts writes the category pie and monthly trend charts,
// returning the paths actually written. A chart whose series is empty
// is skipped with a log notice rather than rendered.
func (s *LedgerService) RenderCharts(ctx context.Context, report Report, piePath, trendPath string) ([]string, error) {
	var written []string

	err := s.renderer.RenderPie(export.CategorySeries(report.ByCategory), piePath)
	switch {
	case errors.Is(err, export.ErrEmptySeries):
		slog.InfoContext(ctx, "Skipping category chart", "reason", "no data")
	case err != nil:
		return written, fmt.Errorf("render category chart: %w", err)
	default:
		written = append(written, piePath)
	}

	err = s.renderer.RenderTrend(export.MonthSeries(report.ByMonth), trendPath)
	switch {
	case errors.Is(err, export.ErrEmptySeries):
		slog.InfoContext(ctx, "Skipping trend chart", "reason", "no data")
	case err != nil:
		return written, fmt.Errorf("render trend chart: %w", err)
	default:
		written = append(written, trendPath)
	}

	return written, nil
}

// ExportCSV writes the full ledger to path in display order and returns
// the number of data rows. An empty ledger returns ErrNoRecords without
// creating a file.
func (s *LedgerService) ExportCSV(ctx context.Context, path string) (int, error) {
	records, err := s.store.ListAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("load records: %w", err)
	}
	if len(records) == 0 {
		return 0, ErrNoRecords
	}
	if err := export.ExportCSV(path, records); err != nil {
		return 0, err
	}

	slog.InfoContext(ctx, "Ledger exported", "path", path, "rows", len(records))
	return len(records), nil
}
