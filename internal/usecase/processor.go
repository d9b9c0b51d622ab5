package usecase

import (
	"context"
	"fmt"

	"cheque-splitter/internal/domain"
	"cheque-splitter/internal/logger"
)

// ChequeProcessor turns a cheque register workbook into per-month sheets and a summary.
type ChequeProcessor struct {
	repo      WorkbookRepository
	collision CollisionPolicy
}

// Option configures a ChequeProcessor.
type Option func(*ChequeProcessor)

// WithCollisionPolicy sets how same-named months from different years are handled.
func WithCollisionPolicy(p CollisionPolicy) Option {
	return func(cp *ChequeProcessor) {
		cp.collision = p
	}
}

// NewChequeProcessor creates a new instance of the usecase.
func NewChequeProcessor(repo WorkbookRepository, opts ...Option) *ChequeProcessor {
	cp := &ChequeProcessor{repo: repo, collision: CollisionOverwrite}
	for _, opt := range opts {
		opt(cp)
	}
	return cp
}

// Load reads the workbook at path and runs the whole transformation.
// It fails with a *domain.ReadError or *domain.SchemaError.
func (cp *ChequeProcessor) Load(ctx context.Context, path string) (*domain.ProcessedWorkbook, error) {
	log := logger.FromContext(ctx).With().Str("input", path).Logger()

	// Step 1: Data Ingestion
	raw, err := cp.repo.ReadWorkbook(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("could not read workbook: %w", err)
	}
	if len(raw.Sheets) == 0 {
		return nil, &domain.ReadError{Path: path, Err: domain.ErrNoSheets}
	}

	// Step 2: Normalization, every sheet into one pool
	stats := domain.LoadStats{SheetsRead: len(raw.Sheets)}
	var all []domain.Transaction
	for _, sheet := range raw.Sheets {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		norm, err := normalizeSheet(sheet)
		if err != nil {
			return nil, fmt.Errorf("could not normalize workbook %s: %w", path, err)
		}
		if norm.DateParseFailures > 0 {
			log.Debug().Str("sheet", sheet.Name).Int("failures", norm.DateParseFailures).Msg("unparseable dates treated as blank")
		}
		stats.RowsRead += len(norm.Transactions)
		stats.DateParseFailures += norm.DateParseFailures
		all = append(all, norm.Transactions...)
	}

	// Step 3: Month grouping
	groups, dropped := groupByMonth(all)
	stats.RowsWithoutMonth = dropped
	named, overwritten := nameGroups(groups, cp.collision)
	for _, k := range overwritten {
		log.Warn().Str("month", k.String()).Msg("month sheet replaced by a later year with the same month name")
	}
	stats.OverwrittenMonths = len(overwritten)

	// Step 4: Sort and summarize each month, then roll up
	processed := &domain.ProcessedWorkbook{Source: path}
	for _, g := range named {
		sheet := buildMonthSheet(g)
		stats.TransactionsGrouped += len(sheet.Transactions)
		processed.Months = append(processed.Months, sheet)
	}
	processed.Summary = aggregate(processed.Months)
	processed.Stats = stats

	log.Info().
		Int("sheets", stats.SheetsRead).
		Int("rows", stats.RowsRead).
		Int("months", len(processed.Months)).
		Int("skipped", stats.RowsWithoutMonth).
		Msg("workbook processed")
	return processed, nil
}

// Save writes a processed workbook to path. It fails with a *domain.WriteError.
func (cp *ChequeProcessor) Save(ctx context.Context, processed *domain.ProcessedWorkbook, path string) error {
	if processed == nil {
		return &domain.WriteError{Path: path, Err: domain.ErrNoSheets}
	}
	tables := renderTables(processed)
	if err := cp.repo.WriteWorkbook(ctx, path, tables); err != nil {
		return fmt.Errorf("could not write workbook: %w", err)
	}
	log := logger.FromContext(ctx)
	log.Info().Str("output", path).Int("sheets", len(tables)).Msg("workbook saved")
	return nil
}
