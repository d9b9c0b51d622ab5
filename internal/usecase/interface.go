package usecase

import (
	"cheque-splitter/internal/domain"
	"context"
)

// WorkbookRepository defines the interface for reading input workbooks and writing results.
// The usecase layer depends on this interface, not on a concrete implementation.
//
//go:generate mockgen -destination=mocks/mock_repository.go -source=interface.go WorkbookRepository
type WorkbookRepository interface {
	ReadWorkbook(ctx context.Context, path string) (domain.RawWorkbook, error)
	WriteWorkbook(ctx context.Context, path string, tables []domain.Table) error
}
