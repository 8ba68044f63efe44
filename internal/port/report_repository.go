package port

import (
	"context"

	"sarabun/internal/domain"
)

// ReportRepository defines the contract for document register reporting.
type ReportRepository interface {
	// Register returns the register rows, optionally filtered by fiscal
	// year (0 means all years), ordered by registration time.
	Register(ctx context.Context, fiscalYear int) ([]domain.RegisterRow, error)
}
