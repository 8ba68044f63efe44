package service

import (
	"context"

	"sarabun/internal/domain"
	"sarabun/internal/port"
)

// ReportService provides the document register report.
type ReportService interface {
	Register(ctx context.Context, fiscalYear int) ([]domain.RegisterRow, error)
}

type reportService struct {
	reportRepo port.ReportRepository
}

// NewReportService creates a new ReportService implementation.
func NewReportService(reportRepo port.ReportRepository) ReportService {
	return &reportService{reportRepo: reportRepo}
}

func (s *reportService) Register(ctx context.Context, fiscalYear int) ([]domain.RegisterRow, error) {
	return s.reportRepo.Register(ctx, fiscalYear)
}
