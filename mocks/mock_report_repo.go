package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sarabun/internal/domain"
)

// MockReportRepo is a mock implementation of port.ReportRepository.
type MockReportRepo struct {
	mock.Mock
}

func (m *MockReportRepo) Register(ctx context.Context, fiscalYear int) ([]domain.RegisterRow, error) {
	args := m.Called(ctx, fiscalYear)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RegisterRow), args.Error(1)
}
