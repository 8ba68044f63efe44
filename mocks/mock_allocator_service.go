package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sarabun/internal/domain"
)

// MockAllocatorService is a mock implementation of service.AllocatorService.
type MockAllocatorService struct {
	mock.Mock
}

func (m *MockAllocatorService) Allocate(ctx context.Context, prefix string, year int) (domain.DocumentNumber, error) {
	args := m.Called(ctx, prefix, year)
	return args.Get(0).(domain.DocumentNumber), args.Error(1)
}

func (m *MockAllocatorService) Peek(ctx context.Context, prefix string, year int) (domain.DocumentNumber, error) {
	args := m.Called(ctx, prefix, year)
	return args.Get(0).(domain.DocumentNumber), args.Error(1)
}
