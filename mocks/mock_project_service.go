package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"sarabun/internal/domain"
	"sarabun/internal/service"
)

// MockProjectService is a mock implementation of service.ProjectService.
type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) Register(ctx context.Context, input service.RegisterProjectInput) (*domain.Project, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Project), args.Error(1)
}

func (m *MockProjectService) GetSummary(ctx context.Context, projectID uuid.UUID) (*domain.ProjectSummary, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProjectSummary), args.Error(1)
}

func (m *MockProjectService) List(ctx context.Context, offset, limit int) ([]domain.Project, int, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]domain.Project), args.Int(1), args.Error(2)
}
