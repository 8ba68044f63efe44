package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"sarabun/internal/domain"
	"sarabun/internal/service"
)

// MockRevisionService is a mock implementation of service.RevisionService.
type MockRevisionService struct {
	mock.Mock
}

func (m *MockRevisionService) Create(ctx context.Context, input service.CreateRevisionInput) (*domain.Revision, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Revision), args.Error(1)
}

func (m *MockRevisionService) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Revision, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Revision), args.Error(1)
}
