package mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"sarabun/internal/domain"
	"sarabun/internal/port"
)

// MockRevisionRepo is a mock implementation of port.RevisionRepository.
type MockRevisionRepo struct {
	mock.Mock
}

func (m *MockRevisionRepo) CreateRevision(ctx context.Context, params port.CreateRevisionParams) (*domain.Revision, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Revision), args.Error(1)
}

func (m *MockRevisionRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Revision, error) {
	args := m.Called(ctx, projectID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Revision), args.Error(1)
}
