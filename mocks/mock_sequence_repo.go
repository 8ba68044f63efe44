package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockSequenceRepo is a mock implementation of port.SequenceRepository.
type MockSequenceRepo struct {
	mock.Mock
}

func (m *MockSequenceRepo) Next(ctx context.Context, prefix string, year int) (int, error) {
	args := m.Called(ctx, prefix, year)
	return args.Int(0), args.Error(1)
}

func (m *MockSequenceRepo) Peek(ctx context.Context, prefix string, year int) (int, error) {
	args := m.Called(ctx, prefix, year)
	return args.Int(0), args.Error(1)
}
