package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sarabun/internal/domain"
	"sarabun/internal/service"
	"sarabun/mocks"
)

func TestAllocatorService_Allocate_Success(t *testing.T) {
	sequenceRepo := new(mocks.MockSequenceRepo)
	svc := service.NewAllocatorService(sequenceRepo)

	sequenceRepo.On("Next", mock.Anything, "ชร", 2568).Return(1, nil)

	number, err := svc.Allocate(context.Background(), "ชร", 2568)

	assert.NoError(t, err)
	assert.Equal(t, "ชร", number.Prefix)
	assert.Equal(t, 2568, number.Year)
	assert.Equal(t, 1, number.Number)
	assert.Equal(t, "ชร. 0001/2568", number.String())
	sequenceRepo.AssertExpectations(t)
}

func TestAllocatorService_Allocate_FormatsWiderNumbers(t *testing.T) {
	sequenceRepo := new(mocks.MockSequenceRepo)
	svc := service.NewAllocatorService(sequenceRepo)

	sequenceRepo.On("Next", mock.Anything, "ชร", 2568).Return(13, nil).Once()
	sequenceRepo.On("Next", mock.Anything, "ชร", 2568).Return(12345, nil).Once()

	first, err := svc.Allocate(context.Background(), "ชร", 2568)
	assert.NoError(t, err)
	assert.Equal(t, "ชร. 0013/2568", first.String())

	second, err := svc.Allocate(context.Background(), "ชร", 2568)
	assert.NoError(t, err)
	assert.Equal(t, "ชร. 12345/2568", second.String())
}

func TestAllocatorService_Allocate_DefaultsToCurrentBuddhistYear(t *testing.T) {
	sequenceRepo := new(mocks.MockSequenceRepo)
	svc := service.NewAllocatorService(sequenceRepo)

	year := domain.BuddhistYear(time.Now())
	sequenceRepo.On("Next", mock.Anything, "ชร", year).Return(7, nil)

	number, err := svc.Allocate(context.Background(), "ชร", 0)

	assert.NoError(t, err)
	assert.Equal(t, year, number.Year)
	assert.Equal(t, 7, number.Number)
	sequenceRepo.AssertExpectations(t)
}

func TestAllocatorService_Allocate_EmptyPrefix(t *testing.T) {
	sequenceRepo := new(mocks.MockSequenceRepo)
	svc := service.NewAllocatorService(sequenceRepo)

	_, err := svc.Allocate(context.Background(), "", 2568)

	assert.ErrorIs(t, err, domain.ErrInvalidPrefix)
	sequenceRepo.AssertNotCalled(t, "Next")
}

func TestAllocatorService_Allocate_RepoError(t *testing.T) {
	sequenceRepo := new(mocks.MockSequenceRepo)
	svc := service.NewAllocatorService(sequenceRepo)

	sequenceRepo.On("Next", mock.Anything, "ชร", 2568).Return(0, domain.ErrLockContention)

	_, err := svc.Allocate(context.Background(), "ชร", 2568)

	assert.ErrorIs(t, err, domain.ErrLockContention)
}

func TestAllocatorService_Peek_Success(t *testing.T) {
	sequenceRepo := new(mocks.MockSequenceRepo)
	svc := service.NewAllocatorService(sequenceRepo)

	sequenceRepo.On("Peek", mock.Anything, "ชร", 2568).Return(42, nil)

	number, err := svc.Peek(context.Background(), "ชร", 2568)

	assert.NoError(t, err)
	assert.Equal(t, 42, number.Number)
	assert.Equal(t, "ชร. 0042/2568", number.String())
}

func TestAllocatorService_Peek_UnusedSeries(t *testing.T) {
	sequenceRepo := new(mocks.MockSequenceRepo)
	svc := service.NewAllocatorService(sequenceRepo)

	sequenceRepo.On("Peek", mock.Anything, "ชร", 2570).Return(0, nil)

	number, err := svc.Peek(context.Background(), "ชร", 2570)

	assert.NoError(t, err)
	assert.Equal(t, 0, number.Number)
}

func TestAllocatorService_Peek_RequiresExplicitYear(t *testing.T) {
	sequenceRepo := new(mocks.MockSequenceRepo)
	svc := service.NewAllocatorService(sequenceRepo)

	_, err := svc.Peek(context.Background(), "ชร", 0)

	assert.ErrorIs(t, err, domain.ErrInvalidYear)
	sequenceRepo.AssertNotCalled(t, "Peek")
}
