package service

import (
	"context"
	"log"
	"time"

	"sarabun/internal/domain"
	"sarabun/internal/port"
)

// AllocatorService mints sequential document numbers per (prefix, year)
// series. Concurrent allocations for the same series serialize on the
// durable counter row; no two callers ever receive the same number.
type AllocatorService interface {
	// Allocate mints the next number for the series. year <= 0 defaults to
	// the current Buddhist Era year.
	Allocate(ctx context.Context, prefix string, year int) (domain.DocumentNumber, error)
	// Peek returns the last issued number for the series without
	// allocating. Display only: never use it to decide whether to allocate.
	Peek(ctx context.Context, prefix string, year int) (domain.DocumentNumber, error)
}

type allocatorService struct {
	sequenceRepo port.SequenceRepository
	now          func() time.Time
}

// NewAllocatorService creates a new AllocatorService implementation.
func NewAllocatorService(sequenceRepo port.SequenceRepository) AllocatorService {
	return &allocatorService{sequenceRepo: sequenceRepo, now: time.Now}
}

func (s *allocatorService) Allocate(ctx context.Context, prefix string, year int) (domain.DocumentNumber, error) {
	if prefix == "" {
		return domain.DocumentNumber{}, domain.ErrInvalidPrefix
	}
	if year <= 0 {
		year = domain.BuddhistYear(s.now())
	}

	number, err := s.sequenceRepo.Next(ctx, prefix, year)
	if err != nil {
		log.Printf("allocatorService.Allocate: series %s/%d: %v", prefix, year, err)
		return domain.DocumentNumber{}, err
	}
	return domain.DocumentNumber{Prefix: prefix, Year: year, Number: number}, nil
}

func (s *allocatorService) Peek(ctx context.Context, prefix string, year int) (domain.DocumentNumber, error) {
	if prefix == "" {
		return domain.DocumentNumber{}, domain.ErrInvalidPrefix
	}
	if year <= 0 {
		return domain.DocumentNumber{}, domain.ErrInvalidYear
	}

	number, err := s.sequenceRepo.Peek(ctx, prefix, year)
	if err != nil {
		return domain.DocumentNumber{}, err
	}
	return domain.DocumentNumber{Prefix: prefix, Year: year, Number: number}, nil
}
