package port

import (
	"context"

	"github.com/google/uuid"

	"sarabun/internal/domain"
)

// SequenceRepository defines the contract for the durable (prefix, year)
// counters. Next executes the read-increment-write as one serializable unit:
// the counter row stays locked until the transaction commits, so concurrent
// callers for the same pair serialize and never observe the same number.
type SequenceRepository interface {
	// Next locks the (prefix, year) row, increments it, and returns the new
	// value. The row is created with value 1 on first allocation. On any
	// failure the transaction rolls back and the counter is unchanged.
	Next(ctx context.Context, prefix string, year int) (int, error)
	// Peek returns the last issued number without allocating (0 if the
	// series has not issued anything). Display only; the value may be stale
	// by the time the caller reads it.
	Peek(ctx context.Context, prefix string, year int) (int, error)
}

// ProjectRepository defines the contract for project persistence.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Project, error)
	List(ctx context.Context, offset, limit int) ([]domain.Project, int, error)
}

// UserRepository defines the contract for registry account persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, int, error)
}
