package postgres

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"sarabun/internal/domain"
)

// PostgreSQL error codes relevant to the numbering core.
const (
	pgCodeLockNotAvailable = "55P03" // lock_timeout expired
	pgCodeUniqueViolation  = "23505"
)

// storageErr translates a driver error into the domain taxonomy. Lock
// timeouts surface as contention (safe to retry, nothing committed);
// everything else is a transient storage failure.
func storageErr(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgCodeLockNotAvailable {
		return fmt.Errorf("%s: %w", op, domain.ErrLockContention)
	}
	return fmt.Errorf("%s: %w: %v", op, domain.ErrStorage, err)
}

// isUniqueViolation reports whether err is a unique-constraint violation,
// optionally on a specific constraint name.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != pgCodeUniqueViolation {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}
