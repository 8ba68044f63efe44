package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"sarabun/internal/port"
)

type sequenceRepo struct {
	db          *sqlx.DB
	lockTimeout time.Duration
}

// NewSequenceRepo creates a new PostgreSQL-backed SequenceRepository.
// lockTimeout bounds how long an allocation waits on a locked counter row.
func NewSequenceRepo(db *sqlx.DB, lockTimeout time.Duration) port.SequenceRepository {
	return &sequenceRepo{db: db, lockTimeout: lockTimeout}
}

func (r *sequenceRepo) Next(ctx context.Context, prefix string, year int) (int, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, storageErr("sequenceRepo.Next: begin", err)
	}
	defer tx.Rollback()

	if err := setLockTimeout(ctx, tx, r.lockTimeout); err != nil {
		return 0, err
	}
	next, err := nextNumber(ctx, tx, prefix, year)
	if err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, storageErr("sequenceRepo.Next: commit", err)
	}
	return next, nil
}

func (r *sequenceRepo) Peek(ctx context.Context, prefix string, year int) (int, error) {
	var last int
	err := r.db.GetContext(ctx, &last,
		"SELECT last_number FROM sequence_counters WHERE prefix = $1 AND year = $2",
		prefix, year)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, storageErr("sequenceRepo.Peek", err)
	}
	return last, nil
}

// setLockTimeout scopes a lock_timeout to the current transaction so a
// blocked FOR UPDATE fails as contention instead of waiting forever.
func setLockTimeout(ctx context.Context, tx *sqlx.Tx, d time.Duration) error {
	_, err := tx.ExecContext(ctx, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", d.Milliseconds()))
	if err != nil {
		return storageErr("setting lock timeout", err)
	}
	return nil
}

// nextNumber locks the (prefix, year) counter row and increments it within
// the caller's transaction. The row stays locked until the transaction ends,
// which is what serializes concurrent allocations for the same series. The
// returned number is not issued unless the caller commits.
func nextNumber(ctx context.Context, tx *sqlx.Tx, prefix string, year int) (int, error) {
	var last int
	err := tx.GetContext(ctx, &last,
		"SELECT last_number FROM sequence_counters WHERE prefix = $1 AND year = $2 FOR UPDATE",
		prefix, year)
	if errors.Is(err, sql.ErrNoRows) {
		// First allocation for this series. Concurrent first allocations race
		// on the primary key; the loser waits on the winner's insert and then
		// observes the committed row on the re-read.
		_, err = tx.ExecContext(ctx,
			`INSERT INTO sequence_counters (prefix, year, last_number)
			 VALUES ($1, $2, 0)
			 ON CONFLICT (prefix, year) DO NOTHING`,
			prefix, year)
		if err != nil {
			return 0, storageErr("creating sequence counter", err)
		}
		err = tx.GetContext(ctx, &last,
			"SELECT last_number FROM sequence_counters WHERE prefix = $1 AND year = $2 FOR UPDATE",
			prefix, year)
	}
	if err != nil {
		return 0, storageErr("locking sequence counter", err)
	}

	next := last + 1
	_, err = tx.ExecContext(ctx,
		"UPDATE sequence_counters SET last_number = $3, updated_at = now() WHERE prefix = $1 AND year = $2",
		prefix, year, next)
	if err != nil {
		return 0, storageErr("incrementing sequence counter", err)
	}
	return next, nil
}
