package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"sarabun/internal/domain"
	"sarabun/internal/port"
)

type revisionRepo struct {
	db          *sqlx.DB
	lockTimeout time.Duration
}

// NewRevisionRepo creates a new PostgreSQL-backed RevisionRepository.
func NewRevisionRepo(db *sqlx.DB, lockTimeout time.Duration) port.RevisionRepository {
	return &revisionRepo{db: db, lockTimeout: lockTimeout}
}

// CreateRevision appends one revision in a single transaction. The project
// row lock serializes concurrent edits on the same project: the second
// caller blocks until the first commits and then re-reads the count, so two
// racing edits can never both pass the ceiling. The document number comes
// from the shared sequence inside the same transaction, so a failed insert
// never wastes a number and a committed revision always has one.
func (r *revisionRepo) CreateRevision(ctx context.Context, params port.CreateRevisionParams) (*domain.Revision, error) {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, storageErr("revisionRepo.CreateRevision: begin", err)
	}
	defer tx.Rollback()

	if err := setLockTimeout(ctx, tx, r.lockTimeout); err != nil {
		return nil, err
	}

	var project domain.Project
	err = tx.GetContext(ctx, &project,
		"SELECT * FROM projects WHERE id = $1 FOR UPDATE", params.ProjectID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrProjectNotFound
		}
		return nil, storageErr("revisionRepo.CreateRevision: locking project", err)
	}

	var count int
	err = tx.GetContext(ctx, &count,
		"SELECT COUNT(*) FROM project_revisions WHERE project_id = $1", params.ProjectID)
	if err != nil {
		return nil, storageErr("revisionRepo.CreateRevision: counting revisions", err)
	}
	if count >= domain.MaxRevisions {
		return nil, domain.ErrEditLimitExceeded
	}

	originalSnapshot, err := json.Marshal(&project)
	if err != nil {
		return nil, fmt.Errorf("revisionRepo.CreateRevision: snapshotting project: %w", err)
	}

	number, err := nextNumber(ctx, tx, params.Prefix, params.Year)
	if err != nil {
		return nil, fmt.Errorf("revisionRepo.CreateRevision: %w",
			errors.Join(domain.ErrAllocationFailed, err))
	}
	docNumber := domain.DocumentNumber{Prefix: params.Prefix, Year: params.Year, Number: number}

	revision := &domain.Revision{
		ID:               uuid.New(),
		ProjectID:        params.ProjectID,
		VersionNumber:    count + 1,
		DocumentNumber:   docNumber.String(),
		OriginalSnapshot: originalSnapshot,
		EditedSnapshot:   params.EditedSnapshot,
		EditedBy:         params.EditedBy,
		EditReason:       params.EditReason,
		CreatedAt:        time.Now().UTC(),
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO project_revisions (
			id, project_id, version_number, document_number,
			original_snapshot, edited_snapshot, edited_by, edit_reason, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		revision.ID, revision.ProjectID, revision.VersionNumber, revision.DocumentNumber,
		revision.OriginalSnapshot, revision.EditedSnapshot, revision.EditedBy, revision.EditReason, revision.CreatedAt)
	if err != nil {
		return nil, storageErr("revisionRepo.CreateRevision: inserting revision", err)
	}

	// Apply only the allow-listed fields back onto the live project. Nil
	// write-back values leave the field as is; the last-modified timestamp
	// is bumped on every successful revision, even when no field survived
	// the allow-list.
	wb := params.Writeback
	_, err = tx.ExecContext(ctx,
		`UPDATE projects SET
			name = COALESCE($2, name),
			ministry = COALESCE($3, ministry),
			agency = COALESCE($4, agency),
			budget = COALESCE($5, budget),
			updated_at = $6
		 WHERE id = $1`,
		params.ProjectID, wb.Name, wb.Ministry, wb.Agency, wb.Budget, revision.CreatedAt)
	if err != nil {
		return nil, storageErr("revisionRepo.CreateRevision: applying edits", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, storageErr("revisionRepo.CreateRevision: commit", err)
	}
	return revision, nil
}

func (r *revisionRepo) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Revision, error) {
	var revisions []domain.Revision
	err := r.db.SelectContext(ctx, &revisions,
		`SELECT * FROM project_revisions WHERE project_id = $1 ORDER BY version_number ASC`,
		projectID)
	if err != nil {
		return nil, fmt.Errorf("revisionRepo.ListByProject: %w", err)
	}
	return revisions, nil
}
