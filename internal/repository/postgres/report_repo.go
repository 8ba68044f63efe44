package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"sarabun/internal/domain"
	"sarabun/internal/port"
)

type reportRepo struct {
	db *sqlx.DB
}

// NewReportRepo creates a new PostgreSQL-backed ReportRepository.
func NewReportRepo(db *sqlx.DB) port.ReportRepository {
	return &reportRepo{db: db}
}

func (r *reportRepo) Register(ctx context.Context, fiscalYear int) ([]domain.RegisterRow, error) {
	query := `SELECT
		p.document_number,
		p.name,
		p.ministry,
		p.agency,
		p.budget,
		p.fiscal_year,
		(SELECT COUNT(*) FROM project_revisions rv WHERE rv.project_id = p.id) AS revision_count,
		COALESCE((SELECT rv.document_number FROM project_revisions rv
			WHERE rv.project_id = p.id
			ORDER BY rv.version_number DESC LIMIT 1), '') AS last_revision_number,
		p.created_at AS registered_at
	FROM projects p
	WHERE ($1 = 0 OR p.fiscal_year = $1)
	ORDER BY p.created_at ASC`

	var rows []domain.RegisterRow
	if err := r.db.SelectContext(ctx, &rows, query, fiscalYear); err != nil {
		return nil, fmt.Errorf("reportRepo.Register: %w", err)
	}
	return rows, nil
}
