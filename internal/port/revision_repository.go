package port

import (
	"context"
	"encoding/json"

	"github.com/google/uuid"

	"sarabun/internal/domain"
)

// CreateRevisionParams carries everything the ledger needs to append one
// revision. The original snapshot is taken inside the transaction, after the
// project row is locked, so it reflects the state the edit was based on.
type CreateRevisionParams struct {
	ProjectID      uuid.UUID
	Prefix         string
	Year           int
	EditedSnapshot json.RawMessage
	EditedBy       uuid.UUID
	EditReason     string
	Writeback      domain.RevisionWriteback
}

// RevisionRepository defines the contract for the append-only revision
// ledger. CreateRevision is a single transaction: it locks the project row,
// enforces the domain.MaxRevisions ceiling, mints a document number from the
// shared sequence, inserts the revision, and applies the write-back fields.
// Either all of that commits or none of it does; a failed attempt consumes
// neither a version number nor a document number.
type RevisionRepository interface {
	CreateRevision(ctx context.Context, params CreateRevisionParams) (*domain.Revision, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Revision, error)
}
