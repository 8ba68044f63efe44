package domain

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// MaxRevisions is the hard ceiling of tracked edits per project. A project
// at this count can never accept another revision.
const MaxRevisions = 3

// Project is a registered project record. Its document number is assigned
// once at registration; later edits go through the revision ledger.
type Project struct {
	ID             uuid.UUID     `db:"id" json:"id"`
	DocumentNumber string        `db:"document_number" json:"document_number"`
	Name           string        `db:"name" json:"name"`
	Ministry       string        `db:"ministry" json:"ministry"`
	Agency         string        `db:"agency" json:"agency"`
	Province       string        `db:"province" json:"province"`
	Budget         float64       `db:"budget" json:"budget"`
	FiscalYear     int           `db:"fiscal_year" json:"fiscal_year"`
	Coordinator    string        `db:"coordinator" json:"coordinator"`
	Status         ProjectStatus `db:"status" json:"status"`
	CreatedBy      uuid.UUID     `db:"created_by" json:"created_by"`
	CreatedAt      time.Time     `db:"created_at" json:"created_at"`
	UpdatedAt      time.Time     `db:"updated_at" json:"updated_at"`
}

// Revision is one tracked edit of a project. Immutable once created;
// version numbers run 1..MaxRevisions per project without gaps or reuse,
// and every revision carries its own freshly minted document number.
type Revision struct {
	ID               uuid.UUID       `db:"id" json:"id"`
	ProjectID        uuid.UUID       `db:"project_id" json:"project_id"`
	VersionNumber    int             `db:"version_number" json:"version_number"`
	DocumentNumber   string          `db:"document_number" json:"document_number"`
	OriginalSnapshot json.RawMessage `db:"original_snapshot" json:"original_snapshot"`
	EditedSnapshot   json.RawMessage `db:"edited_snapshot" json:"edited_snapshot"`
	EditedBy         uuid.UUID       `db:"edited_by" json:"edited_by"`
	EditReason       string          `db:"edit_reason" json:"edit_reason"`
	CreatedAt        time.Time       `db:"created_at" json:"created_at"`
}

// ProjectSummary merges a live project with its ordered revision history.
type ProjectSummary struct {
	Project      *Project   `json:"project"`
	Revisions    []Revision `json:"revisions"`
	VersionCount int        `json:"version_count"`
	CanEdit      bool       `json:"can_edit"`
}

// User represents a registry account.
type User struct {
	ID           uuid.UUID `db:"id" json:"id"`
	Email        string    `db:"email" json:"email"`
	PasswordHash string    `db:"password_hash" json:"-"`
	FullName     string    `db:"full_name" json:"full_name"`
	Role         UserRole  `db:"role" json:"role"`
	IsActive     bool      `db:"is_active" json:"is_active"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time `db:"updated_at" json:"updated_at"`
}

// RegisterRow is one line of the document register report.
type RegisterRow struct {
	DocumentNumber string    `db:"document_number" json:"document_number"`
	Name           string    `db:"name" json:"name"`
	Ministry       string    `db:"ministry" json:"ministry"`
	Agency         string    `db:"agency" json:"agency"`
	Budget         float64   `db:"budget" json:"budget"`
	FiscalYear     int       `db:"fiscal_year" json:"fiscal_year"`
	RevisionCount  int       `db:"revision_count" json:"revision_count"`
	LastRevisionNo string    `db:"last_revision_number" json:"last_revision_number"`
	RegisteredAt   time.Time `db:"registered_at" json:"registered_at"`
}
