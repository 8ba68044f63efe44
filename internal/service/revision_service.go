package service

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"sarabun/internal/config"
	"sarabun/internal/domain"
	"sarabun/internal/port"
)

// CreateRevisionInput is the DTO for creating a project revision.
type CreateRevisionInput struct {
	ProjectID    uuid.UUID
	EditedFields map[string]interface{}
	EditedBy     uuid.UUID
	EditReason   string
}

// RevisionResult is returned to the caller after a successful revision.
type RevisionResult struct {
	VersionID      uuid.UUID `json:"version_id"`
	VersionNumber  int       `json:"version_number"`
	DocumentNumber string    `json:"document_number"`
}

// RevisionService is the bounded revision ledger: each project accepts at
// most domain.MaxRevisions tracked edits, each one an immutable snapshot
// pair carrying a freshly minted document number.
type RevisionService interface {
	Create(ctx context.Context, input CreateRevisionInput) (*domain.Revision, error)
	ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Revision, error)
}

type revisionService struct {
	revisionRepo port.RevisionRepository
	projectRepo  port.ProjectRepository
	cfg          config.RegistryConfig
	now          func() time.Time
}

// NewRevisionService creates a new RevisionService implementation.
func NewRevisionService(
	revisionRepo port.RevisionRepository,
	projectRepo port.ProjectRepository,
	cfg config.RegistryConfig,
) RevisionService {
	return &revisionService{
		revisionRepo: revisionRepo,
		projectRepo:  projectRepo,
		cfg:          cfg,
		now:          time.Now,
	}
}

func (s *revisionService) Create(ctx context.Context, input CreateRevisionInput) (*domain.Revision, error) {
	editedSnapshot, err := json.Marshal(input.EditedFields)
	if err != nil {
		return nil, fmt.Errorf("revisionService.Create: freezing edited fields: %w", err)
	}

	log.Printf("revisionService.Create: creating revision for project %s by user %s",
		input.ProjectID, input.EditedBy)

	revision, err := s.revisionRepo.CreateRevision(ctx, port.CreateRevisionParams{
		ProjectID:      input.ProjectID,
		Prefix:         s.cfg.Prefix,
		Year:           domain.BuddhistYear(s.now()),
		EditedSnapshot: editedSnapshot,
		EditedBy:       input.EditedBy,
		EditReason:     input.EditReason,
		Writeback:      extractWriteback(input.EditedFields),
	})
	if err != nil {
		log.Printf("revisionService.Create: project %s: %v", input.ProjectID, err)
		return nil, err
	}

	log.Printf("revisionService.Create: project %s now at version %d (number %s)",
		input.ProjectID, revision.VersionNumber, revision.DocumentNumber)
	return revision, nil
}

func (s *revisionService) ListByProject(ctx context.Context, projectID uuid.UUID) ([]domain.Revision, error) {
	if _, err := s.projectRepo.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	return s.revisionRepo.ListByProject(ctx, projectID)
}

// extractWriteback filters the edited fields down to the fixed allow-list
// (domain.RevisionWritebackFields); everything else stays snapshot-only.
func extractWriteback(fields map[string]interface{}) domain.RevisionWriteback {
	var wb domain.RevisionWriteback
	for _, key := range domain.RevisionWritebackFields {
		raw, ok := fields[key]
		if !ok {
			continue
		}
		switch key {
		case "name":
			if v, ok := raw.(string); ok {
				wb.Name = &v
			}
		case "ministry":
			if v, ok := raw.(string); ok {
				wb.Ministry = &v
			}
		case "agency":
			if v, ok := raw.(string); ok {
				wb.Agency = &v
			}
		case "budget":
			if v, ok := toFloat(raw); ok {
				wb.Budget = &v
			}
		}
	}
	return wb
}

// toFloat accepts the numeric shapes JSON decoding can produce.
func toFloat(raw interface{}) (float64, bool) {
	switch v := raw.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case json.Number:
		f, err := v.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
