package service

import (
	"context"
	"fmt"
	"log"

	"github.com/google/uuid"

	"sarabun/internal/config"
	"sarabun/internal/domain"
	"sarabun/internal/port"
)

// RegisterProjectInput is the DTO for registering a new project.
type RegisterProjectInput struct {
	Name        string
	Ministry    string
	Agency      string
	Province    string
	Budget      float64
	FiscalYear  int
	Coordinator string
	CreatedBy   uuid.UUID
}

// ProjectService registers projects and serves the merged read side
// (project plus revision history).
type ProjectService interface {
	Register(ctx context.Context, input RegisterProjectInput) (*domain.Project, error)
	GetSummary(ctx context.Context, projectID uuid.UUID) (*domain.ProjectSummary, error)
	List(ctx context.Context, offset, limit int) ([]domain.Project, int, error)
}

type projectService struct {
	projectRepo  port.ProjectRepository
	revisionRepo port.RevisionRepository
	allocator    AllocatorService
	cfg          config.RegistryConfig
}

// NewProjectService creates a new ProjectService implementation.
func NewProjectService(
	projectRepo port.ProjectRepository,
	revisionRepo port.RevisionRepository,
	allocator AllocatorService,
	cfg config.RegistryConfig,
) ProjectService {
	return &projectService{
		projectRepo:  projectRepo,
		revisionRepo: revisionRepo,
		allocator:    allocator,
		cfg:          cfg,
	}
}

func (s *projectService) Register(ctx context.Context, input RegisterProjectInput) (*domain.Project, error) {
	number, err := s.allocator.Allocate(ctx, s.cfg.Prefix, 0)
	if err != nil {
		return nil, fmt.Errorf("projectService.Register: %w", err)
	}

	fiscalYear := input.FiscalYear
	if fiscalYear <= 0 {
		fiscalYear = number.Year
	}

	project := &domain.Project{
		ID:             uuid.New(),
		DocumentNumber: number.String(),
		Name:           input.Name,
		Ministry:       input.Ministry,
		Agency:         input.Agency,
		Province:       input.Province,
		Budget:         input.Budget,
		FiscalYear:     fiscalYear,
		Coordinator:    input.Coordinator,
		Status:         domain.ProjectStatusActive,
		CreatedBy:      input.CreatedBy,
	}

	if err := s.projectRepo.Create(ctx, project); err != nil {
		log.Printf("projectService.Register: failed to create project %s: %v", project.ID, err)
		return nil, fmt.Errorf("projectService.Register: %w", err)
	}

	log.Printf("projectService.Register: registered project %s as %s", project.ID, project.DocumentNumber)
	return project, nil
}

func (s *projectService) GetSummary(ctx context.Context, projectID uuid.UUID) (*domain.ProjectSummary, error) {
	project, err := s.projectRepo.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}

	revisions, err := s.revisionRepo.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("projectService.GetSummary: %w", err)
	}

	return &domain.ProjectSummary{
		Project:      project,
		Revisions:    revisions,
		VersionCount: len(revisions),
		CanEdit:      len(revisions) < domain.MaxRevisions,
	}, nil
}

func (s *projectService) List(ctx context.Context, offset, limit int) ([]domain.Project, int, error) {
	return s.projectRepo.List(ctx, offset, limit)
}
