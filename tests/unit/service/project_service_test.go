package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sarabun/internal/domain"
	"sarabun/internal/service"
	"sarabun/mocks"
)

func TestProjectService_Register_Success(t *testing.T) {
	projectRepo := new(mocks.MockProjectRepo)
	revisionRepo := new(mocks.MockRevisionRepo)
	allocator := new(mocks.MockAllocatorService)
	svc := service.NewProjectService(projectRepo, revisionRepo, allocator, testRegistryConfig())

	creatorID := uuid.New()
	allocator.On("Allocate", mock.Anything, "ชร", 0).
		Return(domain.DocumentNumber{Prefix: "ชร", Year: 2568, Number: 5}, nil)
	projectRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *domain.Project) bool {
		return p.DocumentNumber == "ชร. 0005/2568" &&
			p.Status == domain.ProjectStatusActive &&
			p.CreatedBy == creatorID
	})).Return(nil)

	project, err := svc.Register(context.Background(), service.RegisterProjectInput{
		Name:        "โครงการส่งเสริมเกษตรอินทรีย์",
		Ministry:    "กระทรวงเกษตรและสหกรณ์",
		Agency:      "สำนักงานเกษตรจังหวัดเชียงราย",
		Province:    "เชียงราย",
		Budget:      500000,
		Coordinator: "สมชาย ใจดี",
		CreatedBy:   creatorID,
	})

	assert.NoError(t, err)
	assert.Equal(t, "ชร. 0005/2568", project.DocumentNumber)
	assert.Equal(t, 2568, project.FiscalYear)
	allocator.AssertExpectations(t)
	projectRepo.AssertExpectations(t)
}

func TestProjectService_Register_ExplicitFiscalYearKept(t *testing.T) {
	projectRepo := new(mocks.MockProjectRepo)
	revisionRepo := new(mocks.MockRevisionRepo)
	allocator := new(mocks.MockAllocatorService)
	svc := service.NewProjectService(projectRepo, revisionRepo, allocator, testRegistryConfig())

	allocator.On("Allocate", mock.Anything, "ชร", 0).
		Return(domain.DocumentNumber{Prefix: "ชร", Year: 2568, Number: 1}, nil)
	projectRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	project, err := svc.Register(context.Background(), service.RegisterProjectInput{
		Name:       "โครงการข้ามปีงบประมาณ",
		FiscalYear: 2569,
		CreatedBy:  uuid.New(),
	})

	assert.NoError(t, err)
	assert.Equal(t, 2569, project.FiscalYear)
}

func TestProjectService_Register_AllocationFails(t *testing.T) {
	projectRepo := new(mocks.MockProjectRepo)
	revisionRepo := new(mocks.MockRevisionRepo)
	allocator := new(mocks.MockAllocatorService)
	svc := service.NewProjectService(projectRepo, revisionRepo, allocator, testRegistryConfig())

	allocator.On("Allocate", mock.Anything, "ชร", 0).
		Return(domain.DocumentNumber{}, domain.ErrAllocationFailed)

	project, err := svc.Register(context.Background(), service.RegisterProjectInput{
		Name:      "โครงการที่จัดเลขไม่สำเร็จ",
		CreatedBy: uuid.New(),
	})

	assert.Nil(t, project)
	assert.ErrorIs(t, err, domain.ErrAllocationFailed)
	projectRepo.AssertNotCalled(t, "Create")
}

func TestProjectService_GetSummary_CanEditFlag(t *testing.T) {
	tests := []struct {
		name         string
		revisions    int
		expectCanEdit bool
	}{
		{"no revisions", 0, true},
		{"one revision", 1, true},
		{"two revisions", 2, true},
		{"at ceiling", 3, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			projectRepo := new(mocks.MockProjectRepo)
			revisionRepo := new(mocks.MockRevisionRepo)
			allocator := new(mocks.MockAllocatorService)
			svc := service.NewProjectService(projectRepo, revisionRepo, allocator, testRegistryConfig())

			projectID := uuid.New()
			project := &domain.Project{ID: projectID, DocumentNumber: "ชร. 0001/2568"}
			revisions := make([]domain.Revision, tt.revisions)
			for i := range revisions {
				revisions[i] = domain.Revision{ProjectID: projectID, VersionNumber: i + 1}
			}

			projectRepo.On("GetByID", mock.Anything, projectID).Return(project, nil)
			revisionRepo.On("ListByProject", mock.Anything, projectID).Return(revisions, nil)

			summary, err := svc.GetSummary(context.Background(), projectID)

			assert.NoError(t, err)
			assert.Equal(t, tt.revisions, summary.VersionCount)
			assert.Equal(t, tt.expectCanEdit, summary.CanEdit)
		})
	}
}

func TestProjectService_GetSummary_NotFound(t *testing.T) {
	projectRepo := new(mocks.MockProjectRepo)
	revisionRepo := new(mocks.MockRevisionRepo)
	allocator := new(mocks.MockAllocatorService)
	svc := service.NewProjectService(projectRepo, revisionRepo, allocator, testRegistryConfig())

	projectID := uuid.New()
	projectRepo.On("GetByID", mock.Anything, projectID).Return(nil, domain.ErrProjectNotFound)

	summary, err := svc.GetSummary(context.Background(), projectID)

	assert.Nil(t, summary)
	assert.ErrorIs(t, err, domain.ErrProjectNotFound)
	revisionRepo.AssertNotCalled(t, "ListByProject")
}

func TestProjectService_List(t *testing.T) {
	projectRepo := new(mocks.MockProjectRepo)
	revisionRepo := new(mocks.MockRevisionRepo)
	allocator := new(mocks.MockAllocatorService)
	svc := service.NewProjectService(projectRepo, revisionRepo, allocator, testRegistryConfig())

	projects := []domain.Project{{ID: uuid.New()}, {ID: uuid.New()}}
	projectRepo.On("List", mock.Anything, 0, 20).Return(projects, 2, nil)

	result, total, err := svc.List(context.Background(), 0, 20)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Equal(t, 2, total)
}
