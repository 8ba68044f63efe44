package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"sarabun/internal/middleware"
	"sarabun/internal/service"
)

// ProjectHandler handles project registration, summary, and revision endpoints.
type ProjectHandler struct {
	projectService  service.ProjectService
	revisionService service.RevisionService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(projectService service.ProjectService, revisionService service.RevisionService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService, revisionService: revisionService}
}

// Register handles POST /api/v1/projects
// @Summary Register a project
// @Description Register a new project; allocates the next document number for the installation's series
// @Tags projects
// @Accept json
// @Produce json
// @Param request body RegisterProjectRequest true "Project details"
// @Success 201 {object} APIResponse "Project registered with its document number"
// @Failure 400 {object} APIResponse "Validation error"
// @Failure 500 {object} APIResponse "Number allocation failed"
// @Security BearerAuth
// @Router /projects [post]
func (h *ProjectHandler) Register(c *gin.Context) {
	var req RegisterProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	project, err := h.projectService.Register(c.Request.Context(), service.RegisterProjectInput{
		Name:        req.Name,
		Ministry:    req.Ministry,
		Agency:      req.Agency,
		Province:    req.Province,
		Budget:      req.Budget,
		FiscalYear:  req.FiscalYear,
		Coordinator: req.Coordinator,
		CreatedBy:   userID,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, project)
}

// List handles GET /api/v1/projects
// @Summary List projects
// @Tags projects
// @Produce json
// @Param offset query int false "Offset for pagination" default(0)
// @Param limit query int false "Limit for pagination (max 100)" default(20)
// @Success 200 {object} APIResponse "List of projects"
// @Security BearerAuth
// @Router /projects [get]
func (h *ProjectHandler) List(c *gin.Context) {
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	projects, total, err := h.projectService.List(c.Request.Context(), offset, limit)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondPaginated(c, projects, PagMeta{Total: total, Offset: offset, Limit: limit})
}

// GetSummary handles GET /api/v1/projects/:id
// @Summary Get project summary
// @Description Live project merged with its ordered revision history, version count, and edit-allowed flag
// @Tags projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} APIResponse "Project summary"
// @Failure 404 {object} APIResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id} [get]
func (h *ProjectHandler) GetSummary(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}

	summary, err := h.projectService.GetSummary(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, summary)
}

// ListRevisions handles GET /api/v1/projects/:id/revisions
// @Summary List project revisions
// @Tags projects
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Success 200 {object} APIResponse "Revisions ascending by version number"
// @Failure 404 {object} APIResponse "Project not found"
// @Security BearerAuth
// @Router /projects/{id}/revisions [get]
func (h *ProjectHandler) ListRevisions(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}

	revisions, err := h.revisionService.ListByProject(c.Request.Context(), id)
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondOK(c, revisions)
}

// CreateRevision handles POST /api/v1/projects/:id/revisions
// @Summary Create a project revision
// @Description Append a tracked edit; snapshots the project, mints a fresh document number, and applies allow-listed fields. At most 3 revisions per project.
// @Tags projects
// @Accept json
// @Produce json
// @Param id path string true "Project ID (UUID)"
// @Param request body CreateRevisionRequest true "Edited fields and reason"
// @Success 201 {object} APIResponse "Revision created"
// @Failure 400 {object} APIResponse "Edit limit reached"
// @Failure 404 {object} APIResponse "Project not found"
// @Failure 500 {object} APIResponse "Number allocation failed"
// @Security BearerAuth
// @Router /projects/{id}/revisions [post]
func (h *ProjectHandler) CreateRevision(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "INVALID_ID", "invalid project ID")
		return
	}

	var req CreateRevisionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondError(c, http.StatusBadRequest, "VALIDATION_ERROR", err.Error())
		return
	}

	userID, err := middleware.GetUserID(c)
	if err != nil {
		RespondError(c, http.StatusUnauthorized, "UNAUTHORIZED", "missing user context")
		return
	}

	revision, err := h.revisionService.Create(c.Request.Context(), service.CreateRevisionInput{
		ProjectID:    id,
		EditedFields: req.EditedFields,
		EditedBy:     userID,
		EditReason:   req.EditReason,
	})
	if err != nil {
		HandleError(c, err)
		return
	}

	RespondCreated(c, service.RevisionResult{
		VersionID:      revision.ID,
		VersionNumber:  revision.VersionNumber,
		DocumentNumber: revision.DocumentNumber,
	})
}
