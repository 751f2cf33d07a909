package http

import (
	"net/http"

	"github.com/aussiebroadwan/securestory/internal/securestory/service"
	"github.com/aussiebroadwan/securestory/pkg/httpx"
	"github.com/aussiebroadwan/securestory/pkg/sdk"
)

type ProjectsHandler struct {
	ProjectService *service.ProjectService
}

// HandleList returns every project, newest first.
//
//	@Summary	List projects
//	@Tags		Projects
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	sdk.ProjectsResponse
//	@Failure	401	{object}	sdk.ErrorResponse
//	@Router		/projects [get].
func (h *ProjectsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	projects, err := h.ProjectService.ListProjects(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := sdk.ProjectsResponse{Projects: make([]sdk.Project, 0, len(projects))}
	for _, p := range projects {
		out.Projects = append(out.Projects, toProject(p))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleCreate creates a project.
//
//	@Summary	Create project
//	@Tags		Projects
//	@Accept		json
//	@Produce	json
//	@Security	BearerAuth
//	@Param		request	body		sdk.CreateProjectRequest	true	"Project"
//	@Success	201		{object}	sdk.ProjectResponse
//	@Failure	400		{object}	sdk.ErrorResponse	"Invalid payload or validation failed"
//	@Failure	401		{object}	sdk.ErrorResponse
//	@Failure	403		{object}	sdk.ErrorResponse	"Viewer role"
//	@Failure	409		{object}	sdk.ErrorResponse	"Project already exists"
//	@Router		/projects [post].
func (h *ProjectsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req sdk.CreateProjectRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeInvalidPayload(w)
		return
	}
	if err := httpx.Validate(req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	p, err := h.ProjectService.CreateProject(r.Context(), callerFrom(r), req.Slug, req.Name)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, sdk.ProjectResponse{Project: toProject(p)})
}
