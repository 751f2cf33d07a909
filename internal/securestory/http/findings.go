package http

import (
	"net/http"

	"github.com/aussiebroadwan/securestory/internal/securestory/domain"
	"github.com/aussiebroadwan/securestory/internal/securestory/service"
	"github.com/aussiebroadwan/securestory/pkg/httpx"
	"github.com/aussiebroadwan/securestory/pkg/sdk"
)

type FindingsHandler struct {
	FindingService *service.FindingService
}

// HandleIngest records a scanner finding.
//
//	@Summary		Ingest a finding
//	@Description	Records an open finding against an existing project.
//	@Tags			Findings
//	@Accept			json
//	@Produce		json
//	@Security		BearerAuth
//	@Param			request	body		sdk.IngestFindingRequest	true	"Finding"
//	@Success		201		{object}	sdk.OKResponse
//	@Failure		400		{object}	sdk.ErrorResponse	"Invalid payload or validation failed"
//	@Failure		401		{object}	sdk.ErrorResponse
//	@Failure		403		{object}	sdk.ErrorResponse	"Viewer role"
//	@Failure		404		{object}	sdk.ErrorResponse	"Project not found"
//	@Router			/findings/ingest [post].
func (h *FindingsHandler) HandleIngest(w http.ResponseWriter, r *http.Request) {
	var req sdk.IngestFindingRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeInvalidPayload(w)
		return
	}
	if err := httpx.Validate(req); err != nil {
		writeServiceError(w, r, err)
		return
	}

	_, err := h.FindingService.Ingest(r.Context(), callerFrom(r), service.IngestInput{
		ProjectSlug: req.ProjectSlug,
		Tool:        req.Tool,
		Type:        req.Type,
		Severity:    domain.Severity(req.Severity),
		Title:       req.Title,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, sdk.OKResponse{OK: true})
}

// HandleResolve marks an open finding resolved.
//
//	@Summary	Resolve a finding
//	@Tags		Findings
//	@Produce	json
//	@Security	BearerAuth
//	@Param		id	path		string	true	"Finding ID"
//	@Success	200	{object}	sdk.FindingResponse
//	@Failure	401	{object}	sdk.ErrorResponse
//	@Failure	403	{object}	sdk.ErrorResponse	"Viewer role"
//	@Failure	404	{object}	sdk.ErrorResponse	"Finding not found"
//	@Failure	409	{object}	sdk.ErrorResponse	"Finding is not open"
//	@Router		/findings/{id}/resolve [post].
func (h *FindingsHandler) HandleResolve(w http.ResponseWriter, r *http.Request) {
	f, err := h.FindingService.Resolve(r.Context(), callerFrom(r), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sdk.FindingResponse{Finding: toFinding(f, "")})
}

// HandleList returns every finding with its project slug, newest first.
//
//	@Summary	List findings
//	@Tags		Findings
//	@Produce	json
//	@Security	BearerAuth
//	@Success	200	{object}	sdk.FindingsResponse
//	@Failure	401	{object}	sdk.ErrorResponse
//	@Router		/findings [get].
func (h *FindingsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	findings, err := h.FindingService.ListFindings(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := sdk.FindingsResponse{Findings: make([]sdk.Finding, 0, len(findings))}
	for _, f := range findings {
		out.Findings = append(out.Findings, toFinding(f.Finding, f.ProjectSlug))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}
