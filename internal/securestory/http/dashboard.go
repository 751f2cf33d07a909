package http

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/aussiebroadwan/securestory/internal/securestory/service"
	"github.com/aussiebroadwan/securestory/pkg/httpx"
	"github.com/aussiebroadwan/securestory/pkg/sdk"
)

type DashboardHandler struct {
	DashboardService *service.DashboardService
}

// dashQuery reads ?project= and ?days= (default 30).
func dashQuery(r *http.Request) (project string, days int, err error) {
	q := r.URL.Query()
	project = strings.TrimSpace(q.Get("project"))

	if raw := strings.TrimSpace(q.Get("days")); raw != "" {
		days, err = strconv.Atoi(raw)
		if err != nil || days == 0 {
			return "", 0, service.ErrInvalidWindow
		}
	}
	days, err = service.ResolveWindow(days)
	return project, days, err
}

func projectRef(project string) *string {
	if project == "" {
		return nil
	}
	return &project
}

// HandleSeverityCounts godoc
//
//	@Summary		Open findings by severity
//	@Description	Counts open findings first seen within the window. All four severities are always present.
//	@Tags			Dashboard
//	@Produce		json
//	@Security		BearerAuth
//	@Param			project	query		string	false	"Project slug"
//	@Param			days	query		int		false	"Window in days (1-365)"	default(30)
//	@Success		200		{object}	sdk.SeverityCountsResponse
//	@Failure		400		{object}	sdk.ErrorResponse	"days out of range"
//	@Failure		401		{object}	sdk.ErrorResponse
//	@Router			/dash/severity_counts [get].
func (h *DashboardHandler) HandleSeverityCounts(w http.ResponseWriter, r *http.Request) {
	project, days, err := dashQuery(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	counts, err := h.DashboardService.SeverityCounts(r.Context(), project, days)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sdk.SeverityCountsResponse{
		Days:    days,
		Project: projectRef(project),
		Counts:  toCounts(counts),
	})
}

// HandleRiskScore godoc
//
//	@Summary		Daily risk score
//	@Description	One point per UTC day with open findings, ascending. risk_score weighs critical 10, high 6, medium 3, low 1.
//	@Tags			Dashboard
//	@Produce		json
//	@Security		BearerAuth
//	@Param			project	query		string	false	"Project slug"
//	@Param			days	query		int		false	"Window in days (1-365)"	default(30)
//	@Success		200		{object}	sdk.RiskScoreResponse
//	@Failure		400		{object}	sdk.ErrorResponse	"days out of range"
//	@Failure		401		{object}	sdk.ErrorResponse
//	@Router			/dash/risk_score [get].
func (h *DashboardHandler) HandleRiskScore(w http.ResponseWriter, r *http.Request) {
	project, days, err := dashQuery(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	series, err := h.DashboardService.RiskScoreSeries(r.Context(), project, days)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	out := sdk.RiskScoreResponse{
		Days:    days,
		Project: projectRef(project),
		Series:  make([]sdk.RiskPoint, 0, len(series)),
	}
	for _, p := range series {
		out.Series = append(out.Series, toRiskPoint(p))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// HandleMTTR godoc
//
//	@Summary		Mean time to remediate
//	@Description	Average hours from first_seen to resolved_at for findings resolved within the window. mttr_hours is null when none were resolved.
//	@Tags			Dashboard
//	@Produce		json
//	@Security		BearerAuth
//	@Param			project	query		string	false	"Project slug"
//	@Param			days	query		int		false	"Window in days (1-365)"	default(30)
//	@Success		200		{object}	sdk.MTTRResponse
//	@Failure		400		{object}	sdk.ErrorResponse	"days out of range"
//	@Failure		401		{object}	sdk.ErrorResponse
//	@Router			/dash/mttr [get].
func (h *DashboardHandler) HandleMTTR(w http.ResponseWriter, r *http.Request) {
	project, days, err := dashQuery(r)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}

	m, err := h.DashboardService.MTTR(r.Context(), project, days)
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, sdk.MTTRResponse{
		Days:          days,
		Project:       projectRef(project),
		ResolvedCount: m.ResolvedCount,
		MTTRHours:     m.Hours,
	})
}
