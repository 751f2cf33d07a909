package http

import (
	"net/http"

	"github.com/aussiebroadwan/securestory/internal/securestory/domain"
	"github.com/aussiebroadwan/securestory/internal/securestory/service"
	"github.com/aussiebroadwan/securestory/pkg/httpx"
	"github.com/aussiebroadwan/securestory/pkg/sdk"
)

const dayLayout = "2006-01-02"

// callerFrom returns the authenticated principal, or nil for anonymous
// requests.
func callerFrom(r *http.Request) *service.Caller {
	id := httpx.UserIDFromContext(r.Context())
	if id == "" {
		return nil
	}
	return &service.Caller{UserID: id, Role: domain.Role(httpx.RoleFromContext(r.Context()))}
}

func toUser(u domain.User) sdk.User {
	return sdk.User{ID: u.ID, Email: u.Email, Role: string(u.Role), CreatedAt: u.CreatedAt}
}

func toProject(p domain.Project) sdk.Project {
	return sdk.Project{ID: p.ID, Slug: p.Slug, Name: p.Name, CreatedAt: p.CreatedAt}
}

func toFinding(f domain.Finding, projectSlug string) sdk.Finding {
	return sdk.Finding{
		ID:         f.ID,
		Project:    projectSlug,
		Tool:       f.Tool,
		Type:       f.Type,
		Severity:   string(f.Severity),
		Title:      f.Title,
		Status:     string(f.Status),
		FirstSeen:  f.FirstSeen,
		ResolvedAt: f.ResolvedAt,
	}
}

func toCounts(c domain.SeverityCounts) map[string]int {
	out := make(map[string]int, len(domain.Severities))
	for _, s := range domain.Severities {
		out[string(s)] = c[s]
	}
	return out
}

func toRiskPoint(p domain.RiskPoint) sdk.RiskPoint {
	return sdk.RiskPoint{
		Day:       p.Day.UTC().Format(dayLayout),
		RiskScore: p.RiskScore,
		Breakdown: toCounts(p.Breakdown),
	}
}
