package http

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/aussiebroadwan/securestory/pkg/sdk"
	"github.com/stretchr/testify/require"
)

func TestProjectsAndFindings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.bootstrap(t)
	analyst := env.userClient(t, admin, "analyst@example.com", "analyst")
	viewer := env.userClient(t, admin, "viewer@example.com", "viewer")

	_, err := viewer.CreateProject(ctx, sdk.CreateProjectRequest{Slug: "web", Name: "Web app"})
	requireAPIError(t, err, http.StatusForbidden, "Forbidden")

	_, err = analyst.CreateProject(ctx, sdk.CreateProjectRequest{Slug: "w", Name: "Web app"})
	requireAPIError(t, err, http.StatusBadRequest, "Validation failed")

	p, err := analyst.CreateProject(ctx, sdk.CreateProjectRequest{Slug: "web", Name: "Web app"})
	require.NoError(t, err)
	require.Equal(t, "web", p.Slug)

	_, err = admin.CreateProject(ctx, sdk.CreateProjectRequest{Slug: "web", Name: "Again"})
	requireAPIError(t, err, http.StatusConflict, "Project already exists")

	projects, err := viewer.ListProjects(ctx)
	require.NoError(t, err)
	require.Len(t, projects, 1)

	ingest := sdk.IngestFindingRequest{ProjectSlug: "web", Tool: "semgrep", Type: "sast", Severity: "high", Title: "SQL injection"}

	missing := ingest
	missing.ProjectSlug = "nope"
	err = analyst.IngestFinding(ctx, missing)
	requireAPIError(t, err, http.StatusNotFound, "Project not found")

	bad := ingest
	bad.Severity = "info"
	err = analyst.IngestFinding(ctx, bad)
	apiErr := requireAPIError(t, err, http.StatusBadRequest, "Validation failed")
	require.Contains(t, apiErr.Details, "severity")

	err = viewer.IngestFinding(ctx, ingest)
	requireAPIError(t, err, http.StatusForbidden, "Forbidden")

	require.NoError(t, analyst.IngestFinding(ctx, ingest))

	findings, err := viewer.ListFindings(ctx)
	require.NoError(t, err)
	require.Len(t, findings, 1)
	f := findings[0]
	require.Equal(t, "web", f.Project)
	require.Equal(t, "open", f.Status)
	require.Equal(t, "high", f.Severity)
	require.Nil(t, f.ResolvedAt)

	_, err = viewer.ResolveFinding(ctx, f.ID)
	requireAPIError(t, err, http.StatusForbidden, "Forbidden")

	resolved, err := analyst.ResolveFinding(ctx, f.ID)
	require.NoError(t, err)
	require.Equal(t, "resolved", resolved.Status)
	require.NotNil(t, resolved.ResolvedAt)

	_, err = analyst.ResolveFinding(ctx, f.ID)
	requireAPIError(t, err, http.StatusConflict, "Finding is not open")

	_, err = analyst.ResolveFinding(ctx, "01J0000000000000000000NOPE")
	requireAPIError(t, err, http.StatusNotFound, "Finding not found")
}

func TestInvalidJSONBody(t *testing.T) {
	env := newTestEnv(t)

	resp, err := http.Post(env.client.BaseURL+"/auth/reset_password", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body sdk.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "Invalid payload", body.Error)
}
