package http

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/aussiebroadwan/securestory/pkg/sdk"
	"github.com/stretchr/testify/require"
)

func TestDashboardsEmpty(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.bootstrap(t)

	counts, err := admin.SeverityCounts(ctx, sdk.DashboardQuery{})
	require.NoError(t, err)
	require.Equal(t, 30, counts.Days)
	require.Nil(t, counts.Project)
	require.Equal(t, map[string]int{"critical": 0, "high": 0, "medium": 0, "low": 0}, counts.Counts)

	risk, err := admin.RiskScore(ctx, sdk.DashboardQuery{Days: 7})
	require.NoError(t, err)
	require.Equal(t, 7, risk.Days)
	require.NotNil(t, risk.Series)
	require.Empty(t, risk.Series)

	mttr, err := admin.MTTR(ctx, sdk.DashboardQuery{Project: "ghost"})
	require.NoError(t, err)
	require.NotNil(t, mttr.Project)
	require.Equal(t, "ghost", *mttr.Project)
	require.Zero(t, mttr.ResolvedCount)
	require.Nil(t, mttr.MTTRHours)
}

func TestDashboardsAggregate(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.bootstrap(t)

	_, err := admin.CreateProject(ctx, sdk.CreateProjectRequest{Slug: "web", Name: "Web app"})
	require.NoError(t, err)
	_, err = admin.CreateProject(ctx, sdk.CreateProjectRequest{Slug: "api", Name: "API"})
	require.NoError(t, err)

	ingest := func(project, severity string) {
		t.Helper()
		require.NoError(t, admin.IngestFinding(ctx, sdk.IngestFindingRequest{
			ProjectSlug: project, Tool: "trivy", Type: "sca", Severity: severity, Title: "vulnerable dependency",
		}))
	}
	ingest("web", "critical")
	ingest("web", "critical")
	ingest("web", "high")
	ingest("api", "low")

	counts, err := admin.SeverityCounts(ctx, sdk.DashboardQuery{Project: "web"})
	require.NoError(t, err)
	require.Equal(t, "web", *counts.Project)
	require.Equal(t, map[string]int{"critical": 2, "high": 1, "medium": 0, "low": 0}, counts.Counts)

	risk, err := admin.RiskScore(ctx, sdk.DashboardQuery{Project: "web"})
	require.NoError(t, err)
	require.Len(t, risk.Series, 1)
	require.Equal(t, env.clock.Now().Format("2006-01-02"), risk.Series[0].Day)
	require.Equal(t, 26, risk.Series[0].RiskScore)
	require.Equal(t, map[string]int{"critical": 2, "high": 1, "medium": 0, "low": 0}, risk.Series[0].Breakdown)

	findings, err := admin.ListFindings(ctx)
	require.NoError(t, err)
	var apiFinding string
	for _, f := range findings {
		if f.Project == "api" {
			apiFinding = f.ID
		}
	}
	require.NotEmpty(t, apiFinding)

	env.clock.Advance(10 * time.Hour)
	_, err = admin.ResolveFinding(ctx, apiFinding)
	require.NoError(t, err)

	mttr, err := admin.MTTR(ctx, sdk.DashboardQuery{})
	require.NoError(t, err)
	require.Equal(t, 1, mttr.ResolvedCount)
	require.NotNil(t, mttr.MTTRHours)
	require.InDelta(t, 10.0, *mttr.MTTRHours, 0.01)

	// Resolved findings drop out of the open counts.
	counts, err = admin.SeverityCounts(ctx, sdk.DashboardQuery{Project: "api"})
	require.NoError(t, err)
	require.Zero(t, counts.Counts["low"])
}

func TestDashboardWindowValidation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	admin := env.bootstrap(t)

	for _, days := range []int{-1, 366, 1000} {
		_, err := admin.SeverityCounts(ctx, sdk.DashboardQuery{Days: days})
		apiErr := requireAPIError(t, err, http.StatusBadRequest, "Validation failed")
		require.Contains(t, apiErr.Details, "days")
	}

	_, err := admin.RiskScore(ctx, sdk.DashboardQuery{Days: 365})
	require.NoError(t, err)

	token := bearer(t, env)
	for _, raw := range []string{"abc", "0", "7.5"} {
		req, err := http.NewRequest(http.MethodGet, admin.BaseURL+"/dash/mttr?days="+raw, nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)

		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		var body sdk.ErrorResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		_ = resp.Body.Close()

		require.Equal(t, http.StatusBadRequest, resp.StatusCode, raw)
		require.Contains(t, body.Details, "days", raw)
	}
}

func bearer(t *testing.T, env *testEnv) string {
	t.Helper()
	login, err := env.client.Login(context.Background(), "admin@example.com", testPassword)
	require.NoError(t, err)
	return login.Token
}
