package sdk

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
)

func (q DashboardQuery) encode() string {
	v := url.Values{}
	if q.Project != "" {
		v.Set("project", q.Project)
	}
	if q.Days != 0 {
		v.Set("days", strconv.Itoa(q.Days))
	}
	if len(v) == 0 {
		return ""
	}
	return "?" + v.Encode()
}

func (c *Client) SeverityCounts(ctx context.Context, q DashboardQuery) (*SeverityCountsResponse, error) {
	var out SeverityCountsResponse
	if err := c.call(ctx, http.MethodGet, "/dash/severity_counts"+q.encode(), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) RiskScore(ctx context.Context, q DashboardQuery) (*RiskScoreResponse, error) {
	var out RiskScoreResponse
	if err := c.call(ctx, http.MethodGet, "/dash/risk_score"+q.encode(), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) MTTR(ctx context.Context, q DashboardQuery) (*MTTRResponse, error) {
	var out MTTRResponse
	if err := c.call(ctx, http.MethodGet, "/dash/mttr"+q.encode(), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}
