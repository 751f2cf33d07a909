package sdk

import (
	"context"
	"net/http"
	"net/url"
)

func (c *Client) ListProjects(ctx context.Context) ([]Project, error) {
	var out ProjectsResponse
	if err := c.call(ctx, http.MethodGet, "/projects", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Projects, nil
}

func (c *Client) CreateProject(ctx context.Context, req CreateProjectRequest) (*Project, error) {
	var out ProjectResponse
	if err := c.call(ctx, http.MethodPost, "/projects", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out.Project, nil
}

func (c *Client) IngestFinding(ctx context.Context, req IngestFindingRequest) error {
	var out OKResponse
	return c.call(ctx, http.MethodPost, "/findings/ingest", req, &out, http.StatusCreated)
}

func (c *Client) ResolveFinding(ctx context.Context, id string) (*Finding, error) {
	var out FindingResponse
	path := "/findings/" + url.PathEscape(id) + "/resolve"
	if err := c.call(ctx, http.MethodPost, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out.Finding, nil
}

func (c *Client) ListFindings(ctx context.Context) ([]Finding, error) {
	var out FindingsResponse
	if err := c.call(ctx, http.MethodGet, "/findings", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out.Findings, nil
}
