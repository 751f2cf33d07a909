package sdk

import (
	"context"
	"net/http"
)

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.call(ctx, http.MethodGet, "/livez", nil, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness checks if the service is ready.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.call(ctx, http.MethodGet, "/readyz", nil, &health, http.StatusOK); err != nil {
		return nil, err
	}
	return &health, nil
}

func (c *Client) Health(ctx context.Context) (*ServiceInfo, error) {
	var info ServiceInfo
	if err := c.call(ctx, http.MethodGet, "/health", nil, &info, http.StatusOK); err != nil {
		return nil, err
	}
	return &info, nil
}

func (c *Client) Version(ctx context.Context) (*VersionResponse, error) {
	var info VersionResponse
	if err := c.call(ctx, http.MethodGet, "/version", nil, &info, http.StatusOK); err != nil {
		return nil, err
	}
	return &info, nil
}
