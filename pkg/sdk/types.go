package sdk

import "time"

// ============================================================================
// Common
// ============================================================================

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	// Error is a short human-readable message, e.g. "Invalid token".
	Error string `json:"error"`

	// Details maps request fields to validation messages (400 only).
	Details map[string]string `json:"details,omitempty"`
}

// OKResponse is returned by endpoints with no payload.
type OKResponse struct {
	OK bool `json:"ok"`
}

// ============================================================================
// Accounts
// ============================================================================

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at,omitzero"`
}

type UserResponse struct {
	User User `json:"user"`
}

type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=72"`
	Role     string `json:"role,omitempty" validate:"omitempty,oneof=admin analyst viewer"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ForgotPasswordRequest is intentionally unvalidated; the endpoint answers
// {ok:true} for any input.
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

type ResetPasswordRequest struct {
	Email    string `json:"email"`
	Token    string `json:"token"`
	Password string `json:"password"`
}

// ============================================================================
// Projects & findings
// ============================================================================

type Project struct {
	ID        string    `json:"id"`
	Slug      string    `json:"slug"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateProjectRequest struct {
	Slug string `json:"slug" validate:"required,min=2,max=64"`
	Name string `json:"name" validate:"required,min=2,max=200"`
}

type ProjectResponse struct {
	Project Project `json:"project"`
}

type ProjectsResponse struct {
	Projects []Project `json:"projects"`
}

type IngestFindingRequest struct {
	ProjectSlug string `json:"project_slug" validate:"required"`
	Tool        string `json:"tool" validate:"required,max=100"`
	Type        string `json:"type" validate:"required,max=100"`
	Severity    string `json:"severity" validate:"required,oneof=critical high medium low"`
	Title       string `json:"title" validate:"required,min=2,max=500"`
}

type Finding struct {
	ID         string     `json:"id"`
	Project    string     `json:"project,omitempty"`
	Tool       string     `json:"tool"`
	Type       string     `json:"type"`
	Severity   string     `json:"severity"`
	Title      string     `json:"title"`
	Status     string     `json:"status"`
	FirstSeen  time.Time  `json:"first_seen"`
	ResolvedAt *time.Time `json:"resolved_at"`
}

type FindingResponse struct {
	Finding Finding `json:"finding"`
}

type FindingsResponse struct {
	Findings []Finding `json:"findings"`
}

// ============================================================================
// Dashboards
// ============================================================================

// DashboardQuery selects the window and optional project of a dashboard.
// Zero Days means the server default (30).
type DashboardQuery struct {
	Project string
	Days    int
}

type SeverityCountsResponse struct {
	Days    int            `json:"days"`
	Project *string        `json:"project"`
	Counts  map[string]int `json:"counts"`
}

type RiskPoint struct {
	// Day is the UTC calendar day, formatted YYYY-MM-DD.
	Day       string         `json:"day"`
	RiskScore int            `json:"risk_score"`
	Breakdown map[string]int `json:"breakdown"`
}

type RiskScoreResponse struct {
	Days    int         `json:"days"`
	Project *string     `json:"project"`
	Series  []RiskPoint `json:"series"`
}

type MTTRResponse struct {
	Days          int      `json:"days"`
	Project       *string  `json:"project"`
	ResolvedCount int      `json:"resolved_count"`
	MTTRHours     *float64 `json:"mttr_hours"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by /livez and /readyz.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks reports the state of each dependency on /readyz.
type HealthChecks struct {
	Database string `json:"database"`
}

// ServiceInfo is the /health heartbeat.
type ServiceInfo struct {
	OK      bool      `json:"ok"`
	Service string    `json:"service"`
	TS      time.Time `json:"ts"`
}

// VersionResponse reports the deployed revision. GitSHA is null when the
// build did not record one.
type VersionResponse struct {
	OK      bool    `json:"ok"`
	Service string  `json:"service"`
	GitSHA  *string `json:"git_sha"`
}
