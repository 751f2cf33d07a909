package store

import (
	"context"
	"errors"
	"time"

	"github.com/aussiebroadwan/securestory/internal/securestory/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
	// ErrConflict is returned by conditional updates whose precondition no
	// longer holds (token already used, finding no longer open).
	ErrConflict = errors.New("store: conditional update matched no rows")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. Sub-repositories are exposed as methods so a transaction
// hands out the same repositories bound to the tx.
type Store interface {
	Users() Users
	PasswordResets() PasswordResets
	Projects() Projects
	Findings() Findings
	Dashboard() Dashboard

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx runs fn in a transaction, committing when fn returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail expects an already normalized email.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// CreateUser inserts a new user; a duplicate email is ErrAlreadyExists.
	CreateUser(ctx context.Context, u domain.User) error

	// LockUser holds the user's row until the enclosing transaction ends,
	// so writers of per-user state queue behind each other.
	LockUser(ctx context.Context, id string) error

	// UpdatePasswordHash sets the bcrypt hash and bumps updated_at.
	UpdatePasswordHash(ctx context.Context, userID, newHash string, now time.Time) error

	// IsEmpty returns true if there are no users.
	IsEmpty(ctx context.Context) (bool, error)
}

type PasswordResets interface {
	CreatePasswordReset(ctx context.Context, p domain.PasswordReset) error

	// GetPasswordResetByHash returns the user's token with the given
	// fingerprint, used or not.
	GetPasswordResetByHash(ctx context.Context, userID, tokenHash string) (domain.PasswordReset, error)

	// DeletePasswordResetsForUser removes every token of the user.
	DeletePasswordResetsForUser(ctx context.Context, userID string) error

	// MarkPasswordResetUsed stamps used_at only if it is still unset.
	// Returns ErrConflict when the token was already used.
	MarkPasswordResetUsed(ctx context.Context, id string, usedAt time.Time) error

	// DeleteExpiredPasswordResets removes tokens that expired before cutoff.
	DeleteExpiredPasswordResets(ctx context.Context, cutoff time.Time) (int64, error)

	// CountPasswordResetsForUser is used by tests and diagnostics.
	CountPasswordResetsForUser(ctx context.Context, userID string) (int, error)
}

type Projects interface {
	// ListProjects returns every project, newest first.
	ListProjects(ctx context.Context) ([]domain.Project, error)

	GetProjectBySlug(ctx context.Context, slug string) (domain.Project, error)

	// CreateProject inserts a project; a duplicate slug is ErrAlreadyExists.
	CreateProject(ctx context.Context, p domain.Project) error
}

type Findings interface {
	CreateFinding(ctx context.Context, f domain.Finding) error

	GetFindingByID(ctx context.Context, id string) (domain.Finding, error)

	// ResolveFinding moves an open finding to resolved. Returns ErrConflict
	// when the finding exists but is not open.
	ResolveFinding(ctx context.Context, id string, resolvedAt time.Time) error

	// ListFindings returns every finding with its project slug, newest
	// first_seen first.
	ListFindings(ctx context.Context) ([]domain.FindingWithProject, error)
}

// Dashboard holds the read-only aggregation queries behind the risk views.
type Dashboard interface {
	// CountOpenBySeverity counts open findings first seen at or after
	// f.Since. Severities with no findings are absent from the result.
	CountOpenBySeverity(ctx context.Context, f domain.DashboardFilter) (map[domain.Severity]int, error)

	// CountOpenByDaySeverity groups open findings first seen at or after
	// f.Since by UTC calendar day and severity.
	CountOpenByDaySeverity(ctx context.Context, f domain.DashboardFilter) ([]domain.SeverityDayCount, error)

	// ResolutionStats covers findings resolved at or after f.Since: their
	// count and mean (resolved_at - first_seen) in hours. The mean is nil
	// when count is zero.
	ResolutionStats(ctx context.Context, f domain.DashboardFilter) (domain.MTTR, error)
}
