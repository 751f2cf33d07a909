package service

import (
	"context"
	"net/url"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/securestory/internal/securestory/domain"
	"github.com/aussiebroadwan/securestory/internal/securestory/store"
	"github.com/aussiebroadwan/securestory/internal/securestory/store/drivers/sqlite"
	"github.com/aussiebroadwan/securestory/pkg/cryptox"
	"github.com/aussiebroadwan/securestory/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) *sqlite.Store {
	t.Helper()

	s, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "securestory.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	require.NoError(t, s.ApplyMigrations())
	return s
}

// testClock is a settable clock for services.
type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func newTestClock(t time.Time) *testClock { return &testClock{now: t.UTC()} }

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t.UTC()
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

// recordingSender captures reset links instead of mailing them.
type recordingSender struct {
	mu    sync.Mutex
	links []string
	err   error
}

func (r *recordingSender) SendPasswordReset(_ context.Context, _ string, resetURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.links = append(r.links, resetURL)
	return r.err
}

// lastToken returns the token query parameter of the most recent link.
func (r *recordingSender) lastToken(t *testing.T) string {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.links)

	u, err := url.Parse(r.links[len(r.links)-1])
	require.NoError(t, err)
	return u.Query().Get("token")
}

func seedUser(t *testing.T, s store.Store, email, password string, role domain.Role) domain.User {
	t.Helper()

	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)

	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, s.Users().CreateUser(context.Background(), u))
	return u
}

var analyst = &Caller{UserID: "analyst-id", Role: domain.RoleAnalyst}
