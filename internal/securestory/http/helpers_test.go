package http

import (
	"context"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/aussiebroadwan/securestory/internal/securestory/service"
	"github.com/aussiebroadwan/securestory/internal/securestory/store/drivers/sqlite"
	"github.com/aussiebroadwan/securestory/pkg/jwtx"
	"github.com/aussiebroadwan/securestory/pkg/sdk"
	"github.com/aussiebroadwan/securestory/pkg/slogx"
	"github.com/stretchr/testify/require"
)

const (
	testIssuer   = "securestory-test"
	testPassword = "correct horse battery"
)

type testClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *testClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *testClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type recordingSender struct {
	mu    sync.Mutex
	links []string
}

func (r *recordingSender) SendPasswordReset(_ context.Context, _ string, resetURL string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.links = append(r.links, resetURL)
	return nil
}

func (r *recordingSender) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.links)
}

func (r *recordingSender) lastToken(t *testing.T) string {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.links)

	u, err := url.Parse(r.links[len(r.links)-1])
	require.NoError(t, err)
	return u.Query().Get("token")
}

type testEnv struct {
	client *sdk.Client
	sender *recordingSender
	resets *service.PasswordResetService
	clock  *testClock
}

// mail waits for pending reset emails and returns what was sent.
func (e *testEnv) mail() *recordingSender {
	e.resets.Wait()
	return e.sender
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	st, err := sqlite.NewStore(sqlite.DSN(filepath.Join(t.TempDir(), "securestory.db")))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	signer, err := jwtx.NewHS256([]byte("0123456789abcdef0123456789abcdef"), testIssuer)
	require.NoError(t, err)

	clock := &testClock{now: time.Now().UTC()}
	sender := &recordingSender{}

	r := NewRouter(signer, "test", "abc123", nil, st, slogx.Discard())
	r.AuthService = &service.AuthService{Store: st, Signer: signer, Issuer: testIssuer, Now: clock.Now}
	r.ResetService = &service.PasswordResetService{Store: st, Sender: sender, BaseURL: "http://app.test", Now: clock.Now}
	r.ProjectService = &service.ProjectService{Store: st, Now: clock.Now}
	r.FindingService = &service.FindingService{Store: st, Now: clock.Now}
	r.DashboardService = &service.DashboardService{Store: st, Now: clock.Now}
	r.ApplyRoutes()

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	return &testEnv{client: sdk.NewClient(srv.URL), sender: sender, resets: r.ResetService, clock: clock}
}

// bootstrap registers the first (admin) account and returns a client
// authenticated as it.
func (e *testEnv) bootstrap(t *testing.T) *sdk.Client {
	t.Helper()
	ctx := context.Background()

	_, err := e.client.Register(ctx, sdk.RegisterRequest{Email: "admin@example.com", Password: testPassword, Role: "admin"})
	require.NoError(t, err)

	login, err := e.client.Login(ctx, "admin@example.com", testPassword)
	require.NoError(t, err)
	return e.client.WithToken(login.Token)
}

// userClient registers a user through admin and logs in as them.
func (e *testEnv) userClient(t *testing.T, admin *sdk.Client, email, role string) *sdk.Client {
	t.Helper()
	ctx := context.Background()

	_, err := admin.Register(ctx, sdk.RegisterRequest{Email: email, Password: testPassword, Role: role})
	require.NoError(t, err)

	login, err := e.client.Login(ctx, email, testPassword)
	require.NoError(t, err)
	return e.client.WithToken(login.Token)
}

func requireAPIError(t *testing.T, err error, status int, msg string) *sdk.APIError {
	t.Helper()

	var apiErr *sdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, msg, apiErr.Message)
	return apiErr
}
