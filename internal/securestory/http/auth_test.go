package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/aussiebroadwan/securestory/pkg/sdk"
	"github.com/stretchr/testify/require"
)

func TestRegisterAndLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	admin := env.bootstrap(t)

	me, err := admin.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "admin@example.com", me.Email)
	require.Equal(t, "admin", me.Role)

	// Anonymous registration is closed once an account exists.
	_, err = env.client.Register(ctx, sdk.RegisterRequest{Email: "eve@example.com", Password: testPassword})
	requireAPIError(t, err, http.StatusUnauthorized, "Unauthorized")

	viewer := env.userClient(t, admin, "Viewer@Example.com", "")
	me, err = viewer.Me(ctx)
	require.NoError(t, err)
	require.Equal(t, "viewer@example.com", me.Email)
	require.Equal(t, "viewer", me.Role)

	_, err = viewer.Register(ctx, sdk.RegisterRequest{Email: "eve@example.com", Password: testPassword})
	requireAPIError(t, err, http.StatusForbidden, "Forbidden")

	_, err = admin.Register(ctx, sdk.RegisterRequest{Email: "viewer@example.com", Password: testPassword})
	requireAPIError(t, err, http.StatusConflict, "Email already exists")

	_, err = env.client.Login(ctx, "admin@example.com", "wrong password")
	requireAPIError(t, err, http.StatusUnauthorized, "Invalid credentials")
}

func TestRegisterValidation(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.client.Register(context.Background(), sdk.RegisterRequest{Email: "not-an-email", Password: "short", Role: "root"})
	apiErr := requireAPIError(t, err, http.StatusBadRequest, "Validation failed")
	require.Contains(t, apiErr.Details, "email")
	require.Contains(t, apiErr.Details, "password")
	require.Contains(t, apiErr.Details, "role")
}

func TestMeRequiresToken(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.client.Me(context.Background())
	requireAPIError(t, err, http.StatusUnauthorized, "Unauthorized")

	_, err = env.client.WithToken("garbage").Me(context.Background())
	requireAPIError(t, err, http.StatusUnauthorized, "Unauthorized")
}

func TestPasswordResetFlow(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.bootstrap(t)

	// Unknown accounts get the same answer and no mail.
	require.NoError(t, env.client.ForgotPassword(ctx, "nobody@example.com"))
	require.Zero(t, env.mail().count())

	require.NoError(t, env.client.ForgotPassword(ctx, "ADMIN@example.com"))
	require.Equal(t, 1, env.mail().count())
	token := env.mail().lastToken(t)

	const newPassword = "a brand new secret"

	err := env.client.ResetPassword(ctx, sdk.ResetPasswordRequest{Email: "admin@example.com", Token: token, Password: "short"})
	requireAPIError(t, err, http.StatusBadRequest, "Invalid payload")

	err = env.client.ResetPassword(ctx, sdk.ResetPasswordRequest{Email: "admin@example.com", Token: "wrong", Password: newPassword})
	requireAPIError(t, err, http.StatusBadRequest, "Invalid token")

	require.NoError(t, env.client.ResetPassword(ctx, sdk.ResetPasswordRequest{Email: "admin@example.com", Token: token, Password: newPassword}))

	err = env.client.ResetPassword(ctx, sdk.ResetPasswordRequest{Email: "admin@example.com", Token: token, Password: newPassword})
	requireAPIError(t, err, http.StatusBadRequest, "Token already used")

	_, err = env.client.Login(ctx, "admin@example.com", testPassword)
	requireAPIError(t, err, http.StatusUnauthorized, "Invalid credentials")

	_, err = env.client.Login(ctx, "admin@example.com", newPassword)
	require.NoError(t, err)
}

func TestPasswordResetExpired(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	env.bootstrap(t)

	require.NoError(t, env.client.ForgotPassword(ctx, "admin@example.com"))
	token := env.mail().lastToken(t)

	env.clock.Advance(31 * time.Minute)

	err := env.client.ResetPassword(ctx, sdk.ResetPasswordRequest{Email: "admin@example.com", Token: token, Password: "a brand new secret"})
	requireAPIError(t, err, http.StatusBadRequest, "Token expired")
}

func TestResetPasswordRateLimitedPerEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	guess := func(email string) error {
		return env.client.ResetPassword(ctx, sdk.ResetPasswordRequest{Email: email, Token: "guess", Password: "a brand new secret"})
	}

	for range 5 {
		requireAPIError(t, guess("victim@example.com"), http.StatusBadRequest, "Invalid token")
	}
	apiErr := requireAPIError(t, guess("Victim@Example.com"), http.StatusTooManyRequests, "Too many requests")
	require.True(t, sdk.IsStatus(apiErr, http.StatusTooManyRequests))

	// Another account from the same client is still reachable.
	requireAPIError(t, guess("other@example.com"), http.StatusBadRequest, "Invalid token")
}

func TestForgotPasswordRateLimitedPerEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	for range 5 {
		require.NoError(t, env.client.ForgotPassword(ctx, "nobody@example.com"))
	}
	err := env.client.ForgotPassword(ctx, "nobody@example.com")
	requireAPIError(t, err, http.StatusTooManyRequests, "Too many requests")

	require.NoError(t, env.client.ForgotPassword(ctx, "someone-else@example.com"))
}
