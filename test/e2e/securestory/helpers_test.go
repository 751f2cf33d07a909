package securestory_test

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/aussiebroadwan/securestory/pkg/sdk"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

/*
 * Common constants and helper functions for SecureStory end-to-end tests.
 * The API runs from the image built by cmd/securestory/Dockerfile with an
 * SQLite database inside the container.
 */

const (
	testImageName = "securestory-api-test:latest"

	jwtSecret     = "e2e-secret-0123456789abcdef0123456789"
	adminEmail    = "admin@example.com"
	adminPassword = "Admin123!secret"
)

var dockerAvailable bool

// TestMain builds the Docker image once before all tests and removes it
// afterwards. Without docker, or in -short mode, every test is skipped.
func TestMain(m *testing.M) {
	flag.Parse()

	if _, err := exec.LookPath("docker"); err == nil && !testing.Short() {
		fmt.Fprintf(os.Stdout, "Building SecureStory Docker image...")
		if err := buildDockerImage(); err != nil {
			fmt.Fprintf(os.Stderr, "\nFailed to build Docker image: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stdout, " done\n")
		dockerAvailable = true
	}

	exitCode := m.Run()

	if dockerAvailable {
		fmt.Fprintf(os.Stdout, "Cleaning up SecureStory Docker image...")
		cleanupDockerImage()
		fmt.Fprintf(os.Stdout, " done\n")
	}

	os.Exit(exitCode)
}

func buildDockerImage() error {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "build",
		"-t", testImageName,
		"-f", "../../../cmd/securestory/Dockerfile",
		"../../../")
	cmd.Dir = "."
	cmd.Stdout = os.Stdout
	cmd.Stderr = nil

	return cmd.Run()
}

func cleanupDockerImage() {
	ctx := context.Background()
	cmd := exec.CommandContext(ctx, "docker", "rmi", "-f", testImageName)
	_ = cmd.Run() // Ignore errors - image might not exist
}

// setupContainer starts the API and returns its base URL. relaxed raises the
// strict rate limit so tests can log in repeatedly.
func setupContainer(t *testing.T, relaxed bool) string {
	t.Helper()
	if !dockerAvailable {
		t.Skip("docker not available")
	}
	ctx := context.Background()

	env := map[string]string{
		"JWT_SECRET": jwtSecret,
		"ENV":        "test",
		"LOG_LEVEL":  "info",
		"LOG_FORMAT": "json",
	}
	if relaxed {
		env["RATELIMIT_STRICT_REQUESTS"] = "1000"
		env["RATELIMIT_STRICT_WINDOW_SEC"] = "60"
		env["RATELIMIT_STRICT_BURST"] = "1000"
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        testImageName,
			ExposedPorts: []string{"8001/tcp"},
			Env:          env,
			WaitingFor: wait.ForHTTP("/livez").
				WithPort("8001/tcp").
				WithStartupTimeout(60 * time.Second),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	mappedPort, err := container.MappedPort(ctx, "8001")
	require.NoError(t, err)

	host, err := container.Host(ctx)
	require.NoError(t, err)

	return fmt.Sprintf("http://%s:%s", host, mappedPort.Port())
}

// bootstrapAdmin registers the first account and returns an authenticated client.
func bootstrapAdmin(t *testing.T, client *sdk.Client) *sdk.Client {
	t.Helper()
	ctx := context.Background()

	user, err := client.Register(ctx, sdk.RegisterRequest{Email: adminEmail, Password: adminPassword, Role: "admin"})
	require.NoError(t, err, "first registration should succeed")
	require.Equal(t, "admin", user.Role)

	login, err := client.Login(ctx, adminEmail, adminPassword)
	require.NoError(t, err)
	require.NotEmpty(t, login.Token)

	return client.WithToken(login.Token)
}

func assertHealthy(t *testing.T, health *sdk.HealthResponse, err error) {
	t.Helper()
	require.NoError(t, err)
	require.NotNil(t, health)
	require.Equal(t, "ok", health.Status)
}
