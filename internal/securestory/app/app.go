package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	httpapi "github.com/aussiebroadwan/securestory/internal/securestory/http"
	"github.com/aussiebroadwan/securestory/internal/securestory/notify"
	"github.com/aussiebroadwan/securestory/internal/securestory/service"
	"github.com/aussiebroadwan/securestory/internal/securestory/store"
	"github.com/aussiebroadwan/securestory/internal/securestory/store/drivers/postgres"
	"github.com/aussiebroadwan/securestory/internal/securestory/store/drivers/sqlite"
	"github.com/aussiebroadwan/securestory/pkg/jwtx"
	"github.com/aussiebroadwan/securestory/pkg/slogx"
)

const (
	// BuildVersion should be set at build time via ldflags.
	BuildVersion = "v0.1.0"
)

// Application wires the SecureStory API together.
type Application struct {
	cfg    Config
	logger *slog.Logger

	// Core dependencies
	db     store.Store
	signer *jwtx.HS256
	sender notify.Sender

	// Services
	authService         *service.AuthService
	resetService        *service.PasswordResetService
	projectService      *service.ProjectService
	findingService      *service.FindingService
	dashboardService    *service.DashboardService
	housekeepingService *service.HousekeepingService

	// HTTP server
	server *http.Server
	router *httpapi.Router
}

// New creates a new Application instance with all dependencies initialized
func New(cfg Config) (*Application, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	app := &Application{
		cfg: cfg,
		logger: slogx.New(slogx.Config{
			Service: "securestory-api",
			Version: BuildVersion,
			Env:     cfg.Env,
			Level:   cfg.LogLevel,
			Format:  cfg.LogFormat,
		}),
	}

	signer, err := jwtx.NewHS256([]byte(cfg.JWTSecret), cfg.Issuer)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT signer: %w", err)
	}
	app.signer = signer

	if err := app.initDatabase(context.Background()); err != nil {
		return nil, err
	}

	app.sender = notify.New(cfg.SMTP)
	if !cfg.SMTP.Configured() {
		app.logger.Warn("SMTP not configured, password reset emails will not be delivered")
	}

	app.initServices()
	app.initHTTP()

	return app, nil
}

// Handler exposes the HTTP router.
func (app *Application) Handler() http.Handler { return app.router }

// Run starts the application and blocks until shutdown is requested
func (app *Application) Run() error {
	app.housekeepingService.Start()

	app.logger.Info("securestory api starting",
		"port", app.cfg.Port,
		"version", BuildVersion,
		"driver", app.cfg.DatabaseDriver,
	)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- app.server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && err != http.ErrServerClosed {
			app.housekeepingService.Stop()
			_ = app.db.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	case sig := <-shutdown:
		app.logger.Info("shutdown signal received", "signal", sig)

		if err := app.Shutdown(); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
	}

	return nil
}

// Shutdown gracefully shuts down the application
func (app *Application) Shutdown() error {
	app.logger.Info("shutting down securestory api...")

	ctx, cancel := context.WithTimeout(context.Background(), app.cfg.ShutdownGracePeriod)
	defer cancel()

	if err := app.server.Shutdown(ctx); err != nil {
		app.logger.Error("graceful server shutdown failed", "error", err)
		if err := app.server.Close(); err != nil {
			app.logger.Error("error closing server", "error", err)
		}
	}

	app.housekeepingService.Stop()

	mailDone := make(chan struct{})
	go func() {
		app.resetService.Wait()
		close(mailDone)
	}()
	select {
	case <-mailDone:
	case <-ctx.Done():
		app.logger.Warn("reset emails still in flight at shutdown")
	}

	if err := app.db.Close(); err != nil {
		app.logger.Error("error closing database", "error", err)
		return err
	}

	app.logger.Info("securestory api stopped")
	return nil
}

// openStore picks the driver named in the configuration.
func openStore(ctx context.Context, cfg Config) (store.Store, error) {
	switch cfg.DatabaseDriver {
	case DriverPostgres:
		return postgres.NewStore(ctx, cfg.DatabaseURL)
	default:
		return sqlite.NewStore(sqlite.DSN(cfg.DatabaseFile))
	}
}

// initDatabase opens the store and applies migrations
func (app *Application) initDatabase(ctx context.Context) error {
	db, err := openStore(ctx, app.cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	if err := db.ApplyMigrations(); err != nil {
		_ = db.Close()
		return fmt.Errorf("failed to apply database migrations: %w", err)
	}

	app.logger.Info("database migrations applied successfully", "driver", app.cfg.DatabaseDriver)
	return nil
}

// initServices initializes all business logic services
func (app *Application) initServices() {
	app.authService = &service.AuthService{
		Store:     app.db,
		Signer:    app.signer,
		Issuer:    app.cfg.Issuer,
		AccessTTL: app.cfg.AccessTokenTTL,
	}
	app.resetService = &service.PasswordResetService{
		Store:   app.db,
		Sender:  app.sender,
		BaseURL: app.cfg.AppBaseURL,
	}
	app.projectService = &service.ProjectService{Store: app.db}
	app.findingService = &service.FindingService{Store: app.db}
	app.dashboardService = &service.DashboardService{Store: app.db}

	app.housekeepingService = service.NewHousekeepingService(
		app.db,
		app.logger,
		app.cfg.HousekeepingInterval,
	)
}

// initHTTP initializes the HTTP router and server
func (app *Application) initHTTP() {
	router := httpapi.NewRouter(
		app.signer,
		BuildVersion,
		app.cfg.GitSHA,
		app.cfg.AllowedOrigins,
		app.db,
		app.logger,
	)

	router.AuthService = app.authService
	router.ResetService = app.resetService
	router.ProjectService = app.projectService
	router.FindingService = app.findingService
	router.DashboardService = app.dashboardService
	router.ApplyRoutes()

	app.router = router

	app.server = &http.Server{
		Addr:              fmt.Sprintf(":%d", app.cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 3 * time.Second,
	}
}
