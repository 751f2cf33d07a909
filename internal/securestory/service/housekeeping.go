package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/aussiebroadwan/securestory/internal/securestory/store"
)

// ResetRetention is how long an expired reset token is kept before cleanup.
const ResetRetention = 24 * time.Hour

// HousekeepingService periodically deletes reset tokens that expired more
// than ResetRetention ago.
type HousekeepingService struct {
	Store    store.Store
	Logger   *slog.Logger
	Interval time.Duration
	Now      func() time.Time

	// Internal channels for lifecycle management
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewHousekeepingService creates a new housekeeping service with the given interval.
// If interval is 0 or negative, defaults to 1 hour.
func NewHousekeepingService(store store.Store, logger *slog.Logger, interval time.Duration) *HousekeepingService {
	if interval <= 0 {
		interval = 1 * time.Hour
	}

	return &HousekeepingService{
		Store:    store,
		Logger:   logger,
		Interval: interval,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}
}

// Start begins the background worker. Call Stop to shut it down.
func (s *HousekeepingService) Start() {
	go s.run()
	s.Logger.Info("housekeeping service started", "interval", s.Interval)
}

// Stop blocks until the worker has finished any in-progress cleanup.
func (s *HousekeepingService) Stop() {
	close(s.stopCh)
	<-s.doneCh
	s.Logger.Info("housekeeping service stopped")
}

func (s *HousekeepingService) run() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.Interval)
	defer ticker.Stop()

	// Run cleanup immediately on startup
	s.Cleanup(context.Background())

	for {
		select {
		case <-ticker.C:
			s.Cleanup(context.Background())
		case <-s.stopCh:
			return
		}
	}
}

// Cleanup performs one sweep and returns the number of deleted tokens.
func (s *HousekeepingService) Cleanup(ctx context.Context) int64 {
	cutoff := clock(s.Now).Add(-ResetRetention)

	deleted, err := s.Store.PasswordResets().DeleteExpiredPasswordResets(ctx, cutoff)
	if err != nil {
		s.Logger.Error("failed to delete expired password resets", "error", err)
		return 0
	}

	s.Logger.Info("housekeeping cleanup completed",
		"deleted_password_resets", deleted,
		"cutoff", cutoff,
	)
	return deleted
}
