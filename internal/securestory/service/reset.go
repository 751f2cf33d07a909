package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"github.com/aussiebroadwan/securestory/internal/securestory/domain"
	"github.com/aussiebroadwan/securestory/internal/securestory/notify"
	"github.com/aussiebroadwan/securestory/internal/securestory/store"
	"github.com/aussiebroadwan/securestory/pkg/cryptox"
	"github.com/aussiebroadwan/securestory/pkg/idx"
	"github.com/aussiebroadwan/securestory/pkg/slogx"
)

// MinPasswordLength applies to registration and reset.
const MinPasswordLength = 8

// MailTimeout bounds one reset email delivery.
const MailTimeout = 30 * time.Second

// PasswordResetService issues and redeems single-use password reset tokens.
type PasswordResetService struct {
	Store   store.Store
	Sender  notify.Sender
	BaseURL string

	// TTL defaults to domain.PasswordResetTTL.
	TTL time.Duration
	Now func() time.Time

	mail sync.WaitGroup
}

func (s *PasswordResetService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return domain.PasswordResetTTL
}

// ResetURL builds the link mailed to the user.
func (s *PasswordResetService) ResetURL(token, email string) string {
	return fmt.Sprintf("%s/reset-password?token=%s&email=%s",
		strings.TrimRight(s.BaseURL, "/"), url.QueryEscape(token), url.QueryEscape(email))
}

// RequestReset issues a fresh reset token for email and mails the link in
// the background. Wait blocks until delivery has been attempted.
//
// Unknown or empty emails succeed silently so the endpoint cannot be used to
// enumerate accounts. Only store and token generation failures are returned.
func (s *PasswordResetService) RequestReset(ctx context.Context, email string) error {
	log := slogx.FromContext(ctx)

	email = domain.NormalizeEmail(email)
	if email == "" {
		log.Debug("password reset requested without email")
		return nil
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("password reset requested for unknown email")
			return nil
		}
		log.Error("failed to look up user for password reset", slog.Any("error", err))
		return err
	}

	token, err := cryptox.GenerateToken(cryptox.ResetTokenSize)
	if err != nil {
		log.Error("failed to generate reset token", slog.Any("error", err))
		return err
	}

	now := clock(s.Now)
	reset := domain.PasswordReset{
		ID:        idx.NewAt(now).String(),
		UserID:    user.ID,
		TokenHash: cryptox.FingerprintToken(token),
		ExpiresAt: now.Add(s.ttl()),
		CreatedAt: now,
	}

	// Issuing replaces every earlier token of the user.
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Users().LockUser(ctx, user.ID); err != nil {
			return fmt.Errorf("lock user: %w", err)
		}
		if err := tx.PasswordResets().DeletePasswordResetsForUser(ctx, user.ID); err != nil {
			return fmt.Errorf("delete previous tokens: %w", err)
		}
		if err := tx.PasswordResets().CreatePasswordReset(ctx, reset); err != nil {
			return fmt.Errorf("insert token: %w", err)
		}
		return nil
	})
	if err != nil {
		log.Error("failed to store password reset token",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
		return err
	}

	log.Info("password reset issued",
		slog.String("user_id", user.ID),
		slog.String("reset_id", reset.ID),
		slog.Time("expires_at", reset.ExpiresAt),
	)

	// Mail goes out after the response so known and unknown emails answer
	// in about the same time.
	link := s.ResetURL(token, user.Email)
	s.mail.Add(1)
	go func() {
		defer s.mail.Done()
		s.deliver(context.WithoutCancel(ctx), user, link)
	}()
	return nil
}

func (s *PasswordResetService) deliver(ctx context.Context, user domain.User, link string) {
	ctx, cancel := context.WithTimeout(ctx, MailTimeout)
	defer cancel()

	if err := s.Sender.SendPasswordReset(ctx, user.Email, link); err != nil {
		slogx.FromContext(ctx).Warn("failed to deliver password reset email",
			slog.String("user_id", user.ID),
			slog.Any("error", err),
		)
	}
}

// Wait blocks until every reset email handed off by RequestReset has been
// attempted.
func (s *PasswordResetService) Wait() {
	s.mail.Wait()
}

// RedeemReset consumes rawToken and replaces the user's password.
//
// The token is marked used with a conditional update inside the same
// transaction as the password change, so of two concurrent redemptions of one
// token exactly one succeeds.
func (s *PasswordResetService) RedeemReset(ctx context.Context, email, rawToken, newPassword string) error {
	log := slogx.FromContext(ctx)

	// 1. Validate the payload before touching the store
	email = domain.NormalizeEmail(email)
	rawToken = strings.TrimSpace(rawToken)
	if email == "" || rawToken == "" ||
		utf8.RuneCountInString(newPassword) < MinPasswordLength ||
		len(newPassword) > cryptox.MaxPasswordBytes {
		log.Warn("password reset rejected: invalid payload")
		return ErrInvalidPayload
	}

	// 2. Resolve the user and their token
	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("password reset rejected: unknown email")
			return ErrInvalidToken
		}
		log.Error("failed to look up user for password reset", slog.Any("error", err))
		return err
	}

	reset, err := s.Store.PasswordResets().GetPasswordResetByHash(ctx, user.ID, cryptox.FingerprintToken(rawToken))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("password reset rejected: token mismatch", slog.String("user_id", user.ID))
			return ErrInvalidToken
		}
		log.Error("failed to look up password reset token", slog.Any("error", err))
		return err
	}

	// 3. Check state
	now := clock(s.Now)
	if reset.IsUsed() {
		log.Warn("password reset rejected: token already used", slog.String("reset_id", reset.ID))
		return ErrTokenAlreadyUsed
	}
	if reset.IsExpired(now) {
		log.Warn("password reset rejected: token expired", slog.String("reset_id", reset.ID))
		return ErrTokenExpired
	}

	// 4. Hash before opening the transaction
	hash, err := cryptox.HashPassword(newPassword)
	if err != nil {
		log.Error("failed to hash new password", slog.Any("error", err))
		return err
	}

	// 5. Consume the token and swap the password
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.PasswordResets().MarkPasswordResetUsed(ctx, reset.ID, now); err != nil {
			if errors.Is(err, store.ErrConflict) {
				return ErrTokenAlreadyUsed
			}
			return err
		}
		return tx.Users().UpdatePasswordHash(ctx, user.ID, hash, now)
	})
	if err != nil {
		if errors.Is(err, ErrTokenAlreadyUsed) {
			log.Warn("password reset rejected: token consumed concurrently", slog.String("reset_id", reset.ID))
			return ErrTokenAlreadyUsed
		}
		log.Error("failed to redeem password reset", slog.Any("error", err))
		return err
	}

	log.Info("password reset redeemed", slog.String("user_id", user.ID))
	return nil
}
