package service

import (
	"context"
	"errors"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/aussiebroadwan/securestory/internal/securestory/domain"
	"github.com/aussiebroadwan/securestory/internal/securestory/store"
	"github.com/aussiebroadwan/securestory/pkg/cryptox"
	"github.com/aussiebroadwan/securestory/pkg/idx"
	"github.com/aussiebroadwan/securestory/pkg/jwtx"
	"github.com/aussiebroadwan/securestory/pkg/slogx"
)

// AuthService registers users and issues access tokens.
type AuthService struct {
	Store     store.Store
	Signer    jwtx.Signer
	Issuer    string
	AccessTTL time.Duration
	Now       func() time.Time
}

// Register creates an account. The very first account needs no caller;
// every later one must be created by an admin. An empty role means viewer.
func (s *AuthService) Register(ctx context.Context, caller *Caller, email, password string, role domain.Role) (domain.User, error) {
	log := slogx.FromContext(ctx)

	email = domain.NormalizeEmail(email)
	if email == "" {
		return domain.User{}, invalid("email", "is required")
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return domain.User{}, invalid("password", "must be at least 8 characters")
	}
	if len(password) > cryptox.MaxPasswordBytes {
		return domain.User{}, invalid("password", "must be at most 72 bytes")
	}
	if role == "" {
		role = domain.RoleViewer
	}
	if !role.Valid() {
		return domain.User{}, invalid("role", "must be one of admin, analyst, viewer")
	}

	empty, err := s.Store.Users().IsEmpty(ctx)
	if err != nil {
		log.Error("failed to count users", slog.Any("error", err))
		return domain.User{}, err
	}
	if !empty {
		if caller == nil {
			log.Warn("anonymous registration attempt after bootstrap")
			return domain.User{}, ErrUnauthorized
		}
		if caller.Role != domain.RoleAdmin {
			log.Warn("non-admin registration attempt", slog.String("caller_id", caller.UserID))
			return domain.User{}, ErrForbidden
		}
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		log.Error("failed to hash password", slog.Any("error", err))
		return domain.User{}, err
	}

	now := clock(s.Now)
	user := domain.User{
		ID:           idx.NewAt(now).String(),
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			log.Warn("registration with taken email")
			return domain.User{}, ErrEmailTaken
		}
		log.Error("failed to create user", slog.Any("error", err))
		return domain.User{}, err
	}

	log.Info("user registered",
		slog.String("user_id", user.ID),
		slog.String("role", string(user.Role)),
		slog.Bool("first_user", empty),
	)
	return user, nil
}

// Login verifies credentials and returns a signed access token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, domain.User, error) {
	log := slogx.FromContext(ctx)

	email = domain.NormalizeEmail(email)
	if email == "" || password == "" {
		return "", domain.User{}, ErrInvalidCredentials
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Warn("login failed: unknown email")
			return "", domain.User{}, ErrInvalidCredentials
		}
		log.Error("failed to look up user", slog.Any("error", err))
		return "", domain.User{}, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		log.Warn("login failed: password mismatch", slog.String("user_id", user.ID))
		return "", domain.User{}, ErrInvalidCredentials
	}

	ttl := s.AccessTTL
	if ttl <= 0 {
		ttl = jwtx.DefaultAccessTokenTTL
	}

	claims := jwtx.NewAccessClaims(user.ID, user.Email, string(user.Role), s.Issuer, ttl, clock(s.Now))
	token, err := s.Signer.Sign(claims)
	if err != nil {
		log.Error("failed to sign access token", slog.Any("error", err))
		return "", domain.User{}, err
	}

	log.Info("user logged in", slog.String("user_id", user.ID))
	return token, user, nil
}

// GetUser fetches a user by id.
func (s *AuthService) GetUser(ctx context.Context, id string) (domain.User, error) {
	return s.Store.Users().GetUserByID(ctx, id)
}
