package sqlite

import (
	"context"
	"time"

	"github.com/aussiebroadwan/securestory/internal/securestory/domain"
	"github.com/aussiebroadwan/securestory/internal/securestory/store/drivers/sqlite/gen"
)

type passwordResetsRepo struct {
	q *gen.Queries
}

func (r *passwordResetsRepo) CreatePasswordReset(ctx context.Context, p domain.PasswordReset) error {
	err := r.q.CreatePasswordReset(ctx, gen.CreatePasswordResetParams{
		ID:        p.ID,
		UserID:    p.UserID,
		TokenHash: p.TokenHash,
		ExpiresAt: p.ExpiresAt.UTC(),
		CreatedAt: p.CreatedAt.UTC(),
	})
	return mapConstraint(err)
}

func (r *passwordResetsRepo) GetPasswordResetByHash(ctx context.Context, userID, tokenHash string) (domain.PasswordReset, error) {
	row, err := r.q.GetPasswordResetByHash(ctx, gen.GetPasswordResetByHashParams{
		UserID:    userID,
		TokenHash: tokenHash,
	})
	if err != nil {
		return domain.PasswordReset{}, mapNotFound(err)
	}
	return mapPasswordReset(row), nil
}

func (r *passwordResetsRepo) DeletePasswordResetsForUser(ctx context.Context, userID string) error {
	return r.q.DeletePasswordResetsForUser(ctx, userID)
}

func (r *passwordResetsRepo) MarkPasswordResetUsed(ctx context.Context, id string, usedAt time.Time) error {
	return expectOneRow(r.q.MarkPasswordResetUsed(ctx, gen.MarkPasswordResetUsedParams{
		UsedAt: usedAt.UTC(),
		ID:     id,
	}))
}

func (r *passwordResetsRepo) DeleteExpiredPasswordResets(ctx context.Context, cutoff time.Time) (int64, error) {
	return r.q.DeleteExpiredPasswordResets(ctx, cutoff.UTC())
}

func (r *passwordResetsRepo) CountPasswordResetsForUser(ctx context.Context, userID string) (int, error) {
	n, err := r.q.CountPasswordResetsForUser(ctx, userID)
	return int(n), err
}
