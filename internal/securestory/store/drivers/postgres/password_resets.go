package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/aussiebroadwan/securestory/internal/securestory/domain"
)

type passwordResetsRepo struct {
	db DBTX
}

func (r *passwordResetsRepo) CreatePasswordReset(ctx context.Context, p domain.PasswordReset) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO password_resets (id, user_id, token_hash, expires_at, used_at, created_at)
		 VALUES ($1, $2, $3, $4, NULL, $5)`,
		p.ID, p.UserID, p.TokenHash, p.ExpiresAt.UTC(), p.CreatedAt.UTC())
	return mapConstraint(err)
}

func (r *passwordResetsRepo) GetPasswordResetByHash(ctx context.Context, userID, tokenHash string) (domain.PasswordReset, error) {
	var (
		p      domain.PasswordReset
		usedAt sql.NullTime
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, user_id, token_hash, expires_at, used_at, created_at
		 FROM password_resets
		 WHERE user_id = $1 AND token_hash = $2`,
		userID, tokenHash,
	).Scan(&p.ID, &p.UserID, &p.TokenHash, &p.ExpiresAt, &usedAt, &p.CreatedAt)
	if err != nil {
		return domain.PasswordReset{}, mapNotFound(err)
	}
	p.ExpiresAt = p.ExpiresAt.UTC()
	p.CreatedAt = p.CreatedAt.UTC()
	p.UsedAt = nullTimePtr(usedAt)
	return p, nil
}

func (r *passwordResetsRepo) DeletePasswordResetsForUser(ctx context.Context, userID string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM password_resets WHERE user_id = $1`, userID)
	return err
}

func (r *passwordResetsRepo) MarkPasswordResetUsed(ctx context.Context, id string, usedAt time.Time) error {
	return expectOneRow(r.db.ExecContext(ctx,
		`UPDATE password_resets SET used_at = $1 WHERE id = $2 AND used_at IS NULL`,
		usedAt.UTC(), id))
}

func (r *passwordResetsRepo) DeleteExpiredPasswordResets(ctx context.Context, cutoff time.Time) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM password_resets WHERE expires_at < $1`, cutoff.UTC())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *passwordResetsRepo) CountPasswordResetsForUser(ctx context.Context, userID string) (int, error) {
	var n int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM password_resets WHERE user_id = $1`, userID).Scan(&n)
	return n, err
}
