package domain

import "time"

// PasswordResetTTL is how long a reset link stays redeemable.
const PasswordResetTTL = 30 * time.Minute

// PasswordReset is a single-use reset token. Only the SHA-256 fingerprint of
// the secret is stored.
type PasswordReset struct {
	ID        string
	UserID    string
	TokenHash string
	ExpiresAt time.Time
	UsedAt    *time.Time
	CreatedAt time.Time
}

func (p PasswordReset) IsUsed() bool { return p.UsedAt != nil }

// IsExpired reports whether now is strictly after the expiry.
func (p PasswordReset) IsExpired(now time.Time) bool { return now.After(p.ExpiresAt) }
