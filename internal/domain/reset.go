package domain

import (
	"context"
	"time"
)

// PasswordResetToken is a single-use, time-limited reset credential.
type PasswordResetToken struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	Token     string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
	Used      bool      `json:"used"`
	CreatedAt time.Time `json:"created_at"`
}

// IsValid reports whether the token can still be redeemed.
func (t *PasswordResetToken) IsValid() bool {
	return !t.Used && time.Now().Before(t.ExpiresAt)
}

type PasswordResetRepository interface {
	Create(ctx context.Context, token *PasswordResetToken) error
	// GetByToken returns (nil, nil) when the token is unknown.
	GetByToken(ctx context.Context, token string) (*PasswordResetToken, error)
	MarkUsed(ctx context.Context, id int64) error
}
