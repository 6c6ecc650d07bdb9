package postgres

import (
	"context"
	"errors"

	"pathfinder-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type passwordResetRepo struct {
	db *pgxpool.Pool
}

func NewPasswordResetRepository(db *pgxpool.Pool) domain.PasswordResetRepository {
	return &passwordResetRepo{db: db}
}

func (r *passwordResetRepo) Create(ctx context.Context, token *domain.PasswordResetToken) error {
	query := `INSERT INTO password_reset_tokens (user_id, token, expires_at, used, created_at)
              VALUES ($1, $2, $3, false, NOW()) RETURNING id, created_at`
	return r.db.QueryRow(ctx, query, token.UserID, token.Token, token.ExpiresAt).
		Scan(&token.ID, &token.CreatedAt)
}

func (r *passwordResetRepo) GetByToken(ctx context.Context, token string) (*domain.PasswordResetToken, error) {
	query := `SELECT id, user_id, token, expires_at, used, created_at
              FROM password_reset_tokens WHERE token = $1`
	var t domain.PasswordResetToken
	err := r.db.QueryRow(ctx, query, token).Scan(
		&t.ID, &t.UserID, &t.Token, &t.ExpiresAt, &t.Used, &t.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *passwordResetRepo) MarkUsed(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `UPDATE password_reset_tokens SET used = true WHERE id = $1`, id)
	return err
}
