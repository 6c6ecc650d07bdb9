package domain

import (
	"context"
	"time"
)

type User struct {
	ID           string    `json:"id"`
	Username     string    `json:"username" validate:"required,min=3,max=80,valid_username"`
	Email        string    `json:"email" validate:"required,email,max=120"`
	PasswordHash string    `json:"-"`
	RegisteredAt time.Time `json:"registered_at"`
}

type SignupRequest struct {
	Username string `json:"username" validate:"required,min=3,max=80,valid_username"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// LoginRequest accepts either username or email as the identity.
type LoginRequest struct {
	Identity string `json:"identity" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type LoginResult struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}

type UserRepository interface {
	Create(ctx context.Context, user *User) error
	GetByID(ctx context.Context, id string) (*User, error)
	GetByIdentity(ctx context.Context, identity string) (*User, error)
	ListOthers(ctx context.Context, excludeID string) ([]User, error)
	UpdatePassword(ctx context.Context, id, passwordHash string) error
}

type AuthUsecase interface {
	Signup(ctx context.Context, req *SignupRequest) (*User, error)
	Login(ctx context.Context, req *LoginRequest) (*LoginResult, error)
	GetCurrentUser(ctx context.Context, id string) (*User, error)
	ForgotPassword(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, token, newPassword string) error
}
