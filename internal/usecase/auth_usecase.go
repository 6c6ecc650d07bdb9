package usecase

import (
	"context"
	"fmt"
	"time"

	"pathfinder-backend/config"
	"pathfinder-backend/internal/domain"
	"pathfinder-backend/pkg/apperror"
	"pathfinder-backend/pkg/email"
	"pathfinder-backend/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

type authUsecase struct {
	users    domain.UserRepository
	resets   domain.PasswordResetRepository
	mailer   *email.EmailService
	cfg      *config.Config
	validate *validator.Validate
}

func NewAuthUsecase(users domain.UserRepository, resets domain.PasswordResetRepository, mailer *email.EmailService, cfg *config.Config, validate *validator.Validate) domain.AuthUsecase {
	return &authUsecase{
		users:    users,
		resets:   resets,
		mailer:   mailer,
		cfg:      cfg,
		validate: validate,
	}
}

func (u *authUsecase) Signup(ctx context.Context, req *domain.SignupRequest) (*domain.User, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	// Explicit pre-check gives a friendlier message; the unique constraint
	// still backs this up under races.
	for _, identity := range []string{req.Username, req.Email} {
		existing, err := u.users.GetByIdentity(ctx, identity)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		if existing != nil {
			return nil, apperror.Conflict("Username or email already taken")
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcryptCost)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
		RegisteredAt: time.Now().UTC(),
	}
	if err := u.users.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) Login(ctx context.Context, req *domain.LoginRequest) (*domain.LoginResult, error) {
	if err := u.validate.Struct(req); err != nil {
		return nil, apperror.BadRequest(err.Error())
	}

	user, err := u.users.GetByIdentity(ctx, req.Identity)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		// Same message for unknown user and wrong password.
		return nil, apperror.Unauthorized("Invalid user or password")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   user.ID,
		"email": user.Email,
		"iat":   now.Unix(),
		"exp":   now.Add(time.Duration(u.cfg.TokenTTLMin) * time.Minute).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(u.cfg.JWTSecret))
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.LoginResult{Token: token, User: user}, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := u.users.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if user == nil {
		return nil, apperror.NotFound("User not found")
	}
	return user, nil
}

func (u *authUsecase) ForgotPassword(ctx context.Context, emailAddr string) error {
	user, err := u.users.GetByIdentity(ctx, emailAddr)
	if err != nil {
		return apperror.Internal(err)
	}
	if user == nil {
		// Respond identically for unknown addresses.
		return nil
	}

	token := &domain.PasswordResetToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(time.Duration(u.cfg.ResetTokenTTLMin) * time.Minute),
	}
	if err := u.resets.Create(ctx, token); err != nil {
		return apperror.Internal(err)
	}

	if !u.mailer.IsConfigured() {
		logger.Log.Warn("Password reset requested but SMTP is not configured", "user_id", user.ID)
		return nil
	}

	data := email.ResetEmailData{
		Username:  user.Username,
		ResetLink: fmt.Sprintf("%s/reset/%s", u.cfg.FrontendURL, token.Token),
		ExpiresIn: fmt.Sprintf("%d minutes", u.cfg.ResetTokenTTLMin),
	}
	if err := u.mailer.SendPasswordResetEmail(user.Email, data); err != nil {
		logger.Log.Error("Failed to send password reset email", "user_id", user.ID, "error", err)
	}
	return nil
}

func (u *authUsecase) ResetPassword(ctx context.Context, token, newPassword string) error {
	if len(newPassword) < 8 {
		return apperror.BadRequest("Password must be at least 8 characters")
	}

	tok, err := u.resets.GetByToken(ctx, token)
	if err != nil {
		return apperror.Internal(err)
	}
	if tok == nil || !tok.IsValid() {
		return apperror.BadRequest("Invalid or expired reset link")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcryptCost)
	if err != nil {
		return apperror.Internal(err)
	}
	if err := u.users.UpdatePassword(ctx, tok.UserID, string(hash)); err != nil {
		return apperror.Internal(err)
	}
	if err := u.resets.MarkUsed(ctx, tok.ID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
