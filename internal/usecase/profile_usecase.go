package usecase

import (
	"context"

	"pathfinder-backend/internal/domain"
	"pathfinder-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type profileUsecase struct {
	repo     domain.ProfileRepository
	validate *validator.Validate
}

func NewProfileUsecase(repo domain.ProfileRepository, validate *validator.Validate) domain.ProfileUsecase {
	return &profileUsecase{
		repo:     repo,
		validate: validate,
	}
}

func (u *profileUsecase) GetOwn(ctx context.Context, userID string) (*domain.Profile, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return nil, apperror.Forbidden("You can only view your own profile")
	}

	profile, err := u.repo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		return nil, apperror.NotFound("No profile found. Please complete your profile.")
	}
	return profile, nil
}

func (u *profileUsecase) Upsert(ctx context.Context, profile *domain.Profile) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return apperror.Unauthorized("User not authenticated")
	}

	// Force the owner from context so nobody edits another user's profile.
	profile.UserID = ctxUserID

	if err := u.validate.Struct(profile); err != nil {
		return apperror.BadRequest(err.Error())
	}

	if err := u.repo.Upsert(ctx, profile); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
