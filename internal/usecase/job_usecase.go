package usecase

import (
	"context"

	"pathfinder-backend/internal/domain"
	"pathfinder-backend/internal/sharing"
	"pathfinder-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type jobUsecase struct {
	jobs     domain.JobHistoryRepository
	shares   domain.ShareRepository
	validate *validator.Validate
}

func NewJobUsecase(jobs domain.JobHistoryRepository, shares domain.ShareRepository, validate *validator.Validate) domain.JobUsecase {
	return &jobUsecase{
		jobs:     jobs,
		shares:   shares,
		validate: validate,
	}
}

func (u *jobUsecase) List(ctx context.Context, requesterID, ownerID string) ([]domain.JobHistory, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" || ctxUserID != requesterID {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ownerID == "" {
		ownerID = requesterID
	}

	// Job history rides on the dashboard grant: anyone allowed to see the
	// owner's computed dashboard may see the history feeding it.
	if requesterID != ownerID {
		granteeIDs, err := u.shares.DashboardGrantees(ctx, ownerID)
		if err != nil {
			return nil, apperror.Internal(err)
		}
		grants := make([]domain.VizShare, len(granteeIDs))
		for i, id := range granteeIDs {
			grants[i] = domain.VizShare{OwnerID: ownerID, SharedToUserID: id}
		}
		if !sharing.CanViewDashboard(ownerID, requesterID, grants) {
			return nil, apperror.Forbidden("You're not authorized to view that job history")
		}
	}

	history, err := u.jobs.ListByUserID(ctx, ownerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return history, nil
}

func (u *jobUsecase) Add(ctx context.Context, userID string, job *domain.JobHistory) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" || ctxUserID != userID {
		return apperror.Unauthorized("User not authenticated")
	}

	job.UserID = ctxUserID
	if err := u.validate.Struct(job); err != nil {
		return apperror.BadRequest(err.Error())
	}

	if err := u.jobs.Create(ctx, job); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
