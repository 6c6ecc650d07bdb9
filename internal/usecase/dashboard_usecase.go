package usecase

import (
	"context"
	"errors"

	"pathfinder-backend/internal/domain"
	"pathfinder-backend/internal/scoring"
	"pathfinder-backend/internal/sharing"
	"pathfinder-backend/pkg/apperror"
)

type dashboardUsecase struct {
	profiles domain.ProfileRepository
	docs     domain.DocumentRepository
	shares   domain.ShareRepository
	jobs     domain.JobHistoryRepository
}

func NewDashboardUsecase(profiles domain.ProfileRepository, docs domain.DocumentRepository, shares domain.ShareRepository, jobs domain.JobHistoryRepository) domain.DashboardUsecase {
	return &dashboardUsecase{
		profiles: profiles,
		docs:     docs,
		shares:   shares,
		jobs:     jobs,
	}
}

func (u *dashboardUsecase) Stats(ctx context.Context, userID string) (*domain.DashboardStats, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" || ctxUserID != userID {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	uploads, err := u.docs.CountByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	shared, err := u.shares.CountDistinctSharedDocuments(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	applications, err := u.jobs.CountByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	profile, err := u.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	if profile == nil {
		// The landing page tolerates a missing profile: everything scores
		// zero instead of blocking the whole dashboard.
		profile = &domain.Profile{UserID: userID}
	}
	docs, err := u.docs.ListByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	report, err := scoring.Compute(profile, docs)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	return &domain.DashboardStats{
		Uploads:         uploads,
		SharedDocuments: shared,
		Applications:    applications,
		FitScore:        report.FitScore,
	}, nil
}

func (u *dashboardUsecase) Visualize(ctx context.Context, requesterID, ownerID string) (*domain.ScoreReport, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" || ctxUserID != requesterID {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ownerID == "" {
		ownerID = requesterID
	}

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
			return nil, apperror.Forbidden("You're not authorized to view that dashboard")
		}
	}

	profile, err := u.profiles.GetByUserID(ctx, ownerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	docs, err := u.docs.ListByUserID(ctx, ownerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	report, err := scoring.Compute(profile, docs)
	if err != nil {
		if errors.Is(err, scoring.ErrProfileMissing) {
			return nil, apperror.NotFound("No profile found. Please complete your profile before visualizing.")
		}
		return nil, apperror.Internal(err)
	}
	return report, nil
}
