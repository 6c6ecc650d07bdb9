package usecase

import (
	"context"

	"pathfinder-backend/internal/domain"
	"pathfinder-backend/internal/sharing"
	"pathfinder-backend/pkg/apperror"

	"github.com/go-playground/validator/v10"
)

type shareUsecase struct {
	shares   domain.ShareRepository
	docs     domain.DocumentRepository
	users    domain.UserRepository
	validate *validator.Validate
}

func NewShareUsecase(shares domain.ShareRepository, docs domain.DocumentRepository, users domain.UserRepository, validate *validator.Validate) domain.ShareUsecase {
	return &shareUsecase{
		shares:   shares,
		docs:     docs,
		users:    users,
		validate: validate,
	}
}

func (u *shareUsecase) GetSharingState(ctx context.Context, userID string) (*domain.SharingState, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" || ctxUserID != userID {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	docs, err := u.docs.ListByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	docIDs := make([]int64, len(docs))
	for i, d := range docs {
		docIDs[i] = d.ID
	}
	grantees, err := u.shares.DocumentGrantees(ctx, docIDs)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	dashboardGrantees, err := u.shares.DashboardGrantees(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	others, err := u.users.ListOthers(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	state := &domain.SharingState{
		Documents:           make([]domain.DocumentSharing, 0, len(docs)),
		DashboardGranteeIDs: dashboardGrantees,
		Users:               others,
	}
	for _, d := range docs {
		ids := grantees[d.ID]
		if ids == nil {
			ids = []string{}
		}
		state.Documents = append(state.Documents, domain.DocumentSharing{Document: d, GranteeIDs: ids})
	}
	return state, nil
}

// UpdateSharing reconciles the owner's desired grant state against the
// current one and applies exactly the difference. The whole submission is
// rejected when it touches a document the requester does not own.
func (u *shareUsecase) UpdateSharing(ctx context.Context, userID string, req *domain.UpdateSharingRequest) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" || ctxUserID != userID {
		return apperror.Unauthorized("User not authenticated")
	}
	if err := u.validate.Struct(req); err != nil {
		return apperror.BadRequest(err.Error())
	}

	docs, err := u.docs.ListByUserID(ctx, userID)
	if err != nil {
		return apperror.Internal(err)
	}
	owned := make(map[int64]bool, len(docs))
	docIDs := make([]int64, len(docs))
	for i, d := range docs {
		owned[d.ID] = true
		docIDs[i] = d.ID
	}

	existing, err := u.shares.DocumentGrantees(ctx, docIDs)
	if err != nil {
		return apperror.Internal(err)
	}

	update := &domain.SharingUpdate{}
	for _, input := range req.Documents {
		if !owned[input.ID] {
			return apperror.Forbidden("You can only update sharing for your own documents")
		}
		update.Documents = append(update.Documents, domain.DocumentSharingChange{
			DocumentID: input.ID,
			Public:     input.Public,
			Grants:     sharing.ReconcileGrants(dropSelf(input.GranteeIDs, userID), existing[input.ID]),
		})
	}

	existingDashboard, err := u.shares.DashboardGrantees(ctx, userID)
	if err != nil {
		return apperror.Internal(err)
	}
	update.Dashboard = sharing.ReconcileGrants(dropSelf(req.DashboardGranteeIDs, userID), existingDashboard)

	if err := u.shares.ApplySharingUpdate(ctx, userID, update); err != nil {
		return apperror.Internal(err)
	}
	return nil
}

func (u *shareUsecase) SharedWithMe(ctx context.Context, userID string) (*domain.SharedWithMeResult, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" || ctxUserID != userID {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	docs, err := u.shares.ListSharedDocuments(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	owners, err := u.shares.ListDashboardOwners(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return &domain.SharedWithMeResult{Documents: docs, DashboardOwners: owners}, nil
}

// dropSelf strips the owner's own ID out of a desired grantee set; granting
// to yourself is meaningless since self-access is unconditional.
func dropSelf(ids []string, selfID string) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id != selfID {
			out = append(out, id)
		}
	}
	return out
}
