package domain

import "context"

// SharedWith grants one user read access to one document. The pair is
// unique; presence alone denotes the grant.
type SharedWith struct {
	DocumentID     int64  `json:"document_id"`
	SharedToUserID string `json:"shared_to_user_id"`
}

// VizShare grants one user read access to the owner's computed dashboard.
type VizShare struct {
	OwnerID        string `json:"owner_id"`
	SharedToUserID string `json:"shared_to_user_id"`
}

// GrantDiff is the exact set difference between a desired and an existing
// grantee set. Applying it must never touch unchanged grants.
type GrantDiff struct {
	ToAdd    []string `json:"to_add"`
	ToRemove []string `json:"to_remove"`
}

// Empty reports whether applying the diff would be a no-op.
func (d GrantDiff) Empty() bool {
	return len(d.ToAdd) == 0 && len(d.ToRemove) == 0
}

// DocumentSharingChange is the reconciled update for a single document.
type DocumentSharingChange struct {
	DocumentID int64
	Public     bool
	Grants     GrantDiff
}

// SharingUpdate is one owner's full reconciled sharing submission. The
// repository applies it as a single transaction.
type SharingUpdate struct {
	Documents []DocumentSharingChange
	Dashboard GrantDiff
}

// DocumentSharing pairs a document with its current grantee list.
type DocumentSharing struct {
	Document   Document `json:"document"`
	GranteeIDs []string `json:"grantee_ids"`
}

// SharingState is everything the owner's sharing page needs.
type SharingState struct {
	Documents           []DocumentSharing `json:"documents"`
	DashboardGranteeIDs []string          `json:"dashboard_grantee_ids"`
	Users               []User            `json:"users"`
}

// DocumentSharingInput is the desired sharing state for one document.
type DocumentSharingInput struct {
	ID         int64    `json:"id" validate:"required"`
	Public     bool     `json:"public"`
	GranteeIDs []string `json:"grantee_ids"`
}

// UpdateSharingRequest is the owner's desired sharing state.
type UpdateSharingRequest struct {
	Documents           []DocumentSharingInput `json:"documents" validate:"dive"`
	DashboardGranteeIDs []string               `json:"dashboard_grantee_ids"`
}

// SharedDocument is a document shared to the requester, with its owner named.
type SharedDocument struct {
	Document
	OwnerUsername string `json:"owner_username"`
}

// SharedWithMeResult lists what other users have shared to the requester.
type SharedWithMeResult struct {
	Documents       []SharedDocument `json:"documents"`
	DashboardOwners []User           `json:"dashboard_owners"`
}

type ShareRepository interface {
	// DocumentGrantees returns grantee IDs keyed by document ID for all of
	// the owner's documents.
	DocumentGrantees(ctx context.Context, docIDs []int64) (map[int64][]string, error)
	DashboardGrantees(ctx context.Context, ownerID string) ([]string, error)
	VizShareExists(ctx context.Context, ownerID, granteeID string) (bool, error)
	DocumentGrantsFor(ctx context.Context, granteeID string, docIDs []int64) ([]SharedWith, error)
	ListSharedDocuments(ctx context.Context, granteeID string) ([]SharedDocument, error)
	ListDashboardOwners(ctx context.Context, granteeID string) ([]User, error)
	CountDistinctSharedDocuments(ctx context.Context, ownerID string) (int, error)
	// ApplySharingUpdate persists the reconciled diff atomically; a partial
	// failure rolls the whole submission back.
	ApplySharingUpdate(ctx context.Context, ownerID string, update *SharingUpdate) error
}

type ShareUsecase interface {
	GetSharingState(ctx context.Context, userID string) (*SharingState, error)
	UpdateSharing(ctx context.Context, userID string, req *UpdateSharingRequest) error
	SharedWithMe(ctx context.Context, userID string) (*SharedWithMeResult, error)
}
