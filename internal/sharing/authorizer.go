// Package sharing decides who may view whose dashboard and documents, and
// diffs grant sets for reconciliation. All functions are pure predicates
// over grant state the caller has already loaded; identity is always an
// explicit requester ID, never ambient session state.
package sharing

import (
	"sort"

	"pathfinder-backend/internal/domain"
)

// CanViewDashboard reports whether requesterID may view ownerID's computed
// dashboard. Self-access is unconditional; otherwise an exact
// (owner, requester) grant must exist. Grants do not chain.
func CanViewDashboard(ownerID, requesterID string, grants []domain.VizShare) bool {
	if requesterID == ownerID {
		return true
	}
	for _, g := range grants {
		if g.OwnerID == ownerID && g.SharedToUserID == requesterID {
			return true
		}
	}
	return false
}

// VisibleDocuments filters the owner's documents down to what requesterID
// may see. The owner sees everything; others see documents with a direct
// grant, plus publicly-flagged documents when the requester already holds
// dashboard access. Unauthorized requesters get an empty slice, never an
// error.
func VisibleDocuments(ownerID, requesterID string, docs []domain.Document, grants []domain.SharedWith, dashboardAuthorized bool) []domain.Document {
	visible := make([]domain.Document, 0, len(docs))
	if requesterID == ownerID {
		for _, d := range docs {
			if d.UserID == ownerID {
				visible = append(visible, d)
			}
		}
		return visible
	}

	granted := make(map[int64]bool, len(grants))
	for _, g := range grants {
		if g.SharedToUserID == requesterID {
			granted[g.DocumentID] = true
		}
	}

	for _, d := range docs {
		if d.UserID != ownerID {
			continue
		}
		if granted[d.ID] || (d.IsShared && dashboardAuthorized) {
			visible = append(visible, d)
		}
	}
	return visible
}

// ReconcileGrants computes the exact symmetric difference between the
// desired and existing grantee sets. Unchanged grantees appear in neither
// list, so applying the diff never churns rows; reapplying the same desired
// set yields an empty diff. Output is sorted and duplicate-free.
func ReconcileGrants(desired, existing []string) domain.GrantDiff {
	want := make(map[string]bool, len(desired))
	for _, id := range desired {
		if id != "" {
			want[id] = true
		}
	}
	have := make(map[string]bool, len(existing))
	for _, id := range existing {
		if id != "" {
			have[id] = true
		}
	}

	diff := domain.GrantDiff{}
	for id := range want {
		if !have[id] {
			diff.ToAdd = append(diff.ToAdd, id)
		}
	}
	for id := range have {
		if !want[id] {
			diff.ToRemove = append(diff.ToRemove, id)
		}
	}
	sort.Strings(diff.ToAdd)
	sort.Strings(diff.ToRemove)
	return diff
}
