package sharing_test

import (
	"testing"

	"pathfinder-backend/internal/domain"
	"pathfinder-backend/internal/sharing"

	"github.com/stretchr/testify/assert"
)

func TestCanViewDashboard(t *testing.T) {
	grants := []domain.VizShare{
		{OwnerID: "alice", SharedToUserID: "bob"},
		{OwnerID: "bob", SharedToUserID: "carol"},
	}

	t.Run("owner always sees their own dashboard", func(t *testing.T) {
		assert.True(t, sharing.CanViewDashboard("alice", "alice", nil))
	})

	t.Run("grant allows access", func(t *testing.T) {
		assert.True(t, sharing.CanViewDashboard("alice", "bob", grants))
	})

	t.Run("no grant denies access", func(t *testing.T) {
		assert.False(t, sharing.CanViewDashboard("alice", "carol", grants))
	})

	t.Run("grants are directional", func(t *testing.T) {
		// alice->bob does not imply bob->alice.
		assert.False(t, sharing.CanViewDashboard("bob", "alice", grants))
	})

	t.Run("grants do not chain", func(t *testing.T) {
		// alice->bob and bob->carol never yield alice->carol.
		assert.False(t, sharing.CanViewDashboard("alice", "carol", grants))
	})
}

func TestVisibleDocuments(t *testing.T) {
	docs := []domain.Document{
		{ID: 1, UserID: "alice", FileName: "resume.pdf"},
		{ID: 2, UserID: "alice", FileName: "transcript.pdf", IsShared: true},
		{ID: 3, UserID: "alice", FileName: "cover.docx"},
	}
	grants := []domain.SharedWith{
		{DocumentID: 1, SharedToUserID: "bob"},
		{DocumentID: 3, SharedToUserID: "carol"},
	}

	t.Run("owner sees all own documents", func(t *testing.T) {
		visible := sharing.VisibleDocuments("alice", "alice", docs, grants, false)
		assert.Len(t, visible, 3)
	})

	t.Run("grantee sees only granted documents", func(t *testing.T) {
		visible := sharing.VisibleDocuments("alice", "bob", docs, grants, false)
		assert.Len(t, visible, 1)
		assert.Equal(t, int64(1), visible[0].ID)
	})

	t.Run("public flag needs dashboard access", func(t *testing.T) {
		visible := sharing.VisibleDocuments("alice", "bob", docs, grants, true)
		assert.Len(t, visible, 2)
		assert.Equal(t, int64(1), visible[0].ID)
		assert.Equal(t, int64(2), visible[1].ID)
	})

	t.Run("public flag alone exposes nothing", func(t *testing.T) {
		visible := sharing.VisibleDocuments("alice", "dave", docs, grants, false)
		assert.Empty(t, visible)
	})

	t.Run("stranger gets empty slice, not an error", func(t *testing.T) {
		visible := sharing.VisibleDocuments("alice", "dave", docs, nil, false)
		assert.NotNil(t, visible)
		assert.Empty(t, visible)
	})

	t.Run("documents from other owners are ignored", func(t *testing.T) {
		mixed := append(docs, domain.Document{ID: 9, UserID: "mallory", IsShared: true})
		visible := sharing.VisibleDocuments("alice", "alice", mixed, nil, false)
		assert.Len(t, visible, 3)
	})
}

func TestReconcileGrants(t *testing.T) {
	t.Run("adds and removes the exact difference", func(t *testing.T) {
		diff := sharing.ReconcileGrants(
			[]string{"bob", "carol", "dave"},
			[]string{"carol", "erin"},
		)
		assert.Equal(t, []string{"bob", "dave"}, diff.ToAdd)
		assert.Equal(t, []string{"erin"}, diff.ToRemove)
	})

	t.Run("unchanged grantees are never churned", func(t *testing.T) {
		diff := sharing.ReconcileGrants([]string{"bob"}, []string{"bob"})
		assert.True(t, diff.Empty())
	})

	t.Run("idempotent against the applied result", func(t *testing.T) {
		desired := []string{"bob", "carol"}
		first := sharing.ReconcileGrants(desired, []string{"erin"})
		assert.False(t, first.Empty())

		// After applying the diff the existing set equals desired.
		second := sharing.ReconcileGrants(desired, desired)
		assert.True(t, second.Empty())
	})

	t.Run("duplicates and empty IDs are dropped", func(t *testing.T) {
		diff := sharing.ReconcileGrants([]string{"bob", "bob", ""}, []string{""})
		assert.Equal(t, []string{"bob"}, diff.ToAdd)
		assert.Empty(t, diff.ToRemove)
	})

	t.Run("output is sorted", func(t *testing.T) {
		diff := sharing.ReconcileGrants([]string{"zed", "amy", "mia"}, nil)
		assert.Equal(t, []string{"amy", "mia", "zed"}, diff.ToAdd)
	})

	t.Run("empty desired removes everything", func(t *testing.T) {
		diff := sharing.ReconcileGrants(nil, []string{"bob", "amy"})
		assert.Empty(t, diff.ToAdd)
		assert.Equal(t, []string{"amy", "bob"}, diff.ToRemove)
	})
}
