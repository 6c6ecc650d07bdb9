package postgres

import (
	"context"
	"fmt"

	"pathfinder-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/lib/pq"
)

type shareRepo struct {
	db *pgxpool.Pool
}

func NewShareRepository(db *pgxpool.Pool) domain.ShareRepository {
	return &shareRepo{db: db}
}

func (r *shareRepo) DocumentGrantees(ctx context.Context, docIDs []int64) (map[int64][]string, error) {
	grantees := make(map[int64][]string, len(docIDs))
	if len(docIDs) == 0 {
		return grantees, nil
	}

	query := `SELECT document_id, array_agg(shared_to_user_id ORDER BY shared_to_user_id)
              FROM shared_with WHERE document_id = ANY($1) GROUP BY document_id`
	rows, err := r.db.Query(ctx, query, docIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var docID int64
		var ids []string
		if err := rows.Scan(&docID, pq.Array(&ids)); err != nil {
			return nil, err
		}
		grantees[docID] = ids
	}
	return grantees, rows.Err()
}

func (r *shareRepo) DashboardGrantees(ctx context.Context, ownerID string) ([]string, error) {
	query := `SELECT COALESCE(array_agg(shared_to_user_id ORDER BY shared_to_user_id), '{}')
              FROM viz_share WHERE owner_id = $1`
	var ids []string
	if err := r.db.QueryRow(ctx, query, ownerID).Scan(pq.Array(&ids)); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *shareRepo) VizShareExists(ctx context.Context, ownerID, granteeID string) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM viz_share WHERE owner_id = $1 AND shared_to_user_id = $2)`
	var exists bool
	err := r.db.QueryRow(ctx, query, ownerID, granteeID).Scan(&exists)
	return exists, err
}

func (r *shareRepo) DocumentGrantsFor(ctx context.Context, granteeID string, docIDs []int64) ([]domain.SharedWith, error) {
	if len(docIDs) == 0 {
		return []domain.SharedWith{}, nil
	}
	query := `SELECT document_id, shared_to_user_id FROM shared_with
              WHERE shared_to_user_id = $1 AND document_id = ANY($2)`
	rows, err := r.db.Query(ctx, query, granteeID, docIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	grants := []domain.SharedWith{}
	for rows.Next() {
		var g domain.SharedWith
		if err := rows.Scan(&g.DocumentID, &g.SharedToUserID); err != nil {
			return nil, err
		}
		grants = append(grants, g)
	}
	return grants, rows.Err()
}

func (r *shareRepo) ListSharedDocuments(ctx context.Context, granteeID string) ([]domain.SharedDocument, error) {
	query := `
		SELECT d.id, d.user_id, d.file_name, d.storage_key, d.file_type, d.upload_time, d.is_shared, u.username
		FROM documents d
		JOIN users u ON d.user_id = u.id
		JOIN shared_with sw ON sw.document_id = d.id
		WHERE sw.shared_to_user_id = $1
		ORDER BY d.upload_time DESC`
	rows, err := r.db.Query(ctx, query, granteeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []domain.SharedDocument{}
	for rows.Next() {
		var sd domain.SharedDocument
		if err := rows.Scan(&sd.ID, &sd.UserID, &sd.FileName, &sd.StorageKey, &sd.FileType, &sd.UploadTime, &sd.IsShared, &sd.OwnerUsername); err != nil {
			return nil, err
		}
		docs = append(docs, sd)
	}
	return docs, rows.Err()
}

func (r *shareRepo) ListDashboardOwners(ctx context.Context, granteeID string) ([]domain.User, error) {
	query := `
		SELECT u.id, u.username, u.email, u.registered_at
		FROM users u
		JOIN viz_share vs ON vs.owner_id = u.id
		WHERE vs.shared_to_user_id = $1
		ORDER BY u.username`
	rows, err := r.db.Query(ctx, query, granteeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	owners := []domain.User{}
	for rows.Next() {
		var u domain.User
		if err := rows.Scan(&u.ID, &u.Username, &u.Email, &u.RegisteredAt); err != nil {
			return nil, err
		}
		owners = append(owners, u)
	}
	return owners, rows.Err()
}

func (r *shareRepo) CountDistinctSharedDocuments(ctx context.Context, ownerID string) (int, error) {
	query := `
		SELECT COUNT(DISTINCT sw.document_id)
		FROM shared_with sw
		JOIN documents d ON sw.document_id = d.id
		WHERE d.user_id = $1`
	var count int
	err := r.db.QueryRow(ctx, query, ownerID).Scan(&count)
	return count, err
}

// ApplySharingUpdate persists the reconciled grant diff inside one
// transaction so a partial failure never leaves grants half-applied.
// Concurrent submissions for the same owner serialize on the row locks
// taken here.
func (r *shareRepo) ApplySharingUpdate(ctx context.Context, ownerID string, update *domain.SharingUpdate) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, change := range update.Documents {
		// Ownership is re-checked in the same transaction as the writes.
		tag, err := tx.Exec(ctx,
			`UPDATE documents SET is_shared = $1 WHERE id = $2 AND user_id = $3`,
			change.Public, change.DocumentID, ownerID,
		)
		if err != nil {
			return fmt.Errorf("failed to update document %d: %w", change.DocumentID, err)
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("document %d not owned by %s", change.DocumentID, ownerID)
		}

		for _, granteeID := range change.Grants.ToRemove {
			_, err := tx.Exec(ctx,
				`DELETE FROM shared_with WHERE document_id = $1 AND shared_to_user_id = $2`,
				change.DocumentID, granteeID,
			)
			if err != nil {
				return fmt.Errorf("failed to revoke document grant: %w", err)
			}
		}
		for _, granteeID := range change.Grants.ToAdd {
			_, err := tx.Exec(ctx,
				`INSERT INTO shared_with (document_id, shared_to_user_id) VALUES ($1, $2)
                 ON CONFLICT DO NOTHING`,
				change.DocumentID, granteeID,
			)
			if err != nil {
				return fmt.Errorf("failed to create document grant: %w", err)
			}
		}
	}

	for _, granteeID := range update.Dashboard.ToRemove {
		_, err := tx.Exec(ctx,
			`DELETE FROM viz_share WHERE owner_id = $1 AND shared_to_user_id = $2`,
			ownerID, granteeID,
		)
		if err != nil {
			return fmt.Errorf("failed to revoke dashboard grant: %w", err)
		}
	}
	for _, granteeID := range update.Dashboard.ToAdd {
		_, err := tx.Exec(ctx,
			`INSERT INTO viz_share (owner_id, shared_to_user_id) VALUES ($1, $2)
             ON CONFLICT DO NOTHING`,
			ownerID, granteeID,
		)
		if err != nil {
			return fmt.Errorf("failed to create dashboard grant: %w", err)
		}
	}

	return tx.Commit(ctx)
}
