package postgres

import (
	"context"
	"errors"

	"pathfinder-backend/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type documentRepo struct {
	db *pgxpool.Pool
}

func NewDocumentRepository(db *pgxpool.Pool) domain.DocumentRepository {
	return &documentRepo{db: db}
}

func (r *documentRepo) Create(ctx context.Context, doc *domain.Document) error {
	query := `INSERT INTO documents (user_id, file_name, storage_key, file_type, upload_time, is_shared)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRow(ctx, query,
		doc.UserID, doc.FileName, doc.StorageKey, doc.FileType, doc.UploadTime, doc.IsShared,
	).Scan(&doc.ID)
}

func (r *documentRepo) GetByID(ctx context.Context, id int64) (*domain.Document, error) {
	query := `SELECT id, user_id, file_name, storage_key, file_type, upload_time, is_shared
              FROM documents WHERE id = $1`
	var doc domain.Document
	err := r.db.QueryRow(ctx, query, id).Scan(
		&doc.ID, &doc.UserID, &doc.FileName, &doc.StorageKey, &doc.FileType, &doc.UploadTime, &doc.IsShared,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &doc, nil
}

func (r *documentRepo) ListByUserID(ctx context.Context, userID string) ([]domain.Document, error) {
	query := `SELECT id, user_id, file_name, storage_key, file_type, upload_time, is_shared
              FROM documents WHERE user_id = $1 ORDER BY upload_time DESC`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	docs := []domain.Document{}
	for rows.Next() {
		var doc domain.Document
		if err := rows.Scan(&doc.ID, &doc.UserID, &doc.FileName, &doc.StorageKey, &doc.FileType, &doc.UploadTime, &doc.IsShared); err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, rows.Err()
}

func (r *documentRepo) CountByUserID(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM documents WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}

func (r *documentRepo) Delete(ctx context.Context, id int64) error {
	// Grants cascade via the shared_with foreign key.
	_, err := r.db.Exec(ctx, `DELETE FROM documents WHERE id = $1`, id)
	return err
}
