package postgres

import (
	"context"

	"pathfinder-backend/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type jobHistoryRepo struct {
	db *pgxpool.Pool
}

func NewJobHistoryRepository(db *pgxpool.Pool) domain.JobHistoryRepository {
	return &jobHistoryRepo{db: db}
}

func (r *jobHistoryRepo) Create(ctx context.Context, job *domain.JobHistory) error {
	query := `INSERT INTO job_history (user_id, company_name, position, start_date, end_date, salary, description, created_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, NOW()) RETURNING id, created_at`
	return r.db.QueryRow(ctx, query,
		job.UserID, job.CompanyName, job.Position, job.StartDate, job.EndDate, job.Salary, job.Description,
	).Scan(&job.ID, &job.CreatedAt)
}

func (r *jobHistoryRepo) ListByUserID(ctx context.Context, userID string) ([]domain.JobHistory, error) {
	query := `SELECT id, user_id, company_name, position, start_date, end_date, COALESCE(salary, 0), COALESCE(description, ''), created_at
              FROM job_history WHERE user_id = $1 ORDER BY start_date DESC NULLS LAST`
	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	history := []domain.JobHistory{}
	for rows.Next() {
		var j domain.JobHistory
		if err := rows.Scan(&j.ID, &j.UserID, &j.CompanyName, &j.Position, &j.StartDate, &j.EndDate, &j.Salary, &j.Description, &j.CreatedAt); err != nil {
			return nil, err
		}
		history = append(history, j)
	}
	return history, rows.Err()
}

func (r *jobHistoryRepo) CountByUserID(ctx context.Context, userID string) (int, error) {
	var count int
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM job_history WHERE user_id = $1`, userID).Scan(&count)
	return count, err
}
