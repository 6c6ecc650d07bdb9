package domain

import (
	"context"
	"time"
)

// JobHistory is one past or current employment entry.
type JobHistory struct {
	ID          int64      `json:"id"`
	UserID      string     `json:"user_id"`
	CompanyName string     `json:"company_name" validate:"required,max=200"`
	Position    string     `json:"position" validate:"required,max=200"`
	StartDate   *time.Time `json:"start_date,omitempty"`
	EndDate     *time.Time `json:"end_date,omitempty"`
	Salary      int        `json:"salary" validate:"omitempty,gte=0"`
	Description string     `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
}

type JobHistoryRepository interface {
	Create(ctx context.Context, job *JobHistory) error
	ListByUserID(ctx context.Context, userID string) ([]JobHistory, error)
	CountByUserID(ctx context.Context, userID string) (int, error)
}

type JobUsecase interface {
	// List returns ownerID's history; requesters other than the owner need
	// a dashboard grant.
	List(ctx context.Context, requesterID, ownerID string) ([]JobHistory, error)
	Add(ctx context.Context, userID string, job *JobHistory) error
}
