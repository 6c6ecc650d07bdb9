package domain

import (
	"context"
	"io"
	"time"
)

// Document is a user-uploaded file (CV, certificate, award). The owner
// reference never changes after creation and only the owner may delete it.
type Document struct {
	ID         int64     `json:"id"`
	UserID     string    `json:"user_id"`
	FileName   string    `json:"file_name"`
	StorageKey string    `json:"-"`
	FileType   string    `json:"file_type"`
	UploadTime time.Time `json:"upload_time"`
	// IsShared marks the document as visible to anyone who may already view
	// the owner's dashboard. Per-user grants live in SharedWith.
	IsShared bool `json:"is_shared"`
}

// DocumentUpload carries an incoming file stream plus its metadata.
type DocumentUpload struct {
	FileName    string
	FileType    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type DocumentRepository interface {
	Create(ctx context.Context, doc *Document) error
	GetByID(ctx context.Context, id int64) (*Document, error)
	ListByUserID(ctx context.Context, userID string) ([]Document, error)
	CountByUserID(ctx context.Context, userID string) (int, error)
	Delete(ctx context.Context, id int64) error
}

type DocumentUsecase interface {
	List(ctx context.Context, userID string) ([]Document, error)
	// ListVisible returns ownerID's documents filtered down to what
	// requesterID may see.
	ListVisible(ctx context.Context, requesterID, ownerID string) ([]Document, error)
	Upload(ctx context.Context, userID string, upload *DocumentUpload) (*Document, error)
	Delete(ctx context.Context, userID string, docID int64) error
}
