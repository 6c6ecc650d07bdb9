package usecase

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"pathfinder-backend/internal/domain"
	"pathfinder-backend/internal/sharing"
	"pathfinder-backend/pkg/apperror"
	"pathfinder-backend/pkg/logger"
	"pathfinder-backend/pkg/storage"

	"github.com/google/uuid"
)

// allowedExtensions limits uploads to common document and certificate formats.
var allowedExtensions = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
}

type documentUsecase struct {
	docs           domain.DocumentRepository
	shares         domain.ShareRepository
	store          storage.Store
	maxUploadBytes int64
}

func NewDocumentUsecase(docs domain.DocumentRepository, shares domain.ShareRepository, store storage.Store, maxUploadBytes int64) domain.DocumentUsecase {
	return &documentUsecase{
		docs:           docs,
		shares:         shares,
		store:          store,
		maxUploadBytes: maxUploadBytes,
	}
}

func (u *documentUsecase) List(ctx context.Context, userID string) ([]domain.Document, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" {
		return nil, apperror.Unauthorized("User not authenticated")
	}
	if ctxUserID != userID {
		return nil, apperror.Forbidden("You can only list your own documents")
	}

	docs, err := u.docs.ListByUserID(ctx, userID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	return docs, nil
}

func (u *documentUsecase) ListVisible(ctx context.Context, requesterID, ownerID string) ([]domain.Document, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" || ctxUserID != requesterID {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	docs, err := u.docs.ListByUserID(ctx, ownerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	if requesterID == ownerID {
		return sharing.VisibleDocuments(ownerID, requesterID, docs, nil, true), nil
	}

	docIDs := make([]int64, len(docs))
	for i, d := range docs {
		docIDs[i] = d.ID
	}
	grants, err := u.shares.DocumentGrantsFor(ctx, requesterID, docIDs)
	if err != nil {
		return nil, apperror.Internal(err)
	}

	granteeIDs, err := u.shares.DashboardGrantees(ctx, ownerID)
	if err != nil {
		return nil, apperror.Internal(err)
	}
	vizGrants := make([]domain.VizShare, len(granteeIDs))
	for i, id := range granteeIDs {
		vizGrants[i] = domain.VizShare{OwnerID: ownerID, SharedToUserID: id}
	}
	dashboardAuthorized := sharing.CanViewDashboard(ownerID, requesterID, vizGrants)

	return sharing.VisibleDocuments(ownerID, requesterID, docs, grants, dashboardAuthorized), nil
}

func (u *documentUsecase) Upload(ctx context.Context, userID string, upload *domain.DocumentUpload) (*domain.Document, error) {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" || ctxUserID != userID {
		return nil, apperror.Unauthorized("User not authenticated")
	}

	if u.store == nil {
		return nil, apperror.New(http.StatusServiceUnavailable, "Document storage is not configured", nil)
	}
	if upload.FileName == "" {
		return nil, apperror.BadRequest("No file selected")
	}
	if upload.Size > u.maxUploadBytes {
		return nil, apperror.BadRequest(fmt.Sprintf("File exceeds the %d byte upload limit", u.maxUploadBytes))
	}
	ext := strings.ToLower(filepath.Ext(upload.FileName))
	if !allowedExtensions[ext] {
		return nil, apperror.BadRequest("Unsupported file type")
	}

	// Object key is opaque; the original name survives only as metadata.
	key := fmt.Sprintf("documents/%s/%s%s", userID, uuid.NewString(), ext)
	if err := u.store.Upload(ctx, key, upload.ContentType, upload.Body); err != nil {
		return nil, apperror.Internal(err)
	}

	doc := &domain.Document{
		UserID:     userID,
		FileName:   filepath.Base(upload.FileName),
		StorageKey: key,
		FileType:   upload.FileType,
		UploadTime: time.Now().UTC(),
		IsShared:   false,
	}
	if err := u.docs.Create(ctx, doc); err != nil {
		// Best effort: don't leave an orphaned object behind.
		if delErr := u.store.Delete(ctx, key); delErr != nil {
			logger.Log.Error("Failed to clean up orphaned upload", "key", key, "error", delErr)
		}
		return nil, apperror.Internal(err)
	}
	return doc, nil
}

func (u *documentUsecase) Delete(ctx context.Context, userID string, docID int64) error {
	ctxUserID, ok := ctx.Value(domain.KeyUserID).(string)
	if !ok || ctxUserID == "" || ctxUserID != userID {
		return apperror.Unauthorized("User not authenticated")
	}

	doc, err := u.docs.GetByID(ctx, docID)
	if err != nil {
		return apperror.Internal(err)
	}
	if doc == nil {
		return apperror.NotFound("Document not found")
	}
	if doc.UserID != userID {
		return apperror.Forbidden("You are not authorized to delete this document")
	}

	// The row is the source of truth; a failed object delete is logged and
	// the row removed anyway, matching how the original handled stray files.
	if u.store != nil {
		if err := u.store.Delete(ctx, doc.StorageKey); err != nil {
			logger.Log.Error("Failed to delete stored object", "key", doc.StorageKey, "error", err)
		}
	}
	if err := u.docs.Delete(ctx, docID); err != nil {
		return apperror.Internal(err)
	}
	return nil
}
