package storage

import (
	"context"
	"time"
)

// StorageService is the blob-store collaborator the verification workflow
// consumes. The platform never handles file bytes beyond handing them off.
type StorageService interface {
	UploadFile(ctx context.Context, localFilePath, destFolder string) (string, error)
	DeleteFile(ctx context.Context, publicID string) error
	GetDownloadURL(ctx context.Context, publicID string) (string, error)
	GetSecureDownloadURL(ctx context.Context, publicID string, expires time.Duration) (string, error)
}
