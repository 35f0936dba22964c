// repositories/blob_store.go
package repositories

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"github.com/minio/minio-go/v7"

	"github.com/snapshare/snapshare_backend/apperrors"
	"github.com/snapshare/snapshare_backend/models"
)

const (
	// Maximum upload size (2 MiB). Larger payloads are rejected outright,
	// never truncated.
	MaxUploadSize = 2 * 1024 * 1024

	// Logical folder prefix for uploaded originals
	blobKeyPrefix = "original/"

	defaultExtension   = "jpg"
	defaultContentType = "image/jpeg"
)

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]`)

// BlobStore persists uploaded image payloads and hands back a public URL
type BlobStore interface {
	Store(ctx context.Context, fileName, contentType string, data []byte) (*models.UploadResult, error)
}

// MinioBlobStore implements BlobStore on top of a MinIO bucket
type MinioBlobStore struct {
	client        *minio.Client
	bucket        string
	publicBaseURL string
}

func NewMinioBlobStore(client *minio.Client, bucket, publicBaseURL string) *MinioBlobStore {
	return &MinioBlobStore{
		client:        client,
		bucket:        bucket,
		publicBaseURL: strings.TrimRight(publicBaseURL, "/"),
	}
}

// Store validates the payload, derives a fresh object key and uploads the
// bytes. The bucket is created lazily on first use.
func (s *MinioBlobStore) Store(ctx context.Context, fileName, contentType string, data []byte) (*models.UploadResult, error) {
	if len(data) == 0 {
		return nil, apperrors.NewValidationError("image payload is required")
	}
	if len(data) > MaxUploadSize {
		return nil, apperrors.ErrPayloadTooLarge
	}
	if contentType == "" {
		contentType = defaultContentType
	}

	key := ObjectKey(fileName)

	if err := s.ensureBucket(ctx); err != nil {
		return nil, apperrors.NewStorageError("ensure bucket", err)
	}

	_, err := s.client.PutObject(ctx, s.bucket, key, bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: contentType})
	if err != nil {
		return nil, apperrors.NewStorageError("put object", err)
	}

	return &models.UploadResult{
		BlobKey:  key,
		ImageURL: s.publicBaseURL + "/" + key,
	}, nil
}

func (s *MinioBlobStore) ensureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.bucket)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	return s.client.MakeBucket(ctx, s.bucket, minio.MakeBucketOptions{})
}

// ObjectKey derives a fresh object key from the uploaded file name:
// original/<uuid>.<ext>, with the extension sanitized to lowercase
// alphanumerics and defaulted to jpg.
func ObjectKey(fileName string) string {
	return fmt.Sprintf("%s%s.%s", blobKeyPrefix, uuid.NewString(), SanitizeExtension(fileName))
}

// SanitizeExtension extracts a safe file extension (best-effort)
func SanitizeExtension(fileName string) string {
	ext := ""
	if idx := strings.LastIndex(fileName, "."); idx >= 0 {
		ext = fileName[idx+1:]
	}
	ext = nonAlphanumeric.ReplaceAllString(strings.ToLower(ext), "")
	if ext == "" {
		ext = defaultExtension
	}
	return ext
}
