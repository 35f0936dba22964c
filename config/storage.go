// config/storage.go
package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
)

// ConnectMinio establishes connection to the MinIO object storage backend
func ConnectMinio() *minio.Client {
	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		endpoint = "localhost:9000"
	}
	accessKey := os.Getenv("MINIO_ACCESS_KEY")
	secretKey := os.Getenv("MINIO_SECRET_KEY")
	useSSL := strings.ToLower(os.Getenv("MINIO_USE_SSL")) == "true"

	client, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(accessKey, secretKey, ""),
		Secure: useSSL,
	})
	if err != nil {
		log.Fatal("MinIO connection error:", err)
	}

	log.Println("Connected to MinIO at", endpoint)
	return client
}

// BlobBucket returns the configured bucket name for uploaded images
func BlobBucket() string {
	bucket := os.Getenv("BLOB_BUCKET")
	if bucket == "" {
		bucket = "snapshare-images"
	}
	return bucket
}

// PublicBlobBaseURL returns the base URL under which stored objects are
// publicly reachable. Falls back to the MinIO endpoint and bucket.
func PublicBlobBaseURL() string {
	if base := os.Getenv("PUBLIC_BLOB_BASE_URL"); base != "" {
		return strings.TrimRight(base, "/")
	}

	endpoint := os.Getenv("MINIO_ENDPOINT")
	if endpoint == "" {
		endpoint = "localhost:9000"
	}
	scheme := "http"
	if strings.ToLower(os.Getenv("MINIO_USE_SSL")) == "true" {
		scheme = "https"
	}
	return fmt.Sprintf("%s://%s/%s", scheme, endpoint, BlobBucket())
}
