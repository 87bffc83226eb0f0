// Package storage provides read access to S3-compatible object storage.
package storage

import (
	"context"
	"io"
	"time"
)

// ObjectInfo describes a stored object.
type ObjectInfo struct {
	Key          string
	Size         int64
	ContentType  string
	LastModified time.Time
}

// StorageService defines the object storage operations the service needs.
type StorageService interface {
	// DownloadFile downloads a file directly from storage.
	// The caller is responsible for closing the returned io.ReadCloser.
	DownloadFile(ctx context.Context, bucket, fileKey string) (io.ReadCloser, error)

	// StatObject returns metadata for an object without downloading it.
	StatObject(ctx context.Context, bucket, fileKey string) (ObjectInfo, error)

	// BucketExists reports whether the bucket is present.
	BucketExists(ctx context.Context, bucket string) (bool, error)
}

// Config defines the configuration interface for storage.
type Config interface {
	GetMinIOEndpoint() string
	GetMinIOAccessKey() string
	GetMinIOSecretKey() string
	GetMinIOUseSSL() bool
	IsMinIOEnabled() bool
}
