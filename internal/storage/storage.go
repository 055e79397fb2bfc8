package storage

import (
	"context"
	"fmt"
	"io"
)

// Storage keeps uploaded files addressed by a relative key.
type Storage interface {
	// Save stores the content under key.
	Save(ctx context.Context, key string, reader io.Reader, contentType string) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// URL returns the public address of key.
	URL(key string) string
}

// Config holds storage configuration.
type Config struct {
	Type      string // local or s3
	BasePath  string // local root directory
	BaseURL   string // public URL prefix
	Bucket    string
	Region    string
	Endpoint  string // S3-compatible endpoint, e.g. R2 or MinIO
	AccessKey string
	SecretKey string
}

// New creates a storage backend for cfg.Type.
func New(cfg Config) (Storage, error) {
	switch cfg.Type {
	case "local", "":
		return NewLocalStorage(cfg)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
