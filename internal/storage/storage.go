package storage

import (
	"context"
	"fmt"
	"io"

	"careerpro_backend/internal/config"
)

// Storage abstracts where uploaded files live. Local disk is used in
// development; any S3-compatible service (AWS, R2, MinIO) in production.
type Storage interface {
	// Save writes the file under folder/filename and returns its public URL.
	Save(ctx context.Context, folder, filename string, r io.Reader, size int64, contentType string) (string, error)
	// Delete removes a previously saved file. Missing files are not an error.
	Delete(ctx context.Context, fileURL string) error
}

// NewStorage builds the backend selected in config.
func NewStorage(cfg config.StorageConfig) (Storage, error) {
	switch cfg.Backend {
	case "", "local":
		return NewLocalStorage(cfg.LocalDir, cfg.PublicURL)
	case "s3":
		return NewS3Storage(cfg)
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}
