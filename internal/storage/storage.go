package storage

import (
	"fmt"
	"io"

	"github.com/kolbenev/twitter-clone/pkg/config"
)

// Storage defines the interface for blob store operations
type Storage interface {
	// Save stores a file at the given path
	Save(path string, file io.Reader) error

	// Delete removes the file at the given path. Deleting a file that is
	// already gone is not an error.
	Delete(path string) error

	// URL returns the externally resolvable address for the file
	URL(path string) string
}

// New selects a storage backend from app config
func New(cfg *config.Config) (Storage, error) {
	switch cfg.StorageDriver {
	case "s3":
		return NewS3Storage(S3Config{
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			Endpoint:  cfg.S3Endpoint,
		})
	case "local", "":
		return NewLocalStorage(cfg.MediaRoot, cfg.BaseURL), nil
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}
