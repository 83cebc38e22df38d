package storage

import (
	"context"
	"time"
)

// StorageClient stores and retrieves report artifacts. Implementations
// cover the local filesystem for development and GCS for deployment.
type StorageClient interface {
	// Close closes the storage client
	Close() error

	// StoreFile stores one report artifact in the folder derived from
	// the report timestamp
	StoreFile(ctx context.Context, fileData []byte, filename string, timestamp time.Time) error

	// GetFile retrieves a file by its storage path
	GetFile(ctx context.Context, filePath string) ([]byte, error)

	// ListReports lists stored report pages, newest first
	ListReports(ctx context.Context, limit int) ([]string, error)

	// GetLatestReport returns the path of the most recent report page
	GetLatestReport(ctx context.Context) (string, error)
}
