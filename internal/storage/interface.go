package storage

import (
	"context"
	"io"
)

// ObjectStorage is the "store blob, get URL" capability backing CV and
// cover letter attachments.
type ObjectStorage interface {
	// Upload stores an object under key
	Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error

	// GetURL returns the public URL for accessing an object
	GetURL(key string) string

	// Delete removes an object from storage
	Delete(ctx context.Context, key string) error

	// EnsureBucket creates the backing bucket if it doesn't exist
	EnsureBucket(ctx context.Context) error
}
