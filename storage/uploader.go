package storage

import (
	"context"
	"io"
)

// UploadResult describes where an uploaded object ended up.
type UploadResult struct {
	// Key is the object's path inside the bucket.
	Key string
	// Location is the public URL the object is served from.
	Location string
	ETag     string
}

// FileUploader stores and serves binary blobs (team logos). Implementations
// must be safe for concurrent use.
type FileUploader interface {
	// Upload streams the reader's content to the given key, replacing any
	// object already stored there.
	Upload(ctx context.Context, key string, contentType string, reader io.Reader) (*UploadResult, error)

	Delete(ctx context.Context, key string) error

	// GetPublicURL resolves the key against the configured public base URL.
	GetPublicURL(key string) string
}
