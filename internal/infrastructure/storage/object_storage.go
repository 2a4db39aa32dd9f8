// Package storage holds product and community photos in S3-compatible
// object storage (AWS S3, MinIO, RustFS), with an in-memory stub for
// development and tests.
package storage

import (
	"context"
	"io"
)

// ObjectStorage stores a blob under a key and returns its public URL.
type ObjectStorage interface {
	Put(ctx context.Context, key string, body io.Reader, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
}
