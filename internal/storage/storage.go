package storage

import (
	"context"
	"errors"
	"io"
)

var ErrBlobNotFound = errors.New("blob not found")

// RemoveResult reports the outcome for a single path of a bulk remove.
// Teardown treats failures as log-and-continue, never fatal.
type RemoveResult struct {
	Path string
	Err  error
}

// BlobStore holds the file bytes behind FileAsset rows. Paths are opaque
// to callers; the store validates them against traversal.
type BlobStore interface {
	Put(ctx context.Context, path string, r io.Reader, size int64) error
	Open(ctx context.Context, path string) (io.ReadCloser, error)
	// Remove deletes each path best-effort and reports per-path outcomes.
	// A missing blob is not an error: the goal state is "gone".
	Remove(ctx context.Context, paths []string) []RemoveResult
}
