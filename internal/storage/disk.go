package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// DiskStore keeps blobs under a root directory, one file per path.
// Blob paths are "<roomID>/<uuid>.<ext>", so room teardown maps to a
// handful of unlinks.
type DiskStore struct {
	root string
}

func NewDiskStore(root string) (*DiskStore, error) {
	if root == "" {
		return nil, errors.New("storage root is not set")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("storage: create root %s: %w", root, err)
	}
	return &DiskStore{root: root}, nil
}

// resolve maps a blob path onto the root, rejecting anything that would
// escape it.
func (s *DiskStore) resolve(path string) (string, error) {
	clean := filepath.Clean(filepath.FromSlash(path))
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("storage: invalid blob path %q", path)
	}
	return filepath.Join(s.root, clean), nil
}

func (s *DiskStore) Put(ctx context.Context, path string, r io.Reader, size int64) error {
	full, err := s.resolve(path)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(full), 0o755); err != nil {
		return fmt.Errorf("storage: create dir for %s: %w", path, err)
	}

	f, err := os.Create(full)
	if err != nil {
		return fmt.Errorf("storage: create blob %s: %w", path, err)
	}

	written, err := io.Copy(f, io.LimitReader(r, size))
	if closeErr := f.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		os.Remove(full)
		return fmt.Errorf("storage: write blob %s: %w", path, err)
	}
	if written != size {
		os.Remove(full)
		return fmt.Errorf("storage: short write for blob %s: got %d of %d bytes", path, written, size)
	}
	return nil
}

func (s *DiskStore) Open(ctx context.Context, path string) (io.ReadCloser, error) {
	full, err := s.resolve(path)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrBlobNotFound
		}
		return nil, fmt.Errorf("storage: open blob %s: %w", path, err)
	}
	return f, nil
}

func (s *DiskStore) Remove(ctx context.Context, paths []string) []RemoveResult {
	results := make([]RemoveResult, 0, len(paths))
	for _, path := range paths {
		full, err := s.resolve(path)
		if err == nil {
			err = os.Remove(full)
			if os.IsNotExist(err) {
				err = nil
			}
		}
		results = append(results, RemoveResult{Path: path, Err: err})
	}
	return results
}
