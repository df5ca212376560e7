// Package storage persists raw file content on the local filesystem. Each
// blob is stored under an opaque generated name inside a configured root
// directory; metadata lives elsewhere.
package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"files-manager/common"
)

// BlobStore writes and reads content blobs under a root directory.
type BlobStore struct {
	root string
}

func NewBlobStore(root string) *BlobStore {
	return &BlobStore{root: root}
}

// Write stores data under a newly generated opaque name and returns that
// name as the content reference. The root directory is created on first use.
func (s *BlobStore) Write(data []byte) (string, error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", fmt.Errorf("failed to create content root %s: %w", s.root, err)
	}
	ref := common.GetUUID()
	if err := os.WriteFile(filepath.Join(s.root, ref), data, 0o644); err != nil {
		return "", fmt.Errorf("failed to write content %s: %w", ref, err)
	}
	return ref, nil
}

// WriteRef stores data under an explicit reference. Used by the thumbnail
// worker to place derived variants next to the original.
func (s *BlobStore) WriteRef(ref string, data []byte) error {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return fmt.Errorf("failed to create content root %s: %w", s.root, err)
	}
	if err := os.WriteFile(filepath.Join(s.root, ref), data, 0o644); err != nil {
		return fmt.Errorf("failed to write content %s: %w", ref, err)
	}
	return nil
}

// Read returns the bytes stored under ref, or common.ErrNotFound when the
// blob does not exist on disk.
func (s *BlobStore) Read(ref string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(s.root, ref))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, common.ErrNotFound
		}
		return nil, fmt.Errorf("failed to read content %s: %w", ref, err)
	}
	return data, nil
}

// Path resolves ref to its filesystem location without touching the file.
func (s *BlobStore) Path(ref string) string {
	return filepath.Join(s.root, ref)
}

// Exists reports whether the blob for ref is present on disk.
func (s *BlobStore) Exists(ref string) bool {
	_, err := os.Stat(filepath.Join(s.root, ref))
	return err == nil
}
