// Package blob stores uploaded files on the local filesystem.
package blob

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"github.com/mmynk/travelbuddy/internal/storage"
)

var _ storage.BlobStore = (*DiskStore)(nil)

// allowedExtensions are the image types accepted for uploads.
var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".gif":  true,
	".webp": true,
}

// DiskStore writes blobs into a single directory under random names.
type DiskStore struct {
	dir string
}

// NewDiskStore creates the upload directory if needed.
func NewDiskStore(dir string) (*DiskStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &DiskStore{dir: dir}, nil
}

// Put writes data to a new file and returns its path. Only the extension of
// suggestedName is kept, so client-supplied names never reach the filesystem.
func (s *DiskStore) Put(ctx context.Context, data []byte, suggestedName string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	ext := strings.ToLower(filepath.Ext(filepath.Base(suggestedName)))
	if !allowedExtensions[ext] {
		return "", fmt.Errorf("%w: %q", storage.ErrUnsupportedBlob, ext)
	}

	path := filepath.Join(s.dir, uuid.NewString()+ext)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write blob: %w", err)
	}
	return path, nil
}
