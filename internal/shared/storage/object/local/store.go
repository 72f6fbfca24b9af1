package local

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"hardware-advisor/internal/shared/storage/object"
)

// Store implements BlobStore using the local filesystem.
type Store struct {
	baseDir string
}

// New creates a new local blob store rooted at baseDir.
func New(baseDir string) object.BlobStore {
	return &Store{baseDir: baseDir}
}

// Put writes data to disk at the given storage key, replacing any previous content.
func (s *Store) Put(ctx context.Context, key string, data []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	fullPath, err := s.resolve(key)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(fullPath), 0o755); err != nil {
		return fmt.Errorf("mkdir: %w", err)
	}

	// Write to a temp file and rename so readers never observe a partial snapshot.
	tmp, err := os.CreateTemp(filepath.Dir(fullPath), ".blob-*")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write blob: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close temp: %w", err)
	}
	if err := os.Rename(tmp.Name(), fullPath); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("rename blob: %w", err)
	}
	return nil
}

// Get reads a stored blob.
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	fullPath, err := s.resolve(key)
	if err != nil {
		return nil, err
	}
	return os.ReadFile(fullPath)
}

func (s *Store) resolve(key string) (string, error) {
	clean := filepath.Clean(key)
	if clean == "." || strings.HasPrefix(clean, "..") || filepath.IsAbs(clean) {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(s.baseDir, clean), nil
}

var _ object.BlobStore = (*Store)(nil)
