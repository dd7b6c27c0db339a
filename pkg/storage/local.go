// Package storage persists uploaded media files.
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

// ErrInvalidName is returned for names that would escape the storage directory.
var ErrInvalidName = errors.New("invalid file name")

// MediaStorage stores files under flat names
type MediaStorage interface {
	Save(ctx context.Context, name string, src io.Reader) error
	Remove(name string) error
	Dir() string
}

// LocalStorage keeps files in a directory on the local filesystem
type LocalStorage struct {
	dir string
}

// NewLocalStorage creates dir if needed and returns a storage rooted there.
func NewLocalStorage(dir string) (*LocalStorage, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload folder: %w", err)
	}
	return &LocalStorage{dir: dir}, nil
}

// Dir returns the root directory
func (s *LocalStorage) Dir() string {
	return s.dir
}

// Save writes src to name. A partially written file is removed on failure.
func (s *LocalStorage) Save(ctx context.Context, name string, src io.Reader) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}

	dst, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("create %s: %w", name, err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(path)
		return fmt.Errorf("write %s: %w", name, err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("close %s: %w", name, err)
	}
	return nil
}

// Remove deletes name. Removing a missing file is not an error.
func (s *LocalStorage) Remove(name string) error {
	path, err := s.path(name)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

func (s *LocalStorage) path(name string) (string, error) {
	if name == "" || name != filepath.Base(name) || strings.HasPrefix(name, ".") {
		return "", ErrInvalidName
	}
	return filepath.Join(s.dir, name), nil
}
