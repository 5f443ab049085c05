// Package storage persists uploaded profile pictures on the local filesystem.
//
// Pictures live in one flat directory per user below a configurable root:
// <root>/<userID>/<originalFilename>. Files are stored under their original
// name and silently overwritten on name collisions. Saved pictures are
// identified by their recorded path <rootBase>/<userID>/<filename>, which
// stays stable even when the root itself is an absolute directory and
// doubles as the URL path the picture is served under.
package storage

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Store writes and removes profile pictures below a root directory.
type Store struct {
	root string
}

// New creates a picture store rooted at the given directory, creating the
// root if it does not exist yet.
func New(root string) (*Store, error) {
	if root == "" {
		return nil, fmt.Errorf("storage root must not be empty")
	}
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage root: %w", err)
	}
	return &Store{root: root}, nil
}

// Save writes the picture bytes to <root>/<userID>/<filename> and returns
// the recorded path <rootBase>/<userID>/<filename>. The per-user directory
// is created if absent; an existing file with the same name is overwritten.
func (s *Store) Save(userID uint, filename string, r io.Reader) (string, error) {
	uid := strconv.FormatUint(uint64(userID), 10)
	dir := filepath.Join(s.root, uid)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create user directory: %w", err)
	}

	path := filepath.Join(dir, filename)
	file, err := os.Create(path) //nolint:gosec
	if err != nil {
		return "", fmt.Errorf("failed to create picture file: %w", err)
	}

	if _, err := io.Copy(file, r); err != nil {
		file.Close() //nolint: errcheck, gosec
		return "", fmt.Errorf("failed to write picture file: %w", err)
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("failed to close picture file: %w", err)
	}

	return filepath.Join(filepath.Base(s.root), uid, filename), nil
}

// Remove deletes a previously saved picture given its recorded path.
func (s *Store) Remove(recorded string) error {
	return os.Remove(filepath.Join(filepath.Dir(s.root), recorded))
}
