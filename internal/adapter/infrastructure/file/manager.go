// Package file provides file system operations adapter implementation.
package file

import (
	"fmt"
	"os"

	"golang-netconfig/internal/port"

	"github.com/google/renameio"
)

// ManagerAdapter is an adapter that implements the FileManager port using
// the standard os package, with atomic replacement for writes.
type ManagerAdapter struct{}

// Ensure ManagerAdapter implements the FileManager port
var _ port.FileManager = (*ManagerAdapter)(nil)

// NewManagerAdapter creates a new file manager adapter.
func NewManagerAdapter() *ManagerAdapter {
	return &ManagerAdapter{}
}

// WriteFile atomically replaces the named file with the given data. The
// data is written to a temporary file in the same directory and renamed
// over the target, so a crash mid-write never leaves a truncated config.
func (f *ManagerAdapter) WriteFile(filename string, data []byte, perm int) error {
	if err := renameio.WriteFile(filename, data, os.FileMode(perm)); err != nil {
		return fmt.Errorf("failed to write file %s: %w", filename, err)
	}
	return nil
}

// ListDir returns the entry names of a directory.
func (f *ManagerAdapter) ListDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list directory %s: %w", dir, err)
	}
	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		names = append(names, entry.Name())
	}
	return names, nil
}

// Remove deletes a single file.
func (f *ManagerAdapter) Remove(filename string) error {
	if err := os.Remove(filename); err != nil {
		return fmt.Errorf("failed to remove file %s: %w", filename, err)
	}
	return nil
}

// IsDir reports whether the path exists and is a directory.
func (f *ManagerAdapter) IsDir(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}
