// Package fileutil provides file and path utility functions.
package fileutil

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// ErrParentNotDir reports that the parent of an output path exists but
// is not a directory.
var ErrParentNotDir = errors.New("parent path is not a directory")

// CheckParentDir verifies that the parent directory of path exists and
// is a directory. Nothing is created; a missing parent is the caller's
// problem to report.
func CheckParentDir(path string) error {
	dir := filepath.Dir(path)
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("checking output directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("%w: %s", ErrParentNotDir, dir)
	}
	return nil
}

// FileExists returns true if the path exists and is a regular file.
func FileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
