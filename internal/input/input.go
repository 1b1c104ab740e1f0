// Package input loads binary files and classifies read failures.
package input

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// Sentinel errors surfaced by Read. Callers match them with errors.Is
// to pick the right operator message.
var (
	// ErrNotFound means the path does not resolve to an existing file.
	ErrNotFound = errors.New("file not found")

	// ErrNotRegular means the path exists but is not a regular file
	// (directory, device, socket).
	ErrNotRegular = errors.New("not a regular file")

	// ErrPermission means the process lacks read access to the file.
	ErrPermission = errors.New("permission denied")
)

// Read loads the entire file at path into memory. The path must name an
// existing regular file; directories and special files are rejected
// before any read. There are no partial reads: the caller gets the whole
// file or an error.
func Read(path string) ([]byte, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, classify(path, err)
	}
	if !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %q", ErrNotRegular, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, classify(path, err)
	}
	return data, nil
}

// classify maps an os error onto one of the package sentinels, keeping
// the original error in the chain.
func classify(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return fmt.Errorf("%w: %q", ErrNotFound, path)
	case errors.Is(err, fs.ErrPermission):
		return fmt.Errorf("%w: %q", ErrPermission, path)
	default:
		return fmt.Errorf("failed to read %q: %w", path, err)
	}
}
