package files

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"compasscli/internal/errors"
)

// RequireFile verifies a required input file exists before any computation
// starts. A missing file aborts the run (fail-fast, all-or-nothing).
func RequireFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.NewMissingFileError(path, err)
		}
		return errors.NewStorageError(fmt.Sprintf("cannot access input file %s", path), err)
	}
	if info.IsDir() {
		return errors.NewValidationError(fmt.Sprintf("input path %s is a directory, not a file", path))
	}
	return nil
}

// Exists reports whether a path exists without classifying the failure.
// Used for optional inputs such as the boundary shapefile.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates the directory (and parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.NewStorageError(fmt.Sprintf("failed to create directory %s", dir), err)
	}
	return nil
}

// EnsureParentDir creates the parent directory of the given file path.
func EnsureParentDir(path string) error {
	return EnsureDir(filepath.Dir(path))
}

// IsCSV reports whether the path has a .csv extension.
func IsCSV(path string) bool {
	return strings.EqualFold(filepath.Ext(path), ".csv")
}
