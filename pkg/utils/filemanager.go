// =============================================================================
// POS Report Processor - File Manager
// =============================================================================
//
// Filesystem helpers for input discovery and output naming. Discovery is
// non-recursive and returns paths in sorted order so repeated runs over
// the same folder always process files identically.
//
// =============================================================================

package utils

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"gitlab.com/tozd/go/errors"
)

// DiscoverInputFiles lists the files in dir whose base name matches any of
// the glob patterns. Subdirectories are not entered; the terminal drops
// all exports into one flat folder.
func DiscoverInputFiles(dir string, patterns []string) ([]string, error) {
	info, err := os.Stat(dir)
	if err != nil {
		return nil, errors.Errorf("input directory %s: %w", dir, err)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("input path %s is not a directory", dir)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Errorf("listing input directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		for _, pattern := range patterns {
			matched, err := filepath.Match(pattern, entry.Name())
			if err != nil {
				return nil, errors.Errorf("bad file pattern %q: %w", pattern, err)
			}
			if matched {
				files = append(files, filepath.Join(dir, entry.Name()))
				break
			}
		}
	}

	sort.Strings(files)
	return files, nil
}

// GenerateOutputFileName expands the output name pattern. Supported
// placeholders:
//
//	{uuid}      - a random UUID
//	{timestamp} - time now, formatted YYYYMMDD_HHMMSS
func GenerateOutputFileName(pattern string, now time.Time) string {
	name := pattern
	if strings.Contains(name, "{uuid}") {
		name = strings.ReplaceAll(name, "{uuid}", uuid.New().String())
	}
	if strings.Contains(name, "{timestamp}") {
		name = strings.ReplaceAll(name, "{timestamp}", now.Format("20060102_150405"))
	}
	return name
}

// EnsureDir creates a directory (and parents) if it does not exist.
func EnsureDir(dir string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Errorf("creating directory %s: %w", dir, err)
	}
	return nil
}

// FileExists reports whether path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
