package pipeline

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dosanma1/firebase-release-cli/internal/fsops"
)

// DefaultCacheDir returns the well-known cache location shared with the
// build tool. Stale cached pods here are the classic source of releases
// built against the wrong dependency versions.
func DefaultCacheDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve cache location: %w", err)
	}
	return filepath.Join(homeDir, ".fbrelease", "cache"), nil
}

// InvalidateCache removes the build caches. With an explicit cacheDir only
// that directory is removed; otherwise both the default cache and the
// ZipBuilder staging cache go. A build must never start with indeterminate
// cache state, so an unresolvable cache location is an error, not a skip.
func InvalidateCache(cacheDir string) error {
	dirs := []string{cacheDir}
	if cacheDir == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("failed to resolve cache location: %w", err)
		}
		dirs = []string{
			filepath.Join(homeDir, ".fbrelease", "cache"),
			filepath.Join(homeDir, "Library", "Caches", "ZipBuilder"),
		}
	}

	for _, dir := range dirs {
		if err := fsops.RemoveIfExists(dir); err != nil {
			return err
		}
	}
	return nil
}
