// Package output places the finished release artifacts into the requested
// output directory.
package output

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/dosanma1/firebase-release-cli/internal/fsops"
)

// Placement describes where the artifacts ended up.
type Placement struct {
	// ArchivePath is the final location of the release zip.
	ArchivePath string
	// CarthagePath is the final location of the Carthage tree, empty when
	// no secondary distribution was produced.
	CarthagePath string
}

// VersionedDirName returns the directory name used to namespace a release
// inside the output directory: the version with every dot replaced by an
// underscore, so "10.5.0" becomes "10_5_0".
func VersionedDirName(version string) string {
	return strings.ReplaceAll(version, ".", "_")
}

// Place copies the archive (and Carthage tree, when present) into outputDir.
// Any previous contents of outputDir are removed first so repeated releases
// of the same version never mix. carthageDir may be empty.
func Place(archivePath, carthageDir, outputDir, version string) (*Placement, error) {
	if err := fsops.RemoveIfExists(outputDir); err != nil {
		return nil, fmt.Errorf("failed to clear output dir: %w", err)
	}
	if err := fsops.EnsureDir(outputDir); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	versionedDir := filepath.Join(outputDir, VersionedDirName(version))
	if err := fsops.EnsureDir(versionedDir); err != nil {
		return nil, fmt.Errorf("failed to create versioned dir: %w", err)
	}

	placement := &Placement{
		ArchivePath: filepath.Join(versionedDir, filepath.Base(archivePath)),
	}
	if err := fsops.CopyFile(archivePath, placement.ArchivePath); err != nil {
		return nil, fmt.Errorf("failed to copy archive: %w", err)
	}

	if carthageDir != "" {
		placement.CarthagePath = filepath.Join(outputDir, "carthage")
		if err := fsops.CopyDir(carthageDir, placement.CarthagePath); err != nil {
			return nil, fmt.Errorf("failed to copy carthage distribution: %w", err)
		}
	}

	return placement, nil
}
