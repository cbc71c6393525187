// Package relocate normalizes build output by gathering resource bundles.
//
// Build tools scatter .bundle directories throughout each product's frameworks.
// The distribution layout requires them collected in a single Resources
// directory at the top of each product directory.
package relocate

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

const (
	bundleSuffix = ".bundle"
	resourcesDir = "Resources"
)

// Bundles relocates resource bundles for every product directory directly
// under rootDir. Files at the top level are skipped. It returns the total
// number of bundles moved.
func Bundles(rootDir string) (int, error) {
	entries, err := os.ReadDir(rootDir)
	if err != nil {
		return 0, fmt.Errorf("failed to read %s: %w", rootDir, err)
	}

	moved := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		n, err := relocateProduct(filepath.Join(rootDir, entry.Name()))
		if err != nil {
			return moved, fmt.Errorf("failed to relocate bundles in %s: %w", entry.Name(), err)
		}
		moved += n
	}
	return moved, nil
}

// relocateProduct moves every .bundle found anywhere inside productDir into
// productDir/Resources. Two bundles resolving to the same destination name
// is an error; overwriting would silently drop one of them.
func relocateProduct(productDir string) (int, error) {
	var bundles []string
	err := filepath.WalkDir(productDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() || path == productDir {
			return nil
		}
		// An existing Resources dir already holds relocated bundles.
		if path == filepath.Join(productDir, resourcesDir) {
			return filepath.SkipDir
		}
		if strings.HasSuffix(d.Name(), bundleSuffix) {
			bundles = append(bundles, path)
			// Bundles do not nest; no need to look inside.
			return filepath.SkipDir
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if len(bundles) == 0 {
		return 0, nil
	}

	destDir := filepath.Join(productDir, resourcesDir)
	if err := os.MkdirAll(destDir, 0755); err != nil {
		return 0, fmt.Errorf("failed to create %s: %w", destDir, err)
	}

	moved := 0
	for _, bundle := range bundles {
		dest := filepath.Join(destDir, filepath.Base(bundle))
		if _, err := os.Stat(dest); err == nil {
			return moved, fmt.Errorf("duplicate bundle %s: %s collides with an already relocated bundle", filepath.Base(bundle), bundle)
		}
		if err := os.Rename(bundle, dest); err != nil {
			return moved, fmt.Errorf("failed to move %s: %w", bundle, err)
		}
		moved++
	}
	return moved, nil
}
